package model

import "time"

// Admin 后台管理员账号，密码只存 bcrypt 哈希.
type Admin struct {
	ID    uint   `gorm:"primaryKey"                    json:"id"`
	Email string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	// PasswordHash bcrypt 哈希，任何响应都不回传
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// AllModels 返回全部模型，供启动时自动迁移.
func AllModels() []any {
	return []any{
		&News{},
		&Event{},
		&Album{},
		&Result{},
		&Student{},
		&Teacher{},
		&Admin{},
	}
}
