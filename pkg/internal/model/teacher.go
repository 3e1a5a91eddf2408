package model

import "time"

// Teacher 教师信息，Email 全局唯一.
type Teacher struct {
	ID      uint   `gorm:"primaryKey"        json:"id"`
	Name    string `gorm:"size:255;not null" json:"name"`
	Subject string `gorm:"size:255"          json:"subject"`
	// Email 联系邮箱，唯一索引
	Email         string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Qualification string    `gorm:"size:512"                      json:"qualification"`
	SortTimestamp int64     `gorm:"index"                         json:"timestamp"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
