package model

import "time"

// Result 成绩公告模型，附带一份可下载的成绩文件.
type Result struct {
	ID    uint   `gorm:"primaryKey"        json:"id"`
	Title string `gorm:"size:512;not null" json:"title"`
	Grade string `gorm:"size:64"           json:"grade"`
	// FileURL 成绩文件下载地址
	FileURL         string    `gorm:"size:1024"       json:"fileUrl"`
	StorageKey      string    `gorm:"size:1024;index" json:"-"`
	StorageCategory string    `gorm:"size:32"         json:"-"`
	Date            string    `gorm:"size:64"         json:"date"`
	SortTimestamp   int64     `gorm:"index"           json:"timestamp"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
