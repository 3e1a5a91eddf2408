// Package model 定义门户内容的数据库模型.
package model

import "time"

// DefaultNewsImageURL 新闻缺省配图，上传缺失或失败时使用.
const DefaultNewsImageURL = "https://placehold.co/600x400/e0f1fe/08539c?text=Default+News"

// News 新闻稿模型.
type News struct {
	ID      uint   `gorm:"primaryKey"         json:"id"`
	Title   string `gorm:"size:512;not null"  json:"title"`
	Content string `gorm:"type:text;not null" json:"content"`
	// ImageURL 展示图地址，可能是上传产物或缺省占位图
	ImageURL string `gorm:"size:1024" json:"imageUrl"`
	// StorageKey 上传产物的存储键；占位图时为空，删除清理只依赖该字段
	StorageKey string `gorm:"size:1024;index" json:"-"`
	// StorageCategory 存储层分类（image/document），与 StorageKey 一起持久化
	StorageCategory string `gorm:"size:32" json:"-"`
	// Date 展示用的人类可读日期
	Date string `gorm:"size:64" json:"date"`
	// SortTimestamp 毫秒时间戳，列表按其倒序排列
	SortTimestamp int64     `gorm:"index"  json:"timestamp"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
