package model

import "time"

const (
	// DefaultEventImageURL 活动缺省配图.
	DefaultEventImageURL = "https://placehold.co/600x400/fef3c7/92400e?text=Upcoming+Event"
	// DefaultEventLocation 活动缺省地点.
	DefaultEventLocation = "School Premises"
)

// Event 校园活动模型，列表仅展示未过期活动并按日期正序.
type Event struct {
	ID          uint   `gorm:"primaryKey"         json:"id"`
	Title       string `gorm:"size:512;not null"  json:"title"`
	Description string `gorm:"type:text"          json:"description"`
	Location    string `gorm:"size:255"           json:"location"`
	// EventDate 活动举办时间，过期活动不出现在列表中
	EventDate       time.Time `gorm:"index;not null" json:"eventDate"`
	ImageURL        string    `gorm:"size:1024"       json:"imageUrl"`
	StorageKey      string    `gorm:"size:1024;index" json:"-"`
	StorageCategory string    `gorm:"size:32"         json:"-"`
	SortTimestamp   int64     `gorm:"index"           json:"timestamp"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
