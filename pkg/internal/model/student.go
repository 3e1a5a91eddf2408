package model

import "time"

// 学生在校状态.
const (
	StudentStatusActive    = "Active"
	StudentStatusGraduated = "Graduated"
	StudentStatusAlumni    = "Alumni"
)

// Student 学籍记录，AdmissionID 全局唯一.
type Student struct {
	ID    uint   `gorm:"primaryKey"        json:"id"`
	Name  string `gorm:"size:255;not null" json:"name"`
	Grade int    `gorm:"not null"          json:"grade"`
	// AdmissionID 入学编号，唯一索引，重复创建返回冲突
	AdmissionID string `gorm:"size:64;uniqueIndex;not null" json:"admissionId"`
	ParentEmail string `gorm:"size:255"                     json:"parentEmail"`
	// Status 在校状态：Active/Graduated/Alumni
	Status        string    `gorm:"size:32;not null;default:Active" json:"status"`
	SortTimestamp int64     `gorm:"index"                           json:"timestamp"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
