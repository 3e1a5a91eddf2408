package types

// CreateTeacherRequest 教师创建请求 (JSON).
type CreateTeacherRequest struct {
	Name          string `json:"name"          rule:"required,max=255"` // 姓名
	Subject       string `json:"subject"       rule:"required,max=255"` // 任教科目
	Email         string `json:"email"         rule:"required,email"`   // 邮箱，全局唯一
	Qualification string `json:"qualification" rule:"max=512"`          // 资质
}
