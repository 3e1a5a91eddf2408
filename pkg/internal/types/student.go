package types

// CreateStudentRequest 学籍创建请求 (JSON).
type CreateStudentRequest struct {
	Name        string `json:"name"        rule:"required,max=255"`                       // 姓名
	Grade       int    `json:"grade"       rule:"required,gte=1,lte=12"`                  // 年级
	AdmissionID string `json:"admissionId" rule:"required,max=64"`                        // 入学编号，全局唯一
	ParentEmail string `json:"parentEmail" rule:"omitempty,email"`                        // 家长邮箱
	Status      string `json:"status"      rule:"omitempty,oneof=Active Graduated Alumni"` // 在校状态
}
