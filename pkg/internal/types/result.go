package types

// CreateResultRequest 成绩公告创建请求 (multipart 表单，文件走 file 字段).
type CreateResultRequest struct {
	Title string `form:"title" rule:"required,max=512"` // 标题
	Grade string `form:"grade" rule:"required,max=64"`  // 年级/班级
	Date  string `form:"date"  rule:"max=64"`           // 展示日期
}
