package types

// CreateNewsRequest 新闻创建请求 (multipart 表单，配图走 image 字段).
type CreateNewsRequest struct {
	Title   string `form:"title"   rule:"required,max=512"` // 标题
	Content string `form:"content" rule:"required"`         // 正文
	Date    string `form:"date"    rule:"max=64"`           // 展示日期，缺省为当天
}
