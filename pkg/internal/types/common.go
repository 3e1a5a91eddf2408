// Package types 定义 HTTP 层的请求与响应结构.
package types

// ErrorResponse 统一错误响应.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse 简单操作结果响应.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse 单项依赖健康检查响应.
type HealthResponse struct {
	Status string `json:"status"`          // ok / degraded
	Detail string `json:"detail,omitempty"`
}
