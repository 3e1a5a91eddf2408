package types

// AdminRegisterRequest 管理员注册请求 (JSON).
type AdminRegisterRequest struct {
	Email    string `json:"email"    rule:"required,email"`        // 邮箱，全局唯一
	Password string `json:"password" rule:"required,min=8,max=72"` // 明文密码，仅存 bcrypt 哈希
}

// AdminLoginRequest 管理员登录请求 (JSON).
type AdminLoginRequest struct {
	Email    string `json:"email"    rule:"required,email"`
	Password string `json:"password" rule:"required"`
}

// AdminTokenResponse 注册/登录成功响应.
type AdminTokenResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}
