package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/schoolvault/pkg/internal/service"
	"github.com/yeisme/schoolvault/pkg/internal/types"
)

// AdminRegister 注册管理员账号.
//
//	@Summary		注册管理员
//	@Description	注册管理员账号并直接签发 token
//	@Tags			管理员
//	@Accept			json
//	@Produce		json
//	@Param			admin	body		types.AdminRegisterRequest	true	"注册信息"
//	@Success		201		{object}	types.AdminTokenResponse
//	@Failure		400		{object}	types.ErrorResponse
//	@Failure		409		{object}	types.ErrorResponse
//	@Router			/api/v1/admin/register [post]
func AdminRegister(c *gin.Context) {
	var req types.AdminRegisterRequest
	if !bindValidated(c, &req) {
		return
	}

	svc := service.NewAdminService(c.Request.Context())
	token, err := svc.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, types.AdminTokenResponse{Token: token, Email: req.Email})
}

// AdminLogin 管理员登录.
//
//	@Summary		管理员登录
//	@Description	凭证换 token；账号不存在与密码错误返回同一个错误
//	@Tags			管理员
//	@Accept			json
//	@Produce		json
//	@Param			admin	body		types.AdminLoginRequest	true	"登录凭证"
//	@Success		200		{object}	types.AdminTokenResponse
//	@Failure		400		{object}	types.ErrorResponse
//	@Router			/api/v1/admin/login [post]
func AdminLogin(c *gin.Context) {
	var req types.AdminLoginRequest
	if !bindValidated(c, &req) {
		return
	}

	svc := service.NewAdminService(c.Request.Context())
	token, err := svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.AdminTokenResponse{Token: token, Email: req.Email})
}
