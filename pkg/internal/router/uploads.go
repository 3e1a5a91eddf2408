package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/schoolvault/pkg/configs"
)

// RegisterUploadsRoute 注册本地上传文件的静态访问路由.
// 仅 local 策略需要；s3 策略下文件直接从对象存储地址访问.
func RegisterUploadsRoute(r *gin.Engine) {
	cfg := configs.GetConfig()
	if cfg.Upload.Strategy != configs.UploadStrategyLocal {
		return
	}

	r.Static("/uploads", cfg.Upload.LocalDir)
}
