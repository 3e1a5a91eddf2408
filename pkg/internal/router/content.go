package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/schoolvault/pkg/internal/handle"
)

// RegisterContentRoutes 注册六类内容资源的路由.
// 列表与单查公开，创建与删除过 authMW.
func RegisterContentRoutes(g *gin.RouterGroup, authMW gin.HandlerFunc) {
	newsRoutes := g.Group("/news")
	{
		newsRoutes.GET("", handle.ListNews)
		newsRoutes.GET("/:id", handle.GetNews)
		newsRoutes.POST("", authMW, handle.CreateNews)
		newsRoutes.DELETE("/:id", authMW, handle.DeleteNews)
	}

	eventRoutes := g.Group("/events")
	{
		eventRoutes.GET("", handle.ListEvents)
		eventRoutes.GET("/:id", handle.GetEvent)
		eventRoutes.POST("", authMW, handle.CreateEvent)
		eventRoutes.DELETE("/:id", authMW, handle.DeleteEvent)
	}

	albumRoutes := g.Group("/albums")
	{
		albumRoutes.GET("", handle.ListAlbums)
		// 静态段注册在参数段之前
		albumRoutes.POST("/upload-photo", authMW, handle.AddAlbumPhoto)
		albumRoutes.POST("/upload-photos", authMW, handle.AddAlbumPhotos)
		albumRoutes.GET("/:id", handle.GetAlbum)
		albumRoutes.POST("", authMW, handle.CreateAlbum)
		albumRoutes.DELETE("/:id", authMW, handle.DeleteAlbum)
	}

	resultRoutes := g.Group("/results")
	{
		resultRoutes.GET("", handle.ListResults)
		resultRoutes.GET("/:id", handle.GetResult)
		resultRoutes.POST("", authMW, handle.CreateResult)
		resultRoutes.DELETE("/:id", authMW, handle.DeleteResult)
	}

	studentRoutes := g.Group("/students")
	{
		studentRoutes.GET("", handle.ListStudents)
		studentRoutes.GET("/:id", handle.GetStudent)
		studentRoutes.POST("", authMW, handle.CreateStudent)
		studentRoutes.DELETE("/:id", authMW, handle.DeleteStudent)
	}

	teacherRoutes := g.Group("/teachers")
	{
		teacherRoutes.GET("", handle.ListTeachers)
		teacherRoutes.GET("/:id", handle.GetTeacher)
		teacherRoutes.POST("", authMW, handle.CreateTeacher)
		teacherRoutes.DELETE("/:id", authMW, handle.DeleteTeacher)
	}
}
