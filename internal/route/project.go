package route

import (
	"github.com/gin-gonic/gin"
	"github.com/sovanra/uxfolio/internal/controller"
	"github.com/sovanra/uxfolio/internal/middleware"
)

func Admin_Projects(r *gin.RouterGroup, pc *controller.ProjectController, uc *controller.UploadController, sc *controller.SeriesController, middleware *middleware.Middleware) {
	admin := r.Group("/admin/projects")
	admin.Use(middleware.AuthMiddleware)
	{
		admin.POST("", pc.CreateProject)
		admin.GET("", pc.ListProjects)
		admin.GET("/:projectId", pc.GetProjectById)
		admin.PATCH("/:projectId", pc.UpdateProject)
		admin.POST("/:projectId/images", uc.UploadImages)
		admin.POST("/:projectId/series", sc.PublishSeries)
		admin.GET("/:projectId/series", sc.ListSeries)
	}
}
