package route

import (
	"github.com/gin-gonic/gin"
	"github.com/sovanra/uxfolio/internal/controller"
	"github.com/sovanra/uxfolio/internal/middleware"
)

func Admin_Images(r *gin.RouterGroup, ic *controller.ImageController, middleware *middleware.Middleware) {
	admin := r.Group("/admin/images")
	admin.Use(middleware.AuthMiddleware)
	{
		admin.PATCH("/bulk-tag", ic.BulkTag)
		admin.DELETE("/:imageId", ic.DeleteImage)
	}
}
