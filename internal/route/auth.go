package route

import (
	"github.com/gin-gonic/gin"
	"github.com/sovanra/uxfolio/internal/controller"
)

func Admin_Auth(r *gin.RouterGroup, authController *controller.AuthController) {
	admin := r.Group("/admin")
	{
		admin.POST("/login", authController.Login)
		admin.POST("/refresh", authController.Refresh)
	}
}
