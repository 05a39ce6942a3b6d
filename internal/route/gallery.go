package route

import (
	"github.com/gin-gonic/gin"
	"github.com/sovanra/uxfolio/internal/controller"
)

func Public_Gallery(r *gin.RouterGroup, gc *controller.GalleryController, nc *controller.NdaController) {
	{
		r.GET("/gallery/:projectSlug", gc.GetGallery)
		r.POST("/validate-nda", nc.ValidateNda)
	}
}
