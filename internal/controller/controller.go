package controller

import (
	"errors"

	"github.com/gin-gonic/gin"
	appcontext "github.com/sovanra/uxfolio/internal/app_context"
	"github.com/sovanra/uxfolio/internal/auth"
)

type baseController struct {
	app *appcontext.Application
}

type Controller struct {
	Index   *IndexController
	Auth    *AuthController
	Project *ProjectController
	Upload  *UploadController
	Image   *ImageController
	Series  *SeriesController
	Gallery *GalleryController
	Nda     *NdaController
}

func newBaseController(app *appcontext.Application) *baseController {
	return &baseController{app: app}
}

func NewController(app *appcontext.Application) *Controller {
	bc := newBaseController(app)

	return &Controller{
		Index:   &IndexController{baseController: bc},
		Auth:    &AuthController{baseController: bc},
		Project: &ProjectController{baseController: bc},
		Upload:  &UploadController{baseController: bc},
		Image:   &ImageController{baseController: bc},
		Series:  &SeriesController{baseController: bc},
		Gallery: &GalleryController{baseController: bc},
		Nda:     &NdaController{baseController: bc},
	}
}

func (b *baseController) getAuthAdmin(ctx *gin.Context) (*auth.JWTPayload, error) {
	admin, exists := ctx.Get("admin")
	if !exists {
		return nil, errors.New("admin not found in context")
	}

	payload, ok := admin.(auth.JWTPayload)
	if !ok {
		return nil, errors.New("malformed admin payload in context")
	}

	return &payload, nil
}
