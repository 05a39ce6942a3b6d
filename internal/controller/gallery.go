package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sovanra/uxfolio/internal/gallery"
	"github.com/sovanra/uxfolio/internal/store"
	"github.com/sovanra/uxfolio/internal/util"
)

type GalleryController struct {
	*baseController
}

const (
	ErrProjectSlugRequired = "project slug is required"
)

// GetGallery serves the public gallery for one published project. The NDA
// code, when the visitor has one, comes in via the x-nda-code header or the
// ndaCode query parameter.
func (gc GalleryController) GetGallery(ctx *gin.Context) {
	slug := ctx.Params.ByName("projectSlug")
	if slug == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Project slug is required", util.GenerateErrorMessages(errors.New(ErrProjectSlugRequired), "projectSlug"), nil)
		return
	}

	code := ctx.GetHeader("x-nda-code")
	if code == "" {
		code = ctx.Query("ndaCode")
	}

	result, err := gc.app.Gallery.Assemble(ctx, slug, code)
	if err != nil {
		var accessErr *gallery.AccessError

		switch {
		case errors.As(err, &accessErr):
			util.ResponseFailed(ctx, http.StatusForbidden, "NDA code required", nil, gin.H{
				"requiresNDA":  true,
				"reason":       accessErr.Reason,
				"projectTitle": accessErr.ProjectTitle,
			})
		case errors.Is(err, store.ErrNotFound):
			util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(errors.New(ErrProjectNotFound), "project"), nil)
		default:
			gc.app.Logger.Error(err)
			util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to build gallery", util.GenerateErrorMessages(err), nil)
		}
		return
	}

	util.ResponseSuccess(ctx, result)
}
