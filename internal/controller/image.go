package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sovanra/uxfolio/internal/constant"
	"github.com/sovanra/uxfolio/internal/model"
	"github.com/sovanra/uxfolio/internal/store"
	"github.com/sovanra/uxfolio/internal/util"
)

type ImageController struct {
	*baseController
}

const (
	ErrImageIdRequired = "image id is required"
	ErrImageNotFound   = "image not found"
)

// DeleteImage removes every derived size variant and then the record.
func (ic ImageController) DeleteImage(ctx *gin.Context) {
	imageId := ctx.Params.ByName("imageId")
	if imageId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Image ID is required", util.GenerateErrorMessages(errors.New(ErrImageIdRequired), "imageId"), nil)
		return
	}

	if err := ic.app.Repository.Image.Delete(ctx, imageId); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Image not found", util.GenerateErrorMessages(errors.New(ErrImageNotFound), "image"), nil)
			return
		}
		ic.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete image", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"deleted": imageId})
}

// BulkTag reassigns flow/tags/deliverable on a set of images. Outcomes are
// per image; one bad id never aborts the rest.
func (ic ImageController) BulkTag(ctx *gin.Context) {
	type Request struct {
		ImageIds        []string `json:"imageIds" binding:"required,min=1"`
		Flow            string   `json:"flow"`
		Tags            []string `json:"tags"`
		Deliverable     string   `json:"deliverable"`
		DeliverableName string   `json:"deliverableName"`
	}
	var body Request

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ic.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if body.Flow != "" && !constant.IsValidFlow(constant.Flow(body.Flow)) {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid flow", util.GenerateErrorMessages(errors.New(ErrInvalidFlow), "flow"), nil)
		return
	}

	type itemError struct {
		ImageId string `json:"imageId"`
		Error   string `json:"error"`
	}
	updated := []model.Image{}
	failed := []itemError{}

	for _, imageId := range body.ImageIds {
		img, err := ic.app.Repository.Image.Reclassify(ctx, imageId,
			constant.Flow(body.Flow), body.Tags, body.Deliverable, body.DeliverableName)
		if err != nil {
			failed = append(failed, itemError{ImageId: imageId, Error: err.Error()})
			continue
		}
		updated = append(updated, *img)
	}

	util.ResponseSuccess(ctx, gin.H{"updated": updated, "failed": failed})
}
