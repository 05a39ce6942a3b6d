package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sovanra/uxfolio/internal/constant"
	"github.com/sovanra/uxfolio/internal/model"
	"github.com/sovanra/uxfolio/internal/store"
	"github.com/sovanra/uxfolio/internal/util"
)

type SeriesController struct {
	*baseController
}

const (
	ErrImageNotInProject = "image %s does not belong to this project"
)

// PublishSeries snapshots an ordered set of the project's images into a named
// series. The order is the order of imageIds in the request; dimensions come
// from each image's stored metadata.
func (sc SeriesController) PublishSeries(ctx *gin.Context) {
	projectId := ctx.Params.ByName("projectId")
	if projectId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Project ID is required", util.GenerateErrorMessages(errors.New(ErrProjectIdRequired), "projectId"), nil)
		return
	}

	type Request struct {
		Title       string   `json:"title" binding:"required,strNotEmpty,cmax=100"`
		Description string   `json:"description"`
		FlowType    string   `json:"flowType"`
		ImageIds    []string `json:"imageIds" binding:"required,min=1"`
	}
	var body Request

	if err := ctx.ShouldBindJSON(&body); err != nil {
		sc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if body.FlowType != "" && !constant.IsValidFlow(constant.Flow(body.FlowType)) {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid flow", util.GenerateErrorMessages(errors.New(ErrInvalidFlow), "flowType"), nil)
		return
	}

	if _, err := sc.app.Repository.Project.GetById(ctx, projectId); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(errors.New(ErrProjectNotFound), "project"), nil)
			return
		}
		sc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to load project", util.GenerateErrorMessages(err), nil)
		return
	}

	seriesImages := make([]model.SeriesImage, 0, len(body.ImageIds))
	for i, imageId := range body.ImageIds {
		img, err := sc.app.Repository.Image.GetById(ctx, imageId)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				util.ResponseFailed(ctx, http.StatusNotFound, "Image not found", util.GenerateErrorMessages(errors.New(ErrImageNotFound), "imageIds"), nil)
				return
			}
			sc.app.Logger.Error(err)
			util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to load image", util.GenerateErrorMessages(err), nil)
			return
		}
		if img.ProjectID != projectId {
			util.ResponseFailed(ctx, http.StatusBadRequest, "Image not in project", util.GenerateErrorMessages(fmt.Errorf(ErrImageNotInProject, imageId), "imageIds"), nil)
			return
		}

		seriesImages = append(seriesImages, model.SeriesImage{
			ID:          img.ID,
			Name:        img.DeliverableName,
			Description: img.Caption,
			Order:       i,
			Width:       img.Metadata.Width,
			Height:      img.Metadata.Height,
			Optimized:   len(img.Sizes) > 0,
		})
	}

	series, err := sc.app.Repository.Series.Create(ctx, model.Series{
		ProjectID:   projectId,
		Title:       body.Title,
		Description: body.Description,
		FlowType:    body.FlowType,
		Images:      seriesImages,
	})
	if err != nil {
		sc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to publish series", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"series": series})
}

func (sc SeriesController) ListSeries(ctx *gin.Context) {
	projectId := ctx.Params.ByName("projectId")
	if projectId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Project ID is required", util.GenerateErrorMessages(errors.New(ErrProjectIdRequired), "projectId"), nil)
		return
	}

	series, err := sc.app.Repository.Series.ListByProject(ctx, projectId)
	if err != nil {
		sc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list series", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"series": series, "total": len(series)})
}
