package controller

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sovanra/uxfolio/internal/constant"
	"github.com/sovanra/uxfolio/internal/pipeline"
	"github.com/sovanra/uxfolio/internal/store"
	"github.com/sovanra/uxfolio/internal/util"
)

type UploadController struct {
	*baseController
}

const (
	ErrNoFilesUploaded = "no image files uploaded"
	ErrTooManyFiles    = "too many files; at most %d per upload"
	ErrInvalidFlow     = "invalid flow"
)

// UploadImages ingests a multipart batch of images for one project. Each
// file is classified, resized and stored independently; one broken file
// never aborts the rest of the batch.
func (uc UploadController) UploadImages(ctx *gin.Context) {
	projectId := ctx.Params.ByName("projectId")
	if projectId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Project ID is required", util.GenerateErrorMessages(errors.New(ErrProjectIdRequired), "projectId"), nil)
		return
	}

	type Request struct {
		Flow        string `form:"flow"`
		NdaRequired *bool  `form:"ndaRequired"`
		BulkTag     string `form:"bulkTag"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if body.Flow != "" && !constant.IsValidFlow(constant.Flow(body.Flow)) {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid flow", util.GenerateErrorMessages(errors.New(ErrInvalidFlow), "flow"), nil)
		return
	}

	project, err := uc.app.Repository.Project.GetById(ctx, projectId)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(errors.New(ErrProjectNotFound), "project"), nil)
			return
		}
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to load project", util.GenerateErrorMessages(err), nil)
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid multipart form", util.GenerateErrorMessages(err), nil)
		return
	}

	fileHeaders := form.File["images"]
	if len(fileHeaders) == 0 {
		fileHeaders = form.File["images[]"]
	}
	if len(fileHeaders) == 0 {
		util.ResponseFailed(ctx, http.StatusBadRequest, "No files uploaded", util.GenerateErrorMessages(errors.New(ErrNoFilesUploaded), "images"), nil)
		return
	}
	if len(fileHeaders) > constant.MaxUploadFiles {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Too many files", util.GenerateErrorMessages(fmt.Errorf(ErrTooManyFiles, constant.MaxUploadFiles), "images"), nil)
		return
	}

	// Oversized or unreadable files become per-file failures up front so the
	// rest of the batch still goes through the pipeline.
	files := make([]pipeline.UploadFile, 0, len(fileHeaders))
	failed := []pipeline.FileError{}
	for _, fh := range fileHeaders {
		if fh.Size > constant.MaxUploadFileSize {
			failed = append(failed, pipeline.FileError{
				Filename: fh.Filename,
				Error:    fmt.Sprintf("file exceeds the %dMB limit", constant.MaxUploadFileSize>>20),
			})
			continue
		}

		src, err := fh.Open()
		if err != nil {
			failed = append(failed, pipeline.FileError{Filename: fh.Filename, Error: err.Error()})
			continue
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			failed = append(failed, pipeline.FileError{Filename: fh.Filename, Error: err.Error()})
			continue
		}

		files = append(files, pipeline.UploadFile{Name: fh.Filename, Data: data})
	}

	if admin, err := uc.getAuthAdmin(ctx); err == nil {
		uc.app.Logger.Infof("Admin %s uploading %d files to project %s", admin.Username, len(files), project.ID)
	}

	result := uc.app.Pipeline.IngestBatch(ctx, project, files, pipeline.Overrides{
		Flow:        constant.Flow(body.Flow),
		BulkTag:     body.BulkTag,
		NdaRequired: body.NdaRequired,
	})
	result.Failed = append(result.Failed, failed...)

	util.ResponseSuccess(ctx, gin.H{
		"successful": result.Successful,
		"failed":     result.Failed,
	})
}
