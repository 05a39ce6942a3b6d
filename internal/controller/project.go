package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sovanra/uxfolio/internal/constant"
	"github.com/sovanra/uxfolio/internal/model"
	"github.com/sovanra/uxfolio/internal/repository"
	"github.com/sovanra/uxfolio/internal/store"
	"github.com/sovanra/uxfolio/internal/util"
)

type ProjectController struct {
	*baseController
}

const (
	ErrProjectIdRequired = "project id is required"
	ErrProjectNotFound   = "project not found"
	ErrInvalidStatus     = "invalid project status"
	ErrInvalidFlowName   = "invalid flow name"
)

func (pc ProjectController) CreateProject(ctx *gin.Context) {
	type Request struct {
		Title       string  `json:"title" form:"title" binding:"required,strNotEmpty,cmax=100"`
		Slug        string  `json:"slug" form:"slug"`
		Description string  `json:"description" form:"description"`
		Status      string  `json:"status" form:"status"`
		NdaRequired bool    `json:"ndaRequired" form:"ndaRequired"`
		NdaCode     *string `json:"ndaCode" form:"ndaCode"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	status := constant.ProjectStatus(body.Status)
	if body.Status != "" && !constant.IsValidProjectStatus(status) {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid status", util.GenerateErrorMessages(errors.New(ErrInvalidStatus), "status"), nil)
		return
	}

	project, err := pc.app.Repository.Project.Create(ctx, model.Project{
		Title:       body.Title,
		Slug:        body.Slug,
		Description: body.Description,
		Status:      status,
		NdaRequired: body.NdaRequired,
		NdaCode:     body.NdaCode,
	})
	if err != nil {
		pc.respondProjectError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"project": project})
}

type GetProjectsRequest struct {
	Page     uint   `json:"page" form:"page" binding:"omitempty"`
	PageSize uint   `json:"pageSize" form:"pageSize" binding:"omitempty"`
	Search   string `json:"search" form:"search" binding:"omitempty"`
}

func (pc ProjectController) ListProjects(ctx *gin.Context) {
	var params GetProjectsRequest

	if err := ctx.ShouldBindQuery(&params); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if params.Page == 0 {
		params.Page = 1
	}
	if params.PageSize == 0 {
		params.PageSize = constant.DefaultPageSize
	}
	if params.PageSize > constant.MaxPageSize {
		params.PageSize = constant.MaxPageSize
	}

	projects, err := pc.app.Repository.Project.List(ctx)
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list projects", util.GenerateErrorMessages(err), nil)
		return
	}

	if params.Search != "" {
		filtered := make([]model.Project, 0, len(projects))
		for _, p := range projects {
			if strings.Contains(strings.ToLower(p.Title), strings.ToLower(params.Search)) {
				filtered = append(filtered, p)
			}
		}
		projects = filtered
	}

	total := int64(len(projects))
	page := util.Paginate(projects, params.Page, params.PageSize)

	util.ResponseSuccess(ctx, gin.H{
		"total":     total,
		"projects":  page,
		"page":      params.Page,
		"pageSize":  params.PageSize,
		"totalPage": util.CalculateTotalPage(total, params.PageSize),
		"search":    params.Search,
	})
}

func (pc ProjectController) GetProjectById(ctx *gin.Context) {
	projectId := ctx.Params.ByName("projectId")
	if projectId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Project ID is required", util.GenerateErrorMessages(errors.New(ErrProjectIdRequired), "projectId"), nil)
		return
	}

	project, err := pc.app.Repository.Project.GetById(ctx, projectId)
	if err != nil {
		pc.respondProjectError(ctx, err)
		return
	}

	images, err := pc.app.Repository.Image.ListByProject(ctx, projectId)
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list project images", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"project": project, "images": images, "totalImages": len(images)})
}

func (pc ProjectController) UpdateProject(ctx *gin.Context) {
	projectId := ctx.Params.ByName("projectId")
	if projectId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Project ID is required", util.GenerateErrorMessages(errors.New(ErrProjectIdRequired), "projectId"), nil)
		return
	}

	type Request struct {
		Title       *string                      `json:"title"`
		Slug        *string                      `json:"slug"`
		Description *string                      `json:"description"`
		Status      *string                      `json:"status"`
		NdaRequired *bool                        `json:"ndaRequired"`
		NdaCode     *string                      `json:"ndaCode"`
		FlowPrivacy map[string]model.FlowPrivacy `json:"flowPrivacy"`
	}
	var body Request

	if err := ctx.ShouldBindJSON(&body); err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	patch := repository.ProjectPatch{
		Title:       body.Title,
		Slug:        body.Slug,
		Description: body.Description,
		NdaRequired: body.NdaRequired,
		NdaCode:     body.NdaCode,
		FlowPrivacy: body.FlowPrivacy,
	}

	if body.Status != nil {
		status := constant.ProjectStatus(*body.Status)
		if !constant.IsValidProjectStatus(status) {
			util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid status", util.GenerateErrorMessages(errors.New(ErrInvalidStatus), "status"), nil)
			return
		}
		patch.Status = &status
	}

	for flowName := range body.FlowPrivacy {
		if !constant.IsValidFlow(constant.Flow(flowName)) {
			util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid flow privacy", util.GenerateErrorMessages(errors.New(ErrInvalidFlowName), "flowPrivacy"), nil)
			return
		}
	}

	project, err := pc.app.Repository.Project.Update(ctx, projectId, patch)
	if err != nil {
		pc.respondProjectError(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"project": project})
}

func (pc ProjectController) respondProjectError(ctx *gin.Context, err error) {
	var validationErr *store.ValidationError

	switch {
	case errors.Is(err, store.ErrNotFound):
		util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(errors.New(ErrProjectNotFound), "project"), nil)
	case errors.Is(err, repository.ErrSlugTaken):
		util.ResponseFailed(ctx, http.StatusBadRequest, "Slug already in use", util.GenerateErrorMessages(err, "slug"), nil)
	case errors.As(err, &validationErr):
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid project data", util.GenerateErrorMessages(err), nil)
	default:
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to save project", util.GenerateErrorMessages(err), nil)
	}
}
