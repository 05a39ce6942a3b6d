package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/sovanra/uxfolio/internal/constant"
	"github.com/sovanra/uxfolio/internal/model"
	"github.com/sovanra/uxfolio/internal/store"
	"github.com/sovanra/uxfolio/internal/util"
)

// ErrSlugTaken is returned when a published project already uses the slug.
var ErrSlugTaken = errors.New("slug already used by a published project")

var projectSchema = store.Schema{
	"title":       store.KindString,
	"slug":        store.KindString,
	"description": store.KindString,
	"status":      store.KindString,
	"ndaRequired": store.KindBoolean,
	"ndaCode":     store.KindMixed, // string or null
	"flowPrivacy": store.KindObject,
}

type ProjectRepository struct {
	*baseRepository
	collection *store.Collection
}

// Create persists a new project. The slug derives from the title when not
// supplied, the status defaults to draft.
func (r *ProjectRepository) Create(_ context.Context, p model.Project) (*model.Project, error) {
	if p.Slug == "" {
		p.Slug = util.Slugify(p.Title)
	}
	if p.Status == "" {
		p.Status = constant.ProjectStatusDraft
	}
	if p.FlowPrivacy == nil {
		p.FlowPrivacy = map[string]model.FlowPrivacy{}
	}

	if p.Status == constant.ProjectStatusPublished {
		if err := r.ensureSlugFree(p.Slug, ""); err != nil {
			return nil, err
		}
	}

	data, err := store.Encode(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode project: %w", err)
	}

	record, err := r.collection.Create(data)
	if err != nil {
		return nil, err
	}

	var created model.Project
	if err := store.Decode(record, &created); err != nil {
		return nil, fmt.Errorf("failed to decode project: %w", err)
	}

	return &created, nil
}

func (r *ProjectRepository) GetById(_ context.Context, id string) (*model.Project, error) {
	record, err := r.collection.Get(id)
	if err != nil {
		return nil, err
	}

	var p model.Project
	if err := store.Decode(record, &p); err != nil {
		return nil, fmt.Errorf("failed to decode project: %w", err)
	}

	return &p, nil
}

// GetPublishedBySlug performs the public gallery lookup. Draft and archived
// projects are invisible here and yield store.ErrNotFound, never a hint that
// the slug exists.
func (r *ProjectRepository) GetPublishedBySlug(_ context.Context, slug string) (*model.Project, error) {
	records, err := r.collection.List(func(rec store.Record) bool {
		return rec["slug"] == slug && rec["status"] == string(constant.ProjectStatusPublished)
	})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, store.ErrNotFound
	}

	var p model.Project
	if err := store.Decode(records[0], &p); err != nil {
		return nil, fmt.Errorf("failed to decode project: %w", err)
	}

	return &p, nil
}

func (r *ProjectRepository) List(_ context.Context) ([]model.Project, error) {
	records, err := r.collection.List(nil)
	if err != nil {
		return nil, err
	}

	projects := make([]model.Project, 0, len(records))
	for _, record := range records {
		var p model.Project
		if err := store.Decode(record, &p); err != nil {
			return nil, fmt.Errorf("failed to decode project: %w", err)
		}
		projects = append(projects, p)
	}

	return projects, nil
}

// ProjectPatch carries a partial update; nil fields are left untouched.
type ProjectPatch struct {
	Title       *string                      `json:"title"`
	Slug        *string                      `json:"slug"`
	Description *string                      `json:"description"`
	Status      *constant.ProjectStatus      `json:"status"`
	NdaRequired *bool                        `json:"ndaRequired"`
	NdaCode     *string                      `json:"ndaCode"`
	FlowPrivacy map[string]model.FlowPrivacy `json:"flowPrivacy"`
}

func (r *ProjectRepository) Update(ctx context.Context, id string, patch ProjectPatch) (*model.Project, error) {
	current, err := r.GetById(ctx, id)
	if err != nil {
		return nil, err
	}

	data := store.Record{}
	if patch.Title != nil {
		data["title"] = *patch.Title
	}
	if patch.Slug != nil {
		data["slug"] = util.Slugify(*patch.Slug)
	}
	if patch.Description != nil {
		data["description"] = *patch.Description
	}
	if patch.Status != nil {
		data["status"] = string(*patch.Status)
	}
	if patch.NdaRequired != nil {
		data["ndaRequired"] = *patch.NdaRequired
	}
	if patch.NdaCode != nil {
		data["ndaCode"] = *patch.NdaCode
	}
	if patch.FlowPrivacy != nil {
		data["flowPrivacy"] = patch.FlowPrivacy
	}

	// Publishing (or renaming while published) must keep the public slug
	// unique.
	slug := current.Slug
	if s, ok := data["slug"].(string); ok {
		slug = s
	}
	status := current.Status
	if s, ok := data["status"].(string); ok {
		status = constant.ProjectStatus(s)
	}
	if status == constant.ProjectStatusPublished {
		if err := r.ensureSlugFree(slug, id); err != nil {
			return nil, err
		}
	}

	record, err := r.collection.Update(id, data)
	if err != nil {
		return nil, err
	}

	var p model.Project
	if err := store.Decode(record, &p); err != nil {
		return nil, fmt.Errorf("failed to decode project: %w", err)
	}

	return &p, nil
}

func (r *ProjectRepository) ensureSlugFree(slug string, excludeId string) error {
	records, err := r.collection.List(func(rec store.Record) bool {
		return rec["slug"] == slug &&
			rec["status"] == string(constant.ProjectStatusPublished) &&
			rec[store.FieldID] != excludeId
	})
	if err != nil {
		return err
	}
	if len(records) > 0 {
		return ErrSlugTaken
	}

	return nil
}
