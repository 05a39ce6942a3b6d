package gallery

import (
	"context"
	"fmt"

	"github.com/sovanra/uxfolio/internal/constant"
	"github.com/sovanra/uxfolio/internal/model"
	"github.com/sovanra/uxfolio/internal/nda"
	"github.com/sovanra/uxfolio/internal/repository"
)

// AccessError is returned when the NDA gate denies the project. Reason is
// one of the constant.NdaReason* values so the client can render the right
// prompt; ProjectTitle lets it label the code form without leaking content.
type AccessError struct {
	Reason       string
	ProjectTitle string
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("NDA access denied: %s", e.Reason)
}

// ProjectSummary is the public subset of a project. The pinned NDA code and
// status never leave the server.
type ProjectSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// Result groups a published project's visible images into the fixed flow
// buckets.
type Result struct {
	Project     ProjectSummary                  `json:"project"`
	Flows       map[constant.Flow][]model.Image `json:"flows"`
	TotalImages int                             `json:"totalImages"`
}

// Assembler builds the public gallery response for one project slug.
type Assembler struct {
	projects *repository.ProjectRepository
	images   *repository.ImageRepository
	gate     *nda.Gate
}

func NewAssembler(projects *repository.ProjectRepository, images *repository.ImageRepository, gate *nda.Gate) *Assembler {
	return &Assembler{projects: projects, images: images, gate: gate}
}

// Assemble looks the project up among published projects only; draft and
// archived projects yield store.ErrNotFound even with a valid code. The
// project-level NDA gate runs first, then a finer per-image gate: an image
// whose flow is marked private (or that is flagged itself) is dropped from a
// public project unless the code passes.
func (a *Assembler) Assemble(ctx context.Context, slug string, code string) (*Result, error) {
	project, err := a.projects.GetPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if project.NdaRequired {
		if ok, reason := a.gate.Check(code, project.NdaCode); !ok {
			return nil, &AccessError{Reason: reason, ProjectTitle: project.Title}
		}
	}

	images, err := a.images.ListByProject(ctx, project.ID)
	if err != nil {
		return nil, err
	}

	flows := make(map[constant.Flow][]model.Image, len(constant.FlowOrder))
	for _, flow := range constant.FlowOrder {
		flows[flow] = []model.Image{}
	}

	total := 0
	for _, img := range images {
		if img.NdaRequired || project.FlowNeedsNda(img.Flow) {
			if ok, _ := a.gate.Check(code, project.NdaCode); !ok {
				continue
			}
		}

		flow := img.Flow
		if !constant.IsValidFlow(flow) {
			flow = constant.FlowScreens
		}

		flows[flow] = append(flows[flow], img)
		total++
	}

	return &Result{
		Project: ProjectSummary{
			ID:          project.ID,
			Title:       project.Title,
			Slug:        project.Slug,
			Description: project.Description,
		},
		Flows:       flows,
		TotalImages: total,
	}, nil
}
