package gallery

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sovanra/uxfolio/internal/constant"
	filestorage "github.com/sovanra/uxfolio/internal/file_storage"
	"github.com/sovanra/uxfolio/internal/model"
	"github.com/sovanra/uxfolio/internal/nda"
	"github.com/sovanra/uxfolio/internal/repository"
	"github.com/sovanra/uxfolio/internal/store"
	"go.uber.org/zap"
)

type fixture struct {
	assembler *Assembler
	repo      *repository.Repository
	ctx       context.Context
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	logger := zap.NewNop().Sugar()

	s, err := store.New(t.TempDir(), logger)
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	storage, err := filestorage.NewLocalStorage(t.TempDir(), "http://localhost/uploads")
	if err != nil {
		t.Fatalf("NewLocalStorage() error = %v", err)
	}

	repo := repository.NewRepository(s, logger, storage)
	gate := nda.NewGate([]nda.CodeEntry{
		{Code: "ACME-2026", Name: "Acme Corp", Expires: time.Now().Add(24 * time.Hour)},
		{Code: "OLD-2020", Name: "Old Client", Expires: time.Now().Add(-24 * time.Hour)},
	}, nil)

	return &fixture{
		assembler: NewAssembler(repo.Project, repo.Image, gate),
		repo:      repo,
		ctx:       context.Background(),
	}
}

func (f *fixture) createProject(t *testing.T, p model.Project) *model.Project {
	t.Helper()

	created, err := f.repo.Project.Create(f.ctx, p)
	if err != nil {
		t.Fatalf("Project.Create() error = %v", err)
	}
	return created
}

func (f *fixture) createImage(t *testing.T, projectId string, flow constant.Flow, ndaRequired bool) *model.Image {
	t.Helper()

	created, err := f.repo.Image.Create(f.ctx, model.Image{
		ProjectID:       projectId,
		OriginalName:    "img.png",
		Flow:            flow,
		Tags:            []string{"ux-design"},
		Deliverable:     "screenshots",
		DeliverableName: "Screenshots",
		NdaRequired:     ndaRequired,
		Sizes:           map[string]model.SizeVariant{},
		Metadata:        model.ImageMetadata{Width: 10, Height: 10, Format: "png"},
		UploadedAt:      time.Now().UTC().Format(time.RFC3339),
		AltText:         "alt",
		Caption:         "caption",
	})
	if err != nil {
		t.Fatalf("Image.Create() error = %v", err)
	}
	return created
}

func TestAssemblePublicProject(t *testing.T) {
	f := newFixture(t)
	project := f.createProject(t, model.Project{
		Title:  "Checkout Redesign",
		Status: constant.ProjectStatusPublished,
	})
	f.createImage(t, project.ID, constant.FlowResearch, false)
	f.createImage(t, project.ID, constant.FlowDesign, false)
	f.createImage(t, project.ID, "bogus-flow", false)

	result, err := f.assembler.Assemble(f.ctx, "checkout-redesign", "")
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	if result.TotalImages != 3 {
		t.Errorf("TotalImages = %d, want 3", result.TotalImages)
	}
	if len(result.Flows) != len(constant.FlowOrder) {
		t.Errorf("Flows has %d buckets, want the fixed %d", len(result.Flows), len(constant.FlowOrder))
	}
	if len(result.Flows[constant.FlowResearch]) != 1 {
		t.Errorf("research bucket = %d images, want 1", len(result.Flows[constant.FlowResearch]))
	}
	// Unknown flows bucket into screens.
	if len(result.Flows[constant.FlowScreens]) != 1 {
		t.Errorf("screens bucket = %d images, want 1", len(result.Flows[constant.FlowScreens]))
	}
	if result.Project.Title != "Checkout Redesign" {
		t.Errorf("Project.Title = %q", result.Project.Title)
	}
}

func TestAssembleHidesUnpublishedProjects(t *testing.T) {
	f := newFixture(t)

	for _, status := range []constant.ProjectStatus{constant.ProjectStatusDraft, constant.ProjectStatusArchived} {
		project := f.createProject(t, model.Project{
			Title:  "Secret " + string(status),
			Status: status,
		})
		f.createImage(t, project.ID, constant.FlowResearch, false)

		_, err := f.assembler.Assemble(f.ctx, project.Slug, "ACME-2026")
		if !errors.Is(err, store.ErrNotFound) {
			t.Errorf("Assemble(%s project) error = %v, want ErrNotFound even with a valid code", status, err)
		}
	}
}

func TestAssembleProjectLevelNdaGate(t *testing.T) {
	f := newFixture(t)
	code := "ACME-2026"
	f.createProject(t, model.Project{
		Title:       "NDA Project",
		Status:      constant.ProjectStatusPublished,
		NdaRequired: true,
		NdaCode:     &code,
	})

	tests := []struct {
		name       string
		code       string
		wantReason string
	}{
		{"No code", "", constant.NdaReasonRequired},
		{"Wrong code", "NOPE", constant.NdaReasonInvalid},
		{"Expired code", "OLD-2020", constant.NdaReasonExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.assembler.Assemble(f.ctx, "nda-project", tt.code)

			var accessErr *AccessError
			if !errors.As(err, &accessErr) {
				t.Fatalf("Assemble() error = %v, want *AccessError", err)
			}
			if accessErr.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", accessErr.Reason, tt.wantReason)
			}
			if accessErr.ProjectTitle != "NDA Project" {
				t.Errorf("ProjectTitle = %q", accessErr.ProjectTitle)
			}
		})
	}

	// The right code unlocks it.
	if _, err := f.assembler.Assemble(f.ctx, "nda-project", code); err != nil {
		t.Errorf("Assemble() with valid code error = %v", err)
	}
}

func TestAssembleFlowLevelNdaGate(t *testing.T) {
	f := newFixture(t)
	project := f.createProject(t, model.Project{
		Title:  "Mostly Public",
		Status: constant.ProjectStatusPublished,
		FlowPrivacy: map[string]model.FlowPrivacy{
			string(constant.FlowTesting): {NdaRequired: true},
		},
	})
	f.createImage(t, project.ID, constant.FlowDesign, false)
	f.createImage(t, project.ID, constant.FlowTesting, false)

	// Without a code the testing flow is hidden even though the project
	// itself needs no NDA.
	result, err := f.assembler.Assemble(f.ctx, "mostly-public", "")
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	if len(result.Flows[constant.FlowTesting]) != 0 {
		t.Error("Expected NDA-gated flow to be empty without a code")
	}
	if result.TotalImages != 1 {
		t.Errorf("TotalImages = %d, want 1", result.TotalImages)
	}

	// With a valid code the flow appears.
	result, err = f.assembler.Assemble(f.ctx, "mostly-public", "ACME-2026")
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	if len(result.Flows[constant.FlowTesting]) != 1 {
		t.Error("Expected NDA-gated flow with a valid code")
	}
	if result.TotalImages != 2 {
		t.Errorf("TotalImages = %d, want 2", result.TotalImages)
	}
}

func TestAssembleImageLevelNdaFlag(t *testing.T) {
	f := newFixture(t)
	project := f.createProject(t, model.Project{
		Title:  "Mixed Project",
		Status: constant.ProjectStatusPublished,
	})
	f.createImage(t, project.ID, constant.FlowDesign, false)
	f.createImage(t, project.ID, constant.FlowDesign, true)

	result, err := f.assembler.Assemble(f.ctx, "mixed-project", "")
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	if result.TotalImages != 1 {
		t.Errorf("TotalImages = %d, want only the public image", result.TotalImages)
	}
}

func TestAssembleUnknownSlug(t *testing.T) {
	f := newFixture(t)

	_, err := f.assembler.Assemble(f.ctx, "never-existed", "")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Assemble() error = %v, want ErrNotFound", err)
	}
}
