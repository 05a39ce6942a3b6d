package pipeline

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/sovanra/uxfolio/internal/constant"
	filestorage "github.com/sovanra/uxfolio/internal/file_storage"
	"github.com/sovanra/uxfolio/internal/model"
	"github.com/sovanra/uxfolio/internal/repository"
	"github.com/sovanra/uxfolio/internal/store"
	"github.com/sovanra/uxfolio/pkg/uxflow"
	"go.uber.org/zap"
)

type testEnv struct {
	pipeline   *Pipeline
	repo       *repository.Repository
	uploadsDir string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := zap.NewNop().Sugar()

	s, err := store.New(t.TempDir(), logger)
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}

	uploadsDir := t.TempDir()
	storage, err := filestorage.NewLocalStorage(uploadsDir, "http://localhost:8080/uploads")
	if err != nil {
		t.Fatalf("NewLocalStorage() error = %v", err)
	}

	repo := repository.NewRepository(s, logger, storage)

	return &testEnv{
		pipeline:   New(logger, storage, repo.Image, nil),
		repo:       repo,
		uploadsDir: uploadsDir,
	}
}

func testProject() *model.Project {
	p := &model.Project{
		Title:  "Checkout Redesign",
		Slug:   "checkout-redesign",
		Status: constant.ProjectStatusPublished,
	}
	p.ID = "proj-1"
	return p
}

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 120, G: 80, B: 40, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test png: %v", err)
	}
	return buf.Bytes()
}

func TestIngestWireframe(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	img, err := env.pipeline.Ingest(ctx, testProject(), UploadFile{
		Name: "wireframe-checkout-flow.png",
		Data: testPNG(t, 1000, 500),
	}, Overrides{})
	if err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}

	if img.Flow != constant.FlowIdeation {
		t.Errorf("Flow = %q, want %q", img.Flow, constant.FlowIdeation)
	}
	if img.Deliverable != "wireframes" {
		t.Errorf("Deliverable = %q, want wireframes", img.Deliverable)
	}
	if len(img.Sizes) != 5 {
		t.Fatalf("Got %d size variants, want 5", len(img.Sizes))
	}
	if thumb := img.Sizes["thumbnail"]; thumb.Width != 400 || thumb.Height != 300 {
		t.Errorf("thumbnail = %dx%d, want 400x300", thumb.Width, thumb.Height)
	}
	if img.AltText != "Wireframes - wireframe checkout flow" {
		t.Errorf("AltText = %q", img.AltText)
	}
	if img.Caption != "Wireframes documentation" {
		t.Errorf("Caption = %q", img.Caption)
	}

	// Variant files exist on disk under the project directory.
	for sizeName, variant := range img.Sizes {
		fullPath := filepath.Join(env.uploadsDir, filepath.FromSlash(variant.Path))
		info, err := os.Stat(fullPath)
		if err != nil {
			t.Errorf("%s variant missing on disk: %v", sizeName, err)
			continue
		}
		if info.Size() != variant.Size {
			t.Errorf("%s variant size = %d, record says %d", sizeName, info.Size(), variant.Size)
		}
	}

	// Round trip through the store returns the same record.
	stored, err := env.repo.Image.GetById(ctx, img.ID)
	if err != nil {
		t.Fatalf("GetById() error = %v", err)
	}
	if stored.CreatedAt != stored.UpdatedAt {
		t.Error("Expected createdAt == updatedAt on creation")
	}
	if stored.OriginalName != "wireframe-checkout-flow.png" {
		t.Errorf("OriginalName = %q", stored.OriginalName)
	}
}

func TestIngestOverrides(t *testing.T) {
	env := newTestEnv(t)
	ndaRequired := true

	img, err := env.pipeline.Ingest(context.Background(), testProject(), UploadFile{
		Name: "wireframe-home.png",
		Data: testPNG(t, 100, 100),
	}, Overrides{
		Flow:        constant.FlowResults,
		BulkTag:     "case-study-hero",
		NdaRequired: &ndaRequired,
	})
	if err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}

	if img.Flow != constant.FlowResults {
		t.Errorf("Flow = %q, want override %q", img.Flow, constant.FlowResults)
	}
	if !containsString(img.Tags, "case-study-hero") {
		t.Errorf("Tags = %v, want bulk tag appended", img.Tags)
	}
	if !img.NdaRequired {
		t.Error("Expected NDA override to be applied")
	}
	// Deliverable still comes from the classifier.
	if img.Deliverable != "wireframes" {
		t.Errorf("Deliverable = %q, want wireframes", img.Deliverable)
	}
}

func TestIngestBatchRecordsPerFileFailures(t *testing.T) {
	env := newTestEnv(t)

	result := env.pipeline.IngestBatch(context.Background(), testProject(), []UploadFile{
		{Name: "persona-anna.png", Data: testPNG(t, 300, 300)},
		{Name: "broken.png", Data: []byte("not an image")},
		{Name: "usability-testing-1.png", Data: testPNG(t, 300, 300)},
	}, Overrides{})

	if len(result.Successful) != 2 {
		t.Errorf("Successful = %d, want 2", len(result.Successful))
	}
	if len(result.Failed) != 1 {
		t.Fatalf("Failed = %d, want 1", len(result.Failed))
	}
	if result.Failed[0].Filename != "broken.png" {
		t.Errorf("Failed filename = %q", result.Failed[0].Filename)
	}
	if result.Failed[0].Error == "" {
		t.Error("Expected a per-file error message")
	}
}

func TestDeleteImageRemovesVariants(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	img, err := env.pipeline.Ingest(ctx, testProject(), UploadFile{
		Name: "mockup-dashboard.png",
		Data: testPNG(t, 500, 500),
	}, Overrides{})
	if err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}

	if err := env.repo.Image.Delete(ctx, img.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	for sizeName, variant := range img.Sizes {
		fullPath := filepath.Join(env.uploadsDir, filepath.FromSlash(variant.Path))
		if _, err := os.Stat(fullPath); !os.IsNotExist(err) {
			t.Errorf("%s variant still on disk after delete", sizeName)
		}
	}

	if _, err := env.repo.Image.GetById(ctx, img.ID); err == nil {
		t.Error("Expected record lookup to fail after delete")
	}
}

func TestBuildImageRecordDefaults(t *testing.T) {
	project := testProject()
	project.NdaRequired = true

	cls := uxflow.Classify("user-research-interview-01.png")
	record := BuildImageRecord("user-research-interview-01.png", project, cls,
		&uxflow.Metadata{Width: 10, Height: 10, Format: "png"}, nil, Overrides{})

	if record.Flow != constant.FlowResearch {
		t.Errorf("Flow = %q", record.Flow)
	}
	if !record.NdaRequired {
		t.Error("Expected image to inherit the project NDA default")
	}
	if record.Sizes == nil {
		t.Error("Sizes must never be nil")
	}
	if record.Metadata.Format != "png" {
		t.Errorf("Metadata.Format = %q", record.Metadata.Format)
	}
}
