package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sovanra/uxfolio/internal/constant"
	filestorage "github.com/sovanra/uxfolio/internal/file_storage"
	"github.com/sovanra/uxfolio/internal/model"
	"github.com/sovanra/uxfolio/internal/repository"
	"github.com/sovanra/uxfolio/internal/util"
	"github.com/sovanra/uxfolio/pkg/uxflow"
	"go.uber.org/zap"
)

// Overrides are caller-supplied fields that beat the classifier's output.
type Overrides struct {
	// Flow forces every file in the batch into one flow.
	Flow constant.Flow
	// BulkTag is appended to each image's tag set.
	BulkTag string
	// NdaRequired overrides the project-level default when non-nil.
	NdaRequired *bool
}

// UploadFile is one file of an upload batch, already read into memory.
type UploadFile struct {
	Name string
	Data []byte
}

type FileError struct {
	Filename string `json:"filename"`
	Error    string `json:"error"`
}

// BatchResult reports per-file outcomes. A failed file never aborts the
// batch; its error sits in Failed next to the other files' successes.
type BatchResult struct {
	Successful []model.Image `json:"successful"`
	Failed     []FileError   `json:"failed"`
}

// Pipeline is the single shared upload path: classify by file name, derive
// size variants, build the metadata record and persist it. Every entry point
// (HTTP upload, scripts) goes through here so the keyword tables and resize
// behavior cannot drift apart.
type Pipeline struct {
	logger   *zap.SugaredLogger
	storage  filestorage.Storage
	images   *repository.ImageRepository
	captions uxflow.CaptionProvider
	specs    []uxflow.SizeSpec

	// Workers bounds concurrent derivations in a batch; resizing is
	// CPU-bound so there is no point going wider than a few.
	Workers int
}

func New(logger *zap.SugaredLogger, storage filestorage.Storage, images *repository.ImageRepository, captions uxflow.CaptionProvider) *Pipeline {
	if captions == nil {
		captions = uxflow.TemplateCaptionProvider{}
	}

	return &Pipeline{
		logger:   logger,
		storage:  storage,
		images:   images,
		captions: captions,
		specs:    uxflow.DefaultSizeSpecs,
		Workers:  4,
	}
}

// Ingest runs the whole pipeline for a single file. Nothing is persisted if
// derivation fails; variant files already written are cleaned up if the
// record cannot be stored.
func (p *Pipeline) Ingest(ctx context.Context, project *model.Project, file UploadFile, o Overrides) (*model.Image, error) {
	cls := uxflow.Classify(file.Name)

	variants, meta, err := uxflow.Derive(file.Data, p.specs)
	if err != nil {
		return nil, err
	}

	sizes := make(map[string]model.SizeVariant, len(variants))
	saved := make([]string, 0, len(variants))
	for sizeName, variant := range variants {
		fileName, err := util.VariantFileName(file.Name, sizeName)
		if err != nil {
			p.removeVariants(ctx, saved)
			return nil, err
		}

		path := util.GetProjectDirectoryPath(project.ID) + "/" + fileName
		url, err := p.storage.Save(ctx, path, variant.Data, "image/jpeg")
		if err != nil {
			p.removeVariants(ctx, saved)
			return nil, fmt.Errorf("failed to store %s variant: %w", sizeName, err)
		}
		saved = append(saved, path)

		sizes[sizeName] = model.SizeVariant{
			Filename: fileName,
			Path:     path,
			URL:      url,
			Size:     int64(len(variant.Data)),
			Width:    variant.Width,
			Height:   variant.Height,
		}
	}

	record := BuildImageRecord(file.Name, project, cls, meta, sizes, o)

	captions, err := p.captions.GenerateCaptions(ctx, uxflow.CaptionContext{
		FileName:        file.Name,
		CleanedName:     util.CleanFileName(file.Name),
		DeliverableName: record.DeliverableName,
		ProjectTitle:    project.Title,
	})
	if err != nil {
		// Enrichment is optional; fall back to the deterministic template.
		p.logger.Warnf("Caption provider failed for %s: %v", file.Name, err)
		captions, _ = uxflow.TemplateCaptionProvider{}.GenerateCaptions(ctx, uxflow.CaptionContext{
			CleanedName:     util.CleanFileName(file.Name),
			DeliverableName: record.DeliverableName,
		})
	}
	record.Caption = captions.Detailed

	created, err := p.images.Create(ctx, record)
	if err != nil {
		p.removeVariants(ctx, saved)
		return nil, err
	}

	return created, nil
}

// IngestBatch processes the files on a bounded worker pool. Results keep the
// input order grouped by outcome.
func (p *Pipeline) IngestBatch(ctx context.Context, project *model.Project, files []UploadFile, o Overrides) BatchResult {
	workers := util.DetermineWorkers(len(files))
	if p.Workers > 0 && p.Workers < workers {
		workers = p.Workers
	}

	type outcome struct {
		image *model.Image
		err   error
	}
	outcomes := make([]outcome, len(files))

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for i, file := range files {
		wg.Add(1)
		go func(i int, file UploadFile) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			img, err := p.Ingest(ctx, project, file, o)
			outcomes[i] = outcome{image: img, err: err}
		}(i, file)
	}
	wg.Wait()

	result := BatchResult{
		Successful: []model.Image{},
		Failed:     []FileError{},
	}
	for i, oc := range outcomes {
		if oc.err != nil {
			p.logger.Warnf("Upload of %s failed: %v", files[i].Name, oc.err)
			result.Failed = append(result.Failed, FileError{Filename: files[i].Name, Error: oc.err.Error()})
			continue
		}
		result.Successful = append(result.Successful, *oc.image)
	}

	return result
}

func (p *Pipeline) removeVariants(ctx context.Context, paths []string) {
	for _, path := range paths {
		if err := p.storage.Remove(ctx, path); err != nil {
			p.logger.Warnf("Failed to clean up variant %s: %v", path, err)
		}
	}
}

// BuildImageRecord combines classifier output, deriver output and caller
// overrides into the image record that gets persisted. Alt text and caption
// use deterministic templates; the caption may later be replaced by a
// configured enrichment provider.
func BuildImageRecord(originalName string, project *model.Project, cls uxflow.Classification, meta *uxflow.Metadata, sizes map[string]model.SizeVariant, o Overrides) model.Image {
	flow := constant.Flow(cls.Flow)
	if o.Flow != "" && constant.IsValidFlow(o.Flow) {
		flow = o.Flow
	}

	tags := append([]string(nil), cls.Tags...)
	if o.BulkTag != "" && !containsString(tags, o.BulkTag) {
		tags = append(tags, o.BulkTag)
	}

	ndaRequired := project.NdaRequired
	if o.NdaRequired != nil {
		ndaRequired = *o.NdaRequired
	}

	if sizes == nil {
		sizes = map[string]model.SizeVariant{}
	}

	return model.Image{
		ProjectID:       project.ID,
		OriginalName:    originalName,
		Flow:            flow,
		Tags:            tags,
		Deliverable:     cls.Deliverable,
		DeliverableName: cls.DeliverableName,
		NdaRequired:     ndaRequired,
		Sizes:           sizes,
		Metadata: model.ImageMetadata{
			Width:    meta.Width,
			Height:   meta.Height,
			Format:   meta.Format,
			HasAlpha: meta.HasAlpha,
		},
		UploadedAt: time.Now().UTC().Format(time.RFC3339),
		AltText:    cls.DeliverableName + " - " + util.CleanFileName(originalName),
		Caption:    cls.DeliverableName + " documentation",
	}
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
