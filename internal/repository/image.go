package repository

import (
	"context"
	"fmt"

	"github.com/sovanra/uxfolio/internal/constant"
	"github.com/sovanra/uxfolio/internal/model"
	"github.com/sovanra/uxfolio/internal/store"
)

var imageSchema = store.Schema{
	"projectId":       store.KindString,
	"originalName":    store.KindString,
	"flow":            store.KindString,
	"tags":            store.KindArray,
	"deliverable":     store.KindString,
	"deliverableName": store.KindString,
	"ndaRequired":     store.KindBoolean,
	"sizes":           store.KindObject,
	"metadata":        store.KindObject,
	"uploadedAt":      store.KindString,
	"altText":         store.KindString,
	"caption":         store.KindString,
}

type ImageRepository struct {
	*baseRepository
	collection *store.Collection
}

func (r *ImageRepository) Create(_ context.Context, img model.Image) (*model.Image, error) {
	data, err := store.Encode(img)
	if err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	record, err := r.collection.Create(data)
	if err != nil {
		return nil, err
	}

	var created model.Image
	if err := store.Decode(record, &created); err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return &created, nil
}

func (r *ImageRepository) GetById(_ context.Context, id string) (*model.Image, error) {
	record, err := r.collection.Get(id)
	if err != nil {
		return nil, err
	}

	var img model.Image
	if err := store.Decode(record, &img); err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return &img, nil
}

func (r *ImageRepository) ListByProject(_ context.Context, projectId string) ([]model.Image, error) {
	records, err := r.collection.List(func(rec store.Record) bool {
		return rec["projectId"] == projectId
	})
	if err != nil {
		return nil, err
	}

	images := make([]model.Image, 0, len(records))
	for _, record := range records {
		var img model.Image
		if err := store.Decode(record, &img); err != nil {
			return nil, fmt.Errorf("failed to decode image: %w", err)
		}
		images = append(images, img)
	}

	return images, nil
}

// Reclassify reassigns flow/tags/deliverable on an existing image, used by
// the bulk-tag operation.
func (r *ImageRepository) Reclassify(ctx context.Context, id string, flow constant.Flow, tags []string, deliverable string, deliverableName string) (*model.Image, error) {
	patch := store.Record{}
	if flow != "" {
		patch["flow"] = string(flow)
	}
	if tags != nil {
		patch["tags"] = tags
	}
	if deliverable != "" {
		patch["deliverable"] = deliverable
	}
	if deliverableName != "" {
		patch["deliverableName"] = deliverableName
	}

	record, err := r.collection.Update(id, patch)
	if err != nil {
		return nil, err
	}

	var img model.Image
	if err := store.Decode(record, &img); err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return &img, nil
}

// Delete removes every derived size variant and then the record. Blob
// removal failures are logged and skipped: a record that blocks re-upload is
// worse than a stray file on disk.
func (r *ImageRepository) Delete(ctx context.Context, id string) error {
	img, err := r.GetById(ctx, id)
	if err != nil {
		return err
	}

	for sizeName, variant := range img.Sizes {
		if err := r.storage.Remove(ctx, variant.Path); err != nil {
			r.logger.Warnf("Failed to remove %s variant of image %s: %v", sizeName, id, err)
		}
	}

	return r.collection.Delete(id)
}
