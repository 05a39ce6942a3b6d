package repository

import (
	"context"
	"fmt"

	"github.com/sovanra/uxfolio/internal/model"
	"github.com/sovanra/uxfolio/internal/store"
)

var seriesSchema = store.Schema{
	"projectId":   store.KindString,
	"title":       store.KindString,
	"description": store.KindString,
	"flowType":    store.KindString,
	"images":      store.KindArray,
}

type SeriesRepository struct {
	*baseRepository
	collection *store.Collection
}

func (r *SeriesRepository) Create(_ context.Context, s model.Series) (*model.Series, error) {
	data, err := store.Encode(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode series: %w", err)
	}

	record, err := r.collection.Create(data)
	if err != nil {
		return nil, err
	}

	var created model.Series
	if err := store.Decode(record, &created); err != nil {
		return nil, fmt.Errorf("failed to decode series: %w", err)
	}

	return &created, nil
}

func (r *SeriesRepository) ListByProject(_ context.Context, projectId string) ([]model.Series, error) {
	records, err := r.collection.List(func(rec store.Record) bool {
		return rec["projectId"] == projectId
	})
	if err != nil {
		return nil, err
	}

	series := make([]model.Series, 0, len(records))
	for _, record := range records {
		var s model.Series
		if err := store.Decode(record, &s); err != nil {
			return nil, fmt.Errorf("failed to decode series: %w", err)
		}
		series = append(series, s)
	}

	return series, nil
}
