package repository

import (
	filestorage "github.com/sovanra/uxfolio/internal/file_storage"
	"github.com/sovanra/uxfolio/internal/store"
	"go.uber.org/zap"
)

type baseRepository struct {
	store   *store.Store
	logger  *zap.SugaredLogger
	storage filestorage.Storage
}

type Repository struct {
	Project *ProjectRepository
	Image   *ImageRepository
	Series  *SeriesRepository
}

func newBaseRepository(s *store.Store, logger *zap.SugaredLogger, storage filestorage.Storage) *baseRepository {
	return &baseRepository{store: s, logger: logger, storage: storage}
}

func NewRepository(s *store.Store, logger *zap.SugaredLogger, storage filestorage.Storage) *Repository {
	br := newBaseRepository(s, logger, storage)

	return &Repository{
		Project: &ProjectRepository{baseRepository: br, collection: s.Collection("projects", projectSchema)},
		Image:   &ImageRepository{baseRepository: br, collection: s.Collection("images", imageSchema)},
		Series:  &SeriesRepository{baseRepository: br, collection: s.Collection("series", seriesSchema)},
	}
}
