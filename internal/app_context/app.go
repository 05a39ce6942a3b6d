package appcontext

import (
	"github.com/sovanra/uxfolio/internal/auth"
	"github.com/sovanra/uxfolio/internal/config"
	filestorage "github.com/sovanra/uxfolio/internal/file_storage"
	"github.com/sovanra/uxfolio/internal/gallery"
	"github.com/sovanra/uxfolio/internal/nda"
	"github.com/sovanra/uxfolio/internal/pipeline"
	"github.com/sovanra/uxfolio/internal/repository"
	"go.uber.org/zap"
)

// Application contains core dependencies for the app.
type Application struct {
	// Config holds application settings provided from .env file.
	Config *config.Config

	Logger *zap.SugaredLogger

	// Repository provides access to the flat-file data storage operations.
	Repository *repository.Repository

	// JWTService manages JWT operations for admin authentication such as generate, verify, refresh token.
	JWTService auth.JWTInterface

	// Storage persists derived image variants (local disk or S3).
	Storage filestorage.Storage

	// Pipeline is the shared upload ingestion path.
	Pipeline *pipeline.Pipeline

	// Gallery assembles the public, NDA-filtered case-study responses.
	Gallery *gallery.Assembler

	// NdaGate validates access codes against the configured table.
	NdaGate *nda.Gate
}
