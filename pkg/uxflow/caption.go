package uxflow

import "context"

// Captions are the generated descriptions for one image at the three places
// the front end shows text.
type Captions struct {
	Thumbnail string `json:"thumbnail"`
	Lightbox  string `json:"lightbox"`
	Detailed  string `json:"detailed"`
}

// CaptionContext carries what a provider may use to describe an image.
type CaptionContext struct {
	FileName        string
	CleanedName     string
	DeliverableName string
	ProjectTitle    string
}

// CaptionProvider is an optional enrichment hook. Implementations may call
// out to an external vision model; the core pipeline never depends on one
// being configured and falls back to TemplateCaptionProvider.
type CaptionProvider interface {
	GenerateCaptions(ctx context.Context, c CaptionContext) (Captions, error)
}

// TemplateCaptionProvider is the deterministic, language-free default. It
// fills the same templates the record builder uses for alt text.
type TemplateCaptionProvider struct{}

var _ CaptionProvider = TemplateCaptionProvider{}

func (TemplateCaptionProvider) GenerateCaptions(_ context.Context, c CaptionContext) (Captions, error) {
	return Captions{
		Thumbnail: c.DeliverableName,
		Lightbox:  c.DeliverableName + " - " + c.CleanedName,
		Detailed:  c.DeliverableName + " documentation",
	}, nil
}
