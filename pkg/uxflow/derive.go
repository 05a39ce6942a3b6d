package uxflow

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"math"

	"github.com/noelyahan/mergi"

	// Register decoders for the source formats the uploader accepts.
	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// FitMode controls how a source image is mapped onto a target size.
type FitMode string

const (
	// FitCover scales to fill and center-crops, guaranteeing exact output
	// dimensions. Used for thumbnail/preview sizes.
	FitCover FitMode = "cover"
	// FitInside scales to fit within the bounds without ever enlarging the
	// source. Used for full/large/medium sizes.
	FitInside FitMode = "inside"
)

type SizeSpec struct {
	Name    string  `json:"name"`
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	Fit     FitMode `json:"fit"`
	Quality int     `json:"quality"`
}

// Metadata describes the decoded source image.
type Metadata struct {
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Format   string `json:"format"`
	HasAlpha bool   `json:"hasAlpha"`
}

// Variant is one derived rendition, JPEG encoded.
type Variant struct {
	Data   []byte
	Width  int
	Height int
}

// Derive decodes the raw source bytes and produces one JPEG variant per size
// spec. The operation is atomic: any decode or resize failure returns an
// error and no variants, so callers can record a clean per-file failure
// without partial output.
func Derive(raw []byte, specs []SizeSpec) (map[string]Variant, *Metadata, error) {
	src, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := src.Bounds()
	meta := &Metadata{
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		Format:   format,
		HasAlpha: hasAlpha(src),
	}

	if meta.HasAlpha {
		// JPEG has no alpha channel; flatten onto white instead of letting
		// the encoder turn transparency into black.
		src = flattenOnWhite(src)
	}

	variants := make(map[string]Variant, len(specs))
	for _, spec := range specs {
		resized, err := applyFit(src, spec)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to derive %s variant: %w", spec.Name, err)
		}

		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: spec.Quality}); err != nil {
			return nil, nil, fmt.Errorf("failed to encode %s variant: %w", spec.Name, err)
		}

		rb := resized.Bounds()
		variants[spec.Name] = Variant{
			Data:   buf.Bytes(),
			Width:  rb.Dx(),
			Height: rb.Dy(),
		}
	}

	return variants, meta, nil
}

func applyFit(src image.Image, spec SizeSpec) (image.Image, error) {
	bounds := src.Bounds()
	sw, sh := bounds.Dx(), bounds.Dy()

	switch spec.Fit {
	case FitCover:
		// Scale up or down so both target dimensions are covered, then crop
		// the centered window to the exact target size.
		scale := math.Max(float64(spec.Width)/float64(sw), float64(spec.Height)/float64(sh))
		rw := int(math.Ceil(float64(sw) * scale))
		rh := int(math.Ceil(float64(sh) * scale))
		if rw < spec.Width {
			rw = spec.Width
		}
		if rh < spec.Height {
			rh = spec.Height
		}

		resized, err := mergi.Resize(src, uint(rw), uint(rh))
		if err != nil {
			return nil, err
		}

		return mergi.Crop(resized,
			image.Pt((rw-spec.Width)/2, (rh-spec.Height)/2),
			image.Pt(spec.Width, spec.Height))

	case FitInside:
		scale := math.Min(float64(spec.Width)/float64(sw), float64(spec.Height)/float64(sh))
		if scale >= 1 {
			// Never enlarge a small source.
			return src, nil
		}

		rw := int(math.Round(float64(sw) * scale))
		rh := int(math.Round(float64(sh) * scale))
		if rw < 1 {
			rw = 1
		}
		if rh < 1 {
			rh = 1
		}

		return mergi.Resize(src, uint(rw), uint(rh))

	default:
		return nil, fmt.Errorf("unknown fit mode %q", spec.Fit)
	}
}

func hasAlpha(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return !o.Opaque()
	}

	return false
}

func flattenOnWhite(src image.Image) image.Image {
	bounds := src.Bounds()
	out := image.NewRGBA(bounds)
	draw.Draw(out, bounds, image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(out, bounds, src, bounds.Min, draw.Over)
	return out
}
