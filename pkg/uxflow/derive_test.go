package uxflow

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func pngBytes(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test png: %v", err)
	}

	return buf.Bytes()
}

func TestDeriveDefaultSpecs(t *testing.T) {
	raw := pngBytes(t, 1000, 500, color.RGBA{R: 200, A: 255})

	variants, meta, err := Derive(raw, DefaultSizeSpecs)
	if err != nil {
		t.Fatalf("Derive() error = %v", err)
	}

	if meta.Width != 1000 || meta.Height != 500 {
		t.Errorf("Metadata dims = %dx%d, want 1000x500", meta.Width, meta.Height)
	}
	if meta.Format != "png" {
		t.Errorf("Metadata format = %q, want png", meta.Format)
	}
	if meta.HasAlpha {
		t.Error("Opaque source reported as having alpha")
	}

	if len(variants) != len(DefaultSizeSpecs) {
		t.Fatalf("Got %d variants, want %d", len(variants), len(DefaultSizeSpecs))
	}

	// Cover sizes must hit the exact configured dimensions regardless of the
	// 2:1 source aspect ratio.
	if v := variants["thumbnail"]; v.Width != 400 || v.Height != 300 {
		t.Errorf("thumbnail = %dx%d, want 400x300", v.Width, v.Height)
	}
	if v := variants["preview"]; v.Width != 200 || v.Height != 150 {
		t.Errorf("preview = %dx%d, want 200x150", v.Width, v.Height)
	}

	// Inside sizes preserve aspect ratio within bounds.
	if v := variants["medium"]; v.Width != 800 || v.Height != 400 {
		t.Errorf("medium = %dx%d, want 800x400", v.Width, v.Height)
	}

	// full must not enlarge a 1000x500 source.
	if v := variants["full"]; v.Width != 1000 || v.Height != 500 {
		t.Errorf("full = %dx%d, want original 1000x500", v.Width, v.Height)
	}

	for name, v := range variants {
		if len(v.Data) == 0 {
			t.Errorf("%s variant has no data", name)
		}
	}
}

func TestDeriveCoverUpscalesSmallSource(t *testing.T) {
	raw := pngBytes(t, 100, 100, color.RGBA{G: 200, A: 255})

	variants, _, err := Derive(raw, []SizeSpec{
		{Name: "thumbnail", Width: 400, Height: 300, Fit: FitCover, Quality: 75},
	})
	if err != nil {
		t.Fatalf("Derive() error = %v", err)
	}

	if v := variants["thumbnail"]; v.Width != 400 || v.Height != 300 {
		t.Errorf("thumbnail = %dx%d, want exact 400x300 even from a small source", v.Width, v.Height)
	}
}

func TestDeriveDetectsAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	img.Set(0, 0, color.NRGBA{R: 255, A: 128})

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test png: %v", err)
	}

	_, meta, err := Derive(buf.Bytes(), []SizeSpec{
		{Name: "preview", Width: 5, Height: 5, Fit: FitCover, Quality: 60},
	})
	if err != nil {
		t.Fatalf("Derive() error = %v", err)
	}

	if !meta.HasAlpha {
		t.Error("Expected alpha channel to be detected")
	}
}

func TestDeriveCorruptInputFailsAtomically(t *testing.T) {
	variants, meta, err := Derive([]byte("not an image"), DefaultSizeSpecs)

	if err == nil {
		t.Fatal("Derive() expected error for corrupt input")
	}
	if variants != nil || meta != nil {
		t.Error("Derive() must not return partial results on failure")
	}
}

func TestDeriveUnknownFitMode(t *testing.T) {
	raw := pngBytes(t, 10, 10, color.RGBA{B: 200, A: 255})

	_, _, err := Derive(raw, []SizeSpec{{Name: "odd", Width: 5, Height: 5, Fit: "stretch", Quality: 50}})
	if err == nil {
		t.Fatal("Derive() expected error for unknown fit mode")
	}
}
