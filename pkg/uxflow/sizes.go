package uxflow

// DefaultSizeSpecs is the five-variant set produced for every upload.
// Thumbnail and preview crop to exact dimensions for uniform grids; the
// larger sizes preserve aspect ratio and never upscale. Quality drops with
// size: previews trade fidelity for weight, full size keeps detail.
var DefaultSizeSpecs = []SizeSpec{
	{Name: "full", Width: 1920, Height: 1920, Fit: FitInside, Quality: 90},
	{Name: "large", Width: 1200, Height: 1200, Fit: FitInside, Quality: 85},
	{Name: "medium", Width: 800, Height: 800, Fit: FitInside, Quality: 80},
	{Name: "thumbnail", Width: 400, Height: 300, Fit: FitCover, Quality: 75},
	{Name: "preview", Width: 200, Height: 150, Fit: FitCover, Quality: 60},
}
