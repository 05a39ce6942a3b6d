package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/noelyahan/impexp"
	"github.com/noelyahan/mergi"
	"github.com/sovanra/uxfolio/pkg/uxflow"
)

// Quick visual check of the size presets against a single file without going
// through the HTTP pipeline. Outputs land next to the input.
func main() {
	in := flag.String("in", "testdata/sample.jpg", "source image path")
	flag.Parse()

	img, err := mergi.Import(impexp.NewFileImporter(*in))
	if err != nil {
		panic(err)
	}

	base := strings.TrimSuffix(*in, ".jpg")
	bounds := img.Bounds()
	for _, spec := range uxflow.DefaultSizeSpecs {
		w, h := spec.Width, spec.Height
		if spec.Fit == uxflow.FitInside {
			// Shrink into the bounding box, keeping aspect ratio.
			scale := float64(spec.Width) / float64(bounds.Dx())
			if s := float64(spec.Height) / float64(bounds.Dy()); s < scale {
				scale = s
			}
			if scale > 1 {
				scale = 1
			}
			w = int(float64(bounds.Dx()) * scale)
			h = int(float64(bounds.Dy()) * scale)
		}

		resized, err := mergi.Resize(img, uint(w), uint(h))
		if err != nil {
			panic(err)
		}

		out := fmt.Sprintf("%s-%s.jpg", base, spec.Name)
		if err := mergi.Export(impexp.NewFileExporter(resized, out)); err != nil {
			panic(err)
		}
		fmt.Printf("%s: %dx%d\n", out, resized.Bounds().Dx(), resized.Bounds().Dy())
	}
}
