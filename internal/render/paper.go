// Package render turns a scene into finished frames: paper background, boiled
// ink strokes, compositing and PNG encoding.
package render

import (
	"image"
	"image/color"

	"github.com/aquilax/go-perlin"
)

// GeneratePaper renders a cold-pressed paper background: the base tint
// modulated by a coarse fractal grain plus fine tooth and pressed ridges.
// Deterministic for a given seed.
func GeneratePaper(width, height int, seed int64, base color.NRGBA) *image.NRGBA {
	p := perlin.NewPerlin(2.0, 2.0, 3, seed)

	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	const (
		coarseScale = 90.0
		fineScale   = 11.0
	)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			fx := float64(x)
			fy := float64(y)

			coarse := p.Noise2D(fx/coarseScale, fy/coarseScale)
			fine := p.Noise2D(fx/fineScale+100, fy/fineScale+100)

			// Pressed-paper ridges: folded coarse noise.
			ridge := 1 - abs(2*((coarse+1)/2)-1)

			delta := 10*coarse + 6*fine + 5*(ridge-0.5)

			img.SetNRGBA(x, y, color.NRGBA{
				R: clampByte(float64(base.R) + delta),
				G: clampByte(float64(base.G) + delta),
				B: clampByte(float64(base.B) + delta),
				A: 255,
			})
		}
	}

	return img
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
