package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// StrokePolyline draws an antialiased stroked path onto dst. Each segment
// becomes a filled quad of the given width; round joins and caps come from
// discs stamped at every vertex. Screen coordinates, y down.
func StrokePolyline(dst draw.Image, pts [][2]float64, closed bool, width float64, col color.NRGBA) {
	if len(pts) < 2 || width <= 0 {
		return
	}

	bounds := dst.Bounds()
	ras := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	ras.DrawOp = draw.Over

	radius := width / 2

	segs := len(pts) - 1
	if closed {
		segs = len(pts)
	}

	for i := 0; i < segs; i++ {
		a := pts[i]
		b := pts[(i+1)%len(pts)]

		dx := b[0] - a[0]
		dy := b[1] - a[1]
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		nx := -dy / l * radius
		ny := dx / l * radius

		ras.MoveTo(float32(a[0]+nx), float32(a[1]+ny))
		ras.LineTo(float32(b[0]+nx), float32(b[1]+ny))
		ras.LineTo(float32(b[0]-nx), float32(b[1]-ny))
		ras.LineTo(float32(a[0]-nx), float32(a[1]-ny))
		ras.ClosePath()
	}

	for _, p := range pts {
		addDisc(ras, p[0], p[1], radius)
	}

	ras.Draw(dst, bounds, image.NewUniform(col), image.Point{})
}

// addDisc appends a polygonal disc to the path for joins and caps.
func addDisc(ras *vector.Rasterizer, cx, cy, r float64) {
	const segments = 16
	ras.MoveTo(float32(cx+r), float32(cy))
	for i := 1; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / segments
		ras.LineTo(float32(cx+r*math.Cos(a)), float32(cy+r*math.Sin(a)))
	}
	ras.ClosePath()
}
