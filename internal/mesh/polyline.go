package mesh

import "math"

// Polyline is an ordered run of 3D points, optionally closed into a loop.
// This is the only geometry the boil renderer draws: hand-drawn looks come
// from strokes, not filled surfaces.
type Polyline struct {
	Points []Vec3
	Closed bool
}

// Transform maps every point into clip space with the given matrix.
func (p Polyline) Transform(m Mat4) []Vec4 {
	out := make([]Vec4, len(p.Points))
	for i, pt := range p.Points {
		out[i] = m.MulPoint(pt)
	}
	return out
}

// Circle builds a closed regular polygon approximating a circle in the XY
// plane around center.
func Circle(center Vec3, radius float64, segments int) Polyline {
	if segments < 3 {
		segments = 3
	}
	pts := make([]Vec3, segments)
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = Vec3{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
			Z: center.Z,
		}
	}
	return Polyline{Points: pts, Closed: true}
}

// Square builds a closed axis-aligned square in the XY plane around center.
func Square(center Vec3, size float64) Polyline {
	h := size / 2
	return Polyline{
		Points: []Vec3{
			{center.X - h, center.Y - h, center.Z},
			{center.X + h, center.Y - h, center.Z},
			{center.X + h, center.Y + h, center.Z},
			{center.X - h, center.Y + h, center.Z},
		},
		Closed: true,
	}
}

// Star builds a closed five-pointed star in the XY plane around center.
func Star(center Vec3, outer, inner float64) Polyline {
	pts := make([]Vec3, 10)
	for i := 0; i < 10; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := math.Pi/2 + 2*math.Pi*float64(i)/10
		pts[i] = Vec3{
			X: center.X + r*math.Cos(a),
			Y: center.Y + r*math.Sin(a),
			Z: center.Z,
		}
	}
	return Polyline{Points: pts, Closed: true}
}

// Segment builds an open two-point line.
func Segment(a, b Vec3) Polyline {
	return Polyline{Points: []Vec3{a, b}}
}

// Subdivide returns a copy of p with each segment split into n equal parts.
// The boil displaces vertices, so long straight segments need intermediate
// points before the wobble reads as a wavy line instead of a tilted one.
func (p Polyline) Subdivide(n int) Polyline {
	if n <= 1 || len(p.Points) < 2 {
		return p
	}

	segs := len(p.Points) - 1
	if p.Closed {
		segs = len(p.Points)
	}

	out := make([]Vec3, 0, segs*n)
	for i := 0; i < segs; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%len(p.Points)]
		for s := 0; s < n; s++ {
			t := float64(s) / float64(n)
			out = append(out, Vec3{
				X: a.X + (b.X-a.X)*t,
				Y: a.Y + (b.Y-a.Y)*t,
				Z: a.Z + (b.Z-a.Z)*t,
			})
		}
	}
	if !p.Closed {
		out = append(out, p.Points[len(p.Points)-1])
	}
	return Polyline{Points: out, Closed: p.Closed}
}
