package boil

import "github.com/MeKo-Tech/lineboil/internal/mesh"

// Vertex is a clip-space position plus whatever optional attributes the
// source mesh carries. Attribute presence varies per mesh, so each class is
// a nil-able sub-record rather than a fixed layout.
type Vertex struct {
	Position mesh.Vec4

	Normal  *mesh.Vec3
	UV      *[2]float64
	Tangent *mesh.Vec4
	Color   *[4]float64
}

// DisplaceVertex boils the position and forwards every other attribute
// unchanged.
func DisplaceVertex(v Vertex, s Settings) Vertex {
	v.Position = DisplaceClip(v.Position, s)
	return v
}

// DisplaceAll applies DisplaceClip to a whole clip-space position buffer in
// place. Each element is an independent pure evaluation, so callers may shard
// the buffer across goroutines if they want; this helper is the simple serial
// form.
func DisplaceAll(positions []mesh.Vec4, s Settings) {
	for i := range positions {
		positions[i] = DisplaceClip(positions[i], s)
	}
}
