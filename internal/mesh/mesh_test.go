package mesh

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestMat4_IdentityMulVec(t *testing.T) {
	v := Vec4{1, 2, 3, 1}
	got := Identity().MulVec(v)
	if got != v {
		t.Errorf("Identity().MulVec(%v) = %v", v, got)
	}
}

func TestMat4_TranslatePoint(t *testing.T) {
	m := Translate(Vec3{1, -2, 3})
	got := m.MulPoint(Vec3{10, 10, 10})
	want := Vec4{11, 8, 13, 1}
	if got != want {
		t.Errorf("Translate point = %v, want %v", got, want)
	}
}

func TestMat4_MulAssociativeWithVec(t *testing.T) {
	a := RotateY(0.7)
	b := Translate(Vec3{3, 4, 5})
	v := Vec4{1, 2, 3, 1}

	left := a.Mul(b).MulVec(v)
	right := a.MulVec(b.MulVec(v))

	for _, pair := range [][2]float64{{left.X, right.X}, {left.Y, right.Y}, {left.Z, right.Z}, {left.W, right.W}} {
		if !almostEqual(pair[0], pair[1], 1e-12) {
			t.Fatalf("(A*B)v = %v, A(Bv) = %v", left, right)
		}
	}
}

func TestPerspective_CenterPointProjectsToOrigin(t *testing.T) {
	proj := Perspective(math.Pi/3, 1, 0.1, 100)

	// A point straight ahead of the camera (camera looks down -Z).
	clip := proj.MulPoint(Vec3{0, 0, -10})
	if !almostEqual(clip.X, 0, 1e-12) || !almostEqual(clip.Y, 0, 1e-12) {
		t.Errorf("on-axis point projected to (%v, %v), want origin", clip.X, clip.Y)
	}
	if !almostEqual(clip.W, 10, 1e-12) {
		t.Errorf("clip w = %v, want view distance 10", clip.W)
	}
}

func TestPerspective_FartherMeansLargerW(t *testing.T) {
	proj := Perspective(math.Pi/4, 16.0/9.0, 0.1, 100)
	near := proj.MulPoint(Vec3{1, 1, -2})
	far := proj.MulPoint(Vec3{1, 1, -50})
	if far.W <= near.W {
		t.Errorf("w did not grow with distance: near %v, far %v", near.W, far.W)
	}
}

func TestLookAt_EyeMapsToOrigin(t *testing.T) {
	eye := Vec3{3, 4, 5}
	view := LookAt(eye, Vec3{0, 0, 0}, Vec3{0, 1, 0})
	got := view.MulPoint(eye)
	if !almostEqual(got.X, 0, 1e-12) || !almostEqual(got.Y, 0, 1e-12) || !almostEqual(got.Z, 0, 1e-12) {
		t.Errorf("view * eye = %v, want origin", got)
	}
}

func TestLookAt_TargetOnNegativeZ(t *testing.T) {
	view := LookAt(Vec3{0, 0, 10}, Vec3{0, 0, 0}, Vec3{0, 1, 0})
	got := view.MulPoint(Vec3{0, 0, 0})
	if !almostEqual(got.X, 0, 1e-12) || !almostEqual(got.Y, 0, 1e-12) {
		t.Errorf("target off axis: %v", got)
	}
	if got.Z >= 0 {
		t.Errorf("target should be in front of camera (negative z), got %v", got.Z)
	}
}

func TestCircle_ClosedAndOnRadius(t *testing.T) {
	c := Circle(Vec3{1, 2, 3}, 2, 16)
	if !c.Closed {
		t.Error("circle should be closed")
	}
	if len(c.Points) != 16 {
		t.Fatalf("expected 16 points, got %d", len(c.Points))
	}
	for _, p := range c.Points {
		r := math.Hypot(p.X-1, p.Y-2)
		if !almostEqual(r, 2, 1e-12) {
			t.Errorf("point %v at radius %v, want 2", p, r)
		}
		if p.Z != 3 {
			t.Errorf("point %v left the z=3 plane", p)
		}
	}
}

func TestSubdivide_PointCounts(t *testing.T) {
	open := Polyline{Points: []Vec3{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}}}
	got := open.Subdivide(4)
	if len(got.Points) != 9 {
		t.Errorf("open subdivide: %d points, want 9", len(got.Points))
	}

	closed := Square(Vec3{}, 2)
	got = closed.Subdivide(3)
	if len(got.Points) != 12 {
		t.Errorf("closed subdivide: %d points, want 12", len(got.Points))
	}
	if !got.Closed {
		t.Error("subdivide dropped the closed flag")
	}
}

func TestSubdivide_PreservesEndpoints(t *testing.T) {
	p := Segment(Vec3{0, 0, 0}, Vec3{3, 0, 0}).Subdivide(3)
	first := p.Points[0]
	last := p.Points[len(p.Points)-1]
	if first != (Vec3{0, 0, 0}) || last != (Vec3{3, 0, 0}) {
		t.Errorf("endpoints moved: %v .. %v", first, last)
	}
}
