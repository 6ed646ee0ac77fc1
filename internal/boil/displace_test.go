package boil

import (
	"math"
	"testing"

	"github.com/MeKo-Tech/lineboil/internal/mesh"
	"github.com/MeKo-Tech/lineboil/internal/noise"
)

func TestQuantizeTime_StepBehavior(t *testing.T) {
	const fps = 10.0

	// Constant over each half-open frame interval.
	for n := 0; n < 20; n++ {
		lo := float64(n) / fps
		hi := float64(n+1)/fps - 1e-9
		if QuantizeTime(lo, fps) != float64(n) {
			t.Errorf("QuantizeTime(%v) = %v, want %d", lo, QuantizeTime(lo, fps), n)
		}
		if QuantizeTime(hi, fps) != float64(n) {
			t.Errorf("QuantizeTime(%v) = %v, want %d", hi, QuantizeTime(hi, fps), n)
		}
	}

	// Increments by exactly 1 at each boundary.
	for n := 1; n < 20; n++ {
		before := QuantizeTime(float64(n)/fps-1e-9, fps)
		at := QuantizeTime(float64(n)/fps, fps)
		if at-before != 1 {
			t.Errorf("step at boundary %d: %v -> %v", n, before, at)
		}
	}
}

func TestDisplaceClip_Deterministic(t *testing.T) {
	s := Subtle.At(1.234)
	s.Seed = 42
	pos := mesh.Vec4{X: 0.3, Y: -0.7, Z: 0.5, W: 2.0}

	a := DisplaceClip(pos, s)
	b := DisplaceClip(pos, s)
	if a != b {
		t.Errorf("repeated calls differ: %v != %v", a, b)
	}
}

func TestDisplaceClip_HeldFrames(t *testing.T) {
	s := Settings{Intensity: 0.01, FrameRate: 10, NoiseFrequency: 8}
	pos := mesh.Vec4{X: 0.2, Y: 0.3, Z: 0.1, W: 1.0}

	// 0.05 and 0.09 both quantize to frame 0; 0.11 lands in frame 1.
	a := DisplaceClip(pos, s.At(0.05))
	b := DisplaceClip(pos, s.At(0.09))
	c := DisplaceClip(pos, s.At(0.11))

	if a != b {
		t.Errorf("same held frame produced different displacement: %v != %v", a, b)
	}
	if a == c {
		t.Errorf("new frame produced identical displacement: %v", a)
	}
}

func TestScreenOffset_DepthInvariance(t *testing.T) {
	s := Aggressive.At(0.33)

	// Same screen location (x/w, y/w, z/w) at two different depths.
	near := mesh.Vec4{X: 0.2, Y: 0.3, Z: 0.4, W: 1.0}
	far := mesh.Vec4{X: 1.0, Y: 1.5, Z: 2.0, W: 5.0}

	ndx, ndy := ScreenOffset(near, s)
	fdx, fdy := ScreenOffset(far, s)
	if math.Abs(ndx-fdx) > 1e-12 || math.Abs(ndy-fdy) > 1e-12 {
		t.Fatalf("screen offset depends on depth: (%v, %v) vs (%v, %v)", ndx, ndy, fdx, fdy)
	}

	// The clip-space offset itself scales with w.
	nd := DisplaceClip(near, s)
	fd := DisplaceClip(far, s)
	nOff := nd.X - near.X
	fOff := fd.X - far.X
	if math.Abs(fOff-5*nOff) > 1e-12 {
		t.Errorf("clip offset did not scale with w: near %v, far %v", nOff, fOff)
	}
}

func TestTurbulence_AxesDecorrelated(t *testing.T) {
	// Sweep quantized time at a fixed point and make sure no two axes track
	// each other linearly.
	const n = 256
	var xs, ys, zs [n]float64
	s := Settings{Intensity: 0.01, FrameRate: 10, NoiseFrequency: 8, Seed: 0}
	for i := 0; i < n; i++ {
		xs[i], ys[i], zs[i] = Turbulence(0.37, -0.21, 0.5, float64(i), s)
	}

	check := func(name string, a, b [n]float64) {
		r := pearson(a[:], b[:])
		if math.Abs(r) > 0.5 {
			t.Errorf("%s correlation %v, axes move together", name, r)
		}
	}
	check("x/y", xs, ys)
	check("x/z", xs, zs)
	check("y/z", ys, zs)
}

func pearson(a, b []float64) float64 {
	var ma, mb float64
	for i := range a {
		ma += a[i]
		mb += b[i]
	}
	ma /= float64(len(a))
	mb /= float64(len(b))

	var cov, va, vb float64
	for i := range a {
		da := a[i] - ma
		db := b[i] - mb
		cov += da * db
		va += da * da
		vb += db * db
	}
	if va == 0 || vb == 0 {
		return 1
	}
	return cov / math.Sqrt(va*vb)
}

// valueNoiseRef recomputes value noise from the documented formulas (floor,
// Hermite fade, 8 corner hashes, trilinear x->y->z, remap to [-1,1]) without
// going through Value3, so the end-to-end test is an independent check.
func valueNoiseRef(x, y, z float64) float64 {
	ix, iy, iz := math.Floor(x), math.Floor(y), math.Floor(z)
	fx, fy, fz := x-ix, y-iy, z-iz

	fade := func(t float64) float64 { return t * t * (3 - 2*t) }
	mix := func(a, b, t float64) float64 { return a + (b-a)*t }

	ux, uy, uz := fade(fx), fade(fy), fade(fz)

	x00 := mix(noise.Hash(ix, iy, iz), noise.Hash(ix+1, iy, iz), ux)
	x10 := mix(noise.Hash(ix, iy+1, iz), noise.Hash(ix+1, iy+1, iz), ux)
	x01 := mix(noise.Hash(ix, iy, iz+1), noise.Hash(ix+1, iy, iz+1), ux)
	x11 := mix(noise.Hash(ix, iy+1, iz+1), noise.Hash(ix+1, iy+1, iz+1), ux)

	y0 := mix(x00, x10, uy)
	y1 := mix(x01, x11, uy)
	return 2*mix(y0, y1, uz) - 1
}

func TestDisplaceClip_EndToEnd(t *testing.T) {
	s := Settings{Intensity: 0.01, FrameRate: 10, NoiseFrequency: 8, Seed: 0, Time: 0.05}
	pos := mesh.Vec4{X: 0.2, Y: 0.3, Z: 0.1, W: 1.0}

	// floor(0.05 * 10) = 0
	timeQ := math.Floor(s.Time * s.FrameRate)
	if timeQ != 0 {
		t.Fatalf("quantized time = %v, want 0", timeQ)
	}

	bx := pos.X/pos.W*s.NoiseFrequency + s.Seed
	by := pos.Y/pos.W*s.NoiseFrequency + s.Seed
	bz := pos.Z/pos.W*s.NoiseFrequency + s.Seed

	wantDX := valueNoiseRef(bx+timeQ*1.0, by, bz)
	wantDY := valueNoiseRef(bx, by+timeQ*1.3, bz+100)

	wantX := pos.X + wantDX*s.Intensity*pos.W
	wantY := pos.Y + wantDY*s.Intensity*pos.W

	got := DisplaceClip(pos, s)
	if math.Abs(got.X-wantX) > 1e-5 || math.Abs(got.Y-wantY) > 1e-5 {
		t.Errorf("DisplaceClip = (%v, %v), want (%v, %v)", got.X, got.Y, wantX, wantY)
	}
	if got.Z != pos.Z || got.W != pos.W {
		t.Errorf("z/w must pass through unchanged, got %v", got)
	}
}

func TestDisplaceClip_SeedDecorrelatesEntities(t *testing.T) {
	s := Subtle.At(0.5)
	pos := mesh.Vec4{X: 0.1, Y: 0.2, Z: 0.3, W: 1.0}

	a := DisplaceClip(pos, s)
	s.Seed = 37.5
	b := DisplaceClip(pos, s)
	if a == b {
		t.Error("different seeds produced identical displacement")
	}
}
