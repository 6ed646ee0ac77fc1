// Package noise implements the deterministic 3D value-noise field that
// drives the boil displacement. Everything here is a pure function of its
// inputs, so it is safe to call from any number of goroutines at once.
package noise

import "math"

// fract returns the fractional part of x with GLSL semantics: the result is
// always in [0,1), including for negative inputs.
func fract(x float64) float64 {
	return x - math.Floor(x)
}

// Hash maps a 3D point to a pseudo-random value in [0,1). It is built from
// multiply/add/fract only, so adjacent lattice points decorrelate without any
// permutation table or shared state.
func Hash(x, y, z float64) float64 {
	px := fract(x * 0.1031)
	py := fract(y * 0.1031)
	pz := fract(z * 0.1031)

	// Mix the components so each output depends on all three axes.
	d := px*(pz+31.32) + py*(py+31.32) + pz*(px+31.32)
	px = fract(px + d)
	py = fract(py + d)
	pz = fract(pz + d)

	return fract((px + py) * pz)
}

// Fade is the Hermite smoothing curve 3t^2 - 2t^3. It is 0 at t=0, 1 at t=1,
// with zero slope at both ends, which removes first-derivative seams at
// lattice cell boundaries.
func Fade(t float64) float64 {
	return t * t * (3 - 2*t)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Value3 returns smooth 3D value noise in [-1, 1]. The input space is divided
// into unit cells; each cell corner gets a hash value and the result is the
// trilinear blend of the 8 corners with faded weights. Interpolation order is
// fixed (x, then y, then z) so there is no axis bias.
func Value3(x, y, z float64) float64 {
	ix := math.Floor(x)
	iy := math.Floor(y)
	iz := math.Floor(z)

	ux := Fade(x - ix)
	uy := Fade(y - iy)
	uz := Fade(z - iz)

	c000 := Hash(ix, iy, iz)
	c100 := Hash(ix+1, iy, iz)
	c010 := Hash(ix, iy+1, iz)
	c110 := Hash(ix+1, iy+1, iz)
	c001 := Hash(ix, iy, iz+1)
	c101 := Hash(ix+1, iy, iz+1)
	c011 := Hash(ix, iy+1, iz+1)
	c111 := Hash(ix+1, iy+1, iz+1)

	x00 := lerp(c000, c100, ux)
	x10 := lerp(c010, c110, ux)
	x01 := lerp(c001, c101, ux)
	x11 := lerp(c011, c111, ux)

	y0 := lerp(x00, x10, uy)
	y1 := lerp(x01, x11, uy)

	return 2*lerp(y0, y1, uz) - 1
}
