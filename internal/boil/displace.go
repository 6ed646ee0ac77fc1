package boil

import (
	"math"

	"github.com/MeKo-Tech/lineboil/internal/mesh"
	"github.com/MeKo-Tech/lineboil/internal/noise"
)

// QuantizeTime steps the clock down to whole boil frames: floor(t * fps).
// The result is constant over each [n/fps, (n+1)/fps) interval and jumps by
// exactly 1 at the boundary. The jump is the point of the effect — drawings
// are held, not interpolated.
func QuantizeTime(t, fps float64) float64 {
	return math.Floor(t * fps)
}

// Turbulence samples the noise field three times around the scaled, seeded
// base point (x, y, z) and returns one displacement component per axis, each
// in [-1, 1]. The samples are offset in both space and quantized time with
// different multipliers so the axes share no phase; without that, X and Y
// would move together and the wobble would read as pulsing instead.
func Turbulence(x, y, z, timeQ float64, s Settings) (dx, dy, dz float64) {
	bx := x*s.NoiseFrequency + s.Seed
	by := y*s.NoiseFrequency + s.Seed
	bz := z*s.NoiseFrequency + s.Seed

	dx = noise.Value3(bx+timeQ*1.0, by, bz)
	dy = noise.Value3(bx, by+timeQ*1.3, bz+100)
	dz = noise.Value3(bx+200, by, bz+timeQ*0.7)
	return dx, dy, dz
}

// ScreenOffset returns the raw 2D displacement for a clip-space position,
// before intensity and depth scaling. The noise is sampled at the
// post-projection screen coordinate (x/w, y/w, z/w), which anchors the boil
// pattern to the screen: the lines wobble in place while the model moves
// underneath them, like ink on paper. pos.W must be non-zero.
func ScreenOffset(pos mesh.Vec4, s Settings) (dx, dy float64) {
	timeQ := QuantizeTime(s.Time, s.FrameRate)
	dx, dy, _ = Turbulence(pos.X/pos.W, pos.Y/pos.W, pos.Z/pos.W, timeQ, s)
	return dx, dy
}

// DisplaceClip applies the boil to a clip-space position. The offset is
// multiplied by w before the downstream perspective divide, so the apparent
// screen-space wobble has the same size at every depth. Z is left untouched;
// the Z turbulence component is computed but deliberately not applied, and
// applying it would visibly alter the effect.
func DisplaceClip(pos mesh.Vec4, s Settings) mesh.Vec4 {
	dx, dy := ScreenOffset(pos, s)
	pos.X += dx * s.Intensity * pos.W
	pos.Y += dy * s.Intensity * pos.W
	return pos
}
