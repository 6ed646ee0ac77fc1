// Package boil implements the line boil displacement: a time-quantized,
// screen-anchored turbulence offset applied to clip-space vertex positions,
// recreating the frame-to-frame wobble of hand-drawn cel animation.
package boil

import "fmt"

// Settings parameterize the effect for one entity/draw. A Settings value is
// an immutable snapshot: the caller updates Time once per frame and every
// vertex of that frame sees the same copy.
type Settings struct {
	// Intensity scales the displacement magnitude. Must be >= 0; useful
	// values sit around [0.005, 0.05] of the screen half-extent.
	Intensity float64

	// FrameRate is the boil cadence in steps per second. Lower values hold
	// each drawing longer. Must be > 0.
	FrameRate float64

	// NoiseFrequency scales the screen-space sample position before the
	// noise lookup. Higher values give finer wobble. Must be > 0.
	NoiseFrequency float64

	// Seed offsets the noise domain so entities sharing the same settings
	// don't wobble in lockstep.
	Seed float64

	// Time is the animation clock in seconds, supplied by the host once per
	// frame.
	Time float64
}

// Named presets. These are convenience parameter bundles, not separate
// algorithms.
var (
	Subtle     = Settings{Intensity: 0.008, FrameRate: 8, NoiseFrequency: 6}
	Aggressive = Settings{Intensity: 0.04, FrameRate: 4, NoiseFrequency: 12}
)

// Preset returns the named preset settings.
func Preset(name string) (Settings, bool) {
	switch name {
	case "subtle":
		return Subtle, true
	case "aggressive":
		return Aggressive, true
	default:
		return Settings{}, false
	}
}

// PresetNames lists the available preset names.
func PresetNames() []string {
	return []string{"subtle", "aggressive"}
}

// Validate reports whether the settings are inside their documented ranges.
// Out-of-range values don't crash the math (every operation involved is total)
// but the visual result is undefined.
func (s Settings) Validate() error {
	if s.Intensity < 0 {
		return fmt.Errorf("intensity must be >= 0, got %v", s.Intensity)
	}
	if s.FrameRate <= 0 {
		return fmt.Errorf("frame rate must be > 0, got %v", s.FrameRate)
	}
	if s.NoiseFrequency <= 0 {
		return fmt.Errorf("noise frequency must be > 0, got %v", s.NoiseFrequency)
	}
	return nil
}

// At returns a copy of s with the clock set to t. This is the per-frame
// snapshot handed to every vertex evaluation.
func (s Settings) At(t float64) Settings {
	s.Time = t
	return s
}
