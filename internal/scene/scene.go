// Package scene loads the line-art scene descriptions the demo renderer
// draws: a camera plus a list of stroked entities, each with its own boil
// parameters.
package scene

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MeKo-Tech/lineboil/internal/boil"
	"github.com/MeKo-Tech/lineboil/internal/mesh"
)

// Camera places the viewer. FOV is the vertical field of view in degrees.
type Camera struct {
	FOV    float64    `yaml:"fov"`
	Eye    [3]float64 `yaml:"eye"`
	Target [3]float64 `yaml:"target"`
}

// Overrides are optional per-entity boil parameter overrides layered on top
// of the chosen preset. Nil fields keep the preset value.
type Overrides struct {
	Intensity      *float64 `yaml:"intensity"`
	FrameRate      *float64 `yaml:"frame_rate"`
	NoiseFrequency *float64 `yaml:"noise_frequency"`
}

// Entity is one stroked shape in the scene.
type Entity struct {
	Name string `yaml:"name"`

	// Shape is one of circle, square, star, polyline.
	Shape  string       `yaml:"shape"`
	Center [3]float64   `yaml:"center"`
	Radius float64      `yaml:"radius"`
	Size   float64      `yaml:"size"`
	Inner  float64      `yaml:"inner"`
	Points [][3]float64 `yaml:"points"`
	Closed bool         `yaml:"closed"`

	// Subdivide splits each segment so straight edges can wobble. 0 means
	// the default of 8.
	Subdivide int `yaml:"subdivide"`

	StrokeWidth float64 `yaml:"stroke_width"`
	Color       string  `yaml:"color"`

	Preset    string    `yaml:"preset"`
	Seed      float64   `yaml:"seed"`
	Overrides Overrides `yaml:"boil"`
}

// Scene is a full renderable document.
type Scene struct {
	Name       string   `yaml:"name"`
	Background string   `yaml:"background"`
	PaperSeed  int64    `yaml:"paper_seed"`
	Camera     Camera   `yaml:"camera"`
	Entities   []Entity `yaml:"entities"`
}

// Load reads and parses a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scene %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a YAML scene document.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("invalid scene yaml: %w", err)
	}

	if s.Camera.FOV == 0 {
		s.Camera.FOV = 45
	}
	if s.Camera.Eye == s.Camera.Target {
		return nil, fmt.Errorf("camera eye and target coincide")
	}
	if len(s.Entities) == 0 {
		return nil, fmt.Errorf("scene has no entities")
	}

	for i := range s.Entities {
		if err := s.Entities[i].validate(); err != nil {
			return nil, fmt.Errorf("entity %d (%s): %w", i, s.Entities[i].Name, err)
		}
	}
	return &s, nil
}

func (e *Entity) validate() error {
	switch e.Shape {
	case "circle":
		if e.Radius <= 0 {
			return fmt.Errorf("circle needs a positive radius")
		}
	case "square":
		if e.Size <= 0 {
			return fmt.Errorf("square needs a positive size")
		}
	case "star":
		if e.Radius <= 0 {
			return fmt.Errorf("star needs a positive radius")
		}
	case "polyline":
		if len(e.Points) < 2 {
			return fmt.Errorf("polyline needs at least 2 points")
		}
	default:
		return fmt.Errorf("unknown shape %q", e.Shape)
	}

	if e.Preset != "" {
		if _, ok := boil.Preset(e.Preset); !ok {
			return fmt.Errorf("unknown preset %q", e.Preset)
		}
	}
	if e.Color != "" {
		if _, err := ParseColor(e.Color); err != nil {
			return err
		}
	}
	return nil
}

// Polyline builds the entity's geometry, subdivided for displacement.
func (e *Entity) Polyline() mesh.Polyline {
	center := mesh.Vec3{X: e.Center[0], Y: e.Center[1], Z: e.Center[2]}

	var p mesh.Polyline
	switch e.Shape {
	case "circle":
		p = mesh.Circle(center, e.Radius, 48)
	case "square":
		p = mesh.Square(center, e.Size)
	case "star":
		inner := e.Inner
		if inner <= 0 {
			inner = e.Radius * 0.45
		}
		p = mesh.Star(center, e.Radius, inner)
	case "polyline":
		pts := make([]mesh.Vec3, len(e.Points))
		for i, pt := range e.Points {
			pts[i] = mesh.Vec3{X: pt[0], Y: pt[1], Z: pt[2]}
		}
		p = mesh.Polyline{Points: pts, Closed: e.Closed}
	}

	n := e.Subdivide
	if n == 0 {
		n = 8
	}
	return p.Subdivide(n)
}

// Settings resolves the entity's boil parameters: preset (default subtle),
// then overrides, then the per-entity seed.
func (e *Entity) Settings() boil.Settings {
	s := boil.Subtle
	if e.Preset != "" {
		s, _ = boil.Preset(e.Preset)
	}
	if e.Overrides.Intensity != nil {
		s.Intensity = *e.Overrides.Intensity
	}
	if e.Overrides.FrameRate != nil {
		s.FrameRate = *e.Overrides.FrameRate
	}
	if e.Overrides.NoiseFrequency != nil {
		s.NoiseFrequency = *e.Overrides.NoiseFrequency
	}
	s.Seed = e.Seed
	return s
}

// StrokeColor returns the entity's ink color, defaulting to near-black.
func (e *Entity) StrokeColor() color.NRGBA {
	if e.Color == "" {
		return color.NRGBA{R: 30, G: 26, B: 24, A: 255}
	}
	c, _ := ParseColor(e.Color)
	return c
}

// ParseColor parses "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: want #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// Default returns the built-in demo scene used when no file is given: a few
// shapes at different depths so the depth-invariant wobble is visible.
func Default() *Scene {
	return &Scene{
		Name:       "default",
		Background: "#f4f0e8",
		PaperSeed:  1337,
		Camera: Camera{
			FOV:    45,
			Eye:    [3]float64{0, 0, 6},
			Target: [3]float64{0, 0, 0},
		},
		Entities: []Entity{
			{
				Name:        "sun",
				Shape:       "circle",
				Center:      [3]float64{-1.2, 0.9, 0},
				Radius:      0.6,
				StrokeWidth: 3,
				Color:       "#c2581e",
				Preset:      "subtle",
				Seed:        11,
			},
			{
				Name:        "house",
				Shape:       "square",
				Center:      [3]float64{0.6, -0.5, -1},
				Size:        1.4,
				StrokeWidth: 3.5,
				Preset:      "subtle",
				Seed:        23,
			},
			{
				Name:        "star",
				Shape:       "star",
				Center:      [3]float64{1.4, 1.0, -3},
				Radius:      0.5,
				StrokeWidth: 2.5,
				Color:       "#1e4b8f",
				Preset:      "aggressive",
				Seed:        37,
			},
			{
				Name:  "ground",
				Shape: "polyline",
				Points: [][3]float64{
					{-2.5, -1.3, 0},
					{2.5, -1.3, 0},
				},
				StrokeWidth: 3,
				Preset:      "subtle",
				Seed:        53,
			},
		},
	}
}
