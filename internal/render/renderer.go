package render

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"

	"github.com/disintegration/gift"

	"github.com/MeKo-Tech/lineboil/internal/boil"
	"github.com/MeKo-Tech/lineboil/internal/mesh"
	"github.com/MeKo-Tech/lineboil/internal/scene"
)

// Options tune a Renderer beyond what the scene itself specifies.
type Options struct {
	Width  int
	Height int

	// PostBlurSigma softens the ink layer before compositing. 0 disables.
	PostBlurSigma float32

	// PresetOverride, when set, replaces every entity's boil parameters with
	// the named preset (per-entity seeds are kept).
	PresetOverride string

	// SeedShift is added to every entity seed, re-rolling the whole scene's
	// wobble without touching the scene file.
	SeedShift float64
}

// entityPass is the precomputed per-entity draw state: static clip-space
// geometry plus resolved boil settings. Only Time varies per frame.
type entityPass struct {
	name   string
	clip   []mesh.Vec4
	closed bool
	width  float64
	color  color.NRGBA
	base   boil.Settings
}

// Renderer produces frames for one scene. All state is read-only after New,
// so Frame may be called from multiple goroutines at once.
type Renderer struct {
	width    int
	height   int
	postBlur float32
	paper    *image.NRGBA
	passes   []entityPass
	logger   *slog.Logger
}

// New precomputes camera transforms, clip-space geometry and the paper
// background for a scene.
func New(sc *scene.Scene, opts Options, logger *slog.Logger) (*Renderer, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("frame size must be positive, got %dx%d", opts.Width, opts.Height)
	}
	if opts.PresetOverride != "" {
		if _, ok := boil.Preset(opts.PresetOverride); !ok {
			return nil, fmt.Errorf("unknown preset %q", opts.PresetOverride)
		}
	}

	cam := sc.Camera
	aspect := float64(opts.Width) / float64(opts.Height)
	proj := mesh.Perspective(cam.FOV*math.Pi/180, aspect, 0.1, 100)
	view := mesh.LookAt(
		mesh.Vec3{X: cam.Eye[0], Y: cam.Eye[1], Z: cam.Eye[2]},
		mesh.Vec3{X: cam.Target[0], Y: cam.Target[1], Z: cam.Target[2]},
		mesh.Vec3{Y: 1},
	)
	viewProj := proj.Mul(view)

	passes := make([]entityPass, 0, len(sc.Entities))
	for i := range sc.Entities {
		e := &sc.Entities[i]

		settings := e.Settings()
		if opts.PresetOverride != "" {
			preset, _ := boil.Preset(opts.PresetOverride)
			preset.Seed = settings.Seed
			settings = preset
		}
		settings.Seed += opts.SeedShift
		if err := settings.Validate(); err != nil {
			return nil, fmt.Errorf("entity %s: %w", e.Name, err)
		}

		poly := e.Polyline()
		width := e.StrokeWidth
		if width <= 0 {
			width = 2
		}

		passes = append(passes, entityPass{
			name:   e.Name,
			clip:   poly.Transform(viewProj),
			closed: poly.Closed,
			width:  width,
			color:  e.StrokeColor(),
			base:   settings,
		})
	}

	background := color.NRGBA{R: 244, G: 240, B: 232, A: 255}
	if sc.Background != "" {
		c, err := scene.ParseColor(sc.Background)
		if err != nil {
			return nil, err
		}
		background = c
	}

	return &Renderer{
		width:    opts.Width,
		height:   opts.Height,
		postBlur: opts.PostBlurSigma,
		paper:    GeneratePaper(opts.Width, opts.Height, sc.PaperSeed, background),
		passes:   passes,
		logger:   logger,
	}, nil
}

// Size returns the frame dimensions.
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// Frame renders the scene at animation time t (seconds). Identical t values
// produce identical frames.
func (r *Renderer) Frame(t float64) *image.NRGBA {
	bounds := image.Rect(0, 0, r.width, r.height)
	ink := image.NewNRGBA(bounds)

	for i := range r.passes {
		pass := &r.passes[i]
		settings := pass.base.At(t)

		displaced := make([]mesh.Vec4, len(pass.clip))
		copy(displaced, pass.clip)
		boil.DisplaceAll(displaced, settings)

		pts, ok := r.toScreen(displaced)
		if !ok {
			r.log().Debug("entity behind camera, skipped", "entity", pass.name)
			continue
		}
		StrokePolyline(ink, pts, pass.closed, pass.width, pass.color)
	}

	if r.postBlur > 0 {
		g := gift.New(gift.GaussianBlur(r.postBlur))
		blurred := image.NewNRGBA(g.Bounds(ink.Bounds()))
		g.Draw(blurred, ink)
		ink = blurred
	}

	out := Clone(r.paper)
	Over(out, ink)
	return out
}

// toScreen performs the perspective divide and maps NDC to pixel coordinates.
// Returns false when any vertex sits at or behind the camera plane.
func (r *Renderer) toScreen(clip []mesh.Vec4) ([][2]float64, bool) {
	pts := make([][2]float64, len(clip))
	for i, c := range clip {
		if c.W <= 0 {
			return nil, false
		}
		ndcX := c.X / c.W
		ndcY := c.Y / c.W
		pts[i] = [2]float64{
			(ndcX*0.5 + 0.5) * float64(r.width),
			(1 - (ndcY*0.5 + 0.5)) * float64(r.height),
		}
	}
	return pts, true
}

func (r *Renderer) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return slog.Default()
}
