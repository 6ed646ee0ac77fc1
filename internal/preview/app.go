// Package preview shows a scene animating in a window, so boil parameters can
// be tuned without rendering frames to disk.
package preview

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/MeKo-Tech/lineboil/internal/render"
)

// Variant is one selectable renderer configuration, usually one per preset.
type Variant struct {
	Name     string
	Renderer *render.Renderer
}

// Game adapts a scene renderer to the ebiten.Game interface.
//
// Keys: space pauses, N / right arrow steps one tick forward, left arrow
// steps one tick back, P cycles variants, R rewinds, Q or Escape quits.
type Game struct {
	variants []Variant
	active   int
	frame    *ebiten.Image

	// fps is the preview render cadence; frames between render ticks reuse
	// the cached image since the boil holds anyway.
	fps float64

	t        float64
	lastTick float64
	paused   bool
	dirty    bool
}

// New constructs a Game cycling through the given variants. fps sets how
// often the preview re-renders; it should be at least the fastest boil frame
// rate in the scene.
func New(variants []Variant, fps float64) *Game {
	if fps <= 0 {
		fps = 12
	}
	return &Game{
		variants: variants,
		fps:      fps,
		lastTick: -1,
		dirty:    true,
	}
}

// Reset rewinds the animation clock to zero.
func (g *Game) Reset() {
	g.t = 0
	g.lastTick = -1
	g.dirty = true
}

// step jumps the clock by whole render ticks and pins it to a tick boundary.
func (g *Game) step(ticks float64) {
	tick := math.Floor(g.t*g.fps) + ticks
	if tick < 0 {
		tick = 0
	}
	g.t = tick / g.fps
}

// Update handles per-frame logic and advances the animation clock.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) || inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.step(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.step(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) && len(g.variants) > 1 {
		g.active = (g.active + 1) % len(g.variants)
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}

	if !g.paused {
		g.t += 1.0 / float64(ebiten.TPS())
	}

	tick := math.Floor(g.t * g.fps)
	if tick != g.lastTick {
		g.lastTick = tick
		g.dirty = true
	}
	return nil
}

// Draw renders the current animation frame.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.dirty {
		img := g.variants[g.active].Renderer.Frame(g.t)
		if g.frame == nil {
			g.frame = ebiten.NewImage(img.Bounds().Dx(), img.Bounds().Dy())
		}
		g.frame.WritePixels(toRGBA(img))
		g.dirty = false
	}
	screen.DrawImage(g.frame, nil)
}

// ActiveVariant returns the name of the variant currently shown.
func (g *Game) ActiveVariant() string {
	return g.variants[g.active].Name
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.variants[g.active].Renderer.Size()
}
