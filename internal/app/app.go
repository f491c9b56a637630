//go:build ebiten

// Package app adapts a simulation to an ebiten window.
package app

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"predprey/internal/core"
	"predprey/internal/render"
	"predprey/internal/ui"
)

// PanelWidth is the info panel width in pixels.
const PanelWidth = 220

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	palette []color.RGBA
	hud     *ui.HUD
	onStep  func()
	onReset func()

	scale     int
	info      bool
	withPanel bool
	paused    bool
	tickOnce  bool
	seed      int64
	steps     int
	limit     int
}

// Options tunes a Game.
type Options struct {
	Scale int
	Seed  int64
	Info  bool

	// Generations stops stepping after that many steps; 0 means never.
	Generations int

	// OnStep runs after every step.
	OnStep func()

	// OnReset runs after the world is reseeded from the keyboard.
	OnReset func()
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, opts Options) *Game {
	size := sim.Size()
	return &Game{
		sim:       sim,
		painter:   render.NewGridPainter(size.W, size.H),
		palette:   render.PaletteFor(sim),
		hud:       ui.NewHUD(sim, PanelWidth),
		onStep:    opts.OnStep,
		onReset:   opts.OnReset,
		scale:     max(opts.Scale, 1),
		info:      opts.Info,
		withPanel: opts.Info,
		seed:      opts.Seed,
		limit:     opts.Generations,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.steps = 0
	if g.onReset != nil {
		g.onReset()
	}
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		g.info = !g.info
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if g.limit > 0 && g.steps >= g.limit {
		return ebiten.Termination
	}
	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.steps++
		g.tickOnce = false
		if g.onStep != nil {
			g.onStep()
		}
	}
	if g.info {
		g.hud.Update(ebiten.ActualTPS())
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	if g.info {
		g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}

// WindowSize is the grid at its scale, plus room for the info panel when it
// was enabled at start. Toggling the panel later keeps the layout fixed.
func (g *Game) WindowSize() (int, int) {
	s := g.sim.Size()
	w := s.W * g.scale
	if g.withPanel {
		w += g.hud.Width()
	}
	return w, s.H * g.scale
}
