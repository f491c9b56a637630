package term

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"predprey/internal/core"
	"predprey/internal/sims/predprey"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func emptyWorld(w, h int) *predprey.World {
	cfg := predprey.DefaultConfig()
	cfg.Width, cfg.Height = w, h
	cfg.Params.Population = 0
	cfg.Params.Mutation = 0
	cfg.Params.Radius = 1
	world := predprey.NewWithConfig(cfg)
	world.Reset(0)
	return world
}

func TestDrawColoursBySpeciesAndBand(t *testing.T) {
	cfg := predprey.DefaultConfig()
	cfg.Width, cfg.Height = 4, 3
	cfg.Params.Population = 1
	cfg.Params.ClusterSize = 10
	cfg.Params.ClusterDensity = 1
	cfg.Params.PredatorRate = 0
	world := predprey.NewWithConfig(cfg)
	world.Reset(0)

	screen := newScreen(t, 10, 5)
	NewRenderer(screen, false).Draw(world, 0)

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			ch, _, style, _ := screen.GetContent(x, y)
			if ch != predprey.GlyphAlive {
				t.Fatalf("cell (%d,%d) glyph %q, want ◈", x, y, ch)
			}
			fg, _, _ := style.Decompose()
			if fg != tcell.PaletteColor(47) {
				t.Fatalf("young prey at (%d,%d) drawn with %v, want palette 47", x, y, fg)
			}
		}
	}
}

func TestDrawDeadCellsBlank(t *testing.T) {
	world := emptyWorld(3, 2)
	screen := newScreen(t, 3, 2)
	NewRenderer(screen, false).Draw(world, 0)
	ch, _, _, _ := screen.GetContent(1, 1)
	if ch != ' ' {
		t.Fatalf("dead cell glyph %q, want blank", ch)
	}
}

func TestDrawInfoPanel(t *testing.T) {
	world := emptyWorld(40, 20)
	screen := newScreen(t, 40, 20)
	NewRenderer(screen, true).Draw(world, 24)

	if got := rowText(screen, 0, 9); got != "FPS: 24.0" {
		t.Fatalf("first panel line = %q", got)
	}
	if got := rowText(screen, 1, 13); got != "Generation: 0" {
		t.Fatalf("second panel line = %q", got)
	}
}

func rowText(s tcell.Screen, y, n int) string {
	var b strings.Builder
	for x := 0; x < n; x++ {
		ch, _, _, _ := s.GetContent(x, y)
		b.WriteRune(ch)
	}
	return b.String()
}

type plainSim struct{ cells []uint8 }

func (p *plainSim) Name() string    { return "plain" }
func (p *plainSim) Size() core.Size { return core.Size{W: 2, H: 1} }
func (p *plainSim) Reset(int64)     {}
func (p *plainSim) Step()           {}
func (p *plainSim) Cells() []uint8  { return p.cells }

func TestDrawWithoutGlyphMapper(t *testing.T) {
	screen := newScreen(t, 2, 1)
	NewRenderer(screen, false).Draw(&plainSim{cells: []uint8{1, 0}}, 0)
	if ch, _, _, _ := screen.GetContent(0, 0); ch != '◈' {
		t.Fatalf("live cell glyph %q", ch)
	}
	if ch, _, _, _ := screen.GetContent(1, 0); ch != ' ' {
		t.Fatalf("dead cell glyph %q", ch)
	}
}

func TestRunStopsAfterGenerations(t *testing.T) {
	world := emptyWorld(5, 5)
	screen := newScreen(t, 5, 5)
	steps := 0
	err := Run(context.Background(), screen, world, Options{
		FPS:         1000,
		Generations: 3,
		OnStep:      func() { steps++ },
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if steps != 3 || world.Generation() != 3 {
		t.Fatalf("steps=%d generation=%d, want 3", steps, world.Generation())
	}
}

func TestRunInfoPanelShowsCurrentFrameRate(t *testing.T) {
	world := emptyWorld(30, 20)
	screen := newScreen(t, 30, 20)
	err := Run(context.Background(), screen, world, Options{FPS: 1000, Info: true, Generations: 1})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	line := rowText(screen, 0, 12)
	if !strings.HasPrefix(line, "FPS: ") {
		t.Fatalf("first panel line = %q", line)
	}
	if strings.HasPrefix(line, "FPS: 0.0 ") {
		t.Fatalf("panel shows no measurement for the first frame: %q", line)
	}
}

func TestRunStopsOnQuitKey(t *testing.T) {
	world := emptyWorld(5, 5)
	screen := newScreen(t, 5, 5)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- Run(context.Background(), screen, world, Options{FPS: 200}) }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop on q")
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	world := emptyWorld(5, 5)
	screen := newScreen(t, 5, 5)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Run(ctx, screen, world, Options{FPS: 200}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if world.Generation() != 0 {
		t.Fatalf("cancelled run should not step, generation=%d", world.Generation())
	}
}

func TestHandleEvent(t *testing.T) {
	screen := newScreen(t, 2, 2)
	if !handleEvent(screen, tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("Esc should quit")
	}
	if handleEvent(screen, tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)) {
		t.Fatal("x should not quit")
	}
	if handleEvent(screen, tcell.NewEventResize(10, 10)) {
		t.Fatal("resize should not quit")
	}
}
