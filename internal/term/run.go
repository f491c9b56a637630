package term

import (
	"context"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"predprey/internal/core"
)

// Options controls the terminal run loop.
type Options struct {
	FPS  int
	Info bool

	// Generations stops the loop after that many steps; 0 runs until quit.
	Generations int

	// OnStep runs after every step, before the frame is drawn.
	OnStep func()
}

// Run draws sim, steps it once per frame and paces frames at opts.FPS. It
// returns when ctx is done, the user presses q, Esc or Ctrl-C, or the
// generation limit is reached.
func Run(ctx context.Context, screen tcell.Screen, sim core.Sim, opts Options) error {
	renderer := NewRenderer(screen, opts.Info)
	clock := core.NewFrameClock(opts.FPS)

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	screen.HideCursor()
	screen.Clear()
	renderer.Draw(sim, 0)

	for steps := 0; opts.Generations <= 0 || steps < opts.Generations; steps++ {
		if ctx.Err() != nil {
			return nil
		}
		select {
		case ev := <-events:
			if handleEvent(screen, ev) {
				slog.Debug("quit requested", "steps", steps)
				return nil
			}
		default:
		}

		clock.Begin()
		sim.Step()
		if opts.OnStep != nil {
			opts.OnStep()
		}
		renderer.drawCells(sim)
		if renderer.info {
			// The panel reports the frame being drawn: step plus cells.
			clock.Measure()
			renderer.drawInfo(sim, clock.ActualFPS())
		}
		renderer.screen.Show()
		clock.Hold()
	}
	return nil
}

// handleEvent reacts to input and reports whether the loop should stop.
func handleEvent(screen tcell.Screen, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			return ev.Rune() == 'q' || ev.Rune() == 'Q'
		}
	case *tcell.EventResize:
		screen.Sync()
	}
	return false
}
