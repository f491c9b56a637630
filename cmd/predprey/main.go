// Command predprey runs the predator-prey automaton in a terminal, or
// headless for telemetry runs.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"predprey/internal/config"
	"predprey/internal/core"
	_ "predprey/internal/sims/life"
	"predprey/internal/sims/predprey"
	"predprey/internal/telemetry"
	"predprey/internal/term"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stderr)
	stop()
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "predprey:", err)
		os.Exit(1)
	}
}

// statsSource is implemented by sims that report per-generation stats.
type statsSource interface {
	Stats() predprey.Stats
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	cfg, err := config.Parse("predprey", args)
	if err != nil {
		return err
	}
	if cfg.World.Seed == 0 {
		cfg.World.Seed = time.Now().UnixNano()
	}

	var screen tcell.Screen
	if cfg.Headless {
		cfg.ResolveSize(0, 0)
	} else {
		if screen, err = tcell.NewScreen(); err != nil {
			return fmt.Errorf("opening terminal: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("initializing terminal: %w", err)
		}
		defer screen.Fini()
		cfg.ResolveSize(screen.Size())
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logOut := stderr
	if !cfg.Headless {
		logOut = io.Discard
	}
	closeLog, err := setupLogging(cfg, logOut)
	if err != nil {
		return err
	}
	defer closeLog()

	sim, err := newSim(cfg)
	if err != nil {
		return err
	}

	out, err := telemetry.NewOutputManager(cfg.Telemetry.OutputDir)
	if err != nil {
		return err
	}
	if err := out.WriteConfig(cfg); err != nil {
		out.Close()
		return err
	}
	rec := telemetry.NewRecorder(out, cfg.Telemetry.Window, cfg.Telemetry.LogSummaries)

	slog.Info("starting",
		"sim", sim.Name(),
		"width", cfg.World.Width,
		"height", cfg.World.Height,
		"seed", cfg.World.Seed,
		"workers", cfg.World.Workers,
		"headless", cfg.Headless,
		"output_dir", out.Dir(),
	)

	var recErr error
	observe := func() {
		src, ok := sim.(statsSource)
		if !ok || recErr != nil {
			return
		}
		recErr = rec.Observe(telemetry.FromStats(src.Stats()))
	}

	if cfg.Headless {
		err = runHeadless(ctx, sim, cfg.Generations, observe)
	} else {
		err = term.Run(ctx, screen, sim, term.Options{
			FPS:         cfg.FPS,
			Info:        cfg.Info,
			Generations: cfg.Generations,
			OnStep:      observe,
		})
	}
	err = errors.Join(err, recErr, rec.Close())
	slog.Info("finished", "generations", rec.Generations(), "last_window", rec.Last())
	return err
}

// newSim builds and seeds the configured sim.
func newSim(cfg *config.Config) (core.Sim, error) {
	factory, err := core.Lookup(cfg.Sim)
	if err != nil {
		return nil, err
	}
	sim := factory(cfg.SimOptions())
	sim.Reset(cfg.World.Seed)
	return sim, nil
}

// runHeadless steps sim until ctx is done or the generation limit is hit.
// With no limit it runs until interrupted.
func runHeadless(ctx context.Context, sim core.Sim, generations int, onStep func()) error {
	for steps := 0; generations <= 0 || steps < generations; steps++ {
		if ctx.Err() != nil {
			slog.Info("interrupted", "steps", steps)
			return nil
		}
		sim.Step()
		onStep()
	}
	return nil
}

// setupLogging installs the default slog logger. Logs go to the configured
// file when set, otherwise to fallback.
func setupLogging(cfg *config.Config, fallback io.Writer) (func(), error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	out, closeFn := fallback, func() {}
	if cfg.Log.Path != "" {
		f, err := os.OpenFile(cfg.Log.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		out, closeFn = f, func() { f.Close() }
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})))
	return closeFn, nil
}
