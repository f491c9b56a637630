//go:build ebiten

// Command predprey-gui runs a simulation in an ebiten window.
package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"predprey/internal/app"
	"predprey/internal/config"
	"predprey/internal/core"
	_ "predprey/internal/sims/life"
	"predprey/internal/sims/predprey"
	"predprey/internal/telemetry"
)

func main() {
	if err := run(os.Args[1:]); err != nil && !errors.Is(err, flag.ErrHelp) {
		slog.Error("predprey-gui failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Parse("predprey-gui", args)
	if err != nil {
		return err
	}
	if cfg.World.Seed == 0 {
		cfg.World.Seed = time.Now().UnixNano()
	}
	cfg.ResolveSize(0, 0)
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, _ := cfg.LogLevel()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	factory, err := core.Lookup(cfg.Sim)
	if err != nil {
		return err
	}
	sim := factory(cfg.SimOptions())
	sim.Reset(cfg.World.Seed)

	out, err := telemetry.NewOutputManager(cfg.Telemetry.OutputDir)
	if err != nil {
		return err
	}
	if err := out.WriteConfig(cfg); err != nil {
		out.Close()
		return err
	}
	rec := telemetry.NewRecorder(out, cfg.Telemetry.Window, cfg.Telemetry.LogSummaries)

	var recErr error
	game := app.New(sim, app.Options{
		Scale:       cfg.Scale,
		Seed:        cfg.World.Seed,
		Info:        cfg.Info,
		Generations: cfg.Generations,
		OnStep: func() {
			if w, ok := sim.(*predprey.World); ok && recErr == nil {
				recErr = rec.Observe(telemetry.FromStats(w.Stats()))
			}
		},
		OnReset: func() {
			slog.Info("reset", "generations", rec.Generations())
			if recErr == nil {
				recErr = rec.Flush()
			}
		},
	})

	ebiten.SetWindowTitle("predprey: " + sim.Name())
	ebiten.SetTPS(cfg.FPS)
	ebiten.SetWindowSize(game.WindowSize())

	slog.Info("starting", "sim", sim.Name(), "seed", cfg.World.Seed, "width", cfg.World.Width, "height", cfg.World.Height)
	err = ebiten.RunGame(game)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	return errors.Join(err, recErr, rec.Close())
}
