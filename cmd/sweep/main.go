// Command sweep runs headless predator-prey worlds over a grid of rule
// parameters and ranks them by how long both species coexist.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/gocarina/gocsv"

	"predprey/internal/sims/predprey"
)

func main() {
	steps := flag.Int("steps", 500, "generations to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "scenarios run concurrently")
	width := flag.Int("width", 160, "grid width")
	height := flag.Int("height", 80, "grid height")
	seed := flag.Int64("seed", 1337, "seed shared by every scenario")
	out := flag.String("out", "", "CSV file for all results (empty = none)")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	base := predprey.DefaultConfig()
	base.Width = *width
	base.Height = *height
	base.Seed = *seed
	base.Params.Population = max(*width**height/400, 1)

	sets := grid(
		[]int{2, 3, 5},
		[]float64{0.001, 0.01, 0.05},
		[]int{1, 2, 3},
		[]float64{0.01, 0.05, 0.1},
	)
	fmt.Printf("Sweeping %d parameter sets (%d workers, %d steps)\n", len(sets), *workers, *steps)

	start := time.Now()
	all, err := sweep(context.Background(), base, sets, *steps, *workers)
	if err != nil {
		slog.Error("sweep failed", "error", err)
		os.Exit(1)
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].better(all[j]) })
	elapsed := time.Since(start)

	fmt.Printf("\nTop 5 results (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 5; i++ {
		fmt.Printf("%2d) %s\n", i+1, all[i])
	}

	if *out != "" {
		if err := writeResults(*out, all); err != nil {
			slog.Error("writing results", "error", err)
			os.Exit(1)
		}
		slog.Info("results written", "path", *out, "rows", len(all))
	}
}

// writeResults saves every scenario as one CSV row.
func writeResults(path string, results []scenarioResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating results file: %w", err)
	}
	if err := gocsv.MarshalFile(&results, f); err != nil {
		f.Close()
		return fmt.Errorf("marshaling results: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing results file: %w", err)
	}
	return nil
}
