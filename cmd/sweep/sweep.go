package main

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"predprey/internal/sims/predprey"
	"predprey/internal/telemetry"
)

type ParamSet struct {
	Radius       int     `csv:"radius"`
	Mutation     float64 `csv:"mutation"`
	Resistance   int     `csv:"resistance"`
	PredatorRate float64 `csv:"predator_rate"`
}

func (p ParamSet) String() string {
	return fmt.Sprintf("radius=%d mutation=%.3f resistance=%d predatorRate=%.2f",
		p.Radius, p.Mutation, p.Resistance, p.PredatorRate)
}

func (p ParamSet) apply(cfg predprey.Config) predprey.Config {
	cfg.Params.Radius = p.Radius
	cfg.Params.Mutation = p.Mutation
	cfg.Params.Resistance = p.Resistance
	cfg.Params.PredatorRate = p.PredatorRate
	return cfg
}

func grid(radii []int, mutations []float64, resistances []int, rates []float64) []ParamSet {
	var sets []ParamSet
	for _, r := range radii {
		for _, m := range mutations {
			for _, res := range resistances {
				for _, rate := range rates {
					sets = append(sets, ParamSet{Radius: r, Mutation: m, Resistance: res, PredatorRate: rate})
				}
			}
		}
	}
	return sets
}

type scenarioResult struct {
	ParamSet

	// Generations with both species alive, counted from the start.
	Coexisted int `csv:"coexisted"`

	telemetry.Summary
}

func (r scenarioResult) String() string {
	return fmt.Sprintf("coexisted=%d prey=%.1f±%.1f pred=%.1f±%.1f corr=%.3f params=%s",
		r.Coexisted, r.PreyMean, r.PreyStd, r.PredMean, r.PredStd, r.PreyPredCorr, r.ParamSet)
}

// better orders longer coexistence first, then larger predator populations.
func (r scenarioResult) better(o scenarioResult) bool {
	if r.Coexisted != o.Coexisted {
		return r.Coexisted > o.Coexisted
	}
	return r.PredMean > o.PredMean
}

// sweep runs every set on its own world, at most workers at a time.
func sweep(ctx context.Context, base predprey.Config, sets []ParamSet, steps, workers int) ([]scenarioResult, error) {
	results := make([]scenarioResult, len(sets))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(workers, 1))
	for i, params := range sets {
		eg.Go(func() error {
			res, err := runScenario(ctx, base, params, steps)
			if err != nil {
				return fmt.Errorf("scenario %s: %w", params, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runScenario(ctx context.Context, base predprey.Config, params ParamSet, steps int) (scenarioResult, error) {
	cfg := params.apply(base)
	if err := cfg.Validate(); err != nil {
		return scenarioResult{}, err
	}
	world := predprey.NewWithConfig(cfg)
	world.Reset(cfg.Seed)

	records := make([]telemetry.Record, 0, steps)
	coexisting := true
	coexisted := 0
	for step := 0; step < steps; step++ {
		if err := ctx.Err(); err != nil {
			return scenarioResult{}, err
		}
		world.Step()
		st := world.Stats()
		records = append(records, telemetry.FromStats(st))
		if coexisting && st.Prey > 0 && st.Predators > 0 {
			coexisted++
		} else {
			coexisting = false
		}
	}
	return scenarioResult{
		ParamSet:  params,
		Coexisted: coexisted,
		Summary:   telemetry.Summarize(records),
	}, nil
}
