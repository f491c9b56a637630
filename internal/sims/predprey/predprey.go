package predprey

import (
	"golang.org/x/sync/errgroup"

	"predprey/internal/core"
	prng "predprey/pkg/core"
)

// Stats aggregates one generation of the world. Population counts describe
// the current buffer; births and deaths describe the transition into it.
type Stats struct {
	Generation     int
	Prey           int
	Predators      int
	PreyBirths     int
	PredatorBirths int
	PreyDeaths     int
	PredatorDeaths int
}

func (s *Stats) add(o Stats) {
	s.Prey += o.Prey
	s.Predators += o.Predators
	s.PreyBirths += o.PreyBirths
	s.PredatorBirths += o.PredatorBirths
	s.PreyDeaths += o.PreyDeaths
	s.PredatorDeaths += o.PredatorDeaths
}

func (s *Stats) record(prev, next Cell, o Outcome) {
	if next.Alive() {
		if next.Species == Prey {
			s.Prey++
		} else {
			s.Predators++
		}
	}
	switch {
	case o.Birth():
		if next.Species == Prey {
			s.PreyBirths++
		} else {
			s.PredatorBirths++
		}
	case o.Death():
		if prev.Species == Prey {
			s.PreyDeaths++
		} else {
			s.PredatorDeaths++
		}
	}
}

// World is the predator-prey simulation: a double-buffered grid advanced one
// generation per Step.
type World struct {
	cfg Config

	w, h int

	nb    core.Neighborhood
	rules Rules

	cur     *core.Grid[Cell]
	nxt     *core.Grid[Cell]
	display []uint8

	rng        *prng.RNG
	generation int
	stats      Stats
}

// NewWithConfig returns a world configured from the provided options. The
// grid starts all dead until Reset seeds it.
func NewWithConfig(cfg Config) *World {
	w := &World{
		cfg:   cfg,
		nb:    core.NewNeighborhood(cfg.Params.Radius),
		rules: NewRules(cfg.Params),
		cur:   core.NewGrid[Cell](cfg.Width, cfg.Height),
		nxt:   core.NewGrid[Cell](cfg.Width, cfg.Height),
		rng:   prng.NewRNG(cfg.Seed),
	}
	w.w, w.h = w.cur.W, w.cur.H
	w.display = make([]uint8, w.w*w.h)
	clearGrid(w.cur)
	clearGrid(w.nxt)
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "predprey" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Cells exposes the display encoding of the current buffer.
func (w *World) Cells() []uint8 { return w.display }

// Grid exposes the current buffer. Callers must treat it as read-only.
func (w *World) Grid() *core.Grid[Cell] { return w.cur }

// Generation returns the number of completed steps since Reset.
func (w *World) Generation() int { return w.generation }

// Stats returns the aggregates for the current generation.
func (w *World) Stats() Stats { return w.stats }

// Reset clears the grid and reseeds it. A zero seed falls back to the
// configured seed.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng = prng.NewRNG(effective)
	w.generation = 0
	clearGrid(w.cur)
	clearGrid(w.nxt)
	Seed(w.cur, w.rng, w.cfg.Params)

	w.stats = Stats{}
	for _, c := range w.cur.Cells() {
		w.stats.record(c, c, OutcomeStasis)
	}
	w.rebuildDisplay()
}

// Step computes the next generation from the current buffer and swaps.
func (w *World) Step() {
	var st Stats
	if w.cfg.Workers > 1 && w.h > 1 {
		st = w.stepParallel(w.cfg.Workers)
	} else {
		st = w.stepRows(0, w.h, w.rng)
	}
	w.generation++
	st.Generation = w.generation
	w.stats = st
	w.cur, w.nxt = w.nxt, w.cur
	w.rebuildDisplay()
}

// stepRows evaluates rows [y0, y1). It reads only the current buffer and
// writes only the matching rows of the next one.
func (w *World) stepRows(y0, y1 int, dice Dice) Stats {
	var st Stats
	cur := w.cur.Cells()
	nxt := w.nxt.Cells()
	for y := y0; y < y1; y++ {
		for x := 0; x < w.w; x++ {
			idx := y*w.w + x
			c := cur[idx]
			next, outcome := w.rules.Decide(c, Count(w.cur, w.nb, x, y), dice)
			nxt[idx] = next
			st.record(c, next, outcome)
		}
	}
	return st
}

// stepParallel splits the rows into bands. Each band draws from its own
// stream, seeded from the world stream in band order, so a fixed worker
// count stays reproducible.
func (w *World) stepParallel(workers int) Stats {
	if workers > w.h {
		workers = w.h
	}
	rows := (w.h + workers - 1) / workers
	bands := make([]Stats, workers)
	seeds := make([]int64, workers)
	for i := range seeds {
		seeds[i] = int64(w.rng.Uint64())
	}

	var eg errgroup.Group
	for i := 0; i < workers; i++ {
		y0 := i * rows
		if y0 >= w.h {
			break
		}
		y1 := min(y0+rows, w.h)
		eg.Go(func() error {
			bands[i] = w.stepRows(y0, y1, prng.NewRNG(seeds[i]))
			return nil
		})
	}
	_ = eg.Wait()

	var st Stats
	for i := range bands {
		st.add(bands[i])
	}
	return st
}

func init() {
	core.Register("predprey", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
