package life

import (
	"strconv"

	"predprey/internal/core"
	prng "predprey/pkg/core"
)

// Config holds parameters for the plain Game of Life variant.
type Config struct {
	Width   int
	Height  int
	Radius  int
	Density float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Radius: 1, Density: 0.5}
}

// FromMap populates a Config from a string map. Radius and density use
// their own keys so predator-prey settings in the same map do not leak in.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["life_radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Radius = parsed
		}
	}
	if v, ok := cfg["life_density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	return c
}

// Life implements Conway's Game of Life on a bounded grid.
type Life struct {
	cfg Config
	nb  core.Neighborhood
	cur *core.Grid[uint8]
	nxt *core.Grid[uint8]
}

// NewWithConfig returns a Life simulation configured from cfg.
func NewWithConfig(cfg Config) *Life {
	return &Life{
		cfg: cfg,
		nb:  core.NewNeighborhood(cfg.Radius),
		cur: core.NewGrid[uint8](cfg.Width, cfg.Height),
		nxt: core.NewGrid[uint8](cfg.Width, cfg.Height),
	}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.cur.Size() }

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// alive counts the live cells.
func (l *Life) alive() int {
	n := 0
	for _, c := range l.cur.Cells() {
		n += int(c)
	}
	return n
}

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	rng := prng.NewRNG(seed)
	cells := l.cur.Cells()
	for i := range cells {
		cells[i] = 0
		if rng.Chance(l.cfg.Density) {
			cells[i] = 1
		}
	}
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	w, h := l.cur.W, l.cur.H
	cur, nxt := l.cur.Cells(), l.nxt.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			l.nb.Each(x, y, w, h, func(nx, ny int) {
				neighbors += int(cur[ny*w+nx])
			})
			idx := y*w + x
			alive := cur[idx] == 1
			nxt[idx] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				nxt[idx] = 1
			}
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
