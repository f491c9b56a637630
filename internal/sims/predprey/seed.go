package predprey

import "predprey/internal/core"

// SeedRand is the randomness the initializer draws from.
type SeedRand interface {
	Dice
	IntN(n int) int
}

// Seed scatters p.Population square clusters over g. Each cluster is centred
// on a uniformly random cell and spans ClusterSize cells in every direction,
// clipped to the grid. Inside a cluster every cell comes alive with
// probability ClusterDensity and is a predator with probability PredatorRate.
// Later clusters overwrite earlier ones.
func Seed(g *core.Grid[Cell], r SeedRand, p Params) {
	size := p.ClusterSize
	if size < 0 {
		size = 0
	}
	for i := 0; i < p.Population; i++ {
		cx := r.IntN(g.W)
		cy := r.IntN(g.H)
		x0, x1 := max(cx-size, 0), min(cx+size, g.W-1)
		y0, y1 := max(cy-size, 0), min(cy+size, g.H-1)
		for x := x0; x <= x1; x++ {
			for y := y0; y <= y1; y++ {
				if !r.Chance(p.ClusterDensity) {
					continue
				}
				species := Prey
				if r.Chance(p.PredatorRate) {
					species = Predator
				}
				g.Set(x, y, Cell{X: x, Y: y, Vitality: Alive(1), Species: species})
			}
		}
	}
}

// clearGrid marks every cell dead while restoring its coordinates.
func clearGrid(g *core.Grid[Cell]) {
	g.Fill(func(x, y int) Cell { return Cell{X: x, Y: y} })
}
