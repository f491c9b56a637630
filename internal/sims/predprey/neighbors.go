package predprey

import "predprey/internal/core"

// Count tallies the live neighbours of (x, y) by species. Neighbours outside
// the grid are skipped; the grid never wraps.
func Count(g *core.Grid[Cell], nb core.Neighborhood, x, y int) Counts {
	var n Counts
	cells := g.Cells()
	nb.Each(x, y, g.W, g.H, func(nx, ny int) {
		c := cells[ny*g.W+nx]
		if !c.Alive() {
			return
		}
		if c.Species == Prey {
			n.Prey++
		} else {
			n.Predators++
		}
	})
	return n
}
