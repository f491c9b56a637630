package predprey

import (
	"testing"

	"predprey/internal/core"
)

func newDeadGrid(w, h int) *core.Grid[Cell] {
	g := core.NewGrid[Cell](w, h)
	clearGrid(g)
	return g
}

func place(g *core.Grid[Cell], x, y int, s Species) {
	g.Set(x, y, Cell{X: x, Y: y, Vitality: Alive(1), Species: s})
}

func TestCountBySpecies(t *testing.T) {
	g := newDeadGrid(5, 5)
	place(g, 1, 1, Prey)
	place(g, 2, 1, Prey)
	place(g, 3, 3, Predator)
	place(g, 2, 2, Predator) // the centre itself is never counted
	place(g, 4, 4, Prey)     // outside radius 1 of (2,2)

	got := Count(g, core.NewNeighborhood(1), 2, 2)
	if got != (Counts{Prey: 2, Predators: 1}) {
		t.Fatalf("Count = %+v", got)
	}

	got = Count(g, core.NewNeighborhood(2), 2, 2)
	if got != (Counts{Prey: 3, Predators: 1}) {
		t.Fatalf("radius 2 Count = %+v", got)
	}
}

func TestCountDoesNotWrap(t *testing.T) {
	g := newDeadGrid(5, 5)
	place(g, 4, 4, Prey)
	place(g, 4, 0, Predator)
	place(g, 0, 4, Predator)

	if got := Count(g, core.NewNeighborhood(1), 0, 0); got != (Counts{}) {
		t.Fatalf("corner (0,0) saw wrapped neighbours: %+v", got)
	}
}

func TestCountNeverExceedsNeighborhood(t *testing.T) {
	g := core.NewGrid[Cell](7, 4)
	g.Fill(func(x, y int) Cell { return Cell{X: x, Y: y, Vitality: Alive(1), Species: Species((x + y) % 2)} })
	for r := 0; r <= 6; r++ {
		nb := core.NewNeighborhood(r)
		for y := 0; y < g.H; y++ {
			for x := 0; x < g.W; x++ {
				n := Count(g, nb, x, y)
				if n.Prey+n.Predators > nb.Len() {
					t.Fatalf("radius %d cell (%d,%d): %d neighbours > %d offsets", r, x, y, n.Prey+n.Predators, nb.Len())
				}
			}
		}
	}
}

func TestCountZeroRadius(t *testing.T) {
	g := core.NewGrid[Cell](3, 3)
	g.Fill(func(x, y int) Cell { return Cell{X: x, Y: y, Vitality: Alive(1)} })
	if got := Count(g, core.NewNeighborhood(0), 1, 1); got != (Counts{}) {
		t.Fatalf("radius 0 should count nothing, got %+v", got)
	}
}
