package life

import (
	"slices"
	"testing"
)

func newLife(w, h int) *Life {
	c := DefaultConfig()
	c.Width, c.Height = w, h
	return NewWithConfig(c)
}

func TestBlinkerOscillation(t *testing.T) {
	life := newLife(5, 5)
	cells := life.Cells()
	for i := range cells {
		cells[i] = 0
	}

	w := life.Size().W
	set := func(x, y int) { life.Cells()[y*w+x] = 1 }
	set(2, 1)
	set(2, 2)
	set(2, 3)

	life.Step()
	cells = life.Cells()

	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			idx := y*w + x
			alive := cells[idx] == 1
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}

	life.Step()
	cells = life.Cells()

	expects = map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			idx := y*w + x
			alive := cells[idx] == 1
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}
}

func TestEdgesDoNotWrap(t *testing.T) {
	life := newLife(4, 4)
	w := life.Size().W
	// A vertical blinker on the left edge loses its wrapped partners.
	for _, y := range []int{0, 1, 2} {
		life.Cells()[y*w+0] = 1
	}
	life.Step()
	if life.Cells()[1*w+3] != 0 {
		t.Fatal("cell (3,1) came alive through wraparound")
	}
	if life.Cells()[1*w+1] != 1 {
		t.Fatal("cell (1,1) should be born from the edge blinker")
	}
}

func TestResetDeterministic(t *testing.T) {
	life := newLife(16, 16)
	life.Reset(3)
	first := slices.Clone(life.Cells())
	life.Reset(3)
	if !slices.Equal(first, life.Cells()) {
		t.Fatal("Reset with the same seed should be deterministic")
	}
}

func TestFromMapIgnoresPredatorPreyKeys(t *testing.T) {
	c := FromMap(map[string]string{
		"w":            "80",
		"h":            "40",
		"radius":       "5",
		"density":      "0.7",
		"life_density": "0.3",
	})
	if c.Radius != 1 || c.Density != 0.3 {
		t.Fatalf("radius=%d density=%v, want 1 and 0.3", c.Radius, c.Density)
	}
	if c.Width != 80 || c.Height != 40 {
		t.Fatalf("size = %dx%d", c.Width, c.Height)
	}
}

func TestRandomBoardSurvivesFirstSteps(t *testing.T) {
	life := newLife(80, 40)
	life.Reset(3)
	if life.alive() == 0 {
		t.Fatal("seeded board is empty")
	}
	life.Step()
	life.Step()
	if life.alive() == 0 {
		t.Fatal("default board died within two steps")
	}
}
