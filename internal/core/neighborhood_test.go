package core

import "testing"

func TestNeighborhoodRadiusOne(t *testing.T) {
	n := NewNeighborhood(1)
	if n.Len() != 8 {
		t.Fatalf("radius 1 should have 8 offsets, got %d", n.Len())
	}
	want := []Offset{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
	got := n.Offsets()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("offset %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNeighborhoodIsFullSquare(t *testing.T) {
	for r := 1; r <= 5; r++ {
		n := NewNeighborhood(r)
		side := 2*r + 1
		if n.Len() != side*side-1 {
			t.Fatalf("radius %d: got %d offsets, want %d", r, n.Len(), side*side-1)
		}
		seen := map[Offset]bool{}
		for _, o := range n.Offsets() {
			if o.DX == 0 && o.DY == 0 {
				t.Fatalf("radius %d includes the origin", r)
			}
			if o.DX < -r || o.DX > r || o.DY < -r || o.DY > r {
				t.Fatalf("radius %d: offset %v out of range", r, o)
			}
			if seen[o] {
				t.Fatalf("radius %d: duplicate offset %v", r, o)
			}
			seen[o] = true
		}
	}
}

func TestNeighborhoodZeroRadiusIsEmpty(t *testing.T) {
	if n := NewNeighborhood(0); n.Len() != 0 {
		t.Fatalf("radius 0 should be empty, got %d", n.Len())
	}
	called := false
	NewNeighborhood(0).Each(1, 1, 3, 3, func(int, int) { called = true })
	if called {
		t.Fatal("empty neighborhood should visit nothing")
	}
}

func TestNeighborhoodEachStaysInBounds(t *testing.T) {
	n := NewNeighborhood(3)
	w, h := 5, 4
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			visits := 0
			n.Each(x, y, w, h, func(nx, ny int) {
				visits++
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					t.Fatalf("cell (%d,%d) visited out-of-range (%d,%d)", x, y, nx, ny)
				}
				if nx == x && ny == y {
					t.Fatalf("cell (%d,%d) visited itself", x, y)
				}
			})
			if visits > n.Len() {
				t.Fatalf("cell (%d,%d) visited %d > %d", x, y, visits, n.Len())
			}
		}
	}
}

func TestNeighborhoodCornerCount(t *testing.T) {
	n := NewNeighborhood(1)
	visits := 0
	n.Each(0, 0, 5, 5, func(int, int) { visits++ })
	if visits != 3 {
		t.Fatalf("corner should see 3 neighbours, got %d", visits)
	}
}
