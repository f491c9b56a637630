package core

// Offset is a relative grid coordinate.
type Offset struct {
	DX, DY int
}

// Neighborhood is the ordered set of offsets that count as "nearby" for a
// cell. It is computed once per run and only read afterwards.
type Neighborhood struct {
	offsets []Offset
}

// NewNeighborhood returns every offset in the square [-radius, radius]²
// except the origin. The whole square is included, not only its boundary.
// A radius of zero or less yields an empty neighborhood.
func NewNeighborhood(radius int) Neighborhood {
	if radius <= 0 {
		return Neighborhood{}
	}
	side := 2*radius + 1
	offsets := make([]Offset, 0, side*side-1)
	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			offsets = append(offsets, Offset{DX: dx, DY: dy})
		}
	}
	return Neighborhood{offsets: offsets}
}

// Len returns the number of offsets.
func (n Neighborhood) Len() int { return len(n.offsets) }

// Offsets returns a copy of the offsets in generation order.
func (n Neighborhood) Offsets() []Offset {
	out := make([]Offset, len(n.offsets))
	copy(out, n.offsets)
	return out
}

// Each calls fn for every in-bounds neighbour of (x, y) on a w×h grid.
// Candidates are computed in signed arithmetic and rejected before use when
// they fall outside the grid; nothing wraps.
func (n Neighborhood) Each(x, y, w, h int, fn func(nx, ny int)) {
	for _, o := range n.offsets {
		nx := x + o.DX
		if nx < 0 || nx >= w {
			continue
		}
		ny := y + o.DY
		if ny < 0 || ny >= h {
			continue
		}
		fn(nx, ny)
	}
}
