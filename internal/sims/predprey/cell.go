package predprey

import "strconv"

// Species identifies which population a cell belongs to.
type Species uint8

const (
	Prey Species = iota
	Predator
)

func (s Species) String() string {
	switch s {
	case Prey:
		return "prey"
	case Predator:
		return "predator"
	default:
		return "species(" + strconv.Itoa(int(s)) + ")"
	}
}

// Vitality is either dead or alive with an age counter. The zero value is dead.
type Vitality struct {
	alive bool
	age   int
}

// Dead returns the dead vitality.
func Dead() Vitality { return Vitality{} }

// Alive returns a live vitality with the given age.
func Alive(age int) Vitality { return Vitality{alive: true, age: age} }

// IsAlive reports whether the vitality is alive.
func (v Vitality) IsAlive() bool { return v.alive }

// Age returns the age of a live vitality and 0 for a dead one.
func (v Vitality) Age() int {
	if !v.alive {
		return 0
	}
	return v.age
}

func (v Vitality) String() string {
	if !v.alive {
		return "dead"
	}
	return "alive(" + strconv.Itoa(v.age) + ")"
}

// Cell is a single grid position. X and Y always match the cell's index in
// the grid that holds it.
type Cell struct {
	X, Y     int
	Vitality Vitality
	Species  Species
}

// Alive reports whether the cell is alive.
func (c Cell) Alive() bool { return c.Vitality.alive }

// Age returns the cell's age, 0 when dead.
func (c Cell) Age() int { return c.Vitality.Age() }

func (c Cell) born(s Species) Cell {
	return Cell{X: c.X, Y: c.Y, Vitality: Alive(1), Species: s}
}

func (c Cell) aged(by int) Cell {
	return Cell{X: c.X, Y: c.Y, Vitality: Alive(c.Vitality.age + by), Species: c.Species}
}

func (c Cell) died() Cell {
	return Cell{X: c.X, Y: c.Y, Vitality: Dead(), Species: c.Species}
}
