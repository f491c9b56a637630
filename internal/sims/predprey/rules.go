package predprey

// Dice supplies the Bernoulli draws the rule chain needs. Chance reports
// true with probability p.
type Dice interface {
	Chance(p float64) bool
}

// Counts holds the live neighbours of a cell by species.
type Counts struct {
	Prey      int
	Predators int
}

// Outcome names the rule that decided a cell's next state.
type Outcome uint8

const (
	OutcomeStasis Outcome = iota
	OutcomeOldAge
	OutcomeEaten
	OutcomeUnderpopulated
	OutcomeOverpopulated
	OutcomeStarved
	OutcomeReproduced
	OutcomeSurvived
	OutcomeFed
	OutcomeHungry
	OutcomeBorn
	OutcomeStayDead
)

var outcomeNames = [...]string{
	OutcomeStasis:         "stasis",
	OutcomeOldAge:         "old-age",
	OutcomeEaten:          "eaten",
	OutcomeUnderpopulated: "underpopulated",
	OutcomeOverpopulated:  "overpopulated",
	OutcomeStarved:        "starved",
	OutcomeReproduced:     "reproduced",
	OutcomeSurvived:       "survived",
	OutcomeFed:            "fed",
	OutcomeHungry:         "hungry",
	OutcomeBorn:           "born",
	OutcomeStayDead:       "stay-dead",
}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}

// Death reports whether the outcome turns a live cell into a dead one.
func (o Outcome) Death() bool {
	switch o {
	case OutcomeOldAge, OutcomeEaten, OutcomeUnderpopulated, OutcomeOverpopulated, OutcomeStarved:
		return true
	}
	return false
}

// Birth reports whether the outcome places a newborn cell.
func (o Outcome) Birth() bool {
	return o == OutcomeReproduced || o == OutcomeBorn
}

// decision is everything a guard may look at. mutated is drawn once per dead
// cell and shared by both rebirth rules.
type decision struct {
	p       *Params
	cell    Cell
	n       Counts
	dice    Dice
	mutated bool
}

// rule is one guarded branch. Chains are evaluated top-down and the first
// rule whose guard holds decides the cell; guards draw randomness only when
// reached, so the chain order fixes the random stream.
type rule struct {
	outcome Outcome
	when    func(d *decision) bool
	then    func(d *decision) Cell
}

func die(d *decision) Cell       { return d.cell.died() }
func keep(d *decision) Cell      { return d.cell }
func grow(d *decision) Cell      { return d.cell.aged(1) }
func always(*decision) bool      { return true }
func newPrey(d *decision) Cell   { return d.cell.born(Prey) }
func newHunter(d *decision) Cell { return d.cell.born(Predator) }

var preyRules = []rule{
	{OutcomeOldAge, func(d *decision) bool { return d.cell.Age() >= d.p.MaxAge }, die},
	{OutcomeEaten, func(d *decision) bool {
		return d.n.Predators >= d.p.Resistance && !d.dice.Chance(d.p.PredationSurvival)
	}, die},
	{OutcomeUnderpopulated, func(d *decision) bool { return d.n.Prey < d.p.Underpopulation }, die},
	{OutcomeOverpopulated, func(d *decision) bool { return d.n.Prey > d.p.Overpopulation }, die},
	{OutcomeReproduced, func(d *decision) bool {
		return d.n.Prey >= d.p.Underpopulation && d.n.Prey <= d.p.Overpopulation &&
			d.n.Prey >= d.p.Reproduction && d.dice.Chance(d.p.PreyBirthChance)
	}, newPrey},
	{OutcomeSurvived, func(d *decision) bool {
		return d.n.Prey >= d.p.Survivability && d.n.Prey <= d.p.Overpopulation
	}, grow},
	{OutcomeStasis, always, keep},
}

// The reproduction rule sits behind the fed rule, which has the same guard,
// so it never fires. The order is kept as is.
var predatorRules = []rule{
	{OutcomeOldAge, func(d *decision) bool { return d.cell.Age() >= d.p.MaxAge }, die},
	{OutcomeUnderpopulated, func(d *decision) bool { return d.n.Predators < d.p.Underpopulation }, die},
	{OutcomeOverpopulated, func(d *decision) bool { return d.n.Predators > d.p.Overpopulation }, die},
	{OutcomeStarved, func(d *decision) bool {
		return d.n.Prey == 0 && d.dice.Chance(d.p.StarvationChance)
	}, die},
	{OutcomeFed, func(d *decision) bool {
		return d.n.Prey > 0 && d.n.Predators <= d.p.Overpopulation
	}, grow},
	{OutcomeHungry, func(d *decision) bool { return d.n.Prey == 0 }, func(d *decision) Cell {
		return d.cell.aged(d.p.AgingRate)
	}},
	{OutcomeReproduced, func(d *decision) bool {
		return d.n.Prey > 0 && d.n.Predators <= d.p.Overpopulation && d.dice.Chance(d.p.PredatorBirthChance)
	}, newHunter},
	{OutcomeStasis, always, keep},
}

// A mutation always lands in the prey rule first, so the predator rule only
// fires from its density condition.
var deadRules = []rule{
	{OutcomeBorn, func(d *decision) bool { return d.n.Prey == d.p.Reproduction || d.mutated }, newPrey},
	{OutcomeBorn, func(d *decision) bool { return (d.n.Predators > 0 && d.n.Prey == 0) || d.mutated }, newHunter},
	{OutcomeStayDead, always, keep},
}

// Rules maps a cell and its neighbour counts to the cell's next state.
type Rules struct {
	p Params
}

// NewRules binds the transition chains to a parameter set.
func NewRules(p Params) Rules { return Rules{p: p} }

// Next returns the next state of c.
func (r Rules) Next(c Cell, n Counts, dice Dice) Cell {
	next, _ := r.Decide(c, n, dice)
	return next
}

// Decide returns the next state of c together with the rule that chose it.
func (r Rules) Decide(c Cell, n Counts, dice Dice) (Cell, Outcome) {
	d := decision{p: &r.p, cell: c, n: n, dice: dice}
	chain := deadRules
	switch {
	case !c.Alive():
		d.mutated = dice.Chance(r.p.Mutation)
	case c.Species == Predator:
		chain = predatorRules
	default:
		chain = preyRules
	}
	for i := range chain {
		if chain[i].when(&d) {
			return chain[i].then(&d), chain[i].outcome
		}
	}
	return c, OutcomeStasis
}
