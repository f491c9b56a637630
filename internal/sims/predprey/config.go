package predprey

import (
	"errors"
	"fmt"
	"strconv"
)

// Params holds the seeding, neighbourhood and transition thresholds.
type Params struct {
	Population     int     `yaml:"population"`
	Radius         int     `yaml:"radius"`
	ClusterSize    int     `yaml:"cluster_size"`
	ClusterDensity float64 `yaml:"cluster_density"`
	PredatorRate   float64 `yaml:"predator_rate"`

	Reproduction    int     `yaml:"reproduction"`
	Overpopulation  int     `yaml:"overpopulation"`
	Underpopulation int     `yaml:"underpopulation"`
	Survivability   int     `yaml:"survivability"`
	MaxAge          int     `yaml:"age"`
	Mutation        float64 `yaml:"mutation"`
	Resistance      int     `yaml:"resistance"`
	AgingRate       int     `yaml:"aging_rate"`

	PredationSurvival   float64 `yaml:"predation_survival"`
	PreyBirthChance     float64 `yaml:"prey_birth_chance"`
	StarvationChance    float64 `yaml:"starvation_chance"`
	PredatorBirthChance float64 `yaml:"predator_birth_chance"`
}

// Config controls the predator-prey world.
type Config struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`

	// Workers splits each tick into row bands evaluated concurrently. Values
	// of one or less step sequentially from a single random stream.
	Workers int `yaml:"workers"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:   470,
		Height:  110,
		Seed:    1337,
		Workers: 1,
		Params:  DefaultParams(),
	}
}

// DefaultParams returns the standard thresholds and probabilities.
func DefaultParams() Params {
	return Params{
		Population:     2000,
		Radius:         5,
		ClusterSize:    50,
		ClusterDensity: 0.7,
		PredatorRate:   0.01,

		Reproduction:    3,
		Overpopulation:  4,
		Underpopulation: 1,
		Survivability:   2,
		MaxAge:          100,
		Mutation:        0.01,
		Resistance:      2,
		AgingRate:       1,

		PredationSurvival:   0.01,
		PreyBirthChance:     0.1,
		StarvationChance:    0.5,
		PredatorBirthChance: 0.1,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values leave the default in place.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	p := &c.Params
	intAtLeast(cfg, "w", 1, &c.Width)
	intAtLeast(cfg, "h", 1, &c.Height)
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	intAtLeast(cfg, "workers", 1, &c.Workers)

	intAtLeast(cfg, "population", 0, &p.Population)
	intAtLeast(cfg, "radius", 0, &p.Radius)
	intAtLeast(cfg, "cluster_size", 0, &p.ClusterSize)
	probability(cfg, "cluster_density", &p.ClusterDensity)
	probability(cfg, "predator_rate", &p.PredatorRate)

	intAtLeast(cfg, "reproduction", 0, &p.Reproduction)
	intAtLeast(cfg, "overpopulation", 0, &p.Overpopulation)
	intAtLeast(cfg, "underpopulation", 0, &p.Underpopulation)
	intAtLeast(cfg, "survivability", 0, &p.Survivability)
	intAtLeast(cfg, "age", 1, &p.MaxAge)
	probability(cfg, "mutation", &p.Mutation)
	intAtLeast(cfg, "resistance", 0, &p.Resistance)
	intAtLeast(cfg, "aging_rate", 0, &p.AgingRate)

	probability(cfg, "predation_survival", &p.PredationSurvival)
	probability(cfg, "prey_birth_chance", &p.PreyBirthChance)
	probability(cfg, "starvation_chance", &p.StarvationChance)
	probability(cfg, "predator_birth_chance", &p.PredatorBirthChance)
	return c
}

func intAtLeast(cfg map[string]string, key string, lo int, dst *int) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	if parsed, err := strconv.Atoi(v); err == nil && parsed >= lo {
		*dst = parsed
	}
}

func probability(cfg map[string]string, key string, dst *float64) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
		*dst = parsed
	}
}

// Validate reports every structurally impossible setting.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("grid size %dx%d must be positive", c.Width, c.Height))
	}
	p := c.Params
	for _, f := range []struct {
		name string
		v    int
	}{
		{"population", p.Population},
		{"radius", p.Radius},
		{"cluster_size", p.ClusterSize},
		{"reproduction", p.Reproduction},
		{"overpopulation", p.Overpopulation},
		{"underpopulation", p.Underpopulation},
		{"survivability", p.Survivability},
		{"resistance", p.Resistance},
		{"aging_rate", p.AgingRate},
	} {
		if f.v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %d", f.name, f.v))
		}
	}
	if p.MaxAge < 1 {
		errs = append(errs, fmt.Errorf("age must be at least 1, got %d", p.MaxAge))
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"cluster_density", p.ClusterDensity},
		{"predator_rate", p.PredatorRate},
		{"mutation", p.Mutation},
		{"predation_survival", p.PredationSurvival},
		{"prey_birth_chance", p.PreyBirthChance},
		{"starvation_chance", p.StarvationChance},
		{"predator_birth_chance", p.PredatorBirthChance},
	} {
		if !(f.v >= 0 && f.v <= 1) {
			errs = append(errs, fmt.Errorf("%s must be within [0,1], got %g", f.name, f.v))
		}
	}
	return errors.Join(errs...)
}
