// Package config loads run configuration from embedded YAML defaults, an
// optional user file and command-line flags, in that order of precedence.
package config

import (
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"predprey/internal/sims/predprey"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Fallback grid size when the terminal size is unknown.
const (
	FallbackWidth  = 470
	FallbackHeight = 110
)

// Config holds everything a launcher needs for one run.
type Config struct {
	Sim         string          `yaml:"sim"`
	FPS         int             `yaml:"fps"`
	Info        bool            `yaml:"info"`
	Scale       int             `yaml:"scale"`
	Headless    bool            `yaml:"headless"`
	Generations int             `yaml:"generations"` // 0 = run until interrupted
	World       predprey.Config `yaml:"world"`
	Life        LifeConfig      `yaml:"life"`
	Telemetry   TelemetryConfig `yaml:"telemetry"`
	Log         LogConfig       `yaml:"log"`
}

// LifeConfig holds the settings of the plain Game of Life variant, kept
// apart from the predator-prey rules.
type LifeConfig struct {
	Radius  int     `yaml:"radius"`
	Density float64 `yaml:"density"`
}

// TelemetryConfig controls CSV output and summary logging.
type TelemetryConfig struct {
	OutputDir    string `yaml:"output_dir"`
	Window       int    `yaml:"window"`
	LogSummaries bool   `yaml:"log_summaries"`
}

// LogConfig selects where slog output goes.
type LogConfig struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only keys present in the file overwrite the defaults.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}
	return cfg, nil
}

// Parse builds the configuration for args. Flags given explicitly win over
// the -config file, which wins over the embedded defaults.
func Parse(name string, args []string) (*Config, error) {
	cfg, err := Load("")
	if err != nil {
		return nil, err
	}
	var path string
	if err := newFlagSet(name, cfg, &path).Parse(args); err != nil {
		return nil, err
	}
	if path == "" {
		return cfg, nil
	}
	if cfg, err = Load(path); err != nil {
		return nil, err
	}
	// Re-applying args sets exactly the flags the user passed.
	if err := newFlagSet(name, cfg, &path).Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newFlagSet(name string, c *Config, path *string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	w, p := &c.World, &c.World.Params

	fs.StringVar(path, "config", *path, "path to a YAML config file")
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&w.Width, "width", w.Width, "grid width (0 = terminal width)")
	fs.IntVar(&w.Height, "height", w.Height, "grid height (0 = terminal height)")
	fs.Int64Var(&w.Seed, "seed", w.Seed, "RNG seed (0 = time based)")
	fs.IntVar(&w.Workers, "workers", w.Workers, "row bands evaluated concurrently per tick")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier (GUI only)")
	fs.BoolVar(&c.Headless, "headless", c.Headless, "run without a display")
	fs.IntVar(&c.Generations, "generations", c.Generations, "stop after N generations (0 = unlimited)")
	fs.StringVar(&c.Telemetry.OutputDir, "output-dir", c.Telemetry.OutputDir, "directory for CSV telemetry and a config snapshot")
	fs.IntVar(&c.Telemetry.Window, "window", c.Telemetry.Window, "generations per telemetry summary")
	fs.BoolVar(&c.Telemetry.LogSummaries, "log-stats", c.Telemetry.LogSummaries, "log telemetry summaries via slog")
	fs.StringVar(&c.Log.Path, "log", c.Log.Path, "log file path (empty = stderr, discarded while the terminal UI runs)")
	fs.StringVar(&c.Log.Level, "log-level", c.Log.Level, "log level: debug, info, warn, error")
	fs.IntVar(&c.Life.Radius, "life-radius", c.Life.Radius, "neighbourhood radius of the life sim")
	fs.Float64Var(&c.Life.Density, "life-density", c.Life.Density, "initial alive share of the life sim")

	intFlag(fs, &p.Population, p.Population, "number of clusters seeded at start", "population", "p")
	intFlag(fs, &c.FPS, c.FPS, "frames per second", "fps", "f")
	intFlag(fs, &p.Radius, p.Radius, "radius checked to decide whether a cell lives on or is born", "radius", "r")
	intFlag(fs, &p.ClusterSize, p.ClusterSize, "cluster size", "size", "c")
	floatFlag(fs, &p.ClusterDensity, p.ClusterDensity, "cluster density", "density", "d")
	boolFlag(fs, &c.Info, c.Info, "show the info panel", "info", "i")
	intFlag(fs, &p.Reproduction, p.Reproduction, "prey neighbours needed for a birth", "reproduction", "x")
	intFlag(fs, &p.Overpopulation, p.Overpopulation, "neighbour count above which cells die", "overpopulation", "o")
	intFlag(fs, &p.Underpopulation, p.Underpopulation, "neighbour count below which cells die", "underpopulation", "u")
	intFlag(fs, &p.Survivability, p.Survivability, "prey neighbours needed to age on", "survivability", "s")
	intFlag(fs, &p.MaxAge, p.MaxAge, "maximum age", "age", "a")
	floatFlag(fs, &p.Mutation, p.Mutation, "chance a dead cell is reborn regardless of neighbours", "mutation", "m")
	intFlag(fs, &p.Resistance, p.Resistance, "predators needed to threaten a prey", "resistance", "t")
	intFlag(fs, &p.AgingRate, p.AgingRate, "extra ageing of a hungry predator", "aging", "g")
	floatFlag(fs, &p.PredatorRate, p.PredatorRate, "share of seeded cells that are predators", "predator-rate", "P")
	return fs
}

func intFlag(fs *flag.FlagSet, dst *int, def int, usage string, names ...string) {
	for _, n := range names {
		fs.IntVar(dst, n, def, usage)
	}
}

func floatFlag(fs *flag.FlagSet, dst *float64, def float64, usage string, names ...string) {
	for _, n := range names {
		fs.Float64Var(dst, n, def, usage)
	}
}

func boolFlag(fs *flag.FlagSet, dst *bool, def bool, usage string, names ...string) {
	for _, n := range names {
		fs.BoolVar(dst, n, def, usage)
	}
}

// ResolveSize fills a zero width or height from the terminal size, or from
// the fallback when the terminal size is unknown.
func (c *Config) ResolveSize(termW, termH int) {
	if c.World.Width <= 0 {
		c.World.Width = termW
		if termW <= 0 {
			c.World.Width = FallbackWidth
		}
	}
	if c.World.Height <= 0 {
		c.World.Height = termH
		if termH <= 0 {
			c.World.Height = FallbackHeight
		}
	}
}

// Validate checks run settings and the world configuration.
func (c *Config) Validate() error {
	var errs []error
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %d", c.FPS))
	}
	if c.Generations < 0 {
		errs = append(errs, fmt.Errorf("generations must not be negative, got %d", c.Generations))
	}
	if c.Telemetry.Window < 1 {
		errs = append(errs, fmt.Errorf("telemetry window must be at least 1, got %d", c.Telemetry.Window))
	}
	if c.Life.Radius < 0 {
		errs = append(errs, fmt.Errorf("life radius must not be negative, got %d", c.Life.Radius))
	}
	if !(c.Life.Density >= 0 && c.Life.Density <= 1) {
		errs = append(errs, fmt.Errorf("life density must be within [0,1], got %g", c.Life.Density))
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}
	if err := c.World.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// LogLevel parses the configured log level.
func (c *Config) LogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}

// SimOptions renders the world settings as the key/value map sim factories
// accept.
func (c *Config) SimOptions() map[string]string {
	w, p := c.World, c.World.Params
	itoa := strconv.Itoa
	ftoa := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	return map[string]string{
		"w":                     itoa(w.Width),
		"h":                     itoa(w.Height),
		"seed":                  strconv.FormatInt(w.Seed, 10),
		"workers":               itoa(w.Workers),
		"population":            itoa(p.Population),
		"radius":                itoa(p.Radius),
		"cluster_size":          itoa(p.ClusterSize),
		"cluster_density":       ftoa(p.ClusterDensity),
		"predator_rate":         ftoa(p.PredatorRate),
		"reproduction":          itoa(p.Reproduction),
		"overpopulation":        itoa(p.Overpopulation),
		"underpopulation":       itoa(p.Underpopulation),
		"survivability":         itoa(p.Survivability),
		"age":                   itoa(p.MaxAge),
		"mutation":              ftoa(p.Mutation),
		"resistance":            itoa(p.Resistance),
		"aging_rate":            itoa(p.AgingRate),
		"predation_survival":    ftoa(p.PredationSurvival),
		"prey_birth_chance":     ftoa(p.PreyBirthChance),
		"starvation_chance":     ftoa(p.StarvationChance),
		"predator_birth_chance": ftoa(p.PredatorBirthChance),
		"life_radius":           itoa(c.Life.Radius),
		"life_density":          ftoa(c.Life.Density),
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
