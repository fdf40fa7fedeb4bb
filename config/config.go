// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// NonAttractorRadius is the influence radius shared by every non-attractor.
// Not configurable per obstacle.
const NonAttractorRadius = 30.0

// Noise modes.
const (
	NoiseConstant = "constant"
	NoisePerlin   = "perlin"
)

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	World     WorldConfig     `yaml:"world"`
	Colony    ColonyConfig    `yaml:"colony"`
	Forces    ForcesConfig    `yaml:"forces"`
	Food      FoodConfig      `yaml:"food"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
	Trail     TrailConfig     `yaml:"trail"`
	Noise     NoiseConfig     `yaml:"noise"`
	Grid      GridConfig      `yaml:"grid"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds simulation domain dimensions.
type WorldConfig struct {
	Width  int `yaml:"width"`  // Domain width in distance units (0 = use screen width)
	Height int `yaml:"height"` // Domain height in distance units (0 = use screen height)
}

// ColonyConfig holds nucleus spawning and consumption parameters.
type ColonyConfig struct {
	NumNuclei           int     `yaml:"num_nuclei"`              // Nuclei per spawn batch
	NumCellsToReachOats int     `yaml:"num_cells_to_reach_oats"` // Strict-greater saturation threshold
	SpawnSeedRange      int     `yaml:"spawn_seed_range"`        // Seeds drawn from [0, range)
	ReachDistance       float64 `yaml:"reach_distance"`          // Consumption radius
	Speed               float64 `yaml:"speed"`                   // Displacement per tick
}

// ForcesConfig holds attraction parameters.
type ForcesConfig struct {
	ForceConstant float64 `yaml:"force_constant"`
	// RepulsionConstant is accepted for compatibility but per-obstacle strength
	// governs repulsion.
	RepulsionConstant float64 `yaml:"repulsion_constant"`
}

// FoodConfig holds the initial food layout as [x, y] pairs.
type FoodConfig struct {
	Positions [][]float64 `yaml:"positions"`
}

// ObstaclesConfig holds the non-attractor layout as [x, y] or [x, y, strength].
type ObstaclesConfig struct {
	DefaultStrength float64     `yaml:"default_strength"`
	Positions       [][]float64 `yaml:"positions"`
}

// TrailConfig holds trail sampling parameters.
type TrailConfig struct {
	Interval int `yaml:"interval"` // Ticks between trail samples
}

// NoiseConfig selects the per-nucleus noise model.
type NoiseConfig struct {
	Mode string  `yaml:"mode"` // constant | perlin
	Step float64 `yaml:"step"` // Perlin sample advance per move
}

// GridConfig holds force grid export parameters.
type GridConfig struct {
	Stride int `yaml:"stride"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         int `yaml:"stats_window"`          // Ticks per stats window
	PerfCollectorWindow int `yaml:"perf_collector_window"` // Ticks averaged by the perf collector
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	WorldW int // Effective domain width
	WorldH int // Effective domain height
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
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
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.ComputeDerived()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ComputeDerived calculates values derived from loaded config.
// Call again after mutating World or Screen.
func (c *Config) ComputeDerived() {
	c.Derived.WorldW = c.World.Width
	if c.Derived.WorldW == 0 {
		c.Derived.WorldW = c.Screen.Width
	}
	c.Derived.WorldH = c.World.Height
	if c.Derived.WorldH == 0 {
		c.Derived.WorldH = c.Screen.Height
	}
}

// Validate reports every invalid parameter.
func (c *Config) Validate() error {
	var errs []error
	if c.Derived.WorldW <= 0 || c.Derived.WorldH <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %dx%d", c.Derived.WorldW, c.Derived.WorldH))
	}
	if c.Colony.NumNuclei <= 0 {
		errs = append(errs, fmt.Errorf("colony.num_nuclei must be positive, got %d", c.Colony.NumNuclei))
	}
	if c.Colony.NumCellsToReachOats <= 0 {
		errs = append(errs, fmt.Errorf("colony.num_cells_to_reach_oats must be positive, got %d", c.Colony.NumCellsToReachOats))
	}
	if c.Colony.SpawnSeedRange <= 0 {
		errs = append(errs, fmt.Errorf("colony.spawn_seed_range must be positive, got %d", c.Colony.SpawnSeedRange))
	}
	if !(c.Colony.ReachDistance > 0) {
		errs = append(errs, fmt.Errorf("colony.reach_distance must be positive, got %g", c.Colony.ReachDistance))
	}
	if !(c.Colony.Speed >= 0) {
		errs = append(errs, fmt.Errorf("colony.speed must not be negative, got %g", c.Colony.Speed))
	}
	if !(c.Obstacles.DefaultStrength > 0) {
		errs = append(errs, fmt.Errorf("obstacles.default_strength must be positive, got %g", c.Obstacles.DefaultStrength))
	}
	if c.Forces.ForceConstant <= 0 {
		errs = append(errs, fmt.Errorf("forces.force_constant must be positive, got %g", c.Forces.ForceConstant))
	}
	if c.Trail.Interval <= 0 {
		errs = append(errs, fmt.Errorf("trail.interval must be positive, got %d", c.Trail.Interval))
	}
	if c.Grid.Stride <= 0 {
		errs = append(errs, fmt.Errorf("grid.stride must be positive, got %d", c.Grid.Stride))
	}
	switch c.Noise.Mode {
	case NoiseConstant, NoisePerlin:
	default:
		errs = append(errs, fmt.Errorf("noise.mode must be %q or %q, got %q", NoiseConstant, NoisePerlin, c.Noise.Mode))
	}
	for i, p := range c.Food.Positions {
		if len(p) != 2 {
			errs = append(errs, fmt.Errorf("food.positions[%d]: want [x, y], got %v", i, p))
		}
	}
	for i, p := range c.Obstacles.Positions {
		switch {
		case len(p) != 2 && len(p) != 3:
			errs = append(errs, fmt.Errorf("obstacles.positions[%d]: want [x, y] or [x, y, strength], got %v", i, p))
		case len(p) == 3 && !(p[2] > 0):
			errs = append(errs, fmt.Errorf("obstacles.positions[%d]: strength must be positive, got %g", i, p[2]))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
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
