// Package game implements the slime mold simulation engine.
package game

import (
	"errors"
	"log/slog"
	"math/rand"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/slimemold/components"
	"github.com/pthm-cable/slimemold/config"
	"github.com/pthm-cable/slimemold/systems"
	"github.com/pthm-cable/slimemold/telemetry"
)

// ErrNoFood is returned by the force grid export when no food was registered.
var ErrNoFood = systems.ErrNoFood

// MaxStepsPerUpdate bounds the speed-up available to interactive drivers.
const MaxStepsPerUpdate = 10

// Options configures game initialization.
type Options struct {
	Seed      int64          // RNG seed for spawn seeds (0 = use time-based seed)
	Config    *config.Config // Configuration (nil = config.Cfg())
	Logger    *slog.Logger   // Engine logger (nil = slog.Default())
	LogStats  bool           // Log window stats through slog
	OutputDir string         // Directory for CSV output (empty = disabled)

	StepsPerUpdate int // Simulation ticks per Update call (0 = 1)
}

// Game holds the complete simulation state.
type Game struct {
	cfg    *config.Config
	logger *slog.Logger

	world *ecs.World
	rng   *rand.Rand
	seed  int64

	nucleusMapper *ecs.Map6[
		components.Position,
		components.Acceleration,
		components.Nucleus,
		components.Noise,
		components.Trail,
		components.Nearest,
	]

	// Nuclei in spawn order. Never shrinks.
	nuclei []ecs.Entity

	// Engine-owned records
	foods     []components.Food
	obstacles []components.NonAttractor

	// Systems
	noise    systems.NoiseSource
	movement *systems.MovementSystem
	trails   *systems.TrailSystem

	// State
	tick         int32
	trailCount   int
	spawnPending bool
	spawnPoint   components.Point
	nextID       uint32

	paused         bool
	stepsPerUpdate int

	// Telemetry
	pendingEvents []telemetry.Event // Not yet written to events.csv
	spawnEvents   []telemetry.Event // Not yet handed to SpawnEvents callers
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool
	statsCallback func(telemetry.WindowStats)
}

// NewGame creates a simulation using the global configuration.
func NewGame() *Game {
	g, err := NewGameWithOptions(Options{})
	if err != nil {
		panic(err)
	}
	return g
}

// NewGameWithOptions creates a new simulation with the specified options.
// No nuclei exist until the first Step.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	stepsPerUpdate := opts.StepsPerUpdate
	if stepsPerUpdate < 1 {
		stepsPerUpdate = 1
	}

	world := ecs.NewWorld()

	g := &Game{
		cfg:    cfg,
		logger: logger,
		world:  world,
		rng:    rand.New(rand.NewSource(seed)),
		seed:   seed,
		nucleusMapper: ecs.NewMap6[
			components.Position,
			components.Acceleration,
			components.Nucleus,
			components.Noise,
			components.Trail,
			components.Nearest,
		](world),
		spawnPending: true,
		spawnPoint: components.Point{
			X: float64(cfg.Derived.WorldW) / 2,
			Y: float64(cfg.Derived.WorldH) / 2,
		},
		stepsPerUpdate: stepsPerUpdate,
		logStats:       opts.LogStats,
		collector:      telemetry.NewCollector(cfg.Telemetry.StatsWindow),
		perfCollector:  telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
	}

	g.noise = systems.NewNoiseSource(cfg.Noise.Mode, cfg.Noise.Step)
	g.movement = systems.NewMovementSystem(world, g.noise, cfg.Colony.Speed)
	g.trails = systems.NewTrailSystem(world)

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			return nil, err
		}
		if err := om.WriteConfig(cfg); err != nil {
			om.Close()
			return nil, err
		}
		g.outputManager = om
	}

	logger.Debug("game created",
		"seed", seed,
		"world_w", cfg.Derived.WorldW,
		"world_h", cfg.Derived.WorldH,
		"num_nuclei", cfg.Colony.NumNuclei,
		"noise", cfg.Noise.Mode,
	)

	return g, nil
}

// SetStatsCallback registers a function called with every flushed window.
func (g *Game) SetStatsCallback(fn func(telemetry.WindowStats)) {
	g.statsCallback = fn
}

// Config returns the configuration the game runs with.
func (g *Game) Config() *config.Config {
	return g.cfg
}

// Seed returns the RNG seed in use.
func (g *Game) Seed() int64 {
	return g.seed
}

// Tick returns the number of completed steps.
func (g *Game) Tick() int32 {
	return g.tick
}

// Width returns the domain width.
func (g *Game) Width() int {
	return g.cfg.Derived.WorldW
}

// Height returns the domain height.
func (g *Game) Height() int {
	return g.cfg.Derived.WorldH
}

// SpawnPoint returns where the next batch will appear.
func (g *Game) SpawnPoint() components.Point {
	return g.spawnPoint
}

// SpawnPending reports whether a batch will be created on the next step.
func (g *Game) SpawnPending() bool {
	return g.spawnPending
}

// PerfStats returns the rolling step timings.
func (g *Game) PerfStats() telemetry.PerfStats {
	return g.perfCollector.Stats()
}

// Paused reports whether Update is currently a no-op.
func (g *Game) Paused() bool {
	return g.paused
}

// SetPaused pauses or resumes Update.
func (g *Game) SetPaused(paused bool) {
	g.paused = paused
}

// TogglePause flips the paused state.
func (g *Game) TogglePause() {
	g.paused = !g.paused
}

// StepsPerUpdate returns how many steps each Update call runs.
func (g *Game) StepsPerUpdate() int {
	return g.stepsPerUpdate
}

// SetStepsPerUpdate sets the steps run per Update, clamped to
// [1, MaxStepsPerUpdate].
func (g *Game) SetStepsPerUpdate(n int) {
	if n < 1 {
		n = 1
	}
	if n > MaxStepsPerUpdate {
		n = MaxStepsPerUpdate
	}
	g.stepsPerUpdate = n
}

// Batches returns the number of spawn batches created so far.
func (g *Game) Batches() int {
	return len(g.nuclei) / g.cfg.Colony.NumNuclei
}

// Update runs StepsPerUpdate simulation steps unless paused.
func (g *Game) Update() {
	if g.paused {
		return
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.Step()
	}
	g.perfCollector.RecordFrame()
}

// Unload releases output resources.
func (g *Game) Unload() error {
	var errs []error
	if err := g.WriteResults(); err != nil {
		errs = append(errs, err)
	}
	if err := g.outputManager.Close(); err != nil {
		errs = append(errs, err)
	}
	g.outputManager = nil
	return errors.Join(errs...)
}
