package game

import (
	"errors"
	"fmt"

	"github.com/pthm-cable/slimemold/components"
	"github.com/pthm-cable/slimemold/telemetry"
)

// NonAttractorSpec describes an obstacle to add. When HasStrength is false
// the configured default strength applies.
type NonAttractorSpec struct {
	X, Y        float64
	Strength    float64
	HasStrength bool
}

// ErrBadStrength reports a repulsion strength that is not a positive number.
var ErrBadStrength = errors.New("non-attractor strength must be positive")

// ParseNonAttractor converts an (x, y) or (x, y, strength) tuple.
func ParseNonAttractor(values []float64) (NonAttractorSpec, error) {
	switch len(values) {
	case 2:
		return NonAttractorSpec{X: values[0], Y: values[1]}, nil
	case 3:
		if !(values[2] > 0) {
			return NonAttractorSpec{}, fmt.Errorf("%w, got %g", ErrBadStrength, values[2])
		}
		return NonAttractorSpec{X: values[0], Y: values[1], Strength: values[2], HasStrength: true}, nil
	default:
		return NonAttractorSpec{}, fmt.Errorf("non-attractor needs 2 or 3 values, got %d", len(values))
	}
}

// AddFoodSources appends active food at the given points, in order.
func (g *Game) AddFoodSources(points []components.Point) {
	for _, p := range points {
		g.foods = append(g.foods, components.NewFood(p.X, p.Y))
	}
	g.logger.Debug("food added", "count", len(points), "total", len(g.foods))
}

// AddNonAttractors appends obstacles, in order. Nothing is added when any
// resolved strength is not positive.
func (g *Game) AddNonAttractors(specs []NonAttractorSpec) error {
	added := make([]components.NonAttractor, 0, len(specs))
	for i, s := range specs {
		strength := g.cfg.Obstacles.DefaultStrength
		if s.HasStrength {
			strength = s.Strength
		}
		if !(strength > 0) {
			return fmt.Errorf("obstacle %d: %w, got %g", i, ErrBadStrength, strength)
		}
		added = append(added, components.NewNonAttractor(s.X, s.Y, strength))
	}
	g.obstacles = append(g.obstacles, added...)
	g.logger.Debug("obstacles added", "count", len(specs), "total", len(g.obstacles))
	return nil
}

// AddConfiguredFood registers the food layout from the configuration.
func (g *Game) AddConfiguredFood() {
	points := make([]components.Point, len(g.cfg.Food.Positions))
	for i, p := range g.cfg.Food.Positions {
		points[i] = components.Point{X: p[0], Y: p[1]}
	}
	g.AddFoodSources(points)
}

// AddConfiguredObstacles registers the obstacle layout from the configuration.
func (g *Game) AddConfiguredObstacles() error {
	specs := make([]NonAttractorSpec, 0, len(g.cfg.Obstacles.Positions))
	for i, p := range g.cfg.Obstacles.Positions {
		s, err := ParseNonAttractor(p)
		if err != nil {
			return fmt.Errorf("obstacle %d: %w", i, err)
		}
		specs = append(specs, s)
	}
	return g.AddNonAttractors(specs)
}

// spawnBatch creates one batch of nuclei at the spawn point and clears the
// spawn flag.
func (g *Game) spawnBatch() {
	cfg := g.cfg
	at := g.spawnPoint

	for i := 0; i < cfg.Colony.NumNuclei; i++ {
		g.spawnNucleus(at, g.rng.Intn(cfg.Colony.SpawnSeedRange))
	}
	g.spawnPending = false

	ev := telemetry.NewSpawnEvent(g.tick, at.X, at.Y, cfg.Colony.NumNuclei)
	g.recordEvent(ev)
	g.logger.Debug("spawned batch",
		"tick", g.tick,
		"x", at.X,
		"y", at.Y,
		"batch", cfg.Colony.NumNuclei,
		"nuclei", len(g.nuclei),
	)
}

// spawnNucleus creates a nucleus at p with the given noise seed.
func (g *Game) spawnNucleus(p components.Point, seed int) {
	id := g.nextID
	g.nextID++

	pos := components.Position{X: p.X, Y: p.Y}
	// Fresh nuclei carry a one-off downward bias in the accumulator.
	acc := components.Acceleration{X: 0, Y: 1}
	nuc := components.Nucleus{ID: id, Seed: seed}
	var noise components.Noise
	g.noise.Init(nuc, &noise)
	trail := components.Trail{Points: []components.Point{p}}
	nearest := components.Nearest{Food: components.NoIndex, Obstacle: components.NoIndex}

	e := g.nucleusMapper.NewEntity(&pos, &acc, &nuc, &noise, &trail, &nearest)
	g.nuclei = append(g.nuclei, e)
}
