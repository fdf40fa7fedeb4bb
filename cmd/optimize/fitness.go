package main

import (
	"io"
	"log/slog"
	"math"
	"sync"

	"github.com/pthm-cable/slimemold/config"
	"github.com/pthm-cable/slimemold/game"
	"github.com/pthm-cable/slimemold/telemetry"
)

// FitnessEvaluator runs headless simulations and computes fitness.
type FitnessEvaluator struct {
	params     *ParamVector
	maxTicks   int32
	seeds      []int64
	baseConfig *config.Config
	obstacles  bool

	mu          sync.Mutex
	lastEaten   float64 // mean food consumed in the most recent Evaluate call
	lastQuality float64 // quality from most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int32, seeds []int64, baseCfg *config.Config, obstacles bool) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		maxTicks:   maxTicks,
		seeds:      seeds,
		baseConfig: baseCfg,
		obstacles:  obstacles,
	}
}

// LastEaten returns the mean number of foods consumed in the most recent
// evaluation.
func (fe *FitnessEvaluator) LastEaten() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastEaten
}

// LastQuality returns the quality score from the most recent evaluation.
func (fe *FitnessEvaluator) LastQuality() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastQuality
}

// runResult holds the results from a single simulation run.
type runResult struct {
	eaten       int                     // foods saturated and consumed
	lastEatTick int32                   // tick of the final consumption (0 if none)
	windowStats []telemetry.WindowStats // collected via the stats callback
}

// seedResult holds the result from one seed evaluation.
type seedResult struct {
	fitness float64
	eaten   int
	quality float64
}

// Evaluate computes fitness for a parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	results := make([]seedResult, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			result, err := fe.runSimulation(x, s)
			if err != nil {
				slog.Error("run failed", "seed", s, "error", err)
				results[idx] = seedResult{fitness: 0}
				return
			}
			results[idx] = seedResult{
				fitness: fe.computeFitness(result),
				eaten:   result.eaten,
				quality: computeQuality(result.windowStats),
			}
		}(i, seed)
	}
	wg.Wait()

	var totalFitness, totalQuality, totalEaten float64
	for _, r := range results {
		totalFitness += r.fitness
		totalQuality += r.quality
		totalEaten += float64(r.eaten)
	}

	n := float64(len(fe.seeds))
	fe.mu.Lock()
	fe.lastEaten = totalEaten / n
	fe.lastQuality = totalQuality / n
	fe.mu.Unlock()

	return totalFitness / n
}

// runSimulation executes a single headless simulation run.
// Runs until every food is consumed or maxTicks, whichever comes first.
func (fe *FitnessEvaluator) runSimulation(x []float64, seed int64) (*runResult, error) {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)
	cfg.ComputeDerived()

	result := &runResult{}

	g, err := game.NewGameWithOptions(game.Options{
		Seed:   seed,
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		return nil, err
	}
	g.SetStatsCallback(func(stats telemetry.WindowStats) {
		result.windowStats = append(result.windowStats, stats)
	})

	g.AddConfiguredFood()
	if fe.obstacles {
		if err := g.AddConfiguredObstacles(); err != nil {
			return nil, err
		}
	}

	total := len(g.Foods())
	live := total
	for g.Tick() < fe.maxTicks && live > 0 {
		g.Step()
		if now := g.LiveFoodCount(); now < live {
			live = now
			result.lastEatTick = g.Tick()
		}
	}
	result.eaten = total - live

	return result, g.Unload()
}

// copyConfig creates a copy of the base config. Slices are shared; nothing
// downstream mutates them.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}

// computeFitness calculates the scalar fitness (lower = better).
// Formula: -((eaten + pace) × (1.0 + 0.2 × quality))
// where pace ∈ [0, 1) rewards finishing the last meal early. Consumption
// dominates; quality separates configs that eat equally well.
func (fe *FitnessEvaluator) computeFitness(r *runResult) float64 {
	pace := 0.0
	if r.eaten > 0 {
		pace = 1 - float64(r.lastEatTick)/float64(fe.maxTicks)
	}
	quality := computeQuality(r.windowStats)
	return -((float64(r.eaten) + pace) * (1.0 + 0.2*quality))
}

// qualityDistScale is the median food distance at which quality halves
// relative to a colony sitting on its food.
const qualityDistScale = 100.0

// computeQuality scores how closely the colony tracks live food, in [0, 1].
// Windows with no live food or no nuclei are skipped.
func computeQuality(windows []telemetry.WindowStats) float64 {
	var sum float64
	var count int
	for _, w := range windows {
		if w.LiveFood == 0 || w.Nuclei == 0 {
			continue
		}
		sum += math.Exp(-w.FoodDistP50 * math.Ln2 / qualityDistScale)
		count++
	}
	if count == 0 {
		return 0
	}
	return clamp01(sum / float64(count))
}

// clamp01 clamps x to [0, 1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
