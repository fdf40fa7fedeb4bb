package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a window of ticks.
type WindowStats struct {
	WindowStartTick int32 `csv:"-"`
	WindowEndTick   int32 `csv:"window_end"`

	// Population at window end
	Nuclei      int `csv:"nuclei"`
	LiveFood    int `csv:"live_food"`
	TotalFood   int `csv:"total_food"`
	TrailPoints int `csv:"trail_points"`

	// Events during window
	Reaches     int `csv:"reaches"`
	Saturations int `csv:"saturations"`
	Spawned     int `csv:"spawned"`

	// Distance from each nucleus to its nearest live food (sampled at window end)
	FoodDistMean float64 `csv:"food_dist_mean"`
	FoodDistStd  float64 `csv:"food_dist_std"`
	FoodDistP50  float64 `csv:"food_dist_p50"`
	FoodDistMax  float64 `csv:"food_dist_max"`
}

// Quantile returns the p-th empirical quantile of a sorted slice.
// Returns 0 if the slice is empty.
func Quantile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// ComputeDistanceStats calculates mean, std, median and max of distances.
func ComputeDistanceStats(values []float64) (mean, std, p50, maxDist float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean, std = stat.PopMeanStdDev(sorted, nil)
	p50 = Quantile(sorted, 0.5)
	maxDist = floats.Max(sorted)

	return mean, std, p50, maxDist
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Int("nuclei", s.Nuclei),
		slog.Int("live_food", s.LiveFood),
		slog.Int("total_food", s.TotalFood),
		slog.Int("trail_points", s.TrailPoints),
		slog.Int("reaches", s.Reaches),
		slog.Int("saturations", s.Saturations),
		slog.Int("spawned", s.Spawned),
		slog.Float64("food_dist_mean", s.FoodDistMean),
		slog.Float64("food_dist_std", s.FoodDistStd),
		slog.Float64("food_dist_p50", s.FoodDistP50),
		slog.Float64("food_dist_max", s.FoodDistMax),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
