package telemetry

import (
	"log/slog"
	"math"
	"testing"
)

func TestQuantile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"empty slice", []float64{}, 0.5, 0},
		{"single element", []float64{5.0}, 0.5, 5.0},
		{"p0", []float64{1, 2, 3, 4, 5}, 0.0, 1.0},
		{"p100", []float64{1, 2, 3, 4, 5}, 1.0, 5.0},
		{"p50 odd", []float64{1, 2, 3, 4, 5}, 0.5, 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Quantile(tt.sorted, tt.p)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Quantile(%v, %v) = %v, want %v", tt.sorted, tt.p, got, tt.want)
			}
		})
	}
}

func TestComputeDistanceStats(t *testing.T) {
	// Unsorted on purpose; the input must not be reordered.
	values := []float64{5, 1, 4, 2, 3}
	mean, std, p50, maxDist := ComputeDistanceStats(values)

	if math.Abs(mean-3) > 1e-9 {
		t.Errorf("mean = %v, want 3", mean)
	}
	if math.Abs(std-math.Sqrt2) > 1e-9 {
		t.Errorf("std = %v, want sqrt(2)", std)
	}
	if p50 != 3 {
		t.Errorf("p50 = %v, want 3", p50)
	}
	if maxDist != 5 {
		t.Errorf("max = %v, want 5", maxDist)
	}
	if values[0] != 5 || values[1] != 1 {
		t.Errorf("input was modified: %v", values)
	}
}

func TestComputeDistanceStatsEmpty(t *testing.T) {
	mean, std, p50, maxDist := ComputeDistanceStats(nil)

	if mean != 0 || std != 0 || p50 != 0 || maxDist != 0 {
		t.Error("empty slice should return all zeros")
	}
}

func TestWindowStatsLogValue(t *testing.T) {
	s := WindowStats{WindowStartTick: 0, WindowEndTick: 100, Nuclei: 50, Reaches: 7}
	v := s.LogValue()

	if v.Kind() != slog.KindGroup {
		t.Fatalf("kind = %v, want group", v.Kind())
	}

	found := map[string]bool{}
	for _, a := range v.Group() {
		found[a.Key] = true
		if a.Key == "reaches" && a.Value.Int64() != 7 {
			t.Errorf("reaches = %v, want 7", a.Value)
		}
	}
	for _, key := range []string{"window_end", "nuclei", "live_food", "food_dist_mean"} {
		if !found[key] {
			t.Errorf("missing %q in log group", key)
		}
	}
}
