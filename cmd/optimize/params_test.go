package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/slimemold/config"
	"github.com/pthm-cable/slimemold/telemetry"
)

func TestDefaultsMatchEmbeddedConfig(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	pv := NewParamVector()
	got := pv.ExtractFromConfig(cfg)
	want := pv.DefaultVector()
	for i, spec := range pv.Specs {
		if got[i] != want[i] {
			t.Errorf("%s: config=%g default=%g", spec.Path, got[i], want[i])
		}
	}
}

func TestNormalizeRoundtrip(t *testing.T) {
	pv := NewParamVector()
	raw := pv.DefaultVector()
	back := pv.Denormalize(pv.Normalize(raw))
	for i := range raw {
		if math.Abs(back[i]-raw[i]) > 1e-9 {
			t.Errorf("%s: roundtrip %g, want %g", pv.Specs[i].Name, back[i], raw[i])
		}
	}
}

func TestApplyClampsAndRounds(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	pv := NewParamVector()
	pv.ApplyToConfig(cfg, []float64{500, 12.6, -3, 10, 0.5, 15})

	if cfg.Forces.ForceConstant != 50 {
		t.Errorf("ForceConstant = %g, want 50", cfg.Forces.ForceConstant)
	}
	if cfg.Colony.NumNuclei != 13 {
		t.Errorf("NumNuclei = %d, want 13", cfg.Colony.NumNuclei)
	}
	if cfg.Colony.NumCellsToReachOats != 1 {
		t.Errorf("NumCellsToReachOats = %d, want 1", cfg.Colony.NumCellsToReachOats)
	}
}

func TestComputeQuality(t *testing.T) {
	tests := []struct {
		name    string
		windows []telemetry.WindowStats
		want    float64
	}{
		{"empty", nil, 0},
		{"no live food skipped", []telemetry.WindowStats{{Nuclei: 5, LiveFood: 0, FoodDistP50: 0}}, 0},
		{"on food", []telemetry.WindowStats{{Nuclei: 5, LiveFood: 2, FoodDistP50: 0}}, 1},
		{"half scale", []telemetry.WindowStats{{Nuclei: 5, LiveFood: 2, FoodDistP50: qualityDistScale}}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := computeQuality(tt.windows); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("computeQuality = %g, want %g", got, tt.want)
			}
		})
	}
}

func TestComputeFitnessPrefersEarlierFinish(t *testing.T) {
	fe := &FitnessEvaluator{maxTicks: 1000}

	early := fe.computeFitness(&runResult{eaten: 3, lastEatTick: 100})
	late := fe.computeFitness(&runResult{eaten: 3, lastEatTick: 900})
	more := fe.computeFitness(&runResult{eaten: 4, lastEatTick: 999})

	if early >= late {
		t.Errorf("early finish %g should beat late finish %g", early, late)
	}
	if more >= early {
		t.Errorf("eating more %g should beat eating fewer %g", more, early)
	}
	if got := fe.computeFitness(&runResult{}); got != 0 {
		t.Errorf("nothing eaten fitness = %g, want 0", got)
	}
}
