package ui

import (
	"testing"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/slimemold/telemetry"
)

func TestOverlayToggle(t *testing.T) {
	reg := NewOverlayRegistry()

	if reg.IsEnabled(OverlayTrails) {
		t.Fatal("overlays should start disabled")
	}
	if !reg.Toggle(OverlayTrails) {
		t.Error("toggle should enable trails")
	}
	if reg.Toggle(OverlayTrails) {
		t.Error("second toggle should disable trails")
	}
	if reg.Toggle("unknown") {
		t.Error("unknown overlay should not toggle")
	}
}

func TestOverlayExclusive(t *testing.T) {
	reg := NewOverlayRegistry()

	reg.SetEnabled(OverlayDensity, true)
	reg.Toggle(OverlayForceField)

	if reg.IsEnabled(OverlayDensity) {
		t.Error("enabling force field should disable density")
	}
	if !reg.IsEnabled(OverlayForceField) {
		t.Error("force field should be enabled")
	}

	reg.SetEnabled(OverlayDensity, true)
	if reg.IsEnabled(OverlayForceField) {
		t.Error("enabling density should disable force field")
	}
}

func TestOverlayHandleKeyPress(t *testing.T) {
	reg := NewOverlayRegistry()

	id, state, ok := reg.HandleKeyPress(rl.KeyO)
	if !ok || id != OverlayObstacleRing || !state {
		t.Errorf("HandleKeyPress(O) = (%q, %v, %v), want (%q, true, true)", id, state, ok, OverlayObstacleRing)
	}

	if _, _, ok := reg.HandleKeyPress(rl.KeyZ); ok {
		t.Error("unbound key should not toggle anything")
	}
}

func TestOverlayCategories(t *testing.T) {
	reg := NewOverlayRegistry()

	want := []string{"colony", "field", "debug"}
	got := reg.Categories()
	if len(got) != len(want) {
		t.Fatalf("categories = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("categories[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	total := 0
	for _, cat := range got {
		total += len(reg.ByCategory(cat))
	}
	if total != len(reg.All()) {
		t.Errorf("categories cover %d overlays, registry has %d", total, len(reg.All()))
	}
}

func TestEnabledOverlaysOrder(t *testing.T) {
	reg := NewOverlayRegistry()
	reg.SetEnabled(OverlayPerf, true)
	reg.SetEnabled(OverlayTrails, true)

	got := reg.EnabledOverlays()
	if len(got) != 2 || got[0] != OverlayTrails || got[1] != OverlayPerf {
		t.Errorf("EnabledOverlays() = %v, want registration order [trails perf]", got)
	}
}

func TestHUDLines(t *testing.T) {
	data := HUDData{Nuclei: 20, Batches: 2, LiveFood: 11, TotalFood: 12, Tick: 40, Speed: 1, FPS: 20}

	lines := data.Lines()
	if lines[0] != "Nuclei: 20 | Batches: 2 | Food: 11/12" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "Tick: 40 | Speed: 1x | FPS: 20" {
		t.Errorf("line 1 = %q", lines[1])
	}

	data.Obstacles = 3
	if got := data.Lines()[0]; got != "Nuclei: 20 | Batches: 2 | Food: 11/12 | Obstacles: 3" {
		t.Errorf("line 0 with obstacles = %q", got)
	}
}

func TestPerfRows(t *testing.T) {
	stats := telemetry.PerfStats{
		PhaseAvg: map[string]time.Duration{
			telemetry.PhaseForces:   300 * time.Microsecond,
			telemetry.PhaseMovement: 100 * time.Microsecond,
			telemetry.PhaseSpawn:    100 * time.Microsecond,
		},
		PhasePct: map[string]float64{
			telemetry.PhaseForces: 60,
		},
	}

	rows := PerfRows(stats)
	want := []string{telemetry.PhaseForces, telemetry.PhaseMovement, telemetry.PhaseSpawn}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i, phase := range want {
		if rows[i].Phase != phase {
			t.Errorf("rows[%d] = %q, want %q", i, rows[i].Phase, phase)
		}
	}
	if rows[0].Pct != 60 {
		t.Errorf("forces pct = %v, want 60", rows[0].Pct)
	}
}

func TestBarRatio(t *testing.T) {
	tests := []struct {
		current, limit int
		want           float32
	}{
		{0, 10, 0},
		{5, 10, 0.5},
		{11, 10, 1},
		{3, 0, 1},
	}
	for _, tt := range tests {
		if got := barRatio(tt.current, tt.limit); got != tt.want {
			t.Errorf("barRatio(%d, %d) = %v, want %v", tt.current, tt.limit, got, tt.want)
		}
	}
}
