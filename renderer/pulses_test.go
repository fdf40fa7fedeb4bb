package renderer

import (
	"math"
	"testing"

	"github.com/pthm-cable/slimemold/telemetry"
)

func TestPulseEmitOnlySpawns(t *testing.T) {
	s := NewPulseSystem(10, 40)
	s.Emit([]telemetry.Event{
		telemetry.NewSpawnEvent(0, 400, 400, 50),
		telemetry.NewReachEvent(3, 7, 1, 255, 592),
		telemetry.NewSaturationEvent(9, 1, 255, 592, 6),
		telemetry.NewSpawnEvent(10, 255, 592, 50),
	})

	if len(s.Pulses) != 2 {
		t.Fatalf("got %d pulses, want 2", len(s.Pulses))
	}
	if s.Pulses[1].X != 255 || s.Pulses[1].Y != 592 || s.Pulses[1].Batch != 50 {
		t.Errorf("second pulse = %+v", s.Pulses[1])
	}
}

func TestPulseLifecycle(t *testing.T) {
	s := NewPulseSystem(4, 40)
	s.Emit([]telemetry.Event{telemetry.NewSpawnEvent(0, 10, 20, 5)})

	if got := s.Radius(s.Pulses[0]); got != 0 {
		t.Errorf("initial radius = %v, want 0", got)
	}

	s.Update()
	if got := s.Radius(s.Pulses[0]); math.Abs(float64(got-10)) > 1e-4 {
		t.Errorf("radius after one frame = %v, want 10", got)
	}

	for i := 0; i < 3; i++ {
		s.Update()
	}
	if len(s.Pulses) != 0 {
		t.Errorf("expired pulses remain: %+v", s.Pulses)
	}
}

func TestPulseProgressZeroLife(t *testing.T) {
	p := Pulse{}
	if p.Progress() != 1 {
		t.Errorf("Progress() = %v, want 1", p.Progress())
	}
}
