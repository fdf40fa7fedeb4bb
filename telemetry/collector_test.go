package telemetry

import "testing"

func TestCollectorFlush(t *testing.T) {
	c := NewCollector(10)

	if c.ShouldFlush(9) {
		t.Error("should not flush before the window ends")
	}
	if !c.ShouldFlush(10) {
		t.Error("should flush at the window end")
	}

	c.Record(NewReachEvent(1, 3, 0, 10, 10))
	c.Record(NewReachEvent(2, 4, 0, 10, 10))
	c.Record(NewSaturationEvent(2, 0, 10, 10, 6))
	c.Record(NewSpawnEvent(2, 10, 10, 50))

	stats := c.Flush(10, Population{
		Nuclei:    100,
		LiveFood:  11,
		TotalFood: 12,
		FoodDist:  []float64{2, 4},
	})

	if stats.WindowStartTick != 0 || stats.WindowEndTick != 10 {
		t.Errorf("window = [%d,%d], want [0,10]", stats.WindowStartTick, stats.WindowEndTick)
	}
	if stats.Reaches != 2 {
		t.Errorf("reaches = %d, want 2", stats.Reaches)
	}
	if stats.Saturations != 1 {
		t.Errorf("saturations = %d, want 1", stats.Saturations)
	}
	if stats.Spawned != 50 {
		t.Errorf("spawned = %d, want 50", stats.Spawned)
	}
	if stats.Nuclei != 100 || stats.LiveFood != 11 || stats.TotalFood != 12 {
		t.Errorf("population not copied: %+v", stats)
	}
	if stats.FoodDistMean != 3 {
		t.Errorf("food dist mean = %v, want 3", stats.FoodDistMean)
	}

	// Counters reset and the next window starts where this one ended.
	next := c.Flush(20, Population{})
	if next.Reaches != 0 || next.Saturations != 0 || next.Spawned != 0 {
		t.Errorf("counters not reset: %+v", next)
	}
	if next.WindowStartTick != 10 {
		t.Errorf("next window start = %d, want 10", next.WindowStartTick)
	}
}

func TestNewCollectorClampsWindow(t *testing.T) {
	c := NewCollector(0)
	if c.WindowDurationTicks() != 1 {
		t.Errorf("window = %d, want 1", c.WindowDurationTicks())
	}
}
