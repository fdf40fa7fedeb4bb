package game

import (
	"log/slog"

	"github.com/pthm-cable/slimemold/components"
	"github.com/pthm-cable/slimemold/systems"
	"github.com/pthm-cable/slimemold/telemetry"
)

// recordEvent counts an event and queues it for output.
func (g *Game) recordEvent(ev telemetry.Event) {
	g.collector.Record(ev)
	if g.outputManager != nil {
		g.pendingEvents = append(g.pendingEvents, ev)
	}
	if ev.Type == telemetry.EventSpawn {
		g.spawnEvents = append(g.spawnEvents, ev)
	}
}

// SpawnEvents returns the spawn events emitted since the previous call.
func (g *Game) SpawnEvents() []telemetry.Event {
	out := g.spawnEvents
	g.spawnEvents = nil
	return out
}

// flushTelemetry checks if the stats window should be flushed.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	stats := g.collector.Flush(g.tick, g.samplePopulation())
	perfStats := g.perfCollector.Stats()

	// Call stats callback if provided
	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	// Log stats if enabled (console output)
	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	// Write to CSV if output manager is enabled
	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
		g.flushEvents()
	}
}

func (g *Game) flushEvents() {
	if err := g.outputManager.WriteEvents(g.pendingEvents); err != nil {
		slog.Error("failed to write events", "error", err)
	}
	g.pendingEvents = g.pendingEvents[:0]
}

// samplePopulation gathers the state reported at the end of a window.
func (g *Game) samplePopulation() telemetry.Population {
	pop := telemetry.Population{
		Nuclei:    len(g.nuclei),
		LiveFood:  systems.ActiveFoodCount(g.foods),
		TotalFood: len(g.foods),
	}

	for _, e := range g.nuclei {
		pos, _, _, _, trail, _ := g.nucleusMapper.Get(e)
		pop.TrailPoints += trail.Len()

		if idx, d := systems.NearestFood(pos.Point(), g.foods, true); idx != components.NoIndex {
			pop.FoodDist = append(pop.FoodDist, d)
		}
	}

	return pop
}

// WriteResults writes trails, food tallies, pending events and the trail
// plot to the output directory. No-op when output is disabled.
func (g *Game) WriteResults() error {
	if g.outputManager == nil {
		return nil
	}
	g.flushEvents()

	if err := g.outputManager.WriteFoods(g.foodRecords()); err != nil {
		return err
	}

	trails := g.trailSets()
	if err := g.outputManager.WriteTrails(trails); err != nil {
		return err
	}

	plot := telemetry.PlotData{
		Width:     float64(g.Width()),
		Height:    float64(g.Height()),
		Trails:    trails,
		Foods:     g.FoodPoints(),
		Obstacles: g.NonAttractors(),
	}
	if err := g.outputManager.WritePlot(plot, g.cfg.Screen.Width); err != nil {
		return err
	}

	g.logger.Info("results written", "dir", g.outputManager.Dir(), "nuclei", len(trails))
	return nil
}

func (g *Game) foodRecords() []telemetry.FoodRecord {
	records := make([]telemetry.FoodRecord, len(g.foods))
	for i := range g.foods {
		f := &g.foods[i]
		records[i] = telemetry.FoodRecord{
			Index:   i,
			X:       f.Location.X,
			Y:       f.Location.Y,
			Active:  f.Active,
			Reached: f.ReachedCount(),
		}
	}
	return records
}

func (g *Game) trailSets() []telemetry.TrailSet {
	sets := make([]telemetry.TrailSet, 0, len(g.nuclei))
	for _, e := range g.nuclei {
		_, _, nuc, _, trail, _ := g.nucleusMapper.Get(e)
		points := make([]components.Point, trail.Len())
		copy(points, trail.Points)
		sets = append(sets, telemetry.TrailSet{ID: nuc.ID, Points: points})
	}
	return sets
}
