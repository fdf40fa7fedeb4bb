package game

import (
	"github.com/pthm-cable/slimemold/components"
	"github.com/pthm-cable/slimemold/systems"
	"github.com/pthm-cable/slimemold/telemetry"
)

// Step advances the simulation by exactly one tick.
func (g *Game) Step() {
	g.perfCollector.StartTick()

	// 1. Trail cadence
	g.trailCount++
	recordTrail := false
	if g.trailCount >= g.cfg.Trail.Interval {
		g.trailCount = 0
		recordTrail = true
	}

	// 2. Lazy spawn
	g.perfCollector.StartPhase(telemetry.PhaseSpawn)
	if g.spawnPending {
		g.spawnBatch()
	}

	// 3. Forces and consumption, per nucleus in spawn order
	g.perfCollector.StartPhase(telemetry.PhaseForces)
	g.updateForces()

	// 4. Movement
	g.perfCollector.StartPhase(telemetry.PhaseMovement)
	g.movement.Update()

	// 5. Trail recording
	g.perfCollector.StartPhase(telemetry.PhaseTrails)
	if recordTrail {
		g.trails.Update()
	}

	g.tick++

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()

	g.perfCollector.EndTick()
}

// updateForces accumulates attraction and repulsion and runs the
// consumption check. Food deactivated by one nucleus is already gone for
// the nuclei after it.
func (g *Game) updateForces() {
	cfg := g.cfg
	k := cfg.Forces.ForceConstant

	for _, e := range g.nuclei {
		pos, acc, nuc, _, trail, nearest := g.nucleusMapper.Get(e)
		p := pos.Point()

		idx, _ := systems.NearestFood(p, g.foods, true)
		nearest.Food = idx
		if idx != components.NoIndex {
			if f, ok := systems.Attraction(p, g.foods[idx].Location, k); ok {
				acc.Add(f)
			}
		}

		if len(g.obstacles) > 0 {
			nearest.Obstacle, _ = systems.NearestObstacle(p, g.obstacles)
			systems.ApplyRepulsion(p, g.obstacles, acc)
		}

		if idx == components.NoIndex {
			continue
		}

		res := systems.CheckReach(nuc.ID, p, g.foods, cfg.Colony.ReachDistance, cfg.Colony.NumCellsToReachOats, trail)
		for _, j := range res.Reached {
			loc := g.foods[j].Location
			g.recordEvent(telemetry.NewReachEvent(g.tick, nuc.ID, j, loc.X, loc.Y))
		}
		if res.Saturated != components.NoIndex {
			g.saturate(res.Saturated)
		}
	}
}

// saturate schedules a spawn batch at a food that just crossed the visitor
// threshold. If several foods saturate in one tick the last one wins.
func (g *Game) saturate(j int) {
	food := &g.foods[j]
	g.spawnPending = true
	g.spawnPoint = food.Location

	g.recordEvent(telemetry.NewSaturationEvent(g.tick, j, food.Location.X, food.Location.Y, food.ReachedCount()))
	g.logger.Info("food saturated",
		"tick", g.tick,
		"food", j,
		"x", food.Location.X,
		"y", food.Location.Y,
		"reached", food.ReachedCount(),
		"live_food", systems.ActiveFoodCount(g.foods),
	)
}
