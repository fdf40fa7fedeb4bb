// Package systems provides the force, movement, consumption and sampling
// steps of the simulation.
package systems

import (
	"math"

	"github.com/pthm-cable/slimemold/components"
)

// AttractionMagnitude returns sqrt(k/d) for d > 0, and 0 at d == 0.
func AttractionMagnitude(k, d float64) float64 {
	if d <= 0 {
		return 0
	}
	return math.Sqrt(k / d)
}

// Attraction returns the force a food at f exerts on a nucleus at p.
// The vector points from the food to the nucleus; movement subtracts it, so
// the nucleus travels toward the food. ok is false when p sits exactly on
// the food and no force applies.
func Attraction(p, f components.Point, k float64) (force components.Point, ok bool) {
	delta := p.Sub(f)
	d := delta.Len()
	if d <= 0 {
		return components.Point{}, false
	}
	mag := AttractionMagnitude(k, d)
	return components.Point{X: delta.X / d * mag, Y: delta.Y / d * mag}, true
}

// Repulsion returns the force an obstacle exerts on a nucleus at p.
// Obstacles only act inside their radius; the magnitude is
// sqrt(strength / max(d, 1)).
func Repulsion(p components.Point, o components.NonAttractor) (force components.Point, ok bool) {
	delta := p.Sub(o.Location)
	d := delta.Len()
	if d >= o.Radius || d <= 0 {
		return components.Point{}, false
	}
	mag := math.Sqrt(o.Strength / math.Max(d, 1))
	return components.Point{X: delta.X / d * mag, Y: delta.Y / d * mag}, true
}

// NearestFood returns the index of the food closest to p and its distance.
// With activeOnly, inactive food is skipped. Ties go to the first
// occurrence. Returns components.NoIndex when no candidate exists.
func NearestFood(p components.Point, foods []components.Food, activeOnly bool) (int, float64) {
	best, bestDist := components.NoIndex, math.Inf(1)
	for i := range foods {
		if activeOnly && !foods[i].Active {
			continue
		}
		if d := p.Dist(foods[i].Location); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, bestDist
}

// NearestObstacle returns the index of the obstacle closest to p and its
// distance, or components.NoIndex when there are none.
func NearestObstacle(p components.Point, obstacles []components.NonAttractor) (int, float64) {
	best, bestDist := components.NoIndex, math.Inf(1)
	for i := range obstacles {
		if d := p.Dist(obstacles[i].Location); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, bestDist
}

// ApplyRepulsion accumulates the repulsion of every obstacle in range.
// Returns the number of obstacles that contributed.
func ApplyRepulsion(p components.Point, obstacles []components.NonAttractor, acc *components.Acceleration) int {
	n := 0
	for i := range obstacles {
		if f, ok := Repulsion(p, obstacles[i]); ok {
			acc.Add(f)
			n++
		}
	}
	return n
}
