package systems

import "github.com/pthm-cable/slimemold/components"

// ReachResult reports what one consumption check did.
type ReachResult struct {
	Reached   []int // Indices of food newly reached by the nucleus
	Saturated int   // Index of the food that crossed the threshold, or components.NoIndex
}

// CheckReach runs the consumption check of one nucleus against the active
// food. A food within reachDist records the nucleus once; the nucleus' trail
// gets the food's location on every new reach. When a food's distinct
// visitor count exceeds threshold it is deactivated and the check stops for
// this nucleus.
func CheckReach(
	id uint32,
	p components.Point,
	foods []components.Food,
	reachDist float64,
	threshold int,
	trail *components.Trail,
) ReachResult {
	res := ReachResult{Saturated: components.NoIndex}

	for j := range foods {
		food := &foods[j]
		if !food.Active {
			continue
		}
		if p.Dist(food.Location) >= reachDist || food.HasNucleus(id) {
			continue
		}

		food.AddNucleus(id)
		trail.Append(food.Location)
		res.Reached = append(res.Reached, j)

		if food.ReachedCount() > threshold {
			food.Active = false
			res.Saturated = j
			break
		}
	}

	return res
}

// ActiveFoodCount returns the number of food sources still live.
func ActiveFoodCount(foods []components.Food) int {
	n := 0
	for i := range foods {
		if foods[i].Active {
			n++
		}
	}
	return n
}
