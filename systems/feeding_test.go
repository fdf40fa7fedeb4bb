package systems

import (
	"testing"

	"github.com/pthm-cable/slimemold/components"
)

func TestCheckReachRecordsOnce(t *testing.T) {
	foods := []components.Food{components.NewFood(0, 5)}
	var trail components.Trail
	p := components.Point{X: 0, Y: 0}

	res := CheckReach(7, p, foods, 10, 5, &trail)
	if len(res.Reached) != 1 || res.Reached[0] != 0 {
		t.Fatalf("reached = %v, want [0]", res.Reached)
	}
	if res.Saturated != components.NoIndex {
		t.Errorf("saturated = %d, want NoIndex", res.Saturated)
	}

	res = CheckReach(7, p, foods, 10, 5, &trail)
	if len(res.Reached) != 0 {
		t.Errorf("second check reached %v, want nothing", res.Reached)
	}
	if foods[0].ReachedCount() != 1 {
		t.Errorf("reached count = %d, want 1", foods[0].ReachedCount())
	}
	if trail.Len() != 1 || trail.Points[0] != foods[0].Location {
		t.Errorf("trail = %v, want one food point", trail.Points)
	}
}

func TestCheckReachDistance(t *testing.T) {
	tests := []struct {
		name string
		p    components.Point
		want bool
	}{
		{"inside", components.Point{X: 9.99, Y: 0}, true},
		{"on boundary", components.Point{X: 10, Y: 0}, false},
		{"outside", components.Point{X: 20, Y: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			foods := []components.Food{components.NewFood(0, 0)}
			var trail components.Trail
			res := CheckReach(1, tt.p, foods, 10, 5, &trail)
			if got := len(res.Reached) == 1; got != tt.want {
				t.Errorf("reached = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckReachSaturation(t *testing.T) {
	// Two overlapping foods; saturating the first stops the check before
	// the second.
	foods := []components.Food{components.NewFood(0, 0), components.NewFood(1, 0)}
	p := components.Point{X: 0.5, Y: 0}
	threshold := 2

	var trail components.Trail
	for id := uint32(0); id < 2; id++ {
		res := CheckReach(id, p, foods, 10, threshold, &trail)
		if res.Saturated != components.NoIndex {
			t.Fatalf("nucleus %d saturated early", id)
		}
	}

	res := CheckReach(2, p, foods, 10, threshold, &trail)
	if res.Saturated != 0 {
		t.Fatalf("saturated = %d, want 0", res.Saturated)
	}
	if foods[0].Active {
		t.Error("saturated food should be inactive")
	}
	if foods[0].ReachedCount() != 3 {
		t.Errorf("reached count = %d, want 3", foods[0].ReachedCount())
	}
	if foods[1].HasNucleus(2) {
		t.Error("check should stop after saturation")
	}
	if ActiveFoodCount(foods) != 1 {
		t.Errorf("active = %d, want 1", ActiveFoodCount(foods))
	}

	// Inactive food is ignored from now on.
	res = CheckReach(3, p, foods, 10, threshold, &trail)
	if foods[0].HasNucleus(3) {
		t.Error("inactive food recorded a nucleus")
	}
	if len(res.Reached) != 1 || res.Reached[0] != 1 {
		t.Errorf("reached = %v, want [1]", res.Reached)
	}
}
