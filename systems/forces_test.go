package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/slimemold/components"
)

const eps = 1e-9

func TestAttractionMagnitude(t *testing.T) {
	tests := []struct {
		name string
		k, d float64
		want float64
	}{
		{"unit", 10, 10, 1},
		{"grid example", 10, 100, math.Sqrt(0.1)},
		{"zero distance", 10, 0, 0},
		{"negative distance", 10, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AttractionMagnitude(tt.k, tt.d); math.Abs(got-tt.want) > eps {
				t.Errorf("AttractionMagnitude(%v, %v) = %v, want %v", tt.k, tt.d, got, tt.want)
			}
		})
	}
}

func TestAttractionPointsAwayFromFood(t *testing.T) {
	p := components.Point{X: 110, Y: 100}
	f := components.Point{X: 100, Y: 100}

	force, ok := Attraction(p, f, 10)
	if !ok {
		t.Fatal("expected a force")
	}
	// (p - f)/d * sqrt(k/d) = (1, 0) * 1
	if math.Abs(force.X-1) > eps || math.Abs(force.Y) > eps {
		t.Errorf("force = %v, want (1, 0)", force)
	}

	// Movement subtracts the force, which carries the nucleus toward food.
	moved := components.Point{X: p.X - force.X, Y: p.Y - force.Y}
	if moved.Dist(f) >= p.Dist(f) {
		t.Error("subtracting the force should approach the food")
	}
}

func TestAttractionOnFood(t *testing.T) {
	p := components.Point{X: 5, Y: 5}
	if _, ok := Attraction(p, p, 10); ok {
		t.Error("no force expected at zero distance")
	}
}

func TestRepulsion(t *testing.T) {
	o := components.NewNonAttractor(100, 100, 16)

	tests := []struct {
		name   string
		p      components.Point
		wantOK bool
		wantX  float64
		wantY  float64
	}{
		{"inside radius", components.Point{X: 100, Y: 116}, true, 0, 1},
		{"clamped below one", components.Point{X: 100.5, Y: 100}, true, 4, 0},
		{"on radius edge", components.Point{X: 130, Y: 100}, false, 0, 0},
		{"outside radius", components.Point{X: 200, Y: 100}, false, 0, 0},
		{"on obstacle", components.Point{X: 100, Y: 100}, false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := Repulsion(tt.p, o)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if math.Abs(f.X-tt.wantX) > eps || math.Abs(f.Y-tt.wantY) > eps {
				t.Errorf("force = %v, want (%v, %v)", f, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestApplyRepulsionAccumulates(t *testing.T) {
	obstacles := []components.NonAttractor{
		components.NewNonAttractor(90, 100, 10),
		components.NewNonAttractor(110, 100, 10),
		components.NewNonAttractor(500, 500, 10),
	}
	p := components.Point{X: 100, Y: 100}

	var acc components.Acceleration
	n := ApplyRepulsion(p, obstacles, &acc)

	if n != 2 {
		t.Errorf("contributors = %d, want 2", n)
	}
	// Symmetric obstacles cancel out.
	if math.Abs(acc.X) > eps || math.Abs(acc.Y) > eps {
		t.Errorf("acc = %+v, want zero", acc)
	}
}

func TestNearestFood(t *testing.T) {
	foods := []components.Food{
		components.NewFood(0, 10),
		components.NewFood(10, 0),
		components.NewFood(50, 50),
	}
	p := components.Point{X: 0, Y: 0}

	idx, d := NearestFood(p, foods, true)
	if idx != 0 {
		t.Errorf("tie should go to first occurrence, got %d", idx)
	}
	if d != 10 {
		t.Errorf("distance = %v, want 10", d)
	}

	foods[0].Active = false
	if idx, _ := NearestFood(p, foods, true); idx != 1 {
		t.Errorf("active-only nearest = %d, want 1", idx)
	}
	if idx, _ := NearestFood(p, foods, false); idx != 0 {
		t.Errorf("all-food nearest = %d, want 0", idx)
	}

	for i := range foods {
		foods[i].Active = false
	}
	if idx, _ := NearestFood(p, foods, true); idx != components.NoIndex {
		t.Errorf("nearest with no live food = %d, want NoIndex", idx)
	}
	if idx, _ := NearestFood(p, nil, false); idx != components.NoIndex {
		t.Errorf("nearest with no food = %d, want NoIndex", idx)
	}
}

func TestNearestObstacle(t *testing.T) {
	obstacles := []components.NonAttractor{
		components.NewNonAttractor(100, 100, 15),
		components.NewNonAttractor(10, 10, 15),
	}
	idx, d := NearestObstacle(components.Point{X: 13, Y: 14}, obstacles)
	if idx != 1 || math.Abs(d-5) > eps {
		t.Errorf("nearest = %d at %v, want 1 at 5", idx, d)
	}
	if idx, _ := NearestObstacle(components.Point{}, nil); idx != components.NoIndex {
		t.Errorf("nearest with no obstacles = %d, want NoIndex", idx)
	}
}
