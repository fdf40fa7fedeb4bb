package systems

import (
	"math"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/slimemold/components"
)

func TestDisplacement(t *testing.T) {
	tests := []struct {
		name  string
		u, v  float64
		acc   components.Acceleration
		want  components.Point
		speed float64
	}{
		{"noise only", 3, 4, components.Acceleration{}, components.Point{X: 0.3, Y: 0.4}, 0.5},
		{"force only", 0, 0, components.Acceleration{X: 0, Y: 1}, components.Point{X: 0, Y: 0.5}, 0.5},
		{"combined", 1, 0, components.Acceleration{X: 0, Y: 1}, components.Point{X: 0.5 / math.Sqrt2, Y: 0.5 / math.Sqrt2}, 0.5},
		{"cancelling", 1, -1, components.Acceleration{X: -1, Y: 1}, components.Point{}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Displacement(tt.u, tt.v, tt.acc, tt.speed)
			if math.Abs(got.X-tt.want.X) > eps || math.Abs(got.Y-tt.want.Y) > eps {
				t.Errorf("Displacement = %v, want %v", got, tt.want)
			}
		})
	}
}

// fixedNoise returns the same vector for every nucleus.
type fixedNoise struct{ u, v float64 }

func (f fixedNoise) Init(_ components.Nucleus, n *components.Noise) {
	n.U, n.V = f.u, f.v
}

func (f fixedNoise) Sample(_ components.Nucleus, n *components.Noise) (float64, float64) {
	return n.U, n.V
}

func TestMovementSystem(t *testing.T) {
	world := ecs.NewWorld()
	mapper := ecs.NewMap4[components.Position, components.Acceleration, components.Nucleus, components.Noise](world)

	noise := fixedNoise{u: 1, v: 0}
	pos := components.Position{X: 100, Y: 100}
	acc := components.Acceleration{X: 0, Y: 1}
	nuc := components.Nucleus{ID: 0, Seed: 1}
	var n components.Noise
	noise.Init(nuc, &n)
	e := mapper.NewEntity(&pos, &acc, &nuc, &n)

	sys := NewMovementSystem(world, noise, 0.5)
	sys.Update()

	p, a, _, _ := mapper.Get(e)
	wantX := 100 - 0.5/math.Sqrt2
	wantY := 100 - 0.5/math.Sqrt2
	if math.Abs(p.X-wantX) > eps || math.Abs(p.Y-wantY) > eps {
		t.Errorf("position = (%v, %v), want (%v, %v)", p.X, p.Y, wantX, wantY)
	}
	if a.X != 0 || a.Y != 0 {
		t.Errorf("acceleration not reset: %+v", *a)
	}

	// Second tick: noise only, moves against +x.
	sys.Update()
	p, _, _, _ = mapper.Get(e)
	if math.Abs(p.X-(wantX-0.5)) > eps || math.Abs(p.Y-wantY) > eps {
		t.Errorf("second move = (%v, %v), want (%v, %v)", p.X, p.Y, wantX-0.5, wantY)
	}
}

func TestTrailSystem(t *testing.T) {
	world := ecs.NewWorld()
	mapper := ecs.NewMap2[components.Position, components.Trail](world)

	pos := components.Position{X: 1, Y: 2}
	trail := components.Trail{Points: []components.Point{{X: 0, Y: 0}}}
	e := mapper.NewEntity(&pos, &trail)

	sys := NewTrailSystem(world)
	sys.Update()
	sys.Update()

	_, tr := mapper.Get(e)
	if tr.Len() != 3 {
		t.Fatalf("trail length = %d, want 3", tr.Len())
	}
	if tr.Points[2] != (components.Point{X: 1, Y: 2}) {
		t.Errorf("last point = %v, want (1, 2)", tr.Points[2])
	}
}
