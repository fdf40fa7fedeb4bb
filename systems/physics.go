package systems

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/slimemold/components"
)

// Displacement combines a noise vector with the accumulated force and
// rescales the result to speed. A zero vector stays zero.
func Displacement(u, v float64, acc components.Acceleration, speed float64) components.Point {
	x := u + acc.X
	y := v + acc.Y
	mag := math.Hypot(x, y)
	if mag <= 0 {
		return components.Point{}
	}
	return components.Point{X: x / mag * speed, Y: y / mag * speed}
}

// MovementSystem moves every nucleus once per tick.
type MovementSystem struct {
	filter *ecs.Filter4[components.Position, components.Acceleration, components.Nucleus, components.Noise]
	noise  NoiseSource
	speed  float64
}

// NewMovementSystem creates a movement system over the given world.
func NewMovementSystem(w *ecs.World, noise NoiseSource, speed float64) *MovementSystem {
	return &MovementSystem{
		filter: ecs.NewFilter4[components.Position, components.Acceleration, components.Nucleus, components.Noise](w),
		noise:  noise,
		speed:  speed,
	}
}

// Update runs the movement pass. Positions move against the combined
// noise+force vector; the accumulator is cleared afterwards.
func (s *MovementSystem) Update() {
	query := s.filter.Query()
	for query.Next() {
		pos, acc, nuc, noise := query.Get()

		u, v := s.noise.Sample(*nuc, noise)
		d := Displacement(u, v, *acc, s.speed)

		pos.X -= d.X
		pos.Y -= d.Y

		acc.Reset()
	}
}

// TrailSystem appends the current location of every nucleus to its trail.
type TrailSystem struct {
	filter *ecs.Filter2[components.Position, components.Trail]
}

// NewTrailSystem creates a trail recorder over the given world.
func NewTrailSystem(w *ecs.World) *TrailSystem {
	return &TrailSystem{
		filter: ecs.NewFilter2[components.Position, components.Trail](w),
	}
}

// Update records one trail point per nucleus.
func (s *TrailSystem) Update() {
	query := s.filter.Query()
	for query.Next() {
		pos, trail := query.Get()
		trail.Append(pos.Point())
	}
}
