// Package components defines the data held by the simulation: ECS components
// for nuclei and plain records for the engine-owned food and obstacles.
package components

// NoIndex marks an unset nearest-food or nearest-obstacle pointer.
const NoIndex = -1

// Nucleus identifies a mobile agent.
// ID is assigned at spawn time and never reused; it is the identity used
// for food-reached bookkeeping. Seed drives the nucleus' noise stream.
type Nucleus struct {
	ID   uint32
	Seed int
}

// Noise holds per-nucleus noise state.
// U, V are the current noise values in [-1, 1); NU, NV are the sampling
// coordinates, which only advance under evolving noise.
type Noise struct {
	U, V   float64
	NU, NV float64
}

// Trail is the recorded location history of a nucleus.
// It only grows.
type Trail struct {
	Points []Point
}

// Append records a location.
func (t *Trail) Append(p Point) {
	t.Points = append(t.Points, p)
}

// Len returns the number of recorded points.
func (t *Trail) Len() int {
	return len(t.Points)
}

// Nearest holds the transient closest-food and closest-obstacle pointers,
// recomputed every tick. Values index the engine's full food and obstacle
// collections; NoIndex when nothing was in range of the search.
type Nearest struct {
	Food     int
	Obstacle int
}
