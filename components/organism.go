package components

import "github.com/pthm-cable/slimemold/config"

// Food is a static attractor. A single record carries both the "live" view
// (Active) and the permanent history (Location plus the reached set, kept
// after deactivation).
type Food struct {
	Location Point
	Active   bool

	reached map[uint32]struct{}
}

// NewFood creates an active food source at (x, y).
func NewFood(x, y float64) Food {
	return Food{
		Location: Point{X: x, Y: y},
		Active:   true,
		reached:  make(map[uint32]struct{}),
	}
}

// AddNucleus records that the nucleus with the given id reached this food.
// Returns false if it was already recorded.
func (f *Food) AddNucleus(id uint32) bool {
	if f.reached == nil {
		f.reached = make(map[uint32]struct{})
	}
	if _, ok := f.reached[id]; ok {
		return false
	}
	f.reached[id] = struct{}{}
	return true
}

// HasNucleus reports whether the nucleus has reached this food.
func (f *Food) HasNucleus(id uint32) bool {
	_, ok := f.reached[id]
	return ok
}

// ReachedCount returns the number of distinct nuclei that reached this food.
func (f *Food) ReachedCount() int {
	return len(f.reached)
}

// NonAttractor is a static repulsor with a fixed influence radius.
type NonAttractor struct {
	Location Point
	Strength float64
	Radius   float64
}

// NewNonAttractor creates an obstacle with the shared radius.
func NewNonAttractor(x, y, strength float64) NonAttractor {
	return NonAttractor{
		Location: Point{X: x, Y: y},
		Strength: strength,
		Radius:   config.NonAttractorRadius,
	}
}
