package components

import "math"

// Point is an immutable 2D location in domain units.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Len returns the vector length of p.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Position represents a nucleus' current location.
type Position struct {
	X, Y float64
}

// Point returns the position as a Point.
func (p Position) Point() Point {
	return Point{X: p.X, Y: p.Y}
}

// Acceleration accumulates forces within a tick.
// It is zeroed after every move.
type Acceleration struct {
	X, Y float64
}

// Add accumulates a force.
func (a *Acceleration) Add(f Point) {
	a.X += f.X
	a.Y += f.Y
}

// Reset zeroes the accumulator.
func (a *Acceleration) Reset() {
	a.X, a.Y = 0, 0
}
