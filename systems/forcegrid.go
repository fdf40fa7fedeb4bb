package systems

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/pthm-cable/slimemold/components"
)

// ErrNoFood is returned when a force grid is requested with no food registered.
var ErrNoFood = errors.New("force grid needs at least one food source")

// GridCell is one lattice sample of the force field.
type GridCell struct {
	Location  components.Point
	Nearest   int     // Index of the nearest food (whole collection)
	Magnitude float64 // Attraction magnitude toward that food
}

// SampleCell computes the field at one lattice point.
func SampleCell(x, y float64, foods []components.Food, k float64) GridCell {
	p := components.Point{X: x, Y: y}
	idx, d := NearestFood(p, foods, false)
	cell := GridCell{Location: p, Nearest: idx}
	if idx != components.NoIndex {
		cell.Magnitude = AttractionMagnitude(k, d)
	}
	return cell
}

// GridShape returns the lattice dimensions for a domain: rows follow y,
// columns follow x, both at the given stride.
func GridShape(width, height, stride int) (rows, cols int) {
	return height / stride, width / stride
}

// SampleForceGrid samples the attraction magnitude toward the nearest food
// (active or not) over [0,width) x [0,height) at the given stride. Element
// (r, c) holds the value at (c*stride, r*stride). The result only depends on
// the food layout.
func SampleForceGrid(foods []components.Food, width, height, stride int, k float64) (*mat.Dense, error) {
	if len(foods) == 0 {
		return nil, ErrNoFood
	}
	if stride <= 0 {
		return nil, fmt.Errorf("grid stride must be positive, got %d", stride)
	}
	rows, cols := GridShape(width, height, stride)
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("domain %dx%d is smaller than grid stride %d", width, height, stride)
	}

	grid := mat.NewDense(rows, cols, nil)
	for c := 0; c < cols; c++ {
		x := float64(c * stride)
		for r := 0; r < rows; r++ {
			y := float64(r * stride)
			grid.Set(r, c, SampleCell(x, y, foods, k).Magnitude)
		}
	}
	return grid, nil
}
