package systems

import "github.com/pthm-cable/slimemold/components"

// OccupancyGrid bins points into a fixed lattice of cells covering the
// domain and counts how many fall in each.
type OccupancyGrid struct {
	cellW, cellH float64
	cols, rows   int
	counts       []int
	max          int
}

// NewOccupancyGrid creates a cols x rows grid over a width x height domain.
func NewOccupancyGrid(width, height float64, cols, rows int) *OccupancyGrid {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &OccupancyGrid{
		cellW:  width / float64(cols),
		cellH:  height / float64(rows),
		cols:   cols,
		rows:   rows,
		counts: make([]int, cols*rows),
	}
}

// Clear zeroes every cell.
func (g *OccupancyGrid) Clear() {
	for i := range g.counts {
		g.counts[i] = 0
	}
	g.max = 0
}

// Insert counts a point. Points outside the domain are dropped.
func (g *OccupancyGrid) Insert(p components.Point) bool {
	idx, ok := g.cellIndex(p)
	if !ok {
		return false
	}
	g.counts[idx]++
	if g.counts[idx] > g.max {
		g.max = g.counts[idx]
	}
	return true
}

// InsertAll counts every point and returns how many landed in the domain.
func (g *OccupancyGrid) InsertAll(points []components.Point) int {
	n := 0
	for _, p := range points {
		if g.Insert(p) {
			n++
		}
	}
	return n
}

// Count returns the number of points in the cell at (col, row).
func (g *OccupancyGrid) Count(col, row int) int {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return 0
	}
	return g.counts[row*g.cols+col]
}

// Max returns the highest count of any cell.
func (g *OccupancyGrid) Max() int {
	return g.max
}

// Size returns the grid dimensions.
func (g *OccupancyGrid) Size() (cols, rows int) {
	return g.cols, g.rows
}

// Cell returns the (col, row) containing p, and false when p lies outside
// the domain.
func (g *OccupancyGrid) Cell(p components.Point) (col, row int, ok bool) {
	if p.X < 0 || p.Y < 0 {
		return 0, 0, false
	}
	col = int(p.X / g.cellW)
	row = int(p.Y / g.cellH)
	if col >= g.cols || row >= g.rows {
		return 0, 0, false
	}
	return col, row, true
}

func (g *OccupancyGrid) cellIndex(p components.Point) (int, bool) {
	col, row, ok := g.Cell(p)
	if !ok {
		return 0, false
	}
	return row*g.cols + col, true
}
