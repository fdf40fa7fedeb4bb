package systems

import (
	"testing"

	"github.com/pthm-cable/slimemold/components"
)

func TestOccupancyGrid(t *testing.T) {
	g := NewOccupancyGrid(800, 800, 80, 40)

	points := []components.Point{
		{X: 0, Y: 0},
		{X: 5, Y: 15},
		{X: 799, Y: 799},
		{X: 800, Y: 10}, // outside
		{X: -1, Y: 10},  // outside
	}
	if n := g.InsertAll(points); n != 3 {
		t.Errorf("inserted = %d, want 3", n)
	}

	if c := g.Count(0, 0); c != 2 {
		t.Errorf("count(0,0) = %d, want 2", c)
	}
	if c := g.Count(79, 39); c != 1 {
		t.Errorf("count(79,39) = %d, want 1", c)
	}
	if g.Max() != 2 {
		t.Errorf("max = %d, want 2", g.Max())
	}
	if c := g.Count(100, 0); c != 0 {
		t.Errorf("out of range count = %d, want 0", c)
	}

	g.Clear()
	if g.Count(0, 0) != 0 || g.Max() != 0 {
		t.Error("Clear should zero every cell")
	}
}

func TestOccupancyGridCell(t *testing.T) {
	g := NewOccupancyGrid(100, 50, 10, 5)
	col, row, ok := g.Cell(components.Point{X: 55, Y: 25})
	if !ok || col != 5 || row != 2 {
		t.Errorf("Cell = (%d, %d, %v), want (5, 2, true)", col, row, ok)
	}
	if cols, rows := g.Size(); cols != 10 || rows != 5 {
		t.Errorf("Size = %dx%d, want 10x5", cols, rows)
	}
}
