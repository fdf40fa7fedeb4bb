package game

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/pthm-cable/slimemold/systems"
	"github.com/pthm-cable/slimemold/telemetry"
)

// ForceGrid samples the attraction magnitude toward the nearest food over
// the whole domain. Every food ever added counts, active or not, so the
// result depends only on the food layout. Returns ErrNoFood when no food
// was registered.
func (g *Game) ForceGrid() (*mat.Dense, error) {
	return systems.SampleForceGrid(
		g.foods,
		g.Width(),
		g.Height(),
		g.cfg.Grid.Stride,
		g.cfg.Forces.ForceConstant,
	)
}

// ExportForceGrid writes the force grid to path as headerless CSV.
func (g *Game) ExportForceGrid(path string) error {
	grid, err := g.ForceGrid()
	if err != nil {
		return fmt.Errorf("exporting force grid: %w", err)
	}
	if err := telemetry.SaveForceGrid(path, grid); err != nil {
		return err
	}

	rows, cols := grid.Dims()
	g.logger.Info("force grid exported", "path", path, "rows", rows, "cols", cols)
	return nil
}
