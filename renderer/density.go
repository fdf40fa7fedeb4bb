package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/slimemold/camera"
	"github.com/pthm-cable/slimemold/components"
	"github.com/pthm-cable/slimemold/systems"
)

// DensityRenderer shades lattice cells by how many nuclei they hold.
type DensityRenderer struct {
	grid   *systems.OccupancyGrid
	worldW float32
	worldH float32
	Color  rl.Color
}

// NewDensityRenderer bins the domain into cells of roughly cellSize world
// units.
func NewDensityRenderer(worldW, worldH, cellSize float32) *DensityRenderer {
	cols := int(worldW / cellSize)
	rows := int(worldH / cellSize)
	return &DensityRenderer{
		grid:   systems.NewOccupancyGrid(float64(worldW), float64(worldH), cols, rows),
		worldW: worldW,
		worldH: worldH,
		Color:  rl.Color{R: 120, G: 60, B: 160, A: 255},
	}
}

// Update rebins the given positions.
func (r *DensityRenderer) Update(positions []components.Point) {
	r.grid.Clear()
	r.grid.InsertAll(positions)
}

// Draw renders every occupied cell with alpha proportional to its count.
func (r *DensityRenderer) Draw(cam *camera.Camera) {
	peak := r.grid.Max()
	if peak == 0 {
		return
	}
	cols, rows := r.grid.Size()
	cw := r.worldW / float32(cols)
	ch := r.worldH / float32(rows)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			n := r.grid.Count(col, row)
			if n == 0 {
				continue
			}
			wx := float32(col) * cw
			wy := float32(row) * ch
			if !cam.IsVisible(wx+cw/2, wy+ch/2, cw+ch) {
				continue
			}

			color := r.Color
			color.A = uint8(40 + 180*float32(n)/float32(peak))

			sx, sy := cam.WorldToScreen(wx, wy)
			rl.DrawRectangleRec(rl.Rectangle{X: sx, Y: sy, Width: cam.ScaleLength(cw), Height: cam.ScaleLength(ch)}, color)
		}
	}
}
