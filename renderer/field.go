package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/mat"

	"github.com/pthm-cable/slimemold/camera"
)

// FieldRenderer draws the force grid as a heatmap texture stretched over
// the domain.
type FieldRenderer struct {
	tex        rl.Texture2D
	texW, texH int
	stride     float32

	initialized bool
}

// NewFieldRenderer creates a new field renderer.
func NewFieldRenderer() *FieldRenderer {
	return &FieldRenderer{}
}

// Update uploads a new force grid. Must be called after the raylib window
// is created.
func (r *FieldRenderer) Update(grid *mat.Dense, stride int) {
	rows, cols := grid.Dims()
	if r.initialized && (rows != r.texH || cols != r.texW) {
		r.Unload()
	}
	if !r.initialized {
		img := rl.GenImageColor(cols, rows, rl.Blank)
		r.tex = rl.LoadTextureFromImage(img)
		rl.SetTextureFilter(r.tex, rl.FilterBilinear)
		rl.UnloadImage(img)
		r.texW = cols
		r.texH = rows
		r.initialized = true
	}
	r.stride = float32(stride)

	rl.UpdateTexture(r.tex, HeatmapPixels(grid, 200))
}

// Ready reports whether a grid has been uploaded.
func (r *FieldRenderer) Ready() bool {
	return r.initialized
}

// Draw renders the heatmap. Each texel is centered on its sample point.
func (r *FieldRenderer) Draw(cam *camera.Camera) {
	if !r.initialized {
		return
	}

	half := r.stride / 2
	x0, y0 := cam.WorldToScreen(-half, -half)
	x1, y1 := cam.WorldToScreen(float32(r.texW)*r.stride-half, float32(r.texH)*r.stride-half)

	src := rl.Rectangle{X: 0, Y: 0, Width: float32(r.texW), Height: float32(r.texH)}
	dst := rl.Rectangle{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
	rl.DrawTexturePro(r.tex, src, dst, rl.Vector2{}, 0, rl.White)
}

// Unload frees GPU resources.
func (r *FieldRenderer) Unload() {
	if !r.initialized {
		return
	}
	rl.UnloadTexture(r.tex)
	r.initialized = false
}

// heatStops is the colour ramp from weak to strong attraction.
var heatStops = [...]color.RGBA{
	{R: 40, G: 60, B: 140},
	{R: 180, G: 60, B: 110},
	{R: 250, G: 210, B: 80},
}

// HeatmapPixels maps a grid to row-major pixels, normalized by the grid
// maximum. Pixel alpha is fixed at alpha.
func HeatmapPixels(grid *mat.Dense, alpha uint8) []color.RGBA {
	rows, cols := grid.Dims()
	maxVal := mat.Max(grid)

	pixels := make([]color.RGBA, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			t := 0.0
			if maxVal > 0 {
				t = grid.At(r, c) / maxVal
			}
			px := heatColor(t)
			px.A = alpha
			pixels[r*cols+c] = px
		}
	}
	return pixels
}

// heatColor interpolates the ramp at t in [0, 1].
func heatColor(t float64) color.RGBA {
	if t <= 0 {
		return heatStops[0]
	}
	if t >= 1 {
		return heatStops[len(heatStops)-1]
	}

	segments := float64(len(heatStops) - 1)
	pos := t * segments
	i := int(pos)
	f := pos - float64(i)

	a, b := heatStops[i], heatStops[i+1]
	return color.RGBA{
		R: lerp8(a.R, b.R, f),
		G: lerp8(a.G, b.G, f),
		B: lerp8(a.B, b.B, f),
	}
}

func lerp8(a, b uint8, f float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*f + 0.5)
}
