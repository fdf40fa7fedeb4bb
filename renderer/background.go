// Package renderer draws the simulation with raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/slimemold/camera"
)

// BackgroundRenderer draws the domain on a plain canvas with a reference
// grid and a border.
type BackgroundRenderer struct {
	Canvas    rl.Color
	Outside   rl.Color
	MinorLine rl.Color
	MajorLine rl.Color
	Border    rl.Color

	MinorSpacing float32
	MajorSpacing float32
}

// NewBackgroundRenderer creates a background with the default palette.
func NewBackgroundRenderer() *BackgroundRenderer {
	return &BackgroundRenderer{
		Canvas:       rl.RayWhite,
		Outside:      rl.Color{R: 225, G: 225, B: 220, A: 255},
		MinorLine:    rl.Color{R: 236, G: 236, B: 232, A: 255},
		MajorLine:    rl.Color{R: 215, G: 215, B: 210, A: 255},
		Border:       rl.Gray,
		MinorSpacing: 50,
		MajorSpacing: 100,
	}
}

// Draw clears the screen and draws the domain canvas.
func (b *BackgroundRenderer) Draw(cam *camera.Camera) {
	rl.ClearBackground(b.Outside)

	x0, y0 := cam.WorldToScreen(0, 0)
	x1, y1 := cam.WorldToScreen(cam.WorldW, cam.WorldH)
	rl.DrawRectangleRec(rl.Rectangle{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}, b.Canvas)

	// Skip minor lines once they would crowd together
	if cam.ScaleLength(b.MinorSpacing) >= 8 {
		b.drawLines(cam, b.MinorSpacing, b.MinorLine)
	}
	b.drawLines(cam, b.MajorSpacing, b.MajorLine)

	rl.DrawRectangleLinesEx(rl.Rectangle{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}, 1, b.Border)
}

// drawLines draws the grid lines at the given spacing that fall inside both
// the domain and the visible area.
func (b *BackgroundRenderer) drawLines(cam *camera.Camera, spacing float32, color rl.Color) {
	minX, minY, maxX, maxY := cam.VisibleWorldBounds()
	minX, minY = maxf(minX, 0), maxf(minY, 0)
	maxX, maxY = minf(maxX, cam.WorldW), minf(maxY, cam.WorldH)

	_, top := cam.WorldToScreen(0, minY)
	_, bottom := cam.WorldToScreen(0, maxY)
	for x := firstLine(minX, spacing); x <= maxX; x += spacing {
		sx, _ := cam.WorldToScreen(x, 0)
		rl.DrawLineV(rl.Vector2{X: sx, Y: top}, rl.Vector2{X: sx, Y: bottom}, color)
	}

	left, _ := cam.WorldToScreen(minX, 0)
	right, _ := cam.WorldToScreen(maxX, 0)
	for y := firstLine(minY, spacing); y <= maxY; y += spacing {
		_, sy := cam.WorldToScreen(0, y)
		rl.DrawLineV(rl.Vector2{X: left, Y: sy}, rl.Vector2{X: right, Y: sy}, color)
	}
}

// firstLine returns the smallest multiple of spacing that is >= v.
func firstLine(v, spacing float32) float32 {
	n := float32(int(v / spacing))
	if n*spacing < v {
		n++
	}
	return n * spacing
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
