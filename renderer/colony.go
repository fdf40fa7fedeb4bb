package renderer

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/slimemold/camera"
	"github.com/pthm-cable/slimemold/components"
	"github.com/pthm-cable/slimemold/game"
)

// ColonyRenderer draws nuclei, their trails, food and non-attractors.
type ColonyRenderer struct {
	TrailColor    rl.Color
	NucleusColor  rl.Color
	FoodColor     rl.Color
	EatenColor    rl.Color
	ObstacleColor rl.Color
	LinkColor     rl.Color
}

// NewColonyRenderer creates a colony renderer with the default palette.
func NewColonyRenderer() *ColonyRenderer {
	return &ColonyRenderer{
		TrailColor:    rl.Color{R: 192, G: 192, B: 192, A: 255},
		NucleusColor:  rl.Color{R: 120, G: 60, B: 160, A: 255},
		FoodColor:     rl.Black,
		EatenColor:    rl.Color{R: 150, G: 150, B: 150, A: 255},
		ObstacleColor: rl.Red,
		LinkColor:     rl.Color{R: 80, G: 140, B: 200, A: 90},
	}
}

// DrawTrails draws each nucleus trail as a polyline ending at its current
// position.
func (r *ColonyRenderer) DrawTrails(nuclei []game.NucleusView, cam *camera.Camera) {
	for i := range nuclei {
		n := &nuclei[i]
		prev := toScreen(cam, n.Trail[0])
		for _, p := range n.Trail[1:] {
			next := toScreen(cam, p)
			rl.DrawLineV(prev, next, r.TrailColor)
			prev = next
		}
		rl.DrawLineV(prev, toScreen(cam, n.Position), r.TrailColor)
	}
}

// DrawNuclei draws every nucleus as a small dot.
func (r *ColonyRenderer) DrawNuclei(nuclei []game.NucleusView, cam *camera.Camera) {
	radius := clampRadius(cam.ScaleLength(1.5))
	for i := range nuclei {
		p := nuclei[i].Position
		if !cam.IsVisible(float32(p.X), float32(p.Y), 2) {
			continue
		}
		rl.DrawCircleV(toScreen(cam, p), radius, r.NucleusColor)
	}
}

// DrawLinks connects each nucleus to the food it is attracted to.
func (r *ColonyRenderer) DrawLinks(nuclei []game.NucleusView, foods []game.FoodView, cam *camera.Camera) {
	for i := range nuclei {
		n := &nuclei[i]
		if n.Nearest.Food == components.NoIndex || n.Nearest.Food >= len(foods) {
			continue
		}
		rl.DrawLineV(toScreen(cam, n.Position), toScreen(cam, foods[n.Nearest.Food].Location), r.LinkColor)
	}
}

// DrawFood draws live food as filled dots and eaten food as hollow ones.
// With labels set, each food shows its visitor count against threshold.
func (r *ColonyRenderer) DrawFood(foods []game.FoodView, threshold int, labels bool, cam *camera.Camera) {
	radius := clampRadius(cam.ScaleLength(4))
	for i := range foods {
		f := &foods[i]
		center := toScreen(cam, f.Location)
		if f.Active {
			rl.DrawCircleV(center, radius, r.FoodColor)
		} else {
			rl.DrawCircleLinesV(center, radius, r.EatenColor)
		}

		if labels {
			text := fmt.Sprintf("%d/%d", f.Reached, threshold)
			rl.DrawText(text, int32(center.X+radius+3), int32(center.Y-6), 12, rl.DarkGray)
		}
	}
}

// DrawObstacles draws each non-attractor as a red dot, plus its repulsion
// radius when rings is set.
func (r *ColonyRenderer) DrawObstacles(obstacles []components.NonAttractor, rings bool, cam *camera.Camera) {
	for i := range obstacles {
		o := &obstacles[i]
		center := toScreen(cam, o.Location)
		rl.DrawCircleV(center, clampRadius(cam.ScaleLength(float32(math.Sqrt(o.Strength)))), r.ObstacleColor)

		if rings {
			ring := r.ObstacleColor
			ring.A = 120
			rl.DrawCircleLinesV(center, cam.ScaleLength(float32(o.Radius)), ring)
		}
	}
}

// DrawSpawnMarker marks the pending spawn point.
func (r *ColonyRenderer) DrawSpawnMarker(p components.Point, cam *camera.Camera) {
	c := toScreen(cam, p)
	size := float32(6)
	rl.DrawLineV(rl.Vector2{X: c.X - size, Y: c.Y}, rl.Vector2{X: c.X + size, Y: c.Y}, r.NucleusColor)
	rl.DrawLineV(rl.Vector2{X: c.X, Y: c.Y - size}, rl.Vector2{X: c.X, Y: c.Y + size}, r.NucleusColor)
}

func toScreen(cam *camera.Camera, p components.Point) rl.Vector2 {
	x, y := cam.WorldToScreen(float32(p.X), float32(p.Y))
	return rl.Vector2{X: x, Y: y}
}

// clampRadius keeps markers legible at any zoom.
func clampRadius(r float32) float32 {
	if r < 1.5 {
		return 1.5
	}
	if r > 12 {
		return 12
	}
	return r
}
