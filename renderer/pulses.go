package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/slimemold/camera"
	"github.com/pthm-cable/slimemold/telemetry"
)

// Pulse is an expanding ring marking where a batch of nuclei spawned.
type Pulse struct {
	X, Y    float32
	Life    int
	MaxLife int
	Batch   int
}

// Progress returns how far the pulse has expanded, from 0 to 1.
func (p Pulse) Progress() float32 {
	if p.MaxLife <= 0 {
		return 1
	}
	return 1 - float32(p.Life)/float32(p.MaxLife)
}

// PulseSystem tracks live spawn pulses.
type PulseSystem struct {
	Pulses    []Pulse
	lifetime  int
	maxRadius float32
}

// NewPulseSystem creates a pulse system whose pulses live for lifetime
// frames and grow to maxRadius world units.
func NewPulseSystem(lifetime int, maxRadius float32) *PulseSystem {
	if lifetime < 1 {
		lifetime = 1
	}
	return &PulseSystem{
		lifetime:  lifetime,
		maxRadius: maxRadius,
	}
}

// Emit starts a pulse for every spawn event. Other events are ignored.
func (s *PulseSystem) Emit(events []telemetry.Event) {
	for _, ev := range events {
		if ev.Type != telemetry.EventSpawn {
			continue
		}
		s.Pulses = append(s.Pulses, Pulse{
			X:       float32(ev.X),
			Y:       float32(ev.Y),
			Life:    s.lifetime,
			MaxLife: s.lifetime,
			Batch:   ev.Count,
		})
	}
}

// Update ages every pulse by one frame and drops expired ones.
func (s *PulseSystem) Update() {
	alive := s.Pulses[:0]
	for _, p := range s.Pulses {
		p.Life--
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	s.Pulses = alive
}

// Radius returns the current ring radius of p in world units.
func (s *PulseSystem) Radius(p Pulse) float32 {
	return s.maxRadius * p.Progress()
}

// PulseRenderer draws spawn pulses.
type PulseRenderer struct {
	Color rl.Color
}

// NewPulseRenderer creates a new pulse renderer.
func NewPulseRenderer() *PulseRenderer {
	return &PulseRenderer{Color: rl.Color{R: 60, G: 160, B: 90, A: 255}}
}

// Draw renders all live pulses, fading as they expand.
func (r *PulseRenderer) Draw(s *PulseSystem, cam *camera.Camera) {
	for _, p := range s.Pulses {
		radius := s.Radius(p)
		if !cam.IsVisible(p.X, p.Y, radius) {
			continue
		}

		color := r.Color
		color.A = uint8((1 - p.Progress()) * 220)

		sx, sy := cam.WorldToScreen(p.X, p.Y)
		sr := cam.ScaleLength(radius)
		rl.DrawRing(rl.Vector2{X: sx, Y: sy}, maxf(sr-1.5, 0), sr+1.5, 0, 360, 36, color)
	}
}
