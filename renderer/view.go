package renderer

import (
	"errors"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/slimemold/camera"
	"github.com/pthm-cable/slimemold/game"
	"github.com/pthm-cable/slimemold/telemetry"
	"github.com/pthm-cable/slimemold/ui"
)

const controlsLegend = "[Space] pause  [,/.] speed  [Arrows/RMB] pan  [Wheel/+/-] zoom  [Home] reset  [Tab] overlays  [F11] fullscreen"

// View is the interactive raylib front end for a running game. It must be
// created after the raylib window is open.
type View struct {
	game   *game.Game
	logger *slog.Logger

	camera           *camera.Camera
	screenW, screenH float32

	background *BackgroundRenderer
	field      *FieldRenderer
	density    *DensityRenderer
	colony     *ColonyRenderer
	pulses     *PulseSystem
	pulseDraw  *PulseRenderer

	overlays   *ui.OverlayRegistry
	hud        *ui.HUD
	controls   *ui.ControlsPanel
	perfPanel  *ui.PerfPanel
	quickStats *ui.QuickStatsPanel
	foodPanel  *ui.FoodPanel

	lastWindow telemetry.WindowStats
	fieldFoods int // Food count the field texture was built from
}

// NewView creates a view over g sized to the current window.
func NewView(g *game.Game, logger *slog.Logger) *View {
	if logger == nil {
		logger = slog.Default()
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	worldW := float32(g.Width())
	worldH := float32(g.Height())

	v := &View{
		game:       g,
		logger:     logger,
		camera:     camera.New(w, h, worldW, worldH),
		screenW:    w,
		screenH:    h,
		background: NewBackgroundRenderer(),
		field:      NewFieldRenderer(),
		density:    NewDensityRenderer(worldW, worldH, 20),
		colony:     NewColonyRenderer(),
		pulses:     NewPulseSystem(30, 40),
		pulseDraw:  NewPulseRenderer(),
		overlays:   ui.NewOverlayRegistry(),
		hud:        ui.NewHUD(),
		controls:   ui.NewControlsPanel(10, 120, 220),
		perfPanel:  ui.NewPerfPanel(int32(w)-255, 15),
		quickStats: ui.NewQuickStatsPanel(int32(w)-260, int32(h)-170, 250),
		foodPanel:  ui.NewFoodPanel(int32(w)-260, 130, 250, 16),
	}

	v.overlays.SetEnabled(ui.OverlayTrails, true)
	v.overlays.SetEnabled(ui.OverlayObstacleRing, true)
	v.overlays.SetEnabled(ui.OverlaySpawnPulses, true)

	g.SetStatsCallback(func(s telemetry.WindowStats) {
		v.lastWindow = s
	})
	return v
}

// HandleInput processes keyboard and mouse input.
func (v *View) HandleInput() {
	v.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		v.game.TogglePause()
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		v.controls.Toggle()
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) {
		v.game.SetStepsPerUpdate(v.game.StepsPerUpdate() - 1)
	}
	if rl.IsKeyPressed(rl.KeyPeriod) {
		v.game.SetStepsPerUpdate(v.game.StepsPerUpdate() + 1)
	}

	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if id, on, ok := v.overlays.HandleKeyPress(key); ok {
			v.logger.Debug("overlay toggled", "overlay", id, "enabled", on)
		}
	}

	v.handleCameraInput()
}

// handleResize checks for window resize and propagates new dimensions.
func (v *View) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == v.screenW && h == v.screenH {
		return
	}
	v.screenW = w
	v.screenH = h

	v.camera.Resize(w, h)
	v.perfPanel.SetPosition(int32(w)-255, 15)
	v.quickStats.SetPosition(int32(w)-260, int32(h)-170)
	v.foodPanel.SetPosition(int32(w)-260, 130)
}

// handleCameraInput processes camera pan/zoom controls.
func (v *View) handleCameraInput() {
	const panSpeed = 8.0

	if rl.IsKeyDown(rl.KeyRight) {
		v.camera.Pan(panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		v.camera.Pan(-panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		v.camera.Pan(0, panSpeed)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		v.camera.Pan(0, -panSpeed)
	}

	// Drag with the right mouse button
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		d := rl.GetMouseDelta()
		v.camera.Pan(-d.X, -d.Y)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		v.camera.ZoomBy(1 + wheel*0.1)
	}
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		v.camera.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		v.camera.ZoomBy(0.8)
	}

	if rl.IsKeyPressed(rl.KeyHome) {
		v.camera.Reset()
	}
}

// Update advances view-side animation after the game has stepped.
func (v *View) Update() {
	v.pulses.Emit(v.game.SpawnEvents())
	v.pulses.Update()

	if v.overlays.IsEnabled(ui.OverlayDensity) {
		v.density.Update(v.game.Positions())
	}
	if v.overlays.IsEnabled(ui.OverlayForceField) {
		v.refreshField()
	}
}

// refreshField rebuilds the heatmap when the food layout changed.
func (v *View) refreshField() {
	n := len(v.game.Foods())
	if v.field.Ready() && n == v.fieldFoods {
		return
	}
	grid, err := v.game.ForceGrid()
	if err != nil {
		if !errors.Is(err, game.ErrNoFood) {
			v.logger.Warn("force field unavailable", "error", err)
		}
		return
	}
	v.field.Update(grid, v.game.Config().Grid.Stride)
	v.fieldFoods = n
}

// Draw renders one frame.
func (v *View) Draw() {
	g := v.game
	cam := v.camera
	nuclei := g.Nuclei()
	foods := g.Foods()

	rl.BeginDrawing()

	v.background.Draw(cam)

	if v.overlays.IsEnabled(ui.OverlayForceField) {
		v.field.Draw(cam)
	}
	if v.overlays.IsEnabled(ui.OverlayDensity) {
		v.density.Draw(cam)
	}
	if v.overlays.IsEnabled(ui.OverlayTrails) {
		v.colony.DrawTrails(nuclei, cam)
	}
	if v.overlays.IsEnabled(ui.OverlayNearestLinks) {
		v.colony.DrawLinks(nuclei, foods, cam)
	}

	v.colony.DrawObstacles(g.NonAttractors(), v.overlays.IsEnabled(ui.OverlayObstacleRing), cam)
	threshold := g.Config().Colony.NumCellsToReachOats
	v.colony.DrawFood(foods, threshold, v.overlays.IsEnabled(ui.OverlayFoodProgress), cam)
	v.colony.DrawNuclei(nuclei, cam)

	if v.overlays.IsEnabled(ui.OverlaySpawnPulses) {
		v.pulseDraw.Draw(v.pulses, cam)
	}
	if g.SpawnPending() {
		v.colony.DrawSpawnMarker(g.SpawnPoint(), cam)
	}

	v.drawUI(foods, threshold)

	rl.EndDrawing()
}

// drawUI renders the HUD and panels.
func (v *View) drawUI(foods []game.FoodView, threshold int) {
	g := v.game

	live := 0
	for i := range foods {
		if foods[i].Active {
			live++
		}
	}

	v.hud.Draw(ui.HUDData{
		Title:     "Slime Mold",
		Nuclei:    g.NucleusCount(),
		LiveFood:  live,
		TotalFood: len(foods),
		Batches:   g.Batches(),
		Obstacles: len(g.NonAttractors()),
		Tick:      g.Tick(),
		Speed:     g.StepsPerUpdate(),
		FPS:       rl.GetFPS(),
		Paused:    g.Paused(),
	})
	v.controls.Draw(v.overlays)

	if v.overlays.IsEnabled(ui.OverlayPerf) {
		v.perfPanel.Draw(g.PerfStats())
	}
	if v.overlays.IsEnabled(ui.OverlayFoodProgress) {
		rows := make([]ui.FoodRow, len(foods))
		for i := range foods {
			rows[i] = ui.FoodRow{Index: foods[i].Index, Reached: foods[i].Reached, Active: foods[i].Active}
		}
		v.foodPanel.Draw(rows, threshold)
	}
	v.quickStats.Draw(v.lastWindow)

	v.hud.DrawControls(int32(v.screenH), controlsLegend)
}

// Unload frees GPU resources.
func (v *View) Unload() {
	v.field.Unload()
}
