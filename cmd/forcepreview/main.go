// Force field preview tool - interactive food layout editor with a live
// attraction heatmap.
//
// Usage: go run ./cmd/forcepreview [-config path] [-out forcegrid.csv]
//
// Left click adds food, right click removes the nearest food.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/mat"

	"github.com/pthm-cable/slimemold/components"
	"github.com/pthm-cable/slimemold/config"
	"github.com/pthm-cable/slimemold/renderer"
	"github.com/pthm-cable/slimemold/systems"
	"github.com/pthm-cable/slimemold/telemetry"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 600
	panelWidth   = windowWidth - previewSize - 30
)

// PreviewParams holds the tunable field parameters.
type PreviewParams struct {
	ForceConstant float32
	Stride        int
	ShowObstacles bool
	WithRepulsion bool
}

func main() {
	configPath := flag.String("config", "", "Path to config file (empty = embedded defaults)")
	outPath := flag.String("out", "forcegrid.csv", "CSV path for the Export button")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	worldW, worldH := cfg.Derived.WorldW, cfg.Derived.WorldH

	defaults := PreviewParams{
		ForceConstant: float32(cfg.Forces.ForceConstant),
		Stride:        cfg.Grid.Stride,
		ShowObstacles: true,
	}
	params := defaults

	foods := configuredFoods(cfg)
	obstacles := configuredObstacles(cfg)

	rl.InitWindow(windowWidth, windowHeight, "Force Field Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	var texture rl.Texture2D
	var texW, texH int
	defer func() {
		if texW > 0 {
			rl.UnloadTexture(texture)
		}
	}()

	scale := float32(previewSize) / float32(max(worldW, worldH))
	status := ""
	needsRegen := true

	for !rl.WindowShouldClose() {
		// Mouse editing inside the preview
		mouse := rl.GetMousePosition()
		inPreview := mouse.X >= 10 && mouse.Y >= 10 &&
			mouse.X < 10+float32(worldW)*scale && mouse.Y < 10+float32(worldH)*scale
		if inPreview {
			p := components.Point{X: float64((mouse.X - 10) / scale), Y: float64((mouse.Y - 10) / scale)}
			if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
				foods = append(foods, components.NewFood(math.Round(p.X), math.Round(p.Y)))
				needsRegen = true
			}
			if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
				if idx, _ := systems.NearestFood(p, foods, false); idx != components.NoIndex {
					foods = append(foods[:idx], foods[idx+1:]...)
					needsRegen = true
				}
			}
		}

		var grid *mat.Dense
		if needsRegen {
			grid = sampleField(foods, obstacles, worldW, worldH, params)
			if grid != nil {
				rows, cols := grid.Dims()
				if rows != texH || cols != texW {
					if texW > 0 {
						rl.UnloadTexture(texture)
					}
					img := rl.GenImageColor(cols, rows, rl.Black)
					texture = rl.LoadTextureFromImage(img)
					rl.UnloadImage(img)
					texW, texH = cols, rows
				}
				rl.UpdateTexture(texture, renderer.HeatmapPixels(grid, 255))
			}
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Draw preview
		previewW := float32(worldW) * scale
		previewH := float32(worldH) * scale
		if len(foods) > 0 && texW > 0 {
			rl.DrawTexturePro(
				texture,
				rl.Rectangle{X: 0, Y: 0, Width: float32(texW), Height: float32(texH)},
				rl.Rectangle{X: 10, Y: 10, Width: float32(texW*params.Stride) * scale, Height: float32(texH*params.Stride) * scale},
				rl.Vector2{X: 0, Y: 0},
				0,
				rl.White,
			)
		} else {
			rl.DrawText("Click to add food", 10+int32(previewW)/2-80, 10+int32(previewH)/2, 20, rl.Gray)
		}
		rl.DrawRectangleLines(10, 10, int32(previewW), int32(previewH), rl.DarkGray)

		for i := range foods {
			x, y := 10+float32(foods[i].Location.X)*scale, 10+float32(foods[i].Location.Y)*scale
			rl.DrawCircleV(rl.Vector2{X: x, Y: y}, 4, rl.Black)
		}
		if params.ShowObstacles {
			for i := range obstacles {
				o := &obstacles[i]
				c := rl.Vector2{X: 10 + float32(o.Location.X)*scale, Y: 10 + float32(o.Location.Y)*scale}
				rl.DrawCircleV(c, 3, rl.Red)
				rl.DrawCircleLinesV(c, float32(o.Radius)*scale, rl.Red)
			}
		}

		statsY := int32(previewH + 25)
		rl.DrawText(fmt.Sprintf("Food: %d  Grid: %dx%d", len(foods), texH, texW), 15, statsY, 16, rl.DarkGray)
		if status != "" {
			rl.DrawText(status, 15, statsY+20, 16, rl.DarkGray)
		}

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Force Field Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		rl.DrawText("Force constant (attraction scale)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newK := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"1", "50",
			params.ForceConstant, 1, 50,
		)
		rl.DrawText(fmt.Sprintf("%.1f", params.ForceConstant), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newK != params.ForceConstant {
			params.ForceConstant = newK
			needsRegen = true
		}
		panelY += 35

		rl.DrawText("Grid stride (sample spacing)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newStride := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"2", "40",
			float32(params.Stride), 2, 40,
		)
		rl.DrawText(fmt.Sprintf("%d", params.Stride), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if int(newStride) != params.Stride {
			params.Stride = int(newStride)
			needsRegen = true
		}
		panelY += 45

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(params.ShowObstacles, "Hide Obstacles", "Show Obstacles")) {
			params.ShowObstacles = !params.ShowObstacles
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, toggleText(params.WithRepulsion, "Attraction Only", "Add Repulsion")) {
			params.WithRepulsion = !params.WithRepulsion
			needsRegen = true
		}
		panelY += 45

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Clear Food") {
			foods = foods[:0]
			needsRegen = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaults
			foods = configuredFoods(cfg)
			needsRegen = true
		}
		panelY += 45

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 250, Height: 30}, "Export CSV") {
			status = exportGrid(*outPath, foods, worldW, worldH, params, logger)
		}
		panelY += 55

		// Output YAML
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		yamlLines := strings.Split(layoutYAML(foods, params), "\n")
		for i, line := range yamlLines {
			if i >= 18 {
				rl.DrawText("  ...", int32(panelX), int32(panelY), 14, rl.Gray)
				break
			}
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		// Instructions
		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(layoutYAML(foods, params))
			status = "YAML copied"
		}

		rl.EndDrawing()
	}
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}

func configuredFoods(cfg *config.Config) []components.Food {
	foods := make([]components.Food, 0, len(cfg.Food.Positions))
	for _, p := range cfg.Food.Positions {
		if len(p) >= 2 {
			foods = append(foods, components.NewFood(p[0], p[1]))
		}
	}
	return foods
}

func configuredObstacles(cfg *config.Config) []components.NonAttractor {
	obstacles := make([]components.NonAttractor, 0, len(cfg.Obstacles.Positions))
	for _, p := range cfg.Obstacles.Positions {
		strength := cfg.Obstacles.DefaultStrength
		if len(p) >= 3 {
			strength = p[2]
		}
		if len(p) >= 2 {
			obstacles = append(obstacles, components.NewNonAttractor(p[0], p[1], strength))
		}
	}
	return obstacles
}

// sampleField samples the attraction grid and optionally adds the
// repulsion magnitude of every obstacle in range. Returns nil without food.
func sampleField(foods []components.Food, obstacles []components.NonAttractor, w, h int, params PreviewParams) *mat.Dense {
	grid, err := systems.SampleForceGrid(foods, w, h, params.Stride, float64(params.ForceConstant))
	if err != nil {
		return nil
	}
	if !params.WithRepulsion {
		return grid
	}

	rows, cols := grid.Dims()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			p := components.Point{X: float64(c * params.Stride), Y: float64(r * params.Stride)}
			for i := range obstacles {
				if f, ok := systems.Repulsion(p, obstacles[i]); ok {
					grid.Set(r, c, grid.At(r, c)+f.Len())
				}
			}
		}
	}
	return grid
}

// exportGrid writes the attraction-only grid, matching what the simulation
// exports, and returns a status message.
func exportGrid(path string, foods []components.Food, w, h int, params PreviewParams, logger *slog.Logger) string {
	grid, err := systems.SampleForceGrid(foods, w, h, params.Stride, float64(params.ForceConstant))
	if err != nil {
		logger.Error("export failed", "error", err)
		return "Export failed: " + err.Error()
	}
	if err := telemetry.SaveForceGrid(path, grid); err != nil {
		logger.Error("export failed", "error", err)
		return "Export failed: " + err.Error()
	}
	logger.Info("force grid exported", "path", path)
	return "Exported " + path
}

func layoutYAML(foods []components.Food, params PreviewParams) string {
	var b strings.Builder
	fmt.Fprintf(&b, "forces:\n  force_constant: %.1f\ngrid:\n  stride: %d\nfood:\n  positions:", params.ForceConstant, params.Stride)
	for i := range foods {
		fmt.Fprintf(&b, "\n    - [%g, %g]", foods[i].Location.X, foods[i].Location.Y)
	}
	return b.String()
}
