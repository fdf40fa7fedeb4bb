package ui

import (
	"fmt"
	"sort"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/slimemold/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title     string
	Nuclei    int
	LiveFood  int
	TotalFood int
	Batches   int
	Obstacles int
	Tick      int32
	Speed     int
	FPS       int32
	Paused    bool
}

// Lines returns the HUD text below the title.
func (d HUDData) Lines() []string {
	lines := []string{
		fmt.Sprintf("Nuclei: %d | Batches: %d | Food: %d/%d", d.Nuclei, d.Batches, d.LiveFood, d.TotalFood),
		fmt.Sprintf("Tick: %d | Speed: %dx | FPS: %d", d.Tick, d.Speed, d.FPS),
	}
	if d.Obstacles > 0 {
		lines[0] += fmt.Sprintf(" | Obstacles: %d", d.Obstacles)
	}
	return lines
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	r := h.renderer
	lines := data.Lines()

	height := int32(30+len(lines)*20) + r.Theme.LineHeight
	r.DrawPanel(5, 5, 380, height)

	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	y := int32(35)
	for _, line := range lines {
		rl.DrawText(line, 10, y, 16, rl.LightGray)
		y += 20
	}

	statusText := "Running"
	if data.Paused {
		statusText = "PAUSED"
	}
	rl.DrawText(statusText, 10, y, 16, rl.Yellow)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.DarkGray)
}

// PerfRow is one phase line in the performance panel.
type PerfRow struct {
	Phase string
	Avg   time.Duration
	Pct   float64
}

// PerfRows orders the phases of stats by average duration, slowest first.
func PerfRows(stats telemetry.PerfStats) []PerfRow {
	rows := make([]PerfRow, 0, len(stats.PhaseAvg))
	for phase, avg := range stats.PhaseAvg {
		rows = append(rows, PerfRow{Phase: phase, Avg: avg, Pct: stats.PhasePct[phase]})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Avg != rows[j].Avg {
			return rows[i].Avg > rows[j].Avg
		}
		return rows[i].Phase < rows[j].Phase
	})
	return rows
}

// PerfPanel renders the step phase timings.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) {
	rows := PerfRows(stats)
	r := p.renderer

	r.DrawPanel(p.x-5, p.y-5, 260, int32(50+14*len(rows)))

	x := p.x
	y := p.y

	rl.DrawText("Step Performance", x, y, 16, rl.White)
	y += 20

	rl.DrawText(fmt.Sprintf("Tick: %s (%.0f/s)", stats.AvgTickDuration.Round(time.Microsecond), stats.TicksPerSecond), x, y, 14, rl.Yellow)
	y += 16

	for _, row := range rows {
		color := rl.LightGray
		if row.Pct > 50 {
			color = rl.Red
		} else if row.Pct > 25 {
			color = rl.Orange
		}

		rl.DrawText(
			fmt.Sprintf("%-10s %8s %5.1f%%", row.Phase, row.Avg.Round(time.Microsecond), row.Pct),
			x, y, 12, color,
		)
		y += 14
	}
}
