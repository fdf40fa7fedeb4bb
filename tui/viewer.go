// Package tui renders the simulation in a terminal with tcell.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/slimemold/components"
	"github.com/pthm-cable/slimemold/game"
	"github.com/pthm-cable/slimemold/systems"
	"github.com/pthm-cable/slimemold/telemetry"
)

// densityRamp shades cells from one nucleus up to the busiest cell.
var densityRamp = []rune(" .:-=+*#%@")

// Glyphs for domain features.
const (
	glyphFood     = 'O'
	glyphEaten    = 'o'
	glyphObstacle = 'X'
	glyphSpawn    = '+'
)

var (
	styleNuclei   = tcell.StyleDefault.Foreground(tcell.ColorPurple)
	styleFood     = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleEaten    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleObstacle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleSpawn    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
)

// DensityGlyph returns the glyph for a cell holding n nuclei when the
// busiest cell holds peak.
func DensityGlyph(n, peak int) rune {
	if n <= 0 || peak <= 0 {
		return densityRamp[0]
	}
	if n > peak {
		n = peak
	}
	steps := len(densityRamp) - 1
	level := (n*steps + peak - 1) / peak
	return densityRamp[level]
}

// Viewer draws a game onto a terminal screen. The bottom row holds the
// status line; the rest shows the domain stretched to fit.
type Viewer struct {
	screen tcell.Screen
	game   *game.Game
	chime  *Chime

	grid       *systems.OccupancyGrid
	cols, rows int
}

// NewViewer creates a viewer on an initialized screen. chime may be nil.
func NewViewer(screen tcell.Screen, g *game.Game, chime *Chime) *Viewer {
	v := &Viewer{
		screen: screen,
		game:   g,
		chime:  chime,
	}
	v.resize()
	return v
}

// resize rebuilds the cell lattice for the current screen size.
func (v *Viewer) resize() {
	w, h := v.screen.Size()
	v.cols = max(w, 1)
	v.rows = max(h-1, 1)
	v.grid = systems.NewOccupancyGrid(float64(v.game.Width()), float64(v.game.Height()), v.cols, v.rows)
}

// Size returns the domain area in cells.
func (v *Viewer) Size() (cols, rows int) {
	return v.cols, v.rows
}

// Draw renders one frame.
func (v *Viewer) Draw() {
	g := v.game
	v.screen.Clear()

	v.grid.Clear()
	v.grid.InsertAll(g.Positions())
	peak := v.grid.Max()
	for row := 0; row < v.rows; row++ {
		for col := 0; col < v.cols; col++ {
			if n := v.grid.Count(col, row); n > 0 {
				v.screen.SetContent(col, row, DensityGlyph(n, peak), nil, styleNuclei)
			}
		}
	}

	for _, f := range g.Foods() {
		if f.Active {
			v.put(f.Location, glyphFood, styleFood)
		} else {
			v.put(f.Location, glyphEaten, styleEaten)
		}
	}
	for _, o := range g.NonAttractors() {
		v.put(o.Location, glyphObstacle, styleObstacle)
	}
	if g.SpawnPending() {
		v.put(g.SpawnPoint(), glyphSpawn, styleSpawn)
	}

	v.drawStatus()
	v.screen.Show()
}

// put draws a glyph at the cell containing p, if any.
func (v *Viewer) put(p components.Point, r rune, style tcell.Style) {
	if col, row, ok := v.grid.Cell(p); ok {
		v.screen.SetContent(col, row, r, nil, style)
	}
}

// StatusLine returns the text of the bottom row.
func (v *Viewer) StatusLine() string {
	g := v.game
	live := 0
	foods := g.Foods()
	for _, f := range foods {
		if f.Active {
			live++
		}
	}
	state := ""
	if g.Paused() {
		state = " PAUSED"
	}
	return fmt.Sprintf(" tick %d | nuclei %d | food %d/%d | speed %dx%s | [space] pause [,/.] speed [q] quit",
		g.Tick(), g.NucleusCount(), live, len(foods), g.StepsPerUpdate(), state)
}

func (v *Viewer) drawStatus() {
	w, _ := v.screen.Size()
	line := []rune(v.StatusLine())
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(line) {
			r = line[x]
		}
		v.screen.SetContent(x, v.rows, r, nil, styleStatus)
	}
}

// HandleEvent applies one terminal event. Returns false when the user asked
// to quit.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				v.game.TogglePause()
			case ',':
				v.game.SetStepsPerUpdate(v.game.StepsPerUpdate() - 1)
			case '.':
				v.game.SetStepsPerUpdate(v.game.StepsPerUpdate() + 1)
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
		v.resize()
	}
	return true
}

// Advance runs one Update and chimes for every batch it spawned.
func (v *Viewer) Advance() {
	v.game.Update()
	for _, ev := range v.game.SpawnEvents() {
		if ev.Type == telemetry.EventSpawn && v.chime != nil {
			v.chime.Play()
		}
	}
}

// Run drives the game at one Update per frame until the user quits, ctx
// is done, or maxTicks is reached (0 = no limit).
func (v *Viewer) Run(ctx context.Context, maxTicks int32, frame time.Duration) error {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go v.screen.ChannelEvents(events, quit)

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			if ev == nil {
				return nil
			}
			if !v.HandleEvent(ev) {
				return nil
			}
			v.Draw()

		case <-ticker.C:
			v.Advance()
			v.Draw()
			if maxTicks > 0 && v.game.Tick() >= maxTicks {
				return nil
			}
		}
	}
}
