package tui

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/slimemold/config"
	"github.com/pthm-cable/slimemold/game"
)

func newTestViewer(t *testing.T) (*Viewer, tcell.SimulationScreen, *game.Game) {
	t.Helper()

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	g, err := game.NewGameWithOptions(game.Options{
		Seed:   3,
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("NewGameWithOptions: %v", err)
	}
	g.AddConfiguredFood()

	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 21)

	return NewViewer(screen, g, nil), screen, g
}

// cellRune returns the rune shown at (x, y).
func cellRune(screen tcell.SimulationScreen, x, y int) rune {
	cells, w, _ := screen.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

func TestDensityGlyph(t *testing.T) {
	tests := []struct {
		n, peak int
		want    rune
	}{
		{0, 10, ' '},
		{1, 0, ' '},
		{1, 1, '@'},
		{1, 9, '.'},
		{5, 9, '+'},
		{9, 9, '@'},
		{12, 9, '@'},
	}
	for _, tt := range tests {
		if got := DensityGlyph(tt.n, tt.peak); got != tt.want {
			t.Errorf("DensityGlyph(%d, %d) = %q, want %q", tt.n, tt.peak, got, tt.want)
		}
	}
}

func TestViewerDrawsFoodAndStatus(t *testing.T) {
	v, screen, _ := newTestViewer(t)

	if cols, rows := v.Size(); cols != 40 || rows != 20 {
		t.Fatalf("Size() = (%d, %d), want (40, 20)", cols, rows)
	}

	v.Draw()

	// Food at (210, 431) lands in cell (10, 10) on a 20x40 unit lattice.
	if r := cellRune(screen, 10, 10); r != glyphFood {
		t.Errorf("cell (10,10) = %q, want %q", r, glyphFood)
	}
	// Nothing spawned yet; the pending spawn point is the centre.
	if r := cellRune(screen, 20, 10); r != glyphSpawn {
		t.Errorf("cell (20,10) = %q, want %q", r, glyphSpawn)
	}

	var status strings.Builder
	for x := 0; x < 40; x++ {
		status.WriteRune(cellRune(screen, x, 20))
	}
	if !strings.HasPrefix(status.String(), " tick 0 | nuclei 0 | food 12/12") {
		t.Errorf("status row = %q", status.String())
	}
}

func TestViewerDrawsNuclei(t *testing.T) {
	v, screen, g := newTestViewer(t)

	v.Advance()
	v.Draw()

	if g.NucleusCount() != 50 {
		t.Fatalf("nuclei = %d, want 50", g.NucleusCount())
	}

	// The whole batch sits within a unit of the centre, so the busiest
	// cell shows the top of the ramp.
	found := false
	for y := 0; y < 20 && !found; y++ {
		for x := 0; x < 40; x++ {
			if cellRune(screen, x, y) == '@' {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("no cell shows the peak density glyph")
	}
}

func TestViewerHandleEvent(t *testing.T) {
	v, _, g := newTestViewer(t)

	if !v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)) {
		t.Fatal("space should not quit")
	}
	if !g.Paused() {
		t.Error("space should pause")
	}

	v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, '.', tcell.ModNone))
	if g.StepsPerUpdate() != 2 {
		t.Errorf("steps per update = %d, want 2", g.StepsPerUpdate())
	}

	if !strings.Contains(v.StatusLine(), "PAUSED") {
		t.Errorf("status line %q should show PAUSED", v.StatusLine())
	}

	if v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q should quit")
	}
	if v.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("escape should quit")
	}
}
