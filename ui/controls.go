package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/slimemold/telemetry"
)

// ControlsPanel renders the left-side controls panel with overlay toggles.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		visible:  false,
	}
}

// SetVisible shows or hides the panel.
func (c *ControlsPanel) SetVisible(visible bool) {
	c.visible = visible
}

// IsVisible returns whether the panel is shown.
func (c *ControlsPanel) IsVisible() bool {
	return c.visible
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// Draw renders the controls panel.
func (c *ControlsPanel) Draw(overlays *OverlayRegistry) int32 {
	if !c.visible {
		return c.y
	}

	r := c.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight

	// Calculate panel height based on content
	categories := overlays.Categories()
	totalItems := 0
	for _, cat := range categories {
		totalItems += len(overlays.ByCategory(cat)) + 1 // +1 for category header
	}
	panelHeight := int32(totalItems)*lineHeight + padding*3 + lineHeight // Extra for title

	// Draw panel background
	r.DrawPanel(c.x, c.y, c.width, panelHeight)

	y := c.y + padding

	// Title
	rl.DrawText("Overlays", c.x+padding, y, 16, rl.White)
	y += lineHeight + 4

	// Draw overlays by category
	for _, category := range categories {
		// Category header
		catLabel := categoryLabel(category)
		rl.DrawText(catLabel, c.x+padding, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
		y += lineHeight

		// Overlays in this category
		for _, desc := range overlays.ByCategory(category) {
			enabled := overlays.IsEnabled(desc.ID)
			c.drawToggle(c.x+padding, y, desc, enabled, c.width-padding*2)
			y += lineHeight
		}

		y += 4 // Gap between categories
	}

	return y
}

// drawToggle draws a single overlay toggle line.
func (c *ControlsPanel) drawToggle(x, y int32, desc OverlayDescriptor, enabled bool, width int32) {
	r := c.renderer

	// Status indicator
	statusColor := rl.Color{R: 80, G: 80, B: 80, A: 255}
	if enabled {
		statusColor = rl.Color{R: 100, G: 200, B: 100, A: 255}
	}
	rl.DrawRectangle(x, y+2, 8, 8, statusColor)

	// Name
	nameColor := r.Theme.LabelColor
	if enabled {
		nameColor = rl.White
	}
	rl.DrawText(desc.Name, x+14, y, r.Theme.FontSize, nameColor)

	// Key binding (right aligned)
	if desc.KeyLabel != "" {
		keyText := fmt.Sprintf("[%s]", desc.KeyLabel)
		keyWidth := rl.MeasureText(keyText, r.Theme.FontSize)
		rl.DrawText(keyText, x+width-keyWidth, y, r.Theme.FontSize, rl.Color{R: 150, G: 150, B: 150, A: 255})
	}
}

// categoryLabel returns a display label for a category.
func categoryLabel(cat string) string {
	switch cat {
	case "colony":
		return "Colony"
	case "field":
		return "Field"
	case "debug":
		return "Debug"
	default:
		return cat
	}
}

// QuickStatsPanel renders the most recent telemetry window.
type QuickStatsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewQuickStatsPanel creates a new quick stats panel.
func NewQuickStatsPanel(x, y, width int32) *QuickStatsPanel {
	return &QuickStatsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the panel position.
func (q *QuickStatsPanel) SetPosition(x, y int32) {
	q.x = x
	q.y = y
}

// Draw renders the quick stats panel. A zero window means no window has
// been flushed yet.
func (q *QuickStatsPanel) Draw(stats telemetry.WindowStats) int32 {
	r := q.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight

	panelHeight := lineHeight*7 + padding*2
	r.DrawPanel(q.x, q.y, q.width, panelHeight)

	y := q.y + padding
	x := q.x + padding

	rl.DrawText("Last Window", x, y, 14, rl.White)
	y += lineHeight + 2

	if stats.WindowEndTick == 0 {
		rl.DrawText("waiting for data", x, y, r.Theme.FontSize, r.Theme.LabelColor)
		return y + lineHeight
	}

	y = r.DrawLabelValue(x, y, "Ticks", fmt.Sprintf("%d-%d", stats.WindowStartTick, stats.WindowEndTick))
	y = r.DrawLabelValue(x, y, "Reaches", fmt.Sprintf("%d", stats.Reaches))
	y = r.DrawLabelValue(x, y, "Saturations", fmt.Sprintf("%d", stats.Saturations))
	y = r.DrawLabelValue(x, y, "Food dist", fmt.Sprintf("%.1f +/- %.1f", stats.FoodDistMean, stats.FoodDistStd))
	y = r.DrawLabelValue(x, y, "Dist p50/max", fmt.Sprintf("%.1f / %.1f", stats.FoodDistP50, stats.FoodDistMax))

	return y
}

// FoodRow is one food source in the food panel.
type FoodRow struct {
	Index   int
	Reached int
	Active  bool
}

// FoodPanel lists food sources with their visitor counts against the
// saturation threshold.
type FoodPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	maxRows  int
}

// NewFoodPanel creates a new food panel.
func NewFoodPanel(x, y, width int32, maxRows int) *FoodPanel {
	return &FoodPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		maxRows:  maxRows,
	}
}

// SetPosition updates the panel position.
func (f *FoodPanel) SetPosition(x, y int32) {
	f.x = x
	f.y = y
}

// Draw renders the food panel.
func (f *FoodPanel) Draw(rows []FoodRow, threshold int) int32 {
	r := f.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight

	n := len(rows)
	if n > f.maxRows {
		n = f.maxRows
	}
	panelHeight := int32(n)*(lineHeight+2) + lineHeight + padding*2 + 2
	r.DrawPanel(f.x, f.y, f.width, panelHeight)

	y := f.y + padding
	y = r.DrawSectionHeader(f.x+padding, y, "Food")
	y += 2

	for _, row := range rows[:n] {
		label := fmt.Sprintf("#%d", row.Index)
		if !row.Active {
			label += " (eaten)"
		}
		y = r.DrawProgress(f.x+padding, y, label, row.Reached, threshold, f.width-padding*2)
	}
	return y
}
