package telemetry

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/pthm-cable/slimemold/components"
)

// PlotData is everything the trail plot draws.
type PlotData struct {
	Width, Height float64
	Trails        []TrailSet
	Foods         []components.Point
	Obstacles     []components.NonAttractor
}

var (
	trailColor    = drawing.ColorFromHex("c0c0c0")
	obstacleColor = drawing.Color{R: 220, G: 30, B: 30, A: 180}
)

// ringSegments is the polygon resolution of obstacle radius rings.
const ringSegments = 48

func ring(center components.Point, radius float64) (xs, ys []float64) {
	xs = make([]float64, ringSegments+1)
	ys = make([]float64, ringSegments+1)
	for i := 0; i <= ringSegments; i++ {
		a := 2 * math.Pi * float64(i) / ringSegments
		xs[i] = center.X + radius*math.Cos(a)
		ys[i] = center.Y + radius*math.Sin(a)
	}
	return xs, ys
}

// RenderPlot draws trails, food and obstacles as a PNG. The y axis runs
// downward so the picture matches the simulation's screen coordinates.
func RenderPlot(w io.Writer, data PlotData, pixels int) error {
	var series []chart.Series

	for _, t := range data.Trails {
		if len(t.Points) < 2 {
			continue
		}
		xs := make([]float64, len(t.Points))
		ys := make([]float64, len(t.Points))
		for i, p := range t.Points {
			xs[i], ys[i] = p.X, p.Y
		}
		series = append(series, chart.ContinuousSeries{
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeColor: trailColor, StrokeWidth: 1.0},
		})
	}

	for _, o := range data.Obstacles {
		xs, ys := ring(o.Location, o.Radius)
		series = append(series, chart.ContinuousSeries{
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor:     obstacleColor,
				StrokeWidth:     1.0,
				StrokeDashArray: []float64{4, 4},
			},
		})
	}

	if len(data.Foods) > 0 {
		xs := make([]float64, len(data.Foods))
		ys := make([]float64, len(data.Foods))
		for i, f := range data.Foods {
			xs[i], ys[i] = f.X, f.Y
		}
		series = append(series, chart.ContinuousSeries{
			Name:    "food",
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    4,
				DotColor:    drawing.ColorBlack,
			},
		})
	}

	if len(series) == 0 {
		return errors.New("plot: nothing to draw")
	}

	graph := chart.Chart{
		Width:  pixels,
		Height: pixels,
		XAxis: chart.XAxis{
			Style: chart.Style{FontSize: 8.0},
			Range: &chart.ContinuousRange{Min: 0, Max: data.Width},
		},
		YAxis: chart.YAxis{
			Style: chart.Style{FontSize: 8.0},
			Range: &chart.ContinuousRange{Min: 0, Max: data.Height, Descending: true},
		},
		Series: series,
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("rendering plot: %w", err)
	}
	return nil
}

// WritePlot renders the plot to trails.png in the output directory.
func (om *OutputManager) WritePlot(data PlotData, pixels int) error {
	if om == nil {
		return nil
	}
	f, err := os.Create(om.Path("trails.png"))
	if err != nil {
		return fmt.Errorf("creating trails.png: %w", err)
	}
	if err := RenderPlot(f, data, pixels); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
