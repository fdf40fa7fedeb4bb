package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"
)

// evalLog appends one CSV row per evaluation, prints progress with an ETA,
// and remembers the best parameters seen.
type evalLog struct {
	file      *os.File
	w         *csv.Writer
	maxEvals  int
	totalFood int

	start       time.Time
	count       int
	bestFitness float64
	best        []float64
}

func newEvalLog(path string, params *ParamVector, maxEvals, totalFood int) (*evalLog, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	w := csv.NewWriter(f)

	header := []string{"eval", "fitness", "eaten", "quality"}
	for _, spec := range params.Specs {
		header = append(header, spec.Name)
	}
	if err := w.Write(header); err != nil {
		f.Close()
		return nil, err
	}

	return &evalLog{
		file:        f,
		w:           w,
		maxEvals:    maxEvals,
		totalFood:   totalFood,
		start:       time.Now(),
		bestFitness: 1e9,
	}, nil
}

// Record logs one evaluation of the clamped parameter values.
func (l *evalLog) Record(fitness float64, values []float64, eaten, quality float64) {
	l.count++
	if fitness < l.bestFitness {
		l.bestFitness = fitness
		l.best = append(l.best[:0], values...)
	}

	row := []string{
		strconv.Itoa(l.count),
		strconv.FormatFloat(fitness, 'f', 6, 64),
		strconv.FormatFloat(eaten, 'f', 2, 64),
		strconv.FormatFloat(quality, 'f', 4, 64),
	}
	for _, v := range values {
		row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
	}
	l.w.Write(row)
	l.w.Flush()

	elapsed := time.Since(l.start)
	remaining := time.Duration(l.maxEvals-l.count) * (elapsed / time.Duration(l.count))
	fmt.Printf("Eval %d/%d: eaten=%.1f/%d quality=%.2f (best=%.3f) | elapsed: %s, ETA: %s\n",
		l.count, l.maxEvals, eaten, l.totalFood, quality, l.bestFitness,
		formatDuration(elapsed), formatDuration(remaining))
}

// Close flushes and closes the log file.
func (l *evalLog) Close() error {
	l.w.Flush()
	if err := l.w.Error(); err != nil {
		l.file.Close()
		return err
	}
	return l.file.Close()
}

// formatDuration formats a duration as 1h02m03s, or 2m03s under an hour.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}
