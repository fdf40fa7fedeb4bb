package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/slimemold/components"
	"github.com/pthm-cable/slimemold/config"
)

// FoodRecord is the final tally of one food source.
type FoodRecord struct {
	Index   int     `csv:"index"`
	X       float64 `csv:"x"`
	Y       float64 `csv:"y"`
	Active  bool    `csv:"active"`
	Reached int     `csv:"reached"`
}

// TrailPoint is one row of a trail file.
type TrailPoint struct {
	X float64 `csv:"x"`
	Y float64 `csv:"y"`
}

// TrailSet is the trail of one nucleus.
type TrailSet struct {
	ID     uint32
	Points []components.Point
}

// csvStream appends gocsv records to a file, writing the header once.
type csvStream struct {
	file          *os.File
	headerWritten bool
}

func openStream(dir, name string) (*csvStream, error) {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", name, err)
	}
	return &csvStream{file: f}, nil
}

func (s *csvStream) write(records any) error {
	if !s.headerWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, s.file); err != nil {
			return err
		}
		s.headerWritten = true
		return nil
	}
	return gocsv.MarshalWithoutHeaders(records, s.file)
}

func (s *csvStream) close() error {
	if s == nil || s.file == nil {
		return nil
	}
	return s.file.Close()
}

// OutputManager handles structured run output with CSV logging.
type OutputManager struct {
	dir       string
	telemetry *csvStream
	perf      *csvStream
	events    *csvStream
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	var err error
	if om.telemetry, err = openStream(dir, "telemetry.csv"); err != nil {
		return nil, err
	}
	if om.perf, err = openStream(dir, "perf.csv"); err != nil {
		om.Close()
		return nil, err
	}
	if om.events, err = openStream(dir, "events.csv"); err != nil {
		om.Close()
		return nil, err
	}

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteTelemetry writes a window stats record to telemetry.csv.
func (om *OutputManager) WriteTelemetry(stats WindowStats) error {
	if om == nil {
		return nil
	}
	if err := om.telemetry.write([]WindowStats{stats}); err != nil {
		return fmt.Errorf("writing telemetry: %w", err)
	}
	return nil
}

// WritePerf writes a performance stats record to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, windowEnd int32) error {
	if om == nil {
		return nil
	}
	if err := om.perf.write([]PerfStatsCSV{stats.ToCSV(windowEnd)}); err != nil {
		return fmt.Errorf("writing perf: %w", err)
	}
	return nil
}

// WriteEvents appends events to events.csv.
func (om *OutputManager) WriteEvents(events []Event) error {
	if om == nil || len(events) == 0 {
		return nil
	}
	if err := om.events.write(events); err != nil {
		return fmt.Errorf("writing events: %w", err)
	}
	return nil
}

// WriteFoods writes the final food tallies to foods.csv.
func (om *OutputManager) WriteFoods(foods []FoodRecord) error {
	if om == nil {
		return nil
	}
	f, err := os.Create(filepath.Join(om.dir, "foods.csv"))
	if err != nil {
		return fmt.Errorf("creating foods.csv: %w", err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&foods, f); err != nil {
		return fmt.Errorf("writing foods: %w", err)
	}
	return nil
}

// TrailFileName returns the file name used for a nucleus trail.
func TrailFileName(id uint32) string {
	return fmt.Sprintf("%d_Stem_Trail.csv", id)
}

// WriteTrails writes one x,y CSV per nucleus under trails/.
func (om *OutputManager) WriteTrails(trails []TrailSet) error {
	if om == nil {
		return nil
	}
	dir := filepath.Join(om.dir, "trails")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating trails directory: %w", err)
	}

	for _, t := range trails {
		rows := make([]TrailPoint, len(t.Points))
		for i, p := range t.Points {
			rows[i] = TrailPoint{X: p.X, Y: p.Y}
		}
		if err := writeTrailFile(filepath.Join(dir, TrailFileName(t.ID)), rows); err != nil {
			return err
		}
	}
	return nil
}

func writeTrailFile(path string, rows []TrailPoint) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating trail file: %w", err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&rows, f); err != nil {
		return fmt.Errorf("writing trail %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Path returns the path of a file inside the output directory.
func (om *OutputManager) Path(name string) string {
	if om == nil {
		return ""
	}
	return filepath.Join(om.dir, name)
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	for _, s := range []*csvStream{om.telemetry, om.perf, om.events} {
		if err := s.close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
