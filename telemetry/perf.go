package telemetry

import (
	"log/slog"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Step phases in execution order.
const (
	PhaseSpawn     = "spawn"
	PhaseForces    = "forces"
	PhaseMovement  = "movement"
	PhaseTrails    = "trails"
	PhaseTelemetry = "telemetry"
)

var phases = []string{PhaseSpawn, PhaseForces, PhaseMovement, PhaseTrails, PhaseTelemetry}

// phaseTiming is the time spent in one phase during one step.
type phaseTiming struct {
	name string
	dur  time.Duration
}

// stepSample is the timing of one step.
type stepSample struct {
	total  time.Duration
	phases []phaseTiming
}

// PerfCollector keeps step timings for the last windowSize steps.
type PerfCollector struct {
	now func() time.Time

	ring  []stepSample
	next  int
	count int

	cur        stepSample
	stepStart  time.Time
	phaseStart time.Time
	phase      string

	lastFrame time.Time
	frame     time.Duration
}

// NewPerfCollector creates a collector averaging over windowSize steps
// (60 when windowSize < 1).
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		now:  time.Now,
		ring: make([]stepSample, windowSize),
	}
}

// StartTick begins timing a step.
func (p *PerfCollector) StartTick() {
	p.stepStart = p.now()
	p.cur = stepSample{}
	p.phase = ""
}

// StartPhase closes the running phase, if any, and opens the named one.
func (p *PerfCollector) StartPhase(phase string) {
	now := p.now()
	p.closePhase(now)
	p.phaseStart = now
	p.phase = phase
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.phase == "" {
		return
	}
	d := now.Sub(p.phaseStart)
	for i := range p.cur.phases {
		if p.cur.phases[i].name == p.phase {
			p.cur.phases[i].dur += d
			return
		}
	}
	p.cur.phases = append(p.cur.phases, phaseTiming{name: p.phase, dur: d})
}

// EndTick closes the running phase and stores the step.
func (p *PerfCollector) EndTick() {
	now := p.now()
	p.closePhase(now)
	p.phase = ""
	p.cur.total = now.Sub(p.stepStart)

	p.ring[p.next] = p.cur
	p.next = (p.next + 1) % len(p.ring)
	if p.count < len(p.ring) {
		p.count++
	}
}

// RecordFrame marks a rendered frame. FPS derives from the last interval.
func (p *PerfCollector) RecordFrame() {
	now := p.now()
	if !p.lastFrame.IsZero() {
		p.frame = now.Sub(p.lastFrame)
	}
	p.lastFrame = now
}

// PerfStats summarizes the step timings in the window.
type PerfStats struct {
	AvgTickDuration time.Duration
	MinTickDuration time.Duration
	MaxTickDuration time.Duration
	P95TickDuration time.Duration

	// Per-phase mean duration and share of the mean step
	PhaseAvg map[string]time.Duration
	PhasePct map[string]float64

	TicksPerSecond float64

	FrameDuration time.Duration
	FPS           float64
}

// Stats summarizes the current window. Maps are never nil.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{
		PhaseAvg:      make(map[string]time.Duration),
		PhasePct:      make(map[string]float64),
		FrameDuration: p.frame,
	}
	if p.frame > 0 {
		s.FPS = float64(time.Second) / float64(p.frame)
	}
	if p.count == 0 {
		return s
	}

	totals := make([]float64, p.count)
	phaseSum := make(map[string]time.Duration)
	for i, sample := range p.ring[:p.count] {
		totals[i] = float64(sample.total)
		for _, ph := range sample.phases {
			phaseSum[ph.name] += ph.dur
		}
	}
	sort.Float64s(totals)

	mean := stat.Mean(totals, nil)
	s.AvgTickDuration = time.Duration(mean)
	s.MinTickDuration = time.Duration(totals[0])
	s.MaxTickDuration = time.Duration(totals[len(totals)-1])
	s.P95TickDuration = time.Duration(stat.Quantile(0.95, stat.Empirical, totals, nil))
	if mean > 0 {
		s.TicksPerSecond = float64(time.Second) / mean
	}

	for name, sum := range phaseSum {
		avg := sum / time.Duration(p.count)
		s.PhaseAvg[name] = avg
		if mean > 0 {
			s.PhasePct[name] = float64(avg) / mean * 100
		}
	}
	return s
}

// LogStats logs the summary at info level. Phases under 0.1% are omitted.
func (s PerfStats) LogStats() {
	attrs := []any{
		"avg_tick_us", s.AvgTickDuration.Microseconds(),
		"p95_tick_us", s.P95TickDuration.Microseconds(),
		"max_tick_us", s.MaxTickDuration.Microseconds(),
		"ticks_per_sec", int(s.TicksPerSecond),
	}
	if s.FPS > 0 {
		attrs = append(attrs, "fps", int(s.FPS))
	}
	for _, phase := range phases {
		if pct := s.PhasePct[phase]; pct > 0.1 {
			attrs = append(attrs, phase+"_pct", float64(int(pct*10))/10)
		}
	}
	slog.Info("perf", attrs...)
}

// LogValue implements slog.LogValuer.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_tick_us", s.AvgTickDuration.Microseconds()),
		slog.Int64("min_tick_us", s.MinTickDuration.Microseconds()),
		slog.Int64("p95_tick_us", s.P95TickDuration.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTickDuration.Microseconds()),
		slog.Float64("ticks_per_sec", s.TicksPerSecond),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Float64("fps", s.FPS))
	}
	for _, phase := range phases {
		if pct, ok := s.PhasePct[phase]; ok {
			attrs = append(attrs, slog.Float64(phase+"_pct", pct))
		}
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is one row of perf.csv.
type PerfStatsCSV struct {
	WindowEnd    int32   `csv:"window_end"`
	AvgTickUS    int64   `csv:"avg_tick_us"`
	MinTickUS    int64   `csv:"min_tick_us"`
	P95TickUS    int64   `csv:"p95_tick_us"`
	MaxTickUS    int64   `csv:"max_tick_us"`
	TicksPerSec  float64 `csv:"ticks_per_sec"`
	FPS          float64 `csv:"fps"`
	SpawnPct     float64 `csv:"spawn_pct"`
	ForcesPct    float64 `csv:"forces_pct"`
	MovementPct  float64 `csv:"movement_pct"`
	TrailsPct    float64 `csv:"trails_pct"`
	TelemetryPct float64 `csv:"telemetry_pct"`
}

// ToCSV flattens the summary for the window ending at windowEnd.
func (s PerfStats) ToCSV(windowEnd int32) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:    windowEnd,
		AvgTickUS:    s.AvgTickDuration.Microseconds(),
		MinTickUS:    s.MinTickDuration.Microseconds(),
		P95TickUS:    s.P95TickDuration.Microseconds(),
		MaxTickUS:    s.MaxTickDuration.Microseconds(),
		TicksPerSec:  s.TicksPerSecond,
		FPS:          s.FPS,
		SpawnPct:     s.PhasePct[PhaseSpawn],
		ForcesPct:    s.PhasePct[PhaseForces],
		MovementPct:  s.PhasePct[PhaseMovement],
		TrailsPct:    s.PhasePct[PhaseTrails],
		TelemetryPct: s.PhasePct[PhaseTelemetry],
	}
}
