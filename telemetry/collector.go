package telemetry

// Collector accumulates events within tick windows and produces WindowStats.
type Collector struct {
	windowTicks int32

	// Current window tracking
	windowStartTick int32

	// Event counters for current window
	reaches     int
	saturations int
	spawned     int
}

// NewCollector creates a new stats collector flushing every windowTicks ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowTicks: int32(windowTicks)}
}

// Record counts an event.
func (c *Collector) Record(e Event) {
	switch e.Type {
	case EventReach:
		c.reaches++
	case EventSaturation:
		c.saturations++
	case EventSpawn:
		c.spawned += e.Count
	}
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// Population holds the state sampled at window end.
type Population struct {
	Nuclei      int
	LiveFood    int
	TotalFood   int
	TrailPoints int
	FoodDist    []float64 // Per-nucleus distance to the nearest live food
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32, pop Population) WindowStats {
	mean, std, p50, maxDist := ComputeDistanceStats(pop.FoodDist)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,

		Nuclei:      pop.Nuclei,
		LiveFood:    pop.LiveFood,
		TotalFood:   pop.TotalFood,
		TrailPoints: pop.TrailPoints,

		Reaches:     c.reaches,
		Saturations: c.saturations,
		Spawned:     c.spawned,

		FoodDistMean: mean,
		FoodDistStd:  std,
		FoodDistP50:  p50,
		FoodDistMax:  maxDist,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.reaches = 0
	c.saturations = 0
	c.spawned = 0

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowTicks
}
