// Package telemetry provides window statistics, timing, and file output for
// the simulation.
package telemetry

import "log/slog"

// EventType identifies telemetry events.
type EventType string

const (
	EventReach      EventType = "reach"      // A nucleus reached a food for the first time
	EventSaturation EventType = "saturation" // A food exceeded its visitor threshold
	EventSpawn      EventType = "spawn"      // A batch of nuclei was created
)

// Event represents a single telemetry event.
type Event struct {
	Type EventType `csv:"type"`
	Tick int32     `csv:"tick"`

	// Optional fields depending on event type
	NucleusID uint32  `csv:"nucleus_id"` // reach events
	FoodIndex int     `csv:"food_index"` // reach and saturation events; -1 otherwise
	X         float64 `csv:"x"`
	Y         float64 `csv:"y"`
	Count     int     `csv:"count"` // visitors (saturation) or batch size (spawn)
}

// NewReachEvent creates a reach event.
func NewReachEvent(tick int32, nucleusID uint32, foodIndex int, x, y float64) Event {
	return Event{
		Type:      EventReach,
		Tick:      tick,
		NucleusID: nucleusID,
		FoodIndex: foodIndex,
		X:         x,
		Y:         y,
	}
}

// NewSaturationEvent creates a saturation event.
func NewSaturationEvent(tick int32, foodIndex int, x, y float64, visitors int) Event {
	return Event{
		Type:      EventSaturation,
		Tick:      tick,
		FoodIndex: foodIndex,
		X:         x,
		Y:         y,
		Count:     visitors,
	}
}

// NewSpawnEvent creates a spawn event.
func NewSpawnEvent(tick int32, x, y float64, batch int) Event {
	return Event{
		Type:      EventSpawn,
		Tick:      tick,
		FoodIndex: -1,
		X:         x,
		Y:         y,
		Count:     batch,
	}
}

// LogEvent logs the event using slog at the given logger.
func (e Event) LogEvent(logger *slog.Logger) {
	logger.Info(string(e.Type),
		"tick", e.Tick,
		"food_index", e.FoodIndex,
		"x", e.X,
		"y", e.Y,
		"count", e.Count,
	)
}
