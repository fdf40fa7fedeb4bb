package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OverlayID uniquely identifies an overlay.
type OverlayID string

// Standard overlay IDs.
const (
	OverlayTrails       OverlayID = "trails"
	OverlayForceField   OverlayID = "force_field"
	OverlayObstacleRing OverlayID = "obstacle_rings"
	OverlayNearestLinks OverlayID = "nearest_links"
	OverlaySpawnPulses  OverlayID = "spawn_pulses"
	OverlayFoodProgress OverlayID = "food_progress"
	OverlayDensity      OverlayID = "density"
	OverlayPerf         OverlayID = "perf"
)

// OverlayDescriptor defines an overlay that can be toggled.
type OverlayDescriptor struct {
	ID          OverlayID   // Unique identifier
	Name        string      // Display name
	Description string      // What this overlay shows
	Key         int32       // Keyboard key to toggle (0 = no key)
	KeyLabel    string      // Key label for display (e.g., "S", "V")
	Category    string      // Grouping (e.g., "colony", "field", "debug")
	Exclusive   []OverlayID // Other overlays to disable when this is enabled
}

// OverlayRegistry manages overlay state and metadata.
type OverlayRegistry struct {
	descriptors []OverlayDescriptor
	byID        map[OverlayID]OverlayDescriptor
	enabled     map[OverlayID]bool
	order       []OverlayID // Maintains insertion order for display
}

// NewOverlayRegistry creates a registry with default overlays.
func NewOverlayRegistry() *OverlayRegistry {
	reg := &OverlayRegistry{
		byID:    make(map[OverlayID]OverlayDescriptor),
		enabled: make(map[OverlayID]bool),
	}
	reg.registerDefaults()
	return reg
}

// registerDefaults adds standard overlays.
func (r *OverlayRegistry) registerDefaults() {
	// Colony overlays
	r.Register(OverlayDescriptor{
		ID:          OverlayTrails,
		Name:        "Trails",
		Description: "Draw the recorded path of every nucleus",
		Key:         rl.KeyT,
		KeyLabel:    "T",
		Category:    "colony",
	})

	r.Register(OverlayDescriptor{
		ID:          OverlayNearestLinks,
		Name:        "Nearest Food",
		Description: "Link each nucleus to the food it is attracted to",
		Key:         rl.KeyN,
		KeyLabel:    "N",
		Category:    "colony",
	})

	r.Register(OverlayDescriptor{
		ID:          OverlaySpawnPulses,
		Name:        "Spawn Pulses",
		Description: "Flash a ring where each batch spawns",
		Key:         rl.KeyP,
		KeyLabel:    "P",
		Category:    "colony",
	})

	r.Register(OverlayDescriptor{
		ID:          OverlayDensity,
		Name:        "Density",
		Description: "Shade cells by how many nuclei they hold",
		Key:         rl.KeyD,
		KeyLabel:    "D",
		Category:    "colony",
		Exclusive:   []OverlayID{OverlayForceField},
	})

	// Field overlays
	r.Register(OverlayDescriptor{
		ID:          OverlayForceField,
		Name:        "Force Field",
		Description: "Heatmap of attraction toward the nearest food",
		Key:         rl.KeyF,
		KeyLabel:    "F",
		Category:    "field",
		Exclusive:   []OverlayID{OverlayDensity},
	})

	r.Register(OverlayDescriptor{
		ID:          OverlayObstacleRing,
		Name:        "Obstacle Rings",
		Description: "Show the repulsion radius around each non-attractor",
		Key:         rl.KeyO,
		KeyLabel:    "O",
		Category:    "field",
	})

	r.Register(OverlayDescriptor{
		ID:          OverlayFoodProgress,
		Name:        "Food Progress",
		Description: "Label each food with its visitor count",
		Key:         rl.KeyV,
		KeyLabel:    "V",
		Category:    "field",
	})

	// Debug overlays
	r.Register(OverlayDescriptor{
		ID:          OverlayPerf,
		Name:        "Performance",
		Description: "Show per-phase step timings",
		Key:         rl.KeyM,
		KeyLabel:    "M",
		Category:    "debug",
	})
}

// Register adds an overlay to the registry.
func (r *OverlayRegistry) Register(desc OverlayDescriptor) {
	r.descriptors = append(r.descriptors, desc)
	r.byID[desc.ID] = desc
	r.order = append(r.order, desc.ID)
	r.enabled[desc.ID] = false
}

// Toggle switches an overlay on/off and handles exclusivity.
func (r *OverlayRegistry) Toggle(id OverlayID) bool {
	desc, ok := r.byID[id]
	if !ok {
		return false
	}

	newState := !r.enabled[id]
	r.enabled[id] = newState

	// If enabling, disable exclusive overlays
	if newState {
		for _, excl := range desc.Exclusive {
			r.enabled[excl] = false
		}
	}

	return newState
}

// SetEnabled explicitly sets an overlay's state.
func (r *OverlayRegistry) SetEnabled(id OverlayID, enabled bool) {
	desc, ok := r.byID[id]
	if !ok {
		return
	}

	r.enabled[id] = enabled

	// If enabling, disable exclusive overlays
	if enabled {
		for _, excl := range desc.Exclusive {
			r.enabled[excl] = false
		}
	}
}

// IsEnabled returns whether an overlay is active.
func (r *OverlayRegistry) IsEnabled(id OverlayID) bool {
	return r.enabled[id]
}

// Get returns an overlay descriptor by ID.
func (r *OverlayRegistry) Get(id OverlayID) (OverlayDescriptor, bool) {
	desc, ok := r.byID[id]
	return desc, ok
}

// All returns all registered overlays in registration order.
func (r *OverlayRegistry) All() []OverlayDescriptor {
	return r.descriptors
}

// ByCategory returns overlays filtered by category.
func (r *OverlayRegistry) ByCategory(category string) []OverlayDescriptor {
	var result []OverlayDescriptor
	for _, desc := range r.descriptors {
		if desc.Category == category {
			result = append(result, desc)
		}
	}
	return result
}

// Categories returns all unique categories in order.
func (r *OverlayRegistry) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, desc := range r.descriptors {
		if !seen[desc.Category] {
			seen[desc.Category] = true
			cats = append(cats, desc.Category)
		}
	}
	return cats
}

// HandleKeyPress checks if a key corresponds to an overlay toggle.
// Returns the overlay ID and new state if a toggle occurred.
func (r *OverlayRegistry) HandleKeyPress(key int32) (OverlayID, bool, bool) {
	for _, desc := range r.descriptors {
		if desc.Key == key {
			newState := r.Toggle(desc.ID)
			return desc.ID, newState, true
		}
	}
	return "", false, false
}

// EnabledOverlays returns a list of currently enabled overlay IDs.
func (r *OverlayRegistry) EnabledOverlays() []OverlayID {
	var result []OverlayID
	for _, id := range r.order {
		if r.enabled[id] {
			result = append(result, id)
		}
	}
	return result
}
