// Package main provides CMA-ES optimization for slime mold colony parameters.
package main

import (
	"math"

	"github.com/pthm-cable/slimemold/config"
)

// ParamSpec defines a single optimizable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
	Integer bool    // Rounded before use
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of optimizable parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			// Forces
			{Name: "force_constant", Path: "forces.force_constant", Min: 1, Max: 50, Default: 10},
			// Colony
			{Name: "num_nuclei", Path: "colony.num_nuclei", Min: 10, Max: 150, Default: 50, Integer: true},
			{Name: "num_cells_to_reach_oats", Path: "colony.num_cells_to_reach_oats", Min: 1, Max: 30, Default: 5, Integer: true},
			{Name: "reach_distance", Path: "colony.reach_distance", Min: 5, Max: 25, Default: 10},
			{Name: "speed", Path: "colony.speed", Min: 0.2, Max: 2.0, Default: 0.5},
			// Obstacles (ignored unless obstacles are placed)
			{Name: "obstacle_strength", Path: "obstacles.default_strength", Min: 1, Max: 60, Default: 15},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds, rounding integer parameters.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		val := math.Min(math.Max(v[i], spec.Min), spec.Max)
		if spec.Integer {
			val = math.Round(val)
		}
		clamped[i] = val
	}
	return clamped
}

// ApplyToConfig applies parameter values to a Config struct.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)

	// Order must match Specs order
	cfg.Forces.ForceConstant = clamped[0]
	cfg.Colony.NumNuclei = int(clamped[1])
	cfg.Colony.NumCellsToReachOats = int(clamped[2])
	cfg.Colony.ReachDistance = clamped[3]
	cfg.Colony.Speed = clamped[4]
	cfg.Obstacles.DefaultStrength = clamped[5]
}

// ExtractFromConfig extracts current parameter values from a Config struct.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	return []float64{
		cfg.Forces.ForceConstant,
		float64(cfg.Colony.NumNuclei),
		float64(cfg.Colony.NumCellsToReachOats),
		cfg.Colony.ReachDistance,
		cfg.Colony.Speed,
		cfg.Obstacles.DefaultStrength,
	}
}
