// Package main provides CMA-ES optimization of kitchen parameters for
// maximum session score.
package main

import (
	"brigade/config"
)

// ParamSpec defines a single tunable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all tunable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of tunable parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			// Stock replenishment
			{Name: "restock_interval", Path: "stock.restock_interval", Min: 1.0, Max: 10.0, Default: 4.0},
			{Name: "low_water_mark", Path: "stock.low_water_mark", Min: 1, Max: 6, Default: 2},
			{Name: "spawn_delay", Path: "stock.spawn_delay", Min: 0.0, Max: 2.0, Default: 0.3},
			{Name: "initial_per_type", Path: "stock.initial_per_type", Min: 2, Max: 10, Default: 4},
			// Chefs (speed applied to every chef; arrive radius is locked
			// because Validate ties it to the per-tick step)
			{Name: "chef_speed", Path: "chefs[].speed", Min: 100, Max: 320, Default: 180},
			// Motivation feedback
			{Name: "motivation_gain", Path: "motivation.gain_per_delivery", Min: 0, Max: 20, Default: 4},
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

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		val := v[i]
		if val < spec.Min {
			val = spec.Min
		}
		if val > spec.Max {
			val = spec.Max
		}
		clamped[i] = val
	}
	return clamped
}

// ApplyToConfig applies parameter values to a Config struct.
// Order must match Specs order.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)
	i := 0

	cfg.Stock.RestockInterval = clamped[i]
	i++
	cfg.Stock.LowWaterMark = int(clamped[i])
	i++
	cfg.Stock.SpawnDelay = clamped[i]
	i++
	cfg.Stock.InitialPerType = int(clamped[i])
	i++

	speed := clamped[i]
	i++
	for j := range cfg.Chefs {
		cfg.Chefs[j].Speed = speed
	}
	// Keep Validate's arrive-radius invariant for high speeds.
	if minRadius := speed*cfg.Physics.DT + 1; cfg.Movement.ArriveRadius <= minRadius {
		cfg.Movement.ArriveRadius = minRadius
	}

	cfg.Motivation.GainPerDelivery = clamped[i]
}
