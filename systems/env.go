// Package systems implements the per-tick agent logic: the behavior
// state machine, movement, and station interactions.
package systems

import (
	"brigade/config"
	"brigade/kitchen"
	"brigade/orders"
	"brigade/stock"
)

// Env bundles the shared kitchen state a chef's update reads and writes.
// All cross-agent mutation goes through Book and Stock; chefs never touch
// each other's private state.
type Env struct {
	Book   *orders.Book
	Stock  *stock.Stock
	Layout *kitchen.Layout

	PrepTimes       map[string]float64
	PlatingDuration float64
	ArriveRadius    float64
	DT              float64
	MotivationGain  float64
	MotivationMax   float64

	// Set by the coordinator under the shared-order policy when another
	// chef holds the claim; forces the waiting state instead of idle.
	Waiting bool

	Now float64
}

// NewEnv builds the per-tick environment from config and collaborators.
// The Waiting flag and Now are set by the coordinator each tick.
func NewEnv(cfg *config.Config, book *orders.Book, st *stock.Stock, layout *kitchen.Layout) *Env {
	prep := make(map[string]float64, len(cfg.Ingredients))
	for t, ing := range cfg.Ingredients {
		prep[t] = ing.PrepTime
	}
	return &Env{
		Book:            book,
		Stock:           st,
		Layout:          layout,
		PrepTimes:       prep,
		PlatingDuration: cfg.Plating.Duration,
		ArriveRadius:    cfg.Movement.ArriveRadius,
		DT:              cfg.Physics.DT,
		MotivationGain:  cfg.Motivation.GainPerDelivery,
		MotivationMax:   cfg.Motivation.Max,
	}
}

// PrepDuration returns the chopping time for an ingredient, shortened by
// the chef's motivation: duration * (1 - motivation/200).
func (e *Env) PrepDuration(ingredientType string, motivation float64) float64 {
	base, ok := e.PrepTimes[ingredientType]
	if !ok {
		base = 1.5
	}
	return base * (1 - motivation/200)
}
