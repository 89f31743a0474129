// Package components defines ECS components for chef agents.
package components

// State is a chef's behavioral state. A chef is in exactly one state per tick.
type State uint8

const (
	StateIdle State = iota
	StateWaiting
	StateGoingToFridge
	StateGoingToBoard
	StateCutting
	StateReadyToPlate
	StateGoingToPlating
	StatePlating
	StateReadyToDeliver
	StateGoingToDelivery
)

// String returns the snake_case state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWaiting:
		return "waiting"
	case StateGoingToFridge:
		return "going_to_fridge"
	case StateGoingToBoard:
		return "going_to_board"
	case StateCutting:
		return "cutting"
	case StateReadyToPlate:
		return "ready_to_plate"
	case StateGoingToPlating:
		return "going_to_plating"
	case StatePlating:
		return "plating"
	case StateReadyToDeliver:
		return "ready_to_deliver"
	case StateGoingToDelivery:
		return "going_to_delivery"
	}
	return "unknown"
}

// HeldKind discriminates what a chef is carrying.
type HeldKind uint8

const (
	HeldNone HeldKind = iota
	HeldIngredient
	HeldDish
)

// Held is the item in a chef's hands. Ingredient is the type code and is
// only meaningful when Kind is HeldIngredient.
type Held struct {
	Kind       HeldKind
	Ingredient string
}

// Carrying reports whether the chef holds anything.
func (h Held) Carrying() bool {
	return h.Kind != HeldNone
}

// Position is a chef's world position.
type Position struct {
	X, Y float64
}

// Target is the point a chef is currently moving toward.
type Target struct {
	X, Y float64
}

// Chef holds chef-specific agent state.
type Chef struct {
	ID    int
	Name  string
	Speed float64 // World units per second

	State State
	Held  Held

	// Chopping; ChopType is empty when not chopping
	ChopType  string
	ChopStart float64 // Sim seconds when chopping began

	// Plating
	Plating    bool
	PlateStart float64

	// Soft positive-feedback reward: rises on each delivery, capped,
	// shortens preparation time.
	Motivation float64

	// Per-chef score ledger
	Score     int
	Delivered int
}

// Chopping reports whether the chef is mid-chop.
func (c *Chef) Chopping() bool {
	return c.ChopType != ""
}
