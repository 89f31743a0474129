package systems

import "brigade/orders"

// EventKind identifies what happened during a chef's update.
type EventKind uint8

const (
	EventPickup EventKind = iota
	EventPickupMiss
	EventChopStarted
	EventChopFinished
	EventPlatingStarted
	EventPlated
	EventDelivered
)

// String returns the snake_case event name for logging.
func (k EventKind) String() string {
	switch k {
	case EventPickup:
		return "pickup"
	case EventPickupMiss:
		return "pickup_miss"
	case EventChopStarted:
		return "chop_started"
	case EventChopFinished:
		return "chop_finished"
	case EventPlatingStarted:
		return "plating_started"
	case EventPlated:
		return "plated"
	case EventDelivered:
		return "delivered"
	}
	return "unknown"
}

// Event is a notable outcome of a chef's update, surfaced so the caller
// can score, log, and count without the systems knowing about any of that.
type Event struct {
	Kind   EventKind
	ChefID int
	Item   string // Ingredient type or dish name, when relevant

	// Set only for EventDelivered.
	Completion *orders.CompletionRecord
}
