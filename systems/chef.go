package systems

import (
	"brigade/components"
	"brigade/kitchen"
)

// Decide advances a chef's timed work and picks its next state and
// target. Runs once per chef per tick, before movement. Timed work
// (chopping, plating) is checked first so a finished timer and the
// follow-up transition land in the same tick.
func Decide(env *Env, c *components.Chef, pos *components.Position, tgt *components.Target) []Event {
	var events []Event

	switch c.State {
	case components.StateCutting:
		if !c.Chopping() {
			// Chop context lost (order cancelled mid-chop); replan.
			c.State = components.StateIdle
			break
		}
		if env.Now-c.ChopStart < env.PrepDuration(c.ChopType, c.Motivation) {
			return events
		}
		finished := c.ChopType
		c.ChopType = ""
		env.Book.AddIngredient(c.ID, finished)
		events = append(events, Event{Kind: EventChopFinished, ChefID: c.ID, Item: finished})
		if env.Book.IsReady(c.ID) {
			c.State = components.StateReadyToPlate
		} else {
			c.State = components.StateIdle
		}

	case components.StatePlating:
		if env.Now-c.PlateStart < env.PlatingDuration {
			return events
		}
		c.Plating = false
		if !env.Book.SetPlated(c.ID) {
			// Order vanished under us; drop the work and replan.
			c.State = components.StateIdle
			break
		}
		c.Held = components.Held{Kind: components.HeldDish}
		c.State = components.StateReadyToDeliver
		events = append(events, Event{Kind: EventPlated, ChefID: c.ID})
	}

	switch c.State {
	case components.StateReadyToPlate:
		c.State = components.StateGoingToPlating
		setTarget(tgt, env.Layout.Plating.Center())

	case components.StateReadyToDeliver:
		c.State = components.StateGoingToDelivery
		setTarget(tgt, env.Layout.Delivery.Center())

	case components.StateIdle, components.StateWaiting:
		if env.Waiting {
			c.State = components.StateWaiting
			setTarget(tgt, env.Layout.WaitSpot(c.ID))
			break
		}
		// A carried ingredient goes to the board before anything else,
		// even after a mid-carry replan.
		if c.Held.Kind == components.HeldIngredient {
			c.State = components.StateGoingToBoard
			setTarget(tgt, env.Layout.Board.Center())
			break
		}
		o := env.Book.AssignNext(c.ID, env.Now)
		if o == nil {
			c.State = components.StateIdle
			setTarget(tgt, env.Layout.RestSpot(c.ID))
			break
		}
		next, ok := env.Book.NextNeeded(c.ID)
		if !ok {
			// Everything prepared already; head straight to plating.
			c.State = components.StateGoingToPlating
			setTarget(tgt, env.Layout.Plating.Center())
			break
		}
		c.State = components.StateGoingToFridge
		setTarget(tgt, env.Layout.StockAccess(next))
	}

	return events
}

func setTarget(tgt *components.Target, p kitchen.Point) {
	tgt.X = p.X
	tgt.Y = p.Y
}
