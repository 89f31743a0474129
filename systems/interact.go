package systems

import (
	"math"

	"brigade/components"
)

// OnArrival performs the station interaction for a chef that has reached
// its travel target. Runs after movement; a no-op unless the chef is in
// a going_to state and within the arrival radius.
//
// A fridge arrival that finds no pickable unit (another chef took the
// last one, or a respawn is still pending) leaves the chef in place; it
// retries on subsequent ticks until a unit appears.
func OnArrival(env *Env, c *components.Chef, pos *components.Position, tgt *components.Target) []Event {
	if !AtTarget(env, pos, tgt) {
		return nil
	}

	switch c.State {
	case components.StateGoingToFridge:
		next, ok := env.Book.NextNeeded(c.ID)
		if !ok {
			c.State = components.StateIdle
			return nil
		}
		u := env.Stock.First(next, env.Now)
		if u == nil || !env.Stock.Take(u) {
			return []Event{{Kind: EventPickupMiss, ChefID: c.ID, Item: next}}
		}
		c.Held = components.Held{Kind: components.HeldIngredient, Ingredient: next}
		c.State = components.StateGoingToBoard
		setTarget(tgt, env.Layout.Board.Center())
		return []Event{{Kind: EventPickup, ChefID: c.ID, Item: next}}

	case components.StateGoingToBoard:
		if c.Held.Kind != components.HeldIngredient {
			c.State = components.StateIdle
			return nil
		}
		c.ChopType = c.Held.Ingredient
		c.ChopStart = env.Now
		c.Held = components.Held{}
		c.State = components.StateCutting
		return []Event{{Kind: EventChopStarted, ChefID: c.ID, Item: c.ChopType}}

	case components.StateGoingToPlating:
		if !env.Book.IsReady(c.ID) {
			c.State = components.StateIdle
			return nil
		}
		c.Plating = true
		c.PlateStart = env.Now
		c.State = components.StatePlating
		return []Event{{Kind: EventPlatingStarted, ChefID: c.ID}}

	case components.StateGoingToDelivery:
		if c.Held.Kind != components.HeldDish {
			c.State = components.StateIdle
			return nil
		}
		rec := env.Book.Complete(c.ID, env.Now)
		if rec == nil {
			c.State = components.StateIdle
			return nil
		}
		c.Held = components.Held{}
		c.Delivered++
		c.Motivation = math.Min(env.MotivationMax, c.Motivation+env.MotivationGain)
		c.State = components.StateIdle
		return []Event{{Kind: EventDelivered, ChefID: c.ID, Item: rec.Dish, Completion: rec}}
	}

	return nil
}
