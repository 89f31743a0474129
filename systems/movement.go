package systems

import (
	"math"

	"brigade/components"
	"brigade/kitchen"
)

// Step moves a chef one tick toward its target, one axis at a time, and
// clamps the result to the playable bounds. Chefs mid-chop or mid-plate
// stay put.
func Step(env *Env, c *components.Chef, pos *components.Position, tgt *components.Target) {
	if !mobile(c.State) {
		return
	}

	step := c.Speed * env.DT
	if dx := tgt.X - pos.X; math.Abs(dx) > step {
		pos.X += math.Copysign(step, dx)
	} else {
		pos.X = tgt.X
	}
	if dy := tgt.Y - pos.Y; math.Abs(dy) > step {
		pos.Y += math.Copysign(step, dy)
	} else {
		pos.Y = tgt.Y
	}

	p := env.Layout.Bounds.Clamp(kitchen.Point{X: pos.X, Y: pos.Y})
	pos.X = p.X
	pos.Y = p.Y
}

// AtTarget reports whether the chef is within the arrival radius of its target.
func AtTarget(env *Env, pos *components.Position, tgt *components.Target) bool {
	return math.Hypot(tgt.X-pos.X, tgt.Y-pos.Y) <= env.ArriveRadius
}

func mobile(s components.State) bool {
	switch s {
	case components.StateCutting, components.StatePlating:
		return false
	}
	return true
}
