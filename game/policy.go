package game

import (
	"fmt"
	"log/slog"
	"math"
)

// CoordinationPolicy decides, each tick, which chefs may claim pending
// orders and which must hold off.
type CoordinationPolicy interface {
	Name() string
	// Prepare fills g.waiting for this tick.
	Prepare(g *Game)
}

// NewCoordinationPolicy resolves a policy by name.
func NewCoordinationPolicy(name string) (CoordinationPolicy, error) {
	switch name {
	case "independent":
		return independentPolicy{}, nil
	case "shared":
		return sharedPolicy{}, nil
	}
	return nil, fmt.Errorf("game: unknown coordination policy %q", name)
}

// TogglePolicy switches between the two coordination policies at
// runtime. Waiting flags are recomputed by the next Prepare.
func (g *Game) TogglePolicy() {
	if g.policy.Name() == "independent" {
		g.policy = sharedPolicy{}
	} else {
		g.policy = independentPolicy{}
	}
	slog.Info("coordination policy switched", "policy", g.policy.Name())
}

// independentPolicy lets every chef claim from the shared queue; each
// chef works its own order in parallel with the others.
type independentPolicy struct{}

func (independentPolicy) Name() string { return "independent" }

func (independentPolicy) Prepare(g *Game) {
	for _, e := range g.chefs {
		chef := g.chefMap.Get(e)
		g.waiting[chef.ID] = false
	}
}

// sharedPolicy allows a single in-flight order for the whole kitchen.
// While work exists, exactly one chef (the current owner, or the chef
// closest to the fridge when nobody owns one) is allowed to claim; the
// rest head to their wait spots.
type sharedPolicy struct{}

func (sharedPolicy) Name() string { return "shared" }

func (sharedPolicy) Prepare(g *Game) {
	hasWork := g.book.PendingCount() > 0 || g.book.ActiveCount() > 0
	if !hasWork {
		for _, e := range g.chefs {
			chef := g.chefMap.Get(e)
			g.waiting[chef.ID] = false
		}
		return
	}

	claimant := -1
	bestDist := math.Inf(1)
	fridge := g.layout.Fridge.Center()
	for _, e := range g.chefs {
		chef := g.chefMap.Get(e)
		if g.book.Owned(chef.ID) != nil {
			claimant = chef.ID
			break
		}
		pos := g.posMap.Get(e)
		if d := math.Hypot(pos.X-fridge.X, pos.Y-fridge.Y); d < bestDist {
			bestDist = d
			claimant = chef.ID
		}
	}

	for _, e := range g.chefs {
		chef := g.chefMap.Get(e)
		g.waiting[chef.ID] = chef.ID != claimant
	}
}
