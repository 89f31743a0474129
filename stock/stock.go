// Package stock manages the depletable, replenishing ingredient pool.
package stock

import (
	"brigade/config"
	"brigade/kitchen"
)

// Unit is a single pickup-able ingredient instance at a storage sub-slot.
// Lifecycle: spawned -> available (after SpawnAt) -> taken. A taken unit
// never returns to the pool.
type Unit struct {
	ID      int
	Type    string
	Pos     kitchen.Point
	SpawnAt float64 // Sim seconds; not pickable before this instant
	Taken   bool
}

// Stock is the ingredient pool. Units only leave the pool via Take; a
// low-water-mark restock keeps every type supplied without unbounded growth.
type Stock struct {
	units  []*Unit
	nextID int

	types       []string // Sorted, for deterministic restock order
	fridge      kitchen.Zone
	bins        map[string]kitchen.Point
	slotSpacing float64

	interval    float64
	lowWater    int
	spawnDelay  float64
	lastRestock float64

	// Total units ever spawned per type, used for sub-slot placement
	spawned map[string]int
}

// New seeds the pool with the configured initial units per type,
// available immediately.
func New(cfg *config.Config, layout *kitchen.Layout) *Stock {
	s := &Stock{
		types:       cfg.Derived.IngredientTypes,
		fridge:      layout.Fridge,
		bins:        make(map[string]kitchen.Point),
		slotSpacing: cfg.Stock.SlotSpacing,
		interval:    cfg.Stock.RestockInterval,
		lowWater:    cfg.Stock.LowWaterMark,
		spawnDelay:  cfg.Stock.SpawnDelay,
		lastRestock: -cfg.Stock.RestockInterval,
		spawned:     make(map[string]int),
	}
	for _, t := range s.types {
		if ing := cfg.Ingredients[t]; ing.Bin != nil {
			s.bins[t] = kitchen.Point{X: ing.Bin.X, Y: ing.Bin.Y}
		}
		for i := 0; i < cfg.Stock.InitialPerType; i++ {
			s.spawn(t, 0)
		}
	}
	return s
}

// spawn appends a new unit for a type at its next deterministic sub-slot.
func (s *Stock) spawn(ingredientType string, availableAt float64) *Unit {
	slot := s.spawned[ingredientType]
	s.spawned[ingredientType]++

	typeIdx := 0
	for i, t := range s.types {
		if t == ingredientType {
			typeIdx = i
			break
		}
	}

	// Sub-slot grid inside the fridge zone; dedicated bins stack in place.
	pos, ok := s.bins[ingredientType]
	if !ok {
		pos = kitchen.Point{
			X: s.fridge.X + 10 + float64(slot%2)*s.slotSpacing*1.6,
			Y: s.fridge.Y + 10 + float64((slot+typeIdx)%6)*s.slotSpacing,
		}
	}

	u := &Unit{
		ID:      s.nextID,
		Type:    ingredientType,
		Pos:     pos,
		SpawnAt: availableAt,
	}
	s.nextID++
	s.units = append(s.units, u)
	return u
}

// Restock spawns at most one unit per type whose available count has
// fallen below the low-water mark. No-op until the restock interval has
// elapsed since the previous pass.
func (s *Stock) Restock(now float64) {
	if now-s.lastRestock < s.interval {
		return
	}
	for _, t := range s.types {
		if s.CountAvailable(t, now) < s.lowWater {
			s.spawn(t, now+s.spawnDelay)
		}
	}
	s.lastRestock = now
}

// Available returns the units of a type that are not taken and whose
// spawn time has elapsed. Pure query.
func (s *Stock) Available(ingredientType string, now float64) []*Unit {
	var out []*Unit
	for _, u := range s.units {
		if u.Type == ingredientType && !u.Taken && now >= u.SpawnAt {
			out = append(out, u)
		}
	}
	return out
}

// CountAvailable returns the available-unit count for a type.
func (s *Stock) CountAvailable(ingredientType string, now float64) int {
	n := 0
	for _, u := range s.units {
		if u.Type == ingredientType && !u.Taken && now >= u.SpawnAt {
			n++
		}
	}
	return n
}

// First returns the first available unit of a type, or nil.
func (s *Stock) First(ingredientType string, now float64) *Unit {
	for _, u := range s.units {
		if u.Type == ingredientType && !u.Taken && now >= u.SpawnAt {
			return u
		}
	}
	return nil
}

// Take marks a unit taken. Returns false if it was already taken: when
// two agents target the same unit in one tick the first claim wins and
// the loser re-queries next tick.
func (s *Stock) Take(u *Unit) bool {
	if u == nil || u.Taken {
		return false
	}
	u.Taken = true
	return true
}

// Units returns every unit still in the pool (for rendering).
func (s *Stock) Units() []*Unit {
	out := make([]*Unit, 0, len(s.units))
	for _, u := range s.units {
		if !u.Taken {
			out = append(out, u)
		}
	}
	return out
}

// TakenCount returns how many units have left the pool.
func (s *Stock) TakenCount() int {
	n := 0
	for _, u := range s.units {
		if u.Taken {
			n++
		}
	}
	return n
}
