package kitchen

import (
	"fmt"

	"brigade/config"
)

// Layout holds the resolved kitchen geometry: every interaction access
// point an agent can target, the per-chef rest and wait spots, and the
// playable bounds. Built once at startup from validated config; a zone
// missing here is a startup error, never a mid-session condition.
type Layout struct {
	Fridge   Zone
	Board    Zone
	Plating  Zone
	Delivery Zone
	Bounds   Bounds

	// Per-ingredient bins; types without a dedicated bin fall back to
	// the fridge access point.
	bins map[string]Point

	restSpots []Point
	waitSpots []Point
}

// NewLayout resolves the kitchen geometry from config.
func NewLayout(cfg *config.Config) (*Layout, error) {
	zone := func(name string) (Zone, error) {
		zc, ok := cfg.Kitchen.Zones[name]
		if !ok {
			return Zone{}, fmt.Errorf("kitchen: missing zone %q", name)
		}
		return Zone{X: zc.X, Y: zc.Y, W: zc.W, H: zc.H}, nil
	}

	l := &Layout{
		bins: make(map[string]Point),
		Bounds: Bounds{
			MinX: cfg.Kitchen.Bounds.MinX,
			MinY: cfg.Kitchen.Bounds.MinY,
			MaxX: cfg.Kitchen.Bounds.MaxX,
			MaxY: cfg.Kitchen.Bounds.MaxY,
		},
	}

	var err error
	if l.Fridge, err = zone("fridge_access"); err != nil {
		return nil, err
	}
	if l.Board, err = zone("cutting_board"); err != nil {
		return nil, err
	}
	if l.Plating, err = zone("plating_station"); err != nil {
		return nil, err
	}
	if l.Delivery, err = zone("delivery"); err != nil {
		return nil, err
	}

	for t, ing := range cfg.Ingredients {
		if ing.Bin != nil {
			l.bins[t] = Point{X: ing.Bin.X, Y: ing.Bin.Y}
		}
	}

	for _, p := range cfg.Kitchen.RestSpots {
		l.restSpots = append(l.restSpots, Point{X: p.X, Y: p.Y})
	}
	for _, p := range cfg.Kitchen.WaitSpots {
		l.waitSpots = append(l.waitSpots, Point{X: p.X, Y: p.Y})
	}
	if len(l.restSpots) == 0 {
		return nil, fmt.Errorf("kitchen: no rest spots configured")
	}
	if len(l.waitSpots) == 0 {
		return nil, fmt.Errorf("kitchen: no wait spots configured")
	}

	return l, nil
}

// StockAccess returns the pickup point for an ingredient type: its
// dedicated bin when the layout has one, else the fridge access point.
func (l *Layout) StockAccess(ingredientType string) Point {
	if p, ok := l.bins[ingredientType]; ok {
		return p
	}
	return l.Fridge.Center()
}

// RestSpot returns the rest position for a chef, alternated by id so
// idle chefs do not stack on one spot.
func (l *Layout) RestSpot(chefID int) Point {
	return l.restSpots[chefID%len(l.restSpots)]
}

// WaitSpot returns the waiting position for a chef that lost an order claim.
func (l *Layout) WaitSpot(chefID int) Point {
	return l.waitSpots[chefID%len(l.waitSpots)]
}
