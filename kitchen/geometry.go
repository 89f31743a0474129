// Package kitchen defines the kitchen floor plan and the recipe catalog.
package kitchen

import "math"

// Point is a 2D world coordinate.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance to p2.
func (p Point) Dist(p2 Point) float64 {
	return math.Hypot(p.X-p2.X, p.Y-p2.Y)
}

// Zone is an axis-aligned rectangular kitchen area.
type Zone struct {
	X, Y, W, H float64
}

// Center returns the zone's center point, which agents use as the
// interaction access point.
func (z Zone) Center() Point {
	return Point{X: z.X + z.W/2, Y: z.Y + z.H/2}
}

// Contains reports whether p lies inside the zone.
func (z Zone) Contains(p Point) bool {
	return p.X >= z.X && p.X <= z.X+z.W && p.Y >= z.Y && p.Y <= z.Y+z.H
}

// Bounds is the playable area agents are clamped to.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Clamp returns p limited to the bounds.
func (b Bounds) Clamp(p Point) Point {
	return Point{
		X: math.Max(b.MinX, math.Min(b.MaxX, p.X)),
		Y: math.Max(b.MinY, math.Min(b.MaxY, p.Y)),
	}
}
