package kitchen

import (
	"math"
	"testing"
)

func TestZoneCenter(t *testing.T) {
	tests := []struct {
		name  string
		zone  Zone
		wantX float64
		wantY float64
	}{
		{"unit square at origin", Zone{X: 0, Y: 0, W: 2, H: 2}, 1, 1},
		{"fridge access", Zone{X: 110, Y: 310, W: 80, H: 80}, 150, 350},
		{"wide board", Zone{X: 200, Y: 195, W: 300, H: 150}, 350, 270},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.zone.Center()
			if c.X != tt.wantX || c.Y != tt.wantY {
				t.Errorf("Center() = (%v, %v), want (%v, %v)", c.X, c.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestZoneContains(t *testing.T) {
	z := Zone{X: 10, Y: 10, W: 20, H: 20}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Point{X: 20, Y: 20}, true},
		{"corner", Point{X: 10, Y: 10}, true},
		{"far edge", Point{X: 30, Y: 30}, true},
		{"outside left", Point{X: 9, Y: 20}, false},
		{"outside below", Point{X: 20, Y: 31}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := z.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestBoundsClamp(t *testing.T) {
	b := Bounds{MinX: 60, MinY: 120, MaxX: 740, MaxY: 540}

	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{"inside unchanged", Point{X: 400, Y: 300}, Point{X: 400, Y: 300}},
		{"left overflow", Point{X: 10, Y: 300}, Point{X: 60, Y: 300}},
		{"bottom-right overflow", Point{X: 900, Y: 700}, Point{X: 740, Y: 540}},
		{"top overflow", Point{X: 400, Y: 0}, Point{X: 400, Y: 120}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Clamp(tt.in); got != tt.want {
				t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPointDist(t *testing.T) {
	a := Point{X: 0, Y: 0}
	b := Point{X: 3, Y: 4}
	if d := a.Dist(b); math.Abs(d-5) > 1e-9 {
		t.Errorf("Dist = %v, want 5", d)
	}
}
