package core

import "testing"

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 5, Y: 5, W: 10, H: 10},
			expected: true,
		},
		{
			name:     "disjoint horizontal",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 15, Y: 0, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "disjoint vertical",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 0, Y: 15, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "edge contact horizontal",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 10, Y: 0, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "edge contact vertical",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 0, Y: 10, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "contained box",
			a:        RectF{X: 0, Y: 0, W: 20, H: 20},
			b:        RectF{X: 5, Y: 5, W: 5, H: 5},
			expected: true,
		},
		{
			name:     "sliver overlap",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 9.99, Y: 9.99, W: 10, H: 10},
			expected: true,
		},
		{
			name:     "overlap on x only",
			a:        RectF{X: 0, Y: 0, W: 10, H: 10},
			b:        RectF{X: 5, Y: 50, W: 10, H: 10},
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectFIntersectsSelf(t *testing.T) {
	boxes := []RectF{
		{X: 0, Y: 0, W: 1, H: 1},
		{X: -50, Y: 20, W: 92, H: 126},
		RectAround(Vec2{X: 1024, Y: 460.8}, 64, 64),
	}
	for _, b := range boxes {
		if !b.Intersects(b) {
			t.Errorf("box %+v should intersect itself", b)
		}
	}
}

func TestRectAround(t *testing.T) {
	r := RectAround(Vec2{X: 100, Y: 50}, 20, 10)

	if r.X != 90 || r.Y != 45 {
		t.Errorf("RectAround origin = (%v, %v), expected (90, 45)", r.X, r.Y)
	}
	if r.Right() != 110 || r.Bottom() != 55 {
		t.Errorf("RectAround far edges = (%v, %v), expected (110, 55)", r.Right(), r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestVec2Add(t *testing.T) {
	if got := (Vec2{X: 1, Y: -2}).Add(Vec2{X: 0.5, Y: 2}); got != (Vec2{X: 1.5, Y: 0}) {
		t.Errorf("Add() = %+v, expected {1.5 0}", got)
	}
}
