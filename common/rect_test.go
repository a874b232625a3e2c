package common

import "testing"

func TestRectContainsPoint(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	cases := []struct {
		name string
		p    Vec
		want bool
	}{
		{"inside", Vec{5, 5}, true},
		{"far_corner_edge", Vec{10, 10}, false},
		{"origin_edge", Vec{0, 0}, false},
		{"left_edge", Vec{0, 5}, false},
		{"outside", Vec{11, 11}, false},
		{"negative", Vec{-1, 5}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := r.ContainsPoint(c.p); got != c.want {
				t.Fatalf("ContainsPoint(%v) = %v, want %v", c.p, got, c.want)
			}
		})
	}
}

func TestCircleContainsPoint(t *testing.T) {
	c := Circle{X: 0, Y: 0, Radius: 5}
	cases := []struct {
		p    Vec
		want bool
	}{
		{Vec{0, 0}, true},
		{Vec{5, 0}, true},   // rim is within the 1px tolerance
		{Vec{5.9, 0}, true}, // still within radius+1
		{Vec{6, 0}, false},
		{Vec{5, 5}, false},
	}
	for _, tc := range cases {
		if got := c.ContainsPoint(tc.p); got != tc.want {
			t.Errorf("ContainsPoint(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestCircleTouches(t *testing.T) {
	a := Circle{X: 0, Y: 0, Radius: 2}
	if !a.Touches(Circle{X: 3, Y: 0, Radius: 2}) {
		t.Fatalf("overlapping circles should touch")
	}
	if a.Touches(Circle{X: 4, Y: 0, Radius: 2}) {
		t.Fatalf("tangent circles should not touch")
	}
}

func TestBounds(t *testing.T) {
	got := Bounds([]Vec{{2, 8}, {5, 1}, {-1, 4}})
	want := Rect{X: -1, Y: 1, Width: 6, Height: 7}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	if (Bounds(nil) != Rect{}) {
		t.Fatalf("empty bounds should be zero")
	}
}
