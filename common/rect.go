package common

import "math"

// BaseWidth and BaseHeight size the viewer window before a map is loaded.
const (
	BaseWidth  = 1280
	BaseHeight = 720
)

type Vec struct {
	X, Y float64
}

type Rect struct {
	X, Y          float64
	Width, Height float64
}

// ContainsPoint reports whether p lies strictly inside r. Points on an edge
// are outside.
func (r Rect) ContainsPoint(p Vec) bool {
	return p.X > r.X &&
		p.X < r.X+r.Width &&
		p.Y > r.Y &&
		p.Y < r.Y+r.Height
}

type Circle struct {
	X, Y   float64
	Radius float64
}

// ContainsPoint treats the point as a circle of radius 1, so hits within a
// pixel of the rim count.
func (c Circle) ContainsPoint(p Vec) bool {
	return c.Touches(Circle{X: p.X, Y: p.Y, Radius: 1})
}

func (c Circle) Touches(other Circle) bool {
	return math.Hypot(c.X-other.X, c.Y-other.Y) < c.Radius+other.Radius
}

// Bounds returns the axis-aligned bounding rectangle of points.
func Bounds(points []Vec) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
