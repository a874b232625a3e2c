// Package render defines the drawing surface the map is painted on and the
// ebiten implementation of it.
package render

import (
	"image"
	"image/color"
)

type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
)

// ParseTextAlign maps a canvas-style alignment name. Anything but "center"
// aligns left.
func ParseTextAlign(s string) TextAlign {
	if s == "center" {
		return AlignCenter
	}
	return AlignLeft
}

type TextMetrics struct {
	Width  float64
	Ascent float64
}

// Surface is a 2D drawing target with canvas-like path semantics: shapes
// added between BeginPath and ClosePath form the current path that Fill and
// Stroke paint with the current colors.
type Surface interface {
	SetSize(w, h int)

	FillRect(x, y, w, h float64)
	DrawImage(img image.Image, dx, dy float64)
	DrawSubImage(img image.Image, src image.Rectangle, dx, dy, dw, dh float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Rect(x, y, w, h float64)
	Arc(cx, cy, r float64)
	ClosePath()
	Fill()
	Stroke()

	// SetFillColor and SetStrokeColor accept nil to disable painting.
	SetFillColor(c color.Color)
	SetStrokeColor(c color.Color)
	SetLineWidth(w float64)

	SetFont(font string)
	MeasureText(s string) TextMetrics
	// FillText draws s with its baseline at y.
	FillText(s string, x, y float64, align TextAlign)
}
