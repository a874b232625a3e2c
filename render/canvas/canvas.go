// Package canvas implements render.Surface on top of ebiten.
package canvas

import (
	"image"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/poimap/render"
)

var _ render.Surface = (*Canvas)(nil)

// Canvas is a render.Surface backed by an ebiten image. Target must be
// called with the frame's destination before drawing.
type Canvas struct {
	dst *ebiten.Image

	fill      color.Color
	stroke    color.Color
	lineWidth float64
	path      vector.Path

	fonts *Fonts
	font  string
	face  *text.GoTextFace

	images map[image.Image]*ebiten.Image
}

func NewCanvas(fonts *Fonts) *Canvas {
	if fonts == nil {
		fonts = NewFonts()
	}
	c := &Canvas{
		fonts:     fonts,
		lineWidth: 1,
		images:    map[image.Image]*ebiten.Image{},
	}
	c.SetFont("")
	return c
}

// Target sets the image subsequent draw calls paint on.
func (c *Canvas) Target(dst *ebiten.Image) { c.dst = dst }

// SetSize is a no-op; the host allocates a target of the map's pixel size.
func (c *Canvas) SetSize(w, h int) {}

func (c *Canvas) FillRect(x, y, w, h float64) {
	if c.dst == nil || c.fill == nil {
		return
	}
	vector.FillRect(c.dst, float32(x), float32(y), float32(w), float32(h), c.fill, true)
}

func (c *Canvas) DrawImage(img image.Image, dx, dy float64) {
	src := c.ebitenImage(img)
	if c.dst == nil || src == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(dx, dy)
	c.dst.DrawImage(src, op)
}

func (c *Canvas) DrawSubImage(img image.Image, src image.Rectangle, dx, dy, dw, dh float64) {
	full := c.ebitenImage(img)
	if c.dst == nil || full == nil || src.Empty() {
		return
	}
	sub, ok := full.SubImage(src).(*ebiten.Image)
	if !ok {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dw/float64(src.Dx()), dh/float64(src.Dy()))
	op.GeoM.Translate(dx, dy)
	c.dst.DrawImage(sub, op)
}

func (c *Canvas) BeginPath() { c.path = vector.Path{} }

func (c *Canvas) MoveTo(x, y float64) { c.path.MoveTo(float32(x), float32(y)) }

func (c *Canvas) LineTo(x, y float64) { c.path.LineTo(float32(x), float32(y)) }

func (c *Canvas) Rect(x, y, w, h float64) {
	c.path.MoveTo(float32(x), float32(y))
	c.path.LineTo(float32(x+w), float32(y))
	c.path.LineTo(float32(x+w), float32(y+h))
	c.path.LineTo(float32(x), float32(y+h))
	c.path.Close()
}

func (c *Canvas) Arc(cx, cy, r float64) {
	c.path.MoveTo(float32(cx+r), float32(cy))
	c.path.Arc(float32(cx), float32(cy), float32(r), 0, 2*math.Pi, vector.Clockwise)
	c.path.Close()
}

func (c *Canvas) ClosePath() { c.path.Close() }

// Fill paints the current path with the non-zero winding rule.
func (c *Canvas) Fill() {
	if c.dst == nil || c.fill == nil {
		return
	}
	vector.FillPath(c.dst, &c.path, &vector.FillOptions{}, drawOptions(c.fill))
}

func (c *Canvas) Stroke() {
	if c.dst == nil || c.stroke == nil || c.lineWidth <= 0 {
		return
	}
	op := &vector.StrokeOptions{Width: float32(c.lineWidth), LineJoin: vector.LineJoinRound}
	vector.StrokePath(c.dst, &c.path, op, drawOptions(c.stroke))
}

func drawOptions(clr color.Color) *vector.DrawPathOptions {
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(clr)
	return op
}

func (c *Canvas) SetFillColor(clr color.Color)   { c.fill = clr }
func (c *Canvas) SetStrokeColor(clr color.Color) { c.stroke = clr }
func (c *Canvas) SetLineWidth(w float64)         { c.lineWidth = w }

func (c *Canvas) SetFont(font string) {
	if c.face != nil && font == c.font {
		return
	}
	face, err := c.fonts.Face(font)
	if err != nil {
		log.Printf("canvas: font %q: %v", font, err)
		return
	}
	c.font = font
	c.face = face
}

func (c *Canvas) MeasureText(s string) render.TextMetrics {
	if c.face == nil {
		return render.TextMetrics{}
	}
	w, _ := text.Measure(s, c.face, 0)
	return render.TextMetrics{Width: w, Ascent: c.face.Metrics().HAscent}
}

func (c *Canvas) FillText(s string, x, y float64, align render.TextAlign) {
	if c.dst == nil || c.face == nil || c.fill == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-c.face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(c.fill)
	if align == render.AlignCenter {
		op.PrimaryAlign = text.AlignCenter
	}
	text.Draw(c.dst, s, c.face, op)
}

// ebitenImage converts decoded images once and keeps the GPU copy.
func (c *Canvas) ebitenImage(img image.Image) *ebiten.Image {
	if img == nil {
		return nil
	}
	if e, ok := img.(*ebiten.Image); ok {
		return e
	}
	if e, ok := c.images[img]; ok {
		return e
	}
	e := ebiten.NewImageFromImage(img)
	c.images[img] = e
	return e
}
