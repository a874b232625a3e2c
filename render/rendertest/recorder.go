// Package rendertest provides a render.Surface that records draw calls.
package rendertest

import (
	"fmt"
	"image"
	"image/color"

	"github.com/milk9111/poimap/render"
)

// Blit is one DrawImage or DrawSubImage call.
type Blit struct {
	Image  image.Image
	Src    image.Rectangle // empty for whole-image draws
	DX, DY float64
	DW, DH float64
}

// Text is one FillText call.
type Text struct {
	S     string
	X, Y  float64
	Align render.TextAlign
	Color color.Color
}

// Recorder implements render.Surface and keeps every call in order.
type Recorder struct {
	W, H int

	Blits []Blit
	Rects [][4]float64 // FillRect calls
	Texts []Text
	// Ops is the sequence of path operations, e.g. "begin", "rect", "fill".
	Ops []string

	FillColor   color.Color
	StrokeColor color.Color
	LineWidth   float64
	Font        string

	// CharWidth and Ascent drive MeasureText.
	CharWidth float64
	Ascent    float64

	// FilledWith records the fill color at each Fill call.
	FilledWith []color.Color
}

var _ render.Surface = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{CharWidth: 6, Ascent: 9}
}

func (r *Recorder) SetSize(w, h int) { r.W, r.H = w, h }

func (r *Recorder) FillRect(x, y, w, h float64) {
	r.Rects = append(r.Rects, [4]float64{x, y, w, h})
}

func (r *Recorder) DrawImage(img image.Image, dx, dy float64) {
	b := img.Bounds()
	r.Blits = append(r.Blits, Blit{Image: img, DX: dx, DY: dy, DW: float64(b.Dx()), DH: float64(b.Dy())})
}

func (r *Recorder) DrawSubImage(img image.Image, src image.Rectangle, dx, dy, dw, dh float64) {
	r.Blits = append(r.Blits, Blit{Image: img, Src: src, DX: dx, DY: dy, DW: dw, DH: dh})
}

func (r *Recorder) BeginPath()          { r.Ops = append(r.Ops, "begin") }
func (r *Recorder) MoveTo(x, y float64) { r.Ops = append(r.Ops, fmt.Sprintf("move %g,%g", x, y)) }
func (r *Recorder) LineTo(x, y float64) { r.Ops = append(r.Ops, fmt.Sprintf("line %g,%g", x, y)) }
func (r *Recorder) Rect(x, y, w, h float64) {
	r.Ops = append(r.Ops, fmt.Sprintf("rect %g,%g %gx%g", x, y, w, h))
}
func (r *Recorder) Arc(cx, cy, rad float64) {
	r.Ops = append(r.Ops, fmt.Sprintf("arc %g,%g r%g", cx, cy, rad))
}
func (r *Recorder) ClosePath() { r.Ops = append(r.Ops, "close") }

func (r *Recorder) Fill() {
	r.Ops = append(r.Ops, "fill")
	r.FilledWith = append(r.FilledWith, r.FillColor)
}

func (r *Recorder) Stroke() { r.Ops = append(r.Ops, "stroke") }

func (r *Recorder) SetFillColor(c color.Color)   { r.FillColor = c }
func (r *Recorder) SetStrokeColor(c color.Color) { r.StrokeColor = c }
func (r *Recorder) SetLineWidth(w float64)       { r.LineWidth = w }
func (r *Recorder) SetFont(font string)          { r.Font = font }

func (r *Recorder) MeasureText(s string) render.TextMetrics {
	return render.TextMetrics{Width: float64(len(s)) * r.CharWidth, Ascent: r.Ascent}
}

func (r *Recorder) FillText(s string, x, y float64, align render.TextAlign) {
	r.Texts = append(r.Texts, Text{S: s, X: x, Y: y, Align: align, Color: r.FillColor})
}

// SubBlits returns only the DrawSubImage calls.
func (r *Recorder) SubBlits() []Blit {
	var out []Blit
	for _, b := range r.Blits {
		if !b.Src.Empty() {
			out = append(out, b)
		}
	}
	return out
}

// Reset clears recorded calls but keeps the current state.
func (r *Recorder) Reset() {
	r.Blits = nil
	r.Rects = nil
	r.Texts = nil
	r.Ops = nil
	r.FilledWith = nil
}
