package obj

import (
	"github.com/milk9111/poimap/render"
	"github.com/milk9111/poimap/tiled"
)

// LabelOrigin returns the top-left of the label box.
func (o *Object) LabelOrigin() (x, y float64) {
	lb := o.Label
	x = o.X + lb.OffsetX - lb.Padding
	y = o.Y + lb.OffsetY - lb.Padding
	if o.Kind == KindPoint {
		y -= o.Radius
	}
	if lb.Position == "center" {
		x += o.Width / 2
	}
	return x, y
}

func (o *Object) drawLabel(s render.Surface) {
	lb := o.Label
	x, y := o.LabelOrigin()
	pad := lb.Padding
	align := render.ParseTextAlign(lb.TextAlign)

	s.SetFont(lb.Font)
	m := s.MeasureText(o.Name)

	if bg, ok := tiled.ParseColor(lb.Background); ok {
		xOff := 0.0
		if align == render.AlignCenter {
			xOff = -m.Width / 2
		}
		s.SetFillColor(bg)
		s.FillRect(x+xOff, y, m.Width+pad*2, m.Ascent+pad*2)
	}

	fg, ok := tiled.ParseColor(lb.Color)
	if !ok {
		return
	}
	s.SetFillColor(fg)
	s.FillText(o.Name, x+pad, y+pad+m.Ascent-1, align)
}
