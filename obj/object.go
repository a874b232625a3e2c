package obj

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/milk9111/poimap/common"
	"github.com/milk9111/poimap/render"
	"github.com/milk9111/poimap/tiled"
)

var ErrMissingRadius = errors.New("obj: point object has no radius property")

type Kind int

const (
	KindRect Kind = iota
	KindPoint
	KindPolygon
)

func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindPoint:
		return "point"
	case KindPolygon:
		return "polygon"
	default:
		return "unknown"
	}
}

// KindOf selects the variant for a raw object: points first, then polygons,
// everything else (including ellipses) is a rect.
func KindOf(o *tiled.Object) Kind {
	switch {
	case o.Point:
		return KindPoint
	case len(o.Polygon) > 0:
		return KindPolygon
	default:
		return KindRect
	}
}

// Presets are the style values resolved once when the object is built.
type Presets struct {
	Fill           color.Color
	Stroke         color.Color
	LineWidth      float64
	Font           string
	TextAlign      render.TextAlign
	FontColor      color.Color
	FontBackground color.Color
	Padding        float64
	HoverFill      color.Color
}

// Object is a point of interest on the map.
type Object struct {
	ID       int
	Name     string
	Kind     Kind
	X, Y     float64
	Width    float64
	Height   float64
	Radius   float64
	Rotation float64
	Visible  bool

	Properties []tiled.Property
	// lookup references into the owning layer and class
	LayerProperties []tiled.Property
	ClassProperties []tiled.Property

	// Points is the polygon outline in map coordinates.
	Points []common.Vec

	Presets Presets
	// Label is the label descriptor, copied from the defaults unchanged.
	Label Label
}

// NewObject builds an object from its raw record.
func NewObject(raw *tiled.Object, layerProps, classProps []tiled.Property, d Defaults) (*Object, error) {
	o := &Object{
		ID:              raw.ID,
		Name:            raw.Name,
		Kind:            KindOf(raw),
		X:               raw.X,
		Y:               raw.Y,
		Width:           raw.Width,
		Height:          raw.Height,
		Rotation:        raw.Rotation,
		Visible:         raw.IsVisible(),
		Properties:      raw.Properties,
		LayerProperties: layerProps,
		ClassProperties: classProps,
	}

	switch o.Kind {
	case KindPoint:
		p, ok := findOwn(raw.Properties, "radius")
		r, isNum := p.Float()
		if !ok || !isNum {
			return nil, fmt.Errorf("%w: object %d %q", ErrMissingRadius, raw.ID, raw.Name)
		}
		o.Radius = r
	case KindPolygon:
		o.Points = make([]common.Vec, len(raw.Polygon))
		for i, p := range raw.Polygon {
			o.Points[i] = common.Vec{X: raw.X + p.X, Y: raw.Y + p.Y}
		}
	}

	o.resolvePresets(d)
	return o, nil
}

func findOwn(props []tiled.Property, name string) (tiled.Property, bool) {
	for _, p := range props {
		if p.Name == name {
			return p, true
		}
	}
	return tiled.Property{}, false
}

// preset resolves name and reports whether it was set to a truthy value.
func (o *Object) preset(name string) (tiled.Property, bool) {
	p, ok := tiled.Resolve(o.Properties, o.LayerProperties, o.ClassProperties, name)
	if !ok || !p.Truthy() {
		return tiled.Property{}, false
	}
	return p, true
}

func (o *Object) presetColor(name, fallback string) color.Color {
	if p, ok := o.preset(name); ok {
		if c, ok := p.Color(); ok {
			return c
		}
	}
	c, _ := tiled.ParseColor(fallback)
	return c
}

func (o *Object) presetString(name, fallback string) string {
	if p, ok := o.preset(name); ok {
		return p.String()
	}
	return fallback
}

func (o *Object) presetFloat(name string, fallback float64) float64 {
	if p, ok := o.preset(name); ok {
		if f, ok := p.Float(); ok {
			return f
		}
	}
	return fallback
}

func (o *Object) resolvePresets(d Defaults) {
	st := d.Style
	o.Presets.Fill = o.presetColor("fillStyle", st.FillStyle)
	o.Presets.Stroke = o.presetColor("strokeStyle", st.StrokeStyle)
	o.Presets.LineWidth = o.presetFloat("lineWidth", st.LineWidth)
	o.Presets.HoverFill = o.presetColor("hoverFillStyle", st.HoverFillStyle)
	o.Presets.Font = o.presetString("font", st.Font)
	align := o.presetString("textAlign", st.TextAlign)
	o.Presets.TextAlign = render.ParseTextAlign(align)
	o.Presets.FontColor = o.presetColor("fontColor", st.FontColor)
	o.Presets.FontBackground = o.presetColor("fontBackgroundColor", st.FontBackgroundColor)
	o.Presets.Padding = o.presetFloat("padding", st.Padding)

	// labels always use the configured label defaults
	o.Label = d.Label
}

// Bounds returns the axis-aligned extent used for hit testing.
func (o *Object) Bounds() common.Rect {
	switch o.Kind {
	case KindPoint:
		return common.Rect{X: o.X - o.Radius, Y: o.Y - o.Radius, Width: 2 * o.Radius, Height: 2 * o.Radius}
	case KindPolygon:
		return common.Bounds(o.Points)
	default:
		return common.Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}
	}
}

// IsHovered reports whether the pointer is over the object. Points are never
// hover tested; polygons use their bounding box, so concave corners and the
// area outside slanted edges count as a hit.
func (o *Object) IsHovered(pointer common.Vec) bool {
	if o.Kind == KindPoint {
		return false
	}
	return o.Bounds().ContainsPoint(pointer)
}

// Contains is the click hit test. Unlike IsHovered it also covers points,
// as a circle of their radius with a one pixel tolerance.
func (o *Object) Contains(p common.Vec) bool {
	if o.Kind == KindPoint {
		return common.Circle{X: o.X, Y: o.Y, Radius: o.Radius}.ContainsPoint(p)
	}
	return o.IsHovered(p)
}

// Outline adds the object's shape to the current path.
func (o *Object) Outline(s render.Surface) {
	switch o.Kind {
	case KindRect:
		s.Rect(o.X, o.Y, o.Width, o.Height)
	case KindPoint:
		s.Arc(o.X, o.Y, o.Radius)
	case KindPolygon:
		if len(o.Points) == 0 {
			return
		}
		s.MoveTo(o.Points[0].X, o.Points[0].Y)
		for _, p := range o.Points[1:] {
			s.LineTo(p.X, p.Y)
		}
		s.ClosePath()
	}
}

// Update draws the object for the current frame.
func (o *Object) Update(s render.Surface, pointer common.Vec) {
	if !o.Visible {
		return
	}
	fill := o.Presets.Fill
	if o.IsHovered(pointer) {
		fill = o.Presets.HoverFill
	}
	s.SetFillColor(fill)
	s.SetStrokeColor(o.Presets.Stroke)
	s.SetLineWidth(o.Presets.LineWidth)

	s.BeginPath()
	o.Outline(s)
	if fill != nil {
		s.Fill()
	}
	if o.Presets.Stroke != nil {
		s.Stroke()
	}
	s.ClosePath()

	if o.Name != "" {
		o.drawLabel(s)
	}
}
