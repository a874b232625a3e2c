package tiled

import (
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor converts a Tiled color string. Tiled writes "#AARRGGBB", or
// "#RRGGBB" when fully opaque. Names such as "white" resolve through the SVG
// color table.
func ParseColor(s string) (color.Color, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return nil, false
		}
		return c, true
	}
	hex := s[1:]
	switch len(hex) {
	case 6:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return nil, false
		}
		return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, true
	case 8:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return nil, false
		}
		return color.NRGBA{A: uint8(v >> 24), R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, true
	}
	return nil, false
}

// Color returns the property value as a color, if it is one.
func (p Property) Color() (color.Color, bool) {
	s, ok := p.Value.(string)
	if !ok {
		return nil, false
	}
	return ParseColor(s)
}
