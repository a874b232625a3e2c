package tiled

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.NRGBA
		ok   bool
	}{
		{"#80ff0000", color.NRGBA{R: 0xff, A: 0x80}, true},
		{"#00ff00", color.NRGBA{G: 0xff, A: 0xff}, true},
		{"white", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, true},
		{"", color.NRGBA{}, false},
		{"#zz", color.NRGBA{}, false},
		{"notacolor", color.NRGBA{}, false},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, ok := ParseColor(c.in)
			if ok != c.ok {
				t.Fatalf("ok = %v, want %v", ok, c.ok)
			}
			if !ok {
				return
			}
			if n := color.NRGBAModel.Convert(got).(color.NRGBA); n != c.want {
				t.Fatalf("got %v, want %v", n, c.want)
			}
		})
	}
}
