package render

import (
	"strconv"
	"strings"
)

const DefaultFontSize = 12

// FontSpec is a parsed CSS font shorthand such as "bold 14px Verdana".
type FontSpec struct {
	Size   float64
	Bold   bool
	Mono   bool
	Family string
}

// ParseFont reads the size and weight out of a CSS font shorthand. Families
// are kept for reference only; every face is rendered with the Go fonts.
func ParseFont(s string) FontSpec {
	spec := FontSpec{Size: DefaultFontSize}
	var family []string
	for _, f := range strings.Fields(s) {
		lower := strings.ToLower(f)
		switch {
		case lower == "bold" || lower == "bolder":
			spec.Bold = true
		case strings.HasSuffix(lower, "px"):
			if v, err := strconv.ParseFloat(strings.TrimSuffix(lower, "px"), 64); err == nil && v > 0 {
				spec.Size = v
			}
		default:
			family = append(family, f)
		}
	}
	spec.Family = strings.Join(family, " ")
	fam := strings.ToLower(spec.Family)
	spec.Mono = strings.Contains(fam, "mono") || strings.Contains(fam, "courier")
	return spec
}
