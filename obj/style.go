package obj

// Style holds the fallback values for the style presets an object resolves
// through its properties. Color fields take Tiled color strings; empty means
// no paint.
type Style struct {
	FillStyle           string  `yaml:"fill_style"`
	StrokeStyle         string  `yaml:"stroke_style"`
	LineWidth           float64 `yaml:"line_width"`
	Font                string  `yaml:"font"`
	TextAlign           string  `yaml:"text_align"`
	FontColor           string  `yaml:"font_color"`
	FontBackgroundColor string  `yaml:"font_background_color"`
	Padding             float64 `yaml:"padding"`
	HoverFillStyle      string  `yaml:"hover_fill_style"`
}

func DefaultStyle() Style {
	return Style{
		LineWidth: 3,
		Font:      "12px Verdana",
		TextAlign: "center",
		FontColor: "white",
	}
}

// Label describes how an object's name is drawn above it.
type Label struct {
	OffsetX    float64 `yaml:"offset_x"`
	OffsetY    float64 `yaml:"offset_y"`
	Color      string  `yaml:"color"`
	Background string  `yaml:"background"`
	Padding    float64 `yaml:"padding"`
	// Position "center" shifts the label right by half the object width.
	Position  string `yaml:"position"`
	TextAlign string `yaml:"text_align"`
	Font      string `yaml:"font"`
}

func DefaultLabel() Label {
	return Label{
		OffsetX:    0,
		OffsetY:    -25,
		Color:      "white",
		Background: "#80000000",
		Padding:    10,
		Position:   "center",
		TextAlign:  "center",
		Font:       "12px Verdana",
	}
}

// Defaults is injected into every object constructor.
type Defaults struct {
	Style Style `yaml:"style"`
	Label Label `yaml:"label"`
}

func NewDefaults() Defaults {
	return Defaults{Style: DefaultStyle(), Label: DefaultLabel()}
}
