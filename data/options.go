package data

// ColorAdvance selects when the stroke color moves to the next palette entry.
type ColorAdvance string

const (
	// ColorAdvanceStroke picks the next color for every new stroke.
	ColorAdvanceStroke ColorAdvance = "stroke"
	// ColorAdvanceKey keeps the color until the next-color key is pressed.
	ColorAdvanceKey ColorAdvance = "key"
)

// Options stores player settings edited from the game.
type Options struct {
	ColorAdvance  ColorAdvance `yaml:"color_advance"`
	LineWidth     float32      `yaml:"line_width"`
	SelectedColor int          `yaml:"selected_color"`
}

func (o *Options) Path() string {
	return "Options"
}

func (o *Options) Default() {
	*o = Options{
		ColorAdvance: ColorAdvanceStroke,
		LineWidth:    10,
	}
}

// Normalize repairs values a hand edit may have broken.
func (o *Options) Normalize() {
	switch o.ColorAdvance {
	case ColorAdvanceStroke, ColorAdvanceKey:
	default:
		o.ColorAdvance = ColorAdvanceStroke
	}
	if o.LineWidth <= 0 {
		o.LineWidth = 10
	}
	if o.SelectedColor < 0 {
		o.SelectedColor = 0
	}
}
