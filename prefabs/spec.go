package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

const DrawingSpecFile = "drawing.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// DrawingSpec configures the canvas and how strokes look.
type DrawingSpec struct {
	Canvas       CanvasSpec  `yaml:"canvas"`
	Palette      []YAMLColor `yaml:"palette"`
	Stroke       StrokeSpec  `yaml:"stroke"`
	ClearFlash   FlashSpec   `yaml:"clear_flash"`
	Menu         MenuSpec    `yaml:"menu"`
	DragDeadZone float64     `yaml:"drag_dead_zone"`
	Camera       CameraSpec  `yaml:"camera"`
	Export       ExportSpec  `yaml:"export"`
}

type CanvasSpec struct {
	Color       YAMLColor       `yaml:"color"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
}

type StrokeSpec struct {
	Width     float32 `yaml:"width"`
	RoundJoin bool    `yaml:"round_join"`
	AntiAlias bool    `yaml:"anti_alias"`
}

type FlashSpec struct {
	Color    YAMLColor `yaml:"color"`
	Duration float32   `yaml:"duration"`
	Ease     string    `yaml:"ease"`
}

type MenuSpec struct {
	Title       string    `yaml:"title"`
	PlayLabel   string    `yaml:"play_label"`
	ButtonIdle  YAMLColor `yaml:"button_idle"`
	ButtonHover YAMLColor `yaml:"button_hover"`
	TextColor   YAMLColor `yaml:"text_color"`
}

type CameraSpec struct {
	Zoom float64 `yaml:"zoom"`
}

type ExportSpec struct {
	PDFPath string `yaml:"pdf_path"`
}

type RenderLayerSpec struct {
	Index int `yaml:"index"`
}

// LoadDrawingSpec loads drawing.yaml and fills in anything left empty.
func LoadDrawingSpec() (*DrawingSpec, error) {
	spec, err := LoadSpec[DrawingSpec](DrawingSpecFile)
	if err != nil {
		return nil, err
	}
	spec.applyDefaults()
	return &spec, nil
}

func (s *DrawingSpec) applyDefaults() {
	if len(s.Palette) == 0 {
		s.Palette = []YAMLColor{{colornames.Royalblue}, {colornames.Mediumseagreen}, {colornames.Gold}, {colornames.Tomato}}
	}
	if s.Canvas.Color.Color == nil {
		s.Canvas.Color = YAMLColor{colornames.Ivory}
	}
	if s.Stroke.Width <= 0 {
		s.Stroke.Width = 10
	}
	if s.ClearFlash.Color.Color == nil {
		s.ClearFlash.Color = YAMLColor{color.White}
	}
	if s.ClearFlash.Duration <= 0 {
		s.ClearFlash.Duration = 0.35
	}
	if s.Menu.Title == "" {
		s.Menu.Title = "Menu"
	}
	if s.Menu.PlayLabel == "" {
		s.Menu.PlayLabel = "Play"
	}
	if s.Menu.ButtonIdle.Color == nil {
		s.Menu.ButtonIdle = YAMLColor{color.White}
	}
	if s.Menu.ButtonHover.Color == nil {
		s.Menu.ButtonHover = YAMLColor{colornames.Royalblue}
	}
	if s.Menu.TextColor.Color == nil {
		s.Menu.TextColor = YAMLColor{color.Black}
	}
	if s.Camera.Zoom <= 0 {
		s.Camera.Zoom = 1
	}
	if s.Export.PDFPath == "" {
		s.Export.PDFPath = "drawing.pdf"
	}
}

// Colors returns the palette as plain colors.
func (s *DrawingSpec) Colors() []color.Color {
	out := make([]color.Color, 0, len(s.Palette))
	for _, c := range s.Palette {
		out = append(out, c.Color)
	}
	return out
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or an SVG color name.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = parsed
	return nil
}

func (c YAMLColor) MarshalYAML() (any, error) {
	if c.Color == nil {
		return "", nil
	}
	return HexColor(c.Color), nil
}

// ParseColor parses a hex color or an SVG color name.
func ParseColor(value string) (color.Color, error) {
	name := strings.ToLower(strings.TrimSpace(value))
	if named, ok := colornames.Map[name]; ok {
		return named, nil
	}

	s := strings.TrimPrefix(name, "#")
	if len(s) != 6 && len(s) != 8 {
		return nil, fmt.Errorf("invalid color format: %s", value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return nil, err
	}
	g, err := parse(2)
	if err != nil {
		return nil, err
	}
	b, err := parse(4)
	if err != nil {
		return nil, err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return nil, err
		}
	}

	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}

// HexColor formats c as "#rrggbb", adding the alpha byte when it is not
// opaque.
func HexColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
