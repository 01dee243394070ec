package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/trazo/ecs/component"
	"github.com/milk9111/trazo/prefabs"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

// NewMenuUI builds the start menu: a title and a Play button centered on
// screen. Colors and labels come from drawing.yaml.
func NewMenuUI(g *Game) *ebitenui.UI {
	m := g.spec.Menu

	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 160})
	idleImg := imageui.NewNineSliceColor(colorOr(m.ButtonIdle, colornames.White))
	hoverImg := imageui.NewNineSliceColor(colorOr(m.ButtonHover, colornames.Royalblue))

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	btnTextColor := &widget.ButtonTextColor{Idle: colorOr(m.TextColor, colornames.Black)}

	title := widget.NewText(
		widget.TextOpts.Text(m.Title, &face, colornames.White),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	playBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: idleImg, Hover: hoverImg, Pressed: hoverImg}),
		widget.ButtonOpts.Text(m.PlayLabel, &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.states.Set(component.StatePlay)
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(16),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 24, Bottom: 24, Left: 40, Right: 40}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(baseWidth/4, baseHeight/4),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(playBtn)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

func colorOr(c prefabs.YAMLColor, fallback color.Color) color.Color {
	if c.Color == nil {
		return fallback
	}
	return c.Color
}
