package main

import (
	"image/color"

	"github.com/milk9111/poimap/common"
	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// NewPauseUI builds the overlay shown while the render loop is stopped.
func NewPauseUI(g *Game) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	title := widget.NewText(
		widget.TextOpts.Text("Paused", &face, white),
		widget.TextOpts.WidgetOpts(center),
	)

	resumeBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Resume", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(center),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.loop.Start()
		}),
	)

	quitBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Quit", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(center),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.quit = true
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/4, common.BaseHeight/4),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(resumeBtn)
	panel.AddChild(quitBtn)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}
