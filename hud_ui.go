package main

import (
	"image/color"

	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// hudHeight is the strip above the board reserved for the HUD.
const hudHeight = 64

// HUD is the button bar with the header and status lines.
type HUD struct {
	UI     *ebitenui.UI
	header *widget.Text
	status *widget.Text
	auto   *widget.Button
}

// hudActions are the handlers behind the buttons.
type hudActions struct {
	NewGame  func()
	Hint     func()
	Shuffle  func()
	Autoplay func()
	Copy     func()
}

func NewHUD(actions hudActions, textColor color.Color) *HUD {
	barImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 120})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnPressedImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	btnTextColor := &widget.ButtonTextColor{Idle: colornames.White, Disabled: colornames.Gray}

	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnPressedImg, Disabled: btnImg}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(84, 32)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if onClick != nil {
					onClick()
				}
			}),
		)
	}

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)
	buttons.AddChild(button("New Game", actions.NewGame))
	buttons.AddChild(button("Hint", actions.Hint))
	buttons.AddChild(button("Shuffle", actions.Shuffle))
	auto := button("Autoplay", actions.Autoplay)
	buttons.AddChild(auto)
	buttons.AddChild(button("Copy", actions.Copy))

	header := widget.NewText(widget.TextOpts.Text("", &face, textColor))
	status := widget.NewText(widget.TextOpts.Text("", &face, textColor))

	lines := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
	lines.AddChild(header)
	lines.AddChild(status)

	bar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(barImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(24),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				StretchHorizontal:  true,
			}),
		),
	)
	bar.AddChild(buttons)
	bar.AddChild(lines)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(bar)

	return &HUD{
		UI:     &ebitenui.UI{Container: root},
		header: header,
		status: status,
		auto:   auto,
	}
}

func (h *HUD) SetHeader(s string) {
	h.header.Label = s
}

func (h *HUD) SetStatus(s string) {
	h.status.Label = s
}

// SetAutoplay enables the Autoplay button only when a policy is loaded.
func (h *HUD) SetAutoplay(enabled bool) {
	h.auto.GetWidget().Disabled = !enabled
}
