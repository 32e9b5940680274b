package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/mahjong/board"
	"github.com/milk9111/mahjong/config"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

// suitText colors tile labels by suit. Winds and dragons without an entry use
// the configured text color.
var suitText = map[string]color.RGBA{
	"bamboo":     colornames.Darkgreen,
	"characters": colornames.Darkred,
	"dots":       colornames.Navy,
	"dragon":     colornames.Purple,
}

// State is how a tile should look this frame.
type State int

const (
	StateFree State = iota
	StateBlocked
	StateSelected
	StateHint
)

// TileView is one tile to draw. Fade runs from 1 down to 0 while a matched
// tile leaves the board.
type TileView struct {
	Tile  board.TileState
	State State
	Fade  float64
}

// TileRenderer draws tiles in the configured colors.
type TileRenderer struct {
	Geometry Geometry
	Colors   config.ColorsConfig
	face     ebtext.Face
}

func NewTileRenderer(geo Geometry, colors config.ColorsConfig) *TileRenderer {
	return &TileRenderer{
		Geometry: geo,
		Colors:   colors,
		face:     ebtext.NewGoXFace(basicfont.Face7x13),
	}
}

// Draw paints the views in order. Callers pass them in DrawOrder.
func (r *TileRenderer) Draw(screen *ebiten.Image, views []TileView) {
	for _, v := range views {
		r.drawTile(screen, v)
	}
}

func (r *TileRenderer) drawTile(screen *ebiten.Image, v TileView) {
	alpha := 1.0
	if v.Fade > 0 {
		alpha = v.Fade
	}
	x, y := r.Geometry.TopLeft(v.Tile.Position())
	w, h := float32(r.Geometry.TileW), float32(r.Geometry.TileH)

	fill := r.fillColor(v.State)
	vector.FillRect(screen, float32(x), float32(y), w, h, scaleAlpha(fill, alpha), false)

	border := r.Colors.Border.RGBA
	width := float32(1.5)
	if v.State == StateSelected || v.State == StateHint {
		width = 3
	}
	vector.StrokeRect(screen, float32(x), float32(y), w, h, width, scaleAlpha(border, alpha), false)

	label := v.Tile.Face.String()
	tw, th := ebtext.Measure(label, r.face, 0)
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x+(r.Geometry.TileW-tw)/2, y+(r.Geometry.TileH-th)/2)
	op.ColorScale.ScaleWithColor(r.labelColor(v.Tile.Face))
	op.ColorScale.ScaleAlpha(float32(alpha))
	ebtext.Draw(screen, label, r.face, op)
}

func (r *TileRenderer) fillColor(s State) color.RGBA {
	switch s {
	case StateBlocked:
		return r.Colors.Blocked.RGBA
	case StateSelected:
		return r.Colors.Selected.RGBA
	case StateHint:
		return r.Colors.Hint.RGBA
	default:
		return r.Colors.Face.RGBA
	}
}

func (r *TileRenderer) labelColor(f board.Face) color.RGBA {
	if c, ok := suitText[f.Suit()]; ok {
		return c
	}
	return r.Colors.Text.RGBA
}

func scaleAlpha(c color.RGBA, alpha float64) color.RGBA {
	if alpha >= 1 {
		return c
	}
	// color.RGBA is premultiplied, so every channel scales.
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
