// Package render maps board cells to screen rectangles and draws tiles with
// ebiten. Geometry is pure and usable without a window.
package render

import (
	"slices"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/mahjong/board"
	"github.com/milk9111/mahjong/config"
)

// boardPadding is added to the grid extent when sizing the board area.
const boardPadding = 80

// Geometry places tiles: column x and row y step by tile size plus gap, and
// each layer shifts right and up by LayerOffset.
type Geometry struct {
	TileW       float64
	TileH       float64
	Gap         float64
	LayerOffset float64
	Margin      float64
	// OriginX and OriginY move the whole board, leaving room for the HUD.
	OriginX float64
	OriginY float64
}

func NewGeometry(c config.TileConfig) Geometry {
	return Geometry{
		TileW:       c.Width,
		TileH:       c.Height,
		Gap:         c.Gap,
		LayerOffset: c.LayerOffset,
		Margin:      c.Margin,
	}
}

// TopLeft is the screen position of the tile at p.
func (g Geometry) TopLeft(p board.Position) (x, y float64) {
	x = g.OriginX + float64(p.X)*(g.TileW+g.Gap) + float64(p.Z)*g.LayerOffset + g.Margin
	y = g.OriginY + float64(p.Y)*(g.TileH+g.Gap) - float64(p.Z)*g.LayerOffset + g.Margin
	return x, y
}

// Bounds is the screen rectangle of the tile at p. Screen y grows downward,
// so B is the top edge and T the bottom one.
func (g Geometry) Bounds(p board.Position) cp.BB {
	x, y := g.TopLeft(p)
	return cp.BB{L: x, B: y, R: x + g.TileW, T: y + g.TileH}
}

// BoardSize is the pixel size of the board area for a grid reaching maxX, maxY.
func (g Geometry) BoardSize(maxX, maxY int) (w, h float64) {
	if maxX < 0 || maxY < 0 {
		return 0, 0
	}
	w = float64(maxX+1)*(g.TileW+g.Gap) + boardPadding
	h = float64(maxY+1)*(g.TileH+g.Gap) + boardPadding
	return w, h
}

// DrawOrder returns the live tiles bottom layer first, keeping board order
// within a layer. Later tiles are drawn over earlier ones.
func DrawOrder(s board.Snapshot) []board.TileState {
	live := make([]board.TileState, 0, len(s))
	for _, ts := range s {
		if !ts.Removed {
			live = append(live, ts)
		}
	}
	slices.SortStableFunc(live, func(a, b board.TileState) int {
		return a.Z - b.Z
	})
	return live
}

// HitTest returns the id of the topmost live tile drawn under (x, y).
func (g Geometry) HitTest(s board.Snapshot, x, y float64) (int, bool) {
	pt := cp.Vector{X: x, Y: y}
	hit := 0
	for _, ts := range DrawOrder(s) {
		if g.Bounds(ts.Position()).ContainsVect(pt) {
			hit = ts.ID
		}
	}
	return hit, hit != 0
}
