package board

import (
	"errors"
	"fmt"
)

// Layer is one z-level of the board, a rectangle with inclusive bounds.
type Layer struct {
	Z  int
	X0 int
	X1 int
	Y0 int
	Y1 int
}

// Size is the number of cells in the layer.
func (l Layer) Size() int {
	if l.X1 < l.X0 || l.Y1 < l.Y0 {
		return 0
	}
	return (l.X1 - l.X0 + 1) * (l.Y1 - l.Y0 + 1)
}

// Layout is an ordered list of layers, bottom first.
type Layout []Layer

// PyramidLayout is the only board shape the game deals: 72 + 32 + 8 cells.
var PyramidLayout = Layout{
	{Z: 0, X0: 0, X1: 11, Y0: 0, Y1: 5},
	{Z: 1, X0: 2, X1: 9, Y0: 1, Y1: 4},
	{Z: 2, X0: 4, X1: 7, Y0: 2, Y1: 3},
}

// GeneratePositions returns the cells of PyramidLayout.
func GeneratePositions() []Position {
	return PyramidLayout.Positions()
}

// Positions emits one position per cell, layer by layer, rows then columns.
func (lo Layout) Positions() []Position {
	n := 0
	for _, l := range lo {
		n += l.Size()
	}
	positions := make([]Position, 0, n)
	for _, l := range lo {
		for y := l.Y0; y <= l.Y1; y++ {
			for x := l.X0; x <= l.X1; x++ {
				positions = append(positions, Position{X: x, Y: y, Z: l.Z})
			}
		}
	}
	return positions
}

// Validate checks that every layer has ordered bounds, that each upper layer
// sits inside the one below it, and that the total cell count is even.
func (lo Layout) Validate() error {
	if len(lo) == 0 {
		return errors.New("layout has no layers")
	}
	total := 0
	for i, l := range lo {
		if l.X1 < l.X0 || l.Y1 < l.Y0 {
			return fmt.Errorf("layer %d: inverted bounds x[%d,%d] y[%d,%d]", i, l.X0, l.X1, l.Y0, l.Y1)
		}
		if i > 0 {
			below := lo[i-1]
			switch {
			case l.Z <= below.Z:
				return fmt.Errorf("layer %d: z %d not above layer %d z %d", i, l.Z, i-1, below.Z)
			case l.X0 < below.X0, l.X1 > below.X1, l.Y0 < below.Y0, l.Y1 > below.Y1:
				return fmt.Errorf("layer %d: not contained in layer %d", i, i-1)
			}
		}
		total += l.Size()
	}
	if total%2 != 0 {
		return fmt.Errorf("layout has odd cell count %d", total)
	}
	return nil
}
