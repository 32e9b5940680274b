// Package board holds the layered tile grid of a solitaire deal and the pure
// rules over it: which tiles are free and which free pairs can be taken.
package board

import "fmt"

// Position is a cell of the layered grid. X is the column, Y the row, Z the layer.
type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
	Z int `json:"z" yaml:"z"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// Tile is the unit of play. ID is stable for the tile's lifetime, Face only
// changes during a reshuffle and Removed never goes back to false.
type Tile struct {
	ID       int
	Position Position
	Face     Face
	Removed  bool
}

// Pair is two distinct live tiles with the same face.
type Pair [2]*Tile

// IDs returns the ids of both tiles in the pair.
func (p Pair) IDs() [2]int {
	return [2]int{p[0].ID, p[1].ID}
}

// Board is the ordered set of tiles of one session.
type Board struct {
	Tiles []*Tile
}

// New creates a board over the tiles, keeping their order.
func New(tiles []*Tile) *Board {
	return &Board{Tiles: tiles}
}

// Tile looks up a tile by id.
func (b *Board) Tile(id int) (*Tile, bool) {
	if b == nil {
		return nil, false
	}
	for _, t := range b.Tiles {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// Live returns the tiles that have not been removed, in board order.
func (b *Board) Live() []*Tile {
	if b == nil {
		return nil
	}
	live := make([]*Tile, 0, len(b.Tiles))
	for _, t := range b.Tiles {
		if !t.Removed {
			live = append(live, t)
		}
	}
	return live
}

// LiveCount is the number of tiles still on the board.
func (b *Board) LiveCount() int {
	n := 0
	if b == nil {
		return n
	}
	for _, t := range b.Tiles {
		if !t.Removed {
			n++
		}
	}
	return n
}

// IsFree reports whether t can be selected on this board.
func (b *Board) IsFree(t *Tile) bool {
	if b == nil {
		return false
	}
	return IsFree(t, b.Tiles)
}

// AvailablePairs lists the free pairs on this board.
func (b *Board) AvailablePairs() []Pair {
	if b == nil {
		return nil
	}
	return AvailablePairs(b.Tiles)
}

// FreeTiles lists the tiles that can be selected, in board order.
func (b *Board) FreeTiles() []*Tile {
	if b == nil {
		return nil
	}
	return FreeTiles(b.Tiles)
}
