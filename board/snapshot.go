package board

import (
	"fmt"
	"slices"
	"strings"
)

// TileState is a read-only copy of a tile for presentation layers.
type TileState struct {
	ID      int  `json:"id" yaml:"id"`
	X       int  `json:"x" yaml:"x"`
	Y       int  `json:"y" yaml:"y"`
	Z       int  `json:"z" yaml:"z"`
	Face    Face `json:"face" yaml:"face"`
	Removed bool `json:"removed" yaml:"removed"`
}

// Position returns the grid cell of the tile.
func (ts TileState) Position() Position {
	return Position{X: ts.X, Y: ts.Y, Z: ts.Z}
}

// Snapshot is the board in tile order.
type Snapshot []TileState

// Snapshot copies the board.
func (b *Board) Snapshot() Snapshot {
	if b == nil {
		return nil
	}
	s := make(Snapshot, len(b.Tiles))
	for i, t := range b.Tiles {
		s[i] = TileState{
			ID:      t.ID,
			X:       t.Position.X,
			Y:       t.Position.Y,
			Z:       t.Position.Z,
			Face:    t.Face,
			Removed: t.Removed,
		}
	}
	return s
}

// Bounds returns the largest x and y over all tiles, or -1, -1 when empty.
func (s Snapshot) Bounds() (maxX, maxY int) {
	maxX, maxY = -1, -1
	for _, ts := range s {
		maxX = max(maxX, ts.X)
		maxY = max(maxY, ts.Y)
	}
	return maxX, maxY
}

// Layers returns the distinct z values in ascending order.
func (s Snapshot) Layers() []int {
	seen := make(map[int]bool)
	var zs []int
	for _, ts := range s {
		if !seen[ts.Z] {
			seen[ts.Z] = true
			zs = append(zs, ts.Z)
		}
	}
	slices.Sort(zs)
	return zs
}

// String draws one text grid per layer. Live tiles show their face, removed
// tiles show "--" and empty cells "..".
func (s Snapshot) String() string {
	maxX, maxY := s.Bounds()
	if maxX < 0 {
		return ""
	}
	var sb strings.Builder
	for _, z := range s.Layers() {
		cells := make(map[Position]TileState)
		for _, ts := range s {
			if ts.Z == z {
				cells[ts.Position()] = ts
			}
		}
		fmt.Fprintf(&sb, "layer %d\n", z)
		for y := 0; y <= maxY; y++ {
			for x := 0; x <= maxX; x++ {
				if x > 0 {
					sb.WriteByte(' ')
				}
				ts, ok := cells[Position{X: x, Y: y, Z: z}]
				switch {
				case !ok:
					sb.WriteString("..")
				case ts.Removed:
					sb.WriteString("--")
				default:
					fmt.Fprintf(&sb, "%-2s", ts.Face)
				}
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
