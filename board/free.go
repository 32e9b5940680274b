package board

// IsFree reports whether t is selectable among tiles: it is live, nothing live
// sits above it in the same column, and at least one horizontal side is open.
// It is evaluated against the current removed flags on every call.
func IsFree(t *Tile, tiles []*Tile) bool {
	if t == nil || t.Removed || hasTop(t, tiles) {
		return false
	}
	leftBlocked := hasNeighbor(t, tiles, -1)
	rightBlocked := hasNeighbor(t, tiles, 1)
	return !(leftBlocked && rightBlocked)
}

// hasTop reports a live tile at the same (x, y) on a higher layer.
func hasTop(t *Tile, tiles []*Tile) bool {
	for _, o := range tiles {
		if o.Removed || o.ID == t.ID {
			continue
		}
		if o.Position.Z > t.Position.Z && o.Position.X == t.Position.X && o.Position.Y == t.Position.Y {
			return true
		}
	}
	return false
}

// hasNeighbor reports a live tile next to t in direction dx on the same row and layer.
func hasNeighbor(t *Tile, tiles []*Tile, dx int) bool {
	for _, o := range tiles {
		if o.Removed || o.ID == t.ID {
			continue
		}
		if o.Position.Z == t.Position.Z && o.Position.Y == t.Position.Y && o.Position.X == t.Position.X+dx {
			return true
		}
	}
	return false
}
