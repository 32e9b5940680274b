package board

// AvailablePairs groups the free tiles by face in first-seen order and returns
// the first two members of every group that has at least two.
func AvailablePairs(tiles []*Tile) []Pair {
	var order []Face
	groups := make(map[Face][]*Tile)
	for _, t := range tiles {
		if t.Removed || !IsFree(t, tiles) {
			continue
		}
		if _, ok := groups[t.Face]; !ok {
			order = append(order, t.Face)
		}
		groups[t.Face] = append(groups[t.Face], t)
	}

	var pairs []Pair
	for _, f := range order {
		g := groups[f]
		if len(g) >= 2 {
			pairs = append(pairs, Pair{g[0], g[1]})
		}
	}
	return pairs
}

// FreeTiles returns the live tiles that are currently free, in board order.
func FreeTiles(tiles []*Tile) []*Tile {
	var free []*Tile
	for _, t := range tiles {
		if IsFree(t, tiles) {
			free = append(free, t)
		}
	}
	return free
}
