package game

import "github.com/milk9111/mahjong/board"

// Transition names the edge taken by a Selection when a tile is chosen.
type Transition int

const (
	// Ignored means the chosen tile was missing, removed or blocked.
	Ignored Transition = iota
	// Selected means nothing was selected and the tile is now selected.
	Selected
	// Deselected means the selected tile was chosen again.
	Deselected
	// Reset means the held selection was stale and has been dropped.
	Reset
	// Moved means a tile with a different face took over the selection.
	Moved
	// Matched means the two tiles shared a face and were removed.
	Matched
)

func (t Transition) String() string {
	switch t {
	case Ignored:
		return "ignored"
	case Selected:
		return "selected"
	case Deselected:
		return "deselected"
	case Reset:
		return "reset"
	case Moved:
		return "moved"
	case Matched:
		return "matched"
	default:
		return "unknown"
	}
}

// Selection holds at most one tile id. The zero value is idle.
type Selection struct {
	id     int
	active bool
}

// ID returns the selected tile id, or false when idle.
func (s Selection) ID() (int, bool) {
	return s.id, s.active
}

// Idle reports whether nothing is selected.
func (s Selection) Idle() bool {
	return !s.active
}

// Clear returns the selection to idle.
func (s *Selection) Clear() {
	s.id = 0
	s.active = false
}

func (s *Selection) set(id int) {
	s.id = id
	s.active = true
}

// Choose applies the player choosing tile id on b. A match removes both tiles
// from b and returns them.
func (s *Selection) Choose(b *board.Board, id int) (Transition, board.Pair) {
	t, ok := b.Tile(id)
	if !ok || !b.IsFree(t) {
		return Ignored, board.Pair{}
	}
	if !s.active {
		s.set(id)
		return Selected, board.Pair{}
	}
	if s.id == id {
		s.Clear()
		return Deselected, board.Pair{}
	}
	held, ok := b.Tile(s.id)
	if !ok || held.Removed {
		s.Clear()
		return Reset, board.Pair{}
	}
	if held.Face == t.Face {
		held.Removed = true
		t.Removed = true
		s.Clear()
		return Matched, board.Pair{held, t}
	}
	s.set(id)
	return Moved, board.Pair{}
}
