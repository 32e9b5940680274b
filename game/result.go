package game

// TransitionResult reports what a single tile choice did.
type TransitionResult struct {
	// Transition is the selection edge that was taken.
	Transition Transition `json:"transition"`
	// Matched is true when two tiles were removed.
	Matched bool `json:"matched"`
	// RemovedIDs holds the two removed tile ids when Matched.
	RemovedIDs []int `json:"removedIds,omitempty"`
	// SelectedID is the tile held after the choice, 0 when idle.
	SelectedID int `json:"selectedId,omitempty"`
	// Won is set by the terminal check after a match when the board is empty.
	Won bool `json:"won"`
	// Stuck is set by the terminal check after a match when tiles remain but no free pair does.
	Stuck bool `json:"stuck"`
}

// Changed reports whether the choice had any effect.
func (r TransitionResult) Changed() bool {
	return r.Transition != Ignored
}

// Event returns the status event for the result, preferring the terminal ones.
func (r TransitionResult) Event() (Event, bool) {
	switch {
	case r.Won:
		return EventWon, true
	case r.Stuck:
		return EventStuck, true
	case r.Matched:
		return EventMatched, true
	}
	return 0, false
}
