package game

import (
	"fmt"
)

// Event is something the player should be told about.
type Event int

const (
	EventNewGame Event = iota + 1
	EventMatched
	EventWon
	EventStuck
	EventShuffled
	EventHint
	EventNoHint
)

// Status returns the status line for ev using the current session counters.
func (g *Game) Status(ev Event) string {
	switch ev {
	case EventNewGame:
		return "New game started."
	case EventMatched:
		return "Pair matched."
	case EventWon:
		return fmt.Sprintf("You won! Time %s, moves: %d.", FormatElapsed(g.elapsed), g.moves)
	case EventStuck:
		return "No free pairs left. Press Shuffle."
	case EventShuffled:
		return "Remaining tiles shuffled."
	case EventHint:
		if p, ok := g.Hint(); ok {
			return fmt.Sprintf("Hint: found a pair of %s.", p[0].Face)
		}
		return g.Status(EventNoHint)
	case EventNoHint:
		return "No hint: no free pairs left."
	}
	return ""
}

// TerminalEvent runs the end-of-move check: won when the board is empty,
// stuck when tiles remain without a free pair.
func (g *Game) TerminalEvent() (Event, bool) {
	switch {
	case g.IsWon():
		return EventWon, true
	case g.IsStuck():
		return EventStuck, true
	}
	return 0, false
}

// FormatElapsed renders seconds as mm:ss. Minutes keep growing past 99.
func FormatElapsed(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
