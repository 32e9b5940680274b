// Package game runs a solitaire session over a board: it deals, applies tile
// choices through the selection state machine, and offers reshuffle and hints.
//
// A Game is not safe for concurrent use. Front ends call it from their single
// update loop.
package game

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/milk9111/mahjong/board"
)

// Config holds the collaborators of a Game. Zero fields get defaults.
type Config struct {
	// Log receives session events. Nil discards them.
	Log *log.Logger
	// Rand drives dealing and reshuffling. Nil seeds from Seed.
	Rand board.Rand
	// Seed seeds the default random source. 0 uses the current time.
	Seed int64
	// NewSessionID names each dealt session. Nil uses random UUIDs.
	NewSessionID func() string
	// Layout is the board shape to deal. Nil uses board.PyramidLayout.
	Layout board.Layout
}

// Game owns the board of the current session and its counters.
type Game struct {
	log       *log.Logger
	rng       board.Rand
	newID     func() string
	layout    board.Layout
	board     *board.Board
	selection Selection
	moves     int
	elapsed   int
	sessionID string
}

// New creates a Game with no board dealt yet. Call NewGame to deal.
func New(cfg Config) (*Game, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("game: creating game: %w", err)
	}
	if cfg.Log == nil {
		cfg.Log = log.New(io.Discard, "", 0)
	}
	if cfg.Rand == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		cfg.Rand = rand.New(rand.NewSource(seed))
	}
	if cfg.NewSessionID == nil {
		cfg.NewSessionID = uuid.NewString
	}
	if cfg.Layout == nil {
		cfg.Layout = board.PyramidLayout
	}
	g := Game{
		log:    cfg.Log,
		rng:    cfg.Rand,
		newID:  cfg.NewSessionID,
		layout: cfg.Layout,
	}
	return &g, nil
}

func (cfg Config) validate() error {
	if cfg.Rand != nil && cfg.Seed != 0 {
		return errors.New("seed is ignored when a random source is supplied")
	}
	if cfg.Layout != nil {
		if err := cfg.Layout.Validate(); err != nil {
			return fmt.Errorf("layout: %w", err)
		}
	}
	return nil
}

// NewGame discards the current board and deals a fresh one. A deal without
// any free pair is reshuffled once before it is returned.
func (g *Game) NewGame() board.Snapshot {
	tiles, err := board.Assign(g.layout.Positions(), g.rng)
	if err != nil {
		panic(fmt.Sprintf("game: dealing validated layout: %v", err))
	}
	g.reset(board.New(tiles))
	g.log.Printf("game: session %s dealt %d tiles", g.sessionID, len(tiles))
	if len(g.board.AvailablePairs()) == 0 {
		g.Reshuffle()
	}
	return g.board.Snapshot()
}

// reset installs b as the session board with cleared counters.
func (g *Game) reset(b *board.Board) {
	g.board = b
	g.selection.Clear()
	g.moves = 0
	g.elapsed = 0
	g.sessionID = g.newID()
}

// Reshuffle redistributes the faces of the live tiles among those same tiles
// and clears the selection. Ids, positions and removed tiles are untouched.
// The result may still have no free pair.
func (g *Game) Reshuffle() board.Snapshot {
	live := g.board.Live()
	if len(live) < 2 {
		return g.board.Snapshot()
	}
	faces := make([]board.Face, len(live))
	for i, t := range live {
		faces[i] = t.Face
	}
	board.Shuffle(faces, g.rng)
	for i, t := range live {
		t.Face = faces[i]
	}
	g.selection.Clear()
	g.log.Printf("game: session %s reshuffled %d tiles, %d pairs available", g.sessionID, len(live), len(g.board.AvailablePairs()))
	return g.board.Snapshot()
}

// SelectTile applies the player choosing tile id.
func (g *Game) SelectTile(id int) TransitionResult {
	tr, pair := g.selection.Choose(g.board, id)
	r := TransitionResult{Transition: tr}
	if sel, ok := g.selection.ID(); ok {
		r.SelectedID = sel
	}
	if tr != Matched {
		return r
	}
	g.moves++
	r.Matched = true
	r.RemovedIDs = []int{pair[0].ID, pair[1].ID}
	r.Won = g.IsWon()
	r.Stuck = g.IsStuck()
	switch {
	case r.Won:
		g.log.Printf("game: session %s won in %d moves, %s", g.sessionID, g.moves, FormatElapsed(g.elapsed))
	case r.Stuck:
		g.log.Printf("game: session %s stuck with %d tiles left", g.sessionID, g.board.LiveCount())
	}
	return r
}

// Hint returns the first available pair without changing anything.
func (g *Game) Hint() (board.Pair, bool) {
	pairs := g.board.AvailablePairs()
	if len(pairs) == 0 {
		return board.Pair{}, false
	}
	return pairs[0], true
}

// AvailablePairs lists every free pair in first-seen face order.
func (g *Game) AvailablePairs() []board.Pair {
	return g.board.AvailablePairs()
}

// IsWon reports a dealt board with no tiles left.
func (g *Game) IsWon() bool {
	return g.board != nil && g.board.LiveCount() == 0
}

// IsStuck reports tiles left on the board but no free pair among them.
func (g *Game) IsStuck() bool {
	return g.board.LiveCount() > 0 && len(g.board.AvailablePairs()) == 0
}

// IsFree reports whether tile id can currently be chosen.
func (g *Game) IsFree(id int) bool {
	t, ok := g.board.Tile(id)
	return ok && g.board.IsFree(t)
}

// FreeCount is the number of tiles that can currently be chosen.
func (g *Game) FreeCount() int {
	return len(g.board.FreeTiles())
}

// PairsRemaining is half the number of live tiles.
func (g *Game) PairsRemaining() int {
	return g.board.LiveCount() / 2
}

// MovesMade is the number of matches this session.
func (g *Game) MovesMade() int {
	return g.moves
}

// ElapsedSeconds is the play time counted by Tick.
func (g *Game) ElapsedSeconds() int {
	return g.elapsed
}

// Tick adds one second of play time.
func (g *Game) Tick() {
	g.elapsed++
}

// Selected returns the held tile id, or false when idle.
func (g *Game) Selected() (int, bool) {
	return g.selection.ID()
}

// ClearSelection drops the held tile, if any.
func (g *Game) ClearSelection() {
	g.selection.Clear()
}

// Snapshot copies the current board.
func (g *Game) Snapshot() board.Snapshot {
	return g.board.Snapshot()
}

// SessionID names the current deal.
func (g *Game) SessionID() string {
	return g.sessionID
}
