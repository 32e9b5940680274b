package autoplay

import (
	"context"
	"fmt"

	"github.com/milk9111/mahjong/game"
)

// DefaultMaxReshuffles bounds how often Play reshuffles a stuck board.
const DefaultMaxReshuffles = 20

// Step plays the pair the policy picks. It reports false, with no change to
// the game, when no pair is available.
func Step(g *game.Game, p *Policy) (game.TransitionResult, bool, error) {
	pairs := g.AvailablePairs()
	if len(pairs) == 0 {
		return game.TransitionResult{}, false, nil
	}
	idx, err := p.Choose(pairs, State{
		Live:  g.PairsRemaining() * 2,
		Moves: g.MovesMade(),
		Free:  g.FreeCount(),
	})
	if err != nil {
		return game.TransitionResult{}, false, err
	}
	pair := pairs[idx]
	g.ClearSelection()
	g.SelectTile(pair[0].ID)
	r := g.SelectTile(pair[1].ID)
	if !r.Matched {
		return r, false, fmt.Errorf("autoplay: pair %v did not match: %s", pair.IDs(), r.Transition)
	}
	return r, true, nil
}

// Result summarizes one played-out deal.
type Result struct {
	Won        bool
	Moves      int
	Reshuffles int
	Left       int
}

// Play steps until the board is won or still stuck after maxReshuffles.
func Play(ctx context.Context, g *game.Game, p *Policy, maxReshuffles int) (Result, error) {
	var res Result
	for !g.IsWon() {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		_, ok, err := Step(g, p)
		if err != nil {
			return res, err
		}
		if ok {
			continue
		}
		if res.Reshuffles >= maxReshuffles {
			break
		}
		g.Reshuffle()
		res.Reshuffles++
	}
	res.Won = g.IsWon()
	res.Moves = g.MovesMade()
	res.Left = g.PairsRemaining() * 2
	return res, nil
}

// Stats aggregates many played deals.
type Stats struct {
	Games      int
	Wins       int
	Moves      int
	Reshuffles int
}

func (s *Stats) Add(r Result) {
	s.Games++
	if r.Won {
		s.Wins++
	}
	s.Moves += r.Moves
	s.Reshuffles += r.Reshuffles
}

func (s Stats) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

func (s Stats) AvgMoves() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Moves) / float64(s.Games)
}

func (s Stats) String() string {
	return fmt.Sprintf("games=%d wins=%d win_rate=%.1f%% avg_moves=%.1f reshuffles=%d",
		s.Games, s.Wins, s.WinRate()*100, s.AvgMoves(), s.Reshuffles)
}

// Bench deals and plays n games on g, one after another.
func Bench(ctx context.Context, g *game.Game, p *Policy, n, maxReshuffles int) (Stats, error) {
	var stats Stats
	for i := 0; i < n; i++ {
		g.NewGame()
		r, err := Play(ctx, g, p, maxReshuffles)
		if err != nil {
			return stats, fmt.Errorf("autoplay: game %d: %w", i+1, err)
		}
		stats.Add(r)
	}
	return stats, nil
}
