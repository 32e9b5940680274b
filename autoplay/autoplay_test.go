package autoplay

import (
	"context"
	"testing"

	"github.com/milk9111/mahjong/board"
	"github.com/milk9111/mahjong/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPairs() []board.Pair {
	t := func(id, z int, f board.Face) *board.Tile {
		return &board.Tile{ID: id, Position: board.Position{X: id, Z: z}, Face: f}
	}
	return []board.Pair{
		{t(1, 0, "B1"), t(2, 0, "B1")},
		{t(3, 1, "C2"), t(4, 2, "C2")},
		{t(5, 1, "E"), t(6, 0, "E")},
	}
}

func TestBundledPolicies(t *testing.T) {
	cases := []struct {
		name string
		want int
	}{
		{"", 0},
		{"first", 0},
		{"upper", 1},
		{"scripts/upper.tengo", 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := LoadPolicy(c.name)
			require.NoError(t, err)
			got, err := p.Choose(testPairs(), State{Live: 6})
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestPolicyErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"out_of_range", "choose := func(pairs, state) { return len(pairs) }"},
		{"negative", "choose := func(pairs, state) { return -1 }"},
		{"not_int", `choose := func(pairs, state) { return "first" }`},
		{"runtime_error", "choose := func(pairs, state) { return pairs[0].a.id / 0 }"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := NewPolicy(c.name, []byte(c.src))
			require.NoError(t, err)
			_, err = p.Choose(testPairs(), State{})
			assert.Error(t, err)
		})
	}

	_, err := NewPolicy("missing_choose", []byte("x := 1"))
	assert.Error(t, err)

	_, err = LoadPolicy("no_such_policy")
	assert.Error(t, err)

	p, err := LoadPolicy("")
	require.NoError(t, err)
	_, err = p.Choose(nil, State{})
	assert.Error(t, err)
}

func TestPolicyRuntimeFault(t *testing.T) {
	src := "choose := func(pairs, state) { return 1 / state.free - 1 }"
	p, err := NewPolicy("divide", []byte(src))
	require.NoError(t, err)

	_, err = p.Choose(testPairs(), State{Free: 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "divide")

	got, err := p.Choose(testPairs(), State{Free: 1})
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestPolicySeesState(t *testing.T) {
	src := "choose := func(pairs, state) { return state.moves % len(pairs) }"
	p, err := NewPolicy("state", []byte(src))
	require.NoError(t, err)
	got, err := p.Choose(testPairs(), State{Moves: 5})
	require.NoError(t, err)
	assert.Equal(t, 2, got)
	assert.Equal(t, "state", p.Name())
}

func newGame(t *testing.T, seed int64) *game.Game {
	t.Helper()
	g, err := game.New(game.Config{Seed: seed})
	require.NoError(t, err)
	g.NewGame()
	return g
}

func TestStep(t *testing.T) {
	g := newGame(t, 11)
	p, err := LoadPolicy("")
	require.NoError(t, err)

	want, ok := g.Hint()
	require.True(t, ok)
	g.SelectTile(g.AvailablePairs()[len(g.AvailablePairs())-1][0].ID)

	r, ok, err := Step(g, p)
	require.NoError(t, err)
	require.True(t, ok)
	assert.ElementsMatch(t, want.IDs(), r.RemovedIDs, "held selection is dropped first")
	assert.Equal(t, 1, g.MovesMade())
}

func TestPlayInvariants(t *testing.T) {
	p, err := LoadPolicy("upper")
	require.NoError(t, err)
	for seed := int64(1); seed <= 5; seed++ {
		g := newGame(t, seed)
		res, err := Play(context.Background(), g, p, DefaultMaxReshuffles)
		require.NoError(t, err)
		assert.Equal(t, (112-res.Left)/2, res.Moves, "seed %d", seed)
		assert.Equal(t, res.Won, res.Left == 0)
		assert.LessOrEqual(t, res.Reshuffles, DefaultMaxReshuffles)
	}
}

func TestPlayCanceled(t *testing.T) {
	p, err := LoadPolicy("")
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Play(ctx, newGame(t, 1), p, DefaultMaxReshuffles)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBench(t *testing.T) {
	p, err := LoadPolicy("")
	require.NoError(t, err)
	g, err := game.New(game.Config{Seed: 3})
	require.NoError(t, err)

	stats, err := Bench(context.Background(), g, p, 4, 5)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Games)
	assert.LessOrEqual(t, stats.Wins, 4)
	assert.Greater(t, stats.Moves, 0)
	assert.Contains(t, stats.String(), "games=4")
}

func TestStatsEmpty(t *testing.T) {
	var s Stats
	assert.Zero(t, s.WinRate())
	assert.Zero(t, s.AvgMoves())

	s.Add(Result{Won: true, Moves: 56})
	s.Add(Result{Moves: 40, Reshuffles: 2})
	assert.Equal(t, 0.5, s.WinRate())
	assert.Equal(t, 48.0, s.AvgMoves())
	assert.Equal(t, 2, s.Reshuffles)
}
