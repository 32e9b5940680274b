package board

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noSwapRand makes Shuffle keep the original order.
type noSwapRand struct{}

func (noSwapRand) Intn(n int) int { return n - 1 }

func tileAt(id, x, y, z int, f Face) *Tile {
	return &Tile{ID: id, Position: Position{X: x, Y: y, Z: z}, Face: f}
}

func TestGeneratePositions(t *testing.T) {
	positions := GeneratePositions()
	require.Len(t, positions, 112)

	assert.Equal(t, Position{X: 0, Y: 0, Z: 0}, positions[0])
	assert.Equal(t, Position{X: 1, Y: 0, Z: 0}, positions[1], "x is the inner loop")
	assert.Equal(t, Position{X: 0, Y: 1, Z: 0}, positions[12])
	assert.Equal(t, Position{X: 11, Y: 5, Z: 0}, positions[71])
	assert.Equal(t, Position{X: 2, Y: 1, Z: 1}, positions[72])
	assert.Equal(t, Position{X: 4, Y: 2, Z: 2}, positions[104])
	assert.Equal(t, Position{X: 7, Y: 3, Z: 2}, positions[111])

	perLayer := map[int]int{}
	seen := map[Position]bool{}
	for _, p := range positions {
		perLayer[p.Z]++
		assert.False(t, seen[p], "duplicate position %v", p)
		seen[p] = true
	}
	assert.Equal(t, map[int]int{0: 72, 1: 32, 2: 8}, perLayer)
	assert.Equal(t, positions, GeneratePositions(), "deterministic")
}

func TestLayoutValidate(t *testing.T) {
	cases := []struct {
		name    string
		layout  Layout
		wantErr bool
	}{
		{"pyramid", PyramidLayout, false},
		{"empty", Layout{}, true},
		{"inverted", Layout{{Z: 0, X0: 3, X1: 1, Y0: 0, Y1: 1}}, true},
		{"odd", Layout{{Z: 0, X0: 0, X1: 2, Y0: 0, Y1: 0}}, true},
		{"upper_outside", Layout{{Z: 0, X0: 0, X1: 3, Y0: 0, Y1: 1}, {Z: 1, X0: 2, X1: 4, Y0: 0, Y1: 1}}, true},
		{"same_z", Layout{{Z: 0, X0: 0, X1: 3, Y0: 0, Y1: 1}, {Z: 0, X0: 1, X1: 2, Y0: 0, Y1: 1}}, true},
		{"two_by_two", Layout{{Z: 0, X0: 0, X1: 1, Y0: 0, Y1: 1}}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.layout.Validate()
			if c.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAssignPerfectPairing(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		layout := Layout{{Z: 0, X0: 0, X1: 7, Y0: 0, Y1: 3}}
		tiles, err := Assign(layout.Positions(), rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		require.Len(t, tiles, 32)
		for f, n := range FaceCounts(tiles) {
			assert.Equal(t, 2, n, "seed %d face %s", seed, f)
		}
	}
}

func TestAssignPyramid(t *testing.T) {
	tiles, err := Assign(GeneratePositions(), rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	require.Len(t, tiles, 112)

	counts := FaceCounts(tiles)
	require.Len(t, counts, len(Faces))
	for i, f := range Faces {
		want := 2
		if i < 56-len(Faces) {
			want = 4
		}
		assert.Equal(t, want, counts[f], "face %s", f)
	}
	for i, tl := range tiles {
		assert.Equal(t, i+1, tl.ID)
		assert.False(t, tl.Removed)
	}
}

func TestAssignOrderWithoutShuffle(t *testing.T) {
	positions := Layout{{Z: 0, X0: 0, X1: 1, Y0: 0, Y1: 1}}.Positions()
	tiles, err := Assign(positions, noSwapRand{})
	require.NoError(t, err)
	got := make([]Face, len(tiles))
	for i, tl := range tiles {
		got[i] = tl.Face
		assert.Equal(t, positions[i], tl.Position)
	}
	assert.Equal(t, []Face{"B1", "B2", "B1", "B2"}, got)
}

func TestAssignOdd(t *testing.T) {
	_, err := Assign([]Position{{}, {X: 1}, {X: 2}}, noSwapRand{})
	assert.ErrorIs(t, err, ErrOddPositions)
}

func TestShuffleKeepsMultiset(t *testing.T) {
	faces := []Face{"B1", "B1", "C2", "C2", "E", "E", "Wh", "Wh"}
	shuffled := append([]Face(nil), faces...)
	Shuffle(shuffled, rand.New(rand.NewSource(3)))
	assert.ElementsMatch(t, faces, shuffled)
}

func TestIsFree(t *testing.T) {
	cases := []struct {
		name  string
		tiles []*Tile
		check int
		want  bool
	}{
		{
			name:  "alone",
			tiles: []*Tile{tileAt(1, 0, 0, 0, "B1")},
			check: 1,
			want:  true,
		},
		{
			name:  "left_only",
			tiles: []*Tile{tileAt(1, 1, 0, 0, "B1"), tileAt(2, 0, 0, 0, "B2")},
			check: 1,
			want:  true,
		},
		{
			name:  "right_only",
			tiles: []*Tile{tileAt(1, 1, 0, 0, "B1"), tileAt(2, 2, 0, 0, "B2")},
			check: 1,
			want:  true,
		},
		{
			name:  "both_sides",
			tiles: []*Tile{tileAt(1, 1, 0, 0, "B1"), tileAt(2, 0, 0, 0, "B2"), tileAt(3, 2, 0, 0, "B3")},
			check: 1,
			want:  false,
		},
		{
			name:  "neighbours_on_other_row",
			tiles: []*Tile{tileAt(1, 1, 0, 0, "B1"), tileAt(2, 0, 1, 0, "B2"), tileAt(3, 2, 1, 0, "B3")},
			check: 1,
			want:  true,
		},
		{
			name:  "neighbours_on_other_layer",
			tiles: []*Tile{tileAt(1, 1, 0, 0, "B1"), tileAt(2, 0, 0, 1, "B2"), tileAt(3, 2, 0, 1, "B3")},
			check: 1,
			want:  true,
		},
		{
			name:  "covered",
			tiles: []*Tile{tileAt(1, 0, 0, 0, "B1"), tileAt(2, 0, 0, 1, "B2")},
			check: 1,
			want:  false,
		},
		{
			name:  "covered_two_layers_up",
			tiles: []*Tile{tileAt(1, 0, 0, 0, "B1"), tileAt(2, 0, 0, 2, "B2")},
			check: 1,
			want:  false,
		},
		{
			name:  "top_tile",
			tiles: []*Tile{tileAt(1, 0, 0, 0, "B1"), tileAt(2, 0, 0, 1, "B2")},
			check: 2,
			want:  true,
		},
		{
			name:  "removed",
			tiles: []*Tile{{ID: 1, Face: "B1", Removed: true}},
			check: 1,
			want:  false,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := New(c.tiles)
			tl, ok := b.Tile(c.check)
			require.True(t, ok)
			assert.Equal(t, c.want, b.IsFree(tl))
		})
	}
}

func TestIsFreeIgnoresRemovedBlockers(t *testing.T) {
	middle := tileAt(1, 1, 0, 0, "B1")
	left := tileAt(2, 0, 0, 0, "B2")
	right := tileAt(3, 2, 0, 0, "B3")
	top := tileAt(4, 1, 0, 1, "B4")
	tiles := []*Tile{middle, left, right, top}

	assert.False(t, IsFree(middle, tiles))
	top.Removed = true
	assert.False(t, IsFree(middle, tiles), "still blocked on both sides")
	left.Removed = true
	assert.True(t, IsFree(middle, tiles))
}

func TestStackedTileBecomesFree(t *testing.T) {
	bottom := tileAt(1, 3, 3, 0, "B1")
	top := tileAt(2, 3, 3, 1, "B2")
	tiles := []*Tile{bottom, top}

	assert.False(t, IsFree(bottom, tiles))
	top.Removed = true
	assert.True(t, IsFree(bottom, tiles))
}

func TestOcclusionPrecedence(t *testing.T) {
	tiles, err := Assign(GeneratePositions(), rand.New(rand.NewSource(11)))
	require.NoError(t, err)
	for _, tl := range tiles {
		if hasTop(tl, tiles) {
			assert.False(t, IsFree(tl, tiles), "tile %d at %v is covered", tl.ID, tl.Position)
		}
		if !hasNeighbor(tl, tiles, -1) || !hasNeighbor(tl, tiles, 1) {
			assert.Equal(t, !hasTop(tl, tiles), IsFree(tl, tiles), "tile %d at %v", tl.ID, tl.Position)
		}
	}
}

func TestPyramidInitialFreeTiles(t *testing.T) {
	tiles, err := Assign(GeneratePositions(), noSwapRand{})
	require.NoError(t, err)
	free := FreeTiles(tiles)

	// Each bottom row has its two end tiles free except where covered, the
	// middle layer's row ends are free, and the top layer's row ends are free.
	want := 6*2 + 4*2 + 2*2
	assert.Len(t, free, want)
	for _, tl := range free {
		assert.False(t, hasTop(tl, tiles))
	}
}

func TestAvailablePairs(t *testing.T) {
	tiles := []*Tile{
		tileAt(1, 0, 0, 0, "C1"),
		tileAt(2, 0, 1, 0, "B1"),
		tileAt(3, 0, 2, 0, "C1"),
		tileAt(4, 0, 3, 0, "B1"),
		tileAt(5, 0, 4, 0, "C1"),
		tileAt(6, 0, 5, 0, "E"),
	}
	pairs := AvailablePairs(tiles)
	require.Len(t, pairs, 2)
	assert.Equal(t, [2]int{1, 3}, pairs[0].IDs(), "first two members of the first-seen face")
	assert.Equal(t, [2]int{2, 4}, pairs[1].IDs())
}

func TestAvailablePairsSkipsBlockedAndRemoved(t *testing.T) {
	tiles := []*Tile{
		tileAt(1, 0, 0, 0, "B1"),
		tileAt(2, 1, 0, 0, "B1"), // blocked by 1 and 3
		tileAt(3, 2, 0, 0, "B2"),
		tileAt(4, 0, 1, 0, "B1"),
		tileAt(5, 0, 2, 0, "B2"),
	}
	tiles[4].Removed = true
	pairs := AvailablePairs(tiles)
	require.Len(t, pairs, 1)
	assert.Equal(t, [2]int{1, 4}, pairs[0].IDs())

	tiles[3].Removed = true
	assert.Empty(t, AvailablePairs(tiles))
}

func TestBoardLive(t *testing.T) {
	b := New([]*Tile{tileAt(1, 0, 0, 0, "B1"), tileAt(2, 1, 0, 0, "B1")})
	assert.Equal(t, 2, b.LiveCount())
	b.Tiles[0].Removed = true
	assert.Equal(t, 1, b.LiveCount())
	require.Len(t, b.Live(), 1)
	assert.Equal(t, 2, b.Live()[0].ID)

	_, ok := b.Tile(99)
	assert.False(t, ok)

	var nilBoard *Board
	assert.Zero(t, nilBoard.LiveCount())
	assert.Nil(t, nilBoard.AvailablePairs())
}

func TestFaceSuit(t *testing.T) {
	cases := map[Face]string{
		"B5": "bamboo",
		"C9": "characters",
		"D1": "dots",
		"N":  "wind",
		"Wh": "dragon",
		"X":  "",
	}
	for f, want := range cases {
		assert.Equal(t, want, f.Suit(), "face %s", f)
	}
	assert.Len(t, Faces, 34)
}

func TestSnapshot(t *testing.T) {
	b := New([]*Tile{
		tileAt(1, 0, 0, 0, "B1"),
		tileAt(2, 1, 0, 0, "E"),
		tileAt(3, 1, 1, 0, "B1"),
		tileAt(4, 1, 1, 1, "E"),
	})
	b.Tiles[1].Removed = true
	s := b.Snapshot()
	require.Len(t, s, 4)
	assert.Equal(t, TileState{ID: 2, X: 1, Y: 0, Z: 0, Face: "E", Removed: true}, s[1])

	maxX, maxY := s.Bounds()
	assert.Equal(t, 1, maxX)
	assert.Equal(t, 1, maxY)
	assert.Equal(t, []int{0, 1}, s.Layers())

	want := "layer 0\n" +
		"B1 --\n" +
		".. B1\n" +
		"layer 1\n" +
		".. ..\n" +
		".. E \n"
	assert.Equal(t, want, s.String())

	s[0].Face = "C1"
	assert.Equal(t, Face("B1"), b.Tiles[0].Face, "snapshot is a copy")
}
