package render

import (
	"testing"

	"github.com/milk9111/mahjong/board"
	"github.com/milk9111/mahjong/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGeometry() Geometry {
	return NewGeometry(config.Default().Tile)
}

func TestTopLeft(t *testing.T) {
	g := testGeometry()
	cases := []struct {
		name  string
		p     board.Position
		wantX float64
		wantY float64
	}{
		{"origin", board.Position{}, 10, 10},
		{"column", board.Position{X: 1}, 72, 10},
		{"row", board.Position{Y: 1}, 10, 88},
		{"layer", board.Position{X: 4, Y: 2, Z: 2}, 4*62 + 12 + 10, 2*78 - 12 + 10},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x, y := g.TopLeft(c.p)
			assert.Equal(t, c.wantX, x)
			assert.Equal(t, c.wantY, y)
		})
	}

	g.OriginX, g.OriginY = 100, 40
	x, y := g.TopLeft(board.Position{})
	assert.Equal(t, 110.0, x)
	assert.Equal(t, 50.0, y)
}

func TestBoardSize(t *testing.T) {
	g := testGeometry()
	w, h := g.BoardSize(11, 5)
	assert.Equal(t, 12*62.0+80, w)
	assert.Equal(t, 6*78.0+80, h)

	w, h = g.BoardSize(-1, -1)
	assert.Zero(t, w)
	assert.Zero(t, h)
}

func TestDrawOrder(t *testing.T) {
	s := board.Snapshot{
		{ID: 1, Z: 1},
		{ID: 2, Z: 0},
		{ID: 3, Z: 0, Removed: true},
		{ID: 4, Z: 1},
		{ID: 5, Z: 0},
	}
	var ids []int
	for _, ts := range DrawOrder(s) {
		ids = append(ids, ts.ID)
	}
	assert.Equal(t, []int{2, 5, 1, 4}, ids)
}

func TestHitTest(t *testing.T) {
	g := testGeometry()
	s := board.Snapshot{
		{ID: 1, X: 0, Y: 0, Z: 0},
		{ID: 2, X: 1, Y: 0, Z: 0},
		{ID: 3, X: 1, Y: 0, Z: 1},
		{ID: 4, X: 3, Y: 0, Z: 0, Removed: true},
	}
	cases := []struct {
		name   string
		x, y   float64
		want   int
		wantOK bool
	}{
		{"inside_first", 20, 30, 1, true},
		{"gap", 68, 30, 0, false},
		{"upper_layer_wins", 90, 30, 3, true},
		{"lower_edge_below_upper", 75, 80, 2, true},
		{"removed", 3*62 + 20, 30, 0, false},
		{"outside", 5, 5, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			id, ok := g.HitTest(s, c.x, c.y)
			require.Equal(t, c.wantOK, ok)
			assert.Equal(t, c.want, id)
		})
	}
}
