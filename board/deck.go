package board

import (
	"errors"
	"fmt"
)

// ErrOddPositions is returned when a deal is asked for an odd number of cells.
var ErrOddPositions = errors.New("board: odd number of positions")

// Rand is the random source used for shuffling. *math/rand.Rand satisfies it.
type Rand interface {
	// Intn returns a uniform int in [0, n).
	Intn(n int) int
}

// Assign deals a face to every position so that each face of the required
// list lands on exactly two tiles. Ids are 1-based in position order.
func Assign(positions []Position, rng Rand) ([]*Tile, error) {
	if len(positions)%2 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrOddPositions, len(positions))
	}
	pairCount := len(positions) / 2
	faces := make([]Face, 0, len(positions))
	for i := 0; i < pairCount; i++ {
		faces = append(faces, Faces[i%len(Faces)])
	}
	faces = append(faces, faces...)
	Shuffle(faces, rng)

	tiles := make([]*Tile, len(positions))
	for i, p := range positions {
		tiles[i] = &Tile{
			ID:       i + 1,
			Position: p,
			Face:     faces[i],
		}
	}
	return tiles, nil
}

// Shuffle is a Fisher-Yates shuffle: walking down from the last index, each
// element is swapped with one at a uniform index at or below it.
func Shuffle(faces []Face, rng Rand) {
	for i := len(faces) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		faces[i], faces[j] = faces[j], faces[i]
	}
}

// FaceCounts tallies how many tiles carry each face.
func FaceCounts(tiles []*Tile) map[Face]int {
	counts := make(map[Face]int)
	for _, t := range tiles {
		counts[t.Face]++
	}
	return counts
}
