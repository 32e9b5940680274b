package board

// Face is the symbol printed on a tile. Two tiles match iff their faces are equal.
type Face string

// Faces is the fixed alphabet used when dealing: the 34 distinct mahjong tiles.
// Bamboo, characters and dots 1-9, the four winds, then the three dragons.
var Faces = []Face{
	"B1", "B2", "B3", "B4", "B5", "B6", "B7", "B8", "B9",
	"C1", "C2", "C3", "C4", "C5", "C6", "C7", "C8", "C9",
	"D1", "D2", "D3", "D4", "D5", "D6", "D7", "D8", "D9",
	"E", "S", "W", "N",
	"R", "G", "Wh",
}

func (f Face) String() string {
	return string(f)
}

// Suit groups a face for colouring: "bamboo", "characters", "dots", "wind" or "dragon".
func (f Face) Suit() string {
	if len(f) == 2 && f[1] >= '1' && f[1] <= '9' {
		switch f[0] {
		case 'B':
			return "bamboo"
		case 'C':
			return "characters"
		case 'D':
			return "dots"
		}
	}
	switch f {
	case "E", "S", "W", "N":
		return "wind"
	case "R", "G", "Wh":
		return "dragon"
	}
	return ""
}
