package game

// Piece is the contents of one board square: a side's piece, or Empty.
type Piece uint8

const (
	Empty Piece = iota
	White
	Black
)

// Opposite returns the other side. Empty has no opposite.
func (p Piece) Opposite() Piece {
	switch p {
	case White:
		return Black
	case Black:
		return White
	default:
		panic("Empty has no opposite")
	}
}

// Abbrev returns the one-letter form used in board diagrams.
func (p Piece) Abbrev() string {
	switch p {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		return "-"
	}
}

func (p Piece) String() string {
	switch p {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "Empty"
	}
}
