package game

import "fmt"

// BoardSize is the number of columns and rows.
const BoardSize = 8

// NumSquares is the number of cells on the board.
const NumSquares = BoardSize * BoardSize

// Square identifies one of the 64 board cells. The index is col+8*row,
// so a1 is 0, b1 is 1, and h8 is 63.
type Square uint8

// The eight straight-line directions, in index order. North is up the
// board (increasing row), East is increasing column.
const (
	North = iota
	Northeast
	East
	Southeast
	South
	Southwest
	West
	Northwest
)

// Column and row deltas per direction index.
var displacement = [8][2]int{
	{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

// Sq returns the square at (col, row), each in [0, BoardSize).
func Sq(col, row int) Square {
	if col < 0 || col >= BoardSize || row < 0 || row >= BoardSize {
		panic(fmt.Sprintf("square out of range: col %d row %d", col, row))
	}
	return Square(row*BoardSize + col)
}

// Col returns the column of s, 0 for the a file.
func (s Square) Col() int { return int(s) % BoardSize }

// Row returns the row of s, 0 for rank 1.
func (s Square) Row() int { return int(s) / BoardSize }

// MoveDest returns the square steps away from s along direction dir, and
// false when that square lies off the board.
func (s Square) MoveDest(dir, steps int) (Square, bool) {
	c := s.Col() + displacement[dir][0]*steps
	r := s.Row() + displacement[dir][1]*steps
	if c < 0 || c >= BoardSize || r < 0 || r >= BoardSize {
		return 0, false
	}
	return Sq(c, r), true
}

// IsValidMove reports whether to lies on one of the eight straight lines
// through s, at least one step away.
func (s Square) IsValidMove(to Square) bool {
	if s == to {
		return false
	}
	dc := to.Col() - s.Col()
	dr := to.Row() - s.Row()
	return dc == 0 || dr == 0 || dc == dr || dc == -dr
}

// Direction returns the direction index from s to to. Requires that
// IsValidMove(to) holds.
func (s Square) Direction(to Square) int {
	dc := sign(to.Col() - s.Col())
	dr := sign(to.Row() - s.Row())
	for dir, d := range displacement {
		if d[0] == dc && d[1] == dr {
			return dir
		}
	}
	panic(fmt.Sprintf("no straight line from %s to %s", s, to))
}

// Distance returns the number of steps from s to to along their common
// line: the larger of the column and row differences.
func (s Square) Distance(to Square) int {
	dc := abs(to.Col() - s.Col())
	dr := abs(to.Row() - s.Row())
	if dc > dr {
		return dc
	}
	return dr
}

// Adjacent returns the squares bordering s, clipped at the board edge.
func (s Square) Adjacent() []Square {
	adj := make([]Square, 0, 8)
	for dir := 0; dir < 8; dir++ {
		if sq, ok := s.MoveDest(dir, 1); ok {
			adj = append(adj, sq)
		}
	}
	return adj
}

// String renders s in algebraic notation, "a1" through "h8".
func (s Square) String() string {
	return fmt.Sprintf("%c%d", 'a'+rune(s.Col()), s.Row()+1)
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
