package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"
)

// DefaultMoveLimit is the total number of moves, both sides combined,
// after which an unfinished game is declared a tie.
const DefaultMoveLimit = 120

// Board holds the full state of a game of Lines of Action: the piece
// placement, the side to move, and the history of moves made. All
// mutation goes through MakeMove, Retract, Set and Clear; terminal and
// region information is cached and recomputed lazily after a mutation.
type Board struct {
	cells     [NumSquares]Piece
	turn      Piece
	moves     []Move
	moveLimit int

	// Winner cache, meaningful only while winnerKnown holds.
	winnerKnown bool
	winner      Piece

	// Region cache, meaningful only while regionsValid holds.
	regionsValid bool
	whiteRegions []int
	blackRegions []int
}

// The standard opening, bottom row first: each side's two outer lines
// filled, corners empty.
var initialPieces = [BoardSize][BoardSize]Piece{
	{Empty, Black, Black, Black, Black, Black, Black, Empty},
	{White, Empty, Empty, Empty, Empty, Empty, Empty, White},
	{White, Empty, Empty, Empty, Empty, Empty, Empty, White},
	{White, Empty, Empty, Empty, Empty, Empty, Empty, White},
	{White, Empty, Empty, Empty, Empty, Empty, Empty, White},
	{White, Empty, Empty, Empty, Empty, Empty, Empty, White},
	{White, Empty, Empty, Empty, Empty, Empty, Empty, White},
	{Empty, Black, Black, Black, Black, Black, Black, Empty},
}

// NewBoard returns a board in the standard opening with Black to move.
func NewBoard() *Board {
	return NewBoardFrom(initialPieces, Black)
}

// NewBoardFrom returns a board whose placement is taken from contents,
// given bottom row first, so Get(Sq(col, row)) == contents[row][col].
// Written as a literal, contents therefore reads upside down. The side
// to move is turn, which must not be Empty.
func NewBoardFrom(contents [BoardSize][BoardSize]Piece, turn Piece) *Board {
	b := &Board{}
	b.initialize(contents, turn)
	return b
}

func (b *Board) initialize(contents [BoardSize][BoardSize]Piece, side Piece) {
	if side == Empty {
		panic("side to move cannot be Empty")
	}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			b.cells[Sq(col, row)] = contents[row][col]
		}
	}
	b.turn = side
	b.moveLimit = DefaultMoveLimit
	b.moves = b.moves[:0]
	b.invalidate()
}

// Clear resets b to the standard opening with Black to move.
func (b *Board) Clear() {
	b.initialize(initialPieces, Black)
}

// Copy returns a deep copy sharing no mutable state with b.
func (b *Board) Copy() *Board {
	movesCopy := make([]Move, len(b.moves))
	copy(movesCopy, b.moves)

	whiteCopy := make([]int, len(b.whiteRegions))
	copy(whiteCopy, b.whiteRegions)
	blackCopy := make([]int, len(b.blackRegions))
	copy(blackCopy, b.blackRegions)

	nb := *b
	nb.moves = movesCopy
	nb.whiteRegions = whiteCopy
	nb.blackRegions = blackCopy
	return &nb
}

func (b *Board) invalidate() {
	b.winnerKnown = false
	b.regionsValid = false
}

// Get returns the contents of sq.
func (b *Board) Get(sq Square) Piece {
	return b.cells[sq]
}

// Set writes p at sq and, when next is not Empty, makes next the side to
// move. It bypasses legality and history; intended for setting up
// positions.
func (b *Board) Set(sq Square, p Piece, next Piece) {
	b.cells[sq] = p
	if next != Empty {
		b.turn = next
	}
	b.invalidate()
}

// SetMoveLimit sets the number of moves per side before an unfinished
// game is tied. The new limit must leave room for the moves already
// made; otherwise the operation is rejected and b is unchanged.
func (b *Board) SetMoveLimit(perSide int) error {
	if 2*perSide <= b.MovesMade() {
		return fmt.Errorf("move limit %d too small: %d moves already made", perSide, b.MovesMade())
	}
	b.moveLimit = 2 * perSide
	b.winnerKnown = false
	return nil
}

// MoveLimit returns the limit on total moves before a tie.
func (b *Board) MoveLimit() int {
	return b.moveLimit
}

// Turn returns the side to move.
func (b *Board) Turn() Piece {
	return b.turn
}

// MovesMade returns the number of moves made and not retracted.
func (b *Board) MovesMade() int {
	return len(b.moves)
}

// LastMove returns the most recent unretracted move, with its Capture
// flag as stored by MakeMove.
func (b *Board) LastMove() (Move, bool) {
	if len(b.moves) == 0 {
		return Move{}, false
	}
	return b.moves[len(b.moves)-1], true
}

// IsLegal reports whether moving from from to to is legal for the side
// to move: the mover owns from, to lies on a straight line through from,
// no opposing piece stands strictly between them, the destination is not
// friendly, and the move length equals the number of pieces anywhere on
// that full line.
func (b *Board) IsLegal(from, to Square) bool {
	if b.Get(from) != b.turn || !from.IsValidMove(to) || b.blocked(from, to) {
		return false
	}
	dir := from.Direction(to)
	return b.CountPieces(from, dir) == from.Distance(to)
}

// IsLegalMove reports whether m is legal, ignoring its Capture flag.
func (b *Board) IsLegalMove(m Move) bool {
	return b.IsLegal(m.From, m.To)
}

// CountPieces returns the number of pieces on the full line through sq
// along direction dir: both ways, edge to edge, counting sq itself.
func (b *Board) CountPieces(sq Square, dir int) int {
	opp := (dir + 4) % 8
	n := 1
	for i := 1; i < BoardSize; i++ {
		other, ok := sq.MoveDest(dir, i)
		if !ok {
			break
		}
		if b.Get(other) != Empty {
			n++
		}
	}
	for i := 1; i < BoardSize; i++ {
		other, ok := sq.MoveDest(opp, i)
		if !ok {
			break
		}
		if b.Get(other) != Empty {
			n++
		}
	}
	return n
}

// blocked reports whether a move from from to to runs through an
// opposing piece or lands on a friendly one. Friendly pieces between the
// endpoints do not block.
func (b *Board) blocked(from, to Square) bool {
	if b.Get(to) == b.turn {
		return true
	}
	dir := from.Direction(to)
	for i := 1; ; i++ {
		next, ok := from.MoveDest(dir, i)
		if !ok || next == to {
			return false
		}
		if b.Get(next) == b.turn.Opposite() {
			return true
		}
	}
}

// LegalMoves returns every legal move for the side to move. The order is
// square scan order, then direction order, then increasing distance;
// callers must not rely on it staying stable.
func (b *Board) LegalMoves() []Move {
	var moves []Move
	for from := Square(0); from < NumSquares; from++ {
		if b.Get(from) != b.turn {
			continue
		}
		for dir := 0; dir < 8; dir++ {
			for i := 1; ; i++ {
				to, ok := from.MoveDest(dir, i)
				if !ok {
					break
				}
				if b.IsLegal(from, to) {
					moves = append(moves, Mv(from, to))
				}
			}
		}
	}
	return moves
}

// MakeMove makes m, which must be legal; the Capture flag of m is
// ignored and recomputed from the destination contents. Panics on an
// illegal move: continuing from an inconsistent board would silently
// corrupt every later search result.
func (b *Board) MakeMove(m Move) {
	if !b.IsLegal(m.From, m.To) {
		panic(fmt.Sprintf("illegal move %s for %s", Mv(m.From, m.To), b.turn))
	}
	if b.Get(m.To) == b.turn.Opposite() {
		m = m.CaptureMove()
	} else {
		m.Capture = false
	}
	b.cells[m.To] = b.cells[m.From]
	b.cells[m.From] = Empty
	b.turn = b.turn.Opposite()
	b.moves = append(b.moves, m)
	b.invalidate()
}

// Retract unmakes the last move, the exact inverse of MakeMove. Panics
// when no moves have been made.
func (b *Board) Retract() {
	if len(b.moves) == 0 {
		panic("retract with no moves made")
	}
	last := b.moves[len(b.moves)-1]
	b.moves = b.moves[:len(b.moves)-1]
	mover := b.cells[last.To]
	b.cells[last.From] = mover
	if last.Capture {
		b.cells[last.To] = mover.Opposite()
	} else {
		b.cells[last.To] = Empty
	}
	b.turn = b.turn.Opposite()
	b.invalidate()
}

// Undo takes back the last full turn, one move per side. It does nothing
// when fewer than two moves exist or the game is over.
func (b *Board) Undo() {
	if b.MovesMade() > 1 && !b.GameOver() {
		b.Retract()
		b.Retract()
	}
}

// Winner returns the winning side and true once the game is over; the
// winner is Empty for a tie. The side not on move is tested first, so a
// move that connects both sides' pieces credits the opponent.
func (b *Board) Winner() (Piece, bool) {
	if !b.winnerKnown {
		switch {
		case b.PiecesContiguous(b.turn.Opposite()):
			b.winner = b.turn.Opposite()
		case b.PiecesContiguous(b.turn):
			b.winner = b.turn
		case b.MovesMade() == b.moveLimit:
			b.winner = Empty
		default:
			return Empty, false
		}
		b.winnerKnown = true
	}
	return b.winner, true
}

// GameOver reports whether either side has connected its pieces or the
// move limit has been reached.
func (b *Board) GameOver() bool {
	_, over := b.Winner()
	return over
}

// Equal reports whether b and other have the same placement and side to
// move. Histories and move limits are not compared.
func (b *Board) Equal(other *Board) bool {
	return b.cells == other.cells && b.turn == other.turn
}

// Hash returns an FNV-64a digest of the placement and side to move, a
// cheap position identity for logs and tests.
func (b *Board) Hash() uint64 {
	h := fnv.New64a()
	binary.Write(h, binary.LittleEndian, b.cells[:])
	binary.Write(h, binary.LittleEndian, b.turn)
	return h.Sum64()
}

// String renders the board with rank 8 at the top.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("===\n")
	for row := BoardSize - 1; row >= 0; row-- {
		sb.WriteString("    ")
		for col := 0; col < BoardSize; col++ {
			sb.WriteString(b.Get(Sq(col, row)).Abbrev())
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "Next move: %s\n===", b.turn)
	return sb.String()
}
