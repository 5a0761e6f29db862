package game

import "fmt"

// Move is a piece move between two squares. Capture is set when the move
// removed an opposing piece from To; legality testing ignores it, and
// MakeMove stores the capturing variant when the destination held the
// opponent.
type Move struct {
	From    Square
	To      Square
	Capture bool
}

// Mv returns the non-capture move from from to to.
func Mv(from, to Square) Move {
	return Move{From: from, To: to}
}

// CaptureMove returns the capturing variant of m.
func (m Move) CaptureMove() Move {
	return Move{From: m.From, To: m.To, Capture: true}
}

// String renders m in the external "c4-f4" form.
func (m Move) String() string {
	return fmt.Sprintf("%s-%s", m.From, m.To)
}
