package game

// Position is the board surface a search engine drives: move generation,
// in-place mutation with strictly paired retraction, and terminal and
// heuristic queries. *Board implements it; tests wrap one to instrument
// a search.
type Position interface {
	Turn() Piece
	MovesMade() int
	LegalMoves() []Move
	MakeMove(Move)
	Retract()
	Winner() (Piece, bool)
	GameOver() bool
	HeuristicEstimate() int
}
