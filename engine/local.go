package engine

import (
	"loa/game"
	"loa/searcher"

	"github.com/rs/zerolog/log"
)

// Agent produces a move for the side to move on a board. Implementations
// must not mutate the board.
type Agent interface {
	FindMove(*game.Board) game.Move
}

// Engine alternates two agents on one board until the game ends.
type Engine struct {
	Board *game.Board
	Black Agent
	White Agent
}

// LocalEngine sets up a game from the standard opening between two
// agents.
func LocalEngine(black, white Agent) *Engine {
	return &Engine{
		Board: game.NewBoard(),
		Black: black,
		White: white,
	}
}

// Run executes the game loop until a win or tie and returns the result
// and the number of moves played. The winner is Empty on a tie.
func (e *Engine) Run() (game.Piece, int) {
	log.Info().Msgf("%s is starting", e.Board.Turn())

	for !e.Board.GameOver() {
		agent := e.White
		if e.Board.Turn() == game.Black {
			agent = e.Black
		}
		move := agent.FindMove(e.Board)
		e.Board.MakeMove(move)

		played, _ := e.Board.LastMove()
		log.Info().
			Stringer("move", played).
			Bool("capture", played.Capture).
			Uint64("position", e.Board.Hash()).
			Msgf("move %d played", e.Board.MovesMade())
	}

	winner, _ := e.Board.Winner()
	if winner == game.Empty {
		log.Info().Msgf("game tied after %d moves", e.Board.MovesMade())
	} else {
		log.Info().Msgf("%s wins after %d moves", winner, e.Board.MovesMade())
	}
	return winner, e.Board.MovesMade()
}

// SearcherAgent adapts a minimax searcher to the Agent interface.
type SearcherAgent struct {
	Searcher *searcher.Minimax
}

func (a SearcherAgent) FindMove(b *game.Board) game.Move {
	return a.Searcher.ChooseMove(b)
}
