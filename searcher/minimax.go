package searcher

import (
	"loa/game"

	"github.com/rs/zerolog/log"
)

// Minimax chooses moves by fixed-depth minimax with alpha-beta pruning.
// The search mutates a single working board along a depth-first walk of
// the game tree, every MakeMove paired with a Retract on the way back
// up.
type Minimax struct {
	depth   int
	metrics MetricsCollector
}

type Option func(*Minimax)

// WithDepth overrides the number of plies searched.
func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

// WithMetrics records node and cutoff counts on collector for each
// search.
func WithMetrics(collector MetricsCollector) Option {
	return func(m *Minimax) {
		if collector != nil {
			m.metrics = collector
		}
	}
}

func New(options ...Option) *Minimax {
	m := &Minimax{
		depth:   DefaultDepth,
		metrics: NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// ChooseMove returns the best move for the side to move on b, which must
// not be a finished game. The search runs on a working copy; b is never
// mutated.
func (m *Minimax) ChooseMove(b *game.Board) game.Move {
	if b.GameOver() {
		panic("cannot choose a move on a finished game")
	}
	work := b.Copy()
	sense := 1
	if work.Turn() == game.Black {
		sense = -1
	}
	m.metrics.Start(m.depth)
	score, move := m.findMove(work, m.depth, sense, -Infinity, Infinity)
	log.Debug().
		Stringer("move", move).
		Int("score", score).
		Int("depth", m.depth).
		Msgf("%s found a move", b.Turn())
	return move
}

// findMove searches depth plies below pos and returns the position's
// value from White's perspective together with the move achieving it.
// On a finished position or at the horizon the move is the zero Move.
// sense is +1 when the side to move wants the maximum score, -1 when it
// wants the minimum; only a strict improvement replaces the incumbent,
// so the first move reaching the best score is kept on ties.
func (m *Minimax) findMove(pos game.Position, depth, sense, alpha, beta int) (int, game.Move) {
	m.metrics.AddNode()

	if winner, over := pos.Winner(); over {
		m.metrics.AddLeaf()
		switch winner {
		case game.White:
			return WinningValue, game.Move{}
		case game.Black:
			return -WinningValue, game.Move{}
		default:
			return 0, game.Move{}
		}
	}
	if depth == 0 {
		m.metrics.AddLeaf()
		return pos.HeuristicEstimate(), game.Move{}
	}

	bestScore := -sense * Infinity
	var bestMove game.Move
	for _, move := range pos.LegalMoves() {
		pos.MakeMove(move)
		score, _ := m.findMove(pos, depth-1, -sense, alpha, beta)
		pos.Retract()

		if (sense == 1 && score > bestScore) || (sense == -1 && score < bestScore) {
			bestScore = score
			bestMove = move
		}
		if sense == 1 {
			alpha = max(alpha, score)
		} else {
			beta = min(beta, score)
		}
		if alpha >= beta {
			m.metrics.AddCutoff()
			break
		}
	}
	return bestScore, bestMove
}
