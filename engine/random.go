package engine

import (
	"loa/game"

	"golang.org/x/exp/rand"
)

// Random plays a uniformly random legal move. A baseline opponent for
// experiments and tests.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) FindMove(b *game.Board) game.Move {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		panic("no legal moves to choose from")
	}
	return moves[r.rng.Intn(len(moves))]
}
