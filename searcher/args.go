package searcher

import "math"

// Hyperparameters and score sentinels for the fixed-depth search.

// DefaultDepth is the number of plies searched. Varying it by game phase
// is a natural extension; for now every search goes this deep.
const DefaultDepth = 5

// WinningValue is the score magnitude of a decided game, positive when
// White has won and negative when Black has. It sits just under Infinity
// so a found win still replaces the initial best score.
const WinningValue = math.MaxInt32 - 20

// Infinity exceeds every reachable score; the alpha-beta window starts
// at (-Infinity, Infinity).
const Infinity = math.MaxInt32
