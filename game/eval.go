package game

// HeuristicScale bounds the magnitude of HeuristicEstimate well below
// any forced-win score a searcher may use.
const HeuristicScale = 46340 // floor(sqrt(MaxInt32))

// lostEstimate scores a side that has no pieces left and therefore can
// never connect them.
const lostEstimate = HeuristicScale * NumSquares

// HeuristicEstimate statically evaluates the position: larger is better
// for White, smaller for Black. A side is closer to winning the fewer
// regions its pieces form, so the region-count difference drives the
// score, scaled by how dominant the advantaged side's largest region is
// relative to the other side's.
func (b *Board) HeuristicEstimate() int {
	whiteSizes := b.RegionSizes(White)
	blackSizes := b.RegionSizes(Black)
	if len(whiteSizes) == 0 {
		return -lostEstimate
	}
	if len(blackSizes) == 0 {
		return lostEstimate
	}

	diff := len(blackSizes) - len(whiteSizes)
	whiteRatio := float64(whiteSizes[0]) / float64(b.NumPieces(White))
	blackRatio := float64(blackSizes[0]) / float64(b.NumPieces(Black))
	ratio := blackRatio / whiteRatio
	if diff > 0 {
		ratio = whiteRatio / blackRatio
	}
	return HeuristicScale * diff * int(ratio)
}
