package game

import "golang.org/x/exp/slices"

// RegionSizes returns the sizes of side's connected piece clusters in
// descending order. Two pieces belong to the same cluster when they
// touch via 8-directional adjacency. The slice is cached until the next
// mutation; callers must not modify it.
func (b *Board) RegionSizes(side Piece) []int {
	b.computeRegions()
	if side == White {
		return b.whiteRegions
	}
	return b.blackRegions
}

// PiecesContiguous reports whether every piece of side belongs to a
// single cluster. A side with no pieces has no clusters and is not
// contiguous.
func (b *Board) PiecesContiguous(side Piece) bool {
	return len(b.RegionSizes(side)) == 1
}

// NumPieces returns the number of side's pieces on the board.
func (b *Board) NumPieces(side Piece) int {
	n := 0
	for _, size := range b.RegionSizes(side) {
		n += size
	}
	return n
}

func (b *Board) computeRegions() {
	if b.regionsValid {
		return
	}
	b.whiteRegions = b.whiteRegions[:0]
	b.blackRegions = b.blackRegions[:0]

	var visited [NumSquares]bool
	for sq := Square(0); sq < NumSquares; sq++ {
		p := b.Get(sq)
		if p == Empty || visited[sq] {
			continue
		}
		size := b.clusterSize(sq, p, &visited)
		if p == White {
			b.whiteRegions = append(b.whiteRegions, size)
		} else {
			b.blackRegions = append(b.blackRegions, size)
		}
	}
	slices.SortFunc(b.whiteRegions, descending)
	slices.SortFunc(b.blackRegions, descending)
	b.regionsValid = true
}

// clusterSize flood-fills the cluster of p-colored pieces containing sq,
// marking every counted cell in visited. An explicit worklist keeps the
// fill off the call stack.
func (b *Board) clusterSize(sq Square, p Piece, visited *[NumSquares]bool) int {
	size := 0
	stack := []Square{sq}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[cur] || b.Get(cur) != p {
			continue
		}
		visited[cur] = true
		size++
		stack = append(stack, cur.Adjacent()...)
	}
	return size
}

func descending(a, b int) int {
	return b - a
}
