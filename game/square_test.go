package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSq(t *testing.T) {
	t.Run("maps (col, row) to the square index", func(t *testing.T) {
		require.Equal(t, Square(0), Sq(0, 0))
		require.Equal(t, Square(1), Sq(1, 0))
		require.Equal(t, Square(8), Sq(0, 1))
		require.Equal(t, Square(63), Sq(7, 7))
	})

	t.Run("panics out of range", func(t *testing.T) {
		require.Panics(t, func() { Sq(-1, 0) })
		require.Panics(t, func() { Sq(0, 8) })
	})
}

func TestSquareString(t *testing.T) {
	require.Equal(t, "a1", Sq(0, 0).String())
	require.Equal(t, "c4", Sq(2, 3).String())
	require.Equal(t, "h8", Sq(7, 7).String())
}

func TestMoveDest(t *testing.T) {
	t.Run("steps along a direction", func(t *testing.T) {
		got, ok := Sq(2, 3).MoveDest(North, 2)
		require.True(t, ok)
		require.Equal(t, Sq(2, 5), got, "two steps north of c4 should be c6")

		got, ok = Sq(2, 3).MoveDest(Southwest, 2)
		require.True(t, ok)
		require.Equal(t, Sq(0, 1), got, "two steps southwest of c4 should be a2")
	})

	t.Run("reports squares off the board", func(t *testing.T) {
		_, ok := Sq(0, 0).MoveDest(West, 1)
		require.False(t, ok)
		_, ok = Sq(7, 7).MoveDest(Northeast, 1)
		require.False(t, ok)
		_, ok = Sq(3, 3).MoveDest(East, 5)
		require.False(t, ok)
	})
}

func TestIsValidMove(t *testing.T) {
	from := Sq(0, 0)
	require.True(t, from.IsValidMove(Sq(0, 4)), "same column is a line")
	require.True(t, from.IsValidMove(Sq(4, 0)), "same row is a line")
	require.True(t, from.IsValidMove(Sq(4, 4)), "diagonal is a line")
	require.False(t, from.IsValidMove(Sq(1, 2)), "knight jumps are not lines")
	require.False(t, from.IsValidMove(from), "staying put is not a move")
}

func TestDirectionAndDistance(t *testing.T) {
	t.Run("computes the direction index", func(t *testing.T) {
		require.Equal(t, North, Sq(0, 0).Direction(Sq(0, 4)))
		require.Equal(t, Northeast, Sq(0, 0).Direction(Sq(4, 4)))
		require.Equal(t, East, Sq(2, 3).Direction(Sq(5, 3)))
		require.Equal(t, Southwest, Sq(4, 4).Direction(Sq(0, 0)))
		require.Equal(t, Northwest, Sq(4, 2).Direction(Sq(2, 4)))
	})

	t.Run("panics off the line", func(t *testing.T) {
		require.Panics(t, func() { Sq(0, 0).Direction(Sq(1, 2)) })
	})

	t.Run("counts steps along the line", func(t *testing.T) {
		require.Equal(t, 4, Sq(0, 0).Distance(Sq(0, 4)))
		require.Equal(t, 4, Sq(0, 0).Distance(Sq(4, 4)))
		require.Equal(t, 3, Sq(2, 3).Distance(Sq(5, 3)))
	})
}

func TestAdjacent(t *testing.T) {
	t.Run("corner has three neighbors", func(t *testing.T) {
		require.ElementsMatch(t,
			[]Square{Sq(0, 1), Sq(1, 1), Sq(1, 0)},
			Sq(0, 0).Adjacent())
	})

	t.Run("interior square has eight neighbors", func(t *testing.T) {
		require.Len(t, Sq(3, 3).Adjacent(), 8)
	})

	t.Run("edge square has five neighbors", func(t *testing.T) {
		require.Len(t, Sq(0, 3).Adjacent(), 5)
	})
}
