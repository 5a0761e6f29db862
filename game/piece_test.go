package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPieceOpposite(t *testing.T) {
	require.Equal(t, Black, White.Opposite())
	require.Equal(t, White, Black.Opposite())
	require.Panics(t, func() { Empty.Opposite() },
		"Empty has no opposing side")
}

func TestPieceStrings(t *testing.T) {
	require.Equal(t, "White", White.String())
	require.Equal(t, "Black", Black.String())
	require.Equal(t, "Empty", Empty.String())
	require.Equal(t, "w", White.Abbrev())
	require.Equal(t, "b", Black.Abbrev())
	require.Equal(t, "-", Empty.Abbrev())
}
