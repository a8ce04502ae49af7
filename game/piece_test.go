package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePieceKind(t *testing.T) {
	t.Run("known names", func(t *testing.T) {
		for _, kind := range []PieceKind{Ryott, Chowkidar, Cuirassier, Faujdar, Jazair} {
			got, err := ParsePieceKind(kind.String())
			require.NoError(t, err)
			require.Equal(t, kind, got)
		}
	})

	t.Run("case and surrounding space are ignored", func(t *testing.T) {
		got, err := ParsePieceKind(" Faujdar\n")
		require.NoError(t, err)
		require.Equal(t, Faujdar, got)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := ParsePieceKind("pawn")
		require.ErrorIs(t, err, ErrUnknownPieceKind)
	})
}

func TestPieceKindOffsets(t *testing.T) {
	require.Len(t, Ryott.Offsets(), 4)
	require.Len(t, Chowkidar.Offsets(), 6)
	require.Len(t, Cuirassier.Offsets(), 4)
	require.Len(t, Faujdar.Offsets(), 4)
	require.Len(t, Jazair.Offsets(), 7)
	require.Equal(t, Offset{1, 0}, Ryott.Offsets()[0], "Table order is part of move ordering")
}
