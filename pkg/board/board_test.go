package board_test

import (
	"testing"

	"github.com/arnegard/rankfile/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyRejectsOutOfRangeDimensions(t *testing.T) {
	tests := []struct{ w, h int }{
		{0, 8}, {8, 0}, {33, 8}, {8, 33}, {-1, 8},
	}
	for _, tt := range tests {
		_, err := board.Empty(tt.w, tt.h)
		assert.ErrorIs(t, err, board.ErrInvalidDimensions)
	}
}

func TestEmptyAcceptsBoundaryDimensions(t *testing.T) {
	for _, n := range []int{1, 32} {
		b, err := board.Empty(n, n)
		require.NoError(t, err)
		assert.Equal(t, n, b.Width())
		assert.Equal(t, n, b.Height())
	}
}

func TestStandardPlacement(t *testing.T) {
	b := board.Standard()
	assert.Equal(t, 8, b.Width())
	assert.Equal(t, 8, b.Height())

	p, ok := b.Get(board.NewSquare(4, 0))
	require.True(t, ok)
	assert.Equal(t, board.King, p.Kind)
	assert.Equal(t, board.White, p.Color)

	p, ok = b.Get(board.NewSquare(4, 7))
	require.True(t, ok)
	assert.Equal(t, board.King, p.Kind)
	assert.Equal(t, board.Black, p.Color)

	_, ok = b.Get(board.NewSquare(4, 4))
	assert.False(t, ok)
}

func TestKingSquareTracksRelocation(t *testing.T) {
	b, err := board.Empty(8, 8)
	require.NoError(t, err)

	b.Set(board.NewSquare(4, 0), board.Piece{Kind: board.King, Color: board.White})
	sq, ok := b.KingSquare(board.White)
	require.True(t, ok)
	assert.Equal(t, board.NewSquare(4, 0), sq)

	b.Clear(board.NewSquare(4, 0))
	b.Set(board.NewSquare(5, 0), board.Piece{Kind: board.King, Color: board.White})
	sq, ok = b.KingSquare(board.White)
	require.True(t, ok)
	assert.Equal(t, board.NewSquare(5, 0), sq, "king square must follow the king to its new square")

	b.Clear(board.NewSquare(5, 0))
	_, ok = b.KingSquare(board.White)
	assert.False(t, ok)
}

func TestKingSquareRescansOnOverwrite(t *testing.T) {
	b, err := board.Empty(8, 8)
	require.NoError(t, err)

	b.Set(board.NewSquare(0, 0), board.Piece{Kind: board.King, Color: board.White})
	b.Set(board.NewSquare(7, 7), board.Piece{Kind: board.King, Color: board.White})

	// Overwriting one king with a non-king must leave the other discoverable.
	b.Set(board.NewSquare(0, 0), board.Piece{Kind: board.Queen, Color: board.White})
	sq, ok := b.KingSquare(board.White)
	require.True(t, ok)
	assert.Equal(t, board.NewSquare(7, 7), sq)
}

func TestBoardToFENPlacement(t *testing.T) {
	b := board.Standard()
	assert.Contains(t, b.ToFEN(), "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR")
}
