package board_test

import (
	"testing"

	"github.com/arnegard/rankfile/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPiece(t *testing.T) {
	p, err := board.NewPiece("knight", -1)
	require.NoError(t, err)
	assert.Equal(t, board.Knight, p.Kind)
	assert.Equal(t, board.Black, p.Color)
	assert.Equal(t, "n", p.String())

	_, err = board.NewPiece("dragon", 1)
	assert.ErrorIs(t, err, board.ErrInvalidKind)

	_, err = board.NewPiece("queen", 0)
	assert.ErrorIs(t, err, board.ErrInvalidColor)
}

func TestPieceSymbol(t *testing.T) {
	white := board.Piece{Kind: board.Queen, Color: board.White}
	black := board.Piece{Kind: board.Queen, Color: board.Black}

	assert.Equal(t, 'Q', white.Symbol())
	assert.Equal(t, 'q', black.Symbol())
}

func TestPieceIsEmpty(t *testing.T) {
	assert.True(t, board.Piece{}.IsEmpty())
	assert.False(t, board.Piece{Kind: board.Pawn, Color: board.White}.IsEmpty())
}

func TestKindIsPromotable(t *testing.T) {
	assert.True(t, board.Queen.IsPromotable())
	assert.True(t, board.Knight.IsPromotable())
	assert.False(t, board.King.IsPromotable())
	assert.False(t, board.Pawn.IsPromotable())
	assert.False(t, board.NoPiece.IsPromotable())
}

func TestParseKindName(t *testing.T) {
	for _, name := range []string{"king", "queen", "rook", "bishop", "knight", "pawn"} {
		k, err := board.ParseKindName(name)
		require.NoError(t, err)
		assert.Equal(t, name, k.Name())
	}

	_, err := board.ParseKindName("wizard")
	assert.ErrorIs(t, err, board.ErrInvalidKind)
}
