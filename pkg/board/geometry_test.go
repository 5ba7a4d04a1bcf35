package board_test

import (
	"testing"

	"github.com/arnegard/rankfile/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSquareStr(t *testing.T) {
	tests := []struct {
		str      string
		wantFile board.File
		wantRank board.Rank
	}{
		{"a1", 0, 0},
		{"e4", 4, 3},
		{"h8", 7, 7},
		{"a12", 0, 11}, // tall-board multi-digit rank
		{"j32", 9, 31},
	}
	for _, tt := range tests {
		sq, err := board.ParseSquareStr(tt.str)
		require.NoError(t, err, tt.str)
		assert.Equal(t, tt.wantFile, sq.File, tt.str)
		assert.Equal(t, tt.wantRank, sq.Rank, tt.str)
		assert.Equal(t, tt.str, sq.String(), tt.str)
	}
}

func TestParseSquareStrRejectsGarbage(t *testing.T) {
	tests := []string{"", "a", "1a", "zz9", "a0", "e"}
	for _, tt := range tests {
		_, err := board.ParseSquareStr(tt)
		assert.Error(t, err, tt)
		assert.ErrorIs(t, err, board.ErrInvalidLAN, tt)
	}
}

func TestSquareInBounds(t *testing.T) {
	sq := board.NewSquare(3, 3)
	assert.True(t, sq.InBounds(8, 8))
	assert.False(t, sq.InBounds(3, 8))
	assert.False(t, sq.InBounds(8, 3))

	neg := board.NewSquare(-1, 0)
	assert.False(t, neg.InBounds(8, 8))
}

func TestSquareAdd(t *testing.T) {
	sq := board.NewSquare(4, 4)
	assert.Equal(t, board.NewSquare(5, 6), sq.Add(1, 2))
	assert.Equal(t, board.NewSquare(3, 2), sq.Add(-1, -2))
}
