package board_test

import (
	"testing"

	"github.com/arnegard/rankfile/pkg/board"
	"github.com/arnegard/rankfile/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardGameToFEN(t *testing.T) {
	g := board.StandardGame()
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", g.ToFEN())
}

func TestMakeMoveAlternatesTurnAndClocks(t *testing.T) {
	g := board.StandardGame()

	m, err := g.MoveFromLAN("e2e4")
	require.NoError(t, err)
	require.True(t, g.MakeMove(m))

	assert.Equal(t, board.Black, g.Turn())
	assert.Equal(t, 0, g.HalfmoveClock(), "a pawn push resets the halfmove clock")
	assert.Equal(t, 1, g.FullMoveNumber(), "fullmove increments only after Black moves")

	m, err = g.MoveFromLAN("e7e5")
	require.NoError(t, err)
	require.True(t, g.MakeMove(m))

	assert.Equal(t, board.White, g.Turn())
	assert.Equal(t, 2, g.FullMoveNumber())
}

func TestMakeMoveRejectsIllegalMove(t *testing.T) {
	g := board.StandardGame()
	m, err := g.MoveFromLAN("e2e5")
	require.NoError(t, err)
	assert.False(t, g.MakeMove(m))
	assert.Equal(t, board.White, g.Turn())
}

func TestUnmakeMoveRestoresFullState(t *testing.T) {
	g := board.StandardGame()
	before := g.ToFEN()

	m, err := g.MoveFromLAN("g1f3")
	require.NoError(t, err)
	require.True(t, g.MakeMove(m))
	require.True(t, g.UnmakeMove())

	assert.Equal(t, before, g.ToFEN())
	assert.False(t, g.UnmakeMove(), "unmaking with an empty history must report false")
}

func TestItalianGameOpeningSequence(t *testing.T) {
	g := board.StandardGame()
	moves := []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1c4"}

	for _, lan := range moves {
		m, err := g.MoveFromLAN(lan)
		require.NoError(t, err, lan)
		require.True(t, g.MakeMove(m), lan)
	}

	assert.Equal(t, "r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 3 3", g.ToFEN())
}

func TestFoolsMateIsCheckmate(t *testing.T) {
	g := board.StandardGame()
	moves := []string{"f2f3", "e7e5", "g2g4", "d8h4"}

	for _, lan := range moves {
		m, err := g.MoveFromLAN(lan)
		require.NoError(t, err, lan)
		require.True(t, g.MakeMove(m), lan)
	}

	assert.True(t, g.IsCheck())
	assert.True(t, g.IsCheckmate())
	assert.False(t, g.IsStalemate())
	assert.True(t, g.IsOver())
}

func TestBareKingsAreInsufficientMaterial(t *testing.T) {
	g, err := fen.DecodeGame("8/8/8/8/8/8/8/4K2k w - - 0 1", true)
	require.NoError(t, err)

	assert.True(t, g.IsInsufficientMaterial())
	assert.True(t, g.IsOver())
}

func TestKingAndRookIsSufficientMaterial(t *testing.T) {
	g, err := fen.DecodeGame("8/8/8/8/8/8/8/R3K2k w - - 0 1", true)
	require.NoError(t, err)

	assert.False(t, g.IsInsufficientMaterial())
}

func TestSameColorBishopsAreInsufficientMaterial(t *testing.T) {
	// c1 and f8 are both dark squares, so neither bishop can ever force mate.
	g, err := fen.DecodeGame("5b1k/8/8/8/8/8/8/2B1K3 w - - 0 1", true)
	require.NoError(t, err)

	assert.True(t, g.IsInsufficientMaterial())
}

func TestOppositeColorBishopsAreSufficientMaterial(t *testing.T) {
	// c1 is a dark square and f7 is a light square.
	g, err := fen.DecodeGame("7k/5b2/8/8/8/8/8/2B1K3 w - - 0 1", true)
	require.NoError(t, err)

	assert.False(t, g.IsInsufficientMaterial())
}

func TestTwoKnightsAreSufficientMaterial(t *testing.T) {
	g, err := fen.DecodeGame("7k/8/8/8/8/8/8/NNK5 w - - 0 1", true)
	require.NoError(t, err)

	assert.False(t, g.IsInsufficientMaterial())
}

func TestFiftyMoveRuleEndsTheGame(t *testing.T) {
	g, err := fen.DecodeGame("7k/8/8/8/8/8/8/R3K3 w - - 99 50", true)
	require.NoError(t, err)
	require.False(t, g.IsOver())

	m, err := g.MoveFromLAN("e1d1")
	require.NoError(t, err)
	require.True(t, g.MakeMove(m))

	assert.Equal(t, 100, g.HalfmoveClock())
	assert.True(t, g.IsOver())
}

func TestHasCastlingRightsReflectsFEN(t *testing.T) {
	g, err := fen.DecodeGame("r3k2r/8/8/8/8/8/8/R3K2R w Kq - 0 1", true)
	require.NoError(t, err)

	assert.True(t, g.HasKingsideCastlingRights(board.White))
	assert.False(t, g.HasQueensideCastlingRights(board.White))
	assert.False(t, g.HasKingsideCastlingRights(board.Black))
	assert.True(t, g.HasQueensideCastlingRights(board.Black))
}

func TestPlayRandomGameToCompletion(t *testing.T) {
	g := board.StandardGame()

	for i := 0; i < 200 && !g.IsOver(); i++ {
		moves := g.LegalMoves()
		if len(moves) == 0 {
			break
		}
		require.True(t, g.MakeMove(moves[0]))
		assert.GreaterOrEqual(t, g.FullMoveNumber(), 1)
		assert.NotEmpty(t, g.ToFEN())
	}
}
