package board

import (
	"fmt"

	"github.com/seekerror/stdlib/pkg/lang"
)

// Game is the public rules-engine surface: a Position plus the side to move,
// the fifty-move halfmove clock, the fullmove counter, and a stack of
// reversible move frames. Unlike Position, which generation and legality
// testing operate on directly, Game is what a caller plays a sequence of
// moves against.
type Game struct {
	pos      *Position
	turn     Color
	halfmove int
	fullmove int

	history []gameFrame
}

type gameFrame struct {
	frame    frame
	turn     Color
	halfmove int
	fullmove int
}

// NewGame wraps a Position with the side to move and the two clocks. The
// halfmove clock and fullmove number are not validated; callers loading
// these from FEN should do so via the fen package, which already checks the
// field format.
func NewGame(pos *Position, turn Color, halfmove, fullmove int) *Game {
	return &Game{pos: pos, turn: turn, halfmove: halfmove, fullmove: fullmove}
}

// StandardGame returns a new Game in the conventional 8x8 starting position,
// White to move, with all four castling rights.
func StandardGame() *Game {
	pos := NewPosition(Standard(), AllCastlingRights, lang.Optional[Square]{})
	return NewGame(pos, White, 0, 1)
}

// Position returns the game's current board, castling rights and en passant
// target.
func (g *Game) Position() *Position {
	return g.pos
}

// Turn returns the side to move.
func (g *Game) Turn() Color {
	return g.turn
}

// HalfmoveClock returns the number of halfmoves since the last pawn advance
// or capture.
func (g *Game) HalfmoveClock() int {
	return g.halfmove
}

// FullMoveNumber returns the current full move number, starting at 1 and
// incrementing after Black moves.
func (g *Game) FullMoveNumber() int {
	return g.fullmove
}

// LegalMoves returns every move the side to move may legally play.
func (g *Game) LegalMoves() []Move {
	return g.pos.LegalMoves(g.turn)
}

// LegalMovesFrom returns the legal moves starting at sq.
func (g *Game) LegalMovesFrom(sq Square) []Move {
	return g.pos.LegalMovesFrom(g.turn, sq)
}

// MoveFromLAN parses str as a move against the game's current board
// dimensions. It does not check legality; pass the result to MakeMove for that.
func (g *Game) MoveFromLAN(str string) (Move, error) {
	return ParseLAN(str, g.pos.board.width, g.pos.board.height)
}

// MakeMove plays m if it is among the side to move's legal moves, pushing a
// frame onto the history stack so UnmakeMove can reverse it. It reports
// whether m was legal and therefore played.
func (g *Game) MakeMove(m Move) bool {
	legal := false
	for _, c := range g.LegalMoves() {
		if c == m {
			legal = true
			m = c // adopt the generator's canonical promotion/etc encoding
			break
		}
	}
	if !legal {
		return false
	}

	movingKind := KindAt(g.pos, m.From)
	isCapture := !g.pos.IsEmpty(m.To)
	if !isCapture {
		if ep, ok := g.pos.EnPassant(); ok && movingKind == Pawn && m.To == ep {
			isCapture = true
		}
	}

	g.history = append(g.history, gameFrame{
		frame:    g.pos.doMove(m),
		turn:     g.turn,
		halfmove: g.halfmove,
		fullmove: g.fullmove,
	})

	if movingKind == Pawn || isCapture {
		g.halfmove = 0
	} else {
		g.halfmove++
	}
	if g.turn == Black {
		g.fullmove++
	}
	g.turn = g.turn.Opponent()

	return true
}

// UnmakeMove reverses the most recent call to MakeMove. It reports whether
// there was a move to unmake.
func (g *Game) UnmakeMove() bool {
	if len(g.history) == 0 {
		return false
	}
	last := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]

	g.pos.undoMove(last.frame)
	g.turn = last.turn
	g.halfmove = last.halfmove
	g.fullmove = last.fullmove

	return true
}

// IsCheck reports whether the side to move is in check.
func (g *Game) IsCheck() bool {
	return g.pos.IsChecked(g.turn)
}

// IsCheckmate reports whether the side to move is in check with no legal moves.
func (g *Game) IsCheckmate() bool {
	return g.IsCheck() && len(g.LegalMoves()) == 0
}

// IsStalemate reports whether the side to move has no legal moves but is not
// in check.
func (g *Game) IsStalemate() bool {
	return !g.IsCheck() && len(g.LegalMoves()) == 0
}

// IsInsufficientMaterial reports whether the position is drawn for lack of
// mating material: bare kings, a lone minor piece against a bare king, or
// opposing lone bishops standing on the same square color. Any other
// material balance -- including two knights against a bare king -- is
// sufficient, since it remains theoretically possible to force mate.
func (g *Game) IsInsufficientMaterial() bool {
	var pieces []Piece
	var squares []Square
	b := g.pos.Board()
	for r := 0; r < b.Height(); r++ {
		for f := 0; f < b.Width(); f++ {
			sq := NewSquare(File(f), Rank(r))
			p, ok := b.Get(sq)
			if !ok || p.Kind == King {
				continue
			}
			pieces = append(pieces, p)
			squares = append(squares, sq)
		}
	}

	switch len(pieces) {
	case 0:
		return true
	case 1:
		return pieces[0].Kind == Bishop || pieces[0].Kind == Knight
	case 2:
		if pieces[0].Kind != Bishop || pieces[1].Kind != Bishop || pieces[0].Color == pieces[1].Color {
			return false
		}
		return squareColor(squares[0]) == squareColor(squares[1])
	default:
		return false
	}
}

// squareColor returns 0 or 1 for the two alternating square colors, the way
// a checkerboard pattern assigns them regardless of board size.
func squareColor(sq Square) int {
	return (int(sq.File) + int(sq.Rank)) % 2
}

// IsOver reports whether the game has reached a terminal state: checkmate,
// stalemate, insufficient material, or the fifty-move rule (a halfmove clock
// of 100 or more, i.e. fifty full moves without a pawn advance or capture).
func (g *Game) IsOver() bool {
	return g.IsCheckmate() || g.IsStalemate() || g.IsInsufficientMaterial() || g.halfmove >= 100
}

// HasKingsideCastlingRights reports whether color still holds its kingside
// castling right, regardless of whether a castle is currently playable.
func (g *Game) HasKingsideCastlingRights(c Color) bool {
	return g.pos.Castling().IsAllowed(kingSide(c))
}

// HasQueensideCastlingRights reports whether color still holds its queenside
// castling right, regardless of whether a castle is currently playable.
func (g *Game) HasQueensideCastlingRights(c Color) bool {
	return g.pos.Castling().IsAllowed(queenSide(c))
}

// ToFEN renders the game's full six-field FEN record.
func (g *Game) ToFEN() string {
	ep := "-"
	if sq, ok := g.pos.EnPassant(); ok {
		ep = sq.String()
	}
	return fmt.Sprintf("%v %v %v %v %v %v", g.pos.board.placement(), g.turn, g.pos.castling, ep, g.halfmove, g.fullmove)
}

func (g *Game) String() string {
	return g.ToFEN()
}

// KindAt returns the kind of whatever piece sits at sq, or NoPiece if empty.
func KindAt(p *Position, sq Square) Kind {
	pc, ok := p.Square(sq)
	if !ok {
		return NoPiece
	}
	return pc.Kind
}
