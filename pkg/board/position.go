package board

import (
	"fmt"

	"github.com/seekerror/stdlib/pkg/lang"
)

// Position bundles a Board with the castling rights and en passant target
// needed for move generation and legality checking. It carries no notion of
// side-to-move, clocks or history; see Game for the full rules-engine state.
type Position struct {
	board     *Board
	castling  CastlingRights
	enpassant lang.Optional[Square]
}

// NewPosition wraps a board with castling rights and an optional en passant target.
func NewPosition(b *Board, castling CastlingRights, ep lang.Optional[Square]) *Position {
	return &Position{board: b, castling: castling, enpassant: ep}
}

// Board returns the underlying piece grid.
func (p *Position) Board() *Board {
	return p.board
}

// Castling returns the current castling rights.
func (p *Position) Castling() CastlingRights {
	return p.castling
}

// EnPassant returns the en passant target square, if the last move was a
// pawn two-square advance.
func (p *Position) EnPassant() (Square, bool) {
	return p.enpassant.V()
}

// Square returns the piece at (col, row), if any.
func (p *Position) Square(sq Square) (Piece, bool) {
	return p.board.Get(sq)
}

// IsEmpty reports whether the square holds no piece.
func (p *Position) IsEmpty(sq Square) bool {
	_, ok := p.board.Get(sq)
	return !ok
}

// Clone returns a deep copy of the position, safe to mutate independently.
func (p *Position) Clone() *Position {
	b := &Board{width: p.board.width, height: p.board.height}
	b.cells = append([]Piece(nil), p.board.cells...)
	b.king = p.board.king
	return &Position{board: b, castling: p.castling, enpassant: p.enpassant}
}

// frame captures everything needed to reverse one doMove call.
type frame struct {
	move           Move
	mover          Color
	movingKind     Kind // pre-promotion kind of the piece that was on From
	captured       Piece
	capturedSquare Square
	hadCapture     bool
	rook           lang.Optional[Move] // rook relocation, if this was a castle

	prevCastling  CastlingRights
	prevEnPassant lang.Optional[Square]
}

func homeRank(c Color, h int) Rank {
	if c == White {
		return 0
	}
	return Rank(h - 1)
}

// kingHomeFile is the column the spec fixes castling to, regardless of board width.
const kingHomeFile File = 4

func rookHomeFile(side CastlingRights, w int) File {
	if side == WhiteKingSide || side == BlackKingSide {
		return File(w - 1)
	}
	return 0
}

// Do applies m in place and returns an opaque token that Undo can use to
// reverse it exactly -- the building block perft-style search loops use to
// walk a position without cloning it at every ply. The caller must already
// have established that m is at least pseudo-legal; Do does not validate.
func (p *Position) Do(m Move) frame {
	return p.doMove(m)
}

// Undo reverses a move applied via Do, restoring the position exactly.
func (p *Position) Undo(f frame) {
	p.undoMove(f)
}

// doMove applies m to the position in place and returns a frame that undoMove
// can use to reverse it exactly. The caller is responsible for having already
// established that m is at least pseudo-legal; doMove does not validate.
func (p *Position) doMove(m Move) frame {
	moving, _ := p.board.Get(m.From)

	f := frame{
		move:          m,
		mover:         moving.Color,
		movingKind:    moving.Kind,
		prevCastling:  p.castling,
		prevEnPassant: p.enpassant,
	}

	// Determine the captured piece and its square (differs from m.To for en passant).
	epTarget, hasEP := p.enpassant.V()
	isEnPassant := moving.Kind == Pawn && hasEP && m.To == epTarget && m.To.File != m.From.File
	if isEnPassant {
		f.capturedSquare = NewSquare(m.To.File, m.From.Rank)
	} else {
		f.capturedSquare = m.To
	}
	if cap, ok := p.board.Get(f.capturedSquare); ok {
		f.captured = cap
		f.hadCapture = true
	}

	// Detect castling before mutating anything.
	isCastle := moving.Kind == King && absInt(int(m.To.File)-int(m.From.File)) == 2
	if isCastle {
		var rookFrom, rookTo Square
		if m.To.File > m.From.File {
			rookFrom = NewSquare(rookHomeFile(kingSide(moving.Color), p.board.width), m.From.Rank)
			rookTo = NewSquare(m.To.File-1, m.From.Rank)
		} else {
			rookFrom = NewSquare(rookHomeFile(queenSide(moving.Color), p.board.width), m.From.Rank)
			rookTo = NewSquare(m.To.File+1, m.From.Rank)
		}
		f.rook = lang.Some(NewMove(rookFrom, rookTo))
	}

	// Mutate: remove captured piece, relocate the mover (with promotion), relocate the rook.
	if f.hadCapture {
		p.board.Clear(f.capturedSquare)
	}
	p.board.Clear(m.From)
	if m.Promotion != NoPiece {
		p.board.Set(m.To, Piece{Kind: m.Promotion, Color: moving.Color})
	} else {
		p.board.Set(m.To, moving)
	}
	if rm, ok := f.rook.V(); ok {
		rook, _ := p.board.Get(rm.From)
		p.board.Clear(rm.From)
		p.board.Set(rm.To, rook)
	}

	// Update castling rights.
	rights := p.castling
	if moving.Kind == King {
		rights = rights.Without(kingSide(moving.Color) | queenSide(moving.Color))
	}
	if moving.Kind == Rook && m.From.Rank == homeRank(moving.Color, p.board.height) {
		if m.From.File == rookHomeFile(kingSide(moving.Color), p.board.width) {
			rights = rights.Without(kingSide(moving.Color))
		} else if m.From.File == rookHomeFile(queenSide(moving.Color), p.board.width) {
			rights = rights.Without(queenSide(moving.Color))
		}
	}
	if f.hadCapture && !isEnPassant && f.captured.Kind == Rook && f.capturedSquare.Rank == homeRank(f.captured.Color, p.board.height) {
		if f.capturedSquare.File == rookHomeFile(kingSide(f.captured.Color), p.board.width) {
			rights = rights.Without(kingSide(f.captured.Color))
		} else if f.capturedSquare.File == rookHomeFile(queenSide(f.captured.Color), p.board.width) {
			rights = rights.Without(queenSide(f.captured.Color))
		}
	}
	p.castling = rights

	// Update en passant target.
	if moving.Kind == Pawn && absInt(int(m.To.Rank)-int(m.From.Rank)) == 2 {
		skipped := NewSquare(m.From.File, Rank((int(m.From.Rank)+int(m.To.Rank))/2))
		p.enpassant = lang.Some(skipped)
	} else {
		p.enpassant = lang.Optional[Square]{}
	}

	return f
}

// undoMove reverses a doMove call exactly.
func (p *Position) undoMove(f frame) {
	p.board.Clear(f.move.To)
	p.board.Set(f.move.From, Piece{Kind: f.movingKind, Color: f.mover})

	if rm, ok := f.rook.V(); ok {
		p.board.Clear(rm.To)
		p.board.Set(rm.From, Piece{Kind: Rook, Color: f.mover})
	}
	if f.hadCapture {
		p.board.Set(f.capturedSquare, f.captured)
	}

	p.castling = f.prevCastling
	p.enpassant = f.prevEnPassant
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (p *Position) String() string {
	return fmt.Sprintf("%v %v(%v)", p.board, p.castling, optSquareString(p.enpassant))
}

func optSquareString(sq lang.Optional[Square]) string {
	if v, ok := sq.V(); ok {
		return v.String()
	}
	return "-"
}
