package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/seekerror/stdlib/pkg/lang"
)

// Board is a dense W x H grid of optional pieces, with cached king squares per
// color. It has no notion of turn, castling rights or en passant; see Position
// and Game for the rules-engine layers built on top of it.
type Board struct {
	width, height int
	cells         []Piece // row-major, index = rank*width + file

	king [2]lang.Optional[Square] // indexed by colorIndex(c)
}

func colorIndex(c Color) int {
	if c == White {
		return 0
	}
	return 1
}

// Empty returns a new, empty W x H board. Fails with ErrInvalidDimensions if
// either dimension is outside [MinSide, MaxSide].
func Empty(w, h int) (*Board, error) {
	if w < MinSide || w > MaxSide || h < MinSide || h > MaxSide {
		return nil, fmt.Errorf("%w: %vx%v", ErrInvalidDimensions, w, h)
	}
	return &Board{
		width:  w,
		height: h,
		cells:  make([]Piece, w*h),
	}, nil
}

// Standard returns the conventional 8x8 starting array.
func Standard() *Board {
	b, _ := Empty(8, 8)

	back := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for f, k := range back {
		b.Set(NewSquare(File(f), 0), Piece{Kind: k, Color: White})
		b.Set(NewSquare(File(f), 7), Piece{Kind: k, Color: Black})
		b.Set(NewSquare(File(f), 1), Piece{Kind: Pawn, Color: White})
		b.Set(NewSquare(File(f), 6), Piece{Kind: Pawn, Color: Black})
	}
	return b
}

// Width returns the board's width.
func (b *Board) Width() int {
	return b.width
}

// Height returns the board's height.
func (b *Board) Height() int {
	return b.height
}

func (b *Board) index(sq Square) (int, bool) {
	if !sq.InBounds(b.width, b.height) {
		return 0, false
	}
	return int(sq.Rank)*b.width + int(sq.File), true
}

// Get returns the piece at (col, row), if any. Out-of-bounds coordinates return
// false rather than failing.
func (b *Board) Get(sq Square) (Piece, bool) {
	i, ok := b.index(sq)
	if !ok {
		return Piece{}, false
	}
	p := b.cells[i]
	return p, !p.IsEmpty()
}

// Set places p at (col, row), or clears the square if p is the empty Piece.
// Out-of-bounds coordinates are silently ignored. Writing or clearing a king
// updates the cached king square for that color; clearing a king by
// overwriting it with a different piece (or emptiness) triggers a board scan
// to find whether another king of that color remains.
func (b *Board) Set(sq Square, p Piece) {
	i, ok := b.index(sq)
	if !ok {
		return
	}

	prev := b.cells[i]
	b.cells[i] = p

	if !prev.IsEmpty() && prev.Kind == King && !(p.Kind == King && p.Color == prev.Color) {
		b.rescanKing(prev.Color)
	}
	if !p.IsEmpty() && p.Kind == King {
		b.king[colorIndex(p.Color)] = lang.Some(sq)
	}
}

// Clear removes any piece at (col, row). Equivalent to Set(sq, Piece{}).
func (b *Board) Clear(sq Square) {
	b.Set(sq, Piece{})
}

func (b *Board) rescanKing(c Color) {
	for r := 0; r < b.height; r++ {
		for f := 0; f < b.width; f++ {
			sq := NewSquare(File(f), Rank(r))
			if p, ok := b.Get(sq); ok && p.Kind == King && p.Color == c {
				b.king[colorIndex(c)] = lang.Some(sq)
				return
			}
		}
	}
	b.king[colorIndex(c)] = lang.Optional[Square]{}
}

// KingSquare returns the square holding color's king, if one is present (I2).
func (b *Board) KingSquare(c Color) (Square, bool) {
	return b.king[colorIndex(c)].V()
}

// placement renders the piece-placement field shared by Board.ToFEN and
// Game.ToFEN: ranks from the top down, each rank's files from left to right.
func (b *Board) placement() string {
	var sb strings.Builder
	for r := b.height - 1; r >= 0; r-- {
		blanks := 0
		for f := 0; f < b.width; f++ {
			p, ok := b.Get(NewSquare(File(f), Rank(r)))
			if !ok {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteRune(p.Symbol())
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if r > 0 {
			sb.WriteRune('/')
		}
	}
	return sb.String()
}

// ToFEN renders the board's placement as a standalone FEN string, synthesizing
// the remaining five fields with their defaults (white to move, no castling
// rights, no en passant, clocks at 0/1). Game.ToFEN should be used instead
// whenever the full rules-engine state is available.
func (b *Board) ToFEN() string {
	return fmt.Sprintf("%v w - - 0 1", b.placement())
}

func (b *Board) String() string {
	return b.ToFEN()
}
