// Package fen contains utilities for reading and writing positions in FEN
// notation, generalized to any rectangular board width and height the
// placement field happens to describe.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/arnegard/rankfile/pkg/board"
	"github.com/seekerror/stdlib/pkg/lang"
)

// Initial is the FEN record for the standard 8x8 starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses a FEN record into a Position plus the active color, halfmove
// clock and fullmove number. The board's width and height are inferred from
// the placement field itself: the number of '/'-separated ranks gives the
// height, and the square count of the first rank gives the width. Every rank
// must agree on that width or decoding fails.
//
// Example:
//
//	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
func Decode(rec string) (*board.Position, board.Color, int, int, error) {
	parts := strings.Split(strings.TrimSpace(rec), " ")
	if len(parts) != 6 {
		return nil, 0, 0, 0, fmt.Errorf("%w: wrong number of fields in %q", board.ErrInvalidFEN, rec)
	}

	ranks := strings.Split(parts[0], "/")
	height := len(ranks)
	if height < board.MinSide || height > board.MaxSide {
		return nil, 0, 0, 0, fmt.Errorf("%w: %v ranks in %q", board.ErrInvalidFEN, height, rec)
	}

	width := -1
	type placement struct {
		sq board.Square
		p  board.Piece
	}
	var placements []placement

	for i, rankStr := range ranks {
		rank := board.Rank(height - 1 - i)
		file := 0
		for _, r := range rankStr {
			switch {
			case unicode.IsDigit(r):
				file += int(r - '0')
			case unicode.IsLetter(r):
				p, ok := parsePiece(r)
				if !ok {
					return nil, 0, 0, 0, fmt.Errorf("%w: invalid piece %q in %q", board.ErrInvalidFEN, r, rec)
				}
				placements = append(placements, placement{sq: board.NewSquare(board.File(file), rank), p: p})
				file++
			default:
				return nil, 0, 0, 0, fmt.Errorf("%w: invalid character %q in %q", board.ErrInvalidFEN, r, rec)
			}
		}
		if width == -1 {
			width = file
		} else if file != width {
			return nil, 0, 0, 0, fmt.Errorf("%w: ragged ranks in %q", board.ErrInvalidFEN, rec)
		}
	}
	if width < board.MinSide || width > board.MaxSide {
		return nil, 0, 0, 0, fmt.Errorf("%w: %v files in %q", board.ErrInvalidFEN, width, rec)
	}

	b, err := board.Empty(width, height)
	if err != nil {
		return nil, 0, 0, 0, fmt.Errorf("%w: %v", board.ErrInvalidFEN, err)
	}
	for _, pl := range placements {
		b.Set(pl.sq, pl.p)
	}

	active, ok := parseColor(parts[1])
	if !ok {
		return nil, 0, 0, 0, fmt.Errorf("%w: invalid active color in %q", board.ErrInvalidFEN, rec)
	}

	castling, ok := parseCastling(parts[2])
	if !ok {
		return nil, 0, 0, 0, fmt.Errorf("%w: invalid castling field in %q", board.ErrInvalidFEN, rec)
	}

	var ep lang.Optional[board.Square]
	if parts[3] != "-" {
		sq, err := board.ParseSquareStr(parts[3])
		if err != nil || !sq.InBounds(width, height) {
			return nil, 0, 0, 0, fmt.Errorf("%w: invalid en passant field in %q", board.ErrInvalidFEN, rec)
		}
		ep = lang.Some(sq)
	}

	np, err := strconv.Atoi(parts[4])
	if err != nil || np < 0 {
		return nil, 0, 0, 0, fmt.Errorf("%w: invalid halfmove clock in %q", board.ErrInvalidFEN, rec)
	}

	fm, err := strconv.Atoi(parts[5])
	if err != nil || fm < 1 {
		return nil, 0, 0, 0, fmt.Errorf("%w: invalid fullmove number in %q", board.ErrInvalidFEN, rec)
	}

	pos := board.NewPosition(b, castling, ep)
	pos = normalizeEnPassant(pos, active)

	return pos, active, np, fm, nil
}

// DecodeGame parses rec into a ready-to-play Game. When castlingEnabled is
// false, any castling rights named in the record are discarded rather than
// honored -- used by callers that want a fixed-board variant with castling
// turned off regardless of what a hand-written FEN string claims.
func DecodeGame(rec string, castlingEnabled bool) (*board.Game, error) {
	pos, turn, halfmove, fullmove, err := Decode(rec)
	if err != nil {
		return nil, err
	}
	if !castlingEnabled && pos.Castling() != board.NoCastlingRights {
		ep := lang.Optional[board.Square]{}
		if sq, ok := pos.EnPassant(); ok {
			ep = lang.Some(sq)
		}
		pos = board.NewPosition(pos.Board(), board.NoCastlingRights, ep)
	}
	return board.NewGame(pos, turn, halfmove, fullmove), nil
}

// EncodeGame renders g's full state as a FEN record.
func EncodeGame(g *board.Game) string {
	return Encode(g.Position(), g.Turn(), g.HalfmoveClock(), g.FullMoveNumber())
}

// normalizeEnPassant drops an en passant target that no pawn of active could
// legally capture onto (a pawn pinned to its own king does not count), per
// the rule that such a target is written back out as "-" rather than
// preserved verbatim.
func normalizeEnPassant(pos *board.Position, active board.Color) *board.Position {
	target, ok := pos.EnPassant()
	if !ok {
		return pos
	}

	dir := 1
	if active == board.Black {
		dir = -1
	}
	capturedSq := board.NewSquare(target.File, target.Rank-board.Rank(dir))
	captured, ok := pos.Square(capturedSq)
	if !ok || captured.Kind != board.Pawn || captured.Color == active {
		return board.NewPosition(pos.Board(), pos.Castling(), lang.Optional[board.Square]{})
	}

	w, h := pos.Board().Width(), pos.Board().Height()
	canCapture := false
	for _, df := range [2]int{-1, 1} {
		src := capturedSq.Add(df, 0)
		if !src.InBounds(w, h) {
			continue
		}
		if p, ok := pos.Square(src); ok && p.Kind == board.Pawn && p.Color == active && pos.IsLegal(active, board.NewMove(src, target)) {
			canCapture = true
			break
		}
	}
	if !canCapture {
		return board.NewPosition(pos.Board(), pos.Castling(), lang.Optional[board.Square]{})
	}
	return pos
}

// Encode renders the position and game data as a FEN record.
func Encode(pos *board.Position, c board.Color, halfmove, fullmove int) string {
	var sb strings.Builder
	b := pos.Board()
	h := b.Height()
	for r := h - 1; r >= 0; r-- {
		blanks := 0
		for f := 0; f < b.Width(); f++ {
			p, ok := pos.Square(board.NewSquare(board.File(f), board.Rank(r)))
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
			sb.WriteString("/")
		}
	}

	ep := "-"
	if sq, ok := pos.EnPassant(); ok {
		ep = sq.String()
	}

	return fmt.Sprintf("%v %v %v %v %v %v", sb.String(), c, pos.Castling(), ep, halfmove, fullmove)
}

func parseCastling(str string) (board.CastlingRights, bool) {
	if str == "-" {
		return board.NoCastlingRights, true
	}
	var rights board.CastlingRights
	for _, r := range str {
		switch r {
		case 'K':
			rights |= board.WhiteKingSide
		case 'Q':
			rights |= board.WhiteQueenSide
		case 'k':
			rights |= board.BlackKingSide
		case 'q':
			rights |= board.BlackQueenSide
		default:
			return 0, false
		}
	}
	return rights, true
}

func parseColor(str string) (board.Color, bool) {
	switch str {
	case "w", "W":
		return board.White, true
	case "b", "B":
		return board.Black, true
	default:
		return 0, false
	}
}

func parsePiece(r rune) (board.Piece, bool) {
	k, ok := board.ParseKind(r)
	if !ok {
		return board.Piece{}, false
	}
	c := board.Black
	if unicode.IsUpper(r) {
		c = board.White
	}
	return board.Piece{Kind: k, Color: c}, true
}
