package board

// promotionKinds lists the four kinds a pawn may promote to, in the order moves
// are emitted.
var promotionKinds = [4]Kind{Queen, Rook, Bishop, Knight}

// PseudoLegalMoves returns every move a piece of color turn could make,
// ignoring whether it leaves that side's own king in check. Castling is not
// included here; see Position.castlingCandidates and Game.LegalMoves.
func (p *Position) PseudoLegalMoves(turn Color) []Move {
	var moves []Move
	w, h := p.board.width, p.board.height

	for r := 0; r < h; r++ {
		for f := 0; f < w; f++ {
			sq := NewSquare(File(f), Rank(r))
			pc, ok := p.board.Get(sq)
			if !ok || pc.Color != turn {
				continue
			}
			moves = append(moves, p.pseudoLegalMovesFrom(sq, pc)...)
		}
	}
	return moves
}

// pseudoLegalMovesFrom returns the pseudo-legal moves of piece pc standing on
// sq, moving as pc.Color, or nil if pc is the empty Piece.
func (p *Position) pseudoLegalMovesFrom(sq Square, pc Piece) []Move {
	switch pc.Kind {
	case King:
		return p.kingMoves(sq, pc.Color)
	case Queen:
		return p.slideMoves(sq, pc.Color, queenDirs[:])
	case Rook:
		return p.slideMoves(sq, pc.Color, rookDirs[:])
	case Bishop:
		return p.slideMoves(sq, pc.Color, bishopDirs[:])
	case Knight:
		return p.knightMoves(sq, pc.Color)
	case Pawn:
		return p.pawnMoves(sq, pc.Color)
	default:
		return nil
	}
}

func (p *Position) kingMoves(sq Square, c Color) []Move {
	var moves []Move
	w, h := p.board.width, p.board.height
	for _, d := range queenDirs {
		t := sq.Add(d[0], d[1])
		if !t.InBounds(w, h) {
			continue
		}
		if pc, ok := p.board.Get(t); ok && pc.Color == c {
			continue
		}
		moves = append(moves, NewMove(sq, t))
	}
	return moves
}

func (p *Position) knightMoves(sq Square, c Color) []Move {
	var moves []Move
	w, h := p.board.width, p.board.height
	for _, d := range knightOffs {
		t := sq.Add(d[0], d[1])
		if !t.InBounds(w, h) {
			continue
		}
		if pc, ok := p.board.Get(t); ok && pc.Color == c {
			continue
		}
		moves = append(moves, NewMove(sq, t))
	}
	return moves
}

func (p *Position) slideMoves(sq Square, c Color, dirs [][2]int) []Move {
	var moves []Move
	w, h := p.board.width, p.board.height
	for _, d := range dirs {
		t := sq.Add(d[0], d[1])
		for t.InBounds(w, h) {
			pc, ok := p.board.Get(t)
			if !ok {
				moves = append(moves, NewMove(sq, t))
				t = t.Add(d[0], d[1])
				continue
			}
			if pc.Color != c {
				moves = append(moves, NewMove(sq, t))
			}
			break
		}
	}
	return moves
}

func (p *Position) pawnMoves(sq Square, c Color) []Move {
	var moves []Move
	w, h := p.board.width, p.board.height

	dir := 1
	startRank := Rank(1)
	lastRank := Rank(h - 1)
	if c == Black {
		dir = -1
		startRank = Rank(h - 2)
		lastRank = 0
	}

	emit := func(from, to Square) {
		if to.Rank == lastRank {
			for _, k := range promotionKinds {
				moves = append(moves, NewPromotion(from, to, k))
			}
		} else {
			moves = append(moves, NewMove(from, to))
		}
	}

	one := sq.Add(0, dir)
	if one.InBounds(w, h) {
		if _, occupied := p.board.Get(one); !occupied {
			emit(sq, one)

			if sq.Rank == startRank {
				two := sq.Add(0, 2*dir)
				if _, occ2 := p.board.Get(two); !occ2 {
					moves = append(moves, NewMove(sq, two))
				}
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		t := sq.Add(df, dir)
		if !t.InBounds(w, h) {
			continue
		}
		if pc, ok := p.board.Get(t); ok {
			if pc.Color != c {
				emit(sq, t)
			}
			continue
		}
		if ep, ok := p.enpassant.V(); ok && ep == t {
			moves = append(moves, NewMove(sq, t))
		}
	}

	return moves
}
