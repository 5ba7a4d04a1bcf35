package board

// directions used by sliding and stepping pieces.
var (
	rookDirs   = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	queenDirs  = [8][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightOffs = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
)

// IsAttacked reports whether sq is attacked by a piece of color by. It works
// even when sq is empty, which castling-path checks depend on. Rather than
// generating every pseudo-legal move for by and testing membership, it casts
// rays and steps outward from sq itself and asks whether an attacking piece
// of the right kind sits at the far end -- equivalent, and touches far fewer
// squares on a sparsely populated board.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	w, h := p.board.width, p.board.height

	for _, d := range rookDirs {
		if p.rayHits(sq, d, by, Rook, Queen, w, h) {
			return true
		}
	}
	for _, d := range bishopDirs {
		if p.rayHits(sq, d, by, Bishop, Queen, w, h) {
			return true
		}
	}
	for _, d := range knightOffs {
		t := sq.Add(d[0], d[1])
		if t.InBounds(w, h) {
			if pc, ok := p.board.Get(t); ok && pc.Color == by && pc.Kind == Knight {
				return true
			}
		}
	}
	for _, d := range queenDirs {
		t := sq.Add(d[0], d[1])
		if t.InBounds(w, h) {
			if pc, ok := p.board.Get(t); ok && pc.Color == by && pc.Kind == King {
				return true
			}
		}
	}

	// Pawns attack diagonally toward their direction of advance: a white pawn on
	// (f, r) attacks (f±1, r+1), so to find one attacking sq we look one rank
	// behind sq (from white's perspective) at the two adjacent files.
	dir := 1
	if by == Black {
		dir = -1
	}
	for _, df := range [2]int{-1, 1} {
		t := sq.Add(df, -dir)
		if t.InBounds(w, h) {
			if pc, ok := p.board.Get(t); ok && pc.Color == by && pc.Kind == Pawn {
				return true
			}
		}
	}

	return false
}

func (p *Position) rayHits(sq Square, d [2]int, by Color, near, far Kind, w, h int) bool {
	t := sq.Add(d[0], d[1])
	for t.InBounds(w, h) {
		if pc, ok := p.board.Get(t); ok {
			if pc.Color == by && (pc.Kind == near || pc.Kind == far) {
				return true
			}
			return false
		}
		t = t.Add(d[0], d[1])
	}
	return false
}

// IsChecked reports whether color's king is attacked. The color must have a
// king on the board.
func (p *Position) IsChecked(c Color) bool {
	sq, ok := p.board.KingSquare(c)
	if !ok {
		return false
	}
	return p.IsAttacked(sq, c.Opponent())
}
