package board

// castlingCandidates returns the pseudo-legal castling moves for turn: moves
// whose rook is still in place, whose rights are still held, and whose
// intervening squares are empty. King-safety (not currently in check, not
// passing through or landing on an attacked square) is checked here too,
// since unlike ordinary moves a castle is illegal mid-flight, not just at
// the end of it.
func (p *Position) castlingCandidates(turn Color) []Move {
	kingSq, ok := p.board.KingSquare(turn)
	if !ok || kingSq.File != kingHomeFile || kingSq.Rank != homeRank(turn, p.board.height) {
		return nil
	}
	if p.IsAttacked(kingSq, turn.Opponent()) {
		return nil
	}

	var moves []Move
	w := p.board.width
	rank := kingSq.Rank

	tryCastle := func(side CastlingRights, rookFile, kingTo, pathFrom, pathTo File) {
		if !p.castling.IsAllowed(side) {
			return
		}
		rookSq := NewSquare(rookFile, rank)
		if rook, ok := p.board.Get(rookSq); !ok || rook.Kind != Rook || rook.Color != turn {
			return
		}
		for f := pathFrom; f <= pathTo; f++ {
			if f == kingHomeFile {
				continue
			}
			if _, occupied := p.board.Get(NewSquare(f, rank)); occupied {
				return
			}
		}
		// The squares the king actually crosses (including its destination)
		// must not be attacked; the rook's own path may be, the king's may not.
		step := 1
		if kingTo < kingHomeFile {
			step = -1
		}
		for f := kingHomeFile + File(step); ; f += File(step) {
			if p.IsAttacked(NewSquare(f, rank), turn.Opponent()) {
				return
			}
			if f == kingTo {
				break
			}
		}
		moves = append(moves, NewMove(kingSq, NewSquare(kingTo, rank)))
	}

	tryCastle(kingSide(turn), File(w-1), 6, kingHomeFile+1, File(w-2))
	tryCastle(queenSide(turn), 0, 2, 1, kingHomeFile-1)

	return moves
}

// LegalMoves returns every move turn may legally play from this position:
// the union of pseudo-legal piece moves and castling candidates, with any
// move that would leave turn's own king in check removed.
func (p *Position) LegalMoves(turn Color) []Move {
	candidates := p.PseudoLegalMoves(turn)
	candidates = append(candidates, p.castlingCandidates(turn)...)

	legal := make([]Move, 0, len(candidates))
	for _, m := range candidates {
		if p.IsLegal(turn, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// IsLegal reports whether m, played by turn, leaves turn's own king safe. It
// applies m, tests check, then reverts -- it does not itself verify that m is
// pseudo-legal.
func (p *Position) IsLegal(turn Color, m Move) bool {
	f := p.doMove(m)
	safe := !p.IsChecked(turn)
	p.undoMove(f)
	return safe
}

// LegalMovesFrom returns the legal moves, of any kind, starting at sq.
func (p *Position) LegalMovesFrom(turn Color, sq Square) []Move {
	var out []Move
	for _, m := range p.LegalMoves(turn) {
		if m.From == sq {
			out = append(out, m)
		}
	}
	return out
}
