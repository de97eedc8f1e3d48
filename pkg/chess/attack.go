package chess

// attacks returns the raw attack set for the piece on sq: the squares it
// threatens for check-detection purposes. For every piece but the pawn this
// is its pseudo-legal move set. A pawn threatens only its two forward
// diagonals, regardless of what occupies them — never the squares it could
// merely push to. Raw sets are what AttackedBy consults, so they must never
// call back into legality filtering.
func (b *Board) attacks(sq Square) []Square {
	p := b.PieceAt(sq)
	if p.Type != PiecePawn {
		return b.Moves(sq)
	}
	var moves []Square
	dir := pawnDirection(p.Color)
	for _, dc := range [2]int{-1, 1} {
		to := Sq(sq.Row+dir, sq.Col+dc)
		if to.InBounds() {
			moves = append(moves, to)
		}
	}
	return moves
}

// AttackedBy reports whether any piece of color by threatens sq.
func (b *Board) AttackedBy(sq Square, by Color) bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b[row][col].Color != by {
				continue
			}
			for _, to := range b.attacks(Sq(row, col)) {
				if to == sq {
					return true
				}
			}
		}
	}
	return false
}

// InCheck reports whether c's king is attacked by the opposing color. A board
// with no king for c (only reachable by mutating the board outside of normal
// play) reports false.
func (b *Board) InCheck(c Color) bool {
	king, ok := b.King(c)
	if !ok {
		return false
	}
	return b.AttackedBy(king, c.Opposite())
}

// LegalMoves filters the pseudo-legal moves of the piece on sq down to those
// that do not leave its own king attacked. Each candidate is simulated by
// relocating on the live board and reverted before the next one; the board is
// identical before and after the call.
func (b *Board) LegalMoves(sq Square) []Square {
	p := b.PieceAt(sq)
	if p.IsEmpty() {
		return nil
	}
	var legal []Square
	for _, to := range b.Moves(sq) {
		if !b.exposesKing(sq, to, p.Color) {
			legal = append(legal, to)
		}
	}
	return legal
}

// exposesKing simulates from->to and reports whether c's king ends up
// attacked. A position where the king cannot be located after the move is
// treated as exposed, so no move can be misclassified as safe.
func (b *Board) exposesKing(from, to Square, c Color) bool {
	moving := b.PieceAt(from)
	taken := b.PieceAt(to)
	b.Relocate(from, to)

	exposed := true
	if king, ok := b.King(c); ok {
		exposed = b.AttackedBy(king, c.Opposite())
	}

	b.Place(from, moving)
	b.Place(to, taken)
	return exposed
}
