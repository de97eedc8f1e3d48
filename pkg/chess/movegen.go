package chess

// Direction tables. Row deltas are screen-oriented: negative is toward black's
// home rank at the top.
var (
	rookDirs   = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	queenDirs  = [8][2]int{
		{0, 1}, {0, -1}, {1, 0}, {-1, 0},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	knightOffsets = [8][2]int{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
)

// pawnDirection is the row delta a pawn of color c advances by.
func pawnDirection(c Color) int {
	if c == ColorWhite {
		return -1
	}
	return 1
}

// pawnStartRow is the rank a pawn of color c double-steps from.
func pawnStartRow(c Color) int {
	if c == ColorWhite {
		return 6
	}
	return 1
}

// Moves returns the pseudo-legal destinations for the piece on sq: every
// square its movement pattern reaches, ignoring whether moving there exposes
// its own king. Empty or out-of-bounds origins yield nil.
func (b *Board) Moves(sq Square) []Square {
	p := b.PieceAt(sq)
	switch p.Type {
	case PiecePawn:
		return b.pawnMoves(sq, p.Color)
	case PieceKnight:
		return b.offsetMoves(sq, p.Color, knightOffsets[:])
	case PieceBishop:
		return b.slideMoves(sq, p.Color, bishopDirs[:])
	case PieceRook:
		return b.slideMoves(sq, p.Color, rookDirs[:])
	case PieceQueen:
		return b.slideMoves(sq, p.Color, queenDirs[:])
	case PieceKing:
		return b.offsetMoves(sq, p.Color, queenDirs[:])
	default:
		return nil
	}
}

// pawnMoves: one step forward onto an empty square, a double step from the
// start rank when both squares are empty, and diagonal captures only onto
// opposing pieces. A blocked pawn gets no double step even if the far square
// is empty.
func (b *Board) pawnMoves(sq Square, c Color) []Square {
	var moves []Square
	dir := pawnDirection(c)
	step := Sq(sq.Row+dir, sq.Col)
	if step.InBounds() && b.PieceAt(step).IsEmpty() {
		moves = append(moves, step)
		if sq.Row == pawnStartRow(c) {
			double := Sq(sq.Row+2*dir, sq.Col)
			if b.PieceAt(double).IsEmpty() {
				moves = append(moves, double)
			}
		}
	}
	for _, dc := range [2]int{-1, 1} {
		capture := Sq(sq.Row+dir, sq.Col+dc)
		if !capture.InBounds() {
			continue
		}
		if target := b.PieceAt(capture); !target.IsEmpty() && target.Color != c {
			moves = append(moves, capture)
		}
	}
	return moves
}

// offsetMoves covers the fixed-offset pieces (knight, king): each offset is a
// destination if it lands on the board on an empty or opposing square.
func (b *Board) offsetMoves(sq Square, c Color, offsets [][2]int) []Square {
	var moves []Square
	for _, d := range offsets {
		to := Sq(sq.Row+d[0], sq.Col+d[1])
		if !to.InBounds() {
			continue
		}
		if target := b.PieceAt(to); target.IsEmpty() || target.Color != c {
			moves = append(moves, to)
		}
	}
	return moves
}

// slideMoves walks each direction outward: empty squares are destinations and
// the walk continues, an opposing piece is a destination and stops the walk,
// an own piece or the board edge stops the walk.
func (b *Board) slideMoves(sq Square, c Color, dirs [][2]int) []Square {
	var moves []Square
	for _, d := range dirs {
		to := Sq(sq.Row+d[0], sq.Col+d[1])
		for to.InBounds() {
			target := b.PieceAt(to)
			if target.IsEmpty() {
				moves = append(moves, to)
			} else {
				if target.Color != c {
					moves = append(moves, to)
				}
				break
			}
			to = Sq(to.Row+d[0], to.Col+d[1])
		}
	}
	return moves
}
