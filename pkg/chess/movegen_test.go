package chess

import (
	"sort"
	"testing"
)

func sortSquares(squares []Square) []Square {
	sorted := append([]Square(nil), squares...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Row != sorted[j].Row {
			return sorted[i].Row < sorted[j].Row
		}
		return sorted[i].Col < sorted[j].Col
	})
	return sorted
}

func sameSquares(a, b []Square) bool {
	if len(a) != len(b) {
		return false
	}
	a, b = sortSquares(a), sortSquares(b)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func place(b *Board, c Color, pt PieceType, squares ...Square) {
	for _, sq := range squares {
		b.Place(sq, Piece{Color: c, Type: pt})
	}
}

func TestPawnMoves(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		setup func(b *Board)
		from  Square
		want  []Square
	}{
		{
			name: "white single and double step from start rank",
			setup: func(b *Board) {
				place(b, ColorWhite, PiecePawn, Sq(6, 4))
			},
			from: Sq(6, 4),
			want: []Square{Sq(5, 4), Sq(4, 4)},
		},
		{
			name: "black single and double step from start rank",
			setup: func(b *Board) {
				place(b, ColorBlack, PiecePawn, Sq(1, 4))
			},
			from: Sq(1, 4),
			want: []Square{Sq(2, 4), Sq(3, 4)},
		},
		{
			name: "no double step away from start rank",
			setup: func(b *Board) {
				place(b, ColorWhite, PiecePawn, Sq(5, 4))
			},
			from: Sq(5, 4),
			want: []Square{Sq(4, 4)},
		},
		{
			name: "blocked pawn has no moves, even with the far square empty",
			setup: func(b *Board) {
				place(b, ColorWhite, PiecePawn, Sq(6, 4))
				place(b, ColorBlack, PieceKnight, Sq(5, 4))
			},
			from: Sq(6, 4),
			want: nil,
		},
		{
			name: "double step blocked on the far square only",
			setup: func(b *Board) {
				place(b, ColorWhite, PiecePawn, Sq(6, 4))
				place(b, ColorBlack, PieceKnight, Sq(4, 4))
			},
			from: Sq(6, 4),
			want: []Square{Sq(5, 4)},
		},
		{
			name: "diagonal capture only onto opposing pieces",
			setup: func(b *Board) {
				place(b, ColorWhite, PiecePawn, Sq(5, 4))
				place(b, ColorBlack, PieceRook, Sq(4, 3))
				place(b, ColorWhite, PieceRook, Sq(4, 5))
			},
			from: Sq(5, 4),
			want: []Square{Sq(4, 4), Sq(4, 3)},
		},
		{
			name: "no diagonal move onto empty squares",
			setup: func(b *Board) {
				place(b, ColorBlack, PiecePawn, Sq(3, 4))
			},
			from: Sq(3, 4),
			want: []Square{Sq(4, 4)},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := &Board{}
			tt.setup(b)
			got := b.Moves(tt.from)
			if !sameSquares(got, tt.want) {
				t.Errorf("Moves(%s) = %v, want %v", tt.from, got, tt.want)
			}
		})
	}
}

func TestKnightMoves(t *testing.T) {
	t.Parallel()
	b := &Board{}
	place(b, ColorWhite, PieceKnight, Sq(4, 4))
	place(b, ColorWhite, PiecePawn, Sq(2, 3)) // own piece blocks
	place(b, ColorBlack, PiecePawn, Sq(2, 5)) // opposing piece capturable
	want := []Square{
		Sq(2, 5), Sq(3, 2), Sq(3, 6), Sq(5, 2),
		Sq(5, 6), Sq(6, 3), Sq(6, 5),
	}
	if got := b.Moves(Sq(4, 4)); !sameSquares(got, want) {
		t.Errorf("Moves = %v, want %v", got, want)
	}

	corner := &Board{}
	place(corner, ColorBlack, PieceKnight, Sq(0, 0))
	wantCorner := []Square{Sq(1, 2), Sq(2, 1)}
	if got := corner.Moves(Sq(0, 0)); !sameSquares(got, wantCorner) {
		t.Errorf("corner Moves = %v, want %v", got, wantCorner)
	}
}

func TestSlidingMoves(t *testing.T) {
	t.Parallel()
	b := &Board{}
	place(b, ColorWhite, PieceRook, Sq(4, 4))
	place(b, ColorWhite, PieceKnight, Sq(4, 6)) // own piece: stop, not included
	place(b, ColorBlack, PieceKnight, Sq(1, 4)) // opposing piece: included, stop

	want := []Square{
		// up, stopping on the capture
		Sq(3, 4), Sq(2, 4), Sq(1, 4),
		// down to the edge
		Sq(5, 4), Sq(6, 4), Sq(7, 4),
		// left to the edge
		Sq(4, 3), Sq(4, 2), Sq(4, 1), Sq(4, 0),
		// right, stopping before the own knight
		Sq(4, 5),
	}
	if got := b.Moves(Sq(4, 4)); !sameSquares(got, want) {
		t.Errorf("rook Moves = %v, want %v", got, want)
	}
}

func TestBishopAndQueenMoves(t *testing.T) {
	t.Parallel()
	b := &Board{}
	place(b, ColorBlack, PieceBishop, Sq(0, 0))
	wantBishop := []Square{
		Sq(1, 1), Sq(2, 2), Sq(3, 3), Sq(4, 4),
		Sq(5, 5), Sq(6, 6), Sq(7, 7),
	}
	if got := b.Moves(Sq(0, 0)); !sameSquares(got, wantBishop) {
		t.Errorf("bishop Moves = %v, want %v", got, wantBishop)
	}

	q := &Board{}
	place(q, ColorWhite, PieceQueen, Sq(7, 7))
	if got := q.Moves(Sq(7, 7)); len(got) != 21 {
		t.Errorf("corner queen has %d moves, want 21", len(got))
	}
}

func TestKingMoves(t *testing.T) {
	t.Parallel()
	b := &Board{}
	place(b, ColorWhite, PieceKing, Sq(7, 4))
	place(b, ColorWhite, PiecePawn, Sq(6, 4))
	place(b, ColorBlack, PiecePawn, Sq(6, 5))
	want := []Square{Sq(6, 3), Sq(6, 5), Sq(7, 3), Sq(7, 5)}
	if got := b.Moves(Sq(7, 4)); !sameSquares(got, want) {
		t.Errorf("king Moves = %v, want %v", got, want)
	}
}

func TestMovesFromEmptyOrOffBoard(t *testing.T) {
	t.Parallel()
	b := NewBoard()
	if got := b.Moves(Sq(4, 4)); got != nil {
		t.Errorf("Moves from empty square = %v, want nil", got)
	}
	if got := b.Moves(Sq(-1, 9)); got != nil {
		t.Errorf("Moves from off-board square = %v, want nil", got)
	}
}

func TestPawnRawAttacks(t *testing.T) {
	t.Parallel()
	b := &Board{}
	place(b, ColorWhite, PiecePawn, Sq(5, 4))

	// A pawn threatens its forward diagonals even when they are empty...
	if !b.AttackedBy(Sq(4, 3), ColorWhite) {
		t.Error("empty forward diagonal not attacked")
	}
	if !b.AttackedBy(Sq(4, 5), ColorWhite) {
		t.Error("empty forward diagonal not attacked")
	}
	// ...but never the square it pushes to.
	if b.AttackedBy(Sq(4, 4), ColorWhite) {
		t.Error("push square reported as attacked")
	}
	if b.AttackedBy(Sq(3, 4), ColorWhite) {
		t.Error("double push square reported as attacked")
	}
}

func TestAttackedBy(t *testing.T) {
	t.Parallel()
	b := &Board{}
	place(b, ColorBlack, PieceRook, Sq(0, 0))
	place(b, ColorBlack, PiecePawn, Sq(0, 4)) // blocks the rank beyond it

	if !b.AttackedBy(Sq(0, 3), ColorBlack) {
		t.Error("open rank square not attacked")
	}
	if b.AttackedBy(Sq(0, 5), ColorBlack) {
		t.Error("square behind a blocker reported as attacked")
	}
	if b.AttackedBy(Sq(0, 3), ColorWhite) {
		t.Error("square attacked by the wrong color")
	}
}

func TestInCheck(t *testing.T) {
	t.Parallel()
	b := &Board{}
	place(b, ColorWhite, PieceKing, Sq(7, 4))
	place(b, ColorBlack, PieceKing, Sq(0, 4))
	place(b, ColorBlack, PieceRook, Sq(3, 4))

	if !b.InCheck(ColorWhite) {
		t.Error("white not reported in check by the rook")
	}
	if b.InCheck(ColorBlack) {
		t.Error("black reported in check by its own rook")
	}
}
