// Package chess is the rules engine behind the chess screens: board state,
// per-piece move generation, attack and check detection, and the
// select/move/reset state machine the UIs drive. It implements the basic
// rules only: no castling, en passant, promotion, or repetition draws.
package chess

import (
	"strings"

	"github.com/fatih/color"
)

// Size is the board width and height.
const Size = 8

// Board is a mutable 8x8 grid of pieces. The zero value is an empty board;
// use NewBoard for the standard starting position. A Board is owned by a
// single Game and must not be shared between games.
type Board [Size][Size]Piece

var backRank = [Size]PieceType{
	PieceRook, PieceKnight, PieceBishop, PieceQueen,
	PieceKing, PieceBishop, PieceKnight, PieceRook,
}

// NewBoard returns a board in the standard starting position.
func NewBoard() *Board {
	b := &Board{}
	b.Setup()
	return b
}

// Setup clears the board and places the standard starting position: black on
// rows 0-1, white on rows 6-7.
func (b *Board) Setup() {
	*b = Board{}
	for col, pt := range backRank {
		b[0][col] = Piece{Color: ColorBlack, Type: pt}
		b[1][col] = Piece{Color: ColorBlack, Type: PiecePawn}
		b[6][col] = Piece{Color: ColorWhite, Type: PiecePawn}
		b[7][col] = Piece{Color: ColorWhite, Type: pt}
	}
}

// PieceAt returns the piece on sq, or NoPiece if sq is empty or out of bounds.
func (b *Board) PieceAt(sq Square) Piece {
	if !sq.InBounds() {
		return NoPiece
	}
	return b[sq.Row][sq.Col]
}

// Place puts p on sq. Placing NoPiece clears the square.
func (b *Board) Place(sq Square, p Piece) {
	b[sq.Row][sq.Col] = p
}

// Clear empties sq.
func (b *Board) Clear(sq Square) {
	b[sq.Row][sq.Col] = NoPiece
}

// Relocate moves the piece on from to to, overwriting whatever occupied the
// destination. A capture is just the overwrite; there is no other side effect.
func (b *Board) Relocate(from, to Square) {
	b[to.Row][to.Col] = b[from.Row][from.Col]
	b[from.Row][from.Col] = NoPiece
}

// King returns the square holding c's king, scanning top to bottom.
func (b *Board) King(c Color) (Square, bool) {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			p := b[row][col]
			if p.Color == c && p.Type == PieceKing {
				return Sq(row, col), true
			}
		}
	}
	return Square{}, false
}

// Draw renders the board as colored text, for logs and test output.
func (b *Board) Draw() string {
	light := color.New(color.BgYellow, color.FgBlack)
	dark := color.New(color.BgGreen, color.FgBlack)
	builder := strings.Builder{}
	for row := 0; row < Size; row++ {
		builder.WriteString(color.New(color.Bold).Sprintf(" %d ", Size-row))
		for col := 0; col < Size; col++ {
			cell := light
			if (row+col)%2 != 0 {
				cell = dark
			}
			builder.WriteString(cell.Sprintf(" %s ", b[row][col].Symbol()))
		}
		builder.WriteString("\n")
	}
	builder.WriteString("   ")
	for col := 0; col < Size; col++ {
		builder.WriteString(color.New(color.Bold).Sprintf(" %c ", 'a'+col))
	}
	return builder.String()
}
