package chess

// Color is the side a piece belongs to.
type Color uint8

const (
	ColorNone Color = iota
	ColorWhite
	ColorBlack
)

func (c Color) String() string {
	switch c {
	case ColorWhite:
		return "White"
	case ColorBlack:
		return "Black"
	default:
		return "None"
	}
}

func (c Color) Opposite() Color {
	switch c {
	case ColorWhite:
		return ColorBlack
	case ColorBlack:
		return ColorWhite
	default:
		return ColorNone
	}
}

// PieceType is the kind of a piece, independent of its color.
type PieceType uint8

const (
	PieceNone PieceType = iota
	PiecePawn
	PieceKnight
	PieceBishop
	PieceRook
	PieceQueen
	PieceKing
)

func (p PieceType) String() string {
	switch p {
	case PiecePawn:
		return "Pawn"
	case PieceKnight:
		return "Knight"
	case PieceBishop:
		return "Bishop"
	case PieceRook:
		return "Rook"
	case PieceQueen:
		return "Queen"
	case PieceKing:
		return "King"
	default:
		return ""
	}
}

// Piece is an immutable (color, type) pair. The zero value is the empty cell.
type Piece struct {
	Color Color
	Type  PieceType
}

// NoPiece marks an empty square.
var NoPiece = Piece{}

func (p Piece) IsEmpty() bool {
	return p.Type == PieceNone
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Color.String() + " " + p.Type.String()
}

// Symbol returns the unicode figurine for the piece, or a space for NoPiece.
func (p Piece) Symbol() string {
	switch p.Color {
	case ColorWhite:
		switch p.Type {
		case PiecePawn:
			return "♙"
		case PieceKnight:
			return "♘"
		case PieceBishop:
			return "♗"
		case PieceRook:
			return "♖"
		case PieceQueen:
			return "♕"
		case PieceKing:
			return "♔"
		}
	case ColorBlack:
		switch p.Type {
		case PiecePawn:
			return "♟"
		case PieceKnight:
			return "♞"
		case PieceBishop:
			return "♝"
		case PieceRook:
			return "♜"
		case PieceQueen:
			return "♛"
		case PieceKing:
			return "♚"
		}
	}
	return " "
}
