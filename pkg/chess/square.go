package chess

import "fmt"

// Square addresses a board cell. Row 0 is black's home rank (the top of the
// screen), row 7 is white's. Col 0 is the a-file.
type Square struct {
	Row, Col int
}

// Sq is shorthand for building a Square.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

func (s Square) InBounds() bool {
	return s.Row >= 0 && s.Row < Size && s.Col >= 0 && s.Col < Size
}

// String renders the square in algebraic form ("e4"); out of bounds squares
// render as their raw coordinates.
func (s Square) String() string {
	if !s.InBounds() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+s.Col, Size-s.Row)
}
