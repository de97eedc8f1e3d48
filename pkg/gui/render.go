package gui

import (
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/bay34/pushbox/pkg/chess"
)

const (
	leftMargin = 4
	topMargin  = 3
	// Each board square is two terminal cells wide so the board reads square.
	squareWidth = 2
	// Column where the squares start, after the rank indicator.
	boardLeft = leftMargin + 2
)

// DefStyle is the default style for tcell rendering.
var DefStyle = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)

// drawText places text at the specified coordinates with the provided style.
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// drawRune places a rune at the specified coordinates with the provided style.
func drawRune(s tcell.Screen, x, y int, style tcell.Style, r rune) {
	s.SetContent(x, y, r, nil, style)
}

// clearLine blanks a line so stale labels don't linger between frames.
func clearLine(s tcell.Screen, y int) {
	width, _ := s.Size()
	for x := 0; x < width; x++ {
		s.SetContent(x, y, ' ', nil, DefStyle)
	}
}

// stylePiece applies the theme's piece color on top of the square background.
func stylePiece(p chess.Piece, sqBg tcell.Color, t Theme) tcell.Style {
	style := tcell.StyleDefault.Background(sqBg)
	if p.Color == chess.ColorWhite {
		return style.Foreground(t.White)
	}
	return style.Foreground(t.Black)
}

// squareBg picks the background for sq: check highlight on the threatened
// king, selection green, legal-destination yellow, then the checkerboard.
func squareBg(g *chess.Game, sq chess.Square, t Theme) tcell.Color {
	p := g.PieceAt(sq)
	if g.InCheck() && p.Type == chess.PieceKing && p.Color == g.Turn() {
		return t.SquareCheck
	}
	if sel, ok := g.Selected(); ok && sel == sq {
		return t.SquareSelected
	}
	for _, mv := range g.LegalMoves() {
		if mv == sq {
			return t.SquareValid
		}
	}
	if (sq.Row+sq.Col)%2 == 0 {
		return t.SquareLight
	}
	return t.SquareDark
}

// SquareAt maps a terminal click position to the board square under it.
func SquareAt(x, y int) (chess.Square, bool) {
	row := y - topMargin
	col := (x - boardLeft) / squareWidth
	if x < boardLeft || row < 0 || row >= chess.Size || col < 0 || col >= chess.Size {
		return chess.Square{}, false
	}
	return chess.Sq(row, col), true
}

// drawSquare draws one board square and its piece, two cells wide.
func drawSquare(s tcell.Screen, x, y int, p chess.Piece, sqBg tcell.Color, t Theme) {
	bg := tcell.StyleDefault.Background(sqBg)
	if p.IsEmpty() {
		s.SetContent(x, y, ' ', nil, bg)
		s.SetContent(x+1, y, ' ', nil, bg)
		return
	}
	sym, _ := utf8.DecodeRuneInString(p.Symbol())
	s.SetContent(x, y, sym, nil, stylePiece(p, sqBg, t))
	s.SetContent(x+1, y, ' ', nil, bg)
}

// drawTurnLabel displays whose move it is, with a check warning.
func drawTurnLabel(s tcell.Screen, g *chess.Game, t Theme) {
	clearLine(s, topMargin-2)
	label := fmt.Sprintf("%s's Turn", g.Turn())
	if g.InCheck() {
		label += " - CHECK!"
	}
	drawText(s, boardLeft, topMargin-2, tcell.StyleDefault.Foreground(t.Label), label)
}

// drawGameOver displays the result line under the board once the game ends.
func drawGameOver(s tcell.Screen, g *chess.Game, t Theme) {
	y := topMargin + chess.Size + 2
	clearLine(s, y)
	clearLine(s, y+1)
	if !g.Over() {
		return
	}
	var result string
	if winner, ok := g.Winner(); ok {
		result = fmt.Sprintf("Checkmate! %s wins!", winner)
	} else {
		result = "Stalemate! It's a draw!"
	}
	style := tcell.StyleDefault.Background(t.Overlay).Foreground(tcell.ColorBlack)
	drawText(s, boardLeft, y, style, " "+result+" ")
	drawText(s, boardLeft, y+1, tcell.StyleDefault.Foreground(t.Hint), "Press R to play again")
}

// drawControlsHint displays the key bindings below the result area.
func drawControlsHint(s tcell.Screen, t Theme) {
	y := topMargin + chess.Size + 4
	drawText(s, boardLeft, y, tcell.StyleDefault.Foreground(t.Hint),
		"Click: Select/Move | R: Reset | Q: Quit")
}

// RenderChess draws the whole chess screen.
func RenderChess(s tcell.Screen, g *chess.Game, t Theme) {
	drawTurnLabel(s, g, t)
	for row := 0; row < chess.Size; row++ {
		y := topMargin + row
		// Rank indicator on the left.
		rank := rune('0' + chess.Size - row)
		drawRune(s, leftMargin, y, tcell.StyleDefault.Foreground(t.Rank), rank)
		for col := 0; col < chess.Size; col++ {
			sq := chess.Sq(row, col)
			drawSquare(s, boardLeft+col*squareWidth, y, g.PieceAt(sq), squareBg(g, sq, t), t)
		}
	}
	drawText(s, boardLeft, topMargin+chess.Size,
		tcell.StyleDefault.Foreground(t.File), "a b c d e f g h")
	drawGameOver(s, g, t)
	drawControlsHint(s, t)
	s.Show()
}
