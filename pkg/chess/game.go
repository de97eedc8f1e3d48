package chess

// Game is the state machine the UI drives: turn order, the current selection
// and its cached legal moves, and the check/checkmate/stalemate status. All
// mutation goes through Select, Move, Click and Reset; invalid actions are
// reported as false and change nothing.
type Game struct {
	board    *Board
	turn     Color
	selected Square
	hasSel   bool
	legal    []Square
	inCheck  bool
	over     bool
	winner   Color
}

// NewGame starts a game from the standard position, white to move.
func NewGame() *Game {
	g := &Game{}
	g.Reset()
	return g
}

// NewGameFromBoard starts a game from an arbitrary position. The game takes
// ownership of the board. Check and game-over status are computed for the
// side to move, so a position that is already mate or stalemate starts
// terminal.
func NewGameFromBoard(b *Board, turn Color) *Game {
	g := &Game{board: b, turn: turn}
	g.refreshStatus()
	return g
}

// Reset discards all state and rebuilds the initial position.
func (g *Game) Reset() {
	g.board = NewBoard()
	g.turn = ColorWhite
	g.clearSelection()
	g.inCheck = false
	g.over = false
	g.winner = ColorNone
}

// PieceAt returns the piece on sq, or NoPiece if empty or out of bounds.
func (g *Game) PieceAt(sq Square) Piece {
	return g.board.PieceAt(sq)
}

// Turn returns the color to move.
func (g *Game) Turn() Color {
	return g.turn
}

// Selected returns the currently selected square, if any.
func (g *Game) Selected() (Square, bool) {
	return g.selected, g.hasSel
}

// LegalMoves returns the cached legal destinations for the current selection.
// It is empty whenever nothing is selected.
func (g *Game) LegalMoves() []Square {
	return g.legal
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return g.inCheck
}

// Over reports whether the game has ended. It only reverts via Reset.
func (g *Game) Over() bool {
	return g.over
}

// Winner returns the winning color of a finished game. A finished game with
// no winner is a stalemate draw.
func (g *Game) Winner() (Color, bool) {
	return g.winner, g.winner != ColorNone
}

// LegalMovesFrom computes the legal destinations for the piece on sq without
// touching the selection.
func (g *Game) LegalMovesFrom(sq Square) []Square {
	return g.board.LegalMoves(sq)
}

// Select picks the piece on sq for the side to move and caches its legal
// moves. It fails if the game is over, the square is empty, or the piece
// belongs to the opponent.
func (g *Game) Select(sq Square) bool {
	if g.over {
		return false
	}
	p := g.board.PieceAt(sq)
	if p.IsEmpty() || p.Color != g.turn {
		return false
	}
	g.selected = sq
	g.hasSel = true
	g.legal = g.board.LegalMoves(sq)
	return true
}

// Move plays the selected piece to to. It fails if nothing is selected or to
// is not among the cached legal moves. On success the selection is cleared,
// the turn flips, and check and game-over status are recomputed for the new
// side to move.
func (g *Game) Move(to Square) bool {
	if !g.hasSel {
		return false
	}
	if !containsSquare(g.legal, to) {
		return false
	}
	g.board.Relocate(g.selected, to)
	g.clearSelection()
	g.turn = g.turn.Opposite()
	g.refreshStatus()
	return true
}

// Click dispatches a square activation the way the UI expects: a click on a
// pending legal destination plays the move, a click on an own piece selects
// it, anything else drops the selection.
func (g *Game) Click(sq Square) {
	if g.over {
		return
	}
	if g.hasSel && containsSquare(g.legal, sq) {
		g.Move(sq)
		return
	}
	if !g.Select(sq) {
		g.clearSelection()
	}
}

// Deselect drops the current selection and its cached moves.
func (g *Game) Deselect() {
	g.clearSelection()
}

func (g *Game) clearSelection() {
	g.hasSel = false
	g.selected = Square{}
	g.legal = nil
}

// refreshStatus recomputes check for the side to move and, when that side has
// no legal move at all, ends the game: checkmate if in check (the side that
// just moved wins), stalemate otherwise.
func (g *Game) refreshStatus() {
	g.inCheck = g.board.InCheck(g.turn)
	if g.hasAnyLegalMove(g.turn) {
		return
	}
	g.over = true
	if g.inCheck {
		g.winner = g.turn.Opposite()
	} else {
		g.winner = ColorNone
	}
}

func (g *Game) hasAnyLegalMove(c Color) bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if g.board[row][col].Color != c {
				continue
			}
			if len(g.board.LegalMoves(Sq(row, col))) > 0 {
				return true
			}
		}
	}
	return false
}

func containsSquare(squares []Square, sq Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}
