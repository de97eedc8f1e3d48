package gui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/bay34/pushbox/pkg/pushbox"
)

// cellStyle maps a level symbol to its themed style.
func cellStyle(sym byte, t Theme) tcell.Style {
	switch sym {
	case pushbox.SymbolWall:
		return tcell.StyleDefault.Foreground(t.Wall)
	case pushbox.SymbolBox:
		return tcell.StyleDefault.Foreground(t.Box)
	case pushbox.SymbolBoxOnTarget:
		return tcell.StyleDefault.Foreground(t.BoxDone)
	case pushbox.SymbolTarget:
		return tcell.StyleDefault.Foreground(t.Target)
	case pushbox.SymbolPlayer, pushbox.SymbolPlayerOnTarget:
		return tcell.StyleDefault.Foreground(t.Runner)
	default:
		return DefStyle
	}
}

// RenderPushbox draws the whole puzzle screen.
func RenderPushbox(s tcell.Screen, g *pushbox.Game, t Theme) {
	drawText(s, leftMargin, topMargin-2, tcell.StyleDefault.Foreground(t.Label), "Push Box")
	clearLine(s, topMargin-1)
	drawText(s, leftMargin, topMargin-1, tcell.StyleDefault.Foreground(t.Hint),
		fmt.Sprintf("Moves: %d", g.Moves()))
	for y, row := range g.Rows() {
		for x := 0; x < len(row); x++ {
			drawRune(s, leftMargin+x, topMargin+y, cellStyle(row[x], t), rune(row[x]))
		}
	}
	_, height := g.Size()
	y := topMargin + height + 1
	clearLine(s, y)
	if g.Won() {
		drawText(s, leftMargin, y, tcell.StyleDefault.Foreground(t.BoxDone),
			fmt.Sprintf("Congratulations! You won in %d moves!", g.Moves()))
	}
	drawText(s, leftMargin, y+1, tcell.StyleDefault.Foreground(t.Hint),
		"WASD/Arrows: Move | R: Restart | Q: Quit")
	s.Show()
}

// RunPushbox owns the screen for a puzzle session: WASD or the arrow keys
// move the player, R restarts the level, Q or Escape quits.
func RunPushbox(g *pushbox.Game, t Theme) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()
	s.SetStyle(DefStyle)
	s.Clear()

	for {
		RenderPushbox(s, g, t)
		switch ev := s.PollEvent().(type) {
		case *tcell.EventResize:
			s.Clear()
			s.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' || ev.Rune() == 'Q':
				return nil
			case ev.Rune() == 'r' || ev.Rune() == 'R':
				g.Reset()
				s.Clear()
			case ev.Key() == tcell.KeyUp || ev.Rune() == 'w' || ev.Rune() == 'W':
				g.Move(0, -1)
			case ev.Key() == tcell.KeyDown || ev.Rune() == 's' || ev.Rune() == 'S':
				g.Move(0, 1)
			case ev.Key() == tcell.KeyLeft || ev.Rune() == 'a' || ev.Rune() == 'A':
				g.Move(-1, 0)
			case ev.Key() == tcell.KeyRight || ev.Rune() == 'd' || ev.Rune() == 'D':
				g.Move(1, 0)
			}
		}
	}
}
