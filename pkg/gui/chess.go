package gui

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/bay34/pushbox/pkg/chess"
)

// RunChess owns the screen for a local two-player game: clicks drive the
// engine's selection/move dispatch, R resets, Q or Escape quits.
func RunChess(g *chess.Game, t Theme) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()
	s.SetStyle(DefStyle)
	s.EnableMouse()
	s.Clear()

	var pressed bool
	for {
		RenderChess(s, g, t)
		switch ev := s.PollEvent().(type) {
		case *tcell.EventResize:
			s.Clear()
			s.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' || ev.Rune() == 'Q':
				return nil
			case ev.Rune() == 'r' || ev.Rune() == 'R':
				log.Println("game reset")
				g.Reset()
				s.Clear()
			}
		case *tcell.EventMouse:
			// Act on the press transition only, not on drag or release.
			if ev.Buttons()&tcell.Button1 == 0 {
				pressed = false
				continue
			}
			if pressed {
				continue
			}
			pressed = true
			if sq, ok := SquareAt(ev.Position()); ok {
				g.Click(sq)
				if g.Over() {
					winner, _ := g.Winner()
					log.Printf("game over, winner: %s", winner)
				}
			}
		}
	}
}
