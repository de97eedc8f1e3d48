package gui

import (
	"testing"

	"github.com/bay34/pushbox/pkg/chess"
)

func TestSquareAt(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		x, y int
		want chess.Square
		ok   bool
	}{
		{name: "top left square", x: boardLeft, y: topMargin, want: chess.Sq(0, 0), ok: true},
		{name: "second cell of a square", x: boardLeft + 1, y: topMargin, want: chess.Sq(0, 0), ok: true},
		{name: "bottom right square", x: boardLeft + 7*squareWidth, y: topMargin + 7, want: chess.Sq(7, 7), ok: true},
		{name: "rank indicator column", x: leftMargin, y: topMargin, ok: false},
		{name: "above the board", x: boardLeft, y: topMargin - 1, ok: false},
		{name: "below the board", x: boardLeft, y: topMargin + chess.Size, ok: false},
		{name: "right of the board", x: boardLeft + chess.Size*squareWidth, y: topMargin, ok: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := SquareAt(tt.x, tt.y)
			if ok != tt.ok {
				t.Fatalf("SquareAt(%d, %d) ok = %v, want %v", tt.x, tt.y, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("SquareAt(%d, %d) = %s, want %s", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestImportThemes(t *testing.T) {
	t.Parallel()
	themes := []ThemeHex{ThemeClassic.Hex()}
	got, err := ImportThemes("classic", themes)
	if err != nil {
		t.Fatalf("ImportThemes: %v", err)
	}
	if got.SquareLight != ThemeClassic.SquareLight || got.SquareCheck != ThemeClassic.SquareCheck {
		t.Error("imported theme lost its square colors")
	}
	if _, err := ImportThemes("missing", themes); err == nil {
		t.Error("unknown theme name did not error")
	}
}
