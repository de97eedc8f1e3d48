package gui

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
)

// Theme is used for dynamically coloring the UI.
type Theme struct {
	Name           string      `json:"name"`
	SquareLight    tcell.Color `json:"squareLight"`
	SquareDark     tcell.Color `json:"squareDark"`
	SquareSelected tcell.Color `json:"squareSelected"`
	SquareValid    tcell.Color `json:"squareValid"`
	SquareCheck    tcell.Color `json:"squareCheck"`
	White          tcell.Color `json:"white"`
	Black          tcell.Color `json:"black"`
	Label          tcell.Color `json:"label"`
	Hint           tcell.Color `json:"hint"`
	Overlay        tcell.Color `json:"overlay"`
	Rank           tcell.Color `json:"rank"`
	File           tcell.Color `json:"file"`
	Wall           tcell.Color `json:"wall"`
	Box            tcell.Color `json:"box"`
	BoxDone        tcell.Color `json:"boxDone"`
	Target         tcell.Color `json:"target"`
	Runner         tcell.Color `json:"runner"`
}

// ThemeHex is the JSON form of a Theme, with colors as hex strings so theme
// files stay readable.
type ThemeHex struct {
	Name           string `json:"name"`
	SquareLight    string `json:"squareLight"`
	SquareDark     string `json:"squareDark"`
	SquareSelected string `json:"squareSelected"`
	SquareValid    string `json:"squareValid"`
	SquareCheck    string `json:"squareCheck"`
	White          string `json:"white"`
	Black          string `json:"black"`
	Label          string `json:"label"`
	Hint           string `json:"hint"`
	Overlay        string `json:"overlay"`
	Rank           string `json:"rank"`
	File           string `json:"file"`
	Wall           string `json:"wall"`
	Box            string `json:"box"`
	BoxDone        string `json:"boxDone"`
	Target         string `json:"target"`
	Runner         string `json:"runner"`
}

// fmtHex returns a one character hex for ColorDefault so that it survives the
// round trip through a theme file instead of being read back as black.
func fmtHex(v int32) string {
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

// Hex converts a Theme to its file form.
func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		t.Name,
		fmtHex(t.SquareLight.Hex()),
		fmtHex(t.SquareDark.Hex()),
		fmtHex(t.SquareSelected.Hex()),
		fmtHex(t.SquareValid.Hex()),
		fmtHex(t.SquareCheck.Hex()),
		fmtHex(t.White.Hex()),
		fmtHex(t.Black.Hex()),
		fmtHex(t.Label.Hex()),
		fmtHex(t.Hint.Hex()),
		fmtHex(t.Overlay.Hex()),
		fmtHex(t.Rank.Hex()),
		fmtHex(t.File.Hex()),
		fmtHex(t.Wall.Hex()),
		fmtHex(t.Box.Hex()),
		fmtHex(t.BoxDone.Hex()),
		fmtHex(t.Target.Hex()),
		fmtHex(t.Runner.Hex()),
	}
}

// Theme converts a ThemeHex back to a usable Theme.
func (t ThemeHex) Theme() Theme {
	return Theme{
		t.Name,
		tcell.GetColor(t.SquareLight),
		tcell.GetColor(t.SquareDark),
		tcell.GetColor(t.SquareSelected),
		tcell.GetColor(t.SquareValid),
		tcell.GetColor(t.SquareCheck),
		tcell.GetColor(t.White),
		tcell.GetColor(t.Black),
		tcell.GetColor(t.Label),
		tcell.GetColor(t.Hint),
		tcell.GetColor(t.Overlay),
		tcell.GetColor(t.Rank),
		tcell.GetColor(t.File),
		tcell.GetColor(t.Wall),
		tcell.GetColor(t.Box),
		tcell.GetColor(t.BoxDone),
		tcell.GetColor(t.Target),
		tcell.GetColor(t.Runner),
	}
}

// LoadTheme reads a theme file (a JSON array of ThemeHex) and returns the
// theme named want.
func LoadTheme(path, want string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, err
	}
	var themes []ThemeHex
	if err := json.Unmarshal(data, &themes); err != nil {
		return Theme{}, err
	}
	return ImportThemes(want, themes)
}

// ImportThemes returns the theme named want from a slice of ThemeHex entries.
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	for _, t := range themes {
		if t.Name == want {
			return t.Theme(), nil
		}
	}
	return Theme{}, errors.New("theme: no theme found")
}

// ThemeClassic matches the original board palette: tan and brown squares,
// green selection, yellow move hints, red check.
var ThemeClassic = Theme{
	"classic",                   // Name
	tcell.NewHexColor(0xF0D9B5), // SquareLight
	tcell.NewHexColor(0xB58863), // SquareDark
	tcell.NewHexColor(0x7FFF7F), // SquareSelected
	tcell.NewHexColor(0xFFFF7F), // SquareValid
	tcell.NewHexColor(0xFF6666), // SquareCheck
	tcell.NewHexColor(0xFFFFFF), // White
	tcell.NewHexColor(0x000000), // Black
	tcell.ColorDefault,          // Label
	tcell.Color247,              // Hint
	tcell.Color252,              // Overlay
	tcell.Color247,              // Rank
	tcell.Color247,              // File
	tcell.Color137,              // Wall
	tcell.Color178,              // Box
	tcell.Color76,               // BoxDone
	tcell.Color45,               // Target
	tcell.Color203,              // Runner
}
