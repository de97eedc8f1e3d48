// Package pushbox is the sokoban rules: a level grid of walls, targets and
// boxes, a player that pushes one box at a time, and a win once every box
// sits on a target.
package pushbox

// Level cell symbols, shared by level definitions and the renderer.
const (
	SymbolWall           = '#'
	SymbolFloor          = ' '
	SymbolPlayer         = '@'
	SymbolPlayerOnTarget = '+'
	SymbolBox            = '$'
	SymbolBoxOnTarget    = '*'
	SymbolTarget         = '.'
)

// DefaultLevel is the built-in puzzle.
var DefaultLevel = []string{
	"########",
	"#      #",
	"# $ $  #",
	"# $@$  #",
	"#  .   #",
	"# ...  #",
	"#      #",
	"########",
}

// Pos is a grid coordinate, x growing right and y growing down.
type Pos struct {
	X, Y int
}

// Game holds the mutable puzzle state. Create one with NewGame; Reset
// re-parses the original level.
type Game struct {
	level   []string
	walls   map[Pos]bool
	targets map[Pos]bool
	boxes   map[Pos]bool
	player  Pos
	moves   int
	width   int
	height  int
}

func NewGame(level []string) *Game {
	g := &Game{level: level}
	g.parse()
	return g
}

func (g *Game) parse() {
	g.walls = make(map[Pos]bool)
	g.targets = make(map[Pos]bool)
	g.boxes = make(map[Pos]bool)
	g.moves = 0
	g.width = 0
	g.height = len(g.level)
	for y, row := range g.level {
		if len(row) > g.width {
			g.width = len(row)
		}
		for x, char := range row {
			pos := Pos{X: x, Y: y}
			switch char {
			case SymbolWall:
				g.walls[pos] = true
			case SymbolTarget:
				g.targets[pos] = true
			case SymbolBox:
				g.boxes[pos] = true
			case SymbolBoxOnTarget:
				g.boxes[pos] = true
				g.targets[pos] = true
			case SymbolPlayer:
				g.player = pos
			case SymbolPlayerOnTarget:
				g.player = pos
				g.targets[pos] = true
			}
		}
	}
}

// Move tries to step the player by (dx, dy), pushing a single box along when
// one is in the way. It reports whether anything moved; blocked steps do not
// count as moves.
func (g *Game) Move(dx, dy int) bool {
	next := Pos{X: g.player.X + dx, Y: g.player.Y + dy}
	if g.walls[next] {
		return false
	}
	if g.boxes[next] {
		pushed := Pos{X: next.X + dx, Y: next.Y + dy}
		if g.walls[pushed] || g.boxes[pushed] {
			return false
		}
		delete(g.boxes, next)
		g.boxes[pushed] = true
	}
	g.player = next
	g.moves++
	return true
}

// Won reports whether every box is on a target.
func (g *Game) Won() bool {
	if len(g.boxes) != len(g.targets) {
		return false
	}
	for pos := range g.boxes {
		if !g.targets[pos] {
			return false
		}
	}
	return true
}

// Reset re-parses the level, dropping all progress.
func (g *Game) Reset() {
	g.parse()
}

// Moves returns the number of successful steps so far.
func (g *Game) Moves() int {
	return g.moves
}

// Size returns the level dimensions in cells.
func (g *Game) Size() (width, height int) {
	return g.width, g.height
}

// Player returns the player position.
func (g *Game) Player() Pos {
	return g.player
}

// Rows renders the current state back into symbol rows for display.
func (g *Game) Rows() []string {
	rows := make([]string, 0, g.height)
	for y := 0; y < g.height; y++ {
		row := make([]byte, g.width)
		for x := 0; x < g.width; x++ {
			pos := Pos{X: x, Y: y}
			switch {
			case g.walls[pos]:
				row[x] = SymbolWall
			case pos == g.player && g.targets[pos]:
				row[x] = SymbolPlayerOnTarget
			case pos == g.player:
				row[x] = SymbolPlayer
			case g.boxes[pos] && g.targets[pos]:
				row[x] = SymbolBoxOnTarget
			case g.boxes[pos]:
				row[x] = SymbolBox
			case g.targets[pos]:
				row[x] = SymbolTarget
			default:
				row[x] = SymbolFloor
			}
		}
		rows = append(rows, string(row))
	}
	return rows
}
