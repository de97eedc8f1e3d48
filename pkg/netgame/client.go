package netgame

import (
	"bufio"
	"fmt"
	"log"
	"net"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/bay34/pushbox/pkg/chess"
	"github.com/bay34/pushbox/pkg/gui"
)

// Client is the tview front end for remote play. It keeps a mirror game
// rebuilt from server snapshots: selection and move hints are computed
// locally with the same engine, but every move is judged by the server.
type Client struct {
	App    *tview.Application
	Board  *tview.Table
	Status *tview.TextView
	Note   *tview.TextView
	Layout *tview.Grid

	Conn net.Conn
	Out  chan MessageInterface

	theme  gui.Theme
	mirror *chess.Game
	color  PlayerColor
	match  string
}

func NewClient(theme gui.Theme) *Client {
	app := tview.NewApplication()
	board := tview.NewTable()
	status := tview.NewTextView().SetText("Connecting...")
	note := tview.NewTextView()

	layout := tview.NewGrid().
		SetRows(-1, 1, chess.Size+1, 1, -1).
		SetColumns(-1, (chess.Size+1)*2, -1).
		AddItem(status, 1, 1, 1, 1, 0, 0, false).
		AddItem(board, 2, 1, 1, 1, 0, 0, true).
		AddItem(note, 3, 1, 1, 1, 0, 0, false)

	c := &Client{
		App:    app,
		Board:  board,
		Status: status,
		Note:   note,
		Layout: layout,
		Out:    make(chan MessageInterface, ConnQueueSize),
		theme:  theme,
		mirror: chess.NewGame(),
		color:  Unknown,
	}
	c.initTable()
	return c
}

func (c *Client) initTable() {
	c.Board.SetSelectable(true, true)
	c.Board.Select(0, 1).SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEscape {
			c.Disconnect()
		}
	}).SetSelectedFunc(c.onSelect)
	c.renderTable()
}

// onSelect handles a click (or enter) on a table cell.
func (c *Client) onSelect(row, col int) {
	sq, ok := c.posToSquare(row, col)
	if !ok {
		return
	}
	if c.mirror.Over() || c.color.Side() != c.mirror.Turn() {
		return
	}
	if sel, has := c.mirror.Selected(); has {
		for _, mv := range c.mirror.LegalMoves() {
			if mv == sq {
				c.Out <- MessageMove{From: sel, To: sq}
				// Drop the selection and wait for the server's verdict.
				c.mirror.Deselect()
				c.renderTable()
				return
			}
		}
	}
	c.mirror.Click(sq)
	c.renderTable()
}

// posToSquare maps a table cell to a board square. Column 0 holds the rank
// labels and the last row the file labels; black players see the board
// flipped so their pieces start at the bottom.
func (c *Client) posToSquare(row, col int) (chess.Square, bool) {
	col = col - 1
	if row < 0 || row >= chess.Size || col < 0 || col >= chess.Size {
		return chess.Square{}, false
	}
	if c.color == Black {
		row = chess.Size - row - 1
	}
	return chess.Sq(row, col), true
}

func (c *Client) squareBg(sq chess.Square) tcell.Color {
	p := c.mirror.PieceAt(sq)
	if c.mirror.InCheck() && p.Type == chess.PieceKing && p.Color == c.mirror.Turn() {
		return c.theme.SquareCheck
	}
	if sel, ok := c.mirror.Selected(); ok && sel == sq {
		return c.theme.SquareSelected
	}
	for _, mv := range c.mirror.LegalMoves() {
		if mv == sq {
			return c.theme.SquareValid
		}
	}
	if (sq.Row+sq.Col)%2 == 0 {
		return c.theme.SquareLight
	}
	return c.theme.SquareDark
}

// renderTable redraws the board table from the mirror game.
func (c *Client) renderTable() {
	for row := 0; row < chess.Size; row++ {
		boardRow := row
		if c.color == Black {
			boardRow = chess.Size - row - 1
		}
		rank := tview.NewTableCell(fmt.Sprintf("%d", chess.Size-boardRow)).
			SetAlign(tview.AlignCenter).
			SetSelectable(false)
		c.Board.SetCell(row, 0, rank)

		for col := 0; col < chess.Size; col++ {
			sq := chess.Sq(boardRow, col)
			p := c.mirror.PieceAt(sq)
			fg := c.theme.Black
			if p.Color == chess.ColorWhite {
				fg = c.theme.White
			}
			cell := tview.NewTableCell(" " + p.Symbol()).
				SetAlign(tview.AlignCenter).
				SetTextColor(fg).
				SetBackgroundColor(c.squareBg(sq))
			c.Board.SetCell(row, col+1, cell)
		}
	}
	for col := 0; col < chess.Size; col++ {
		file := tview.NewTableCell(fmt.Sprintf(" %c", 'a'+col)).
			SetAlign(tview.AlignCenter).
			SetSelectable(false)
		c.Board.SetCell(chess.Size, col+1, file)
	}
	c.Board.GetCell(chess.Size, 0).SetSelectable(false)
	c.renderStatus()
}

func (c *Client) renderStatus() {
	if c.mirror.Over() {
		if winner, ok := c.mirror.Winner(); ok {
			c.Status.SetText(fmt.Sprintf("Checkmate! %s wins!", winner))
		} else {
			c.Status.SetText("Stalemate! It's a draw!")
		}
		return
	}
	text := fmt.Sprintf("[%s] You are %s | %s to move", c.match, c.color, c.mirror.Turn())
	if c.mirror.InCheck() {
		text += " - CHECK!"
	}
	c.Status.SetText(text)
}

// Connect dials the match server and starts the read and write pumps.
func (c *Client) Connect(addr string) error {
	log.Printf("connecting to %s", addr)
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return err
	}
	c.Conn = conn
	go c.HandleRead()
	go c.HandleWrite()
	return nil
}

// Run hands the terminal to tview until the session ends.
func (c *Client) Run() error {
	return c.App.SetRoot(c.Layout, true).EnableMouse(true).Run()
}

func (c *Client) HandleWrite() {
	for message := range c.Out {
		mt := MessageTransport{MsgType: message.Type(), Data: Encode(message)}
		b := append(Encode(mt), '\n')
		if _, err := c.Conn.Write(b); err != nil {
			log.Printf("Failed to write: %v", err)
			return
		}
	}
}

func (c *Client) HandleRead() {
	scanner := bufio.NewScanner(c.Conn)
	for scanner.Scan() {
		var mt MessageTransport
		if !Decode(scanner.Bytes(), &mt) {
			continue
		}
		switch mt.MsgType {
		case TypeMessageConnect:
			var msg MessageConnect
			if !Decode(mt.Data, &msg) {
				continue
			}
			c.App.QueueUpdateDraw(func() {
				c.color = msg.Color
				c.match = msg.Match
				c.mirror = msg.State.Game()
				c.renderTable()
			})
		case TypeMessageGame:
			var msg MessageGame
			if !Decode(mt.Data, &msg) {
				continue
			}
			c.App.QueueUpdateDraw(func() {
				c.mirror = msg.State.Game()
				c.Note.SetText(msg.Note)
				c.renderTable()
			})
		default:
			log.Printf("Received unknown message %s", mt.MsgType)
		}
	}
	c.App.QueueUpdateDraw(func() {
		c.Note.SetText("Disconnected from server")
	})
}

// Disconnect tears the session down and stops the UI.
func (c *Client) Disconnect() {
	if c.Conn != nil {
		c.Conn.Close()
	}
	c.App.Stop()
}
