package netgame

import (
	"bufio"
	"log"
	"net"

	"github.com/bay34/pushbox/pkg/chess"
)

const ConnQueueSize = 10

// PlayerColor is the seat a connection got: the first two play, the rest
// watch.
type PlayerColor int

const (
	White PlayerColor = iota
	Black
	Viewer
	Unknown
)

func (pc PlayerColor) String() string {
	switch pc {
	case White:
		return "White"
	case Black:
		return "Black"
	case Viewer:
		return "Viewer"
	default:
		return "Unknown"
	}
}

// Side maps a seat to the engine color it moves for; viewers get ColorNone.
func (pc PlayerColor) Side() chess.Color {
	switch pc {
	case White:
		return chess.ColorWhite
	case Black:
		return chess.ColorBlack
	default:
		return chess.ColorNone
	}
}

// Player is one connection in a match.
type Player struct {
	Conn  net.Conn
	Color PlayerColor
	Out   chan MessageInterface
	Id    int
	Name  string
}

func NewPlayer(conn net.Conn) *Player {
	return &Player{
		Conn:  conn,
		Color: Unknown,
		Out:   make(chan MessageInterface, ConnQueueSize),
	}
}

// HandleRead forwards incoming envelopes to the match, stamped with the
// player id. When the connection drops it synthesizes a leave message so the
// match can free the seat.
func (p *Player) HandleRead(in chan<- MessageTransport) {
	scanner := bufio.NewScanner(p.Conn)
	for scanner.Scan() {
		var mt MessageTransport
		if !Decode(scanner.Bytes(), &mt) {
			continue
		}
		mt.PlayerId = p.Id
		in <- mt
	}
	in <- MessageTransport{MsgType: TypeMessageLeave, Data: Encode(MessageLeave{}), PlayerId: p.Id}
}

// HandleWrite drains the outbound queue, wrapping each message in a transport
// envelope terminated by a newline.
func (p *Player) HandleWrite() {
	for message := range p.Out {
		mt := MessageTransport{MsgType: message.Type(), Data: Encode(message)}
		b := append(Encode(mt), '\n')
		if _, err := p.Conn.Write(b); err != nil {
			log.Printf("Failed to write to player %d: %v", p.Id, err)
		}
	}
}

// Disconnect closes the connection; the read pump then reports the leave.
func (p *Player) Disconnect() {
	close(p.Out)
	p.Conn.Close()
}
