// Package netgame is the remote-play layer: a tcp match server that owns the
// authoritative game, a tview client that mirrors it, and the newline-delimited
// JSON protocol between them.
package netgame

import (
	"encoding/json"
	"log"

	"github.com/bay34/pushbox/pkg/chess"
)

type MessageType int

const (
	TypeMessageTransport MessageType = iota
	TypeMessageConnect
	TypeMessageMove
	TypeMessageGame
	TypeMessageLeave
)

func (m MessageType) String() string {
	switch m {
	case TypeMessageTransport:
		return "TypeMessageTransport"
	case TypeMessageConnect:
		return "TypeMessageConnect"
	case TypeMessageMove:
		return "TypeMessageMove"
	case TypeMessageGame:
		return "TypeMessageGame"
	case TypeMessageLeave:
		return "TypeMessageLeave"
	default:
		return "Unknown MessageType"
	}
}

type MessageInterface interface {
	Type() MessageType
}

// Encode marshals a message; the payloads are plain structs, so a failure is
// a programming error.
func Encode(m interface{}) json.RawMessage {
	data, err := json.Marshal(m)
	if err != nil {
		log.Panic(err)
	}
	return data
}

// Decode unmarshals into v, reporting whether the payload was well formed.
func Decode(data []byte, v interface{}) bool {
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Failed to decode message: %v", err)
		return false
	}
	return true
}

// MessageTransport is the envelope every message travels in. PlayerId is
// stamped by the server-side read pump so the match knows who is talking.
type MessageTransport struct {
	MsgType  MessageType
	Data     json.RawMessage
	PlayerId int
}

func (m MessageTransport) Type() MessageType {
	return TypeMessageTransport
}

// Snapshot is the full game state as it travels over the wire: the raw board
// grid plus the flags a client needs to redraw. No notation formats.
type Snapshot struct {
	Board   chess.Board
	Turn    chess.Color
	InCheck bool
	Over    bool
	Winner  chess.Color
}

// TakeSnapshot captures the current state of g.
func TakeSnapshot(g *chess.Game) Snapshot {
	snap := Snapshot{
		Turn:    g.Turn(),
		InCheck: g.InCheck(),
		Over:    g.Over(),
	}
	snap.Winner, _ = g.Winner()
	for row := 0; row < chess.Size; row++ {
		for col := 0; col < chess.Size; col++ {
			sq := chess.Sq(row, col)
			snap.Board.Place(sq, g.PieceAt(sq))
		}
	}
	return snap
}

// Game rebuilds a mirror game from the snapshot.
func (s Snapshot) Game() *chess.Game {
	board := s.Board
	return chess.NewGameFromBoard(&board, s.Turn)
}

// MessageConnect is the server's welcome: the seat you got, the match you
// joined, and the state to draw.
type MessageConnect struct {
	Color PlayerColor
	Match string
	State Snapshot
}

func (m MessageConnect) Type() MessageType {
	return TypeMessageConnect
}

// MessageMove is a client asking to play From-To with the piece it has
// selected. The server is the judge; clients only pre-filter.
type MessageMove struct {
	From chess.Square
	To   chess.Square
}

func (m MessageMove) Type() MessageType {
	return TypeMessageMove
}

// MessageGame is the broadcast state update, with a human-readable note
// ("White played e2e4", "Black has left").
type MessageGame struct {
	State Snapshot
	Note  string
}

func (m MessageGame) Type() MessageType {
	return TypeMessageGame
}

// MessageLeave is synthesized by the read pump when a connection drops.
type MessageLeave struct{}

func (m MessageLeave) Type() MessageType {
	return TypeMessageLeave
}
