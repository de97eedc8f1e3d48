package netgame

import (
	"fmt"
	"log"
	"net"
	"sync"
	"time"

	"github.com/bay34/pushbox/pkg/chess"
)

// Match is one game room. The run loop is the only goroutine that touches the
// Game, so the engine keeps its single-caller model; connections talk to the
// loop through channels.
type Match struct {
	Name string

	game    *chess.Game
	players []*Player
	nextId  int

	in    chan MessageTransport
	joins chan net.Conn
	done  chan struct{}

	mu         sync.Mutex
	lastActive time.Time
	closed     bool
}

func NewMatch(name string) *Match {
	m := &Match{
		Name:       name,
		game:       chess.NewGame(),
		in:         make(chan MessageTransport, MessageQueueSize),
		joins:      make(chan net.Conn, 2),
		done:       make(chan struct{}),
		lastActive: time.Now(),
	}
	go m.run()
	return m
}

// AddConn hands a new connection to the run loop. It reports false once the
// match is closed.
func (m *Match) AddConn(conn net.Conn) bool {
	m.mu.Lock()
	closed := m.closed
	m.mu.Unlock()
	if closed {
		return false
	}
	select {
	case m.joins <- conn:
		return true
	case <-m.done:
		return false
	}
}

// Seats reports how many of the two playing seats are taken.
func (m *Match) Seats() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, p := range m.players {
		if p.Color == White || p.Color == Black {
			n++
		}
	}
	return n
}

// IdleSince returns the time of the last join, move or leave.
func (m *Match) IdleSince() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastActive
}

// Close disconnects everyone and stops the run loop.
func (m *Match) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	m.mu.Unlock()
	close(m.done)
}

func (m *Match) touch() {
	m.mu.Lock()
	m.lastActive = time.Now()
	m.mu.Unlock()
}

func (m *Match) run() {
	for {
		select {
		case <-m.done:
			m.mu.Lock()
			players := m.players
			m.players = nil
			m.mu.Unlock()
			for _, p := range players {
				p.Disconnect()
			}
			return
		case conn := <-m.joins:
			m.addPlayer(conn)
		case mt := <-m.in:
			m.handle(mt)
		}
	}
}

// addPlayer seats the connection: White, then Black, then viewers. The
// welcome message carries the seat and the current state.
func (m *Match) addPlayer(conn net.Conn) {
	p := NewPlayer(conn)
	p.Id = m.nextId
	m.nextId++
	switch m.Seats() {
	case 0:
		p.Color = White
	case 1:
		p.Color = Black
	default:
		p.Color = Viewer
	}
	p.Name = p.Color.String()

	m.mu.Lock()
	m.players = append(m.players, p)
	m.mu.Unlock()
	m.touch()

	go p.HandleWrite()
	go p.HandleRead(m.in)
	p.Out <- MessageConnect{
		Color: p.Color,
		Match: m.Name,
		State: TakeSnapshot(m.game),
	}
	log.Printf("match %s: added player %d as %s", m.Name, p.Id, p.Color)
	m.broadcast(MessageGame{
		State: TakeSnapshot(m.game),
		Note:  fmt.Sprintf("%s has joined", p.Color),
	})
}

func (m *Match) handle(mt MessageTransport) {
	switch mt.MsgType {
	case TypeMessageMove:
		var msg MessageMove
		if !Decode(mt.Data, &msg) {
			return
		}
		m.applyMove(mt.PlayerId, msg)
	case TypeMessageLeave:
		m.removePlayer(mt.PlayerId)
	default:
		log.Printf("match %s: unexpected message %s from player %d", m.Name, mt.MsgType, mt.PlayerId)
	}
}

// applyMove validates a move request against the authoritative game and
// broadcasts the new state when it sticks. Bad requests get a private note
// instead of a state change.
func (m *Match) applyMove(playerId int, msg MessageMove) {
	p := m.playerById(playerId)
	if p == nil {
		return
	}
	if p.Color.Side() != m.game.Turn() || m.game.Over() {
		p.Out <- MessageGame{State: TakeSnapshot(m.game), Note: "Not your turn"}
		return
	}
	mover := m.game.Turn()
	if !m.game.Select(msg.From) || !m.game.Move(msg.To) {
		log.Printf("match %s: rejected move %s -> %s from %s", m.Name, msg.From, msg.To, p.Color)
		p.Out <- MessageGame{State: TakeSnapshot(m.game), Note: "Invalid move"}
		return
	}
	m.touch()

	note := fmt.Sprintf("%s played %s%s", mover, msg.From, msg.To)
	snap := TakeSnapshot(m.game)
	if snap.Over {
		if snap.Winner != chess.ColorNone {
			note = fmt.Sprintf("Checkmate! %s wins!", snap.Winner)
		} else {
			note = "Stalemate! It's a draw!"
		}
	}
	log.Printf("match %s: %s", m.Name, note)
	m.broadcast(MessageGame{State: snap, Note: note})
}

func (m *Match) removePlayer(playerId int) {
	p := m.playerById(playerId)
	if p == nil {
		return
	}
	m.mu.Lock()
	for i, q := range m.players {
		if q.Id == playerId {
			m.players = append(m.players[:i], m.players[i+1:]...)
			break
		}
	}
	m.mu.Unlock()
	m.touch()
	p.Disconnect()
	log.Printf("match %s: %s left", m.Name, p.Color)
	m.broadcast(MessageGame{
		State: TakeSnapshot(m.game),
		Note:  fmt.Sprintf("%s has left", p.Color),
	})
}

func (m *Match) playerById(id int) *Player {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.players {
		if p.Id == id {
			return p
		}
	}
	return nil
}

func (m *Match) broadcast(msg MessageInterface) {
	m.mu.Lock()
	players := append([]*Player(nil), m.players...)
	m.mu.Unlock()
	for _, p := range players {
		select {
		case p.Out <- msg:
		default:
			log.Printf("match %s: dropping message for slow player %d", m.Name, p.Id)
		}
	}
}
