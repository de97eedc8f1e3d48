package netgame

import (
	"bufio"
	"net"
	"testing"
	"time"

	"github.com/bay34/pushbox/pkg/chess"
)

func TestSnapshotMirrorsGame(t *testing.T) {
	t.Parallel()
	g := chess.NewGame()
	g.Select(chess.Sq(6, 4))
	g.Move(chess.Sq(4, 4))

	snap := TakeSnapshot(g)
	if snap.Turn != chess.ColorBlack {
		t.Fatalf("snapshot turn = %s, want Black", snap.Turn)
	}
	mirror := snap.Game()
	if mirror.Turn() != chess.ColorBlack || mirror.Over() {
		t.Fatal("mirror game does not match the source state")
	}
	if got := mirror.PieceAt(chess.Sq(4, 4)); got.Type != chess.PiecePawn {
		t.Fatalf("mirror lost the moved pawn, square holds %s", got)
	}

	// A terminal position stays terminal through the round trip.
	b := &chess.Board{}
	b.Place(chess.Sq(0, 0), chess.Piece{Color: chess.ColorBlack, Type: chess.PieceKing})
	b.Place(chess.Sq(1, 0), chess.Piece{Color: chess.ColorBlack, Type: chess.PiecePawn})
	b.Place(chess.Sq(1, 1), chess.Piece{Color: chess.ColorBlack, Type: chess.PiecePawn})
	b.Place(chess.Sq(0, 7), chess.Piece{Color: chess.ColorWhite, Type: chess.PieceRook})
	b.Place(chess.Sq(7, 4), chess.Piece{Color: chess.ColorWhite, Type: chess.PieceKing})
	mate := TakeSnapshot(chess.NewGameFromBoard(b, chess.ColorBlack))
	if !mate.Over || mate.Winner != chess.ColorWhite {
		t.Fatalf("mate snapshot: over=%v winner=%s, want over White", mate.Over, mate.Winner)
	}
}

// testClient is the raw-socket side of a match connection.
type testClient struct {
	conn    net.Conn
	scanner *bufio.Scanner
}

func joinMatch(t *testing.T, m *Match) *testClient {
	t.Helper()
	server, client := net.Pipe()
	if !m.AddConn(server) {
		t.Fatal("AddConn refused the connection")
	}
	client.SetDeadline(time.Now().Add(5 * time.Second))
	t.Cleanup(func() { client.Close() })
	return &testClient{conn: client, scanner: bufio.NewScanner(client)}
}

func (tc *testClient) send(t *testing.T, m MessageInterface) {
	t.Helper()
	mt := MessageTransport{MsgType: m.Type(), Data: Encode(m)}
	if _, err := tc.conn.Write(append(Encode(mt), '\n')); err != nil {
		t.Fatalf("write: %v", err)
	}
}

// next reads envelopes until one of the wanted type arrives.
func (tc *testClient) next(t *testing.T, want MessageType) MessageTransport {
	t.Helper()
	for tc.scanner.Scan() {
		var mt MessageTransport
		if !Decode(tc.scanner.Bytes(), &mt) {
			continue
		}
		if mt.MsgType == want {
			return mt
		}
	}
	t.Fatalf("connection closed waiting for %s: %v", want, tc.scanner.Err())
	return MessageTransport{}
}

func (tc *testClient) nextGame(t *testing.T) MessageGame {
	t.Helper()
	var msg MessageGame
	Decode(tc.next(t, TypeMessageGame).Data, &msg)
	return msg
}

// nextGameNote drains state updates (join notes and the like) until one
// carries the wanted note.
func (tc *testClient) nextGameNote(t *testing.T, note string) MessageGame {
	t.Helper()
	for i := 0; i < 10; i++ {
		if msg := tc.nextGame(t); msg.Note == note {
			return msg
		}
	}
	t.Fatalf("no state update with note %q arrived", note)
	return MessageGame{}
}

func TestMatchSeating(t *testing.T) {
	t.Parallel()
	m := NewMatch("seating")
	defer m.Close()

	seats := []PlayerColor{White, Black, Viewer}
	for i, want := range seats {
		tc := joinMatch(t, m)
		var welcome MessageConnect
		Decode(tc.next(t, TypeMessageConnect).Data, &welcome)
		if welcome.Color != want {
			t.Fatalf("connection %d seated as %s, want %s", i, welcome.Color, want)
		}
		if welcome.Match != "seating" {
			t.Fatalf("welcome match = %q, want %q", welcome.Match, "seating")
		}
		if welcome.State.Turn != chess.ColorWhite {
			t.Fatalf("welcome state turn = %s, want White", welcome.State.Turn)
		}
	}
}

func TestMatchMoveFlow(t *testing.T) {
	t.Parallel()
	m := NewMatch("moves")
	defer m.Close()

	white := joinMatch(t, m)
	white.next(t, TypeMessageConnect)
	black := joinMatch(t, m)
	black.next(t, TypeMessageConnect)

	// Black may not move first; the server answers privately.
	black.send(t, MessageMove{From: chess.Sq(1, 4), To: chess.Sq(3, 4)})
	black.nextGameNote(t, "Not your turn")

	// An illegal white move is rejected without a state change.
	white.send(t, MessageMove{From: chess.Sq(6, 4), To: chess.Sq(3, 3)})
	msg := white.nextGameNote(t, "Invalid move")
	if msg.State.Turn != chess.ColorWhite {
		t.Fatalf("turn = %s after rejected move, want White", msg.State.Turn)
	}

	// A legal move is applied and broadcast to both sides.
	white.send(t, MessageMove{From: chess.Sq(6, 4), To: chess.Sq(4, 4)})
	for _, tc := range []*testClient{white, black} {
		update := tc.nextGameNote(t, "White played e2e4")
		if update.State.Turn != chess.ColorBlack {
			t.Fatalf("broadcast turn = %s, want Black", update.State.Turn)
		}
		if got := update.State.Board.PieceAt(chess.Sq(4, 4)); got.Type != chess.PiecePawn {
			t.Fatalf("broadcast board square e4 holds %s, want a pawn", got)
		}
	}
}
