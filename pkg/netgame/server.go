package netgame

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/creack/pty"
	petname "github.com/dustinkirkland/golang-petname"
	"github.com/fatih/color"
	"github.com/gliderlabs/ssh"
	gossh "golang.org/x/crypto/ssh"
)

const (
	ServerIdleTimeout = 5 * time.Minute
	MessageQueueSize  = 20
)

// Server pairs incoming tcp connections into matches and optionally fronts
// them with an ssh endpoint that runs the client binary on a pty.
type Server struct {
	mu      sync.Mutex
	matches map[string]*Match

	// tcpAddr is what ssh-spawned clients are told to connect back to.
	tcpAddr   string
	clientBin string
}

func NewServer(tcpAddr, clientBin string) *Server {
	return &Server{
		matches:   make(map[string]*Match),
		tcpAddr:   tcpAddr,
		clientBin: clientBin,
	}
}

// HandleConn seats a connection: the first match still missing a player gets
// it, otherwise a fresh match with a generated name is created.
func (s *Server) HandleConn(conn net.Conn) {
	s.mu.Lock()
	var m *Match
	for _, candidate := range s.matches {
		if candidate.Seats() < 2 {
			m = candidate
			break
		}
	}
	if m == nil {
		name := petname.Generate(2, "-")
		m = NewMatch(name)
		s.matches[name] = m
		log.Print(color.GreenString("created match %s", name))
	}
	s.mu.Unlock()

	if !m.AddConn(conn) {
		// Lost the race with the reaper; try again with a fresh match.
		s.HandleConn(conn)
	}
}

// CleanIdleMatches closes matches nobody has touched for ServerIdleTimeout.
// Run it in its own goroutine.
func (s *Server) CleanIdleMatches() {
	tick := time.NewTicker(time.Minute)
	defer tick.Stop()
	for range tick.C {
		s.mu.Lock()
		for name, m := range s.matches {
			if time.Since(m.IdleSince()) > ServerIdleTimeout {
				m.Close()
				delete(s.matches, name)
				log.Print(color.YellowString("reaped idle match %s", name))
			}
		}
		s.mu.Unlock()
	}
}

// ListenAndServe accepts tcp connections on addr and seats each one.
func (s *Server) ListenAndServe(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	defer listener.Close()
	log.Printf("listening for clients at %s", addr)
	for {
		conn, err := listener.Accept()
		if err != nil {
			log.Print(color.RedString("failed to accept: %v", err))
			continue
		}
		s.HandleConn(conn)
	}
}

// ListenAndServeSSH serves the game over ssh on addr: every session gets the
// client binary on a pty, pointed back at the tcp endpoint.
func (s *Server) ListenAndServeSSH(addr, hostKeyPath string) error {
	signer, err := hostKeySigner(hostKeyPath)
	if err != nil {
		return fmt.Errorf("host key: %w", err)
	}
	srv := &ssh.Server{
		Addr:        addr,
		IdleTimeout: ServerIdleTimeout,
		Handler:     s.sshHandle,
	}
	srv.AddHostKey(signer)
	log.Printf("listening for ssh sessions at %s", addr)
	return srv.ListenAndServe()
}

func (s *Server) sshHandle(sess ssh.Session) {
	ptyReq, winCh, isPty := sess.Pty()
	if !isPty {
		io.WriteString(sess, "non-interactive terminals are not supported\n")
		sess.Exit(1)
		return
	}
	log.Printf("ssh session from %s", sess.RemoteAddr())

	cmd := exec.CommandContext(sess.Context(), s.clientBin, "-connect", s.tcpAddr)
	cmd.Env = append(sess.Environ(), fmt.Sprintf("TERM=%s", ptyReq.Term))

	f, err := pty.Start(cmd)
	if err != nil {
		io.WriteString(sess, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		sess.Exit(1)
		return
	}
	defer f.Close()

	go func() {
		for win := range winCh {
			pty.Setsize(f, &pty.Winsize{
				Rows: uint16(win.Height),
				Cols: uint16(win.Width),
			})
		}
	}()
	go func() {
		io.Copy(f, sess)
	}()
	io.Copy(sess, f)
	cmd.Wait()
}

// hostKeySigner loads the PEM host key at path, generating and persisting an
// ed25519 key on first run.
func hostKeySigner(path string) (gossh.Signer, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return gossh.ParsePrivateKey(data)
	}
	if !os.IsNotExist(err) {
		return nil, err
	}

	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	block, err := gossh.MarshalPrivateKey(priv, "")
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(block), 0600); err != nil {
		return nil, err
	}
	log.Printf("generated new host key at %s", path)
	return gossh.NewSignerFromKey(priv)
}
