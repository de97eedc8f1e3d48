package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bay34/pushbox/pkg/netgame"
	"github.com/bay34/pushbox/pkg/util"
)

func main() {
	logPath := flag.String("log", "./server.log", "path to log file")
	tcpAddr := flag.String("tcp", ":1998", "address for game clients")
	sshAddr := flag.String("ssh", ":2222", "address for ssh sessions (empty to disable)")
	hostKey := flag.String("hostkey", "./hostkey.pem", "path to the ssh host key")
	clientBin := flag.String("client", "./chess", "path to the chess client binary served over ssh")
	flag.Parse()
	util.InitLog(*logPath, "SERVER: ")
	log.Println("Server started")

	s := netgame.NewServer(*tcpAddr, *clientBin)
	go s.CleanIdleMatches()

	if *sshAddr != "" {
		go func() {
			if err := s.ListenAndServeSSH(*sshAddr, *hostKey); err != nil {
				log.Fatalf("ssh server: %v", err)
			}
		}()
	}

	go func() {
		if err := s.ListenAndServe(*tcpAddr); err != nil {
			log.Fatalf("tcp server: %v", err)
		}
	}()

	// Run until terminated.
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc
	log.Println("Server stopped")
}
