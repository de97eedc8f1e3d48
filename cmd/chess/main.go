package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/bay34/pushbox/pkg/chess"
	"github.com/bay34/pushbox/pkg/gui"
	"github.com/bay34/pushbox/pkg/netgame"
	"github.com/bay34/pushbox/pkg/util"
)

func main() {
	logPath := flag.String("log", "./log", "path to log file")
	themePath := flag.String("themes", "", "path to a JSON theme file")
	themeName := flag.String("theme", "classic", "theme name")
	connect := flag.String("connect", "", "play remotely against host:port instead of locally")
	flag.Parse()
	util.InitLog(*logPath, "CHESS: ")

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "non-interactive terminals are not supported")
		os.Exit(1)
	}

	theme := gui.ThemeClassic
	if *themePath != "" {
		var err error
		theme, err = gui.LoadTheme(*themePath, *themeName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load theme: %v\n", err)
			os.Exit(1)
		}
	}

	if *connect != "" {
		runRemote(*connect, theme)
		return
	}

	log.Println("starting local game")
	if err := gui.RunChess(chess.NewGame(), theme); err != nil {
		log.Fatal(err)
	}
}

func runRemote(addr string, theme gui.Theme) {
	cl := netgame.NewClient(theme)
	if err := cl.Connect(addr); err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect to %s: %v\n", addr, err)
		os.Exit(1)
	}
	if err := cl.Run(); err != nil {
		log.Fatal(err)
	}
	cl.Disconnect()
}
