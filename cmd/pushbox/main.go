package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/bay34/pushbox/pkg/gui"
	"github.com/bay34/pushbox/pkg/pushbox"
	"github.com/bay34/pushbox/pkg/util"
)

func main() {
	logPath := flag.String("log", "./log", "path to log file")
	themePath := flag.String("themes", "", "path to a JSON theme file")
	themeName := flag.String("theme", "classic", "theme name")
	flag.Parse()
	util.InitLog(*logPath, "PUSHBOX: ")

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

	if err := gui.RunPushbox(pushbox.NewGame(pushbox.DefaultLevel), theme); err != nil {
		log.Fatal(err)
	}
}
