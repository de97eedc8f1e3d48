package util

import (
	"log"
	"os"
)

// InitLog sends the standard logger to a file. The GUIs own the terminal, so
// nothing may log to stderr while a screen is active.
func InitLog(dest, prefix string) {
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	log.SetOutput(f)
	log.SetPrefix(prefix)
}
