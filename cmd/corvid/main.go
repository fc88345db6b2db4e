package main

import (
	"os"

	"github.com/corvid-chess/corvid/internal/cliapp"
)

func main() {
	os.Exit(cliapp.Run(os.Args[1:]))
}
