package cliapp

import (
	"fmt"
	"os"

	"github.com/corvid-chess/corvid/internal/uci"
)

// runUCI implements "corvid uci": runs the UCI protocol REPL over
// stdin/stdout until the GUI sends "quit".
func runUCI(args []string) int {
	engine := uci.NewEngine(64)
	client := uci.NewClientWith(engine, os.Stdin, os.Stdout)

	if err := client.Start(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
