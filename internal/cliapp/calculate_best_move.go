package cliapp

import (
	"fmt"
	"os"

	"github.com/corvid-chess/corvid/internal/cliflag"
	"github.com/corvid-chess/corvid/internal/search"
)

// runCalculateBestMove implements "calculate-best-move --depth N --fen F":
// searches the position to the given depth and prints the best move
// alongside the search stats behind it, the CLI echo of the original's
// benchmark_alpha_beta command.
func runCalculateBestMove(args []string) int {
	flags := cliflag.NewCommon("calculate-best-move")
	if err := flags.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	b, err := flags.Board()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	e := search.NewEngine(64)
	pv, score, err := e.Search(b, search.Limits{Depth: flags.Depth})
	if err != nil {
		fmt.Fprintln(os.Stderr, "calculate-best-move:", err)
		return 1
	}

	fmt.Printf("bestmove %s\nscore %s\npv %s\n", pv.First(), score, pv)
	fmt.Println(e.LastReport())
	return 0
}
