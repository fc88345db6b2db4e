package cliapp

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/corvid-chess/corvid/internal/cliflag"
)

// runCountPositions implements "count-positions --depth N --fen F": a
// perft count of the position to the given depth, with a progress bar
// over the root moves since perft's outer ply is the only one whose
// count is known up front.
func runCountPositions(args []string) int {
	flags := cliflag.NewCommon("count-positions")
	if err := flags.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	b, err := flags.Board()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if flags.Depth < 1 {
		depth := flags.Depth
		if depth < 0 {
			depth = 0
		}
		fmt.Printf("nodes: %d\n", b.Perft(depth))
		return 0
	}

	divide := b.Divide(flags.Depth)

	bar := progressbar.Default(int64(len(divide)), "count-positions")
	total := 0
	for uci, count := range divide {
		total += count
		fmt.Printf("%s: %d\n", uci, count)
		bar.Add(1)
	}

	fmt.Printf("\nnodes: %d\n", total)
	return 0
}
