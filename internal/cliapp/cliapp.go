// Package cliapp implements corvid's subcommand dispatch: play, pvp,
// watch, calculate-best-move, count-positions, determine-stockfish-elo,
// and uci, each accepting --depth and --fen, grounded on the teacher's
// pkg/uci/flag-driven command schema generalized to stdlib flag.FlagSet
// per subcommand (internal/cliflag).
package cliapp

import (
	"fmt"
	"os"
)

// commands maps a subcommand name to its entry point. Each receives the
// subcommand's own argument slice (os.Args[2:]) and returns an exit
// code.
var commands = map[string]func(args []string) int{
	"play":                   runPlay,
	"pvp":                    runPVP,
	"watch":                  runWatch,
	"calculate-best-move":    runCalculateBestMove,
	"count-positions":        runCountPositions,
	"determine-stockfish-elo": runDetermineStockfishElo,
	"uci":                    runUCI,
}

// Run dispatches os.Args[1] to its subcommand and returns the process
// exit code: 0 on success, nonzero on a parse or runtime failure.
func Run(args []string) int {
	if len(args) < 1 {
		printUsage()
		return 2
	}

	cmd, found := commands[args[0]]
	if !found {
		fmt.Fprintf(os.Stderr, "corvid: unknown command %q\n", args[0])
		printUsage()
		return 2
	}

	return cmd(args[1:])
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: corvid <command> [flags]")
	fmt.Fprintln(os.Stderr, "commands: play, pvp, watch, calculate-best-move, count-positions, determine-stockfish-elo, uci")
}
