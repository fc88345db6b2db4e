package cliapp

import (
	"fmt"
	"os"

	"github.com/corvid-chess/corvid/internal/cliflag"
	"github.com/corvid-chess/corvid/internal/game"
	"github.com/corvid-chess/corvid/internal/piece"
	"github.com/corvid-chess/corvid/internal/recorder"
	"github.com/corvid-chess/corvid/internal/search"
)

// runPlay implements "play --depth N --fen F": the engine plays both
// sides headlessly from the given position until a terminal outcome,
// printing each move and recording a PGN transcript to corvid-play.pgn.
func runPlay(args []string) int {
	flags := cliflag.NewCommon("play")
	if err := flags.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	b, err := flags.Board()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	rec := recorder.New("corvid", "corvid", flags.FEN)
	e := search.NewEngine(64)

	for {
		moves := b.GenerateMoves()
		outcome := game.Detect(b, moves)
		if outcome != game.InProgress {
			fmt.Println(outcome)
			return finishRecording(rec, outcome, b.SideToMove, "corvid-play.pgn")
		}

		pv, _, err := e.Search(b, search.Limits{Depth: flags.Depth})
		if err != nil {
			fmt.Fprintln(os.Stderr, "play:", err)
			return 1
		}
		m := pv.First()

		san := recorder.SAN(b, m)
		b.MakeMove(m)
		rec.Move(san)
		fmt.Println(san)
	}
}

// finishRecording maps a terminal game.Outcome to a PGN result tag,
// writes the transcript, and returns the process exit code. loser is
// the side to move at the terminal position (the one with no moves, or
// whose last-mover opponent is reported as winning).
func finishRecording(rec *recorder.Recorder, outcome game.Outcome, loser piece.Color, path string) int {
	result := "1/2-1/2"
	if outcome == game.Checkmate {
		if loser == piece.White {
			result = "0-1"
		} else {
			result = "1-0"
		}
	}

	if err := rec.Finish(result, path); err != nil {
		fmt.Fprintln(os.Stderr, "play: write pgn:", err)
		return 1
	}
	return 0
}
