package cliapp

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/corvid-chess/corvid/internal/cliflag"
	"github.com/corvid-chess/corvid/internal/game"
	"github.com/corvid-chess/corvid/internal/move"
	"github.com/corvid-chess/corvid/internal/piece"
	"github.com/corvid-chess/corvid/internal/recorder"
	"github.com/corvid-chess/corvid/internal/search"
	"github.com/corvid-chess/corvid/internal/tui"
)

// runPVP implements "pvp --depth N --fen F": a human plays White
// against the engine over a termui board, entering moves in UCI long
// algebraic notation on stdin.
func runPVP(args []string) int {
	flags := cliflag.NewCommon("pvp")
	if err := flags.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	b, err := flags.Board()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	screen, err := tui.Open()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer screen.Close()

	rec := recorder.New("human", "corvid", flags.FEN)
	e := search.NewEngine(64)
	stdin := bufio.NewScanner(os.Stdin)

	for {
		moves := b.GenerateMoves()
		outcome := game.Detect(b, moves)
		if outcome != game.InProgress {
			screen.Draw(b, outcome.String())
			return finishRecording(rec, outcome, b.SideToMove, "corvid-pvp.pgn")
		}

		var m move.Move
		var san string

		if b.SideToMove == piece.White {
			screen.Draw(b, "your move (uci notation), then press Enter")
			if !stdin.Scan() {
				return 0
			}

			uci := strings.TrimSpace(stdin.Text())
			found := false
			for _, candidate := range moves {
				if candidate.String() == uci {
					m, found = candidate, true
					break
				}
			}
			if !found {
				screen.Draw(b, fmt.Sprintf("illegal move %q", uci))
				continue
			}
			san = recorder.SAN(b, m)
		} else {
			screen.Draw(b, "corvid is thinking...")
			pv, _, err := e.Search(b, search.Limits{Depth: flags.Depth})
			if err != nil {
				screen.Draw(b, err.Error())
				return 1
			}
			m = pv.First()
			san = recorder.SAN(b, m)
		}

		b.MakeMove(m)
		rec.Move(san)
		screen.Draw(b, san)
	}
}
