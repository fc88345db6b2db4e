package cliapp

import (
	"fmt"
	"os"

	"github.com/corvid-chess/corvid/internal/cliflag"
	"github.com/corvid-chess/corvid/internal/game"
	"github.com/corvid-chess/corvid/internal/recorder"
	"github.com/corvid-chess/corvid/internal/search"
	"github.com/corvid-chess/corvid/internal/tui"
)

// runWatch implements "watch --depth N --fen F": the engine plays both
// sides in a termui window, advancing one ply per keypress so a human
// can follow the game at their own pace.
func runWatch(args []string) int {
	flags := cliflag.NewCommon("watch")
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

	rec := recorder.New("corvid", "corvid", flags.FEN)
	e := search.NewEngine(64)

	screen.Draw(b, "press any key to advance, q to quit")

	for {
		if screen.WaitKey() == "q" {
			return 0
		}

		moves := b.GenerateMoves()
		outcome := game.Detect(b, moves)
		if outcome != game.InProgress {
			screen.Draw(b, outcome.String())
			screen.WaitKey()
			return finishRecording(rec, outcome, b.SideToMove, "corvid-watch.pgn")
		}

		pv, _, err := e.Search(b, search.Limits{Depth: flags.Depth})
		if err != nil {
			screen.Draw(b, err.Error())
			screen.WaitKey()
			return 1
		}
		m := pv.First()

		san := recorder.SAN(b, m)
		b.MakeMove(m)
		rec.Move(san)
		screen.Draw(b, san)
	}
}
