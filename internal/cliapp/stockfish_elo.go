package cliapp

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/schollz/progressbar/v3"

	"github.com/corvid-chess/corvid/internal/cliflag"
	"github.com/corvid-chess/corvid/internal/game"
	"github.com/corvid-chess/corvid/internal/piece"
	"github.com/corvid-chess/corvid/internal/search"
	"github.com/corvid-chess/corvid/internal/stockfish"
)

// runDetermineStockfishElo implements "determine-stockfish-elo --depth N
// --fen F --stockfish PATH --games N --skill N": plays a batch of games
// between this engine and a Stockfish subprocess at the given skill
// level, tallies the score, and renders a per-game running score chart
// to corvid-elo.html.
func runDetermineStockfishElo(args []string) int {
	common := cliflag.NewCommon("determine-stockfish-elo")

	extra := flag.NewFlagSet("determine-stockfish-elo", flag.ExitOnError)
	extra.IntVar(&common.Depth, "depth", common.Depth, "search depth in plies")
	extra.StringVar(&common.FEN, "fen", common.FEN, "FEN of the position to use")
	stockfishPath := extra.String("stockfish", "stockfish", "path to the Stockfish binary")
	games := extra.Int("games", 10, "number of calibration games to play")
	skill := extra.Int("skill", 10, "Stockfish Skill Level (0-20)")
	movetimeMS := extra.Int("movetime", 100, "Stockfish movetime per move in milliseconds")

	if err := extra.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	sf, err := stockfish.Start(*stockfishPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer sf.Close()

	if err := sf.SetSkillLevel(*skill); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	bar := progressbar.Default(int64(*games), "calibration games")
	runningScore := make([]opts.LineData, 0, *games)

	var wins, losses, draws int

	for i := 0; i < *games; i++ {
		result, err := playCalibrationGame(common, sf, *movetimeMS)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		switch result {
		case 1:
			wins++
		case -1:
			losses++
		default:
			draws++
		}
		runningScore = append(runningScore, opts.LineData{Value: wins - losses})

		bar.Add(1)
	}

	fmt.Printf("\nresult: +%d -%d =%d against Stockfish skill %d\n", wins, losses, draws, *skill)

	return renderEloChart(runningScore)
}

// playCalibrationGame plays one game of this engine (White) against the
// Stockfish subprocess (Black) from the position named by common's
// --fen flag, returning 1 for a corvid win, -1 for a loss, 0 for a draw.
func playCalibrationGame(common *cliflag.Common, sf *stockfish.Process, movetimeMS int) (int, error) {
	b, err := common.Board()
	if err != nil {
		return 0, err
	}

	e := search.NewEngine(32)

	for {
		moves := b.GenerateMoves()
		outcome := game.Detect(b, moves)
		if outcome != game.InProgress {
			return scoreOf(outcome, b.SideToMove), nil
		}

		var uci string
		if b.SideToMove == piece.White {
			pv, _, searchErr := e.Search(b, search.Limits{Depth: common.Depth})
			if searchErr != nil {
				return 0, searchErr
			}
			uci = pv.First().String()
		} else {
			uci, err = sf.BestMove(b.FEN(), movetimeMS)
			if err != nil {
				return 0, err
			}
		}

		found := false
		for _, m := range moves {
			if m.String() == uci {
				b.MakeMove(m)
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("calibration game: move %q not legal", uci)
		}
	}
}

func scoreOf(outcome game.Outcome, toMove piece.Color) int {
	if outcome == game.Checkmate {
		// the side to move is the side that has been mated; corvid
		// always plays White here.
		if toMove == piece.White {
			return -1
		}
		return 1
	}
	return 0
}

func renderEloChart(score []opts.LineData) int {
	line := charts.NewLine()
	line.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title:    "corvid vs Stockfish calibration",
		Subtitle: "running net score (wins - losses)",
	}))

	xAxis := make([]string, len(score))
	for i := range xAxis {
		xAxis[i] = fmt.Sprintf("game %d", i+1)
	}

	line.SetXAxis(xAxis).AddSeries("net score", score)

	f, err := os.Create("corvid-elo.html")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer f.Close()

	if err := line.Render(f); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Println("wrote corvid-elo.html")
	return 0
}
