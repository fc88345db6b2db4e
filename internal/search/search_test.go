package search_test

import (
	"testing"
	"time"

	"github.com/corvid-chess/corvid/internal/board"
	"github.com/corvid-chess/corvid/internal/eval"
	"github.com/corvid-chess/corvid/internal/search"
)

func TestSearchFindsMateInOne(t *testing.T) {
	// black king cornered on h8, white king on g6 guarding g7; Qb7-g7
	// covers every flight square and can't be captured, mate in one.
	b, err := board.NewFromFEN("7k/1Q6/6K1/8/8/8/8/8 w - - 0 1")
	if err != nil {
		t.Fatalf("parse fen: %v", err)
	}

	e := search.NewEngine(1)
	e.Workers = 1
	pv, score, err := e.Search(b, search.Limits{Depth: 3})
	if err != nil {
		t.Fatalf("Search() returned an error: %v", err)
	}

	if pv.First() == 0 {
		t.Fatalf("Search() returned an empty principal variation")
	}
	if want := "b7g7"; pv.First().String() != want {
		t.Errorf("Search() best move = %s, want %s", pv.First(), want)
	}
	if score <= eval.WinInMaxPly {
		t.Errorf("Search() score = %s, want a mate score", score)
	}
}

func TestSearchFindsWinningMoveWithQueenUp(t *testing.T) {
	b, err := board.NewFromFEN("4k3/8/8/8/8/8/8/4KQ2 w - - 0 1")
	if err != nil {
		t.Fatalf("parse fen: %v", err)
	}

	e := search.NewEngine(1)
	e.Workers = 1
	pv, score, err := e.Search(b, search.Limits{Depth: 5})
	if err != nil {
		t.Fatalf("Search() returned an error: %v", err)
	}

	if pv.First() == 0 {
		t.Fatalf("Search() returned an empty principal variation")
	}
	if score <= eval.Draw {
		t.Errorf("Search() score = %s, want a clearly winning score for a lone extra queen", score)
	}
}

func TestSearchIsDeterministicSingleWorker(t *testing.T) {
	fen := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1"

	var scores []eval.Eval
	var moves []string

	for i := 0; i < 3; i++ {
		b, err := board.NewFromFEN(fen)
		if err != nil {
			t.Fatalf("parse fen: %v", err)
		}
		e := search.NewEngine(1)
		e.Workers = 1
		pv, score, err := e.Search(b, search.Limits{Depth: 4})
		if err != nil {
			t.Fatalf("Search() returned an error: %v", err)
		}
		scores = append(scores, score)
		moves = append(moves, pv.First().String())
	}

	for i := 1; i < len(scores); i++ {
		if scores[i] != scores[0] || moves[i] != moves[0] {
			t.Errorf("run %d = (%s, %s), want (%s, %s)", i, moves[i], scores[i], moves[0], scores[0])
		}
	}
}

func TestSearchRespectsMovetime(t *testing.T) {
	b := board.New()
	e := search.NewEngine(1)

	start := time.Now()
	pv, _, err := e.Search(b, search.Limits{Movetime: 50 * time.Millisecond})
	elapsed := time.Since(start)
	if err != nil {
		t.Fatalf("Search() returned an error: %v", err)
	}

	if pv.First() == 0 {
		t.Fatalf("Search() returned an empty principal variation")
	}
	if elapsed > 2*time.Second {
		t.Errorf("Search() took %s, want well under the node/time-check granularity bound", elapsed)
	}
}

func TestSearchLastReport(t *testing.T) {
	b := board.New()
	e := search.NewEngine(1)
	e.Workers = 1

	pv, score, err := e.Search(b, search.Limits{Depth: 3})
	if err != nil {
		t.Fatalf("Search() returned an error: %v", err)
	}
	report := e.LastReport()

	if report.Depth != 3 {
		t.Errorf("LastReport().Depth = %d, want 3", report.Depth)
	}
	if report.Nodes == 0 {
		t.Errorf("LastReport().Nodes = 0, want a positive node count")
	}
	if report.Score != score {
		t.Errorf("LastReport().Score = %s, want %s", report.Score, score)
	}
	if report.PV.First() != pv.First() {
		t.Errorf("LastReport().PV.First() = %s, want %s", report.PV.First(), pv.First())
	}
	if report.String() == "" {
		t.Errorf("LastReport().String() returned an empty line")
	}
}

func TestSearchStop(t *testing.T) {
	b := board.New()
	e := search.NewEngine(1)

	done := make(chan struct{})
	go func() {
		e.Search(b, search.Limits{Infinite: true})
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	e.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Search() did not return after Stop()")
	}
}
