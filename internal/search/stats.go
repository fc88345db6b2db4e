package search

import (
	"fmt"
	"time"

	"github.com/corvid-chess/corvid/internal/eval"
	"github.com/corvid-chess/corvid/internal/move"
)

// Report summarizes one completed Search call: depth reached, node
// count and rate, transposition table fill, elapsed time, and the
// principal variation found. It is the data behind a UCI "info" line
// and behind calculate-best-move's stats output.
type Report struct {
	Depth int

	Nodes int64
	Nps   float64

	TTHits   int64
	Hashfull int // per-mille, as UCI's "hashfull" field expects

	Time time.Duration

	Score eval.Eval
	PV    move.Variation
}

// String renders report as a UCI-compatible "info" line.
func (report Report) String() string {
	return fmt.Sprintf(
		"info depth %d score %s nodes %d nps %.f hashfull %d tbhits 0 time %d pv %s",
		report.Depth, report.Score, report.Nodes, report.Nps,
		report.Hashfull, report.Time.Milliseconds(), report.PV,
	)
}

// LastReport returns a Report describing the most recently completed
// Search call on e. Calling it before any Search returns a zero Report.
func (e *Engine) LastReport() Report {
	return e.lastReport
}
