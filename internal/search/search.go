// Package search implements iterative-deepening alpha-beta search over
// a board.Board: negamax with a transposition table, quiescence search,
// null-move pruning, killer/history move ordering, and an optional
// root-parallel fan-out across a bounded worker pool.
package search

import (
	"runtime"
	"sync/atomic"
	"time"

	"github.com/corvid-chess/corvid/internal/board"
	"github.com/corvid-chess/corvid/internal/cerr"
	"github.com/corvid-chess/corvid/internal/eval"
	"github.com/corvid-chess/corvid/internal/move"
)

// MaxDepth bounds iterative deepening and every ply-indexed array used
// during search (killers, the LMR-free ply loop, etc).
const MaxDepth = move.MaxPly

// Limits bounds how long a single Search call is allowed to run.
type Limits struct {
	Depth    int           // maximum depth; 0 means MaxDepth
	Nodes    int64         // node budget; 0 means unbounded
	Movetime time.Duration // wall-clock budget; 0 means unbounded
	Infinite bool          // ignore Nodes and Movetime; only Stop or the depth bound ends the search
}

// Info is reported once per completed iterative-deepening iteration,
// the data behind a UCI "info ..." line.
type Info struct {
	Depth int
	Score eval.Eval
	Nodes int64
	Time  time.Duration
	PV    move.Variation
}

// Engine runs searches against a shared transposition table and history
// table, both safe for concurrent use by root-parallel workers.
type Engine struct {
	tt      *Table
	history *history

	// Workers bounds how many root moves are searched concurrently.
	// 1 disables root parallelism entirely.
	Workers int

	// OnInfo, if set, is called after each completed iterative
	// deepening iteration; the UCI layer uses it to print "info" lines.
	OnInfo func(Info)

	stop       atomic.Bool
	lastReport Report
}

// NewEngine creates an Engine with a transposition table sized to hold
// roughly ttMegabytes of entries.
func NewEngine(ttMegabytes int) *Engine {
	return &Engine{
		tt:      NewTable(ttMegabytes),
		history: &history{},
		Workers: runtime.GOMAXPROCS(0),
	}
}

// Stop requests that any in-progress Search return as soon as possible,
// reporting the best move found at the last fully completed depth.
func (e *Engine) Stop() {
	e.stop.Store(true)
}

// NewGame clears search state that must not leak between independent
// games: the transposition table and the history heuristic.
func (e *Engine) NewGame() {
	e.tt.Clear()
	*e.history = history{}
}

// Search runs iterative deepening on b until a limit is reached or Stop
// is called, and returns the best principal variation found along with
// its evaluation. If b has no legal move at the root, Search returns a
// cerr.SearchError instead of searching; callers that want a proper
// terminal-outcome report should run game.Detect on b before calling
// Search rather than inspecting this error.
func (e *Engine) Search(b *board.Board, limits Limits) (move.Variation, eval.Eval, error) {
	e.stop.Store(false)
	e.tt.NextEpoch()

	if len(b.GenerateMoves()) == 0 {
		return move.Variation{}, 0, cerr.New(cerr.SearchError, "no legal moves at search root")
	}

	depth := limits.Depth
	if depth <= 0 || depth > MaxDepth {
		depth = MaxDepth
	}

	var deadline time.Time
	if limits.Movetime > 0 {
		deadline = time.Now().Add(limits.Movetime)
	}

	w := &worker{
		engine:   e,
		board:    b,
		history:  e.history,
		deadline: deadline,
		limits:   limits,
	}

	var pv move.Variation
	var score eval.Eval
	start := time.Now()

	for d := 1; d <= depth; d++ {
		var childPV move.Variation
		w.rootDepth = d
		iterScore := e.searchRoot(w, d, &childPV)

		if w.stopped {
			break
		}

		pv = childPV
		score = iterScore
		if e.OnInfo != nil {
			e.OnInfo(Info{
				Depth: d,
				Score: score,
				Nodes: w.nodes,
				Time:  time.Since(start),
				PV:    pv,
			})
		}
	}

	e.lastReport = Report{
		Depth:    w.rootDepth,
		Nodes:    w.nodes,
		TTHits:   e.tt.hits.Load(),
		Hashfull: e.tt.Hashfull(),
		Time:     time.Since(start),
		Score:    score,
		PV:       pv,
	}
	e.lastReport.Nps = float64(w.nodes) / maxFloat(0.001, e.lastReport.Time.Seconds())

	return pv, score, nil
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// worker carries all per-search-thread mutable state: its own board
// clone, killer slots, and node counter, alongside pointers to the
// state an Engine's workers share (the transposition table and history
// heuristic).
type worker struct {
	engine *Engine
	board  *board.Board

	killers killers
	history *history

	nodes     int64
	rootDepth int

	deadline time.Time
	limits   Limits
	stopped  bool
}

func (w *worker) tt() *Table { return w.engine.tt }

func (w *worker) shouldStop() bool {
	if w.stopped {
		return true
	}
	if w.engine.stop.Load() {
		w.stopped = true
		return true
	}
	if w.limits.Infinite {
		return false
	}
	if w.nodes&1023 == 0 {
		if w.limits.Nodes > 0 && w.nodes > w.limits.Nodes {
			w.stopped = true
		}
		if !w.deadline.IsZero() && time.Now().After(w.deadline) {
			w.stopped = true
		}
	}
	return w.stopped
}

// clone returns a worker that searches an independent clone of b,
// sharing the engine's transposition table and history heuristic but
// owning its own killer slots, for use as one task in the root-parallel
// fan-out.
func (w *worker) clone() *worker {
	return &worker{
		engine:    w.engine,
		board:     w.board.Clone(),
		history:   w.history,
		deadline:  w.deadline,
		limits:    w.limits,
		rootDepth: w.rootDepth,
	}
}
