package search

import (
	"sync"

	"github.com/corvid-chess/corvid/internal/eval"
	"github.com/corvid-chess/corvid/internal/move"
)

// searchRoot searches every legal root move to depth and returns the
// best score, with its principal variation written to pv. The first
// (highest-ordered) move is always searched serially to establish a
// window; the remaining moves are then fanned out one task per move
// across a bounded worker pool, the root-parallel scheme spec §5 asks
// for. Engine.Workers == 1 falls back to a fully sequential root loop.
func (e *Engine) searchRoot(w *worker, depth int, pv *move.Variation) eval.Eval {
	moves := w.board.GenerateMoves()
	if len(moves) == 0 {
		// Unreachable through Engine.Search, which rejects a no-legal-move
		// root with a SearchError before the iterative-deepening loop ever
		// calls searchRoot.
		return 0
	}

	var ttMove move.Move
	if entry, ok := w.tt().Probe(w.board.Hash); ok {
		ttMove = entry.Move
	}
	w.orderMoves(w.board, moves, ttMove, 0)

	alpha, beta := -eval.Inf, eval.Inf

	var firstPV move.Variation
	w.board.MakeMove(moves[0])
	best := -w.negamax(1, depth-1, -beta, -alpha, &firstPV)
	w.board.UnmakeMove()

	if w.stopped {
		return best
	}

	bestMove := moves[0]
	if best > alpha {
		alpha = best
	}
	pv.Update(bestMove, firstPV)

	rest := moves[1:]
	if len(rest) == 0 {
		return best
	}

	workers := e.Workers
	if workers < 1 {
		workers = 1
	}

	type result struct {
		m     move.Move
		score eval.Eval
		pv    move.Variation
	}

	results := make([]result, len(rest))
	var interrupted bool // set when any task was stopped before finishing
	var mu sync.Mutex    // guards alpha, the root-parallel window shared across tasks
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for i, m := range rest {
		if w.shouldStop() {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, m move.Move) {
			defer wg.Done()
			defer func() { <-sem }()

			task := w.clone()

			mu.Lock()
			window := alpha
			mu.Unlock()

			task.board.MakeMove(m)
			var childPV move.Variation
			score := -task.negamax(1, depth-1, -window-1, -window, &childPV)
			if !task.stopped && score > window {
				score = -task.negamax(1, depth-1, -beta, -window, &childPV)
			}
			task.board.UnmakeMove()

			if task.stopped {
				mu.Lock()
				w.nodes += task.nodes
				interrupted = true
				mu.Unlock()
				return
			}

			results[i] = result{m: m, score: score, pv: childPV}

			mu.Lock()
			w.nodes += task.nodes
			if score > alpha {
				alpha = score
			}
			mu.Unlock()
		}(i, m)
	}

	wg.Wait()

	if interrupted {
		w.stopped = true
		return best
	}

	for _, r := range results {
		if r.m == move.Null {
			continue
		}
		if r.score > best {
			best = r.score
			bestMove = r.m
			pv.Update(bestMove, r.pv)
		}
	}

	return best
}
