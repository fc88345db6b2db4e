package search

import (
	"github.com/corvid-chess/corvid/internal/eval"
	"github.com/corvid-chess/corvid/internal/move"
)

// MaxQuiescenceDepth bounds how many plies a quiescence search may
// extend past the nominal horizon, independent of the main search's
// MaxDepth. Without its own cap, a long forced capture/check sequence
// could ride the shared 128-ply bound inherited from the enclosing
// negamax recursion instead of terminating quickly on a quiet position.
const MaxQuiescenceDepth = 8

// quiescence extends search along capture/promotion lines past the
// nominal horizon so the static evaluator is never asked to judge a
// position in the middle of a tactical exchange. qply counts plies
// from the point quiescence began, not from the search root, and is
// capped at MaxQuiescenceDepth to guarantee termination.
// https://www.chessprogramming.org/Quiescence_Search
func (w *worker) quiescence(plys, qply int, alpha, beta eval.Eval) eval.Eval {
	w.nodes++

	if w.shouldStop() {
		return 0
	}

	standPat := eval.PeSTO(w.board)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	if plys >= MaxDepth || qply >= MaxQuiescenceDepth {
		return standPat
	}

	moves := w.board.GenerateMoves()
	tactical := moves[:0:0]
	for _, m := range moves {
		if m.IsTactical() {
			tactical = append(tactical, m)
		}
	}

	w.orderMoves(w.board, tactical, move.Null, plys)

	for _, m := range tactical {
		w.board.MakeMove(m)
		score := -w.quiescence(plys+1, qply+1, -beta, -alpha)
		w.board.UnmakeMove()

		if w.stopped {
			return 0
		}

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}
