package search

import (
	"github.com/corvid-chess/corvid/internal/eval"
	"github.com/corvid-chess/corvid/internal/game"
	"github.com/corvid-chess/corvid/internal/move"
)

// negamax searches the position on w.board to depth, within the
// [alpha, beta] window, recording the principal variation in pv. It
// returns the score from the perspective of the side to move.
// https://www.chessprogramming.org/Negamax
// https://www.chessprogramming.org/Alpha-Beta
func (w *worker) negamax(plys, depth int, alpha, beta eval.Eval, pv *move.Variation) eval.Eval {
	w.nodes++

	if w.shouldStop() {
		return 0
	}

	isPVNode := beta-alpha > 1

	moves := w.board.GenerateMoves()
	outcome := game.Detect(w.board, moves)
	switch outcome {
	case game.Checkmate:
		return eval.MatedIn(plys)
	case game.Stalemate, game.FiftyMoveRule, game.ThreefoldRepetition, game.InsufficientMaterial:
		return eval.Draw
	}

	if depth <= 0 || plys >= MaxDepth {
		return w.quiescence(plys, 0, alpha, beta)
	}

	originalAlpha := alpha

	var ttMove move.Move
	if entry, ok := w.tt().Probe(w.board.Hash); ok {
		ttMove = entry.Move
		if !isPVNode && entry.Depth >= depth {
			value := EvalTo(entry.Value, plys)
			switch entry.Type {
			case Exact:
				return value
			case LowerBound:
				if value > alpha {
					alpha = value
				}
			case UpperBound:
				if value < beta {
					beta = value
				}
			}
			if alpha >= beta {
				return value
			}
		}
	}

	if r, ok := w.tryNullMove(plys, depth, beta); ok {
		return r
	}

	w.orderMoves(w.board, moves, ttMove, plys)

	bestMove := move.Null
	bestEval := -eval.Inf

	for i, m := range moves {
		var childPV move.Variation

		w.board.MakeMove(m)

		var score eval.Eval
		if i == 0 {
			score = -w.negamax(plys+1, depth-1, -beta, -alpha, &childPV)
		} else {
			// null-window search first; only a move that beats alpha
			// earns a full re-search, the core of principal variation
			// search.
			score = -w.negamax(plys+1, depth-1, -alpha-1, -alpha, &childPV)
			if score > alpha && score < beta {
				score = -w.negamax(plys+1, depth-1, -beta, -alpha, &childPV)
			}
		}

		w.board.UnmakeMove()

		if w.stopped {
			return 0
		}

		if score > bestEval {
			bestMove = m
			bestEval = score

			if score > alpha {
				alpha = score
				pv.Update(m, childPV)

				if alpha >= beta {
					w.killers.store(plys, m)
					w.history.update(m, historyBonus(depth))
					break
				}
			}
		}
	}

	entryType := Exact
	switch {
	case bestEval <= originalAlpha:
		entryType = UpperBound
	case bestEval >= beta:
		entryType = LowerBound
	}

	w.tt().Store(Entry{
		Hash:  w.board.Hash,
		Move:  bestMove,
		Value: EvalFrom(bestEval, plys),
		Depth: depth,
		Type:  entryType,
	})

	return bestEval
}
