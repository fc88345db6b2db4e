package search

import (
	"github.com/corvid-chess/corvid/internal/eval"
	"github.com/corvid-chess/corvid/internal/move"
)

// nullMoveMinDepth is the shallowest depth null-move pruning is tried
// at; below it the reduced search it relies on has too little depth
// left to be trustworthy.
const nullMoveMinDepth = 3

// nullMoveReduction is how much shallower the verification search runs.
const nullMoveReduction = 2

// hasNonPawnMaterial reports whether the side to move has any piece
// other than pawns and its king. Null-move pruning is unsound in
// positions without it (the classic zugzwang failure mode, e.g. bare
// king-and-pawn endgames), so it is disabled there.
func hasNonPawnMaterial(w *worker) bool {
	us := w.board.SideToMove
	return w.board.Knights(us)|w.board.Bishops(us)|w.board.Rooks(us)|w.board.Queens(us) != 0
}

// tryNullMove attempts a null-move pruning cutoff: if passing the turn
// and searching at reduced depth still fails high, the real move at
// full depth is assumed to do at least as well, and the node is
// pruned. It reports whether a cutoff was found.
// https://www.chessprogramming.org/Null_Move_Pruning
func (w *worker) tryNullMove(plys, depth int, beta eval.Eval) (eval.Eval, bool) {
	if depth < nullMoveMinDepth {
		return 0, false
	}
	if w.board.IsInCheck(w.board.SideToMove) {
		return 0, false
	}
	if !hasNonPawnMaterial(w) {
		return 0, false
	}

	saved := w.board.MakeNullMove()
	var childPV move.Variation
	score := -w.negamax(plys+1, depth-1-nullMoveReduction, -beta, -beta+1, &childPV)
	w.board.UnmakeNullMove(saved)

	if w.stopped {
		return 0, false
	}
	if score >= beta {
		return beta, true
	}
	return 0, false
}
