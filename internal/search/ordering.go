package search

import (
	"sort"

	"github.com/corvid-chess/corvid/internal/board"
	"github.com/corvid-chess/corvid/internal/move"
)

// scoredMoves sorts a move list and its parallel score slice together:
// sort.Slice would only permute moves, leaving scores pointing at the
// wrong entries after the first swap.
type scoredMoves struct {
	moves  []move.Move
	scores []int32
}

func (s scoredMoves) Len() int           { return len(s.moves) }
func (s scoredMoves) Less(i, j int) bool { return s.scores[i] > s.scores[j] }
func (s scoredMoves) Swap(i, j int) {
	s.moves[i], s.moves[j] = s.moves[j], s.moves[i]
	s.scores[i], s.scores[j] = s.scores[j], s.scores[i]
}

// orderMoves sorts moves in place, most promising first: the
// transposition table's move, then captures by MVV-LVA, then killer
// moves for this ply, then quiet moves by history score.
func (w *worker) orderMoves(b *board.Board, moves []move.Move, ttMove move.Move, plys int) {
	scores := make([]int32, len(moves))
	for i, m := range moves {
		switch {
		case m == ttMove:
			scores[i] = 1 << 30
		case m.IsCapture():
			victim := b.Squares[m.To()].Type()
			attacker := b.Squares[m.From()].Type()
			scores[i] = 1<<20 + mvvLva(victim, attacker)
		case w.killers.isKiller(plys, m):
			scores[i] = 1 << 16 // above any history score, which stays near 32768 at most
		default:
			scores[i] = w.history.score(m)
		}
	}

	sort.Sort(scoredMoves{moves: moves, scores: scores})
}
