package search

import (
	"sync/atomic"

	"github.com/corvid-chess/corvid/internal/move"
	"github.com/corvid-chess/corvid/internal/piece"
)

// killers holds, per ply, the two most recent quiet moves that caused a
// beta cutoff at that ply. It is thread-local: each worker in a
// root-parallel search owns its own Context and therefore its own
// killers array, so no synchronization is needed.
type killers [move.MaxPly][2]move.Move

func (k *killers) store(plys int, m move.Move) {
	if m.IsCapture() || m == k[plys][0] {
		return
	}
	k[plys][1] = k[plys][0]
	k[plys][0] = m
}

func (k *killers) isKiller(plys int, m move.Move) bool {
	return m == k[plys][0] || m == k[plys][1]
}

// history is a shared (from,to) cutoff counter used to order quiet
// moves that aren't killers. Every worker in a root-parallel search
// updates the same table; relaxed atomic adds are used rather than a
// lock, since a small number of lost or double-counted updates to a
// heuristic table costs nothing but a slightly worse move ordering.
type history [64][64]int32

func (h *history) update(m move.Move, bonus int32) {
	if m.IsCapture() {
		return
	}
	addr := &h[m.From()][m.To()]
	// exponential decay toward the new bonus keeps the counters from
	// saturating over a long search, the same scheme the teacher uses
	// for its history table.
	old := atomic.LoadInt32(addr)
	delta := bonus - old*abs32(bonus)/32768
	atomic.AddInt32(addr, delta)
}

func (h *history) score(m move.Move) int32 {
	return atomic.LoadInt32(&h[m.From()][m.To()])
}

func abs32(n int32) int32 {
	if n < 0 {
		return -n
	}
	return n
}

// historyBonus returns the history table bonus for causing a cutoff at
// the given depth: deeper cutoffs are rarer and more informative, so
// they are weighted more heavily, capped to bound the counters.
func historyBonus(depth int) int32 {
	bonus := int32(depth * 155)
	if bonus > 2000 {
		bonus = 2000
	}
	return bonus
}

// mvvLva scores a capture by (victim value, -attacker value): a pawn
// taking a queen sorts before a queen taking a pawn.
func mvvLva(victim, attacker piece.Type) int32 {
	return int32(victim.Value()*16 - attacker.Value())
}
