package search

import (
	"sync/atomic"

	"github.com/corvid-chess/corvid/internal/eval"
	"github.com/corvid-chess/corvid/internal/move"
	"github.com/corvid-chess/corvid/internal/zobrist"
)

// EntryType tags what an Entry's Value bounds.
type EntryType uint8

const (
	NoEntry EntryType = iota
	Exact
	LowerBound
	UpperBound
)

// Entry is a transposition table record.
type Entry struct {
	Hash  zobrist.Key
	Move  move.Move
	Value eval.Eval
	Depth int
	Type  EntryType
	epoch uint8
}

func (e *Entry) quality() int {
	if e == nil {
		return -1
	}
	return int(e.epoch) + e.Depth/3
}

// Table is a fixed-size transposition table safe for concurrent
// Probe/Store calls from multiple root-parallel search workers. Each
// bucket holds an atomic pointer to an immutable Entry: a store
// publishes a brand new Entry rather than mutating fields in place, so
// a concurrent probe always sees either the old entry or the new one
// in full, never a torn mix of the two, with no mutex required.
type Table struct {
	slots []atomic.Pointer[Entry]
	epoch uint8
	hits  atomic.Int64
}

// NewTable creates a Table sized to hold roughly mbs megabytes of
// entries.
func NewTable(mbs int) *Table {
	const entrySize = 32 // approximate bytes per Entry plus pointer overhead
	n := (mbs * 1024 * 1024) / entrySize
	if n < 1 {
		n = 1
	}
	return &Table{slots: make([]atomic.Pointer[Entry], n)}
}

// Clear empties every slot.
func (t *Table) Clear() {
	for i := range t.slots {
		t.slots[i].Store(nil)
	}
}

// NextEpoch marks entries from prior searches as lower priority to
// overwrite than entries from the search about to begin.
func (t *Table) NextEpoch() {
	t.epoch++
}

func (t *Table) index(hash zobrist.Key) uint64 {
	return uint64(hash) % uint64(len(t.slots))
}

// Store writes entry into its bucket, keeping whichever of the new and
// existing entries has higher quality (deeper search, fresher epoch).
func (t *Table) Store(entry Entry) {
	entry.epoch = t.epoch
	slot := &t.slots[t.index(entry.Hash)]

	if existing := slot.Load(); existing.quality() > entry.quality() {
		return
	}
	slot.Store(&entry)
}

// Probe looks up hash and reports whether a matching entry was found.
func (t *Table) Probe(hash zobrist.Key) (Entry, bool) {
	entry := t.slots[t.index(hash)].Load()
	if entry == nil || entry.Hash != hash {
		return Entry{}, false
	}
	t.hits.Add(1)
	return *entry, true
}

// Hashfull estimates the fraction of occupied slots, sampling the first
// 1000 (or every slot, if there are fewer) the way UCI's "hashfull"
// field expects: parts per thousand.
func (t *Table) Hashfull() int {
	sample := len(t.slots)
	if sample > 1000 {
		sample = 1000
	}
	filled := 0
	for i := 0; i < sample; i++ {
		if t.slots[i].Load() != nil {
			filled++
		}
	}
	return filled * 1000 / sample
}

// EvalFrom converts score, expressed as "plys to mate from the root",
// into the depth-independent "plys to mate from here" form that is
// safe to store in the table and reuse from a different ply.
func EvalFrom(score eval.Eval, plys int) eval.Eval {
	switch {
	case score > eval.WinInMaxPly:
		return score + eval.Eval(plys)
	case score < eval.LoseInMaxPly:
		return score - eval.Eval(plys)
	default:
		return score
	}
}

// EvalTo converts a table value back from "plys to mate from here" to
// "plys to mate from the root" at the current ply.
func EvalTo(value eval.Eval, plys int) eval.Eval {
	switch {
	case value > eval.WinInMaxPly:
		return value - eval.Eval(plys)
	case value < eval.LoseInMaxPly:
		return value + eval.Eval(plys)
	default:
		return value
	}
}
