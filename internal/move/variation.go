package move

import "strings"

// MaxPly bounds the length of a principal variation and the depth of
// per-ply search state (killer slots, ply-indexed arrays).
const MaxPly = 128

// Variation is a principal variation: the sequence of best moves found
// from a node down to the point where the search stopped extending it.
type Variation struct {
	Moves  [MaxPly]Move
	Length int
}

// Update sets m as the first move of the variation and appends child
// after it, truncating to fit MaxPly. It is called every time a new
// best move raises alpha at a node, propagating the child's pv upward.
func (v *Variation) Update(m Move, child Variation) {
	v.Moves[0] = m
	n := copy(v.Moves[1:], child.Moves[:child.Length])
	v.Length = 1 + n
}

// First returns the variation's first move, or Null if it is empty.
func (v Variation) First() Move {
	if v.Length == 0 {
		return Null
	}
	return v.Moves[0]
}

// String renders the variation as a space-separated list of UCI long
// algebraic moves, the format used in a UCI "info ... pv ..." line.
func (v Variation) String() string {
	parts := make([]string, v.Length)
	for i := 0; i < v.Length; i++ {
		parts[i] = v.Moves[i].String()
	}
	return strings.Join(parts, " ")
}
