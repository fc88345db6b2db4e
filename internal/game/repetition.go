package game

import "github.com/corvid-chess/corvid/internal/board"

// IsThreefoldRepetition reports whether the current position's Zobrist
// hash has occurred at least twice before within the halfmove-clock
// window, making the current occurrence the third. Positions outside
// that window can never repeat, since a pawn move or capture resets the
// clock and is irreversible.
func IsThreefoldRepetition(b *board.Board) bool {
	count := 1
	limit := b.Ply - b.HalfmoveClock
	if limit < 0 {
		limit = 0
	}
	for i := b.Ply - 2; i >= limit; i -= 2 {
		if b.History[i].Hash == b.Hash {
			count++
			if count >= 3 {
				return true
			}
		}
	}
	return false
}
