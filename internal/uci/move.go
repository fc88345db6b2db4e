package uci

import (
	"github.com/corvid-chess/corvid/internal/board"
	"github.com/corvid-chess/corvid/internal/move"
)

// findMove looks up uci (e.g. "e2e4", "e7e8q") among b's legal moves.
func findMove(b *board.Board, uci string) (move.Move, bool) {
	for _, m := range b.GenerateMoves() {
		if m.String() == uci {
			return m, true
		}
	}
	return move.Null, false
}
