package board

import (
	"github.com/corvid-chess/corvid/internal/square"
	"github.com/corvid-chess/corvid/internal/zobrist"
)

// MakeNullMove passes the turn without moving a piece: it clears any
// en-passant target and flips the side to move, for use by null-move
// pruning in search. UnmakeNullMove reverses it; every move made after
// the null move must be unmade before UnmakeNullMove is called.
func (b *Board) MakeNullMove() (savedEnPassant square.Square) {
	savedEnPassant = b.EnPassantTarget
	if b.EnPassantTarget != square.None {
		b.Hash ^= zobrist.EnPassant[b.EnPassantTarget.File()]
		b.EnPassantTarget = square.None
	}
	b.SideToMove = b.SideToMove.Other()
	b.Hash ^= zobrist.SideToMove
	return savedEnPassant
}

// UnmakeNullMove reverses a MakeNullMove call, given the en-passant
// target it returned.
func (b *Board) UnmakeNullMove(savedEnPassant square.Square) {
	b.SideToMove = b.SideToMove.Other()
	b.Hash ^= zobrist.SideToMove
	if savedEnPassant != square.None {
		b.EnPassantTarget = savedEnPassant
		b.Hash ^= zobrist.EnPassant[savedEnPassant.File()]
	}
}
