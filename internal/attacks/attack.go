// Package attacks provides precomputed and magic-indexed attack
// bitboards for every piece type, and the read-only "is this square
// attacked" query shared by check detection, castling legality, and the
// move generator's legality filter.
package attacks

import (
	"github.com/corvid-chess/corvid/internal/bitboard"
	"github.com/corvid-chess/corvid/internal/piece"
	"github.com/corvid-chess/corvid/internal/square"
)

// Occupancy is the minimal view of a position the attack-target query
// needs: the set of squares occupied by each piece type, split by
// color, plus total occupancy for slider ray-casting.
type Occupancy struct {
	Occupied bitboard.Board
	Pawns    [piece.NColor]bitboard.Board
	Knights  [piece.NColor]bitboard.Board
	Bishops  [piece.NColor]bitboard.Board
	Rooks    [piece.NColor]bitboard.Board
	Queens   [piece.NColor]bitboard.Board
	Kings    [piece.NColor]bitboard.Board
}

// IsAttacked reports whether square s is attacked by any piece of color
// by, given the occupancy o. It is used both for king-safety legality
// checks and for castling's "king does not pass through an attacked
// square" rule; in both cases only whether a single square is attacked
// matters, so this stops at the first hit rather than building a full
// attacker set.
func IsAttacked(o Occupancy, s square.Square, by piece.Color) bool {
	if Pawn[by.Other()][s]&o.Pawns[by] != bitboard.Empty {
		return true
	}
	if Knight[s]&o.Knights[by] != bitboard.Empty {
		return true
	}
	if King[s]&o.Kings[by] != bitboard.Empty {
		return true
	}

	diagonal := o.Bishops[by] | o.Queens[by]
	if Bishop(s, o.Occupied)&diagonal != bitboard.Empty {
		return true
	}

	straight := o.Rooks[by] | o.Queens[by]
	return Rook(s, o.Occupied)&straight != bitboard.Empty
}
