package attacks

import (
	"github.com/corvid-chess/corvid/internal/bitboard"
	"github.com/corvid-chess/corvid/internal/square"
)

// rookDirections and bishopDirections list the (file, rank) step for
// each of a slider's four directions. Splitting
// the helper this way lets the magic-table builder ask for "relevant"
// rays (blockers on the edge of the board don't matter, since a piece
// standing there still blocks the ray) or "full" rays (used to compute
// the actual attack set given real blockers).
var rookDirections = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var bishopDirections = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// slidingAttacks walks each direction from s one step at a time, adding
// each square to the attack set, and stops a ray as soon as it hits a
// blocker (the blocker square itself is included, since it may be a
// capturable enemy; callers AND off friendly pieces separately).
func slidingAttacks(s square.Square, occ bitboard.Board, directions [4][2]int) bitboard.Board {
	var b bitboard.Board
	f0, r0 := int(s.File()), int(s.Rank())
	for _, d := range directions {
		f, r := f0+d[0], r0+d[1]
		for square.Valid(square.File(f), square.Rank(r)) {
			sq := square.New(square.File(f), square.Rank(r))
			b.Set(sq)
			if occ.IsSet(sq) {
				break
			}
			f += d[0]
			r += d[1]
		}
	}
	return b
}

// relevantBlockerMask computes the rays in every direction of a slider,
// excluding the final edge square of each ray (a blocker there has no
// effect on which squares short of the edge are reachable, so it is not
// "relevant" and excluding it keeps the mask, and thus the subset
// enumeration, as small as possible).
func relevantBlockerMask(s square.Square, directions [4][2]int) bitboard.Board {
	var b bitboard.Board
	f0, r0 := int(s.File()), int(s.Rank())
	for _, d := range directions {
		f, r := f0+d[0], r0+d[1]
		for square.Valid(square.File(f), square.Rank(r)) {
			nf, nr := f+d[0], r+d[1]
			if !square.Valid(square.File(nf), square.Rank(nr)) {
				break // this is the edge square; exclude it
			}
			b.Set(square.New(square.File(f), square.Rank(r)))
			f, r = nf, nr
		}
	}
	return b
}

func rookAttacks(s square.Square, occ bitboard.Board) bitboard.Board {
	return slidingAttacks(s, occ, rookDirections)
}

func bishopAttacks(s square.Square, occ bitboard.Board) bitboard.Board {
	return slidingAttacks(s, occ, bishopDirections)
}
