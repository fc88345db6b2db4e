package attacks

import (
	"github.com/corvid-chess/corvid/internal/bitboard"
	"github.com/corvid-chess/corvid/internal/piece"
	"github.com/corvid-chess/corvid/internal/square"
)

// King[s] and Knight[s] are the precomputed attack bitboards for a king
// or knight sitting on square s, with no occupancy/friend filtering
// applied — callers AND against (empty | enemy) themselves.
var King [square.N]bitboard.Board
var Knight [square.N]bitboard.Board

// Pawn[c][s] is the set of squares a pawn of color c on square s
// attacks diagonally (not including its forward push).
var Pawn [piece.NColor][square.N]bitboard.Board

// PawnPush[c][s] is the set of squares a pawn of color c on square s can
// push to with a single move, ignoring occupancy.
var PawnPush [piece.NColor][square.N]bitboard.Board

var kingOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

func init() {
	for s := square.Square(0); s < square.N; s++ {
		King[s] = leaperAttacks(s, kingOffsets[:])
		Knight[s] = leaperAttacks(s, knightOffsets[:])

		Pawn[piece.White][s] = pawnCaptures(s, 1)
		Pawn[piece.Black][s] = pawnCaptures(s, -1)

		PawnPush[piece.White][s] = pawnPush(s, piece.White)
		PawnPush[piece.Black][s] = pawnPush(s, piece.Black)
	}
}

// leaperAttacks computes the attack bitboard for a piece on s that jumps
// by a fixed set of (file, rank) offsets, rejecting any jump that would
// wrap around the edge of the board.
func leaperAttacks(s square.Square, offsets [][2]int) bitboard.Board {
	var b bitboard.Board
	f, r := int(s.File()), int(s.Rank())
	for _, o := range offsets {
		nf, nr := square.File(f+o[0]), square.Rank(r+o[1])
		if square.Valid(nf, nr) {
			b.Set(square.New(nf, nr))
		}
	}
	return b
}

// pawnCaptures computes the diagonal capture squares for a pawn on s,
// where dir is +1 for white (moving toward rank 8) and -1 for black.
func pawnCaptures(s square.Square, dir int) bitboard.Board {
	var b bitboard.Board
	f, r := int(s.File()), int(s.Rank())
	for _, df := range [2]int{-1, 1} {
		nf, nr := square.File(f+df), square.Rank(r+dir)
		if square.Valid(nf, nr) {
			b.Set(square.New(nf, nr))
		}
	}
	return b
}

// pawnPush computes the single-step forward push square for a pawn on s.
func pawnPush(s square.Square, c piece.Color) bitboard.Board {
	var b bitboard.Board
	r := int(s.Rank())
	if c == piece.White {
		r++
	} else {
		r--
	}
	if r < int(square.Rank1) || r > int(square.Rank8) {
		return bitboard.Empty
	}
	b.Set(square.New(s.File(), square.Rank(r)))
	return b
}
