package attacks

import (
	"github.com/corvid-chess/corvid/internal/bitboard"
	"github.com/corvid-chess/corvid/internal/square"
	"github.com/corvid-chess/corvid/internal/zobrist"
)

// MaxRookBlockerSets and MaxBishopBlockerSets bound the largest possible
// number of blocker subsets for a rook or bishop on any square (a rook
// on a corner square has 12 relevant blocker bits, a bishop at most 9).
const MaxRookBlockerSets = 1 << 12
const MaxBishopBlockerSets = 1 << 9

// Magic holds the perfect-hash parameters for one square of one slider
// type: the blocker mask to intersect against the real occupancy, the
// multiplier, and the shift that maps the masked blockers to a table
// index.
type Magic struct {
	BlockerMask bitboard.Board
	Number      uint64
	Shift       uint
}

var rookMagics [square.N]Magic
var bishopMagics [square.N]Magic

var rookAttackTable [square.N][MaxRookBlockerSets]bitboard.Board
var bishopAttackTable [square.N][MaxBishopBlockerSets]bitboard.Board

// magicSeeds biases the per-square PRNG differently across ranks so the
// random trial search converges quickly; values are arbitrary but fixed,
// so magic generation is deterministic across runs.
var magicSeeds = [8]uint64{255, 16645, 15100, 12281, 32803, 55013, 10316, 728}

func init() {
	for s := square.Square(0); s < square.N; s++ {
		rookMagics[s] = findMagic(s, rookDirections, rookAttacks)
		fillAttackTable(rookAttackTable[s][:], rookMagics[s], s, rookAttacks)

		bishopMagics[s] = findMagic(s, bishopDirections, bishopAttacks)
		fillAttackTable(bishopAttackTable[s][:], bishopMagics[s], s, bishopAttacks)
	}
}

// findMagic searches for a magic multiplier for square s by random
// trial, generating candidates biased toward few set bits and verifying
// no destructive collisions via the carry-rippler subset enumeration
// `blockers = (blockers - mask) & mask`.
func findMagic(
	s square.Square,
	directions [4][2]int,
	raysFn func(square.Square, bitboard.Board) bitboard.Board,
) Magic {
	mask := relevantBlockerMask(s, directions)
	bitCount := mask.Count()
	shift := uint(64 - bitCount)

	subsetCount := 1 << bitCount
	blockers := make([]bitboard.Board, subsetCount)
	attacks := make([]bitboard.Board, subsetCount)

	var subset bitboard.Board = bitboard.Empty
	for i := 0; ; i++ {
		blockers[i] = subset
		attacks[i] = raysFn(s, subset)
		subset = (subset - mask) & mask
		if subset == bitboard.Empty {
			break
		}
	}

	var rng zobrist.PRNG
	rng.Seed(magicSeeds[s.Rank()])

	seen := make([]bitboard.Board, subsetCount)
	fresh := make([]bool, subsetCount)

searching:
	for {
		candidate := rng.SparseUint64()

		for i := range fresh {
			fresh[i] = false
		}

		for i := 0; i < subsetCount; i++ {
			index := (uint64(blockers[i]) * candidate) >> shift
			if fresh[index] && seen[index] != attacks[i] {
				continue searching
			}
			seen[index] = attacks[i]
			fresh[index] = true
		}

		return Magic{BlockerMask: mask, Number: candidate, Shift: shift}
	}
}

// fillAttackTable populates the hashed attack table for square s using
// an already-found magic, by re-enumerating every blocker subset via
// carry-rippler and storing its real attack set at the hashed index.
func fillAttackTable(
	table []bitboard.Board,
	m Magic,
	s square.Square,
	raysFn func(square.Square, bitboard.Board) bitboard.Board,
) {
	var subset bitboard.Board = bitboard.Empty
	for {
		index := (uint64(subset) * m.Number) >> m.Shift
		table[index] = raysFn(s, subset)

		subset = (subset - m.BlockerMask) & m.BlockerMask
		if subset == bitboard.Empty {
			break
		}
	}
}

// Rook returns the rook attack bitboard from s given the current total
// occupancy, via magic-bitboard lookup.
func Rook(s square.Square, occ bitboard.Board) bitboard.Board {
	m := rookMagics[s]
	index := (uint64(occ&m.BlockerMask) * m.Number) >> m.Shift
	return rookAttackTable[s][index]
}

// Bishop returns the bishop attack bitboard from s given the current
// total occupancy, via magic-bitboard lookup.
func Bishop(s square.Square, occ bitboard.Board) bitboard.Board {
	m := bishopMagics[s]
	index := (uint64(occ&m.BlockerMask) * m.Number) >> m.Shift
	return bishopAttackTable[s][index]
}

// Queen returns the combined rook+bishop attack bitboard from s, i.e.
// the attack set of a queen given the current total occupancy.
func Queen(s square.Square, occ bitboard.Board) bitboard.Board {
	return Rook(s, occ) | Bishop(s, occ)
}
