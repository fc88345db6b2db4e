// Package zobrist computes the incremental position-hash keys used by
// the board's Zobrist hash and the search's transposition table.
package zobrist

import (
	"github.com/corvid-chess/corvid/internal/castling"
	"github.com/corvid-chess/corvid/internal/piece"
	"github.com/corvid-chess/corvid/internal/square"
)

// Key is a Zobrist hash value, or a component key to be XORed into one.
type Key uint64

// PieceSquare[p][s] is the key XORed in when piece p occupies square s.
// Index 0 of the piece axis (piece.NoPiece) is unused but kept so the
// table can be indexed directly by piece.Piece without subtracting one.
var PieceSquare [16][square.N]Key

// EnPassant[f] is the key XORed in when the en-passant target square is
// on file f.
var EnPassant [8]Key

// Castling[r] is the key for a particular combination of castling
// rights, indexed directly by castling.Rights.
var Castling [castling.N]Key

// SideToMove is XORed in whenever it is Black's turn to move.
var SideToMove Key

func init() {
	var rng PRNG
	rng.Seed(1070372) // arbitrary fixed seed; keeps hashes reproducible across runs

	for p := piece.WhitePawn; p <= piece.BlackKing; p++ {
		for s := square.Square(0); s < square.N; s++ {
			PieceSquare[p][s] = Key(rng.Uint64())
		}
	}

	for f := square.FileA; f <= square.FileH; f++ {
		EnPassant[f] = Key(rng.Uint64())
	}

	for r := 0; r < castling.N; r++ {
		Castling[r] = Key(rng.Uint64())
	}

	SideToMove = Key(rng.Uint64())
}
