// Package castling implements castling rights as a typed 4-bit wrapper.
//
// The original source kept both a typed CastleRights abstraction and a
// raw bitmask alias side by side (spec Design Notes §9). This package
// picks the typed wrapper and uses it consistently everywhere; no raw
// bitmask alias is exposed.
package castling

import (
	"github.com/corvid-chess/corvid/internal/piece"
	"github.com/corvid-chess/corvid/internal/square"
)

// Rights is a 4-bit set of castling rights: white kingside, white
// queenside, black kingside, black queenside.
type Rights uint8

const (
	WhiteKingside Rights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	None Rights = 0
	All  Rights = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside

	// N is the number of distinct Rights values, used to size the
	// Zobrist castling-rights key table.
	N = int(All) + 1
)

// Kingside and Queenside return the relevant right for a color, used by
// move generation and FEN formatting to iterate by color.
func Kingside(c piece.Color) Rights {
	if c == piece.White {
		return WhiteKingside
	}
	return BlackKingside
}

func Queenside(c piece.Color) Rights {
	if c == piece.White {
		return WhiteQueenside
	}
	return BlackQueenside
}

// Contains reports whether every right in want is present in r.
func (r Rights) Contains(want Rights) bool {
	return r&want == want
}

// Set returns r with want added.
func (r Rights) Set(want Rights) Rights {
	return r | want
}

// Clear returns r with want removed.
func (r Rights) Clear(want Rights) Rights {
	return r &^ want
}

// updateMask[s] is the set of rights lost when a piece moves to or from
// square s — either a king or a rook leaving its home square, or a rook
// being captured on its home square.
var updateMask [square.N]Rights

func init() {
	updateMask[square.E1] = WhiteKingside | WhiteQueenside
	updateMask[square.H1] = WhiteKingside
	updateMask[square.A1] = WhiteQueenside
	updateMask[square.E8] = BlackKingside | BlackQueenside
	updateMask[square.H8] = BlackKingside
	updateMask[square.A8] = BlackQueenside
}

// UpdateMask returns the rights that are revoked when a move touches
// square s, either as its source or target.
func UpdateMask(s square.Square) Rights {
	return updateMask[s]
}

// String formats the rights in FEN order, "KQkq", using "-" when none
// are held.
func (r Rights) String() string {
	if r == None {
		return "-"
	}
	s := ""
	if r.Contains(WhiteKingside) {
		s += "K"
	}
	if r.Contains(WhiteQueenside) {
		s += "Q"
	}
	if r.Contains(BlackKingside) {
		s += "k"
	}
	if r.Contains(BlackQueenside) {
		s += "q"
	}
	return s
}

// NewFromString parses a FEN castling-rights field like "KQkq" or "-".
func NewFromString(s string) Rights {
	var r Rights
	for _, c := range s {
		switch c {
		case 'K':
			r |= WhiteKingside
		case 'Q':
			r |= WhiteQueenside
		case 'k':
			r |= BlackKingside
		case 'q':
			r |= BlackQueenside
		}
	}
	return r
}

// RookMove describes the rook relocation implied by a castle move, keyed
// by the king's target square.
type RookMove struct {
	From, To square.Square
	Rook     piece.Piece
}

// RookMoves is indexed by the king's target square during a castle; only
// the four legal castling target squares have non-zero entries.
var RookMoves = [square.N]RookMove{
	square.G1: {From: square.H1, To: square.F1, Rook: piece.WhiteRook},
	square.C1: {From: square.A1, To: square.D1, Rook: piece.WhiteRook},
	square.G8: {From: square.H8, To: square.F8, Rook: piece.BlackRook},
	square.C8: {From: square.A8, To: square.D8, Rook: piece.BlackRook},
}
