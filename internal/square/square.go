// Package square implements the board-square primitive shared by every
// other core package: a 0..63 index with rank/file/algebraic views.
//
// Squares are numbered in little-endian rank-file order: A1 = 0, B1 = 1,
// ..., H1 = 7, A2 = 8, ..., H8 = 63. Rank increases toward the eighth
// rank and file increases toward the h-file.
package square

import "fmt"

// Square is an index 0..63 into a chessboard, A1=0, H8=63.
type Square int8

// N is the number of squares on a chessboard.
const N = 64

// None represents the absence of a square, e.g. no en-passant target.
const None Square = -1

// File is a board file, A=0 .. H=7.
type File int8

// Rank is a board rank, rank 1 = 0 .. rank 8 = 7.
type Rank int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// named squares used by castling, pawn rules, and tests
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// New builds a Square from a file and rank.
func New(f File, r Rank) Square {
	return Square(int(r)*8 + int(f))
}

// File returns the file of the square, A=0..H=7.
func (s Square) File() File {
	return File(s % 8)
}

// Rank returns the rank of the square, rank1=0..rank8=7.
func (s Square) Rank() Rank {
	return Rank(s / 8)
}

// String returns the algebraic notation of the square, e.g. "e4".
// The null square "-" is returned for None.
func (s Square) String() string {
	if s == None {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+byte(s.File()), '1'+byte(s.Rank()))
}

// NewFromString parses an algebraic square string like "e4". It returns
// None for "-".
func NewFromString(s string) Square {
	if s == "-" || len(s) < 2 {
		return None
	}
	f := File(s[0] - 'a')
	r := Rank(s[1] - '1')
	return New(f, r)
}

// Valid reports whether the file and rank both lie on the board, used
// when enumerating leaper and slider attacks so that a step past the
// board edge is rejected instead of wrapping around.
func Valid(f File, r Rank) bool {
	return f >= FileA && f <= FileH && r >= Rank1 && r <= Rank8
}
