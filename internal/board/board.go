// Package board implements chessboard state: piece placement, side to
// move, castling/en-passant/halfmove bookkeeping, Zobrist hashing, and
// legal move generation.
package board

import (
	"fmt"

	"github.com/corvid-chess/corvid/internal/attacks"
	"github.com/corvid-chess/corvid/internal/bitboard"
	"github.com/corvid-chess/corvid/internal/castling"
	"github.com/corvid-chess/corvid/internal/cerr"
	"github.com/corvid-chess/corvid/internal/move"
	"github.com/corvid-chess/corvid/internal/piece"
	"github.com/corvid-chess/corvid/internal/square"
	"github.com/corvid-chess/corvid/internal/zobrist"
)

// MaxHistory bounds the number of plys a single Board can record in its
// undo stack; long enough for any realistic game plus deep search
// extensions from the root.
const MaxHistory = 2048

// Undo captures the state needed to reverse one MakeMove call.
type Undo struct {
	Move            move.Move
	Captured        piece.Piece
	CastlingRights  castling.Rights
	EnPassantTarget square.Square
	HalfmoveClock   int
	Hash            zobrist.Key
}

// Board is the mutable state of a chess position. It is never shared
// mutably between goroutines: a root-parallel search clones the Board
// once per worker (see internal/search) rather than locking it.
type Board struct {
	PieceBB [piece.NType]bitboard.Board // indexed by piece.Type; PieceBB[NoType] is unused
	ColorBB [piece.NColor]bitboard.Board
	Squares [square.N]piece.Piece
	Kings   [piece.NColor]square.Square

	SideToMove      piece.Color
	EnPassantTarget square.Square
	CastlingRights  castling.Rights
	HalfmoveClock   int
	FullmoveNumber  int
	Hash            zobrist.Key

	Ply     int
	History [MaxHistory]Undo
}

// New creates a Board from the starting position.
func New() *Board {
	b, err := NewFromFEN(StartFEN)
	if err != nil {
		panic("board: starting position FEN failed to parse: " + err.Error())
	}
	return b
}

// Occupied returns the union of every occupied square.
func (b *Board) Occupied() bitboard.Board {
	return b.ColorBB[piece.White] | b.ColorBB[piece.Black]
}

// Pawns, Knights, Bishops, Rooks, Queens, and King return the bitboard
// (or, for King, the single square) of a piece type for the given color.
func (b *Board) Pawns(c piece.Color) bitboard.Board   { return b.PieceBB[piece.Pawn] & b.ColorBB[c] }
func (b *Board) Knights(c piece.Color) bitboard.Board { return b.PieceBB[piece.Knight] & b.ColorBB[c] }
func (b *Board) Bishops(c piece.Color) bitboard.Board { return b.PieceBB[piece.Bishop] & b.ColorBB[c] }
func (b *Board) Rooks(c piece.Color) bitboard.Board   { return b.PieceBB[piece.Rook] & b.ColorBB[c] }
func (b *Board) Queens(c piece.Color) bitboard.Board  { return b.PieceBB[piece.Queen] & b.ColorBB[c] }
func (b *Board) King(c piece.Color) square.Square     { return b.Kings[c] }

// clearSquare removes whatever piece sits on s from every bitboard, the
// mailbox, and the Zobrist hash. s must already hold a piece; clearing
// an empty square is a BoardInvariantViolation and aborts the process.
func (b *Board) clearSquare(s square.Square) {
	p := b.Squares[s]
	if p == piece.NoPiece {
		panic(cerr.New(cerr.BoardInvariantViolation, "clearSquare: %s is already empty", s))
	}
	b.ColorBB[p.Color()].Unset(s)
	b.PieceBB[p.Type()].Unset(s)
	b.Squares[s] = piece.NoPiece
	b.Hash ^= zobrist.PieceSquare[p][s]
}

// fillSquare places p on s, updating every bitboard, the mailbox, and
// the Zobrist hash. s must already be empty; placing onto an occupied
// square is a BoardInvariantViolation and aborts the process.
func (b *Board) fillSquare(s square.Square, p piece.Piece) {
	if b.Squares[s] != piece.NoPiece {
		panic(cerr.New(cerr.BoardInvariantViolation, "fillSquare: %s is occupied by %s", s, b.Squares[s]))
	}
	b.ColorBB[p.Color()].Set(s)
	b.PieceBB[p.Type()].Set(s)
	b.Squares[s] = p
	if p.Type() == piece.King {
		b.Kings[p.Color()] = s
	}
	b.Hash ^= zobrist.PieceSquare[p][s]
}

// occupancy builds the attacks.Occupancy view the attacks package needs
// to answer IsAttacked queries, from the Board's own bitboards.
func (b *Board) occupancy() attacks.Occupancy {
	return attacks.Occupancy{
		Occupied: b.Occupied(),
		Pawns:    [piece.NColor]bitboard.Board{b.Pawns(piece.White), b.Pawns(piece.Black)},
		Knights:  [piece.NColor]bitboard.Board{b.Knights(piece.White), b.Knights(piece.Black)},
		Bishops:  [piece.NColor]bitboard.Board{b.Bishops(piece.White), b.Bishops(piece.Black)},
		Rooks:    [piece.NColor]bitboard.Board{b.Rooks(piece.White), b.Rooks(piece.Black)},
		Queens:   [piece.NColor]bitboard.Board{b.Queens(piece.White), b.Queens(piece.Black)},
		Kings:    [piece.NColor]bitboard.Board{bitboard.Of(b.Kings[piece.White]), bitboard.Of(b.Kings[piece.Black])},
	}
}

// IsAttacked reports whether s is attacked by any piece of color by.
func (b *Board) IsAttacked(s square.Square, by piece.Color) bool {
	return attacks.IsAttacked(b.occupancy(), s, by)
}

// IsInCheck reports whether c's king is currently attacked.
func (b *Board) IsInCheck(c piece.Color) bool {
	return b.IsAttacked(b.Kings[c], c.Other())
}

// Clone returns a deep copy of the Board, safe to hand to a root-parallel
// search worker; the copy shares no mutable state with the original.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// String renders the board as an 8x8 ASCII grid (rank 8 at the top)
// followed by its FEN and hash, matching the teacher's debug print.
func (b *Board) String() string {
	s := ""
	for r := square.Rank8; r >= square.Rank1; r-- {
		for f := square.FileA; f <= square.FileH; f++ {
			s += b.Squares[square.New(f, r)].String() + " "
		}
		s += "\n"
	}
	return fmt.Sprintf("%sfen: %s\nkey: %016X\n", s, b.FEN(), uint64(b.Hash))
}
