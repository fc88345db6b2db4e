package board

import (
	"github.com/corvid-chess/corvid/internal/attacks"
	"github.com/corvid-chess/corvid/internal/castling"
	"github.com/corvid-chess/corvid/internal/move"
	"github.com/corvid-chess/corvid/internal/piece"
	"github.com/corvid-chess/corvid/internal/square"
	"github.com/corvid-chess/corvid/internal/zobrist"
)

// MakeMove plays m, which must be a move generated for the current
// position (GenerateMoves also plays pseudo-legal moves through it to
// test their legality). It records enough state in
// the Board's history stack for UnmakeMove to restore the position
// exactly, including the Zobrist hash, en-passant target, castling
// rights, and halfmove clock.
func (b *Board) MakeMove(m move.Move) {
	u := &b.History[b.Ply]
	u.Move = m
	u.CastlingRights = b.CastlingRights
	u.EnPassantTarget = b.EnPassantTarget
	u.HalfmoveClock = b.HalfmoveClock
	u.Hash = b.Hash
	u.Captured = piece.NoPiece

	b.HalfmoveClock++

	from, to := m.From(), m.To()
	moving := b.Squares[from]

	if moving.Type() == piece.Pawn {
		b.HalfmoveClock = 0
	}

	if b.EnPassantTarget != square.None {
		b.Hash ^= zobrist.EnPassant[b.EnPassantTarget.File()]
	}
	b.EnPassantTarget = square.None

	switch m.Kind() {
	case move.DoublePush:
		target := from
		if b.SideToMove == piece.White {
			target += 8
		} else {
			target -= 8
		}
		if b.Pawns(b.SideToMove.Other())&attacks.Pawn[b.SideToMove][target] != 0 {
			b.EnPassantTarget = target
			b.Hash ^= zobrist.EnPassant[target.File()]
		}
		b.clearSquare(from)
		b.fillSquare(to, moving)

	case move.EnPassant:
		captureSq := to
		if b.SideToMove == piece.White {
			captureSq -= 8
		} else {
			captureSq += 8
		}
		u.Captured = b.Squares[captureSq]
		b.HalfmoveClock = 0
		b.clearSquare(captureSq)
		b.clearSquare(from)
		b.fillSquare(to, moving)

	case move.CastleKingside, move.CastleQueenside:
		b.clearSquare(from)
		b.fillSquare(to, moving)
		rook := castling.RookMoves[to]
		b.clearSquare(rook.From)
		b.fillSquare(rook.To, rook.Rook)

	case move.Capture:
		u.Captured = b.Squares[to]
		b.HalfmoveClock = 0
		b.clearSquare(to)
		b.clearSquare(from)
		b.fillSquare(to, moving)

	case move.Promotion:
		b.HalfmoveClock = 0
		b.clearSquare(from)
		b.fillSquare(to, piece.New(m.Promotion(), b.SideToMove))

	case move.PromotionCapture:
		u.Captured = b.Squares[to]
		b.HalfmoveClock = 0
		b.clearSquare(to)
		b.clearSquare(from)
		b.fillSquare(to, piece.New(m.Promotion(), b.SideToMove))

	default: // Quiet
		b.clearSquare(from)
		b.fillSquare(to, moving)
	}

	b.Hash ^= zobrist.Castling[b.CastlingRights]
	b.CastlingRights = b.CastlingRights.Clear(castling.UpdateMask(from)).Clear(castling.UpdateMask(to))
	b.Hash ^= zobrist.Castling[b.CastlingRights]

	b.Ply++
	b.SideToMove = b.SideToMove.Other()
	if b.SideToMove == piece.White {
		b.FullmoveNumber++
	}
	b.Hash ^= zobrist.SideToMove
}

// UnmakeMove reverses the most recent MakeMove call.
func (b *Board) UnmakeMove() {
	b.Ply--
	u := &b.History[b.Ply]

	b.SideToMove = b.SideToMove.Other()
	if b.SideToMove == piece.Black {
		b.FullmoveNumber--
	}

	m := u.Move
	from, to := m.From(), m.To()

	switch m.Kind() {
	case move.CastleKingside, move.CastleQueenside:
		moving := b.Squares[to]
		b.clearSquare(to)
		b.fillSquare(from, moving)
		rook := castling.RookMoves[to]
		b.clearSquare(rook.To)
		b.fillSquare(rook.From, rook.Rook)

	case move.EnPassant:
		moving := b.Squares[to]
		b.clearSquare(to)
		b.fillSquare(from, moving)
		captureSq := to
		if b.SideToMove == piece.White {
			captureSq -= 8
		} else {
			captureSq += 8
		}
		b.fillSquare(captureSq, u.Captured)

	case move.Promotion:
		b.clearSquare(to)
		b.fillSquare(from, piece.New(piece.Pawn, b.SideToMove))

	case move.PromotionCapture:
		b.clearSquare(to)
		b.fillSquare(from, piece.New(piece.Pawn, b.SideToMove))
		b.fillSquare(to, u.Captured)

	case move.Capture:
		moving := b.Squares[to]
		b.clearSquare(to)
		b.fillSquare(from, moving)
		b.fillSquare(to, u.Captured)

	default: // Quiet, DoublePush
		moving := b.Squares[to]
		b.clearSquare(to)
		b.fillSquare(from, moving)
	}

	b.CastlingRights = u.CastlingRights
	b.EnPassantTarget = u.EnPassantTarget
	b.HalfmoveClock = u.HalfmoveClock
	b.Hash = u.Hash
}
