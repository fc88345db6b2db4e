package board

import (
	"github.com/corvid-chess/corvid/internal/attacks"
	"github.com/corvid-chess/corvid/internal/bitboard"
	"github.com/corvid-chess/corvid/internal/castling"
	"github.com/corvid-chess/corvid/internal/move"
	"github.com/corvid-chess/corvid/internal/piece"
	"github.com/corvid-chess/corvid/internal/square"
)

// castle-path masks: squares that must be empty, and squares the king
// passes through or lands on (which must not be attacked), indexed by
// the castling right they belong to.
var castleEmptyMask = map[castling.Rights]bitboard.Board{
	castling.WhiteKingside:  bitboard.Squares[square.F1] | bitboard.Squares[square.G1],
	castling.WhiteQueenside: bitboard.Squares[square.B1] | bitboard.Squares[square.C1] | bitboard.Squares[square.D1],
	castling.BlackKingside:  bitboard.Squares[square.F8] | bitboard.Squares[square.G8],
	castling.BlackQueenside: bitboard.Squares[square.B8] | bitboard.Squares[square.C8] | bitboard.Squares[square.D8],
}

var castleKingPath = map[castling.Rights][2]square.Square{
	castling.WhiteKingside:  {square.F1, square.G1},
	castling.WhiteQueenside: {square.D1, square.C1},
	castling.BlackKingside:  {square.F8, square.G8},
	castling.BlackQueenside: {square.D8, square.C8},
}

var castleKingTarget = map[castling.Rights]square.Square{
	castling.WhiteKingside:  square.G1,
	castling.WhiteQueenside: square.C1,
	castling.BlackKingside:  square.G8,
	castling.BlackQueenside: square.C8,
}

// GenerateMoves returns every legal move for the side to move. Order is
// unspecified but deterministic. A terminal position (checkmate or
// stalemate) yields an empty slice.
func (b *Board) GenerateMoves() []move.Move {
	pseudo := b.generatePseudoLegal()

	legal := make([]move.Move, 0, len(pseudo))
	us := b.SideToMove
	for _, m := range pseudo {
		b.MakeMove(m)
		if !b.IsInCheck(us) {
			legal = append(legal, m)
		}
		b.UnmakeMove()
	}
	return legal
}

// generatePseudoLegal enumerates every move that obeys piece movement
// rules but may leave the mover's own king in check; GenerateMoves
// filters those out via apply-undo-recheck.
func (b *Board) generatePseudoLegal() []move.Move {
	us := b.SideToMove
	them := us.Other()

	friends := b.ColorBB[us]
	enemies := b.ColorBB[them]
	occ := friends | enemies
	targets := ^friends // empty or enemy-occupied

	moves := make([]move.Move, 0, 48)

	b.appendPawnMoves(&moves, us, occ, enemies)
	b.appendLeaperMoves(&moves, piece.New(piece.Knight, us), b.Knights(us), attacks.Knight[:], targets)
	b.appendLeaperMoves(&moves, piece.New(piece.King, us), single(b.King(us)), attacks.King[:], targets)
	b.appendSliderMoves(&moves, piece.New(piece.Bishop, us), b.Bishops(us), occ, targets, attacks.Bishop)
	b.appendSliderMoves(&moves, piece.New(piece.Rook, us), b.Rooks(us), occ, targets, attacks.Rook)
	b.appendSliderMoves(&moves, piece.New(piece.Queen, us), b.Queens(us), occ, targets, attacks.Queen)
	b.appendCastlingMoves(&moves, us, occ)

	return moves
}

// single returns a one-square bitboard, used to drive the king through
// the same leaper-move helper as knights.
func single(s square.Square) bitboard.Board {
	return bitboard.Of(s)
}

func (b *Board) appendLeaperMoves(moves *[]move.Move, p piece.Piece, from bitboard.Board, table []bitboard.Board, targets bitboard.Board) {
	for bb := from; bb != bitboard.Empty; {
		s := bb.Pop()
		dests := table[s] & targets
		b.emit(moves, p, s, dests)
	}
}

func (b *Board) appendSliderMoves(moves *[]move.Move, p piece.Piece, from bitboard.Board, occ, targets bitboard.Board, attackFn func(square.Square, bitboard.Board) bitboard.Board) {
	for bb := from; bb != bitboard.Empty; {
		s := bb.Pop()
		dests := attackFn(s, occ) & targets
		b.emit(moves, p, s, dests)
	}
}

// emit appends one move per set bit of dests, tagging each as Quiet or
// Capture depending on whether the enemy occupies the destination.
func (b *Board) emit(moves *[]move.Move, p piece.Piece, from square.Square, dests bitboard.Board) {
	them := p.Color().Other()
	for bb := dests; bb != bitboard.Empty; {
		to := bb.Pop()
		if b.ColorBB[them].IsSet(to) {
			*moves = append(*moves, move.New(from, to, move.Capture, piece.NoType))
		} else {
			*moves = append(*moves, move.New(from, to, move.Quiet, piece.NoType))
		}
	}
}

var promotionPieces = [4]piece.Type{piece.Queen, piece.Rook, piece.Bishop, piece.Knight}

func (b *Board) appendPawnMoves(moves *[]move.Move, us piece.Color, occ, enemies bitboard.Board) {
	promotionRank := square.Rank8
	startRank := square.Rank2
	if us == piece.Black {
		promotionRank = square.Rank1
		startRank = square.Rank7
	}

	for pawns := b.Pawns(us); pawns != bitboard.Empty; {
		from := pawns.Pop()

		push := attacks.PawnPush[us][from] &^ occ
		if push != bitboard.Empty {
			to := push.FirstSquare()
			b.appendPawnDestination(moves, us, from, to, false, promotionRank)

			if from.Rank() == startRank {
				doublePush := attacks.PawnPush[us][to] &^ occ
				if doublePush != bitboard.Empty {
					*moves = append(*moves, move.New(from, doublePush.FirstSquare(), move.DoublePush, piece.NoType))
				}
			}
		}

		captures := attacks.Pawn[us][from] & enemies
		for c := captures; c != bitboard.Empty; {
			to := c.Pop()
			b.appendPawnDestination(moves, us, from, to, true, promotionRank)
		}

		if b.EnPassantTarget != square.None && attacks.Pawn[us][from].IsSet(b.EnPassantTarget) {
			*moves = append(*moves, move.New(from, b.EnPassantTarget, move.EnPassant, piece.NoType))
		}
	}
}

func (b *Board) appendPawnDestination(moves *[]move.Move, us piece.Color, from, to square.Square, capture bool, promotionRank square.Rank) {
	if to.Rank() == promotionRank {
		kind := move.Promotion
		if capture {
			kind = move.PromotionCapture
		}
		for _, pt := range promotionPieces {
			*moves = append(*moves, move.New(from, to, kind, pt))
		}
		return
	}

	kind := move.Quiet
	if capture {
		kind = move.Capture
	}
	*moves = append(*moves, move.New(from, to, kind, piece.NoType))
}

func (b *Board) appendCastlingMoves(moves *[]move.Move, us piece.Color, occ bitboard.Board) {
	them := us.Other()
	kingSq := b.Kings[us]

	if b.IsAttacked(kingSq, them) {
		// king is in check: castling is never legal
		return
	}

	kingside, queenside := castling.Kingside(us), castling.Queenside(us)

	if b.CastlingRights.Contains(kingside) && occ&castleEmptyMask[kingside] == bitboard.Empty {
		if !b.squaresAttacked(castleKingPath[kingside], them) {
			*moves = append(*moves, move.New(kingSq, castleKingTarget[kingside], move.CastleKingside, piece.NoType))
		}
	}

	if b.CastlingRights.Contains(queenside) && occ&castleEmptyMask[queenside] == bitboard.Empty {
		if !b.squaresAttacked(castleKingPath[queenside], them) {
			*moves = append(*moves, move.New(kingSq, castleKingTarget[queenside], move.CastleQueenside, piece.NoType))
		}
	}
}

// squaresAttacked reports whether either square the king passes through
// (or lands on) during a castle is attacked.
func (b *Board) squaresAttacked(path [2]square.Square, by piece.Color) bool {
	return b.IsAttacked(path[0], by) || b.IsAttacked(path[1], by)
}
