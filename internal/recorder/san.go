package recorder

import (
	"strings"

	"github.com/corvid-chess/corvid/internal/board"
	"github.com/corvid-chess/corvid/internal/move"
	"github.com/corvid-chess/corvid/internal/piece"
)

// SAN renders m, played on b (before it is made), in standard algebraic
// notation: disambiguating file/rank only when another legal move of
// the same piece type shares m's destination square, and appending
// "+"/"#" for check/checkmate after the move is played.
func SAN(b *board.Board, m move.Move) string {
	if m.IsCastle() {
		san := "O-O"
		if m.Kind() == move.CastleQueenside {
			san = "O-O-O"
		}
		return san + suffix(b, m)
	}

	moving := b.Squares[m.From()]
	var sb strings.Builder

	if moving.Type() != piece.Pawn {
		sb.WriteString(moving.Type().String())
		sb.WriteString(disambiguate(b, m, moving))
	} else if m.IsCapture() {
		sb.WriteString(m.From().String()[:1])
	}

	if m.IsCapture() {
		sb.WriteByte('x')
	}

	sb.WriteString(m.To().String())

	if m.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteString(m.Promotion().String())
	}

	sb.WriteString(suffix(b, m))

	return sb.String()
}

// disambiguate returns the file, rank, or both needed to distinguish m
// from another legal move of the same piece type landing on the same
// square, or "" if none is needed.
func disambiguate(b *board.Board, m move.Move, moving piece.Piece) string {
	var ambiguous, sameFile, sameRank bool
	for _, other := range b.GenerateMoves() {
		if other == m || other.To() != m.To() {
			continue
		}
		if b.Squares[other.From()] != moving {
			continue
		}
		ambiguous = true
		if other.From().File() == m.From().File() {
			sameFile = true
		}
		if other.From().Rank() == m.From().Rank() {
			sameRank = true
		}
	}

	if !ambiguous {
		return ""
	}

	from := m.From().String()
	switch {
	case sameFile && sameRank:
		return from
	case sameFile:
		// sharing a file: the rank alone distinguishes the two moves.
		return from[1:]
	case sameRank:
		// sharing a rank: the file alone distinguishes the two moves.
		return from[:1]
	default:
		// ambiguous but sharing neither file nor rank: file suffices.
		return from[:1]
	}
}

// suffix plays m on a scratch clone of b and reports the resulting
// check/checkmate annotation.
func suffix(b *board.Board, m move.Move) string {
	clone := b.Clone()
	clone.MakeMove(m)

	if !clone.IsInCheck(clone.SideToMove) {
		return ""
	}
	if len(clone.GenerateMoves()) == 0 {
		return "#"
	}
	return "+"
}
