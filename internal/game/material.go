package game

import (
	"github.com/corvid-chess/corvid/internal/board"
	"github.com/corvid-chess/corvid/internal/piece"
)

// IsInsufficientMaterial reports whether neither side has enough force
// left to deliver checkmate even with maximally cooperative play. Only
// the four drawn-by-rule combinations are recognized: bare king versus
// bare king, king and a single knight versus bare king, king and a
// single bishop versus bare king, and king and a bishop versus king and
// a same-colored-square bishop.
func IsInsufficientMaterial(b *board.Board) bool {
	if b.Pawns(piece.White) != 0 || b.Pawns(piece.Black) != 0 {
		return false
	}
	if b.Rooks(piece.White) != 0 || b.Rooks(piece.Black) != 0 {
		return false
	}
	if b.Queens(piece.White) != 0 || b.Queens(piece.Black) != 0 {
		return false
	}

	wn, bn := b.Knights(piece.White).Count(), b.Knights(piece.Black).Count()
	wb, bb := b.Bishops(piece.White).Count(), b.Bishops(piece.Black).Count()

	switch {
	case wn+bn+wb+bb == 0:
		return true // bare king vs bare king

	case wn+wb+bn+bb == 1:
		return true // lone knight or bishop vs bare king

	case wb == 1 && bb == 1 && wn == 0 && bn == 0:
		return sameBishopColor(b)

	default:
		return false
	}
}

// sameBishopColor reports whether the sole white bishop and the sole
// black bishop stand on same-colored squares, the one king+bishop vs
// king+bishop case that is still a dead draw.
func sameBishopColor(b *board.Board) bool {
	white := b.Bishops(piece.White).FirstSquare()
	black := b.Bishops(piece.Black).FirstSquare()
	whiteSquareColor := (int(white.File()) + int(white.Rank())) % 2
	blackSquareColor := (int(black.File()) + int(black.Rank())) % 2
	return whiteSquareColor == blackSquareColor
}
