// Package move declares the packed move-value type used by the board,
// search, and UCI layers.
package move

import (
	"github.com/corvid-chess/corvid/internal/piece"
	"github.com/corvid-chess/corvid/internal/square"
)

// Kind tags the semantic category of a move, used by the board to apply
// it correctly (which squares to clear/fill, whether to touch the
// en-passant target, etc.) and by search/ordering to classify it as
// tactical or quiet.
type Kind uint8

const (
	Quiet Kind = iota
	Capture
	DoublePush
	EnPassant
	CastleKingside
	CastleQueenside
	Promotion
	PromotionCapture
)

// Move is a packed chess move.
//
// Format: MSB -> LSB
// [19:17 kind][16:14 promotion type][13:7 target][6:0 source]
type Move uint32

// Null is the zero move, used as a "no move" sentinel in killer slots
// and TT entries.
const Null Move = 0

const (
	sourceWidth = 7
	targetWidth = 7
	promoWidth  = 3
	kindWidth   = 3

	sourceOffset = 0
	targetOffset = sourceOffset + sourceWidth
	promoOffset  = targetOffset + targetWidth
	kindOffset   = promoOffset + promoWidth

	sourceMask = (1 << sourceWidth) - 1
	targetMask = (1 << targetWidth) - 1
	promoMask  = (1 << promoWidth) - 1
	kindMask   = (1 << kindWidth) - 1
)

// New packs a move from its source and target squares, its kind, and
// (for promotions) the promoted-to piece type.
func New(from, to square.Square, kind Kind, promo piece.Type) Move {
	m := Move(from) << sourceOffset
	m |= Move(to) << targetOffset
	m |= Move(promo) << promoOffset
	m |= Move(kind) << kindOffset
	return m
}

// From returns the move's source square.
func (m Move) From() square.Square {
	return square.Square((m >> sourceOffset) & sourceMask)
}

// To returns the move's target square.
func (m Move) To() square.Square {
	return square.Square((m >> targetOffset) & targetMask)
}

// Promotion returns the promoted-to piece type, or piece.NoType if the
// move is not a promotion.
func (m Move) Promotion() piece.Type {
	return piece.Type((m >> promoOffset) & promoMask)
}

// Kind returns the move's kind tag.
func (m Move) Kind() Kind {
	return Kind((m >> kindOffset) & kindMask)
}

// IsCapture reports whether the move removes an enemy piece, including
// en-passant and promotion-captures.
func (m Move) IsCapture() bool {
	switch m.Kind() {
	case Capture, EnPassant, PromotionCapture:
		return true
	default:
		return false
	}
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	k := m.Kind()
	return k == Promotion || k == PromotionCapture
}

// IsCastle reports whether the move is a castling move.
func (m Move) IsCastle() bool {
	k := m.Kind()
	return k == CastleKingside || k == CastleQueenside
}

// IsQuiet reports whether the move is neither a capture nor a
// promotion — the category used for killer-move and history-heuristic
// ordering.
func (m Move) IsQuiet() bool {
	return !m.IsCapture() && !m.IsPromotion()
}

// IsTactical reports whether the move should be searched by
// quiescence: captures and promotions.
func (m Move) IsTactical() bool {
	return m.IsCapture() || m.IsPromotion()
}

// String renders the move in UCI long algebraic notation: "e2e4",
// "e7e8q" for a promotion, "e1g1" for castling kingside, or "0000" for
// the null move.
func (m Move) String() string {
	if m == Null {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		letter := m.Promotion().String()
		s += string(letter[0] + ('a' - 'A'))
	}
	return s
}
