// Package game detects terminal chess outcomes: checkmate, stalemate,
// the fifty-move rule, threefold repetition, and insufficient mating
// material.
package game

import (
	"github.com/corvid-chess/corvid/internal/board"
	"github.com/corvid-chess/corvid/internal/move"
)

// Outcome is the result of a position, or InProgress if the game has
// not yet ended.
type Outcome uint8

const (
	InProgress Outcome = iota
	Checkmate
	Stalemate
	FiftyMoveRule
	ThreefoldRepetition
	InsufficientMaterial
)

// String names the outcome the way a UCI "info string" or PGN result
// comment would.
func (o Outcome) String() string {
	switch o {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case FiftyMoveRule:
		return "fifty-move rule"
	case ThreefoldRepetition:
		return "threefold repetition"
	case InsufficientMaterial:
		return "insufficient material"
	default:
		return "in progress"
	}
}

// IsDecisive reports whether the outcome ends the game with a winner,
// as opposed to a draw or no result at all.
func (o Outcome) IsDecisive() bool {
	return o == Checkmate
}

// IsDraw reports whether the outcome ends the game without a winner.
func (o Outcome) IsDraw() bool {
	switch o {
	case Stalemate, FiftyMoveRule, ThreefoldRepetition, InsufficientMaterial:
		return true
	default:
		return false
	}
}

// Detect evaluates b and returns its terminal outcome, or InProgress if
// none applies. moves must be the result of b.GenerateMoves() for the
// current position; it is passed in rather than recomputed, since the
// caller (search or the game loop) has almost always already generated
// it.
func Detect(b *board.Board, moves []move.Move) Outcome {
	if len(moves) == 0 {
		if b.IsInCheck(b.SideToMove) {
			return Checkmate
		}
		return Stalemate
	}

	if b.HalfmoveClock >= 100 {
		return FiftyMoveRule
	}

	if IsThreefoldRepetition(b) {
		return ThreefoldRepetition
	}

	if IsInsufficientMaterial(b) {
		return InsufficientMaterial
	}

	return InProgress
}
