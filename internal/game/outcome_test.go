package game_test

import (
	"testing"

	"github.com/corvid-chess/corvid/internal/board"
	"github.com/corvid-chess/corvid/internal/game"
	"github.com/corvid-chess/corvid/internal/move"
)

func TestDetectStalemate(t *testing.T) {
	b, err := board.NewFromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatalf("parse fen: %v", err)
	}
	if got := game.Detect(b, b.GenerateMoves()); got != game.Stalemate {
		t.Errorf("Detect() = %v, want Stalemate", got)
	}
}

func TestDetectCheckmate(t *testing.T) {
	// back-rank mate
	b, err := board.NewFromFEN("6k1/5ppp/8/8/8/8/8/R3K3 w - - 0 1")
	if err != nil {
		t.Fatalf("parse fen: %v", err)
	}
	b.MakeMove(mustFindMove(t, b, "a1a8"))
	if got := game.Detect(b, b.GenerateMoves()); got != game.Checkmate {
		t.Errorf("Detect() = %v, want Checkmate", got)
	}
}

func TestDetectThreefoldRepetition(t *testing.T) {
	b := board.New()
	moves := []string{"g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6", "f3g1", "f6g8"}
	for _, uci := range moves {
		b.MakeMove(mustFindMove(t, b, uci))
	}
	if got := game.Detect(b, b.GenerateMoves()); got != game.ThreefoldRepetition {
		t.Errorf("Detect() = %v, want ThreefoldRepetition", got)
	}
}

func TestIsInsufficientMaterial(t *testing.T) {
	tests := []struct {
		fen  string
		want bool
	}{
		{"8/8/4k3/8/8/3K4/8/8 w - - 0 1", true},            // bare kings
		{"8/8/4k3/8/8/3KN3/8/8 w - - 0 1", true},           // king+knight vs king
		{"8/8/4k3/8/8/3KB3/8/8 w - - 0 1", true},           // king+bishop vs king
		{"6k1/8/8/8/8/b7/8/2B3K1 w - - 0 1", true},         // same-colored bishops
		{"6k1/8/8/8/8/8/b7/2B3K1 w - - 0 1", false},        // opposite-colored bishops
		{"8/8/4k3/8/8/3KR3/8/8 w - - 0 1", false},          // rook is sufficient
		{"rnbqkbnr/8/8/8/8/8/8/RNBQKBNR w - - 0 1", false}, // full material
	}

	for _, test := range tests {
		t.Run(test.fen, func(t *testing.T) {
			b, err := board.NewFromFEN(test.fen)
			if err != nil {
				t.Fatalf("parse fen: %v", err)
			}
			if got := game.IsInsufficientMaterial(b); got != test.want {
				t.Errorf("IsInsufficientMaterial(%q) = %v, want %v", test.fen, got, test.want)
			}
		})
	}
}

func mustFindMove(t *testing.T, b *board.Board, uci string) move.Move {
	t.Helper()
	for _, mv := range b.GenerateMoves() {
		if mv.String() == uci {
			return mv
		}
	}
	t.Fatalf("move %s not found among legal moves", uci)
	return move.Null
}
