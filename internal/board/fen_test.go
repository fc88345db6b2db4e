package board_test

import (
	"testing"

	"github.com/corvid-chess/corvid/internal/board"
)

func TestFENRoundTrip(t *testing.T) {
	tests := []string{
		board.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
		"8/8/8/8/8/8/8/k6K w - - 0 1",
	}

	for _, fen := range tests {
		fen := fen
		t.Run(fen, func(t *testing.T) {
			b, err := board.NewFromFEN(fen)
			if err != nil {
				t.Fatalf("NewFromFEN(%q) = %v", fen, err)
			}
			if got := b.FEN(); got != fen {
				t.Errorf("FEN() = %q, want %q", got, fen)
			}
		})
	}
}

func TestFENParseErrors(t *testing.T) {
	tests := map[string]string{
		"too few fields":      "8/8/8/8/8/8/8/8 w KQkq - 0",
		"too few ranks":       "8/8/8/8/8/8/8 w - - 0 1",
		"invalid side to move": "8/8/8/8/8/8/8/8 x - - 0 1",
		"invalid piece letter": "8/8/8/8/8/8/8/7z w - - 0 1",
		"rank overflow":        "44k/8/8/8/8/8/8/8 w - - 0 1",
		"invalid halfmove":     "8/8/8/8/8/8/8/8 w - - x 1",
		"invalid fullmove":     "8/8/8/8/8/8/8/8 w - - 0 x",
	}

	for name, fen := range tests {
		fen := fen
		t.Run(name, func(t *testing.T) {
			if _, err := board.NewFromFEN(fen); err == nil {
				t.Errorf("NewFromFEN(%q) = nil error, want a ParseError", fen)
			}
		})
	}
}
