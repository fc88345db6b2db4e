package board_test

import (
	"fmt"
	"testing"

	"github.com/corvid-chess/corvid/internal/board"
	"github.com/corvid-chess/corvid/internal/move"
)

func TestPerftStartPos(t *testing.T) {
	want := []int{1, 20, 400, 8902, 197281, 4865609}

	for depth, nodes := range want {
		depth, nodes := depth, nodes
		t.Run(fmt.Sprintf("depth=%d", depth), func(t *testing.T) {
			b := board.New()
			got := b.Perft(depth)
			if got != nodes {
				t.Errorf("perft(%d) = %d, want %d", depth, got, nodes)
			}
		})
	}
}

func TestPerftKiwipete(t *testing.T) {
	const fen = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	want := map[int]int{
		1: 48,
		2: 2039,
		3: 97862,
	}

	for depth, nodes := range want {
		depth, nodes := depth, nodes
		t.Run(fen, func(t *testing.T) {
			b, err := board.NewFromFEN(fen)
			if err != nil {
				t.Fatalf("parse fen: %v", err)
			}
			got := b.Perft(depth)
			if got != nodes {
				t.Errorf("perft(%d) = %d, want %d", depth, got, nodes)
			}
		})
	}
}

func TestPerftEnPassantPin(t *testing.T) {
	// black to move, en-passant capture would expose the black king on a4
	// to the white queen on h4 along the fourth rank: the capture must be
	// excluded by the legality filter.
	const fen = "8/8/8/8/k2Pp2Q/8/8/4K3 b - d3 0 1"
	b, err := board.NewFromFEN(fen)
	if err != nil {
		t.Fatalf("parse fen: %v", err)
	}

	for _, m := range b.GenerateMoves() {
		if m.Kind() == move.EnPassant {
			t.Errorf("en-passant capture %s should have been filtered as illegal", m)
		}
	}
}
