package board_test

import (
	"testing"

	"github.com/corvid-chess/corvid/internal/board"
	"github.com/corvid-chess/corvid/internal/piece"
	"github.com/corvid-chess/corvid/internal/square"
)

func TestNullMoveRestoresState(t *testing.T) {
	b := board.New()
	before := *b

	saved := b.MakeNullMove()
	if b.SideToMove != piece.Black {
		t.Errorf("MakeNullMove() side to move = %s, want %s", b.SideToMove, piece.Black)
	}

	b.UnmakeNullMove(saved)
	if *b != before {
		t.Errorf("UnmakeNullMove() did not restore the board bit-for-bit")
	}
}

func TestNullMoveClearsEnPassant(t *testing.T) {
	b, err := board.NewFromFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	if err != nil {
		t.Fatalf("parse fen: %v", err)
	}
	before := *b

	saved := b.MakeNullMove()
	if b.EnPassantTarget != square.None {
		t.Errorf("MakeNullMove() en passant target = %s, want cleared", b.EnPassantTarget)
	}

	b.UnmakeNullMove(saved)
	if *b != before {
		t.Errorf("UnmakeNullMove() did not restore the en passant target and hash")
	}
}
