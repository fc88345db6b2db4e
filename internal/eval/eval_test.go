package eval_test

import (
	"testing"

	"github.com/corvid-chess/corvid/internal/board"
	"github.com/corvid-chess/corvid/internal/eval"
)

func TestPeSTOSymmetric(t *testing.T) {
	// a symmetric position should evaluate to zero for the side to move
	// regardless of color, since PeSTO scores relative to the mover.
	b := board.New()
	if got := eval.PeSTO(b); got != 0 {
		t.Errorf("PeSTO(startpos) = %d, want 0", got)
	}
}

func TestPeSTOFavorsMaterial(t *testing.T) {
	// white is up a queen; from white's perspective this must score
	// clearly positive.
	b, err := board.NewFromFEN("4k3/8/8/8/8/8/8/4KQ2 w - - 0 1")
	if err != nil {
		t.Fatalf("parse fen: %v", err)
	}
	if got := eval.PeSTO(b); got <= 0 {
		t.Errorf("PeSTO(white up a queen) = %d, want > 0", got)
	}
}

func TestEvalStringMate(t *testing.T) {
	tests := []struct {
		eval eval.Eval
		want string
	}{
		{eval.MateIn(1), "mate 1"},
		{eval.MateIn(4), "mate 2"},
		{eval.MatedIn(1), "mate -1"},
		{eval.MatedIn(2), "mate -1"},
		{eval.MatedIn(3), "mate -2"},
		{eval.Draw, "cp 0"},
		{eval.Eval(150), "cp 150"},
	}

	for _, test := range tests {
		t.Run(test.want, func(t *testing.T) {
			if got := test.eval.String(); got != test.want {
				t.Errorf("(%d).String() = %q, want %q", test.eval, got, test.want)
			}
		})
	}
}
