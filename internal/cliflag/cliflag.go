// Package cliflag provides the shared --depth/--fen flag set every
// corvid subcommand accepts, a thin wrapper over stdlib flag in the
// same spirit as the teacher's own pkg/uci/flag wraps nothing but is
// built for the same reason: one schema, reused per command.
package cliflag

import (
	"flag"

	"github.com/corvid-chess/corvid/internal/board"
)

// Common holds the flags shared by every corvid subcommand.
type Common struct {
	Depth int
	FEN   string

	set *flag.FlagSet
}

// NewCommon creates a FlagSet named name with --depth and --fen
// registered, ready for Parse.
func NewCommon(name string) *Common {
	c := &Common{set: flag.NewFlagSet(name, flag.ExitOnError)}
	c.set.IntVar(&c.Depth, "depth", 6, "search depth in plies")
	c.set.StringVar(&c.FEN, "fen", board.StartFEN, "FEN of the position to use")
	return c
}

// Parse parses args (normally os.Args[2:], after the subcommand name).
func (c *Common) Parse(args []string) error {
	return c.set.Parse(args)
}

// Board parses the --fen flag into a Board.
func (c *Common) Board() (*board.Board, error) {
	return board.NewFromFEN(c.FEN)
}
