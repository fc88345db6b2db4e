package uci

import (
	"strings"

	"github.com/corvid-chess/corvid/internal/board"
	"github.com/corvid-chess/corvid/internal/cerr"
	"github.com/corvid-chess/corvid/internal/uciflag"
)

// cmdPosition implements "position (startpos | fen <FEN>) [moves <m>...]".
func cmdPosition(e *Engine) Command {
	schema := uciflag.NewSchema()
	schema.Button("startpos")
	schema.Array("fen", 6)
	schema.Variadic("moves")

	return Command{
		Name: "position",
		Run: func(i Interaction) error {
			b, err := parsePosition(i.Values)
			if err != nil {
				return err
			}

			e.mu.Lock()
			e.board = b
			e.mu.Unlock()
			return nil
		},
		Flags: schema,
	}
}

func parsePosition(values uciflag.Values) (*board.Board, error) {
	var b *board.Board

	switch {
	case values["startpos"].Set && values["fen"].Set:
		return nil, cerr.New(cerr.ParseError, "position: both startpos and fen given")

	case values["startpos"].Set:
		b = board.New()

	case values["fen"].Set:
		fields, _ := values["fen"].Value.([]string)
		var err error
		b, err = board.NewFromFEN(strings.Join(fields, " "))
		if err != nil {
			return nil, err
		}

	default:
		return nil, cerr.New(cerr.ParseError, "position: neither startpos nor fen given")
	}

	if values["moves"].Set {
		moves, _ := values["moves"].Value.([]string)
		for _, uci := range moves {
			m, ok := findMove(b, uci)
			if !ok {
				return nil, cerr.New(cerr.IllegalMove, "position: %s is not legal here", uci)
			}
			b.MakeMove(m)
		}
	}

	return b, nil
}
