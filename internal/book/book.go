// Package book loads an opening repertoire from a PGN database and
// serves the book moves known for a given sequence of played moves.
// No CLI command loads a book: play, pvp and watch take every engine
// move from the search. Parsing uses github.com/notnil/chess,
// which already knows how to walk SAN movetext into squares.
package book

import (
	"io"
	"strings"

	"github.com/notnil/chess"

	"github.com/corvid-chess/corvid/internal/cerr"
)

// Book maps a space-separated prefix of UCI moves played so far to the
// set of UCI moves seen continuing that line in the repertoire.
type Book struct {
	lines map[string][]string
}

// Load reads every game in the PGN database r and indexes each game's
// move prefixes. A database is a concatenation of PGN games; each call
// to chess.NewGame with the same decoder consumes the next one, so
// Load keeps decoding until the reader is exhausted.
func Load(r io.Reader) (*Book, error) {
	decoder, err := chess.PGN(r)
	if err != nil {
		return nil, cerr.Wrap(cerr.ParseError, err, "book: malformed PGN database")
	}

	b := &Book{lines: make(map[string][]string)}

	for {
		game := chess.NewGame(decoder)
		if len(game.Moves()) == 0 {
			break
		}
		b.index(game)
	}

	return b, nil
}

// index walks one game's move list, recording every move as a
// continuation of the UCI-move prefix that precedes it.
func (b *Book) index(game *chess.Game) {
	moves := game.Moves()
	prefix := ""

	for _, m := range moves {
		uci := m.S1().String() + m.S2().String()
		if promo := m.Promo(); promo != chess.NoPieceType {
			uci += strings.ToLower(promo.String())
		}

		b.lines[prefix] = appendUnique(b.lines[prefix], uci)
		if prefix == "" {
			prefix = uci
		} else {
			prefix = prefix + " " + uci
		}
	}
}

func appendUnique(moves []string, m string) []string {
	for _, existing := range moves {
		if existing == m {
			return moves
		}
	}
	return append(moves, m)
}

// Moves returns the book continuations known for the given sequence of
// UCI moves played so far (space-separated, possibly empty for the
// starting position), or nil if the line isn't in the book.
func (b *Book) Moves(played string) []string {
	return b.lines[played]
}
