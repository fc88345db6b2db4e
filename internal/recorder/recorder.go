// Package recorder writes a PGN transcript of a completed play/pvp/watch
// game as a benchmark log, using gopkg.in/freeeve/pgn.v1's Game type to
// hold tags and movetext — the write-side counterpart to internal/book's
// read-side use of notnil/chess for the opening repertoire.
package recorder

import (
	"os"
	"time"

	"gopkg.in/freeeve/pgn.v1"

	"github.com/corvid-chess/corvid/internal/cerr"
)

// Recorder accumulates a single game's SAN moves and result, ready to
// be flushed to a PGN file.
type Recorder struct {
	game *pgn.Game
}

// New creates a Recorder for a game between white and black starting
// from fen.
func New(white, black, fen string) *Recorder {
	g := &pgn.Game{
		Tags: map[string]string{
			"Event": "corvid benchmark",
			"Site":  "corvid",
			"Date":  time.Now().Format("2006.01.02"),
			"Round": "1",
			"White": white,
			"Black": black,
			"FEN":   fen,
			"Result": "*",
		},
	}
	return &Recorder{game: g}
}

// Move appends one SAN move to the transcript.
func (r *Recorder) Move(san string) {
	r.game.Moves = append(r.game.Moves, san)
}

// Finish sets the game result ("1-0", "0-1", "1/2-1/2") and writes the
// PGN transcript to path.
func (r *Recorder) Finish(result, path string) error {
	r.game.Tags["Result"] = result

	f, err := os.Create(path)
	if err != nil {
		return cerr.Wrap(cerr.IOError, err, "recorder: create %s", path)
	}
	defer f.Close()

	if _, err := f.WriteString(r.game.String()); err != nil {
		return cerr.Wrap(cerr.IOError, err, "recorder: write %s", path)
	}
	return nil
}

// MoveCount returns the number of moves recorded so far.
func (r *Recorder) MoveCount() int {
	return len(r.game.Moves)
}
