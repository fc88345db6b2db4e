// Package tui renders a board.Board to the terminal for the watch and
// pvp CLI commands, using the teacher's own terminal stack: termui for
// the widget/event loop, colorstring for status-line color codes, go-wordwrap
// for status-line wrapping, and go-runewidth to measure the unicode
// piece glyphs it draws.
package tui

import (
	"strings"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	"github.com/mattn/go-runewidth"
	"github.com/mitchellh/colorstring"
	"github.com/mitchellh/go-wordwrap"

	"github.com/corvid-chess/corvid/internal/board"
	"github.com/corvid-chess/corvid/internal/piece"
	"github.com/corvid-chess/corvid/internal/square"
)

var glyphs = map[piece.Piece]string{
	piece.WhiteKing: "♔", piece.WhiteQueen: "♕", piece.WhiteRook: "♖",
	piece.WhiteBishop: "♗", piece.WhiteKnight: "♘", piece.WhitePawn: "♙",
	piece.BlackKing: "♚", piece.BlackQueen: "♛", piece.BlackRook: "♜",
	piece.BlackBishop: "♝", piece.BlackKnight: "♞", piece.BlackPawn: "♟",
}

// Screen owns the termui widgets used to draw one game: the board
// itself and a status line below it.
type Screen struct {
	boardPanel  *widgets.Paragraph
	statusPanel *widgets.Paragraph
}

// Open initializes the terminal for drawing. Callers must call Close
// before the process exits.
func Open() (*Screen, error) {
	if err := ui.Init(); err != nil {
		return nil, err
	}

	boardPanel := widgets.NewParagraph()
	boardPanel.Title = "corvid"
	boardPanel.SetRect(0, 0, 25, 11)

	statusPanel := widgets.NewParagraph()
	statusPanel.Title = "status"
	statusPanel.SetRect(0, 11, 50, 16)

	return &Screen{boardPanel: boardPanel, statusPanel: statusPanel}, nil
}

// Close releases the terminal.
func (s *Screen) Close() { ui.Close() }

// Draw renders b and a status message.
func (s *Screen) Draw(b *board.Board, status string) {
	s.boardPanel.Text = renderBoard(b)
	s.statusPanel.Text = wordwrap.WrapString(colorstring.Color(status), 48)
	ui.Render(s.boardPanel, s.statusPanel)
}

// WaitKey blocks until the user presses a key or 'q', returning the id
// of whichever key was pressed.
func (s *Screen) WaitKey() string {
	for e := range ui.PollEvents() {
		if e.Type == ui.KeyboardEvent {
			return e.ID
		}
	}
	return ""
}

// renderBoard draws an 8x8 grid, rank 8 at the top, using unicode piece
// glyphs padded to a fixed cell width with go-runewidth so files line
// up regardless of how wide a terminal renders each glyph.
func renderBoard(b *board.Board) string {
	var sb strings.Builder

	for r := square.Rank8; r >= square.Rank1; r-- {
		for f := square.FileA; f <= square.FileH; f++ {
			p := b.Squares[square.New(f, r)]
			cell := "."
			if glyph, ok := glyphs[p]; ok {
				cell = glyph
			}
			sb.WriteString(padCell(cell))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// padCell right-pads cell with spaces to a fixed display width of 2,
// accounting for glyphs whose rune width isn't 1.
func padCell(cell string) string {
	width := runewidth.StringWidth(cell)
	if width >= 2 {
		return cell
	}
	return cell + strings.Repeat(" ", 2-width)
}
