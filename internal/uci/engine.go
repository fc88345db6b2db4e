package uci

import (
	"fmt"
	"io"
	"sync"

	"github.com/corvid-chess/corvid/internal/board"
	"github.com/corvid-chess/corvid/internal/search"
)

// EngineVersion identifies this engine to a GUI in response to "uci".
const EngineVersion = "0.1.0"

// Engine bundles the mutable state a UCI session drives: the current
// position and the search engine acting on it.
type Engine struct {
	mu        sync.Mutex
	board     *board.Board
	search    *search.Engine
	searching bool
}

// NewEngine creates an Engine starting from the initial position with a
// transposition table sized to ttMegabytes.
func NewEngine(ttMegabytes int) *Engine {
	return &Engine{
		board:  board.New(),
		search: search.NewEngine(ttMegabytes),
	}
}

// NewClientWith builds a Client reading from in and writing to out,
// with e's commands registered alongside the protocol defaults.
func NewClientWith(e *Engine, in io.Reader, out io.Writer) Client {
	c := NewClient(in, out)
	c.AddCommand(cmdUCI)
	c.AddCommand(cmdUCINewGame(e))
	c.AddCommand(cmdPosition(e))
	c.AddCommand(cmdGo(e))
	c.AddCommand(cmdStop(e))
	c.AddCommand(cmdSetOption(e))
	return c
}

var cmdUCI = Command{
	Name: "uci",
	Run: func(i Interaction) error {
		i.Replyf("id name Corvid %s", EngineVersion)
		i.Reply("id author corvid-chess")
		i.Reply("uciok")
		return nil
	},
}

func cmdUCINewGame(e *Engine) Command {
	return Command{
		Name: "ucinewgame",
		Run: func(i Interaction) error {
			e.mu.Lock()
			defer e.mu.Unlock()
			e.search.NewGame()
			return nil
		},
	}
}

// formatInfo renders one iterative-deepening iteration as a UCI "info"
// line.
func formatInfo(info search.Info) string {
	return fmt.Sprintf("info depth %d score %s nodes %d time %d pv %s",
		info.Depth, info.Score, info.Nodes, info.Time.Milliseconds(), info.PV)
}
