package uci

import "github.com/corvid-chess/corvid/internal/cerr"

// cmdStop implements "stop": it asks an in-progress search to return
// its best move at the last fully completed depth as soon as possible.
func cmdStop(e *Engine) Command {
	return Command{
		Name: "stop",
		Run: func(i Interaction) error {
			e.mu.Lock()
			searching := e.searching
			e.mu.Unlock()

			if !searching {
				return cerr.New(cerr.SearchError, "stop: no search in progress")
			}

			e.search.Stop()
			return nil
		},
	}
}
