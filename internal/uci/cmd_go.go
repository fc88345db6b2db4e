package uci

import (
	"strconv"
	"time"

	"github.com/corvid-chess/corvid/internal/cerr"
	"github.com/corvid-chess/corvid/internal/search"
	"github.com/corvid-chess/corvid/internal/uciflag"
)

// cmdGo implements "go [depth N] [movetime MS] [infinite]". searchmoves
// and the wtime/btime/winc/binc/movestogo time-control family are out of
// scope: the CLI and UCI surfaces here only ever drive fixed-depth or
// fixed-movetime searches.
func cmdGo(e *Engine) Command {
	schema := uciflag.NewSchema()
	schema.Single("depth")
	schema.Single("movetime")
	schema.Button("infinite")

	return Command{
		Name: "go",
		Run: func(i Interaction) error {
			e.mu.Lock()
			if e.searching {
				e.mu.Unlock()
				return cerr.New(cerr.SearchError, "go: search already in progress")
			}

			limits, err := parseGoLimits(i.Values)
			if err != nil {
				e.mu.Unlock()
				return err
			}

			b := e.board
			e.searching = true
			e.search.OnInfo = func(info search.Info) {
				i.Reply(formatInfo(info))
			}
			e.mu.Unlock()

			go func() {
				defer func() {
					e.mu.Lock()
					e.searching = false
					e.mu.Unlock()
				}()

				pv, _, err := e.search.Search(b, limits)
				if err != nil {
					i.Replyf("info string %s", err)
					return
				}
				i.Replyf("bestmove %s", pv.First())
			}()

			return nil
		},
		Flags: schema,
	}
}

func parseGoLimits(values uciflag.Values) (search.Limits, error) {
	var limits search.Limits

	if depth := values["depth"]; depth.Set {
		d, err := strconv.Atoi(depth.Value.(string))
		if err != nil {
			return limits, cerr.New(cerr.ParseError, "go: invalid depth")
		}
		limits.Depth = d
	}

	if mt := values["movetime"]; mt.Set {
		ms, err := strconv.Atoi(mt.Value.(string))
		if err != nil {
			return limits, cerr.New(cerr.ParseError, "go: invalid movetime")
		}
		limits.Movetime = time.Duration(ms) * time.Millisecond
	}

	if values["infinite"].Set {
		limits.Infinite = true
	}

	return limits, nil
}
