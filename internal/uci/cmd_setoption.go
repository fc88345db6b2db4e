package uci

import (
	"strconv"

	"github.com/corvid-chess/corvid/internal/cerr"
	"github.com/corvid-chess/corvid/internal/search"
	"github.com/corvid-chess/corvid/internal/uciflag"
)

// cmdSetOption implements "setoption name <N> [value <V>]", supporting
// the two options this engine exposes: Hash (transposition table size
// in MB) and Threads (root-parallel worker count).
func cmdSetOption(e *Engine) Command {
	schema := uciflag.NewSchema()
	schema.Single("name")
	schema.Variadic("value")

	return Command{
		Name: "setoption",
		Run: func(i Interaction) error {
			name, ok := i.Values["name"].Value.(string)
			if !ok {
				return cerr.New(cerr.ParseError, "setoption: name flag not found")
			}

			var value string
			if v, ok := i.Values["value"].Value.([]string); ok && len(v) > 0 {
				value = v[0]
			}

			e.mu.Lock()
			defer e.mu.Unlock()

			switch name {
			case "Hash":
				mb, err := strconv.Atoi(value)
				if err != nil {
					return cerr.New(cerr.ParseError, "setoption: Hash requires an integer value")
				}
				e.search = search.NewEngine(mb)

			case "Threads":
				n, err := strconv.Atoi(value)
				if err != nil {
					return cerr.New(cerr.ParseError, "setoption: Threads requires an integer value")
				}
				e.search.Workers = n

			default:
				return cerr.New(cerr.ParseError, "setoption: unknown option %s", name)
			}

			return nil
		},
		Flags: schema,
	}
}
