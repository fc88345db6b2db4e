package uci

import (
	"fmt"
	"io"

	"github.com/corvid-chess/corvid/internal/uciflag"
)

// NewSchema initializes an empty command Schema writing replies to w.
func NewSchema(w io.Writer) Schema {
	return Schema{replyWriter: w, commands: make(map[string]Command)}
}

// Schema holds the set of commands a Client understands.
type Schema struct {
	replyWriter io.Writer
	commands    map[string]Command
}

// Add registers c under its own name.
func (s *Schema) Add(c Command) { s.commands[c.Name] = c }

// Get looks up a command by name.
func (s *Schema) Get(name string) (Command, bool) {
	c, found := s.commands[name]
	return c, found
}

// Command is the schema of one GUI-to-engine command. Run must return
// promptly so the REPL can keep reading; "go" launches the actual
// search in its own goroutine and replies with "bestmove" when it ends.
type Command struct {
	Name string

	Run   func(Interaction) error
	Flags uciflag.Schema
}

// RunWith parses args against the command's flag schema and calls Run.
func (c Command) RunWith(args []string, schema Schema) error {
	values, err := c.Flags.Parse(args)
	if err != nil {
		return err
	}
	return c.Run(Interaction{stdout: schema.replyWriter, Command: c, Values: values})
}

// Interaction carries everything a command's Run function needs to
// read its arguments and reply to the GUI.
type Interaction struct {
	stdout io.Writer

	Command
	Values uciflag.Values
}

// Reply writes a line to the GUI, like fmt.Println.
func (i *Interaction) Reply(a ...any) { fmt.Fprintln(i.stdout, a...) }

// Replyf writes a formatted, newline-terminated line to the GUI.
func (i *Interaction) Replyf(format string, a ...any) { fmt.Fprintf(i.stdout, format+"\n", a...) }
