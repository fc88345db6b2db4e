// Package uci implements the Universal Chess Interface protocol: a
// line-oriented stdin/stdout REPL dispatching to a schema of named
// commands, grounded on the teacher's pkg/uci (Client/Schema/Command)
// but wired to this module's board.Board and search.Engine instead of
// the teacher's own types.
package uci

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/corvid-chess/corvid/internal/cerr"
)

var errQuit = errors.New("uci: quit")

// NewClient creates a Client reading commands from in and writing
// replies to out, with the default isready/quit commands registered.
func NewClient(in io.Reader, out io.Writer) Client {
	c := Client{stdin: in, stdout: out}
	c.commands = NewSchema(c.stdout)
	c.AddCommand(cmdQuit)
	c.AddCommand(cmdIsReady)
	return c
}

// Client is a UCI engine's side of the protocol: a reader, a writer,
// and the schema of commands it understands.
type Client struct {
	stdin  io.Reader
	stdout io.Writer

	commands Schema
}

// AddCommand registers a command with the client.
func (c *Client) AddCommand(cmd Command) { c.commands.Add(cmd) }

// Start runs the read-eval-print loop until the GUI sends "quit" or
// the input stream closes.
func (c *Client) Start() error {
	reader := bufio.NewReader(c.stdin)

	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}

		switch err := c.RunWith(args); {
		case err == nil:
		case errors.Is(err, errQuit):
			return nil
		default:
			c.ReplyError(err)
		}
	}
}

// Run executes args as a single command.
func (c *Client) Run(args ...string) error { return c.RunWith(args) }

// RunWith looks up args[0] as a command name and runs it with the
// remaining arguments.
func (c *Client) RunWith(args []string) error {
	name, rest := args[0], args[1:]

	cmd, found := c.commands.Get(name)
	if !found {
		return cerr.New(cerr.ParseError, "%s: command not found", name)
	}

	return cmd.RunWith(rest, c.commands)
}

// Println acts as fmt.Println on the client's stdout.
func (c *Client) Println(a ...any) (int, error) { return fmt.Fprintln(c.stdout, a...) }

// ReplyError reports a recoverable command error (ParseError,
// IllegalMove, and the like) as a UCI "info string" line, the only
// reply shape a GUI will pass through to its log rather than choke on.
func (c *Client) ReplyError(err error) (int, error) {
	return fmt.Fprintf(c.stdout, "info string %s\n", err)
}
