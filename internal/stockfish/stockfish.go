// Package stockfish drives an external Stockfish binary over its own
// UCI stdin/stdout, used by the determine-stockfish-elo CLI command to
// calibrate this engine's strength against a known reference.
package stockfish

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/corvid-chess/corvid/internal/cerr"
)

// Process wraps a running Stockfish subprocess.
type Process struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *bufio.Scanner
}

// Start launches the binary at path and performs the "uci"/"uciok"
// handshake.
func Start(path string) (*Process, error) {
	cmd := exec.Command(path)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, cerr.Wrap(cerr.IOError, err, "stockfish: open stdin")
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, cerr.Wrap(cerr.IOError, err, "stockfish: open stdout")
	}

	if err := cmd.Start(); err != nil {
		return nil, cerr.Wrap(cerr.IOError, err, "stockfish: start %s", path)
	}

	p := &Process{cmd: cmd, stdin: stdin, stdout: bufio.NewScanner(stdout)}

	if err := p.send("uci"); err != nil {
		return nil, err
	}
	if err := p.waitFor("uciok", 5*time.Second); err != nil {
		return nil, err
	}

	return p, nil
}

// Close asks Stockfish to quit and releases the subprocess.
func (p *Process) Close() error {
	p.send("quit")
	p.stdin.Close()
	return p.cmd.Wait()
}

func (p *Process) send(line string) error {
	_, err := fmt.Fprintln(p.stdin, line)
	if err != nil {
		return cerr.Wrap(cerr.IOError, err, "stockfish: write %q", line)
	}
	return nil
}

// waitFor reads lines until one equals token, or timeout elapses.
func (p *Process) waitFor(token string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if !p.stdout.Scan() {
			return cerr.New(cerr.IOError, "stockfish: stdout closed waiting for %q", token)
		}
		if strings.TrimSpace(p.stdout.Text()) == token {
			return nil
		}
	}
	return cerr.New(cerr.IOError, "stockfish: timed out waiting for %q", token)
}

// BestMove asks Stockfish for its best move from fen, searching to
// movetime milliseconds, and returns the move in UCI long algebraic
// notation.
func (p *Process) BestMove(fen string, movetimeMS int) (string, error) {
	if err := p.send("position fen " + fen); err != nil {
		return "", err
	}
	if err := p.send(fmt.Sprintf("go movetime %d", movetimeMS)); err != nil {
		return "", err
	}

	deadline := time.Now().Add(time.Duration(movetimeMS)*time.Millisecond + 5*time.Second)
	for time.Now().Before(deadline) {
		if !p.stdout.Scan() {
			return "", cerr.New(cerr.IOError, "stockfish: stdout closed waiting for bestmove")
		}
		line := strings.TrimSpace(p.stdout.Text())
		if strings.HasPrefix(line, "bestmove ") {
			fields := strings.Fields(line)
			if len(fields) < 2 {
				return "", cerr.New(cerr.ParseError, "stockfish: malformed bestmove line %q", line)
			}
			return fields[1], nil
		}
	}

	return "", cerr.New(cerr.IOError, "stockfish: timed out waiting for bestmove")
}

// SetSkillLevel configures Stockfish's "Skill Level" option (0-20), the
// standard way to weaken it for calibration games against a non-master
// engine.
func (p *Process) SetSkillLevel(level int) error {
	return p.send(fmt.Sprintf("setoption name Skill Level value %d", level))
}
