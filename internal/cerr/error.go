// Package cerr declares the typed error kinds the rest of the module
// returns, grounded on the teacher's plain errors.New/fmt.Errorf idiom
// (pkg/uci/uci.go's errQuit, pkg/board/fen.go's parse errors) but given
// a small Kind so callers upstream (UCI, CLI) can tell a recoverable
// parse mistake from a fatal invariant break without string matching.
package cerr

import "fmt"

// Kind classifies an error by how its caller should respond to it.
type Kind uint8

const (
	// ParseError covers malformed FEN, algebraic move, or UCI command
	// text; recoverable, surfaced to the caller.
	ParseError Kind = iota
	// IllegalMove covers a move that is not in the legal-move list from
	// the current position; recoverable, surfaced to the caller.
	IllegalMove
	// BoardInvariantViolation covers placing a piece on an occupied
	// square or removing one from an empty square; indicates a bug and
	// is fatal.
	BoardInvariantViolation
	// SearchError covers no legal moves at the search root. A search
	// depth below 1 is not an error: search.Limits reads a depth of 0
	// or less as no depth bound.
	SearchError
	// IOError covers subprocess, stdin/stdout, or file I/O failures in
	// the UCI, Stockfish, book, and recorder collaborators.
	IOError
)

func (k Kind) String() string {
	switch k {
	case ParseError:
		return "parse error"
	case IllegalMove:
		return "illegal move"
	case BoardInvariantViolation:
		return "board invariant violation"
	case SearchError:
		return "search error"
	case IOError:
		return "io error"
	default:
		return "error"
	}
}

// Error is a typed error carrying a Kind and an optional wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Fatal reports whether an error of this kind must abort the process
// rather than be surfaced to a caller; only BoardInvariantViolation is
// fatal under spec's propagation policy.
func (k Kind) Fatal() bool { return k == BoardInvariantViolation }

// New creates an *Error of the given kind with a formatted message.
func New(k Kind, format string, a ...any) *Error {
	return &Error{Kind: k, Message: fmt.Sprintf(format, a...)}
}

// Wrap creates an *Error of the given kind wrapping cause.
func Wrap(k Kind, cause error, format string, a ...any) *Error {
	return &Error{Kind: k, Message: fmt.Sprintf(format, a...), Cause: cause}
}
