package errors

import (
	"fmt"
	"strings"
)

// Kind is one of the exhaustive error kinds a Parser or edit pass can
// report.
type Kind int

const (
	KindUnspecified Kind = iota
	KindUnparseableLine
	KindIOError
	KindBufferTooSmall
	KindInvalidArgument
	KindEditFailed
	KindExpectedInt
	KindNotFound
)

// String returns the kind's name exactly as it appears in CLI error output
// (`<binary>: <file>: <kind>: <message>`).
func (k Kind) String() string {
	switch k {
	case KindUnparseableLine:
		return "UnparseableLine"
	case KindIOError:
		return "IOError"
	case KindBufferTooSmall:
		return "BufferTooSmall"
	case KindInvalidArgument:
		return "InvalidArgument"
	case KindEditFailed:
		return "EditFailed"
	case KindExpectedInt:
		return "ExpectedInt"
	case KindNotFound:
		return "NotFound"
	default:
		return "UnspecifiedError"
	}
}

// LineError pairs a 1-based source line number with a message. It is the
// unit SyntaxError accumulates.
type LineError struct {
	Line    int
	Message string
}

// SyntaxError collects every UnparseableLine failure a single Parser run
// produced. A document with any SyntaxError entries is rejected in full;
// the token stream is discarded and this error is returned to the caller.
type SyntaxError struct {
	Origin  string
	Entries []LineError
}

// Error implements the error interface, reporting the first entry (the
// one most CLI callers want in the one-line message) while still making
// every entry available via Entries for batch tooling.
func (e *SyntaxError) Error() string {
	if len(e.Entries) == 0 {
		return fmt.Sprintf("%s: %s", e.Origin, KindUnparseableLine)
	}
	first := e.Entries[0]
	msg := fmt.Sprintf("%s: %s: line %d: %s", e.Origin, KindUnparseableLine, first.Line, first.Message)
	if len(e.Entries) > 1 {
		msg += fmt.Sprintf(" (and %d more)", len(e.Entries)-1)
	}
	return msg
}

// Kind implements the error-kind classification used by CLI formatting.
func (e *SyntaxError) Kind() Kind { return KindUnparseableLine }

// Add appends one more line failure to the syntax error.
func (e *SyntaxError) Add(line int, message string) {
	e.Entries = append(e.Entries, LineError{Line: line, Message: message})
}

// HasErrors reports whether any line failure has been recorded.
func (e *SyntaxError) HasErrors() bool { return len(e.Entries) > 0 }

// NewSyntaxError creates an empty SyntaxError for the given origin (a file
// path, or "<buffer>" for in-memory input).
func NewSyntaxError(origin string) *SyntaxError {
	return &SyntaxError{Origin: origin}
}

// EditError is returned when an edit pass cannot complete.
type EditError struct {
	Pass    string
	Message string
}

func (e *EditError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Pass, KindEditFailed, e.Message)
}

func (e *EditError) Kind() Kind { return KindEditFailed }

func NewEditError(pass, message string) *EditError {
	return &EditError{Pass: pass, Message: message}
}

// ExpectedIntError is returned by bump-revision/bump-epoch when the
// existing RHS value is not a base-10 integer.
type ExpectedIntError struct {
	Variable string
	Value    string
}

func (e *ExpectedIntError) Error() string {
	return fmt.Sprintf("%s: %s: %q is not an integer", e.Variable, KindExpectedInt, e.Value)
}

func (e *ExpectedIntError) Kind() Kind { return KindExpectedInt }

func NewExpectedIntError(variable, value string) *ExpectedIntError {
	return &ExpectedIntError{Variable: variable, Value: value}
}

// IOError wraps a failure to read or write a file.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Path, KindIOError, e.Err)
}

func (e *IOError) Kind() Kind { return KindIOError }

func (e *IOError) Unwrap() error { return e.Err }

func NewIOError(path string, err error) *IOError {
	return &IOError{Path: path, Err: err}
}

// NotFoundError is returned when a requested variable, target, or edit
// pass does not exist.
type NotFoundError struct {
	What string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s: no such %s", e.Name, KindNotFound, e.What)
}

func (e *NotFoundError) Kind() Kind { return KindNotFound }

func NewNotFoundError(what, name string) *NotFoundError {
	return &NotFoundError{What: what, Name: name}
}

// InvalidArgumentError is returned when a CLI flag or pass argument is
// malformed.
type InvalidArgumentError struct {
	Argument string
	Reason   string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Argument, KindInvalidArgument, e.Reason)
}

func (e *InvalidArgumentError) Kind() Kind { return KindInvalidArgument }

func NewInvalidArgumentError(argument, reason string) *InvalidArgumentError {
	return &InvalidArgumentError{Argument: argument, Reason: reason}
}

// Format renders an error the way the CLI prints it to stderr:
// "<binary>: <file>: <kind>: <message>".
func Format(binary, file string, err error) string {
	var sb strings.Builder
	sb.WriteString(binary)
	sb.WriteString(": ")
	if file != "" {
		sb.WriteString(file)
		sb.WriteString(": ")
	}
	sb.WriteString(err.Error())
	return sb.String()
}
