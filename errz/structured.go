// Package errz defines the structured error taxonomies shared by the
// scanner, parser, and interpreter, plus the presentation logic the CLI
// uses to print them.
//
// spec.md §7 calls for three flat, independent error taxonomies (scan,
// parse, runtime), each carrying only a line number and a message. This
// package is a deliberately small slice of the teacher's much larger
// errz.StructuredError (which also tracks stack frames, causes, and
// source snippets for a language with function calls): there is no call
// stack in an expression-only evaluator, so Stack/Cause are dropped, and
// Kind is narrowed from six categories to the three spec.md names.
package errz

import "fmt"

// Kind identifies which pipeline stage raised an Error.
type Kind int

const (
	// Scan indicates a lexical error raised by the scanner.
	Scan Kind = iota
	// Parse indicates a syntax error raised by the parser.
	Parse
	// Runtime indicates an error raised while evaluating an expression.
	Runtime
)

// String returns the display name of the error kind.
func (k Kind) String() string {
	switch k {
	case Scan:
		return "scan error"
	case Parse:
		return "parse error"
	case Runtime:
		return "runtime error"
	default:
		return "error"
	}
}

// Error is a single diagnostic produced by one pipeline stage. It
// satisfies the standard error interface so stage collectors can build a
// *github.com/hashicorp/go-multierror.Error out of a slice of these.
type Error struct {
	Kind    Kind
	Line    int
	Message string
}

// New constructs an Error for the given stage and line.
func New(kind Kind, line int, format string, args ...any) *Error {
	return &Error{Kind: kind, Line: line, Message: fmt.Sprintf(format, args...)}
}

// Error implements the error interface. The text here is for internal
// logs and tests; the CLI's stderr output follows spec.md §6's exact
// per-stage formats instead of this generic rendering.
func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] %s: %s", e.Line, e.Kind, e.Message)
}

// ReportLine renders a scan or parse error exactly as spec.md §6
// requires for scan errors ("[line N] Error: <message>"), and reuses the
// same shape for parse errors since spec.md leaves their exact text
// unspecified beyond "collected, not thrown" (§4.2) — this is the format
// the codebase this spec was distilled from uses for both stages.
func (e *Error) ReportLine() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

// RuntimeLines renders a runtime error exactly as spec.md §6 requires:
// "<message>\n[line N]".
func (e *Error) RuntimeLines() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Line)
}
