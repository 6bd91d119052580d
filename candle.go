// Package candle wires the scanner, parser, and interpreter into the
// three pipeline stages spec.md §2 describes, and carries the exit-code
// policy from spec.md §7 so every entry point (the cobra CLI, tests)
// computes it the same way.
//
// Grounded on the teacher's top-level convenience API (risor.Eval in the
// deleted risor.go), trimmed down to the three non-overlapping stage
// results this language's pipeline actually produces.
package candle

import (
	"github.com/cloudcmds/candle/ast"
	"github.com/cloudcmds/candle/errz"
	"github.com/cloudcmds/candle/interp"
	"github.com/cloudcmds/candle/parser"
	"github.com/cloudcmds/candle/scanner"
	"github.com/cloudcmds/candle/token"
	"github.com/cloudcmds/candle/value"
)

// Exit codes, per spec.md §6.
const (
	ExitOK      = 0
	ExitSyntax  = 65
	ExitRuntime = 70
)

// TokenizeResult is the output of running only the scanner.
type TokenizeResult struct {
	Tokens []token.Token
	Errors []*errz.Error
}

// ExitCode reports the exit code this stage's result alone would produce.
func (r TokenizeResult) ExitCode() int {
	if len(r.Errors) > 0 {
		return ExitSyntax
	}
	return ExitOK
}

// Tokenize runs the scanner to completion over source.
func Tokenize(source string) TokenizeResult {
	s := scanner.New(source)
	tokens := s.Scan()
	return TokenizeResult{Tokens: tokens, Errors: s.Errors()}
}

// ParseResult is the output of running the scanner and then the parser.
// Per spec.md §2, the parser runs on the scanner's best-effort token
// stream even if scanning produced errors; ScanErrors and ParseErrors
// are tracked independently.
type ParseResult struct {
	Tokens      []token.Token
	ScanErrors  []*errz.Error
	Expr        ast.Expr
	ParseErrors []*errz.Error
}

// ExitCode reports the exit code this stage's result alone would produce.
func (r ParseResult) ExitCode() int {
	if len(r.ScanErrors) > 0 || len(r.ParseErrors) > 0 {
		return ExitSyntax
	}
	return ExitOK
}

// Parse runs the scanner and parser over source.
func Parse(source string) ParseResult {
	tok := Tokenize(source)
	p := parser.New(tok.Tokens)
	expr := p.Parse()
	return ParseResult{
		Tokens:      tok.Tokens,
		ScanErrors:  tok.Errors,
		Expr:        expr,
		ParseErrors: p.Errors(),
	}
}

// EvalResult is the output of running the full pipeline.
type EvalResult struct {
	ParseResult
	Value  value.Value
	RunErr *interp.RuntimeError
	Ran    bool // whether the interpreter phase actually executed
}

// ExitCode implements spec.md §7's precedence policy exactly: a runtime
// error (70) is reported only when the scan and parse stages were clean
// and the interpreter phase actually ran and failed. Any scan or parse
// error forces 65 regardless of what a best-effort evaluation attempt
// would have produced.
func (r EvalResult) ExitCode() int {
	if len(r.ScanErrors) > 0 || len(r.ParseErrors) > 0 {
		return ExitSyntax
	}
	if r.RunErr != nil {
		return ExitRuntime
	}
	return ExitOK
}

// Evaluate runs the full tokenize → parse → evaluate pipeline over
// source. The interpreter only runs when scanning and parsing produced a
// usable expression with no errors from either stage.
func Evaluate(source string) EvalResult {
	parsed := Parse(source)
	result := EvalResult{ParseResult: parsed}
	if len(parsed.ScanErrors) > 0 || len(parsed.ParseErrors) > 0 || parsed.Expr == nil {
		return result
	}
	result.Ran = true
	v, err := interp.Eval(parsed.Expr)
	if err != nil {
		result.RunErr = err
		return result
	}
	result.Value = v
	return result
}
