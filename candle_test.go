package candle_test

import (
	"testing"

	"github.com/cloudcmds/candle"
	"github.com/cloudcmds/candle/errz"
	"github.com/cloudcmds/candle/interp"
	"github.com/stretchr/testify/require"
)

func TestTokenizeSuccess(t *testing.T) {
	r := candle.Tokenize("(72 +  42)")
	require.Empty(t, r.Errors)
	require.Equal(t, candle.ExitOK, r.ExitCode())
	require.Len(t, r.Tokens, 5)
}

func TestTokenizeFailure(t *testing.T) {
	r := candle.Tokenize("@")
	require.NotEmpty(t, r.Errors)
	require.Equal(t, candle.ExitSyntax, r.ExitCode())
}

func TestParseSuccess(t *testing.T) {
	r := candle.Parse("(72 +  42)")
	require.Empty(t, r.ScanErrors)
	require.Empty(t, r.ParseErrors)
	require.Equal(t, candle.ExitOK, r.ExitCode())
	require.Equal(t, "(group (+ 72.0 42.0))", r.Expr.String())
}

func TestParseRunsDespiteScanErrors(t *testing.T) {
	// The parser still runs on the scanner's best-effort tokens even when
	// scanning produced errors; the two stages track errors independently.
	r := candle.Parse("@ 1")
	require.NotEmpty(t, r.ScanErrors)
	require.Equal(t, candle.ExitSyntax, r.ExitCode())
}

func TestEvaluateSuccess(t *testing.T) {
	r := candle.Evaluate("(72 +  42)")
	require.True(t, r.Ran)
	require.Nil(t, r.RunErr)
	require.Equal(t, "114", r.Value.String())
	require.Equal(t, candle.ExitOK, r.ExitCode())
}

func TestEvaluateScanErrorNeverRuns(t *testing.T) {
	r := candle.Evaluate("@")
	require.False(t, r.Ran)
	require.Equal(t, candle.ExitSyntax, r.ExitCode())
}

func TestEvaluateParseErrorNeverRuns(t *testing.T) {
	r := candle.Evaluate("!= !=")
	require.False(t, r.Ran)
	require.NotEmpty(t, r.ParseErrors)
	require.Equal(t, candle.ExitSyntax, r.ExitCode())
}

func TestEvaluateRuntimeError(t *testing.T) {
	r := candle.Evaluate(`1 + "x"`)
	require.True(t, r.Ran)
	require.NotNil(t, r.RunErr)
	require.Nil(t, r.Value)
	require.Equal(t, candle.ExitRuntime, r.ExitCode())
}

func TestEvaluateRuntimeErrorNeverOverridesSyntaxExitCode(t *testing.T) {
	// An EvalResult with both a scan error and a populated RunErr must
	// report 65, never 70: syntax errors always take precedence in
	// ExitCode's ordering.
	r := candle.EvalResult{
		ParseResult: candle.ParseResult{ScanErrors: []*errz.Error{errz.New(errz.Scan, 1, "Unexpected character: @")}},
		RunErr:      &interp.RuntimeError{Message: "Operands must be numbers."},
	}
	require.Equal(t, candle.ExitSyntax, r.ExitCode())
}
