package parser_test

import (
	"testing"

	"github.com/cloudcmds/candle/ast"
	"github.com/cloudcmds/candle/parser"
	"github.com/cloudcmds/candle/scanner"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, source string) *parser.Parser {
	t.Helper()
	s := scanner.New(source)
	tokens := s.Scan()
	require.False(t, s.HasErrors(), "unexpected scan errors for %q", source)
	return parser.New(tokens)
}

func TestParseLiteral(t *testing.T) {
	p := parse(t, "42")
	expr := p.Parse()
	require.False(t, p.HasErrors())
	require.Equal(t, "42.0", expr.String())
}

func TestParseGroupingExample(t *testing.T) {
	p := parse(t, "(72 +  42)")
	expr := p.Parse()
	require.False(t, p.HasErrors())
	require.Equal(t, "(group (+ 72.0 42.0))", expr.String())
}

func TestParsePrecedence(t *testing.T) {
	p := parse(t, "1 + 2 * 3")
	expr := p.Parse()
	require.False(t, p.HasErrors())
	require.Equal(t, "(+ 1.0 (* 2.0 3.0))", expr.String())
}

func TestParseLeftAssociativity(t *testing.T) {
	p := parse(t, "1 - 2 - 3")
	expr := p.Parse()
	require.False(t, p.HasErrors())
	require.Equal(t, "(- (- 1.0 2.0) 3.0)", expr.String())
}

func TestParseUnary(t *testing.T) {
	p := parse(t, "!!true")
	expr := p.Parse()
	require.False(t, p.HasErrors())
	require.Equal(t, "(! (! true))", expr.String())
}

func TestParseComparisonChain(t *testing.T) {
	p := parse(t, "1 < 2 == true")
	expr := p.Parse()
	require.False(t, p.HasErrors())
	require.Equal(t, "(== (< 1.0 2.0) true)", expr.String())
}

func TestParseMissingRightParen(t *testing.T) {
	p := parse(t, "(1 + 2")
	expr := p.Parse()
	require.Nil(t, expr)
	require.True(t, p.HasErrors())
	require.Equal(t, "[line 1] Error: Expect ')' after expression.", p.Errors()[0].ReportLine())
}

func TestParseDoubleBangEqualRecordsExpectExpression(t *testing.T) {
	// "!= !=" cannot start an expression. The first primary() fails without
	// consuming, so the equality() loop then matches the very same token
	// that failed and tries again, producing a second failure; the loop
	// then matches the second "!=" and fails a third time at end of input.
	// Absence propagates: the final expression is nil.
	p := parse(t, "!= !=")
	expr := p.Parse()
	require.Nil(t, expr)
	require.True(t, p.HasErrors())
	require.GreaterOrEqual(t, len(p.Errors()), 1)
	require.Equal(t, "Expect expression.", extractMessage(p.Errors()[0].ReportLine()))
}

func TestParseEmptyInput(t *testing.T) {
	p := parse(t, "")
	expr := p.Parse()
	require.Nil(t, expr)
	require.True(t, p.HasErrors())
}

func TestParseStringLiteral(t *testing.T) {
	p := parse(t, `"hello"`)
	expr := p.Parse()
	require.False(t, p.HasErrors())
	require.Equal(t, "hello", expr.String())
	lit, ok := expr.(*ast.Literal)
	require.True(t, ok)
	require.Equal(t, "hello", lit.Value)
}

func TestParseNilAndBooleans(t *testing.T) {
	for _, tc := range []struct {
		source string
		want   string
	}{
		{"nil", "nil"},
		{"true", "true"},
		{"false", "false"},
	} {
		p := parse(t, tc.source)
		expr := p.Parse()
		require.False(t, p.HasErrors())
		require.Equal(t, tc.want, expr.String())
	}
}

// extractMessage strips the "[line N] Error: " prefix for assertions that
// only care about the message text.
func extractMessage(reportLine string) string {
	const marker = "Error: "
	idx := len(reportLine) - len(marker)
	for i := 0; i+len(marker) <= len(reportLine); i++ {
		if reportLine[i:i+len(marker)] == marker {
			idx = i + len(marker)
			break
		}
	}
	return reportLine[idx:]
}
