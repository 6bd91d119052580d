package errz_test

import (
	"testing"

	"github.com/cloudcmds/candle/errz"
	"github.com/stretchr/testify/require"
)

func TestReportLineFormat(t *testing.T) {
	e := errz.New(errz.Scan, 3, "Unexpected character: %c", '@')
	require.Equal(t, "[line 3] Error: Unexpected character: @", e.ReportLine())
}

func TestRuntimeLinesFormat(t *testing.T) {
	e := errz.New(errz.Runtime, 7, "Operand must be a number.")
	require.Equal(t, "Operand must be a number.\n[line 7]", e.RuntimeLines())
}

func TestCollectorAccumulates(t *testing.T) {
	c := errz.NewCollector(errz.Parse)
	require.False(t, c.HasErrors())
	c.Add(1, "Expect expression.")
	c.Add(2, "Expect ')' after expression.")
	require.True(t, c.HasErrors())
	require.Len(t, c.Errs(), 2)
	require.Equal(t, 1, c.Errs()[0].Line)
}

func TestCollectorErrSingle(t *testing.T) {
	c := errz.NewCollector(errz.Scan)
	require.Nil(t, c.Err())
	c.Add(1, "Unterminated string.")
	err := c.Err()
	require.NotNil(t, err)
	require.Equal(t, "[line 1] scan error: Unterminated string.", err.Error())
}

func TestCollectorErrMultipleJoinsWithNewline(t *testing.T) {
	c := errz.NewCollector(errz.Scan)
	c.Add(1, "a")
	c.Add(2, "b")
	err := c.Err()
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "\n")
}

func TestJoinAcrossMultipleStageSlices(t *testing.T) {
	scanErrs := []*errz.Error{errz.New(errz.Scan, 1, "bad char")}
	parseErrs := []*errz.Error{errz.New(errz.Parse, 2, "expect expression")}
	err := errz.Join(scanErrs, parseErrs)
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "bad char")
	require.Contains(t, err.Error(), "expect expression")
}

func TestJoinEmptyReturnsNil(t *testing.T) {
	require.Nil(t, errz.Join())
	require.Nil(t, errz.Join(nil, nil))
}
