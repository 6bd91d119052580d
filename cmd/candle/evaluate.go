package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cloudcmds/candle"
	"github.com/cloudcmds/candle/errz"
	"github.com/spf13/cobra"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <path>",
	Short: "Evaluate a source file's single expression and print its value",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runEvaluate(args[0], os.Stdout, os.Stderr))
	},
}

// runEvaluate implements the evaluate subcommand's body against explicit
// writers; see runTokenize for why.
func runEvaluate(path string, stdout, stderr io.Writer) int {
	source, err := readSource(path)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	log := newStageLogger("evaluate")
	start := time.Now()
	result := candle.Evaluate(source)
	evt := log.Info().
		Int("scanErrors", len(result.ScanErrors)).
		Int("parseErrors", len(result.ParseErrors)).
		Bool("ran", result.Ran).
		Dur("elapsed", time.Since(start))
	if result.RunErr != nil {
		evt.Bool("runtimeError", true)
	}
	evt.Msg("evaluate complete")
	if aggregate := errz.Join(result.ScanErrors, result.ParseErrors); aggregate != nil {
		log.Debug().Err(aggregate).Msg("scan/parse errors")
	}

	if outputFormat() == "json" {
		if err := printJSON(stdout, evaluateJSON(result)); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		return result.ExitCode()
	}

	for _, e := range result.ScanErrors {
		printErrLine(stderr, e.ReportLine())
	}
	for _, e := range result.ParseErrors {
		printErrLine(stderr, e.ReportLine())
	}

	switch {
	case result.RunErr != nil:
		printRuntimeErrorLines(stderr, result.RunErr.ToErrz().RuntimeLines())
	case result.Value != nil:
		fmt.Fprintln(stdout, result.Value.String())
	}

	return result.ExitCode()
}

type evaluateResultJSON struct {
	Value        string   `json:"value,omitempty"`
	ScanErrors   []string `json:"scanErrors,omitempty"`
	ParseErrors  []string `json:"parseErrors,omitempty"`
	RuntimeError string   `json:"runtimeError,omitempty"`
	RuntimeLine  int      `json:"runtimeLine,omitempty"`
}

func evaluateJSON(r candle.EvalResult) evaluateResultJSON {
	out := evaluateResultJSON{}
	if r.Value != nil {
		out.Value = r.Value.String()
	}
	for _, e := range r.ScanErrors {
		out.ScanErrors = append(out.ScanErrors, e.ReportLine())
	}
	for _, e := range r.ParseErrors {
		out.ParseErrors = append(out.ParseErrors, e.ReportLine())
	}
	if r.RunErr != nil {
		out.RuntimeError = r.RunErr.Message
		out.RuntimeLine = r.RunErr.Operator.Line
	}
	return out
}
