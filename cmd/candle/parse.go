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

var parseCmd = &cobra.Command{
	Use:   "parse <path>",
	Short: "Parse a source file and print its AST in prefix form",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runParse(args[0], os.Stdout, os.Stderr))
	},
}

// runParse implements the parse subcommand's body against explicit
// writers; see runTokenize for why.
func runParse(path string, stdout, stderr io.Writer) int {
	source, err := readSource(path)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	log := newStageLogger("parse")
	start := time.Now()
	result := candle.Parse(source)
	log.Info().
		Int("scanErrors", len(result.ScanErrors)).
		Int("parseErrors", len(result.ParseErrors)).
		Bool("hasExpr", result.Expr != nil).
		Dur("elapsed", time.Since(start)).
		Msg("parse complete")
	if aggregate := errz.Join(result.ScanErrors, result.ParseErrors); aggregate != nil {
		log.Debug().Err(aggregate).Msg("parse errors")
	}

	if outputFormat() == "json" {
		if err := printJSON(stdout, parseJSON(result)); err != nil {
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

	if result.Expr != nil {
		fmt.Fprintln(stdout, result.Expr.String())
	} else {
		fmt.Fprintln(stdout)
	}

	return result.ExitCode()
}

type parseResultJSON struct {
	AST         string   `json:"ast"`
	ScanErrors  []string `json:"scanErrors"`
	ParseErrors []string `json:"parseErrors"`
}

func parseJSON(r candle.ParseResult) parseResultJSON {
	out := parseResultJSON{}
	if r.Expr != nil {
		out.AST = r.Expr.String()
	}
	for _, e := range r.ScanErrors {
		out.ScanErrors = append(out.ScanErrors, e.ReportLine())
	}
	for _, e := range r.ParseErrors {
		out.ParseErrors = append(out.ParseErrors, e.ReportLine())
	}
	return out
}
