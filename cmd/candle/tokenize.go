package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cloudcmds/candle"
	"github.com/cloudcmds/candle/errz"
	"github.com/cloudcmds/candle/token"
	"github.com/spf13/cobra"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <path>",
	Short: "Scan a source file and print its tokens",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runTokenize(args[0], os.Stdout, os.Stderr))
	},
}

// runTokenize implements the tokenize subcommand's body against explicit
// writers instead of os.Stdout/os.Stderr directly, so it can be driven
// from a test without forking a subprocess. Run's closure is the only
// caller in production, always with os.Stdout/os.Stderr.
func runTokenize(path string, stdout, stderr io.Writer) int {
	source, err := readSource(path)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	log := newStageLogger("tokenize")
	start := time.Now()
	result := candle.Tokenize(source)
	log.Info().
		Int("tokens", len(result.Tokens)).
		Int("errors", len(result.Errors)).
		Dur("elapsed", time.Since(start)).
		Msg("scan complete")
	if aggregate := errz.Join(result.Errors); aggregate != nil {
		log.Debug().Err(aggregate).Msg("scan errors")
	}

	if outputFormat() == "json" {
		if err := printJSON(stdout, tokenizeJSON(result)); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		return result.ExitCode()
	}

	for _, e := range result.Errors {
		printErrLine(stderr, e.ReportLine())
	}
	for _, t := range result.Tokens {
		fmt.Fprintln(stdout, t.String())
	}
	fmt.Fprintf(stdout, "%s  %s\n", token.EOF, "null")

	return result.ExitCode()
}

type tokenJSON struct {
	Kind    string `json:"kind"`
	Lexeme  string `json:"lexeme"`
	Literal string `json:"literal"`
	Line    int    `json:"line"`
}

type tokenizeResultJSON struct {
	Tokens []tokenJSON `json:"tokens"`
	Errors []string    `json:"errors"`
}

func tokenizeJSON(r candle.TokenizeResult) tokenizeResultJSON {
	out := tokenizeResultJSON{Tokens: make([]tokenJSON, 0, len(r.Tokens))}
	for _, t := range r.Tokens {
		out.Tokens = append(out.Tokens, tokenJSON{
			Kind:    string(t.Kind),
			Lexeme:  t.Lexeme,
			Literal: token.LiteralText(t.Literal),
			Line:    t.Line,
		})
	}
	for _, e := range r.Errors {
		out.Errors = append(out.Errors, e.ReportLine())
	}
	return out
}
