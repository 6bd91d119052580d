package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
	"github.com/mattn/go-isatty"
	"github.com/spf13/viper"
)

// shouldColor mirrors the teacher's isTerminalIO/no-color handling
// (cmd/risor/root.go): diagnostics are colored only when stderr is a
// real terminal and the user hasn't asked for --no-color / CANDLE_NO_COLOR.
func shouldColor() bool {
	if viper.GetBool("no-color") {
		return false
	}
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// colorizeErr applies the diagnostic red when enabled is true, otherwise
// returns line unchanged. Split out from shouldColor's environment-
// dependent terminal check so the rendering decision itself is a pure
// function a test can exercise directly, independent of whether the test
// binary's stderr happens to be a terminal.
func colorizeErr(enabled bool, line string) string {
	if enabled {
		return color.RedString("%s", line)
	}
	return line
}

// printErrLine writes one diagnostic line to w, red when coloring is
// enabled. Each call is exactly one line; callers that need multiple
// lines call this once per line so line-by-line golden tests stay exact.
func printErrLine(w io.Writer, line string) {
	fmt.Fprintln(w, colorizeErr(shouldColor(), line))
}

// printRuntimeErrorLines writes a runtime error's two-line form
// ("<message>\n[line N]", per spec.md §6) to w as a single colored block
// so the message and its line annotation are never split across separate
// color escapes.
func printRuntimeErrorLines(w io.Writer, lines string) {
	fmt.Fprintln(w, colorizeErr(shouldColor(), lines))
}

// outputFormat returns the effective --format value, defaulting to text.
func outputFormat() string {
	format := viper.GetString("format")
	if format == "" {
		return "text"
	}
	return format
}

// printJSON marshals v with hokaccha/go-prettyjson to w, colorized when
// shouldColor is true, otherwise via prettyjson's non-colored path,
// matching the teacher's getOutputJSON split on --no-color
// (cmd/risor/root.go).
func printJSON(w io.Writer, v any) error {
	var (
		out []byte
		err error
	)
	if shouldColor() {
		out, err = prettyjson.Marshal(v)
	} else {
		f := prettyjson.NewFormatter()
		f.DisabledColor = true
		out, err = f.Marshal(v)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(out))
	return nil
}
