// Command candle is the CLI driver for the tokenize/parse/evaluate
// pipeline. It is the "external collaborator" spec.md §1 scopes out of
// the core: argument parsing, file reading, and output formatting live
// here, while the three pipeline stages themselves live in the
// scanner, parser, interp, and top-level candle packages.
package main

func main() {
	Execute()
}
