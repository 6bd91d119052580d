package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// newStageLogger returns a zerolog.Logger for tracing pipeline-stage
// boundaries. Default level is Disabled so a normal run's stdout/stderr
// is byte-for-byte the spec.md §6 contract; --verbose/-v (or the
// CANDLE_VERBOSE env var, or a config file's `verbose: true`) enables
// debug-level stage logging to stderr (the stage summary plus the
// aggregated error set), in the teacher's style of treating
// logging as an orthogonal concern rather than interleaving it with the
// program's actual output.
func newStageLogger(stage string) zerolog.Logger {
	level := zerolog.Disabled
	if viper.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Str("stage", stage).
		Logger()
}
