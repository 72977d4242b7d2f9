// Package logging provides the process-wide leveled logger for the suite.
//
// Info, debug and warn lines go to stdout, errors to stderr. Debug output is
// gated by DEBUG=true so CI logs stay readable by default.
package logging

import (
	"os"

	"github.com/phuslu/log"
)

var (
	out = log.Logger{
		Level:      levelFromEnv(),
		TimeFormat: "15:04:05.000",
		Writer: &log.ConsoleWriter{
			Writer: os.Stdout,
		},
	}

	errOut = log.Logger{
		Level:      log.ErrorLevel,
		TimeFormat: "15:04:05.000",
		Writer: &log.ConsoleWriter{
			Writer: os.Stderr,
		},
	}
)

func levelFromEnv() log.Level {
	if os.Getenv("DEBUG") == "true" {
		return log.DebugLevel
	}
	return log.InfoLevel
}

// Debug logs a debug line with optional key/value pairs. No-op unless
// DEBUG=true.
func Debug(msg string, keyvals ...any) {
	withPairs(out.Debug(), keyvals).Msg(msg)
}

// Info logs an info line with optional key/value pairs.
func Info(msg string, keyvals ...any) {
	withPairs(out.Info(), keyvals).Msg(msg)
}

// Warn logs a warning line with optional key/value pairs.
func Warn(msg string, keyvals ...any) {
	withPairs(out.Warn(), keyvals).Msg(msg)
}

// Error logs an error line to stderr. err may be nil.
func Error(msg string, err error, keyvals ...any) {
	withPairs(errOut.Error().Err(err), keyvals).Msg(msg)
}

// Step logs a numbered test step, so multi-step scenarios read as a sequence
// in the test output.
func Step(step int, description string) {
	out.Info().Int("step", step).Msg(description)
}

func withPairs(e *log.Entry, keyvals []any) *log.Entry {
	for i := 0; i+1 < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			continue
		}
		e = e.Any(key, keyvals[i+1])
	}
	return e
}
