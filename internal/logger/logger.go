// Package logger provides a thin wrapper around zerolog.Logger with
// the constructors the client needs. Log output goes to a file beside
// the executable so it never interleaves with the chat display on
// stdout.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger embeds zerolog.Logger so the full zerolog API is available
// directly.
type Logger struct {
	zerolog.Logger
}

// New constructs a *Logger for the given role label, writing JSON to
// "<executable>.log". Falls back to stderr if the file cannot be
// opened.
func New(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	var sink *os.File
	execPath, err := os.Executable()
	if err == nil {
		sink, err = os.OpenFile(execPath+".log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	}
	if err != nil || sink == nil {
		sink = os.Stderr
	}
	l := zerolog.New(sink).With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{l}
}

// Nop returns a *Logger that discards all output, for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}
