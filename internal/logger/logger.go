// Package logger provides process-wide logging for sercha-bridge.
//
// Debug and Info records are only emitted when verbose mode is enabled via
// the --verbose flag. Warn and Error records are always emitted. Output goes
// to stderr through a tint handler so the TUI and JSON output on stdout are
// never interleaved with log lines.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	log               = newLogger(os.Stderr, false)
)

// newLogger builds a tint-backed slog logger writing to w.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		NoColor:    noColor,
		TimeFormat: time.Kitchen,
	}))
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	log = newLogger(output, verbose)
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	log = newLogger(output, verbose)
}

// Logger returns the current slog logger.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// Debug logs msg with key/value attributes if verbose mode is enabled.
func Debug(msg string, args ...any) {
	Logger().Debug(msg, args...)
}

// Info logs msg with key/value attributes if verbose mode is enabled.
func Info(msg string, args ...any) {
	Logger().Info(msg, args...)
}

// Warn logs msg with key/value attributes.
func Warn(msg string, args ...any) {
	Logger().Warn(msg, args...)
}

// Error logs msg with key/value attributes.
func Error(msg string, args ...any) {
	Logger().Error(msg, args...)
}

// Enabled reports whether records at level would be emitted.
func Enabled(level slog.Level) bool {
	return Logger().Enabled(context.Background(), level)
}
