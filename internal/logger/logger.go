// Package logger provides verbose diagnostics for the rsx CLI.
// Messages are written to stderr only when --verbose is set, so they never
// mix with converted or highlighted output on stdout.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

var (
	debugTag = color.New(color.Faint)
	infoTag  = color.New(color.FgCyan)
	warnTag  = color.New(color.FgYellow)
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	logf(debugTag, "DEBUG", format, args...)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	logf(infoTag, "INFO", format, args...)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	logf(warnTag, "WARN", format, args...)
}

// Elapsed logs how long an operation took, measured from start.
func Elapsed(what string, start time.Time) {
	Debug("%s took %s", what, time.Since(start).Round(time.Microsecond))
}

func logf(tag *color.Color, level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}
	_, _ = tag.Fprintf(output, "[%s] ", level)
	fmt.Fprintf(output, format+"\n", args...)
}
