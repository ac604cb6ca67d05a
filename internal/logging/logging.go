// Package logging provides the diagnostic loggers. Everything goes to stderr because stdout is
// the result channel read by the launcher host.
package logging

import (
	"io"
	"log"
	"os"
)

var (
	// Error logs recovered failures (unreadable files, spawn errors).
	Error = log.New(os.Stderr, "ERROR: ", 0)
	// Warn logs degraded configuration that is still usable.
	Warn = log.New(os.Stderr, "WARN: ", 0)
)

// SetOutput redirects both loggers, mainly so tests can capture what was logged.
func SetOutput(w io.Writer) {
	Error.SetOutput(w)
	Warn.SetOutput(w)
}
