// Package spinners provides terminal spinners for progress feedback on interactive commands.
package spinners

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/theckman/yacspin"
)

// newSpinner is used by CreateSpinner; may be overridden in tests to simulate failure.
var newSpinner = func(cfg yacspin.Config) (*yacspin.Spinner, error) {
	return yacspin.New(cfg)
}

// processExit is called after an interrupt stops the spinner. Tests may override to avoid os.Exit.
var processExit = func(code int) { os.Exit(code) }

// CreateSpinner returns a spinner drawing message on w. Callers set the final text with
// StopMessage / StopFailMessage before stopping it.
func CreateSpinner(w io.Writer, message string) (*yacspin.Spinner, error) {
	cfg := yacspin.Config{
		Writer:            w,
		Frequency:         100 * time.Millisecond,
		Colors:            []string{"fgHiBlue"},
		CharSet:           yacspin.CharSets[14],
		Suffix:            " ",
		SuffixAutoColon:   true,
		Message:           message,
		StopCharacter:     "✓",
		StopColors:        []string{"fgHiGreen"},
		StopFailCharacter: "✗",
		StopFailColors:    []string{"fgHiRed"},
	}

	s, err := newSpinner(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create spinner: %w", err)
	}
	return s, nil
}

// StopOnSignal stops the spinner with a failure message if an interrupt or termination signal
// arrives, so the cursor is restored before the process exits.
func StopOnSignal(spinner *yacspin.Spinner) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh

		spinner.StopFailMessage("interrupted")

		// ignoring error intentionally
		_ = spinner.StopFail()

		processExit(0)
	}()
}
