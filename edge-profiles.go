// Package main provides the edge-profiles launcher plugin entrypoint.
package main

import (
	"fmt"
	"os"

	"github.com/ondrovic/edge-profiles/cmd/cli"
)

// osExit is called with the exit code on failure; tests may override to avoid exiting.
var osExit = os.Exit

// executeMain runs the CLI and exits the process on error.
func executeMain(executeFunc func() error) {
	if err := executeFunc(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		osExit(1)
	}
}

// main is the entry point; the launcher host runs it once per query or selection.
func main() {
	executeMain(cli.Execute)
}
