// Package launcher starts processes without waiting for them.
package launcher

import (
	"fmt"
	"os/exec"
)

// Spawner starts a program with arguments and returns once it is running.
type Spawner interface {
	Start(name string, args ...string) error
}

// Detached starts the program in its own session / process group and releases it, so the
// browser outlives the short-lived plugin process.
type Detached struct{}

// command builds the exec.Cmd; tests may override to run a harmless program.
var command = exec.Command

// Start launches name with args and returns without waiting.
func (Detached) Start(name string, args ...string) error {
	cmd := command(name, args...)
	cmd.SysProcAttr = detachedAttr()
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}
	// Nothing reaps the child; the OS does once the plugin exits.
	if err := cmd.Process.Release(); err != nil {
		return fmt.Errorf("failed to release %s: %w", name, err)
	}
	return nil
}

// ProfileArg is the command-line switch that selects a profile directory.
func ProfileArg(directory string) string {
	return "--profile-directory=" + directory
}
