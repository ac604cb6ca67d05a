// Package paths resolves where the browser is installed and where it keeps its user data.
// The candidate locations for each release channel live in the per-OS layout files.
package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ondrovic/edge-profiles/internal/logging"
	"github.com/ondrovic/edge-profiles/internal/types"
)

// ErrUnknownChannel is returned by LayoutFor for channels the current OS has no layout for.
var ErrUnknownChannel = errors.New("unknown release channel")

// Env is the view of the process environment used during resolution.
type Env interface {
	Getenv(key string) string
	Stat(name string) (os.FileInfo, error)
}

// OSEnv reads the real environment and filesystem.
type OSEnv struct{}

// Getenv returns the value of the environment variable key.
func (OSEnv) Getenv(key string) string { return os.Getenv(key) }

// Stat returns file info for name.
func (OSEnv) Stat(name string) (os.FileInfo, error) { return os.Stat(name) }

// Candidate is a path made of an optional environment-provided base directory and a fixed
// relative suffix. With an empty EnvVar the suffix is used as is.
type Candidate struct {
	EnvVar string
	Elem   []string
}

// Path joins the environment base with the suffix. An unset variable leaves the suffix alone,
// which yields a relative path.
func (c Candidate) Path(env Env) string {
	base := ""
	if c.EnvVar != "" {
		base = env.Getenv(c.EnvVar)
	}
	return filepath.Join(append([]string{base}, c.Elem...)...)
}

// Layout describes one browser channel: executable candidates in priority order and the user
// data root.
type Layout struct {
	Channel     string
	Executables []Candidate
	UserData    Candidate
}

// Overrides carries explicit paths supplied through flags or the environment.
type Overrides struct {
	Executable   string
	UserDataRoot string
}

// LayoutFor returns the layout of a release channel on the current OS.
func LayoutFor(channel string) (Layout, error) {
	channel = strings.ToLower(strings.TrimSpace(channel))
	if channel == "" {
		channel = "stable"
	}
	l, ok := layouts[channel]
	if !ok {
		return Layout{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownChannel, channel, strings.Join(Channels(), ", "))
	}
	l.Channel = channel
	return l, nil
}

// Channels lists the release channels known on the current OS in a fixed order.
func Channels() []string {
	var out []string
	for _, c := range []string{"stable", "beta", "dev", "canary"} {
		if _, ok := layouts[c]; ok {
			out = append(out, c)
		}
	}
	return out
}

// ResolveExecutablePath returns the first executable candidate that exists, or "" if none do.
func ResolveExecutablePath(layout Layout, env Env) string {
	for _, c := range layout.Executables {
		p := c.Path(env)
		if exists(env, p) {
			return p
		}
	}
	return ""
}

// ResolveUserDataRoot returns the user-data root without checking that it exists.
func ResolveUserDataRoot(layout Layout, env Env) string {
	return layout.UserData.Path(env)
}

// Resolve computes the process-wide path configuration. Overrides take precedence; an
// executable override that does not exist resolves to no executable at all.
func Resolve(layout Layout, env Env, o Overrides) types.PathConfig {
	var cfg types.PathConfig

	if o.Executable != "" {
		if exists(env, o.Executable) {
			cfg.ExecutablePath = o.Executable
		} else {
			logging.Error.Printf("Executable override %s does not exist", o.Executable)
		}
	} else {
		cfg.ExecutablePath = ResolveExecutablePath(layout, env)
	}

	if o.UserDataRoot != "" {
		cfg.UserDataRoot = o.UserDataRoot
	} else {
		if v := layout.UserData.EnvVar; v != "" && env.Getenv(v) == "" {
			logging.Warn.Printf("%s is not set; user data root falls back to a relative path", v)
		}
		cfg.UserDataRoot = ResolveUserDataRoot(layout, env)
	}

	return cfg
}

func exists(env Env, path string) bool {
	_, err := env.Stat(path)
	return err == nil
}
