// Package plugin implements the launcher host's query and launch_profile calls on top of path
// resolution and profile discovery.
package plugin

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"

	"github.com/ondrovic/edge-profiles/internal/jsonrpc"
	"github.com/ondrovic/edge-profiles/internal/launcher"
	"github.com/ondrovic/edge-profiles/internal/logging"
	"github.com/ondrovic/edge-profiles/internal/profiles"
	"github.com/ondrovic/edge-profiles/internal/types"
)

// Icons are relative to the plugin directory; the host resolves them.
const (
	DefaultIcon = "Images/app.png"
	ErrorIcon   = "Images/error.png"
)

// Plugin answers host calls. Paths is resolved once at startup and never changes.
type Plugin struct {
	Paths    types.PathConfig
	Spawner  launcher.Spawner
	Discover func(root string) []types.Profile
}

// New returns a Plugin that discovers profiles on disk and launches detached processes.
func New(paths types.PathConfig) *Plugin {
	return &Plugin{
		Paths:    paths,
		Spawner:  launcher.Detached{},
		Discover: profiles.List,
	}
}

// Matches reports whether text occurs in name, ignoring case. Empty text matches everything.
func Matches(name, text string) bool {
	if text == "" {
		return true
	}
	return strings.Contains(cases.Fold().String(name), cases.Fold().String(text))
}

// Filter keeps the profiles whose display name matches text, preserving order.
func Filter(ps []types.Profile, text string) []types.Profile {
	out := make([]types.Profile, 0, len(ps))
	for _, p := range ps {
		if Matches(p.DisplayName, text) {
			out = append(out, p)
		}
	}
	return out
}

// Query returns the results for text. It always returns at least one result.
func (p *Plugin) Query(text string) []types.Result {
	if !p.Paths.HasExecutable() {
		return []types.Result{{
			Title:    "Microsoft Edge Not Found",
			SubTitle: "Could not find msedge.exe.",
			IcoPath:  ErrorIcon,
		}}
	}

	matched := Filter(p.Discover(p.Paths.UserDataRoot), text)
	if len(matched) == 0 {
		subtitle := fmt.Sprintf("Looked in %s.", p.Paths.UserDataRoot)
		if text != "" {
			subtitle = fmt.Sprintf("No Edge profiles match '%s'.", text)
		}
		return []types.Result{{
			Title:    "No matching profiles found",
			SubTitle: subtitle,
			IcoPath:  DefaultIcon,
		}}
	}

	results := make([]types.Result, 0, len(matched))
	for _, prof := range matched {
		results = append(results, types.Result{
			Title:    prof.DisplayName,
			SubTitle: fmt.Sprintf("Launch Edge with profile: %s", prof.DisplayName),
			IcoPath:  iconFor(prof),
			JsonRPCAction: &types.JsonRPCAction{
				Method:     jsonrpc.MethodLaunchProfile,
				Parameters: []any{prof.DirectoryName},
			},
		})
	}
	return results
}

// LaunchProfile opens the browser on the given profile directory. Failures are only logged;
// the host has no channel to show them at this point.
func (p *Plugin) LaunchProfile(directory string) {
	if err := p.launch(directory); err != nil {
		logging.Error.Println(err)
	}
}

func (p *Plugin) launch(directory string) error {
	if !p.Paths.HasExecutable() {
		return errors.New("edge executable not found")
	}
	if err := p.Spawner.Start(p.Paths.ExecutablePath, launcher.ProfileArg(directory)); err != nil {
		return fmt.Errorf("failed to launch profile %s: %w", directory, err)
	}
	return nil
}

// Handle dispatches a host request. launch_profile has no results, so its response is nil.
func (p *Plugin) Handle(req types.Request) (*types.Response, error) {
	switch req.Method {
	case jsonrpc.MethodQuery:
		return &types.Response{Result: p.Query(jsonrpc.StringParam(req, 0))}, nil
	case jsonrpc.MethodLaunchProfile:
		p.LaunchProfile(jsonrpc.StringParam(req, 0))
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown method %q", req.Method)
	}
}

// iconFor re-checks the icon because it may have been removed since discovery.
func iconFor(prof types.Profile) string {
	if prof.IconPath == "" {
		return DefaultIcon
	}
	if _, err := os.Stat(prof.IconPath); err != nil {
		return DefaultIcon
	}
	return prof.IconPath
}
