// Package profiles discovers the browser profiles stored under a user-data root.
package profiles

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ondrovic/edge-profiles/internal/logging"
	"github.com/ondrovic/edge-profiles/internal/types"
)

const (
	// LocalStateFile holds the profile display names, directly under the user-data root.
	LocalStateFile = "Local State"
	// IconFile is the avatar the browser writes into each profile directory.
	IconFile = "Edge Profile.ico"
	// DefaultDirectory is the first profile's directory name.
	DefaultDirectory = "Default"
	// ProfilePrefix starts the directory name of every additional profile.
	ProfilePrefix = "Profile"
)

// readDir is used by List; tests may override to simulate a listing failure.
var readDir = os.ReadDir

// LoadNameOverrides reads the directory name to display name mapping from the Local State file
// under root.
func LoadNameOverrides(root string) (map[string]string, error) {
	path := filepath.Join(root, LocalStateFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var ls types.LocalState
	if err := json.Unmarshal(data, &ls); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return ls.NameOverrides(), nil
}

// IsProfileDirectory reports whether a directory name follows the browser's profile naming.
func IsProfileDirectory(name string) bool {
	return name == DefaultDirectory || strings.HasPrefix(name, ProfilePrefix)
}

// List returns the profiles found under root in directory-listing order. Failures are logged
// and degrade to fewer names or no profiles; List never returns an error.
func List(root string) []types.Profile {
	names, err := LoadNameOverrides(root)
	if err != nil {
		// A missing Local State is normal on a fresh install.
		if !errors.Is(err, fs.ErrNotExist) {
			logging.Error.Printf("Failed to read Local State: %v", err)
		}
		names = map[string]string{}
	}

	if _, err := os.Stat(root); err != nil {
		return []types.Profile{}
	}

	entries, err := readDir(root)
	if err != nil {
		logging.Error.Printf("Failed to list profile directories: %v", err)
		return []types.Profile{}
	}

	profiles := []types.Profile{}
	for _, entry := range entries {
		dir := entry.Name()
		if !IsProfileDirectory(dir) || !isDir(root, entry) {
			continue
		}

		display, ok := names[dir]
		if !ok {
			display = dir
		}
		profiles = append(profiles, types.Profile{
			DisplayName:   display,
			DirectoryName: dir,
			IconPath:      findIcon(filepath.Join(root, dir)),
		})
	}

	return profiles
}

// isDir follows symlinks, so a linked profile directory still counts.
func isDir(root string, entry os.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(root, entry.Name()))
	return err == nil && info.IsDir()
}

func findIcon(profileDir string) string {
	icon := filepath.Join(profileDir, IconFile)
	if _, err := os.Stat(icon); err != nil {
		return ""
	}
	return icon
}
