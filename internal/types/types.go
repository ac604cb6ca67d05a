// Package types holds the data shared between the path resolver, profile discovery, the plugin
// and the host protocol codec.
package types

// cli related.

// CliFlags defines the structure for command-line flags: release channel, explicit executable
// and user-data overrides, and quiet output.
type CliFlags struct {
	Channel      string
	Executable   string
	Quiet        bool
	UserDataRoot string
}

// NewCliFlags initializes and returns a new instance of CliFlags with default values.
func NewCliFlags() *CliFlags {
	return &CliFlags{Channel: "stable"}
}

// end cli related.

// paths related.

// PathConfig is resolved once per process and read-only afterwards. ExecutablePath is empty
// when no browser executable was found.
type PathConfig struct {
	ExecutablePath string
	UserDataRoot   string
}

// HasExecutable reports whether an executable was resolved.
func (p PathConfig) HasExecutable() bool {
	return p.ExecutablePath != ""
}

// end paths related.

// profile related.

// Profile is one browser profile directory found under the user-data root. DirectoryName is
// the literal directory name on disk and is what gets passed to the browser on launch.
type Profile struct {
	DisplayName   string `json:"displayName"`
	DirectoryName string `json:"directoryName"`
	IconPath      string `json:"iconPath,omitempty"`
}

// LocalState models the part of the browser's "Local State" file that carries profile names.
type LocalState struct {
	Profile struct {
		InfoCache map[string]ProfileInfo `json:"info_cache"`
	} `json:"profile"`
}

// ProfileInfo is a single info_cache entry. Name is nil when the entry has no name field.
type ProfileInfo struct {
	Name *string `json:"name"`
}

// NameOverrides returns the directory name to display name mapping, falling back to the
// directory name for entries without a name.
func (ls LocalState) NameOverrides() map[string]string {
	overrides := make(map[string]string, len(ls.Profile.InfoCache))
	for dir, info := range ls.Profile.InfoCache {
		if info.Name != nil {
			overrides[dir] = *info.Name
		} else {
			overrides[dir] = dir
		}
	}
	return overrides
}

// end profile related.

// host protocol related.

// Result is one entry of the list shown by the launcher host. Field names are fixed by the host.
type Result struct {
	Title         string         `json:"Title"`
	SubTitle      string         `json:"SubTitle"`
	IcoPath       string         `json:"IcoPath"`
	JsonRPCAction *JsonRPCAction `json:"JsonRPCAction"`
}

// JsonRPCAction is the call the host makes back into the plugin when a result is selected.
type JsonRPCAction struct {
	Method     string `json:"method"`
	Parameters []any  `json:"parameters"`
}

// Request is a host invocation, passed to the plugin as its single command-line argument.
type Request struct {
	Method     string         `json:"method"`
	Parameters []any          `json:"parameters"`
	Settings   map[string]any `json:"settings,omitempty"`
}

// Response wraps the results written back to the host on stdout.
type Response struct {
	Result []Result `json:"result"`
}

// end host protocol related.
