//go:build !windows && !linux && !darwin

package paths

var layouts = map[string]Layout{}
