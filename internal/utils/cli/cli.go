// Package cli provides Cobra flag registration helpers.
package cli

import (
	"github.com/spf13/cobra"
)

// RegisterFlag registers a flag named name on the command's persistent or local flag set,
// binding it to target. The default value's type must match target's element type; bool
// and string flags are supported. Mismatches panic because they are programming
// errors caught at init time.
func RegisterFlag(cmd *cobra.Command, persistent bool, name, shorthand string, value any, usage string, target any) {
	flags := cmd.Flags()
	if persistent {
		flags = cmd.PersistentFlags()
	}

	switch t := target.(type) {
	case *bool:
		v, ok := value.(bool)
		if !ok {
			panic("flag " + name + ": default is not a bool")
		}
		if !v {
			usage += " (default false)"
		}
		flags.BoolVarP(t, name, shorthand, v, usage)
	case *string:
		v, ok := value.(string)
		if !ok {
			panic("flag " + name + ": default is not a string")
		}
		flags.StringVarP(t, name, shorthand, v, usage)
	default:
		panic("flag " + name + ": unsupported target type")
	}
}
