package cli

import (
	"github.com/spf13/cobra"
)

// launchCmd opens Edge on a profile directory, the same way selecting a result does.
var launchCmd = &cobra.Command{
	Use:     "launch <profile directory>",
	Short:   "Open Edge with a profile",
	Example: "  edge-profiles launch \"Profile 2\"",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPlugin()
		if err != nil {
			return err
		}
		p.LaunchProfile(args[0])
		return nil
	},
}

func init() {
	RootCmd.AddCommand(launchCmd)
}
