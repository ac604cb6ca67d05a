package cli

import (
	"fmt"
	"runtime"

	sCli "github.com/ondrovic/common/utils/cli"
	"github.com/savioxavier/termlink"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ondrovic/edge-profiles/internal/profiles"
	"github.com/ondrovic/edge-profiles/internal/utils/exporters"
	"github.com/ondrovic/edge-profiles/internal/utils/spinners"
)

var (
	// listCmd prints every discovered profile with the paths used to find them.
	listCmd = &cobra.Command{}
	// clearTerminalScreen clears the terminal before listing; tests may override.
	clearTerminalScreen = func() error { return sCli.ClearTerminalScreen(runtime.GOOS) }
	// listProfiles discovers profiles; tests may override.
	listProfiles = profiles.List
)

func init() {
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List discovered Edge profiles",
		Long:  "Discover Edge profiles and print their display names, directories and icons along with the resolved paths.",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if viper.GetBool("quiet") {
				return nil
			}
			if err := clearTerminalScreen(); err != nil {
				return fmt.Errorf("error clearing terminal: %w", err)
			}
			return nil
		},
		RunE: runList,
	}

	RootCmd.AddCommand(listCmd)
}

// runList discovers profiles and prints them. Progress and paths go to stderr so stdout stays
// plain JSON.
func runList(cmd *cobra.Command, _ []string) error {
	quiet := viper.GetBool("quiet")
	cfg, err := resolvePaths()
	if err != nil {
		return err
	}

	if quiet {
		return exporters.DisplayProfiles(cmd.OutOrStdout(), true, listProfiles(cfg.UserDataRoot), formatFunc)
	}

	stderr := cmd.ErrOrStderr()
	spinner, err := spinners.CreateSpinner(stderr, "Discovering profiles")
	if err != nil {
		return err
	}
	if err := spinner.Start(); err != nil {
		return fmt.Errorf("error starting spinner: %w", err)
	}
	spinners.StopOnSignal(spinner)

	ps := listProfiles(cfg.UserDataRoot)
	if len(ps) == 0 {
		spinner.StopFailMessage("no profiles found")
		_ = spinner.StopFail()
	} else {
		spinner.StopMessage(fmt.Sprintf("found %d profile(s)", len(ps)))
		_ = spinner.Stop()
	}

	exe := cfg.ExecutablePath
	if exe == "" {
		exe = "not found"
	}
	fmt.Fprintf(stderr, "Executable: %s\n", exe)
	fmt.Fprintf(stderr, "User data:  %s\n", termlink.ColorLink(cfg.UserDataRoot, cfg.UserDataRoot, "green"))

	return exporters.DisplayProfiles(cmd.OutOrStdout(), false, ps, formatFunc)
}
