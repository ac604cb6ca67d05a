// Package cli provides the Cobra-based commands for edge-profiles: the launcher host entry point
// plus query, launch, list and version for use from a terminal.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ondrovic/edge-profiles/internal/jsonrpc"
	"github.com/ondrovic/edge-profiles/internal/logging"
	"github.com/ondrovic/edge-profiles/internal/paths"
	"github.com/ondrovic/edge-profiles/internal/plugin"
	"github.com/ondrovic/edge-profiles/internal/types"
	"github.com/ondrovic/edge-profiles/internal/utils/cli"
)

var (
	// options holds the command-line flag values.
	options = types.NewCliFlags()
	// newPlugin builds the plugin from the resolved paths; tests may override to inject a spawner.
	newPlugin = plugin.New
	// pathEnv is the environment used for path resolution.
	pathEnv paths.Env = paths.OSEnv{}
)

// RootCmd is the main Cobra command. The launcher host runs it with a single JSON-RPC request
// argument and reads the response from stdout.
var RootCmd = &cobra.Command{
	Use:   "edge-profiles [request]",
	Short: "Find and open Microsoft Edge profiles from a launcher",
	Long: "Launcher plugin that lists Microsoft Edge profiles and opens the selected one.\n" +
		"Called with a JSON-RPC request (e.g. '{\"method\":\"query\",\"parameters\":[\"work\"]}') it\n" +
		"answers on stdout in the launcher's result format.",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return HandleRequest(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	initRootFlags(RootCmd)
	_ = viper.BindPFlags(RootCmd.PersistentFlags())
	viper.SetEnvPrefix("EDGE_PROFILES")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// initRootFlags registers the persistent flags shared by every command.
func initRootFlags(cmd *cobra.Command) {
	cli.RegisterFlag(cmd, true, "quiet", "q", false, "Plain output, no colors, spinner or screen clearing", &options.Quiet)
	cli.RegisterFlag(cmd, true, "channel", "c", options.Channel, "Edge release channel ("+strings.Join(paths.Channels(), ", ")+")", &options.Channel)
	cli.RegisterFlag(cmd, true, "executable", "e", "", "Path to the Edge executable, skips install detection", &options.Executable)
	cli.RegisterFlag(cmd, true, "user-data-dir", "u", "", "Edge user data directory, skips detection", &options.UserDataRoot)
}

// resolvePaths computes the path configuration once for this invocation.
func resolvePaths() (types.PathConfig, error) {
	layout, err := paths.LayoutFor(viper.GetString("channel"))
	if err != nil {
		return types.PathConfig{}, err
	}
	return paths.Resolve(layout, pathEnv, paths.Overrides{
		Executable:   viper.GetString("executable"),
		UserDataRoot: viper.GetString("user-data-dir"),
	}), nil
}

// loadPlugin resolves paths and builds the plugin.
func loadPlugin() (*plugin.Plugin, error) {
	cfg, err := resolvePaths()
	if err != nil {
		return nil, err
	}
	return newPlugin(cfg), nil
}

// HandleRequest decodes a host request, runs it and writes any response to w.
func HandleRequest(w io.Writer, arg string) error {
	req, err := jsonrpc.Decode(arg)
	if err != nil {
		return err
	}

	p, err := loadPlugin()
	if err != nil {
		// The host still needs an answer; without paths every query reports Edge as missing.
		logging.Error.Println(err)
		p = newPlugin(types.PathConfig{})
	}

	resp, err := p.Handle(req)
	if err != nil {
		return fmt.Errorf("error handling request: %w", err)
	}
	if resp == nil {
		return nil
	}
	return jsonrpc.Encode(w, *resp)
}

// Execute runs the RootCmd command, handling any errors that occur during its execution.
// Returns an error if the command fails to execute.
func Execute() error {
	if err := RootCmd.Execute(); err != nil {
		return err
	}

	return nil
}
