package cli

import (
	"go.szostok.io/version/extension"
)

// Repository coordinates used for the upgrade notice of the version command.
const (
	RepoOwner = "ondrovic"
	RepoName  = "edge-profiles"
)

func init() {
	RootCmd.AddCommand(
		extension.NewVersionCobraCmd(
			extension.WithUpgradeNotice(RepoOwner, RepoName),
		),
	)
}
