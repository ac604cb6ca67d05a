package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ondrovic/edge-profiles/internal/types"
	"github.com/ondrovic/edge-profiles/internal/utils/exporters"
	"github.com/ondrovic/edge-profiles/internal/utils/formatters"
)

var (
	// queryCmd shows what the launcher would display for a search.
	queryCmd = &cobra.Command{}
	// formatFunc formats values for colored display; tests may override to simulate failure.
	formatFunc = formatters.FormatAsJson
)

func init() {
	queryCmd = &cobra.Command{
		Use:   "query [text...]",
		Short: "Show the launcher results for a search",
		Long:  "Run the same query the launcher sends and print the results. Words are joined with spaces; no text lists every profile.",
		RunE:  runQuery,
	}

	RootCmd.AddCommand(queryCmd)
}

// runQuery prints the response for the joined arguments.
func runQuery(cmd *cobra.Command, args []string) error {
	p, err := loadPlugin()
	if err != nil {
		return err
	}

	resp := types.Response{Result: p.Query(strings.Join(args, " "))}
	return exporters.DisplayResponse(cmd.OutOrStdout(), viper.GetBool("quiet"), resp, formatFunc)
}
