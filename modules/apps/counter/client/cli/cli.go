package cli

import (
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
)

// GetQueryCmd returns the query commands for the counter module
func GetQueryCmd() *cobra.Command {
	queryCmd := &cobra.Command{
		Use:                        "counter",
		Short:                      "Querying commands for the counter module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	queryCmd.AddCommand(
		GetCmdCount(),
		GetCmdEndpoint(),
	)

	return queryCmd
}
