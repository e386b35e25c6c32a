package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/cosmos/gogoproto/proto"
	"github.com/spf13/cobra"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/version"

	"github.com/cosmos/ibc-counter/modules/apps/counter/types"
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
)

// GetCmdCount returns the command handler for querying the counter value.
func GetCmdCount() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "count",
		Short:   "Query the current counter value",
		Long:    "Query the current counter value",
		Args:    cobra.NoArgs,
		Example: fmt.Sprintf("%s query %s count", version.AppName, types.ModuleName),
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, _, err := clientCtx.QueryStore(types.CountKey.Bytes(), types.StoreKey)
			if err != nil {
				return err
			}

			count, err := DecodeCount(bz)
			if err != nil {
				return err
			}

			return clientCtx.PrintString(strconv.FormatInt(count, 10) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)

	return cmd
}

// GetCmdEndpoint returns the command handler for querying the bound channel endpoint.
func GetCmdEndpoint() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "endpoint",
		Short:   "Query the port and channel the counter module is bound to",
		Long:    "Query the port and channel the counter module is bound to",
		Args:    cobra.NoArgs,
		Example: fmt.Sprintf("%s query %s endpoint", version.AppName, types.ModuleName),
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, _, err := clientCtx.QueryStore(types.EndpointKey.Bytes(), types.StoreKey)
			if err != nil {
				return err
			}

			endpoint, err := DecodeEndpoint(bz)
			if err != nil {
				return err
			}

			out, err := json.Marshal(endpoint)
			if err != nil {
				return err
			}

			return clientCtx.PrintRaw(out)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)

	return cmd
}

// DecodeCount decodes the raw stored counter value. An empty value means the
// counter was never set.
func DecodeCount(bz []byte) (int64, error) {
	if len(bz) == 0 {
		return 0, nil
	}

	return collections.Int64Value.Decode(bz)
}

// DecodeEndpoint decodes the raw stored endpoint into its genesis representation.
func DecodeEndpoint(bz []byte) (types.Endpoint, error) {
	if len(bz) == 0 {
		return types.Endpoint{}, errorsmod.Wrap(types.ErrNotConnected, "no endpoint stored")
	}

	var endpoint channeltypes.Counterparty
	if err := proto.Unmarshal(bz, &endpoint); err != nil {
		return types.Endpoint{}, err
	}

	return types.Endpoint{PortID: endpoint.PortId, ChannelID: endpoint.ChannelId}, nil
}
