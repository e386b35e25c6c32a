package ibctesting

import (
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
)

const (
	FirstChannelID    = "channel-0"
	SecondChannelID   = "channel-1"
	FirstConnectionID = "connection-0"

	// CounterpartyChannelID is the channel identifier used for the remote end of test channels
	CounterpartyChannelID = "channel-7"

	// InvalidID is an identifier that fails ibc-go host validation
	InvalidID = "invalid/identifier"

	// DefaultTimeoutTimestamp is an arbitrary non-zero packet timeout in nanoseconds
	DefaultTimeoutTimestamp = uint64(1_700_000_000_000_000_000)
)

// Authority is the module authority used by test chains, the x/gov module account.
var Authority = authtypes.NewModuleAddress(govtypes.ModuleName).String()
