package keeper

import (
	"errors"
	"fmt"
	"strings"

	"cosmossdk.io/collections"
	corestore "cosmossdk.io/core/store"
	"cosmossdk.io/log"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/cosmos/ibc-counter/modules/apps/counter/types"
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
)

var _ types.PacketMsgHandler = (*Keeper)(nil)

// Keeper defines the counter application keeper
type Keeper struct {
	ics4Wrapper   types.ICS4Wrapper
	channelKeeper types.ChannelKeeper

	// the address capable of resetting the counter directly. Typically, this
	// should be the x/gov module account.
	authority string

	// state management
	Schema collections.Schema
	// Count is the current counter value
	Count collections.Item[int64]
	// Endpoint is the (port, channel) the module is bound to once a channel connects
	Endpoint collections.Item[channeltypes.Counterparty]
}

// NewKeeper creates a new counter Keeper instance
func NewKeeper(
	cdc codec.BinaryCodec,
	storeService corestore.KVStoreService,
	ics4Wrapper types.ICS4Wrapper,
	channelKeeper types.ChannelKeeper,
	authority string,
) Keeper {
	if strings.TrimSpace(authority) == "" {
		panic(errors.New("authority must be non-empty"))
	}

	sb := collections.NewSchemaBuilder(storeService)
	k := Keeper{
		ics4Wrapper:   ics4Wrapper,
		channelKeeper: channelKeeper,
		authority:     authority,
		Count:         collections.NewItem(sb, types.CountKey, "count", collections.Int64Value),
		Endpoint:      collections.NewItem(sb, types.EndpointKey, "endpoint", codec.CollValue[channeltypes.Counterparty](cdc)),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}

	k.Schema = schema

	return k
}

// Logger returns a module-specific logger.
func (Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// GetModuleAddress returns the address of the counter module account. It is the
// sender of every call the module makes into itself while handling packets.
func (Keeper) GetModuleAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.ModuleName)
}

// GetCount returns the current counter value, zero if it was never set.
func (k Keeper) GetCount(ctx sdk.Context) (int64, error) {
	count, err := k.Count.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return 0, nil
	}

	return count, err
}

// GetEndpoint returns the bound endpoint and whether one has been bound.
func (k Keeper) GetEndpoint(ctx sdk.Context) (channeltypes.Counterparty, bool, error) {
	endpoint, err := k.Endpoint.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return channeltypes.Counterparty{}, false, nil
	}
	if err != nil {
		return channeltypes.Counterparty{}, false, err
	}

	return endpoint, true, nil
}
