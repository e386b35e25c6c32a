package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/ibc-counter/modules/apps/counter/types"
)

// InitGenesis initializes the counter module's state from a provided genesis
// state.
func (k Keeper) InitGenesis(ctx sdk.Context, state types.GenesisState) error {
	if err := k.Count.Set(ctx, state.Count); err != nil {
		return err
	}

	if state.Endpoint != nil {
		return k.Endpoint.Set(ctx, types.NewEndpoint(state.Endpoint.PortID, state.Endpoint.ChannelID))
	}

	return nil
}

// ExportGenesis exports the counter module's state to a genesis state.
func (k Keeper) ExportGenesis(ctx sdk.Context) (*types.GenesisState, error) {
	count, err := k.GetCount(ctx)
	if err != nil {
		return nil, err
	}

	gs := &types.GenesisState{Count: count}

	endpoint, found, err := k.GetEndpoint(ctx)
	if err != nil {
		return nil, err
	}
	if found {
		gs.Endpoint = &types.Endpoint{PortID: endpoint.PortId, ChannelID: endpoint.ChannelId}
	}

	return gs, nil
}
