package keeper

import (
	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/ibc-counter/modules/apps/counter/internal/events"
	"github.com/cosmos/ibc-counter/modules/apps/counter/types"
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
)

// ConnectChannel binds the counter module to portID/channelID when the
// counterparty acknowledges the channel with counterpartyVersion. The channel
// ordering is validated again against the stored channel end, and only one
// endpoint may ever be bound.
func (k Keeper) ConnectChannel(ctx sdk.Context, portID, channelID, counterpartyVersion string) error {
	channel, found := k.channelKeeper.GetChannel(ctx, portID, channelID)
	if !found {
		return errorsmod.Wrapf(channeltypes.ErrChannelNotFound, "port ID (%s) channel ID (%s)", portID, channelID)
	}

	return k.bindChannel(ctx, portID, channelID, channel.Ordering, counterpartyVersion)
}

// ConfirmChannel binds the counter module to portID/channelID when the channel
// opens on the TRYOPEN side. No counterparty version is delivered at this step,
// so the version negotiated on the stored channel end is validated.
func (k Keeper) ConfirmChannel(ctx sdk.Context, portID, channelID string) error {
	channel, found := k.channelKeeper.GetChannel(ctx, portID, channelID)
	if !found {
		return errorsmod.Wrapf(channeltypes.ErrChannelNotFound, "port ID (%s) channel ID (%s)", portID, channelID)
	}

	return k.bindChannel(ctx, portID, channelID, channel.Ordering, channel.Version)
}

func (k Keeper) bindChannel(ctx sdk.Context, portID, channelID string, order channeltypes.Order, version string) error {
	if err := types.ValidateChannelParams(order, version); err != nil {
		return err
	}

	endpoint, found, err := k.GetEndpoint(ctx)
	if err != nil {
		return err
	}
	if found {
		return errorsmod.Wrapf(types.ErrAlreadyConnected, "bound to port ID (%s) channel ID (%s)", endpoint.PortId, endpoint.ChannelId)
	}

	if err := k.Endpoint.Set(ctx, types.NewEndpoint(portID, channelID)); err != nil {
		return err
	}

	events.EmitChannelConnectEvent(ctx, portID, channelID)
	k.Logger(ctx).Info("counter channel connected", "port-id", portID, "channel-id", channelID)

	return nil
}
