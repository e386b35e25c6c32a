package keeper

import (
	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/ibc-counter/modules/apps/counter/internal/events"
	"github.com/cosmos/ibc-counter/modules/apps/counter/internal/telemetry"
	"github.com/cosmos/ibc-counter/modules/apps/counter/types"
	clienttypes "github.com/cosmos/ibc-go/v10/modules/core/02-client/types"
)

// OnRecvPacket applies a decoded counter packet to local state.
func (k Keeper) OnRecvPacket(ctx sdk.Context, msg types.PacketMsg) error {
	return msg.Dispatch(ctx, k)
}

// HandleIncrement performs the same increment a local caller would, with the
// module account as sender.
func (k Keeper) HandleIncrement(ctx sdk.Context, _ types.IncrementPacket) error {
	_, err := k.Increment(ctx, k.GetModuleAddress())
	return err
}

// HandleReset sets the counter to the packet's count, authorised as the module account.
func (k Keeper) HandleReset(ctx sdk.Context, msg types.ResetPacket) error {
	return k.Reset(ctx, k.GetModuleAddress(), int64(msg.Count))
}

// SendPacket sends msg to the counterparty over the bound endpoint and returns
// the packet sequence. The module registers no transaction that sends packets;
// SendPacket is the entry point for other modules that hold the counter keeper.
func (k Keeper) SendPacket(ctx sdk.Context, msg types.PacketMsg, timeoutTimestamp uint64) (uint64, error) {
	if timeoutTimestamp == 0 {
		return 0, errorsmod.Wrap(types.ErrInvalidTimeout, "timeout timestamp must be non-zero")
	}

	endpoint, found, err := k.GetEndpoint(ctx)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, errorsmod.Wrap(types.ErrNotConnected, "cannot send counter packet")
	}

	data, err := types.MarshalPacketMsg(msg)
	if err != nil {
		return 0, err
	}

	sequence, err := k.ics4Wrapper.SendPacket(ctx, endpoint.PortId, endpoint.ChannelId, clienttypes.ZeroHeight(), timeoutTimestamp, data)
	if err != nil {
		return 0, err
	}

	events.EmitSendPacketEvent(ctx, endpoint, msg.Type(), sequence)
	telemetry.ReportSendPacket(endpoint.PortId, endpoint.ChannelId, msg.Type())

	k.Logger(ctx).Info("IBC send counter packet", "type", msg.Type(), "sequence", sequence)

	return sequence, nil
}
