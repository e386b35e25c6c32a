package events

import (
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/ibc-counter/modules/apps/counter/types"
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
)

// EmitChannelConnectEvent emits an event once a channel has been bound to the counter module.
func EmitChannelConnectEvent(ctx sdk.Context, portID, channelID string) {
	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeChannelConnect,
			sdk.NewAttribute(types.AttributeKeyMethod, types.MethodChannelConnect),
			sdk.NewAttribute(types.AttributeKeyChannel, channelID),
			sdk.NewAttribute(types.AttributeKeyPort, portID),
		),
		moduleEvent(),
	})
}

// EmitOnRecvPacketEvent emits a counter packet event in the OnRecvPacket callback.
// packetType is empty when the packet data could not be decoded.
func EmitOnRecvPacketEvent(ctx sdk.Context, packet channeltypes.Packet, packetType string, ackErr error) {
	attributes := []sdk.Attribute{
		sdk.NewAttribute(types.AttributeKeyMethod, types.MethodPacketReceive),
		sdk.NewAttribute(types.AttributeKeyPacketType, packetType),
		sdk.NewAttribute(types.AttributeKeySequence, strconv.FormatUint(packet.Sequence, 10)),
		sdk.NewAttribute(types.AttributeKeyAckSuccess, strconv.FormatBool(ackErr == nil)),
	}
	if ackErr != nil {
		attributes = append(attributes, sdk.NewAttribute(types.AttributeKeyAckError, ackErr.Error()))
	}

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeRecvPacket,
			attributes...,
		),
		moduleEvent(),
	})
}

// EmitOnAcknowledgementPacketEvent emits an event observing the acknowledgement of a sent packet.
// The success attribute is only set when the acknowledgement could be decoded.
func EmitOnAcknowledgementPacketEvent(ctx sdk.Context, packet channeltypes.Packet, ack *channeltypes.Acknowledgement) {
	attributes := []sdk.Attribute{
		sdk.NewAttribute(types.AttributeKeyAction, types.ActionPacketAck),
		sdk.NewAttribute(types.AttributeKeySequence, strconv.FormatUint(packet.Sequence, 10)),
	}
	if ack != nil {
		attributes = append(attributes, sdk.NewAttribute(types.AttributeKeyAckSuccess, strconv.FormatBool(ack.Success())))
	}

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypePacket,
			attributes...,
		),
		moduleEvent(),
	})
}

// EmitOnTimeoutEvent emits an event observing the timeout of a sent packet.
func EmitOnTimeoutEvent(ctx sdk.Context, packet channeltypes.Packet) {
	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypePacket,
			sdk.NewAttribute(types.AttributeKeyAction, types.ActionPacketTimeout),
			sdk.NewAttribute(types.AttributeKeySequence, strconv.FormatUint(packet.Sequence, 10)),
		),
		moduleEvent(),
	})
}

// EmitIncrementEvent emits an event when the counter is incremented.
func EmitIncrementEvent(ctx sdk.Context, sender sdk.AccAddress, count int64) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeIncrement,
			sdk.NewAttribute(types.AttributeKeySender, sender.String()),
			sdk.NewAttribute(types.AttributeKeyCount, strconv.FormatInt(count, 10)),
		),
	)
}

// EmitResetEvent emits an event when the counter is reset.
func EmitResetEvent(ctx sdk.Context, sender sdk.AccAddress, count int64) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeReset,
			sdk.NewAttribute(types.AttributeKeySender, sender.String()),
			sdk.NewAttribute(types.AttributeKeyCount, strconv.FormatInt(count, 10)),
		),
	)
}

// EmitSendPacketEvent emits an event when a counter packet is sent over the bound endpoint.
func EmitSendPacketEvent(ctx sdk.Context, endpoint channeltypes.Counterparty, packetType string, sequence uint64) {
	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeSendPacket,
			sdk.NewAttribute(types.AttributeKeyPacketType, packetType),
			sdk.NewAttribute(types.AttributeKeyPort, endpoint.PortId),
			sdk.NewAttribute(types.AttributeKeyChannel, endpoint.ChannelId),
			sdk.NewAttribute(types.AttributeKeySequence, strconv.FormatUint(sequence, 10)),
		),
		moduleEvent(),
	})
}

func moduleEvent() sdk.Event {
	return sdk.NewEvent(
		sdk.EventTypeMessage,
		sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
	)
}
