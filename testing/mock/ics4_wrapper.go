package mock

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/ibc-counter/modules/apps/counter/types"
	clienttypes "github.com/cosmos/ibc-go/v10/modules/core/02-client/types"
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
)

var _ types.ICS4Wrapper = (*ICS4Wrapper)(nil)

// ICS4Wrapper records sent packets instead of committing them.
type ICS4Wrapper struct {
	channelKeeper *ChannelKeeper
	sequence      uint64

	// SentPackets holds every packet sent, in order
	SentPackets []channeltypes.Packet
	// SendPacketErr, when set, is returned by SendPacket
	SendPacketErr error
}

// NewICS4Wrapper creates an ICS4Wrapper that resolves packet destinations from channelKeeper.
func NewICS4Wrapper(channelKeeper *ChannelKeeper) *ICS4Wrapper {
	return &ICS4Wrapper{
		channelKeeper: channelKeeper,
	}
}

// SendPacket implements types.ICS4Wrapper.
func (w *ICS4Wrapper) SendPacket(
	ctx sdk.Context,
	sourcePort string,
	sourceChannel string,
	timeoutHeight clienttypes.Height,
	timeoutTimestamp uint64,
	data []byte,
) (uint64, error) {
	if w.SendPacketErr != nil {
		return 0, w.SendPacketErr
	}

	channel, found := w.channelKeeper.GetChannel(ctx, sourcePort, sourceChannel)
	if !found {
		return 0, channeltypes.ErrChannelNotFound
	}

	w.sequence++
	w.SentPackets = append(w.SentPackets, channeltypes.NewPacket(
		data, w.sequence,
		sourcePort, sourceChannel,
		channel.Counterparty.PortId, channel.Counterparty.ChannelId,
		timeoutHeight, timeoutTimestamp,
	))

	return w.sequence, nil
}
