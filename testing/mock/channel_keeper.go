package mock

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/ibc-counter/modules/apps/counter/types"
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
	host "github.com/cosmos/ibc-go/v10/modules/core/24-host"
)

var _ types.ChannelKeeper = (*ChannelKeeper)(nil)

// ChannelKeeper is an in-memory stand-in for the IBC channel keeper.
type ChannelKeeper struct {
	channels map[string]channeltypes.Channel
}

// NewChannelKeeper creates a ChannelKeeper with no channels.
func NewChannelKeeper() *ChannelKeeper {
	return &ChannelKeeper{
		channels: make(map[string]channeltypes.Channel),
	}
}

// SetChannel stores a channel end under portID/channelID.
func (k *ChannelKeeper) SetChannel(portID, channelID string, channel channeltypes.Channel) {
	k.channels[string(host.ChannelKey(portID, channelID))] = channel
}

// GetChannel implements types.ChannelKeeper.
func (k *ChannelKeeper) GetChannel(_ sdk.Context, portID, channelID string) (channeltypes.Channel, bool) {
	channel, found := k.channels[string(host.ChannelKey(portID, channelID))]
	return channel, found
}
