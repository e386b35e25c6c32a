package counter

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/ibc-counter/modules/apps/counter/internal/events"
	"github.com/cosmos/ibc-counter/modules/apps/counter/internal/telemetry"
	"github.com/cosmos/ibc-counter/modules/apps/counter/keeper"
	"github.com/cosmos/ibc-counter/modules/apps/counter/types"
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
	porttypes "github.com/cosmos/ibc-go/v10/modules/core/05-port/types"
	ibcexported "github.com/cosmos/ibc-go/v10/modules/core/exported"
)

var _ porttypes.IBCModule = (*IBCModule)(nil)

// IBCModule implements the ICS26 interface for the counter application given the counter keeper.
type IBCModule struct {
	keeper keeper.Keeper
}

// NewIBCModule creates a new IBCModule given the keeper
func NewIBCModule(k keeper.Keeper) IBCModule {
	return IBCModule{
		keeper: k,
	}
}

// OnChanOpenInit implements the IBCModule interface. The relayer-proposed
// version may be empty, in which case Version is selected.
func (IBCModule) OnChanOpenInit(
	ctx sdk.Context,
	order channeltypes.Order,
	connectionHops []string,
	portID string,
	channelID string,
	counterparty channeltypes.Counterparty,
	version string,
) (string, error) {
	if err := types.ValidateProposedChannelParams(order, version); err != nil {
		return "", err
	}

	return types.Version, nil
}

// OnChanOpenTry implements the IBCModule interface.
func (IBCModule) OnChanOpenTry(
	ctx sdk.Context,
	order channeltypes.Order,
	connectionHops []string,
	portID,
	channelID string,
	counterparty channeltypes.Counterparty,
	counterpartyVersion string,
) (string, error) {
	if err := types.ValidateChannelParams(order, counterpartyVersion); err != nil {
		return "", err
	}

	return types.Version, nil
}

// OnChanOpenAck implements the IBCModule interface
func (im IBCModule) OnChanOpenAck(
	ctx sdk.Context,
	portID,
	channelID string,
	_ string,
	counterpartyVersion string,
) error {
	return im.keeper.ConnectChannel(ctx, portID, channelID, counterpartyVersion)
}

// OnChanOpenConfirm implements the IBCModule interface
func (im IBCModule) OnChanOpenConfirm(
	ctx sdk.Context,
	portID,
	channelID string,
) error {
	return im.keeper.ConfirmChannel(ctx, portID, channelID)
}

// OnChanCloseInit implements the IBCModule interface
func (IBCModule) OnChanCloseInit(
	ctx sdk.Context,
	portID,
	channelID string,
) error {
	// Disallow user-initiated channel closing for counter channels
	return errorsmod.Wrapf(types.ErrCantCloseChannel, "port ID (%s) channel ID (%s)", portID, channelID)
}

// OnChanCloseConfirm implements the IBCModule interface. The counterparty has
// already closed its end, so the local end must follow to stay in sync.
func (IBCModule) OnChanCloseConfirm(
	ctx sdk.Context,
	portID,
	channelID string,
) error {
	return nil
}

// OnRecvPacket implements the IBCModule interface. A successful acknowledgement
// is returned if the packet data is successfully decoded and the counter update
// returns without error.
func (im IBCModule) OnRecvPacket(
	ctx sdk.Context,
	channelVersion string,
	packet channeltypes.Packet,
	relayer sdk.AccAddress,
) ibcexported.Acknowledgement {
	var (
		ackErr     error
		packetType string
	)

	defer func() {
		events.EmitOnRecvPacketEvent(ctx, packet, packetType, ackErr)
		telemetry.ReportOnRecvPacket(packet.SourcePort, packet.SourceChannel, packetType, ackErr == nil)
	}()

	msg, ackErr := types.UnmarshalPacketMsg(packet.GetData())
	if ackErr != nil {
		im.keeper.Logger(ctx).Error(fmt.Sprintf("%s sequence %d", ackErr.Error(), packet.Sequence))
		return channeltypes.NewErrorAcknowledgement(ackErr)
	}

	packetType = msg.Type()

	// NOTE: this needs to set the ackErr variable and not do if ackErr := ... because the ackErr variable is used in the defer function
	ackErr = im.keeper.OnRecvPacket(ctx, msg)
	if ackErr != nil {
		im.keeper.Logger(ctx).Error(fmt.Sprintf("%s sequence %d", ackErr.Error(), packet.Sequence))
		return channeltypes.NewErrorAcknowledgement(ackErr)
	}

	im.keeper.Logger(ctx).Info("successfully handled counter packet", "type", packetType, "sequence", packet.Sequence)

	// NOTE: acknowledgement will be written synchronously during IBC handler execution.
	return types.NewSuccessAcknowledgement()
}

// OnAcknowledgementPacket implements the IBCModule interface. Acknowledgements
// are only observed; they never fail.
func (im IBCModule) OnAcknowledgementPacket(
	ctx sdk.Context,
	channelVersion string,
	packet channeltypes.Packet,
	acknowledgement []byte,
	relayer sdk.AccAddress,
) error {
	var ack channeltypes.Acknowledgement
	if err := channeltypes.SubModuleCdc.UnmarshalJSON(acknowledgement, &ack); err != nil {
		im.keeper.Logger(ctx).Debug("cannot unmarshal counter packet acknowledgement", "sequence", packet.Sequence, "error", err)
		events.EmitOnAcknowledgementPacketEvent(ctx, packet, nil)
		return nil
	}

	events.EmitOnAcknowledgementPacketEvent(ctx, packet, &ack)

	return nil
}

// OnTimeoutPacket implements the IBCModule interface
func (IBCModule) OnTimeoutPacket(
	ctx sdk.Context,
	channelVersion string,
	packet channeltypes.Packet,
	relayer sdk.AccAddress,
) error {
	events.EmitOnTimeoutEvent(ctx, packet)

	return nil
}
