package types

import (
	errorsmod "cosmossdk.io/errors"

	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
)

// SupportedOrder is the only channel ordering the counter application accepts.
const SupportedOrder = channeltypes.UNORDERED

// ValidateChannelParams checks that a channel uses the supported ordering and
// that version is exactly Version.
func ValidateChannelParams(order channeltypes.Order, version string) error {
	if order != SupportedOrder {
		return errorsmod.Wrapf(ErrOrderMismatch, "expected %s channel, got %s", SupportedOrder, order)
	}

	if version != Version {
		return errorsmod.Wrapf(ErrVersionMismatch, "expected %s, got %q", Version, version)
	}

	return nil
}

// ValidateProposedChannelParams validates the parameters of a channel being
// initialised on this chain. The relayer may leave version empty, in which case
// only the ordering is checked.
func ValidateProposedChannelParams(order channeltypes.Order, version string) error {
	if version == "" {
		version = Version
	}

	return ValidateChannelParams(order, version)
}

// NewEndpoint returns the stored representation of one side of a channel.
func NewEndpoint(portID, channelID string) channeltypes.Counterparty {
	return channeltypes.NewCounterparty(portID, channelID)
}
