package validate

import (
	errorsmod "cosmossdk.io/errors"

	host "github.com/cosmos/ibc-go/v10/modules/core/24-host"
)

// Endpoint validates that the portID and channelID identifying one side of a
// channel are valid identifiers.
func Endpoint(portID, channelID string) error {
	if err := host.PortIdentifierValidator(portID); err != nil {
		return errorsmod.Wrapf(err, "invalid port ID %s", portID)
	}

	if err := host.ChannelIdentifierValidator(channelID); err != nil {
		return errorsmod.Wrapf(err, "invalid channel ID %s", channelID)
	}

	return nil
}
