package types

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/cosmos/ibc-counter/internal/validate"
)

// Endpoint identifies the port and channel the counter module is bound to.
type Endpoint struct {
	PortID    string `json:"port_id"`
	ChannelID string `json:"channel_id"`
}

// GenesisState defines the counter module's genesis state.
type GenesisState struct {
	Count    int64     `json:"count"`
	Endpoint *Endpoint `json:"endpoint,omitempty"`
}

// DefaultGenesisState returns a GenesisState with a zero count and no bound endpoint.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if gs.Endpoint == nil {
		return nil
	}

	if err := validate.Endpoint(gs.Endpoint.PortID, gs.Endpoint.ChannelID); err != nil {
		return errorsmod.Wrap(err, "invalid genesis endpoint")
	}

	return nil
}
