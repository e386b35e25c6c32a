package types

import channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"

// SuccessAckResult is the placeholder result carried by successful counter
// acknowledgements: the JSON string "0".
var SuccessAckResult = []byte(`"0"`)

// NewSuccessAcknowledgement returns the acknowledgement written for every
// successfully handled counter packet.
func NewSuccessAcknowledgement() channeltypes.Acknowledgement {
	return channeltypes.NewResultAcknowledgement(SuccessAckResult)
}
