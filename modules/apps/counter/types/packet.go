package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	PacketTypeIncrement = "increment"
	PacketTypeReset     = "reset"
)

var (
	_ PacketMsg = IncrementPacket{}
	_ PacketMsg = ResetPacket{}
)

// PacketMsgHandler handles each PacketMsg variant. A new variant adds a method
// here, so every handler stops compiling until it covers the variant.
type PacketMsgHandler interface {
	HandleIncrement(ctx sdk.Context, msg IncrementPacket) error
	HandleReset(ctx sdk.Context, msg ResetPacket) error
}

// PacketMsg is the application payload carried by counter packets. The set of
// implementations is closed to this package.
type PacketMsg interface {
	// Type returns the wire tag of the variant.
	Type() string
	// Dispatch invokes the handler method matching the variant.
	Dispatch(ctx sdk.Context, handler PacketMsgHandler) error

	toWire() packetMsgJSON
}

// IncrementPacket asks the receiving chain to increment its counter by one.
type IncrementPacket struct{}

// Type implements PacketMsg.
func (IncrementPacket) Type() string { return PacketTypeIncrement }

// Dispatch implements PacketMsg.
func (msg IncrementPacket) Dispatch(ctx sdk.Context, handler PacketMsgHandler) error {
	return handler.HandleIncrement(ctx, msg)
}

func (IncrementPacket) toWire() packetMsgJSON {
	return packetMsgJSON{Increment: &incrementJSON{}}
}

// ResetPacket asks the receiving chain to set its counter to Count. Count is
// 32 bits wide on the wire.
type ResetPacket struct {
	Count int32
}

// Type implements PacketMsg.
func (ResetPacket) Type() string { return PacketTypeReset }

// Dispatch implements PacketMsg.
func (msg ResetPacket) Dispatch(ctx sdk.Context, handler PacketMsgHandler) error {
	return handler.HandleReset(ctx, msg)
}

func (msg ResetPacket) toWire() packetMsgJSON {
	count := msg.Count
	return packetMsgJSON{Reset: &resetJSON{Count: &count}}
}

// packetMsgJSON is the externally tagged wire form of a PacketMsg:
// {"increment":{}} or {"reset":{"count":5}}.
type packetMsgJSON struct {
	Increment *incrementJSON `json:"increment,omitempty"`
	Reset     *resetJSON     `json:"reset,omitempty"`
}

type incrementJSON struct{}

type resetJSON struct {
	Count *int32 `json:"count"`
}

// MarshalPacketMsg encodes msg into its JSON wire form.
func MarshalPacketMsg(msg PacketMsg) ([]byte, error) {
	if msg == nil {
		return nil, errorsmod.Wrap(ErrInvalidPacket, "packet message cannot be nil")
	}

	return json.Marshal(msg.toWire())
}

// UnmarshalPacketMsg decodes packet data into a PacketMsg. Exactly one variant
// must be present and unknown fields are rejected.
func UnmarshalPacketMsg(bz []byte) (PacketMsg, error) {
	var wire packetMsgJSON

	decoder := json.NewDecoder(bytes.NewReader(bz))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&wire); err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidPacket, "cannot unmarshal counter packet data: %v", err)
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errorsmod.Wrap(ErrInvalidPacket, "unexpected trailing data after counter packet")
	}

	switch {
	case wire.Increment != nil && wire.Reset == nil:
		return IncrementPacket{}, nil
	case wire.Reset != nil && wire.Increment == nil:
		if wire.Reset.Count == nil {
			return nil, errorsmod.Wrap(ErrInvalidPacket, "reset packet is missing count")
		}
		return ResetPacket{Count: *wire.Reset.Count}, nil
	default:
		return nil, errorsmod.Wrapf(ErrInvalidPacket, "packet must set exactly one of %s or %s", PacketTypeIncrement, PacketTypeReset)
	}
}
