package types

import errorsmod "cosmossdk.io/errors"

var (
	ErrOrderMismatch    = errorsmod.Register(ModuleName, 2, "channel order mismatch")
	ErrVersionMismatch  = errorsmod.Register(ModuleName, 3, "channel version mismatch")
	ErrAlreadyConnected = errorsmod.Register(ModuleName, 4, "channel already connected")
	ErrCantCloseChannel = errorsmod.Register(ModuleName, 5, "counter channel cannot be closed")
	ErrInvalidPacket    = errorsmod.Register(ModuleName, 6, "invalid counter packet")
	ErrNotConnected     = errorsmod.Register(ModuleName, 7, "no channel connected")
	ErrInvalidTimeout   = errorsmod.Register(ModuleName, 8, "invalid packet timeout")
	ErrCounterOverflow  = errorsmod.Register(ModuleName, 9, "counter overflow")
)
