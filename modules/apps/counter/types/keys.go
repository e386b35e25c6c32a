package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the counter module name
	ModuleName = "counter"

	// StoreKey is the store key string for the counter module
	StoreKey = ModuleName

	// PortID is the default port id that the counter module binds to
	PortID = "counter"

	// Version defines the current version the counter application
	// negotiates during the channel handshake
	Version = "counter-1"
)

var (
	// CountKey is the store key under which the counter value is stored
	CountKey = collections.NewPrefix(0)

	// EndpointKey is the store key under which the bound channel endpoint is stored
	EndpointKey = collections.NewPrefix(1)
)
