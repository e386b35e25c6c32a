package ibctesting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"

	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"

	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	moduletestutil "github.com/cosmos/cosmos-sdk/types/module/testutil"

	"github.com/cosmos/ibc-counter/modules/apps/counter/keeper"
	"github.com/cosmos/ibc-counter/modules/apps/counter/types"
	"github.com/cosmos/ibc-counter/testing/mock"
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
)

// TestChain is a single chain with the counter keeper mounted on a real
// multistore. Core IBC is replaced by the mock channel keeper and ICS4 wrapper.
type TestChain struct {
	t *testing.T

	ChainID  string
	Codec    codec.Codec
	StoreKey *storetypes.KVStoreKey
	Ctx      sdk.Context

	CounterKeeper keeper.Keeper
	ChannelKeeper *mock.ChannelKeeper
	ICS4Wrapper   *mock.ICS4Wrapper
}

// NewTestChain initializes a new TestChain with an empty counter store.
func NewTestChain(t *testing.T, chainID string) *TestChain {
	t.Helper()

	encodingCfg := moduletestutil.MakeTestEncodingConfig()
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	cms := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	cms.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, cms.LoadLatestVersion())

	header := cmtproto.Header{
		ChainID: chainID,
		Height:  1,
		Time:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	ctx := sdk.NewContext(cms, header, false, log.NewNopLogger())

	channelKeeper := mock.NewChannelKeeper()
	ics4Wrapper := mock.NewICS4Wrapper(channelKeeper)

	return &TestChain{
		t:             t,
		ChainID:       chainID,
		Codec:         encodingCfg.Codec,
		StoreKey:      storeKey,
		Ctx:           ctx,
		CounterKeeper: keeper.NewKeeper(encodingCfg.Codec, runtime.NewKVStoreService(storeKey), ics4Wrapper, channelKeeper, Authority),
		ChannelKeeper: channelKeeper,
		ICS4Wrapper:   ics4Wrapper,
	}
}

// CreateChannel stores a channel end on the mock channel keeper the way core
// IBC does before invoking the ack and confirm handshake callbacks.
func (chain *TestChain) CreateChannel(channelID string, order channeltypes.Order, version string) {
	chain.ChannelKeeper.SetChannel(types.PortID, channelID, channeltypes.NewChannel(
		channeltypes.TRYOPEN,
		order,
		channeltypes.NewCounterparty(types.PortID, CounterpartyChannelID),
		[]string{FirstConnectionID},
		version,
	))
}

// ConnectChannel creates a valid counter channel and binds it through the keeper.
func (chain *TestChain) ConnectChannel(channelID string) {
	chain.CreateChannel(channelID, types.SupportedOrder, types.Version)
	require.NoError(chain.t, chain.CounterKeeper.ConnectChannel(chain.Ctx, types.PortID, channelID, types.Version))
}

// GetCount returns the current counter value, failing the test on error.
func (chain *TestChain) GetCount() int64 {
	count, err := chain.CounterKeeper.GetCount(chain.Ctx)
	require.NoError(chain.t, err)

	return count
}

// NewPacket returns a packet delivered to the counter port on channelID.
func NewPacket(data []byte, sequence uint64, channelID string) channeltypes.Packet {
	return channeltypes.Packet{
		Sequence:           sequence,
		SourcePort:         types.PortID,
		SourceChannel:      CounterpartyChannelID,
		DestinationPort:    types.PortID,
		DestinationChannel: channelID,
		Data:               data,
		TimeoutTimestamp:   DefaultTimeoutTimestamp,
	}
}
