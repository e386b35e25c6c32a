package counter_test

import (
	"errors"
	"math"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/ibc-counter/modules/apps/counter/types"
	ibctesting "github.com/cosmos/ibc-counter/testing"
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
)

func (suite *CounterTestSuite) TestOnChanOpenInit() {
	var (
		order   channeltypes.Order
		version string
	)

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{
			"success", func() {}, nil,
		},
		{
			"success: empty version string", func() {
				version = ""
			}, nil,
		},
		{
			"invalid order - ORDERED", func() {
				order = channeltypes.ORDERED
			}, types.ErrOrderMismatch,
		},
		{
			"invalid order wins over invalid version", func() {
				order = channeltypes.ORDERED
				version = "counter-2"
			}, types.ErrOrderMismatch,
		},
		{
			"invalid version", func() {
				version = "counter-2"
			}, types.ErrVersionMismatch,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest() // reset

			order = channeltypes.UNORDERED
			version = types.Version

			tc.malleate()

			counterparty := channeltypes.NewCounterparty(types.PortID, "")
			selected, err := suite.module.OnChanOpenInit(suite.chainA.Ctx, order, []string{ibctesting.FirstConnectionID},
				types.PortID, ibctesting.FirstChannelID, counterparty, version,
			)

			if tc.expErr == nil {
				suite.Require().NoError(err)
				suite.Require().Equal(types.Version, selected)
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
				suite.Require().Empty(selected)
			}

			_, found, err := suite.chainA.CounterKeeper.GetEndpoint(suite.chainA.Ctx)
			suite.Require().NoError(err)
			suite.Require().False(found, "open must not bind an endpoint")
		})
	}
}

func (suite *CounterTestSuite) TestOnChanOpenTry() {
	var (
		order               channeltypes.Order
		counterpartyVersion string
	)

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{
			"success", func() {}, nil,
		},
		{
			"invalid order - ORDERED", func() {
				order = channeltypes.ORDERED
			}, types.ErrOrderMismatch,
		},
		{
			"invalid order - NONE", func() {
				order = channeltypes.NONE
			}, types.ErrOrderMismatch,
		},
		{
			"invalid counterparty version", func() {
				counterpartyVersion = "version"
			}, types.ErrVersionMismatch,
		},
		{
			"counterparty version differs only by case", func() {
				counterpartyVersion = "Counter-1"
			}, types.ErrVersionMismatch,
		},
		{
			"empty counterparty version", func() {
				counterpartyVersion = ""
			}, types.ErrVersionMismatch,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest() // reset

			order = channeltypes.UNORDERED
			counterpartyVersion = types.Version

			tc.malleate()

			counterparty := channeltypes.NewCounterparty(types.PortID, ibctesting.CounterpartyChannelID)
			version, err := suite.module.OnChanOpenTry(suite.chainA.Ctx, order, []string{ibctesting.FirstConnectionID},
				types.PortID, ibctesting.FirstChannelID, counterparty, counterpartyVersion,
			)

			if tc.expErr == nil {
				suite.Require().NoError(err)
				suite.Require().Equal(types.Version, version)
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
				suite.Require().Empty(version)
			}
		})
	}
}

func (suite *CounterTestSuite) TestOnChanOpenAck() {
	var (
		order               channeltypes.Order
		counterpartyVersion string
		createChannel       bool
	)

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{
			"success", func() {}, nil,
		},
		{
			"channel not found", func() {
				createChannel = false
			}, channeltypes.ErrChannelNotFound,
		},
		{
			"invalid order", func() {
				order = channeltypes.ORDERED
			}, types.ErrOrderMismatch,
		},
		{
			"invalid counterparty version", func() {
				counterpartyVersion = "version"
			}, types.ErrVersionMismatch,
		},
		{
			"empty counterparty version", func() {
				counterpartyVersion = ""
			}, types.ErrVersionMismatch,
		},
		{
			"already connected", func() {
				suite.chainA.ConnectChannel(ibctesting.SecondChannelID)
			}, types.ErrAlreadyConnected,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest() // reset

			order = channeltypes.UNORDERED
			counterpartyVersion = types.Version
			createChannel = true

			tc.malleate()

			if createChannel {
				suite.chainA.CreateChannel(ibctesting.FirstChannelID, order, types.Version)
			}

			err := suite.module.OnChanOpenAck(suite.chainA.Ctx, types.PortID, ibctesting.FirstChannelID, ibctesting.CounterpartyChannelID, counterpartyVersion)

			endpoint, found, getErr := suite.chainA.CounterKeeper.GetEndpoint(suite.chainA.Ctx)
			suite.Require().NoError(getErr)

			if tc.expErr == nil {
				suite.Require().NoError(err)
				suite.Require().True(found)
				suite.Require().Equal(types.NewEndpoint(types.PortID, ibctesting.FirstChannelID), endpoint)
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
				if found {
					suite.Require().NotEqual(ibctesting.FirstChannelID, endpoint.ChannelId, "failed connect must not rebind the endpoint")
				}
			}
		})
	}
}

func (suite *CounterTestSuite) TestOnChanOpenConfirm() {
	testCases := []struct {
		name    string
		version string
		order   channeltypes.Order
		expErr  error
	}{
		{"success", types.Version, channeltypes.UNORDERED, nil},
		{"invalid negotiated version", "version", channeltypes.UNORDERED, types.ErrVersionMismatch},
		{"invalid order", types.Version, channeltypes.ORDERED, types.ErrOrderMismatch},
		{"empty negotiated version", "", channeltypes.UNORDERED, types.ErrVersionMismatch},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest() // reset

			suite.chainA.CreateChannel(ibctesting.FirstChannelID, tc.order, tc.version)

			err := suite.module.OnChanOpenConfirm(suite.chainA.Ctx, types.PortID, ibctesting.FirstChannelID)
			if tc.expErr == nil {
				suite.Require().NoError(err)
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
			}
		})
	}
}

func (suite *CounterTestSuite) TestChannelHandshake() {
	ctx := suite.chainA.Ctx

	version, err := suite.module.OnChanOpenInit(ctx, channeltypes.UNORDERED, []string{ibctesting.FirstConnectionID},
		types.PortID, ibctesting.FirstChannelID, channeltypes.NewCounterparty(types.PortID, ""), types.Version,
	)
	suite.Require().NoError(err)
	suite.Require().Equal("counter-1", version)

	suite.chainA.CreateChannel(ibctesting.FirstChannelID, channeltypes.UNORDERED, version)
	suite.Require().NoError(suite.module.OnChanOpenAck(ctx, types.PortID, ibctesting.FirstChannelID, ibctesting.CounterpartyChannelID, version))

	connectEvent := suite.findEvent(ctx.EventManager().Events(), types.EventTypeChannelConnect)
	suite.requireAttribute(connectEvent, types.AttributeKeyMethod, types.MethodChannelConnect)
	suite.requireAttribute(connectEvent, types.AttributeKeyChannel, ibctesting.FirstChannelID)
	suite.requireAttribute(connectEvent, types.AttributeKeyPort, types.PortID)

	// a second connect fails and leaves the original endpoint bound
	suite.chainA.CreateChannel(ibctesting.SecondChannelID, channeltypes.UNORDERED, version)
	err = suite.module.OnChanOpenAck(ctx, types.PortID, ibctesting.SecondChannelID, ibctesting.CounterpartyChannelID, version)
	suite.Require().ErrorIs(err, types.ErrAlreadyConnected)

	endpoint, found, err := suite.chainA.CounterKeeper.GetEndpoint(ctx)
	suite.Require().NoError(err)
	suite.Require().True(found)
	suite.Require().Equal(ibctesting.FirstChannelID, endpoint.ChannelId)
	suite.Require().Equal(types.PortID, endpoint.PortId)
}

func (suite *CounterTestSuite) TestOnChanCloseInit() {
	suite.chainA.ConnectChannel(ibctesting.FirstChannelID)

	err := suite.module.OnChanCloseInit(suite.chainA.Ctx, types.PortID, ibctesting.FirstChannelID)
	suite.Require().ErrorIs(err, types.ErrCantCloseChannel)

	err = suite.module.OnChanCloseInit(suite.chainA.Ctx, types.PortID, ibctesting.SecondChannelID)
	suite.Require().ErrorIs(err, types.ErrCantCloseChannel)
}

func (suite *CounterTestSuite) TestOnChanCloseConfirm() {
	suite.chainA.ConnectChannel(ibctesting.FirstChannelID)
	_, err := suite.chainA.CounterKeeper.Increment(suite.chainA.Ctx, suite.chainA.CounterKeeper.GetModuleAddress())
	suite.Require().NoError(err)

	suite.Require().NoError(suite.module.OnChanCloseConfirm(suite.chainA.Ctx, types.PortID, ibctesting.FirstChannelID))

	endpoint, found, err := suite.chainA.CounterKeeper.GetEndpoint(suite.chainA.Ctx)
	suite.Require().NoError(err)
	suite.Require().True(found)
	suite.Require().Equal(ibctesting.FirstChannelID, endpoint.ChannelId)
	suite.Require().Equal(int64(1), suite.chainA.GetCount())
}

func (suite *CounterTestSuite) TestOnRecvPacket() {
	var (
		data     []byte
		expCount int64
	)

	testCases := []struct {
		name     string
		malleate func()
		expAck   channeltypes.Acknowledgement
	}{
		{
			"success: increment",
			func() {
				data = []byte(`{"increment":{}}`)
				expCount = 1
			},
			types.NewSuccessAcknowledgement(),
		},
		{
			"success: reset",
			func() {
				data = []byte(`{"reset":{"count":42}}`)
				expCount = 42
			},
			types.NewSuccessAcknowledgement(),
		},
		{
			"success: reset to negative count",
			func() {
				data = []byte(`{"reset":{"count":-3}}`)
				expCount = -3
			},
			types.NewSuccessAcknowledgement(),
		},
		{
			"failure: malformed packet data",
			func() {
				data = []byte("not json")
			},
			channeltypes.NewErrorAcknowledgement(types.ErrInvalidPacket),
		},
		{
			"failure: unknown variant",
			func() {
				data = []byte(`{"decrement":{}}`)
			},
			channeltypes.NewErrorAcknowledgement(types.ErrInvalidPacket),
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest() // reset
			suite.chainA.ConnectChannel(ibctesting.FirstChannelID)

			expCount = 0
			tc.malleate()

			packet := ibctesting.NewPacket(data, 1, ibctesting.FirstChannelID)
			ack := suite.module.OnRecvPacket(suite.chainA.Ctx, types.Version, packet, nil)

			suite.Require().Equal(tc.expAck.Success(), ack.Success())
			suite.Require().Equal(tc.expAck.Acknowledgement(), ack.Acknowledgement())
			suite.Require().Equal(expCount, suite.chainA.GetCount())

			recvEvent := suite.findEvent(suite.chainA.Ctx.EventManager().Events(), types.EventTypeRecvPacket)
			suite.requireAttribute(recvEvent, types.AttributeKeyMethod, types.MethodPacketReceive)
			suite.requireAttribute(recvEvent, types.AttributeKeyAckSuccess, strconv.FormatBool(tc.expAck.Success()))
		})
	}
}

func (suite *CounterTestSuite) TestOnRecvPacketIncrementOverflow() {
	ctx := suite.chainA.Ctx
	suite.Require().NoError(suite.chainA.CounterKeeper.Count.Set(ctx, math.MaxInt64))

	packet := ibctesting.NewPacket([]byte(`{"increment":{}}`), 1, ibctesting.FirstChannelID)
	ack := suite.module.OnRecvPacket(ctx, types.Version, packet, nil)

	expAck := channeltypes.NewErrorAcknowledgement(types.ErrCounterOverflow)
	suite.Require().False(ack.Success())
	suite.Require().Equal(expAck.Acknowledgement(), ack.Acknowledgement())
	suite.Require().Equal(int64(math.MaxInt64), suite.chainA.GetCount())
}

func (suite *CounterTestSuite) TestOnRecvPacketIncrementMatchesLocalIncrement() {
	ctx := suite.chainA.Ctx

	_, err := suite.chainA.CounterKeeper.Increment(ctx, sdk.AccAddress("local-caller"))
	suite.Require().NoError(err)
	suite.Require().Equal(int64(1), suite.chainA.GetCount())

	data, err := types.MarshalPacketMsg(types.IncrementPacket{})
	suite.Require().NoError(err)

	ack := suite.module.OnRecvPacket(ctx, types.Version, ibctesting.NewPacket(data, 1, ibctesting.FirstChannelID), nil)
	suite.Require().True(ack.Success())
	suite.Require().Equal(int64(2), suite.chainA.GetCount())
}

func (suite *CounterTestSuite) TestOnAcknowledgementPacket() {
	testCases := []struct {
		name   string
		ack    []byte
		expSet bool
	}{
		{"success acknowledgement", types.NewSuccessAcknowledgement().Acknowledgement(), true},
		{"error acknowledgement", channeltypes.NewErrorAcknowledgement(errors.New("failed")).Acknowledgement(), true},
		{"undecodable acknowledgement", []byte("invalid"), false},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest() // reset

			packet := ibctesting.NewPacket([]byte(`{"increment":{}}`), 1, ibctesting.FirstChannelID)
			err := suite.module.OnAcknowledgementPacket(suite.chainA.Ctx, types.Version, packet, tc.ack, nil)
			suite.Require().NoError(err)

			ackEvent := suite.findEvent(suite.chainA.Ctx.EventManager().Events(), types.EventTypePacket)
			suite.requireAttribute(ackEvent, types.AttributeKeyAction, types.ActionPacketAck)

			_, hasSuccess := ackEvent.GetAttribute(types.AttributeKeyAckSuccess)
			suite.Require().Equal(tc.expSet, hasSuccess)
			suite.Require().Equal(int64(0), suite.chainA.GetCount())
		})
	}
}

func (suite *CounterTestSuite) TestOnTimeoutPacket() {
	packet := ibctesting.NewPacket([]byte(`{"increment":{}}`), 1, ibctesting.FirstChannelID)

	err := suite.module.OnTimeoutPacket(suite.chainA.Ctx, types.Version, packet, nil)
	suite.Require().NoError(err)

	timeoutEvent := suite.findEvent(suite.chainA.Ctx.EventManager().Events(), types.EventTypePacket)
	suite.requireAttribute(timeoutEvent, types.AttributeKeyAction, types.ActionPacketTimeout)
	suite.Require().Equal(int64(0), suite.chainA.GetCount())
}
