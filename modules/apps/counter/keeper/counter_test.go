package keeper_test

import (
	"math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/cosmos/ibc-counter/modules/apps/counter/types"
	ibctesting "github.com/cosmos/ibc-counter/testing"
	ibcerrors "github.com/cosmos/ibc-go/v10/modules/core/errors"
)

func (suite *KeeperTestSuite) TestIncrement() {
	sender := sdk.AccAddress("sender")

	for i := int64(1); i <= 3; i++ {
		count, err := suite.chainA.CounterKeeper.Increment(suite.chainA.Ctx, sender)
		suite.Require().NoError(err)
		suite.Require().Equal(i, count)
		suite.Require().Equal(i, suite.chainA.GetCount())
	}

	events := suite.chainA.Ctx.EventManager().Events()
	suite.Require().Len(events, 3)
	suite.Require().Equal(types.EventTypeIncrement, events[2].Type)

	attr, found := events[2].GetAttribute(types.AttributeKeyCount)
	suite.Require().True(found)
	suite.Require().Equal("3", attr.Value)
}

func (suite *KeeperTestSuite) TestIncrementOverflow() {
	suite.Require().NoError(suite.chainA.CounterKeeper.Count.Set(suite.chainA.Ctx, math.MaxInt64))

	count, err := suite.chainA.CounterKeeper.Increment(suite.chainA.Ctx, sdk.AccAddress("sender"))
	suite.Require().ErrorIs(err, types.ErrCounterOverflow)
	suite.Require().Zero(count)
	suite.Require().Equal(int64(math.MaxInt64), suite.chainA.GetCount())
	suite.Require().Empty(suite.chainA.Ctx.EventManager().Events())
}

func (suite *KeeperTestSuite) TestReset() {
	var sender sdk.AccAddress

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{
			"success: authority", func() {
				sender = sdk.MustAccAddressFromBech32(ibctesting.Authority)
			}, nil,
		},
		{
			"success: module account", func() {
				sender = suite.chainA.CounterKeeper.GetModuleAddress()
			}, nil,
		},
		{
			"failure: unauthorized sender", func() {
				sender = sdk.AccAddress("unauthorized")
			}, ibcerrors.ErrUnauthorized,
		},
		{
			"failure: other module account", func() {
				sender = authtypes.NewModuleAddress("bank")
			}, ibcerrors.ErrUnauthorized,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest() // reset

			_, err := suite.chainA.CounterKeeper.Increment(suite.chainA.Ctx, sdk.AccAddress("sender"))
			suite.Require().NoError(err)

			tc.malleate()

			err = suite.chainA.CounterKeeper.Reset(suite.chainA.Ctx, sender, 100)
			if tc.expErr == nil {
				suite.Require().NoError(err)
				suite.Require().Equal(int64(100), suite.chainA.GetCount())
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
				suite.Require().Equal(int64(1), suite.chainA.GetCount())
			}
		})
	}
}
