package keeper

import (
	"math"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/ibc-counter/modules/apps/counter/internal/events"
	"github.com/cosmos/ibc-counter/modules/apps/counter/internal/telemetry"
	"github.com/cosmos/ibc-counter/modules/apps/counter/types"
	ibcerrors "github.com/cosmos/ibc-go/v10/modules/core/errors"
)

// Increment increases the counter by one on behalf of sender and returns the new value.
func (k Keeper) Increment(ctx sdk.Context, sender sdk.AccAddress) (int64, error) {
	count, err := k.GetCount(ctx)
	if err != nil {
		return 0, err
	}

	if count == math.MaxInt64 {
		return 0, errorsmod.Wrapf(types.ErrCounterOverflow, "cannot increment counter at %d", count)
	}

	count++
	if err := k.Count.Set(ctx, count); err != nil {
		return 0, err
	}

	events.EmitIncrementEvent(ctx, sender, count)
	telemetry.ReportIncrement()

	return count, nil
}

// Reset sets the counter to count. Only the module authority and the module
// account itself may reset the counter.
func (k Keeper) Reset(ctx sdk.Context, sender sdk.AccAddress, count int64) error {
	if !sender.Equals(k.GetModuleAddress()) && sender.String() != k.authority {
		return errorsmod.Wrapf(ibcerrors.ErrUnauthorized, "expected %s or %s, got %s", k.authority, k.GetModuleAddress(), sender)
	}

	if err := k.Count.Set(ctx, count); err != nil {
		return err
	}

	events.EmitResetEvent(ctx, sender, count)
	telemetry.ReportReset()

	return nil
}
