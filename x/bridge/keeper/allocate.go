package keeper

import (
	errorsmod "cosmossdk.io/errors"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/wormhole-foundation/mintbridge/x/bridge/types"
)

// chargeRecordCreation consumes the gas for allocating a new bridge record.
// Running out of gas here is reported as ErrAllocationFailed. The meter is
// exhausted afterwards, so callers must return without touching the store.
func (k Keeper) chargeRecordCreation(ctx sdk.Context, record string) (err error) {
	cost := k.GetParams(ctx).RecordCreationGas

	defer func() {
		if r := recover(); r != nil {
			oog, ok := r.(storetypes.ErrorOutOfGas)
			if !ok {
				panic(r)
			}
			err = errorsmod.Wrapf(types.ErrAllocationFailed, "%s: out of gas in location: %v", record, oog.Descriptor)
		}
	}()

	ctx.GasMeter().ConsumeGas(cost, "bridge record creation")
	return nil
}
