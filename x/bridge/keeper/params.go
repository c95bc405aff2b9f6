package keeper

import (
	"github.com/cosmos/cosmos-sdk/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/wormhole-foundation/mintbridge/x/bridge/types"
)

// GetParams returns the stored params, or the defaults if genesis set none.
func (k Keeper) GetParams(ctx sdk.Context) (params types.Params) {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.KeyPrefix(types.ParamsKey))

	b := store.Get([]byte{0})
	if b == nil {
		return types.DefaultParams()
	}

	types.MustUnmarshal(b, &params)
	return params
}

func (k Keeper) SetParams(ctx sdk.Context, params types.Params) {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.KeyPrefix(types.ParamsKey))
	store.Set([]byte{0}, types.MustMarshal(&params))
}
