package keeper

import (
	"github.com/cosmos/cosmos-sdk/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/wormhole-foundation/mintbridge/x/bridge/types"
)

// SetConfig set config in the store
func (k Keeper) SetConfig(ctx sdk.Context, config types.Config) {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.KeyPrefix(types.ConfigKey))
	b := types.MustMarshal(&config)
	store.Set([]byte{0}, b)
}

// GetConfig returns config
func (k Keeper) GetConfig(ctx sdk.Context) (val types.Config, found bool) {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.KeyPrefix(types.ConfigKey))

	b := store.Get([]byte{0})
	if b == nil {
		return val, false
	}

	types.MustUnmarshal(b, &val)
	return val, true
}
