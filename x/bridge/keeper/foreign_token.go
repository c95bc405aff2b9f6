package keeper

import (
	"github.com/cosmos/cosmos-sdk/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/wormhole-foundation/wormhole/sdk/vaa"

	"github.com/wormhole-foundation/mintbridge/x/bridge/types"
)

// SetForeignToken set a specific foreignToken in the store from its index
func (k Keeper) SetForeignToken(ctx sdk.Context, foreignToken types.ForeignToken) {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.KeyPrefix(types.ForeignTokenKeyPrefix))
	b := types.MustMarshal(&foreignToken)
	store.Set(types.ForeignTokenKey(
		foreignToken.ForeignAddress,
	), b)
}

// GetForeignToken returns a foreignToken from its index
func (k Keeper) GetForeignToken(
	ctx sdk.Context,
	foreignAddress vaa.Address,

) (val types.ForeignToken, found bool) {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.KeyPrefix(types.ForeignTokenKeyPrefix))

	b := store.Get(types.ForeignTokenKey(foreignAddress))
	if b == nil {
		return val, false
	}

	types.MustUnmarshal(b, &val)
	return val, true
}

func (k Keeper) HasForeignToken(ctx sdk.Context, foreignAddress vaa.Address) bool {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.KeyPrefix(types.ForeignTokenKeyPrefix))
	return store.Has(types.ForeignTokenKey(foreignAddress))
}

// GetAllForeignToken returns all foreignToken
func (k Keeper) GetAllForeignToken(ctx sdk.Context) (list []types.ForeignToken) {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.KeyPrefix(types.ForeignTokenKeyPrefix))
	iterator := sdk.KVStorePrefixIterator(store, []byte{})

	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var val types.ForeignToken
		types.MustUnmarshal(iterator.Value(), &val)
		list = append(list, val)
	}

	return
}
