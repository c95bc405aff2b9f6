package keeper

import (
	"fmt"

	"github.com/cometbft/cometbft/libs/log"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/wormhole-foundation/mintbridge/x/bridge/types"
)

type (
	Keeper struct {
		storeKey storetypes.StoreKey

		tokenKeeper types.TokenKeeper
	}
)

func NewKeeper(
	storeKey storetypes.StoreKey,
	tokenKeeper types.TokenKeeper,
) *Keeper {
	return &Keeper{
		storeKey:    storeKey,
		tokenKeeper: tokenKeeper,
	}
}

func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}
