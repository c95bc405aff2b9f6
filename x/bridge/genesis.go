package bridge

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/wormhole-foundation/mintbridge/x/bridge/keeper"
	"github.com/wormhole-foundation/mintbridge/x/bridge/types"
)

// InitGenesis initializes the bridge module's state from a provided genesis
// state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, genState types.GenesisState) {
	k.SetParams(ctx, genState.Params)
	// Set if defined
	if genState.Config != nil {
		k.SetConfig(ctx, *genState.Config)
	}
	// Set all the foreignToken
	for _, elem := range genState.ForeignTokenList {
		k.SetForeignToken(ctx, elem)
	}
}

// ExportGenesis returns the bridge module's exported genesis.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *types.GenesisState {
	genesis := types.DefaultGenesis()
	genesis.Params = k.GetParams(ctx)

	config, found := k.GetConfig(ctx)
	if found {
		genesis.Config = &config
	}
	if list := k.GetAllForeignToken(ctx); list != nil {
		genesis.ForeignTokenList = list
	}

	return genesis
}
