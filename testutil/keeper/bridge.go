package keeper

import (
	"testing"
	"time"

	tmdb "github.com/cometbft/cometbft-db"
	"github.com/cometbft/cometbft/libs/log"
	tmproto "github.com/cometbft/cometbft/proto/tendermint/types"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/std"
	"github.com/cosmos/cosmos-sdk/store"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"

	"github.com/wormhole-foundation/mintbridge/x/bridge/keeper"
	"github.com/wormhole-foundation/mintbridge/x/bridge/types"
	tfkeeper "github.com/wormhole-foundation/mintbridge/x/tokenfactory/keeper"
	tftypes "github.com/wormhole-foundation/mintbridge/x/tokenfactory/types"
)

// TokenLedger is the token ledger together with the SDK keepers backing it.
type TokenLedger struct {
	AccountKeeper authkeeper.AccountKeeper
	BankKeeper    bankkeeper.BaseKeeper
	TokenKeeper   tfkeeper.Keeper
}

func newKeepers(t testing.TB) (*keeper.Keeper, TokenLedger, sdk.Context) {
	keys := sdk.NewKVStoreKeys(
		authtypes.StoreKey,
		banktypes.StoreKey,
		tftypes.StoreKey,
		types.StoreKey,
	)
	maccPerms := map[string][]string{
		tftypes.ModuleName: {authtypes.Minter, authtypes.Burner},
		types.ModuleName:   nil,
	}

	db := tmdb.NewMemDB()
	stateStore := store.NewCommitMultiStore(db)
	stateStore.MountStoreWithDB(keys[authtypes.StoreKey], storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(keys[banktypes.StoreKey], storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(keys[tftypes.StoreKey], storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(keys[types.StoreKey], storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	std.RegisterInterfaces(registry)
	authtypes.RegisterInterfaces(registry)
	banktypes.RegisterInterfaces(registry)
	appCodec := codec.NewProtoCodec(registry)

	govModAddress := authtypes.NewModuleAddress(govtypes.ModuleName).String()
	bech32Prefix := sdk.GetConfig().GetBech32AccountAddrPrefix()

	accountKeeper := authkeeper.NewAccountKeeper(
		appCodec,
		keys[authtypes.StoreKey],
		authtypes.ProtoBaseAccount,
		maccPerms,
		bech32Prefix,
		govModAddress,
	)

	blockedAddrs := make(map[string]bool, len(maccPerms))
	for acc := range maccPerms {
		blockedAddrs[authtypes.NewModuleAddress(acc).String()] = true
	}
	bankKeeper := bankkeeper.NewBaseKeeper(
		appCodec,
		keys[banktypes.StoreKey],
		accountKeeper,
		blockedAddrs,
		govModAddress,
	)

	tokenKeeper := tfkeeper.NewKeeper(keys[tftypes.StoreKey], accountKeeper, bankKeeper)
	k := keeper.NewKeeper(keys[types.StoreKey], tokenKeeper)

	ctx := sdk.NewContext(stateStore, tmproto.Header{
		Time: time.Now(),
	}, false, log.NewNopLogger())

	tokenKeeper.InitGenesis(ctx, *tftypes.DefaultGenesis())
	k.SetParams(ctx, types.DefaultParams())

	return k, TokenLedger{
		AccountKeeper: accountKeeper,
		BankKeeper:    bankKeeper,
		TokenKeeper:   tokenKeeper,
	}, ctx
}

// BridgeKeeper returns a bridge keeper with default params, the token ledger it
// drives and a context over a fresh in-memory store.
func BridgeKeeper(t testing.TB) (*keeper.Keeper, tfkeeper.Keeper, sdk.Context) {
	k, ledger, ctx := newKeepers(t)
	return k, ledger.TokenKeeper, ctx
}

// TokenfactoryKeepers returns a standalone token ledger over real auth and bank
// keepers.
func TokenfactoryKeepers(t testing.TB) (TokenLedger, sdk.Context) {
	_, ledger, ctx := newKeepers(t)
	return ledger, ctx
}
