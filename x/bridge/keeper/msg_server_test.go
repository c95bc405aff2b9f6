package keeper_test

import (
	"context"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/wormhole-foundation/mintbridge/testutil/keeper"
	"github.com/wormhole-foundation/mintbridge/testutil/sample"
	"github.com/wormhole-foundation/mintbridge/x/bridge/keeper"
	"github.com/wormhole-foundation/mintbridge/x/bridge/types"
	tfkeeper "github.com/wormhole-foundation/mintbridge/x/tokenfactory/keeper"
)

type bridgeEnv struct {
	srv    types.MsgServer
	k      *keeper.Keeper
	tokens tfkeeper.Keeper
	ctx    sdk.Context

	owner   string
	relayer string
}

func (e bridgeEnv) wctx() context.Context {
	return sdk.WrapSDKContext(e.ctx)
}

func setupMsgServer(t testing.TB) bridgeEnv {
	k, tokens, ctx := keepertest.BridgeKeeper(t)
	return bridgeEnv{
		srv:     keeper.NewMsgServerImpl(*k),
		k:       k,
		tokens:  tokens,
		ctx:     ctx,
		owner:   sample.AccAddress(),
		relayer: sample.AccAddress(),
	}
}

// setupInitializedBridge returns a bridge whose config has been created.
func setupInitializedBridge(t testing.TB) bridgeEnv {
	env := setupMsgServer(t)
	_, err := env.srv.Initialize(env.wctx(), types.NewMsgInitialize(env.owner, env.relayer))
	require.NoError(t, err)
	return env
}

// createDenom creates a factory denom administered by creator.
func (e bridgeEnv) createDenom(t testing.TB, creator string, subdenom string) string {
	denom, err := e.tokens.CreateDenom(e.ctx, creator, subdenom)
	require.NoError(t, err)
	return denom
}

// createBridgedDenom creates a denom, mints supply to holders and hands its
// mint authority to the bridge.
func (e bridgeEnv) createBridgedDenom(t testing.TB, holders map[string]int64) string {
	creator := sample.AccAddress()
	denom := e.createDenom(t, creator, "wbtc")
	for holder, amount := range holders {
		require.NoError(t, e.tokens.MintTo(e.ctx, creator, sdk.NewInt64Coin(denom, amount), holder))
	}
	_, err := e.srv.TakeTokenMintAuthority(e.wctx(), types.NewMsgTakeTokenMintAuthority(creator, denom))
	require.NoError(t, err)
	return denom
}

func (e bridgeEnv) balance(holder string, denom string) int64 {
	return e.tokens.GetBalance(e.ctx, sdk.MustAccAddressFromBech32(holder), denom).Amount.Int64()
}

func (e bridgeEnv) supply(denom string) int64 {
	return e.tokens.GetSupply(e.ctx, denom).Amount.Int64()
}

// eventsOfType returns the events of the given type emitted since the event
// manager was last reset.
func eventsOfType(ctx sdk.Context, eventType string) []sdk.Event {
	var out []sdk.Event
	for _, ev := range ctx.EventManager().Events() {
		if ev.Type == eventType {
			out = append(out, ev)
		}
	}
	return out
}

func (e *bridgeEnv) resetEvents() {
	e.ctx = e.ctx.WithEventManager(sdk.NewEventManager())
}
