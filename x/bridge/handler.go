package bridge

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/wormhole-foundation/mintbridge/x/bridge/keeper"
	"github.com/wormhole-foundation/mintbridge/x/bridge/types"
)

// Handler executes a single bridge message.
type Handler func(ctx sdk.Context, msg types.Msg) (*sdk.Result, error)

// NewHandler returns a handler that runs every message against a cached view
// of the store. State and events are committed only if the message succeeds.
func NewHandler(k keeper.Keeper) Handler {
	msgServer := keeper.NewMsgServerImpl(k)

	return func(ctx sdk.Context, msg types.Msg) (*sdk.Result, error) {
		ctx = ctx.WithEventManager(sdk.NewEventManager())

		if err := msg.ValidateBasic(); err != nil {
			return nil, err
		}

		cacheCtx, writeCache := ctx.CacheContext()
		goCtx := sdk.WrapSDKContext(cacheCtx)

		var err error
		switch msg := msg.(type) {
		case *types.MsgInitialize:
			_, err = msgServer.Initialize(goCtx, msg)
		case *types.MsgTakeTokenMintAuthority:
			_, err = msgServer.TakeTokenMintAuthority(goCtx, msg)
		case *types.MsgRegisterForeignToken:
			_, err = msgServer.RegisterForeignToken(goCtx, msg)
		case *types.MsgBurnAndBridge:
			_, err = msgServer.BurnAndBridge(goCtx, msg)
		case *types.MsgMintAndBridge:
			_, err = msgServer.MintAndBridge(goCtx, msg)
		default:
			errMsg := fmt.Sprintf("unrecognized %s message type: %T", types.ModuleName, msg)
			return nil, errorsmod.Wrap(sdkerrors.ErrUnknownRequest, errMsg)
		}
		if err != nil {
			k.Logger(ctx).Debug("bridge message failed", "type", msg.Type(), "error", err.Error())
			return nil, err
		}

		writeCache()

		return &sdk.Result{Events: cacheCtx.EventManager().ABCIEvents()}, nil
	}
}
