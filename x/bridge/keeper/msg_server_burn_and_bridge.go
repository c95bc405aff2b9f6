package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/wormhole-foundation/mintbridge/x/bridge/types"
)

func (k msgServer) BurnAndBridge(goCtx context.Context, msg *types.MsgBurnAndBridge) (*types.MsgBurnAndBridgeResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if _, found := k.GetConfig(ctx); !found {
		return nil, types.ErrNotInitialized
	}

	if msg.Amount == 0 {
		return nil, types.ErrInvalidAmount
	}

	holder, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		return nil, errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid signer address (%s)", err)
	}

	amount := sdk.Coin{Denom: msg.Denom, Amount: sdkmath.NewIntFromUint64(msg.Amount)}
	if err := k.tokenKeeper.Burn(ctx, holder.String(), amount); err != nil {
		return nil, err
	}

	event := types.BurnEvent{
		Account:      holder.String(),
		Denom:        msg.Denom,
		Amount:       msg.Amount,
		ForeignChain: k.GetParams(ctx).ForeignChain,
		Recipient:    msg.Recipient,
	}
	ctx.EventManager().EmitEvent(event.ToEvent())
	k.Logger(ctx).Info("burned for bridging",
		"account", event.Account,
		"denom", msg.Denom,
		"amount", msg.Amount,
		"foreign_chain", event.ForeignChain.String())

	return &types.MsgBurnAndBridgeResponse{}, nil
}
