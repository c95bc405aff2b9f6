package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/wormhole-foundation/mintbridge/x/bridge/types"
)

// MintAndBridge has no replay protection: the relayer is trusted to submit each
// foreign burn once.
func (k msgServer) MintAndBridge(goCtx context.Context, msg *types.MsgMintAndBridge) (*types.MsgMintAndBridgeResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	config, found := k.GetConfig(ctx)
	if !found {
		return nil, types.ErrNotInitialized
	}

	if !config.IsRelayer(msg.Signer) {
		return nil, errorsmod.Wrap(types.ErrUnauthorized, "invalid relayer")
	}

	if err := msg.ValidateArguments(); err != nil {
		return nil, err
	}

	foreignToken, found := k.GetForeignToken(ctx, msg.ForeignAddress)
	if !found {
		return nil, errorsmod.Wrapf(types.ErrUnregisteredToken, "foreign address %s", msg.ForeignAddress)
	}
	if foreignToken.LocalDenom != msg.Denom {
		return nil, errorsmod.Wrapf(types.ErrUnregisteredToken, "foreign address %s is registered for %s, not %s",
			msg.ForeignAddress, foreignToken.LocalDenom, msg.Denom)
	}

	recipient := sdk.MustAccAddressFromBech32(msg.Recipient).String()
	amount := sdk.Coin{Denom: msg.Denom, Amount: sdkmath.NewIntFromUint64(msg.Amount)}
	if err := k.tokenKeeper.MintTo(ctx, config.MintAuthority, amount, recipient); err != nil {
		return nil, err
	}

	event := types.MintEvent{
		Account:        recipient,
		Denom:          msg.Denom,
		Amount:         msg.Amount,
		ForeignAddress: msg.ForeignAddress,
		Relayer:        config.Relayer,
	}
	ctx.EventManager().EmitEvent(event.ToEvent())
	k.Logger(ctx).Info("minted from foreign chain",
		"recipient", recipient,
		"denom", msg.Denom,
		"amount", msg.Amount,
		"foreign_address", msg.ForeignAddress.String())

	return &types.MsgMintAndBridgeResponse{}, nil
}
