package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/wormhole-foundation/mintbridge/x/bridge/types"
)

func (k msgServer) Initialize(goCtx context.Context, msg *types.MsgInitialize) (*types.MsgInitializeResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if _, found := k.GetConfig(ctx); found {
		return nil, types.ErrAlreadyInitialized
	}

	if _, err := sdk.AccAddressFromBech32(msg.Signer); err != nil {
		return nil, errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid signer address (%s)", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Relayer); err != nil {
		return nil, errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid relayer address (%s)", err)
	}

	if err := k.chargeRecordCreation(ctx, "config"); err != nil {
		return nil, err
	}

	config := types.NewConfig(msg.Signer, msg.Relayer)
	k.SetConfig(ctx, config)

	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeInitialized,
		sdk.NewAttribute(types.AttributeKeyOwner, config.Owner),
		sdk.NewAttribute(types.AttributeKeyRelayer, config.Relayer),
		sdk.NewAttribute(types.AttributeKeyMintAuthority, config.MintAuthority),
	))
	k.Logger(ctx).Info("bridge initialized",
		"owner", config.Owner,
		"relayer", config.Relayer,
		"mint_authority", config.MintAuthority)

	return &types.MsgInitializeResponse{MintAuthority: config.MintAuthority}, nil
}
