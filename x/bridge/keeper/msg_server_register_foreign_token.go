package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/wormhole-foundation/mintbridge/x/bridge/types"
)

func (k msgServer) RegisterForeignToken(goCtx context.Context, msg *types.MsgRegisterForeignToken) (*types.MsgRegisterForeignTokenResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	config, found := k.GetConfig(ctx)
	if !found {
		return nil, types.ErrNotInitialized
	}

	if !config.IsOwner(msg.Signer) {
		return nil, errorsmod.Wrap(types.ErrUnauthorized, "invalid owner")
	}

	foreignToken := types.ForeignToken{
		ForeignAddress: msg.ForeignAddress,
		LocalDenom:     msg.LocalDenom,
	}
	if err := foreignToken.Validate(); err != nil {
		return nil, err
	}

	if k.HasForeignToken(ctx, msg.ForeignAddress) {
		return nil, errorsmod.Wrapf(types.ErrDuplicateRegistration, "foreign address %s", msg.ForeignAddress)
	}

	if err := k.chargeRecordCreation(ctx, "foreign token"); err != nil {
		return nil, err
	}

	k.SetForeignToken(ctx, foreignToken)

	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeForeignTokenRegistered,
		sdk.NewAttribute(types.AttributeKeyForeignAddress, msg.ForeignAddress.String()),
		sdk.NewAttribute(types.AttributeKeyDenom, msg.LocalDenom),
	))
	k.Logger(ctx).Info("registered foreign token",
		"foreign_address", msg.ForeignAddress.String(),
		"denom", msg.LocalDenom)

	return &types.MsgRegisterForeignTokenResponse{}, nil
}
