package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/wormhole-foundation/mintbridge/x/bridge/types"
)

func (k msgServer) TakeTokenMintAuthority(goCtx context.Context, msg *types.MsgTakeTokenMintAuthority) (*types.MsgTakeTokenMintAuthorityResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	config, found := k.GetConfig(ctx)
	if !found {
		return nil, types.ErrNotInitialized
	}

	metadata, err := k.tokenKeeper.GetAuthorityMetadata(ctx, msg.Denom)
	if err != nil {
		return nil, errorsmod.Wrapf(types.ErrInvalidMint, "%s cannot be bridged: %s", msg.Denom, err)
	}

	// A divested holder fails here: after the first transfer the admin is
	// the bridge.
	if !metadata.IsAdmin(msg.Signer) {
		return nil, errorsmod.Wrapf(types.ErrUnauthorized, "%s is not the mint authority of %s", msg.Signer, msg.Denom)
	}

	if err := k.tokenKeeper.ChangeAdmin(ctx, msg.Signer, msg.Denom, config.MintAuthority); err != nil {
		return nil, err
	}
	previousAdmin := metadata.Admin

	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeMintAuthorityTaken,
		sdk.NewAttribute(types.AttributeKeyDenom, msg.Denom),
		sdk.NewAttribute(types.AttributeKeyPreviousAdmin, previousAdmin),
		sdk.NewAttribute(types.AttributeKeyMintAuthority, config.MintAuthority),
	))
	k.Logger(ctx).Info("took mint authority", "denom", msg.Denom, "previous_admin", previousAdmin)

	return &types.MsgTakeTokenMintAuthorityResponse{}, nil
}
