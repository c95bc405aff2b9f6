package keeper

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/wormhole-foundation/mintbridge/x/tokenfactory/types"
)

// GetAuthorityMetadata returns the authority metadata for a specific denom
func (k Keeper) GetAuthorityMetadata(ctx sdk.Context, denom string) (types.DenomAuthorityMetadata, error) {
	bz := k.GetDenomPrefixStore(ctx, denom).Get([]byte(types.DenomAuthorityMetadataKey))
	if bz == nil {
		return types.DenomAuthorityMetadata{}, errorsmod.Wrapf(types.ErrDenomDoesNotExist, "denom: %s", denom)
	}

	return types.UnmarshalAuthorityMetadata(bz)
}

// setAuthorityMetadata stores authority metadata for a specific denom
func (k Keeper) setAuthorityMetadata(ctx sdk.Context, denom string, metadata types.DenomAuthorityMetadata) error {
	err := metadata.Validate()
	if err != nil {
		return errorsmod.Wrap(types.ErrInvalidAuthorityMetadata, err.Error())
	}

	store := k.GetDenomPrefixStore(ctx, denom)
	store.Set([]byte(types.DenomAuthorityMetadataKey), types.MustMarshalAuthorityMetadata(metadata))
	return nil
}

// ChangeAdmin hands the mint authority of denom from sender to newAdmin, stored
// in canonical bech32 form. An empty newAdmin leaves the denom without anyone
// able to mint it.
func (k Keeper) ChangeAdmin(ctx sdk.Context, sender string, denom string, newAdmin string) error {
	metadata, err := k.GetAuthorityMetadata(ctx, denom)
	if err != nil {
		return err
	}

	if !metadata.IsAdmin(sender) {
		return errorsmod.Wrapf(sdkerrors.ErrUnauthorized, "%s is not the admin of %s", sender, denom)
	}

	if newAdmin != "" {
		addr, err := sdk.AccAddressFromBech32(newAdmin)
		if err != nil {
			return errorsmod.Wrap(types.ErrInvalidAuthorityMetadata, err.Error())
		}
		newAdmin = addr.String()
	}

	oldAdmin := metadata.Admin
	metadata.Admin = newAdmin
	if err := k.setAuthorityMetadata(ctx, denom, metadata); err != nil {
		return err
	}

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.TypeMsgChangeAdmin,
			sdk.NewAttribute(types.AttributeDenom, denom),
			sdk.NewAttribute(types.AttributeNewAdmin, newAdmin),
		),
	})
	k.Logger(ctx).Info("changed denom admin", "denom", denom, "old_admin", oldAdmin, "new_admin", newAdmin)

	return nil
}
