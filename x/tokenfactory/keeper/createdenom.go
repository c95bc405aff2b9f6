package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/wormhole-foundation/mintbridge/x/tokenfactory/types"
)

// CreateDenom registers factory/{creator}/{subdenom} with the creator as its
// admin. The creator is used in its canonical bech32 form.
func (k Keeper) CreateDenom(ctx sdk.Context, creatorAddr string, subdenom string) (newTokenDenom string, err error) {
	creator, err := sdk.AccAddressFromBech32(creatorAddr)
	if err != nil {
		return "", types.ErrInvalidCreator.Wrap(err.Error())
	}
	creatorAddr = creator.String()

	denom, err := k.validateCreateDenom(ctx, creatorAddr, subdenom)
	if err != nil {
		return "", err
	}

	err = k.createDenomAfterValidation(ctx, creatorAddr, denom)
	if err != nil {
		return "", err
	}

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.TypeMsgCreateDenom,
			sdk.NewAttribute(types.AttributeCreator, creatorAddr),
			sdk.NewAttribute(types.AttributeNewTokenDenom, denom),
		),
	})
	k.Logger(ctx).Info("created denom", "denom", denom, "creator", creatorAddr)

	return denom, nil
}

// Runs CreateDenom logic after all denom validation has been handled.
// Made into a second function for genesis initialization.
func (k Keeper) createDenomAfterValidation(ctx sdk.Context, creatorAddr string, denom string) (err error) {
	authorityMetadata := types.DenomAuthorityMetadata{
		Admin: creatorAddr,
	}
	err = k.setAuthorityMetadata(ctx, denom, authorityMetadata)
	if err != nil {
		return err
	}

	k.addDenomFromCreator(ctx, creatorAddr, denom)
	return nil
}

func (k Keeper) validateCreateDenom(ctx sdk.Context, creatorAddr string, subdenom string) (newTokenDenom string, err error) {
	denom, err := types.GetTokenDenom(creatorAddr, subdenom)
	if err != nil {
		return "", err
	}

	if k.HasDenom(ctx, denom) {
		return "", types.ErrDenomExists
	}

	return denom, nil
}

// HasDenom reports whether denom was created through the ledger.
func (k Keeper) HasDenom(ctx sdk.Context, denom string) bool {
	return k.GetDenomPrefixStore(ctx, denom).Has([]byte(types.DenomAuthorityMetadataKey))
}

func (k Keeper) addDenomFromCreator(ctx sdk.Context, creator, denom string) {
	store := k.GetCreatorPrefixStore(ctx, creator)
	store.Set([]byte(denom), []byte(denom))
}

// GetDenomsFromCreator returns the denoms created by creator.
func (k Keeper) GetDenomsFromCreator(ctx sdk.Context, creator string) []string {
	store := k.GetCreatorPrefixStore(ctx, creator)

	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	denoms := []string{}
	for ; iterator.Valid(); iterator.Next() {
		denoms = append(denoms, string(iterator.Key()))
	}
	return denoms
}

// GetAllDenoms returns every factory denom, ordered by creator.
func (k Keeper) GetAllDenoms(ctx sdk.Context) []string {
	store := k.GetCreatorsPrefixStore(ctx)

	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	denoms := []string{}
	for ; iterator.Valid(); iterator.Next() {
		denoms = append(denoms, string(iterator.Value()))
	}
	return denoms
}
