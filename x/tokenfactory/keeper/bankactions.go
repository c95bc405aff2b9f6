package keeper

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/wormhole-foundation/mintbridge/x/tokenfactory/types"
)

func validateAmount(amount sdk.Coin) error {
	if amount.Amount.IsNil() || !amount.Amount.IsPositive() {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidCoins, "amount must be positive: %s", amount.Amount)
	}
	// verify that denom is an x/tokenfactory denom
	_, _, err := types.DeconstructDenom(amount.Denom)
	return err
}

// MintTo creates amount out of thin air for mintTo. Only the admin of the
// denom may mint it.
func (k Keeper) MintTo(ctx sdk.Context, sender string, amount sdk.Coin, mintTo string) error {
	if err := validateAmount(amount); err != nil {
		return err
	}

	metadata, err := k.GetAuthorityMetadata(ctx, amount.Denom)
	if err != nil {
		return err
	}
	if !metadata.IsAdmin(sender) {
		return errorsmod.Wrapf(sdkerrors.ErrUnauthorized, "%s does not hold the mint authority of %s", sender, amount.Denom)
	}

	addr, err := sdk.AccAddressFromBech32(mintTo)
	if err != nil {
		return err
	}

	if k.IsModuleAcc(ctx, addr) {
		return types.ErrModuleAccount
	}

	err = k.bankKeeper.MintCoins(ctx, types.ModuleName, sdk.NewCoins(amount))
	if err != nil {
		return err
	}

	err = k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName,
		addr,
		sdk.NewCoins(amount))
	if err != nil {
		return err
	}

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.TypeMsgMint,
			sdk.NewAttribute(types.AttributeMintToAddress, addr.String()),
			sdk.NewAttribute(types.AttributeAmount, amount.String()),
		),
	})

	return nil
}

// Burn destroys amount from the holder's own balance. A balance smaller than
// amount fails with the bank's ErrInsufficientFunds.
func (k Keeper) Burn(ctx sdk.Context, holder string, amount sdk.Coin) error {
	if err := validateAmount(amount); err != nil {
		return err
	}

	addr, err := sdk.AccAddressFromBech32(holder)
	if err != nil {
		return err
	}

	if k.IsModuleAcc(ctx, addr) {
		return types.ErrModuleAccount
	}

	err = k.bankKeeper.SendCoinsFromAccountToModule(ctx,
		addr,
		types.ModuleName,
		sdk.NewCoins(amount))
	if err != nil {
		return err
	}

	err = k.bankKeeper.BurnCoins(ctx, types.ModuleName, sdk.NewCoins(amount))
	if err != nil {
		return err
	}

	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.TypeMsgBurn,
			sdk.NewAttribute(types.AttributeBurnFromAddress, addr.String()),
			sdk.NewAttribute(types.AttributeAmount, amount.String()),
		),
	})

	return nil
}

// GetBalance returns the amount of denom held by addr.
func (k Keeper) GetBalance(ctx sdk.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return k.bankKeeper.GetBalance(ctx, addr, denom)
}

// GetSupply returns the amount of denom in circulation.
func (k Keeper) GetSupply(ctx sdk.Context, denom string) sdk.Coin {
	return k.bankKeeper.GetSupply(ctx, denom)
}
