package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	tokenfactorytypes "github.com/wormhole-foundation/mintbridge/x/tokenfactory/types"
)

// TokenKeeper is the ledger the bridge burns from and mints into.
type TokenKeeper interface {
	GetAuthorityMetadata(ctx sdk.Context, denom string) (tokenfactorytypes.DenomAuthorityMetadata, error)
	ChangeAdmin(ctx sdk.Context, sender string, denom string, newAdmin string) error
	MintTo(ctx sdk.Context, sender string, amount sdk.Coin, mintTo string) error
	Burn(ctx sdk.Context, holder string, amount sdk.Coin) error
}
