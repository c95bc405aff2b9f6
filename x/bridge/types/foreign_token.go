package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/wormhole-foundation/wormhole/sdk/vaa"
)

// ForeignToken maps a token on the foreign chain to the local denom the bridge
// mints for it.
type ForeignToken struct {
	ForeignAddress vaa.Address
	LocalDenom     string
}

func (t ForeignToken) Validate() error {
	if t.ForeignAddress == (vaa.Address{}) {
		return ErrInvalidForeignAddress.Wrap("foreign address is zero")
	}
	return sdk.ValidateDenom(t.LocalDenom)
}
