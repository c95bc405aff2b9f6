package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// Config is the administrative record of a bridge deployment. It is written
// once by Initialize and never changed afterwards.
type Config struct {
	// Owner may register foreign tokens.
	Owner string
	// Relayer is the only identity that may mint on behalf of the foreign chain.
	Relayer string
	// MintAuthority is the address derived from ConfigSeed that holds the mint
	// authority of every bridged denom.
	MintAuthority string
}

// MintAuthorityAddress returns the programmatic identity that bridged denoms
// hand their mint authority to.
func MintAuthorityAddress() sdk.AccAddress {
	return sdk.AccAddress(address.Module(ModuleName, ConfigSeed))
}

// NewConfig builds the config record for the given owner and relayer, both
// stored in canonical bech32 form. It panics on an invalid address.
func NewConfig(owner, relayer string) Config {
	return Config{
		Owner:         sdk.MustAccAddressFromBech32(owner).String(),
		Relayer:       sdk.MustAccAddressFromBech32(relayer).String(),
		MintAuthority: MintAuthorityAddress().String(),
	}
}

// IsOwner reports whether addr, in any valid bech32 spelling, is the owner.
func (c Config) IsOwner(addr string) bool {
	return sameAccount(c.Owner, addr)
}

// IsRelayer reports whether addr, in any valid bech32 spelling, is the relayer.
func (c Config) IsRelayer(addr string) bool {
	return sameAccount(c.Relayer, addr)
}

func (c Config) Validate() error {
	if err := validateCanonicalAddress("owner", c.Owner); err != nil {
		return err
	}
	if err := validateCanonicalAddress("relayer", c.Relayer); err != nil {
		return err
	}
	if c.MintAuthority != MintAuthorityAddress().String() {
		return ErrInvalidMint.Wrapf("config mint authority %s is not the derived bridge authority", c.MintAuthority)
	}
	return nil
}

func validateCanonicalAddress(field, addr string) error {
	acc, err := sdk.AccAddressFromBech32(addr)
	if err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid %s address (%s)", field, err)
	}
	if acc.String() != addr {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "%s address %s is not in canonical form %s", field, addr, acc)
	}
	return nil
}

func sameAccount(a, b string) bool {
	accA, err := sdk.AccAddressFromBech32(a)
	if err != nil {
		return false
	}
	accB, err := sdk.AccAddressFromBech32(b)
	if err != nil {
		return false
	}
	return accA.Equals(accB)
}
