package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// DenomAuthorityMetadata records who may mint a factory denom. An empty Admin
// means nobody can.
type DenomAuthorityMetadata struct {
	Admin string
}

// Validate requires Admin to be empty or a bech32 address in canonical form.
func (metadata DenomAuthorityMetadata) Validate() error {
	if metadata.Admin != "" {
		addr, err := sdk.AccAddressFromBech32(metadata.Admin)
		if err != nil {
			return err
		}
		if addr.String() != metadata.Admin {
			return fmt.Errorf("admin %s is not in canonical form %s", metadata.Admin, addr)
		}
	}
	return nil
}

// IsAdmin reports whether addr is the admin. Addresses are compared by bytes,
// so any valid spelling of the admin's bech32 address matches.
func (metadata DenomAuthorityMetadata) IsAdmin(addr string) bool {
	if metadata.Admin == "" {
		return false
	}
	admin, err := sdk.AccAddressFromBech32(metadata.Admin)
	if err != nil {
		return false
	}
	sender, err := sdk.AccAddressFromBech32(addr)
	if err != nil {
		return false
	}
	return admin.Equals(sender)
}
