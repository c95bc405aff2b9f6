package types

import (
	"strings"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	ModuleDenomPrefix = "factory"
	// Together with the prefix and separators these keep every factory denom
	// within the SDK's 128 byte denom limit.
	MaxSubdenomLength = 44
	MaxHrpLength      = 16
	MaxCreatorLength  = 59 + MaxHrpLength
)

// GetTokenDenom constructs a denom string for tokens created by tokenfactory
// based on an input creator address and a subdenom
// The denom constructed is factory/{creator}/{subdenom}
func GetTokenDenom(creator, subdenom string) (string, error) {
	if len(subdenom) > MaxSubdenomLength {
		return "", ErrSubdenomTooLong
	}
	if len(creator) > MaxCreatorLength {
		return "", ErrCreatorTooLong
	}
	if strings.Contains(creator, "/") {
		return "", ErrInvalidCreator
	}
	denom := strings.Join([]string{ModuleDenomPrefix, creator, subdenom}, "/")
	if err := sdk.ValidateDenom(denom); err != nil {
		return "", errorsmod.Wrap(ErrInvalidDenom, err.Error())
	}
	return denom, nil
}

// DeconstructDenom takes a token denom string and verifies that it is a valid
// denom of the tokenfactory module, and is of the form `factory/{creator}/{subdenom}`
// If valid, it returns the creator, and subdenom.
func DeconstructDenom(denom string) (creator string, subdenom string, err error) {
	if err := sdk.ValidateDenom(denom); err != nil {
		return "", "", errorsmod.Wrap(ErrInvalidDenom, err.Error())
	}

	strParts := strings.Split(denom, "/")
	if len(strParts) < 3 {
		return "", "", errorsmod.Wrapf(ErrInvalidDenom, "not enough parts of denom %s", denom)
	}

	if strParts[0] != ModuleDenomPrefix {
		return "", "", errorsmod.Wrapf(ErrInvalidDenom, "denom prefix is incorrect. Is: %s.  Should be: %s", strParts[0], ModuleDenomPrefix)
	}

	creator = strParts[1]
	creatorAddr, err := sdk.AccAddressFromBech32(creator)
	if err != nil {
		return "", "", errorsmod.Wrapf(ErrInvalidDenom, "Invalid creator address (%s)", err)
	}

	// subdenoms may themselves contain slashes
	subdenom = strings.Join(strParts[2:], "/")

	return creatorAddr.String(), subdenom, nil
}
