package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/wormhole-foundation/wormhole/sdk/vaa"
)

var _ Msg = &MsgRegisterForeignToken{}

// MsgRegisterForeignToken approves ForeignAddress for bridging into LocalDenom.
type MsgRegisterForeignToken struct {
	Signer         string
	ForeignAddress vaa.Address
	LocalDenom     string
}

func NewMsgRegisterForeignToken(signer string, foreignAddress vaa.Address, localDenom string) *MsgRegisterForeignToken {
	return &MsgRegisterForeignToken{
		Signer:         signer,
		ForeignAddress: foreignAddress,
		LocalDenom:     localDenom,
	}
}

func (msg *MsgRegisterForeignToken) Route() string {
	return RouterKey
}

func (msg *MsgRegisterForeignToken) Type() string {
	return "RegisterForeignToken"
}

func (msg *MsgRegisterForeignToken) GetSigners() []sdk.AccAddress {
	return mustSigner(msg.Signer)
}

func (msg *MsgRegisterForeignToken) ValidateBasic() error {
	_, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid signer address (%s)", err)
	}
	return ForeignToken{
		ForeignAddress: msg.ForeignAddress,
		LocalDenom:     msg.LocalDenom,
	}.Validate()
}
