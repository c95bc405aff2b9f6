package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

var _ Msg = &MsgInitialize{}

// MsgInitialize creates the bridge config. The signer becomes the owner.
type MsgInitialize struct {
	Signer  string
	Relayer string
}

func NewMsgInitialize(signer string, relayer string) *MsgInitialize {
	return &MsgInitialize{
		Signer:  signer,
		Relayer: relayer,
	}
}

func (msg *MsgInitialize) Route() string {
	return RouterKey
}

func (msg *MsgInitialize) Type() string {
	return "Initialize"
}

func (msg *MsgInitialize) GetSigners() []sdk.AccAddress {
	return mustSigner(msg.Signer)
}

func (msg *MsgInitialize) ValidateBasic() error {
	_, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid signer address (%s)", err)
	}
	_, err = sdk.AccAddressFromBech32(msg.Relayer)
	if err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid relayer address (%s)", err)
	}
	return nil
}
