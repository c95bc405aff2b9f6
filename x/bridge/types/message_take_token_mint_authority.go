package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

var _ Msg = &MsgTakeTokenMintAuthority{}

// MsgTakeTokenMintAuthority moves the mint authority of Denom from the signer,
// its current holder, to the bridge.
type MsgTakeTokenMintAuthority struct {
	Signer string
	Denom  string
}

func NewMsgTakeTokenMintAuthority(signer string, denom string) *MsgTakeTokenMintAuthority {
	return &MsgTakeTokenMintAuthority{
		Signer: signer,
		Denom:  denom,
	}
}

func (msg *MsgTakeTokenMintAuthority) Route() string {
	return RouterKey
}

func (msg *MsgTakeTokenMintAuthority) Type() string {
	return "TakeTokenMintAuthority"
}

func (msg *MsgTakeTokenMintAuthority) GetSigners() []sdk.AccAddress {
	return mustSigner(msg.Signer)
}

func (msg *MsgTakeTokenMintAuthority) ValidateBasic() error {
	_, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid signer address (%s)", err)
	}
	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return errorsmod.Wrap(ErrInvalidMint, err.Error())
	}
	return nil
}
