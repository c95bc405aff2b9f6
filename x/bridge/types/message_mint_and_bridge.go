package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/wormhole-foundation/wormhole/sdk/vaa"
)

var _ Msg = &MsgMintAndBridge{}

// MsgMintAndBridge mints Amount of Denom to Recipient after a burn of the
// token at ForeignAddress was observed on the foreign chain.
type MsgMintAndBridge struct {
	Signer         string
	ForeignAddress vaa.Address
	Denom          string
	Amount         uint64
	Recipient      string
}

func NewMsgMintAndBridge(signer string, foreignAddress vaa.Address, denom string, amount uint64, recipient string) *MsgMintAndBridge {
	return &MsgMintAndBridge{
		Signer:         signer,
		ForeignAddress: foreignAddress,
		Denom:          denom,
		Amount:         amount,
		Recipient:      recipient,
	}
}

func (msg *MsgMintAndBridge) Route() string {
	return RouterKey
}

func (msg *MsgMintAndBridge) Type() string {
	return "MintAndBridge"
}

func (msg *MsgMintAndBridge) GetSigners() []sdk.AccAddress {
	return mustSigner(msg.Signer)
}

// ValidateBasic only checks the signer. The remaining arguments are checked by
// the keeper after the relayer, so an unauthorized caller always sees
// ErrUnauthorized.
func (msg *MsgMintAndBridge) ValidateBasic() error {
	_, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid signer address (%s)", err)
	}
	return nil
}

// ValidateArguments checks everything but the signer.
func (msg *MsgMintAndBridge) ValidateArguments() error {
	_, err := sdk.AccAddressFromBech32(msg.Recipient)
	if err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid recipient address (%s)", err)
	}
	if msg.ForeignAddress == (vaa.Address{}) {
		return ErrInvalidForeignAddress.Wrap("foreign address is zero")
	}
	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return errorsmod.Wrap(sdkerrors.ErrInvalidCoins, err.Error())
	}
	if msg.Amount == 0 {
		return ErrInvalidAmount
	}
	return nil
}
