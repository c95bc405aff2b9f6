package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/wormhole-foundation/wormhole/sdk/vaa"
)

var _ Msg = &MsgBurnAndBridge{}

// MsgBurnAndBridge burns Amount of Denom held by the signer. Recipient is the
// optional account on the foreign chain and is only carried in the burn event.
type MsgBurnAndBridge struct {
	Signer    string
	Denom     string
	Amount    uint64
	Recipient vaa.Address
}

func NewMsgBurnAndBridge(signer string, denom string, amount uint64, recipient vaa.Address) *MsgBurnAndBridge {
	return &MsgBurnAndBridge{
		Signer:    signer,
		Denom:     denom,
		Amount:    amount,
		Recipient: recipient,
	}
}

func (msg *MsgBurnAndBridge) Route() string {
	return RouterKey
}

func (msg *MsgBurnAndBridge) Type() string {
	return "BurnAndBridge"
}

func (msg *MsgBurnAndBridge) GetSigners() []sdk.AccAddress {
	return mustSigner(msg.Signer)
}

func (msg *MsgBurnAndBridge) ValidateBasic() error {
	_, err := sdk.AccAddressFromBech32(msg.Signer)
	if err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid signer address (%s)", err)
	}
	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return errorsmod.Wrap(sdkerrors.ErrInvalidCoins, err.Error())
	}
	if msg.Amount == 0 {
		return ErrInvalidAmount
	}
	return nil
}
