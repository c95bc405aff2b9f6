package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Msg is implemented by every bridge message. The signer returned by
// GetSigners is expected to have been authenticated before the message reaches
// the module.
type Msg interface {
	Route() string
	Type() string
	GetSigners() []sdk.AccAddress
	ValidateBasic() error
}

// MsgServer is the bridge's transaction surface.
type MsgServer interface {
	Initialize(context.Context, *MsgInitialize) (*MsgInitializeResponse, error)
	TakeTokenMintAuthority(context.Context, *MsgTakeTokenMintAuthority) (*MsgTakeTokenMintAuthorityResponse, error)
	RegisterForeignToken(context.Context, *MsgRegisterForeignToken) (*MsgRegisterForeignTokenResponse, error)
	BurnAndBridge(context.Context, *MsgBurnAndBridge) (*MsgBurnAndBridgeResponse, error)
	MintAndBridge(context.Context, *MsgMintAndBridge) (*MsgMintAndBridgeResponse, error)
}

type MsgInitializeResponse struct {
	MintAuthority string
}

type MsgTakeTokenMintAuthorityResponse struct{}

type MsgRegisterForeignTokenResponse struct{}

type MsgBurnAndBridgeResponse struct{}

type MsgMintAndBridgeResponse struct{}

func mustSigner(signer string) []sdk.AccAddress {
	addr, err := sdk.AccAddressFromBech32(signer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{addr}
}
