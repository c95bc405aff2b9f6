package sample

import (
	"github.com/cosmos/cosmos-sdk/crypto/keys/ed25519"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/wormhole-foundation/wormhole/sdk/vaa"
)

// AccAddress returns a sample account address
func AccAddress() string {
	pk := ed25519.GenPrivKey().PubKey()
	addr := pk.Address()
	return sdk.AccAddress(addr).String()
}

// ForeignAddress returns a random EVM address in its 32 byte bridged form.
func ForeignAddress() vaa.Address {
	var addr vaa.Address
	evm := common.BytesToAddress(ed25519.GenPrivKey().PubKey().Address())
	copy(addr[12:], evm.Bytes())
	return addr
}
