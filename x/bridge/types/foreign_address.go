package types

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/wormhole-foundation/wormhole/sdk/vaa"
)

// ForeignAddressFromEVM left-pads a 20 byte EVM address into the 32 byte form
// used on the bridge. The checksum of mixed-case input is not enforced.
func ForeignAddressFromEVM(hexAddr string) (vaa.Address, error) {
	if !common.IsHexAddress(hexAddr) {
		return vaa.Address{}, ErrInvalidForeignAddress.Wrapf("%q is not an EVM address", hexAddr)
	}
	var addr vaa.Address
	copy(addr[:], common.LeftPadBytes(common.HexToAddress(hexAddr).Bytes(), 32))
	return addr, nil
}

// ParseForeignAddress accepts either an EVM address or a full 32 byte hex
// address.
func ParseForeignAddress(s string) (vaa.Address, error) {
	if common.IsHexAddress(s) {
		return ForeignAddressFromEVM(s)
	}
	addr, err := vaa.StringToAddress(s)
	if err != nil {
		return vaa.Address{}, ErrInvalidForeignAddress.Wrap(err.Error())
	}
	if addr == (vaa.Address{}) {
		return vaa.Address{}, ErrInvalidForeignAddress.Wrap("foreign address is zero")
	}
	return addr, nil
}

// EVMAddress returns the EVM address held in the low 20 bytes of addr, or false
// if the upper 12 bytes are not zero.
func EVMAddress(addr vaa.Address) (common.Address, bool) {
	for _, b := range addr[:12] {
		if b != 0 {
			return common.Address{}, false
		}
	}
	return common.BytesToAddress(addr[12:]), true
}
