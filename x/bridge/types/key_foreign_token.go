package types

import "github.com/wormhole-foundation/wormhole/sdk/vaa"

const (
	// ForeignTokenKeyPrefix is the prefix to retrieve all ForeignToken
	ForeignTokenKeyPrefix = "ForeignToken/value/"
)

// ForeignTokenKey returns the store key to retrieve a ForeignToken from the index fields
func ForeignTokenKey(
	foreignAddress vaa.Address,
) []byte {
	var key []byte

	key = append(key, foreignAddress.Bytes()...)
	key = append(key, []byte("/")...)

	return key
}
