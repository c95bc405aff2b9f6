package types

import (
	"github.com/near/borsh-go"
)

func MustMarshalAuthorityMetadata(metadata DenomAuthorityMetadata) []byte {
	bz, err := borsh.Serialize(metadata)
	if err != nil {
		panic(err)
	}
	return bz
}

func UnmarshalAuthorityMetadata(bz []byte) (DenomAuthorityMetadata, error) {
	var metadata DenomAuthorityMetadata
	err := borsh.Deserialize(&metadata, bz)
	return metadata, err
}
