package types

import (
	"github.com/wormhole-foundation/wormhole/sdk/vaa"
)

const DefaultRecordCreationGas uint64 = 10_000

// Params configure a bridge deployment at genesis.
type Params struct {
	// ForeignChain identifies the remote ledger in burn events.
	ForeignChain vaa.ChainID
	// RecordCreationGas is charged whenever the bridge allocates a new record.
	RecordCreationGas uint64
}

func NewParams(foreignChain vaa.ChainID, recordCreationGas uint64) Params {
	return Params{
		ForeignChain:      foreignChain,
		RecordCreationGas: recordCreationGas,
	}
}

func DefaultParams() Params {
	return NewParams(vaa.ChainIDEthereum, DefaultRecordCreationGas)
}

func (p Params) Validate() error {
	if p.ForeignChain == vaa.ChainIDUnset {
		return ErrInvalidParams.Wrap("foreign chain must be set")
	}
	if p.RecordCreationGas == 0 {
		return ErrInvalidParams.Wrap("record creation gas must be positive")
	}
	return nil
}
