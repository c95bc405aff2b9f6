package types

import (
	"fmt"
)

// GenesisState is the bridge's state at genesis.
type GenesisState struct {
	Params Params
	// Config is nil until the bridge has been initialized.
	Config           *Config
	ForeignTokenList []ForeignToken
}

// DefaultGenesis returns an uninitialized bridge with default params.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:           DefaultParams(),
		Config:           nil,
		ForeignTokenList: []ForeignToken{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	if gs.Config != nil {
		if err := gs.Config.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}
	// Check for duplicated index in foreignToken
	foreignTokenIndexMap := make(map[string]struct{})

	for _, elem := range gs.ForeignTokenList {
		if err := elem.Validate(); err != nil {
			return err
		}
		index := string(ForeignTokenKey(elem.ForeignAddress))
		if _, ok := foreignTokenIndexMap[index]; ok {
			return fmt.Errorf("duplicated index for foreignToken")
		}
		foreignTokenIndexMap[index] = struct{}{}
	}

	return nil
}
