package types

// GenesisDenom is a factory denom together with its mint authority.
type GenesisDenom struct {
	Denom             string
	AuthorityMetadata DenomAuthorityMetadata
}

type GenesisState struct {
	FactoryDenoms []GenesisDenom
}

// DefaultGenesis returns the default token ledger genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		FactoryDenoms: []GenesisDenom{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	seenDenoms := map[string]bool{}

	for _, denom := range gs.FactoryDenoms {
		if seenDenoms[denom.Denom] {
			return ErrInvalidGenesis.Wrapf("duplicate denom: %s", denom.Denom)
		}
		seenDenoms[denom.Denom] = true

		if _, _, err := DeconstructDenom(denom.Denom); err != nil {
			return err
		}

		if err := denom.AuthorityMetadata.Validate(); err != nil {
			return ErrInvalidAuthorityMetadata.Wrap(err.Error())
		}
	}

	return nil
}
