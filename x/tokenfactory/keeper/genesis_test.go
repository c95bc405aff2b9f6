package keeper_test

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/wormhole-foundation/mintbridge/x/tokenfactory/types"
)

func (suite *KeeperTestSuite) TestGenesis() {
	creator := suite.TestAccs[0].String()
	denom, err := types.GetTokenDenom(creator, "bitcoin")
	suite.Require().NoError(err)

	genesisState := types.GenesisState{
		FactoryDenoms: []types.GenesisDenom{
			{
				Denom: denom,
				AuthorityMetadata: types.DenomAuthorityMetadata{
					Admin: suite.TestAccs[1].String(),
				},
			},
		},
	}
	suite.Require().NoError(genesisState.Validate())

	suite.Keeper.InitGenesis(suite.Ctx, genesisState)

	metadata, err := suite.Keeper.GetAuthorityMetadata(suite.Ctx, denom)
	suite.Require().NoError(err)
	suite.Require().Equal(suite.TestAccs[1].String(), metadata.Admin)
	suite.Require().Equal([]string{denom}, suite.Keeper.GetDenomsFromCreator(suite.Ctx, creator))

	// the imported admin can mint through the bank module
	err = suite.Keeper.MintTo(suite.Ctx, suite.TestAccs[1].String(), sdk.NewInt64Coin(denom, 10), suite.TestAccs[2].String())
	suite.Require().NoError(err)
	suite.Require().Equal(int64(10), suite.Keeper.GetSupply(suite.Ctx, denom).Amount.Int64())

	exported := suite.Keeper.ExportGenesis(suite.Ctx)
	suite.Require().Equal(genesisState.FactoryDenoms, exported.FactoryDenoms)
}

func (suite *KeeperTestSuite) TestGenesisCreatesModuleAccount() {
	moduleAddr := authtypes.NewModuleAddress(types.ModuleName)

	suite.Keeper.InitGenesis(suite.Ctx, *types.DefaultGenesis())

	acc := suite.AccountKeeper.GetAccount(suite.Ctx, moduleAddr)
	suite.Require().NotNil(acc)
	macc, ok := acc.(authtypes.ModuleAccountI)
	suite.Require().True(ok)
	suite.Require().True(macc.HasPermission(authtypes.Minter))
	suite.Require().True(macc.HasPermission(authtypes.Burner))
}
