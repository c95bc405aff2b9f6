package keeper_test

import (
	"github.com/wormhole-foundation/mintbridge/x/tokenfactory/types"
)

func (suite *KeeperTestSuite) TestCreateDenom() {
	for _, tc := range []struct {
		desc     string
		creator  string
		subdenom string
		valid    bool
	}{
		{
			desc:     "subdenom too long",
			subdenom: "assadsadsadasdasdsadsadsadsadsadsadsklkadaskkkdasdasedskhanhassyeunganassfnlksdflksafjlkasd",
			valid:    false,
		},
		{
			desc:     "success case",
			subdenom: "evmos",
			valid:    true,
		},
		{
			desc:     "subdenom having invalid characters",
			subdenom: "bit/***///&&&/coin",
			valid:    false,
		},
		{
			desc:     "invalid creator",
			creator:  "moose",
			subdenom: "evmos",
			valid:    false,
		},
	} {
		suite.Run(tc.desc, func() {
			suite.SetupTest()

			creator := tc.creator
			if creator == "" {
				creator = suite.TestAccs[0].String()
			}

			denom, err := suite.Keeper.CreateDenom(suite.Ctx, creator, tc.subdenom)
			if !tc.valid {
				suite.Require().Error(err)
				return
			}
			suite.Require().NoError(err)

			metadata, err := suite.Keeper.GetAuthorityMetadata(suite.Ctx, denom)
			suite.Require().NoError(err)
			suite.Require().Equal(creator, metadata.Admin)

			suite.Require().Equal([]string{denom}, suite.Keeper.GetDenomsFromCreator(suite.Ctx, creator))
			suite.Require().True(suite.Keeper.HasDenom(suite.Ctx, denom))
			suite.Require().True(suite.Keeper.GetSupply(suite.Ctx, denom).IsZero())
		})
	}
}

func (suite *KeeperTestSuite) TestCreateDenomTwice() {
	suite.CreateDefaultDenom()

	_, err := suite.Keeper.CreateDenom(suite.Ctx, suite.TestAccs[0].String(), "bitcoin")
	suite.Require().ErrorIs(err, types.ErrDenomExists)

	// another creator gets its own namespace
	_, err = suite.Keeper.CreateDenom(suite.Ctx, suite.TestAccs[1].String(), "bitcoin")
	suite.Require().NoError(err)
	suite.Require().Len(suite.Keeper.GetAllDenoms(suite.Ctx), 2)
}
