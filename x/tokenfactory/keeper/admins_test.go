package keeper_test

import (
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/wormhole-foundation/mintbridge/x/tokenfactory/types"
)

func (suite *KeeperTestSuite) TestAdminMsgs() {
	addr0bal := int64(0)
	addr1bal := int64(0)

	suite.CreateDefaultDenom()
	// Make sure that the admin is set correctly
	metadata, err := suite.Keeper.GetAuthorityMetadata(suite.Ctx, suite.defaultDenom)
	suite.Require().NoError(err)
	suite.Require().Equal(suite.TestAccs[0].String(), metadata.Admin)

	// Test minting to admins own account
	err = suite.Keeper.MintTo(suite.Ctx, suite.TestAccs[0].String(), sdk.NewInt64Coin(suite.defaultDenom, 10), suite.TestAccs[0].String())
	addr0bal += 10
	suite.Require().NoError(err)
	suite.Require().Equal(addr0bal, suite.Keeper.GetBalance(suite.Ctx, suite.TestAccs[0], suite.defaultDenom).Amount.Int64())

	// Test minting to a different account
	err = suite.Keeper.MintTo(suite.Ctx, suite.TestAccs[0].String(), sdk.NewInt64Coin(suite.defaultDenom, 10), suite.TestAccs[1].String())
	addr1bal += 10
	suite.Require().NoError(err)
	suite.Require().Equal(addr1bal, suite.Keeper.GetBalance(suite.Ctx, suite.TestAccs[1], suite.defaultDenom).Amount.Int64())

	// Test burning from own account
	err = suite.Keeper.Burn(suite.Ctx, suite.TestAccs[0].String(), sdk.NewInt64Coin(suite.defaultDenom, 5))
	addr0bal -= 5
	suite.Require().NoError(err)
	suite.Require().Equal(addr0bal, suite.Keeper.GetBalance(suite.Ctx, suite.TestAccs[0], suite.defaultDenom).Amount.Int64())
	suite.Require().Equal(addr0bal+addr1bal, suite.Keeper.GetSupply(suite.Ctx, suite.defaultDenom).Amount.Int64())

	// Test Change Admin
	err = suite.Keeper.ChangeAdmin(suite.Ctx, suite.TestAccs[0].String(), suite.defaultDenom, suite.TestAccs[1].String())
	suite.Require().NoError(err)
	metadata, err = suite.Keeper.GetAuthorityMetadata(suite.Ctx, suite.defaultDenom)
	suite.Require().NoError(err)
	suite.Require().Equal(suite.TestAccs[1].String(), metadata.Admin)

	// Make sure old admin can no longer do actions
	err = suite.Keeper.MintTo(suite.Ctx, suite.TestAccs[0].String(), sdk.NewInt64Coin(suite.defaultDenom, 5), suite.TestAccs[0].String())
	suite.Require().ErrorIs(err, sdkerrors.ErrUnauthorized)
	err = suite.Keeper.ChangeAdmin(suite.Ctx, suite.TestAccs[0].String(), suite.defaultDenom, suite.TestAccs[0].String())
	suite.Require().ErrorIs(err, sdkerrors.ErrUnauthorized)

	// Make sure the new admin works
	err = suite.Keeper.MintTo(suite.Ctx, suite.TestAccs[1].String(), sdk.NewInt64Coin(suite.defaultDenom, 5), suite.TestAccs[1].String())
	addr1bal += 5
	suite.Require().NoError(err)
	suite.Require().Equal(addr1bal, suite.Keeper.GetBalance(suite.Ctx, suite.TestAccs[1], suite.defaultDenom).Amount.Int64())

	// Try setting admin to empty
	err = suite.Keeper.ChangeAdmin(suite.Ctx, suite.TestAccs[1].String(), suite.defaultDenom, "")
	suite.Require().NoError(err)
	metadata, err = suite.Keeper.GetAuthorityMetadata(suite.Ctx, suite.defaultDenom)
	suite.Require().NoError(err)
	suite.Require().Equal("", metadata.Admin)

	// Nobody can mint a denom without an admin
	err = suite.Keeper.MintTo(suite.Ctx, suite.TestAccs[1].String(), sdk.NewInt64Coin(suite.defaultDenom, 5), suite.TestAccs[1].String())
	suite.Require().ErrorIs(err, sdkerrors.ErrUnauthorized)
}

func (suite *KeeperTestSuite) TestChangeAdminInvalid() {
	suite.CreateDefaultDenom()

	err := suite.Keeper.ChangeAdmin(suite.Ctx, suite.TestAccs[0].String(), suite.defaultDenom, "moose")
	suite.Require().ErrorIs(err, types.ErrInvalidAuthorityMetadata)

	err = suite.Keeper.ChangeAdmin(suite.Ctx, suite.TestAccs[0].String(), "uatom", suite.TestAccs[1].String())
	suite.Require().ErrorIs(err, types.ErrDenomDoesNotExist)
}

func (suite *KeeperTestSuite) TestAdminSpellingDoesNotMatter() {
	upperCreator := strings.ToUpper(suite.TestAccs[0].String())

	// the denom and its admin use the canonical lowercase address
	denom, err := suite.Keeper.CreateDenom(suite.Ctx, upperCreator, "bitcoin")
	suite.Require().NoError(err)
	suite.Require().Equal("factory/"+suite.TestAccs[0].String()+"/bitcoin", denom)
	metadata, err := suite.Keeper.GetAuthorityMetadata(suite.Ctx, denom)
	suite.Require().NoError(err)
	suite.Require().Equal(suite.TestAccs[0].String(), metadata.Admin)

	// either spelling of the admin can mint
	err = suite.Keeper.MintTo(suite.Ctx, upperCreator, sdk.NewInt64Coin(denom, 4), suite.TestAccs[1].String())
	suite.Require().NoError(err)
	err = suite.Keeper.MintTo(suite.Ctx, suite.TestAccs[0].String(), sdk.NewInt64Coin(denom, 4), suite.TestAccs[1].String())
	suite.Require().NoError(err)
	suite.Require().Equal(int64(8), suite.Keeper.GetBalance(suite.Ctx, suite.TestAccs[1], denom).Amount.Int64())

	// a new admin given in upper case is stored canonically and still matches
	err = suite.Keeper.ChangeAdmin(suite.Ctx, suite.TestAccs[0].String(), denom, strings.ToUpper(suite.TestAccs[2].String()))
	suite.Require().NoError(err)
	metadata, err = suite.Keeper.GetAuthorityMetadata(suite.Ctx, denom)
	suite.Require().NoError(err)
	suite.Require().Equal(suite.TestAccs[2].String(), metadata.Admin)

	err = suite.Keeper.MintTo(suite.Ctx, suite.TestAccs[2].String(), sdk.NewInt64Coin(denom, 1), suite.TestAccs[2].String())
	suite.Require().NoError(err)
	err = suite.Keeper.MintTo(suite.Ctx, upperCreator, sdk.NewInt64Coin(denom, 1), suite.TestAccs[2].String())
	suite.Require().ErrorIs(err, sdkerrors.ErrUnauthorized)
}
