package keeper_test

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/wormhole-foundation/mintbridge/x/tokenfactory/types"
)

func (suite *KeeperTestSuite) TestBurnMoreThanBalance() {
	suite.CreateDefaultDenom()
	holder := suite.TestAccs[1]

	err := suite.Keeper.MintTo(suite.Ctx, suite.TestAccs[0].String(), sdk.NewInt64Coin(suite.defaultDenom, 100), holder.String())
	suite.Require().NoError(err)

	err = suite.Keeper.Burn(suite.Ctx, holder.String(), sdk.NewInt64Coin(suite.defaultDenom, 101))
	suite.Require().ErrorIs(err, sdkerrors.ErrInsufficientFunds)
	suite.Require().Equal(int64(100), suite.Keeper.GetBalance(suite.Ctx, holder, suite.defaultDenom).Amount.Int64())
	suite.Require().Equal(int64(100), suite.Keeper.GetSupply(suite.Ctx, suite.defaultDenom).Amount.Int64())

	// burning everything clears the balance
	err = suite.Keeper.Burn(suite.Ctx, holder.String(), sdk.NewInt64Coin(suite.defaultDenom, 100))
	suite.Require().NoError(err)
	suite.Require().True(suite.Keeper.GetBalance(suite.Ctx, holder, suite.defaultDenom).IsZero())
	suite.Require().True(suite.Keeper.GetSupply(suite.Ctx, suite.defaultDenom).IsZero())
}

func (suite *KeeperTestSuite) TestBankActionsInvalidAmounts() {
	suite.CreateDefaultDenom()
	admin := suite.TestAccs[0].String()

	err := suite.Keeper.MintTo(suite.Ctx, admin, sdk.Coin{Denom: suite.defaultDenom, Amount: sdkmath.ZeroInt()}, admin)
	suite.Require().ErrorIs(err, sdkerrors.ErrInvalidCoins)

	err = suite.Keeper.Burn(suite.Ctx, admin, sdk.Coin{Denom: suite.defaultDenom})
	suite.Require().ErrorIs(err, sdkerrors.ErrInvalidCoins)

	err = suite.Keeper.MintTo(suite.Ctx, admin, sdk.NewInt64Coin("uatom", 1), admin)
	suite.Require().ErrorIs(err, types.ErrInvalidDenom)

	err = suite.Keeper.Burn(suite.Ctx, admin, sdk.NewInt64Coin("uatom", 1))
	suite.Require().ErrorIs(err, types.ErrInvalidDenom)
}

func (suite *KeeperTestSuite) TestModuleAccountsRejected() {
	suite.CreateDefaultDenom()
	moduleAddr := authtypes.NewModuleAddress(types.ModuleName)

	err := suite.Keeper.MintTo(suite.Ctx, suite.TestAccs[0].String(), sdk.NewInt64Coin(suite.defaultDenom, 1), moduleAddr.String())
	suite.Require().ErrorIs(err, types.ErrModuleAccount)

	err = suite.Keeper.Burn(suite.Ctx, moduleAddr.String(), sdk.NewInt64Coin(suite.defaultDenom, 1))
	suite.Require().ErrorIs(err, types.ErrModuleAccount)
}

func (suite *KeeperTestSuite) TestBankActionEvents() {
	suite.CreateDefaultDenom()
	admin := suite.TestAccs[0].String()

	suite.Ctx = suite.Ctx.WithEventManager(sdk.NewEventManager())
	suite.Require().NoError(suite.Keeper.MintTo(suite.Ctx, admin, sdk.NewInt64Coin(suite.defaultDenom, 3), admin))
	suite.Require().NoError(suite.Keeper.Burn(suite.Ctx, admin, sdk.NewInt64Coin(suite.defaultDenom, 2)))

	var ledgerEvents []string
	for _, ev := range suite.Ctx.EventManager().Events() {
		if ev.Type == types.TypeMsgMint || ev.Type == types.TypeMsgBurn {
			ledgerEvents = append(ledgerEvents, ev.Type)
		}
	}
	suite.Require().Equal([]string{types.TypeMsgMint, types.TypeMsgBurn}, ledgerEvents)
}

func (suite *KeeperTestSuite) TestBalancesLiveInBank() {
	suite.CreateDefaultDenom()
	admin := suite.TestAccs[0].String()
	holder := suite.TestAccs[1]

	err := suite.Keeper.MintTo(suite.Ctx, admin, sdk.NewInt64Coin(suite.defaultDenom, 40), holder.String())
	suite.Require().NoError(err)
	suite.Require().Equal(int64(40), suite.BankKeeper.GetBalance(suite.Ctx, holder, suite.defaultDenom).Amount.Int64())
	suite.Require().Equal(int64(40), suite.BankKeeper.GetSupply(suite.Ctx, suite.defaultDenom).Amount.Int64())
	suite.Require().NotNil(suite.AccountKeeper.GetAccount(suite.Ctx, holder))

	// nothing is left behind on the module account
	moduleAddr := authtypes.NewModuleAddress(types.ModuleName)
	suite.Require().True(suite.BankKeeper.GetAllBalances(suite.Ctx, moduleAddr).IsZero())

	err = suite.Keeper.Burn(suite.Ctx, holder.String(), sdk.NewInt64Coin(suite.defaultDenom, 15))
	suite.Require().NoError(err)
	suite.Require().Equal(int64(25), suite.BankKeeper.GetBalance(suite.Ctx, holder, suite.defaultDenom).Amount.Int64())
	suite.Require().Equal(int64(25), suite.BankKeeper.GetSupply(suite.Ctx, suite.defaultDenom).Amount.Int64())
	suite.Require().True(suite.BankKeeper.GetAllBalances(suite.Ctx, moduleAddr).IsZero())
}

func (suite *KeeperTestSuite) TestBurnWithoutAccount() {
	suite.CreateDefaultDenom()

	err := suite.Keeper.Burn(suite.Ctx, suite.TestAccs[2].String(), sdk.NewInt64Coin(suite.defaultDenom, 1))
	suite.Require().ErrorIs(err, sdkerrors.ErrInsufficientFunds)
	suite.Require().True(suite.Keeper.GetSupply(suite.Ctx, suite.defaultDenom).IsZero())
}
