package types

// event types
const (
	AttributeAmount          = "amount"
	AttributeCreator         = "creator"
	AttributeSubdenom        = "subdenom"
	AttributeNewTokenDenom   = "new_token_denom"
	AttributeMintToAddress   = "mint_to_address"
	AttributeBurnFromAddress = "burn_from_address"
	AttributeDenom           = "denom"
	AttributeNewAdmin        = "new_admin"

	TypeMsgCreateDenom = "create_denom"
	TypeMsgMint        = "tf_mint"
	TypeMsgBurn        = "tf_burn"
	TypeMsgChangeAdmin = "change_admin"
)
