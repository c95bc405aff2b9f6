package types

import (
	"github.com/wormhole-foundation/wormhole/sdk/vaa"
)

type QueryGetConfigRequest struct{}

type QueryGetConfigResponse struct {
	Config Config
}

type QueryGetForeignTokenRequest struct {
	ForeignAddress vaa.Address
}

type QueryGetForeignTokenResponse struct {
	ForeignToken ForeignToken
}

type QueryAllForeignTokenRequest struct{}

type QueryAllForeignTokenResponse struct {
	ForeignToken []ForeignToken
}

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params
}

type QueryMintAuthorityRequest struct{}

type QueryMintAuthorityResponse struct {
	MintAuthority string
}
