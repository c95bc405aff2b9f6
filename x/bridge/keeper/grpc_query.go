package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/wormhole-foundation/mintbridge/x/bridge/types"
)

func (k Keeper) Config(c context.Context, req *types.QueryGetConfigRequest) (*types.QueryGetConfigResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(c)

	val, found := k.GetConfig(ctx)
	if !found {
		return nil, status.Error(codes.NotFound, "not found")
	}

	return &types.QueryGetConfigResponse{Config: val}, nil
}

func (k Keeper) ForeignToken(c context.Context, req *types.QueryGetForeignTokenRequest) (*types.QueryGetForeignTokenResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(c)

	val, found := k.GetForeignToken(ctx, req.ForeignAddress)
	if !found {
		return nil, status.Error(codes.NotFound, "not found")
	}

	return &types.QueryGetForeignTokenResponse{ForeignToken: val}, nil
}

func (k Keeper) ForeignTokenAll(c context.Context, req *types.QueryAllForeignTokenRequest) (*types.QueryAllForeignTokenResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(c)

	return &types.QueryAllForeignTokenResponse{ForeignToken: k.GetAllForeignToken(ctx)}, nil
}

func (k Keeper) Params(c context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(c)

	return &types.QueryParamsResponse{Params: k.GetParams(ctx)}, nil
}

// MintAuthority does not read state: the authority is derived, so it is known
// before the bridge is initialized.
func (k Keeper) MintAuthority(_ context.Context, req *types.QueryMintAuthorityRequest) (*types.QueryMintAuthorityResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	return &types.QueryMintAuthorityResponse{MintAuthority: types.MintAuthorityAddress().String()}, nil
}
