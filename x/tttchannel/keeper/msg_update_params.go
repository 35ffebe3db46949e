package keeper

import (
	"bytes"
	"context"

	"cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"tttchannel/x/tttchannel/types"
)

func (s msgServer) UpdateParams(ctx context.Context, req *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidSigner, "empty request")
	}

	signer, err := s.addressCodec.StringToBytes(req.Authority)
	if err != nil {
		return nil, errors.Wrap(types.ErrInvalidSigner, "invalid authority address")
	}

	if !bytes.Equal(signer, s.GetAuthority()) {
		return nil, errors.Wrap(types.ErrInvalidSigner, "unauthorized")
	}

	if err := s.SetParams(ctx, req.Params); err != nil {
		return nil, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventParamsUpdated,
			sdk.NewAttribute(types.AttrTimeoutWindow, req.Params.TimeoutWindow.String()),
		),
	)

	return &types.MsgUpdateParamsResponse{}, nil
}
