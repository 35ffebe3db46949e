package keeper

import (
	"bytes"
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"tttchannel/x/tttchannel/types"
)

// Challenge opens a new channel between the creator and the challenged
// player and returns its id.
func (k msgServer) Challenge(ctx context.Context, msg *types.MsgChallenge) (*types.MsgChallengeResponse, error) {
	if msg == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidIdentity, "empty request")
	}
	challenger, challengerBz, err := k.canonicalAddress(msg.Creator)
	if err != nil {
		return nil, errorsmod.Wrap(types.ErrInvalidIdentity, "invalid creator address")
	}
	challenged, challengedBz, err := k.canonicalAddress(msg.Challenged)
	if err != nil {
		return nil, errorsmod.Wrap(types.ErrInvalidIdentity, "invalid challenged address")
	}
	if bytes.Equal(challengerBz, challengedBz) {
		return nil, errorsmod.Wrap(types.ErrInvalidIdentity, "cannot challenge yourself")
	}

	gameID, err := k.GameSeq.Next(ctx)
	if err != nil {
		return nil, errorsmod.Wrap(err, "failed to allocate game id")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	game := types.Game{
		ID:         gameID,
		Challenger: challenger,
		Challenged: challenged,
		Moves:      []uint32{},
		CreatedAt:  sdkCtx.BlockTime(),
	}
	if err := k.SetGame(ctx, game); err != nil {
		return nil, errorsmod.Wrap(err, "failed to store game")
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventGameCreated,
			sdk.NewAttribute(types.AttrGameID, strconv.FormatUint(gameID, 10)),
			sdk.NewAttribute(types.AttrChallenger, challenger),
			sdk.NewAttribute(types.AttrChallenged, challenged),
		),
	)
	k.Logger(ctx).Debug("game created", "game_id", gameID, "challenger", challenger, "challenged", challenged)

	return &types.MsgChallengeResponse{GameID: gameID}, nil
}
