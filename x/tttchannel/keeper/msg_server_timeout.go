package keeper

import (
	"context"
	"strconv"
	"time"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"tttchannel/x/tttchannel/types"
)

// Timeout records the latest position the caller can prove and starts the
// clock on the player whose turn it is.
func (k msgServer) Timeout(ctx context.Context, msg *types.MsgTimeout) (*types.MsgTimeoutResponse, error) {
	if msg == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidIdentity, "empty request")
	}
	caller, _, err := k.canonicalAddress(msg.Creator)
	if err != nil {
		return nil, errorsmod.Wrap(types.ErrInvalidIdentity, "invalid creator address")
	}

	outcome, _, err := types.Replay(msg.Moves)
	if err != nil {
		return nil, err
	}
	if outcome.Terminal() {
		return nil, errorsmod.Wrapf(types.ErrInvalidOutcome, "game is already %s, settle it with game over", outcome.Status)
	}

	game, err := k.GetGame(ctx, msg.GameID)
	if err != nil {
		return nil, err
	}
	switch {
	case game.Result != nil:
		return nil, errorsmod.Wrapf(types.ErrAlreadySettled, "game %d", game.ID)
	case game.Dispute != nil:
		return nil, errorsmod.Wrapf(types.ErrNotOpen, "game %d already has a dispute until %s", game.ID, game.Dispute.Deadline.Format(time.RFC3339))
	}
	if len(msg.Moves) < len(game.Moves) {
		return nil, errorsmod.Wrapf(types.ErrNoMoveAdvantage, "%d moves submitted, %d recorded", len(msg.Moves), len(game.Moves))
	}
	if !types.IsPrefix(game.Moves, msg.Moves) {
		return nil, errorsmod.Wrapf(types.ErrHistoryMismatch, "game %d has recorded moves [%s]", game.ID, formatMoves(game.Moves))
	}

	role := game.RoleOf(caller)
	if role == types.RoleNone {
		return nil, errorsmod.Wrapf(types.ErrUnauthorized, "%s is not playing game %d", caller, game.ID)
	}
	inactive := types.NextMover(len(msg.Moves))
	if role == inactive {
		return nil, errorsmod.Wrap(types.ErrUnauthorized, "it is your turn")
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	deadline := sdkCtx.BlockTime().Add(params.TimeoutWindow)

	game.Moves = cloneMoves(msg.Moves)
	game.Dispute = &types.Dispute{
		Deadline:       deadline,
		InactivePlayer: game.PlayerFor(inactive),
		WaitingPlayer:  caller,
	}
	if err := k.SetGame(ctx, game); err != nil {
		return nil, errorsmod.Wrap(err, "failed to store game")
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTimeoutOpened,
			sdk.NewAttribute(types.AttrGameID, strconv.FormatUint(game.ID, 10)),
			sdk.NewAttribute(types.AttrInactivePlayer, game.Dispute.InactivePlayer),
			sdk.NewAttribute(types.AttrWaitingPlayer, caller),
			sdk.NewAttribute(types.AttrDeadline, deadline.Format(time.RFC3339)),
			sdk.NewAttribute(types.AttrMoves, formatMoves(game.Moves)),
		),
	)
	k.Logger(ctx).Info("timeout opened", "game_id", game.ID, "inactive", game.Dispute.InactivePlayer, "deadline", deadline)

	return &types.MsgTimeoutResponse{Deadline: deadline}, nil
}

// CancelTimeout lets the accused player close a dispute by answering with a
// longer history that extends the disputed one.
func (k msgServer) CancelTimeout(ctx context.Context, msg *types.MsgCancelTimeout) (*types.MsgCancelTimeoutResponse, error) {
	if msg == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidIdentity, "empty request")
	}
	caller, _, err := k.canonicalAddress(msg.Creator)
	if err != nil {
		return nil, errorsmod.Wrap(types.ErrInvalidIdentity, "invalid creator address")
	}

	game, err := k.GetGame(ctx, msg.GameID)
	if err != nil {
		return nil, err
	}
	if game.Result != nil {
		return nil, errorsmod.Wrapf(types.ErrAlreadySettled, "game %d", game.ID)
	}
	if game.Dispute == nil {
		return nil, errorsmod.Wrapf(types.ErrNotDisputed, "game %d", game.ID)
	}
	if caller != game.Dispute.InactivePlayer {
		return nil, errorsmod.Wrapf(types.ErrUnauthorized, "only %s can answer this timeout", game.Dispute.InactivePlayer)
	}

	// A terminal position is accepted here; it still needs both signatures
	// through GameOver to settle.
	if _, _, err := types.Replay(msg.Moves); err != nil {
		return nil, err
	}
	if len(msg.Moves) <= len(game.Moves) {
		return nil, errorsmod.Wrapf(types.ErrNoMoveAdvantage, "%d moves submitted, %d disputed", len(msg.Moves), len(game.Moves))
	}
	if !types.IsPrefix(game.Moves, msg.Moves) {
		return nil, errorsmod.Wrapf(types.ErrHistoryMismatch, "game %d has disputed moves [%s]", game.ID, formatMoves(game.Moves))
	}

	game.Moves = cloneMoves(msg.Moves)
	game.Dispute = nil
	if err := k.SetGame(ctx, game); err != nil {
		return nil, errorsmod.Wrap(err, "failed to store game")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTimeoutCancelled,
			sdk.NewAttribute(types.AttrGameID, strconv.FormatUint(game.ID, 10)),
			sdk.NewAttribute(types.AttrInactivePlayer, caller),
			sdk.NewAttribute(types.AttrMoves, formatMoves(game.Moves)),
		),
	)
	k.Logger(ctx).Info("timeout cancelled", "game_id", game.ID, "moves", formatMoves(game.Moves))

	return &types.MsgCancelTimeoutResponse{}, nil
}

// WinByForfeit closes a disputed game in favor of the waiting player once the
// deadline has been reached.
func (k msgServer) WinByForfeit(ctx context.Context, msg *types.MsgWinByForfeit) (*types.MsgWinByForfeitResponse, error) {
	if msg == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidIdentity, "empty request")
	}
	caller, _, err := k.canonicalAddress(msg.Creator)
	if err != nil {
		return nil, errorsmod.Wrap(types.ErrInvalidIdentity, "invalid creator address")
	}

	game, err := k.GetGame(ctx, msg.GameID)
	if err != nil {
		return nil, err
	}
	if game.Result != nil {
		return nil, errorsmod.Wrapf(types.ErrAlreadySettled, "game %d", game.ID)
	}
	if game.Dispute == nil {
		return nil, errorsmod.Wrapf(types.ErrNotDisputed, "game %d", game.ID)
	}
	if caller != game.Dispute.WaitingPlayer {
		return nil, errorsmod.Wrapf(types.ErrUnauthorized, "only %s can claim this forfeit", game.Dispute.WaitingPlayer)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime()
	if now.Before(game.Dispute.Deadline) {
		return nil, errorsmod.Wrapf(types.ErrTimeoutNotElapsed, "deadline is %s", game.Dispute.Deadline.Format(time.RFC3339))
	}

	inactive := game.Dispute.InactivePlayer
	game.Dispute = nil
	game.Result = &types.Result{
		Winner:    caller,
		Reason:    types.ReasonForfeit,
		SettledAt: now,
	}
	if err := k.SetGame(ctx, game); err != nil {
		return nil, errorsmod.Wrap(err, "failed to store game")
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventGameForfeited,
			sdk.NewAttribute(types.AttrGameID, strconv.FormatUint(game.ID, 10)),
			sdk.NewAttribute(types.AttrWinner, caller),
			sdk.NewAttribute(types.AttrInactivePlayer, inactive),
		),
	)
	k.Logger(ctx).Info("game forfeited", "game_id", game.ID, "winner", caller, "inactive", inactive)

	return &types.MsgWinByForfeitResponse{Winner: caller}, nil
}
