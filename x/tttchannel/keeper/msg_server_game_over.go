package keeper

import (
	"bytes"
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"tttchannel/x/tttchannel/types"
)

// GameOver settles a game whose final position both players signed. The
// challenger signs the game-state hash and the challenged player signs the
// challenger's signature. Any account may relay the pair.
func (k msgServer) GameOver(ctx context.Context, msg *types.MsgGameOver) (*types.MsgGameOverResponse, error) {
	if msg == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidIdentity, "empty request")
	}
	submitter, _, err := k.canonicalAddress(msg.Creator)
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
	if !types.IsPrefix(game.Moves, msg.Moves) {
		return nil, errorsmod.Wrapf(types.ErrHistoryMismatch, "game %d has %d recorded moves [%s]", game.ID, len(game.Moves), formatMoves(game.Moves))
	}

	winner, winnerBz, err := k.checkOutcome(game, msg.Moves, msg.Winner)
	if err != nil {
		return nil, err
	}

	digest, err := types.GameStateHash(game.ID, msg.Moves, winnerBz)
	if err != nil {
		return nil, err
	}
	if err := k.requireSigner(digest, msg.ChallengerSig, game.Challenger, "challenger"); err != nil {
		return nil, err
	}
	if err := k.requireSigner(types.ApprovalHash(msg.ChallengerSig), msg.ChallengedSig, game.Challenged, "challenged"); err != nil {
		return nil, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	game.Moves = cloneMoves(msg.Moves)
	game.Dispute = nil
	game.Result = &types.Result{
		Winner:    winner,
		Draw:      winner == "",
		Reason:    types.ReasonAgreement,
		SettledAt: sdkCtx.BlockTime(),
	}
	if err := k.SetGame(ctx, game); err != nil {
		return nil, errorsmod.Wrap(err, "failed to store game")
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventGameSettled,
			sdk.NewAttribute(types.AttrGameID, strconv.FormatUint(game.ID, 10)),
			sdk.NewAttribute(types.AttrWinner, winner),
			sdk.NewAttribute(types.AttrDraw, strconv.FormatBool(winner == "")),
			sdk.NewAttribute(types.AttrMoves, formatMoves(game.Moves)),
			sdk.NewAttribute(types.AttrSubmitter, submitter),
		),
	)
	k.Logger(ctx).Info("game settled", "game_id", game.ID, "winner", winner, "moves", formatMoves(game.Moves))

	return &types.MsgGameOverResponse{}, nil
}

// checkOutcome replays moves and compares the recomputed outcome with the
// asserted winner. It returns the canonical winner ("" for a draw) and its
// raw bytes.
func (k Keeper) checkOutcome(game types.Game, moves []uint32, asserted string) (string, []byte, error) {
	outcome, _, err := types.Replay(moves)
	if err != nil {
		return "", nil, err
	}

	switch outcome.Status {
	case types.Draw:
		if asserted != "" {
			return "", nil, errorsmod.Wrapf(types.ErrInvalidOutcome, "board is drawn but %s was asserted as winner", asserted)
		}
		return "", nil, nil
	case types.Won:
		if asserted == "" {
			return "", nil, errorsmod.Wrapf(types.ErrInvalidOutcome, "board is won by the %s but a draw was asserted", outcome.Winner)
		}
		winner, winnerBz, err := k.canonicalAddress(asserted)
		if err != nil {
			return "", nil, errorsmod.Wrap(types.ErrInvalidOutcome, "invalid winner address")
		}
		if expected := game.PlayerFor(outcome.Winner); winner != expected {
			return "", nil, errorsmod.Wrapf(types.ErrInvalidOutcome, "board is won by %s, not %s", expected, winner)
		}
		return winner, winnerBz, nil
	default:
		return "", nil, errorsmod.Wrap(types.ErrInvalidOutcome, "game is still in progress")
	}
}

// requireSigner checks that sig over digest recovers to the expected player.
func (k Keeper) requireSigner(digest, sig []byte, expected, role string) error {
	signer, err := k.oracle.RecoverSigner(digest, sig)
	if err != nil {
		return errorsmod.Wrapf(err, "%s signature", role)
	}
	expectedBz, err := k.addressCodec.StringToBytes(expected)
	if err != nil {
		return errorsmod.Wrapf(types.ErrMalformedState, "stored %s address: %s", role, err)
	}
	if !bytes.Equal(signer, expectedBz) {
		return errorsmod.Wrapf(types.ErrUnauthorized, "%s signature is not from %s", role, expected)
	}
	return nil
}
