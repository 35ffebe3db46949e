package keeper

import (
	"context"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"tttchannel/x/tttchannel/types"
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the QueryServer interface
// for the provided Keeper.
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = (*queryServer)(nil)

func (q queryServer) Params(ctx context.Context, _ *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	params, err := q.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryParamsResponse{Params: params}, nil
}

// GamesLength returns how many games have ever been created.
func (q queryServer) GamesLength(ctx context.Context, _ *types.QueryGamesLengthRequest) (*types.QueryGamesLengthResponse, error) {
	n, err := q.GameSeq.Peek(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryGamesLengthResponse{Length: n}, nil
}

func (q queryServer) Game(ctx context.Context, req *types.QueryGameRequest) (*types.QueryGameResponse, error) {
	if req == nil {
		return nil, errorsmod.Wrap(types.ErrGameNotFound, "empty request")
	}
	g, err := q.GetGame(ctx, req.GameID)
	if err != nil {
		return nil, err
	}
	return &types.QueryGameResponse{Game: g, Status: g.Status()}, nil
}

func (q queryServer) GameMoves(ctx context.Context, req *types.QueryGameMovesRequest) (*types.QueryGameMovesResponse, error) {
	if req == nil {
		return nil, errorsmod.Wrap(types.ErrGameNotFound, "empty request")
	}
	g, err := q.GetGame(ctx, req.GameID)
	if err != nil {
		return nil, err
	}
	return &types.QueryGameMovesResponse{Moves: cloneMoves(g.Moves)}, nil
}

// GameHash computes the digest a challenger signs for the given final state.
// The game does not need to exist.
func (q queryServer) GameHash(_ context.Context, req *types.QueryGameHashRequest) (*types.QueryGameHashResponse, error) {
	if req == nil {
		return nil, errorsmod.Wrap(types.ErrMalformedState, "empty request")
	}
	digest, err := q.gameHash(req.GameID, req.Moves, req.Winner)
	if err != nil {
		return nil, err
	}
	return &types.QueryGameHashResponse{Hash: digest}, nil
}

// SignerOfGameHash recovers who signed the game-state hash of the given state.
func (q queryServer) SignerOfGameHash(_ context.Context, req *types.QuerySignerOfGameHashRequest) (*types.QuerySignerOfGameHashResponse, error) {
	if req == nil {
		return nil, errorsmod.Wrap(types.ErrMalformedState, "empty request")
	}
	digest, err := q.gameHash(req.GameID, req.Moves, req.Winner)
	if err != nil {
		return nil, err
	}
	signer, err := q.oracle.RecoverSigner(digest, req.Signature)
	if err != nil {
		return nil, err
	}
	s, err := q.addressCodec.BytesToString(signer)
	if err != nil {
		return nil, err
	}
	return &types.QuerySignerOfGameHashResponse{Signer: s}, nil
}

func (q queryServer) gameHash(gameID uint64, moves []uint32, winner string) ([]byte, error) {
	var winnerBz []byte
	if winner != "" {
		bz, err := q.addressCodec.StringToBytes(winner)
		if err != nil {
			return nil, errorsmod.Wrap(types.ErrInvalidIdentity, "invalid winner address")
		}
		winnerBz = bz
	}
	return types.GameStateHash(gameID, moves, winnerBz)
}

// ExpiredDisputes lists disputed games whose deadline has been reached at the
// current block time, i.e. games a waiting player can claim by forfeit.
func (q queryServer) ExpiredDisputes(ctx context.Context, _ *types.QueryExpiredDisputesRequest) (*types.QueryExpiredDisputesResponse, error) {
	now := sdk.UnwrapSDKContext(ctx).BlockTime()
	out := []types.Game{}
	err := q.Games.Walk(ctx, nil, func(_ uint64, g types.Game) (bool, error) {
		if g.Result == nil && g.Dispute != nil && !now.Before(g.Dispute.Deadline) {
			out = append(out, g)
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return &types.QueryExpiredDisputesResponse{Games: out}, nil
}

// PlayerGames lists the ids of every game the player takes part in.
func (q queryServer) PlayerGames(ctx context.Context, req *types.QueryPlayerGamesRequest) (*types.QueryPlayerGamesResponse, error) {
	if req == nil {
		return nil, errorsmod.Wrap(types.ErrInvalidIdentity, "empty request")
	}
	player, _, err := q.canonicalAddress(req.Player)
	if err != nil {
		return nil, errorsmod.Wrap(types.ErrInvalidIdentity, "invalid player address")
	}
	ids := []uint64{}
	rng := collections.NewPrefixedPairRange[string, uint64](player)
	err = q.Keeper.PlayerGames.Walk(ctx, rng, func(key collections.Pair[string, uint64]) (bool, error) {
		ids = append(ids, key.K2())
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return &types.QueryPlayerGamesResponse{GameIDs: ids}, nil
}
