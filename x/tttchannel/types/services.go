package types

import (
	"context"
)

// MsgServer is the set of state transitions the module accepts.
type MsgServer interface {
	Challenge(context.Context, *MsgChallenge) (*MsgChallengeResponse, error)
	GameOver(context.Context, *MsgGameOver) (*MsgGameOverResponse, error)
	Timeout(context.Context, *MsgTimeout) (*MsgTimeoutResponse, error)
	CancelTimeout(context.Context, *MsgCancelTimeout) (*MsgCancelTimeoutResponse, error)
	WinByForfeit(context.Context, *MsgWinByForfeit) (*MsgWinByForfeitResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// QueryServer is the read-only surface of the module.
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	GamesLength(context.Context, *QueryGamesLengthRequest) (*QueryGamesLengthResponse, error)
	Game(context.Context, *QueryGameRequest) (*QueryGameResponse, error)
	GameMoves(context.Context, *QueryGameMovesRequest) (*QueryGameMovesResponse, error)
	GameHash(context.Context, *QueryGameHashRequest) (*QueryGameHashResponse, error)
	SignerOfGameHash(context.Context, *QuerySignerOfGameHashRequest) (*QuerySignerOfGameHashResponse, error)
	ExpiredDisputes(context.Context, *QueryExpiredDisputesRequest) (*QueryExpiredDisputesResponse, error)
	PlayerGames(context.Context, *QueryPlayerGamesRequest) (*QueryPlayerGamesResponse, error)
}

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryGamesLengthRequest struct{}

type QueryGamesLengthResponse struct {
	Length uint64 `json:"length"`
}

type QueryGameRequest struct {
	GameID uint64 `json:"game_id"`
}

type QueryGameResponse struct {
	Game   Game       `json:"game"`
	Status GameStatus `json:"status"`
}

type QueryGameMovesRequest struct {
	GameID uint64 `json:"game_id"`
}

type QueryGameMovesResponse struct {
	Moves []uint32 `json:"moves"`
}

// QueryGameHashRequest asks for the digest a challenger signs. An empty
// Winner asserts a draw.
type QueryGameHashRequest struct {
	GameID uint64   `json:"game_id"`
	Moves  []uint32 `json:"moves"`
	Winner string   `json:"winner,omitempty"`
}

type QueryGameHashResponse struct {
	Hash []byte `json:"hash"`
}

type QuerySignerOfGameHashRequest struct {
	GameID    uint64   `json:"game_id"`
	Moves     []uint32 `json:"moves"`
	Winner    string   `json:"winner,omitempty"`
	Signature []byte   `json:"signature"`
}

type QuerySignerOfGameHashResponse struct {
	Signer string `json:"signer"`
}

type QueryExpiredDisputesRequest struct{}

type QueryExpiredDisputesResponse struct {
	Games []Game `json:"games"`
}

type QueryPlayerGamesRequest struct {
	Player string `json:"player"`
}

type QueryPlayerGamesResponse struct {
	GameIDs []uint64 `json:"game_ids"`
}
