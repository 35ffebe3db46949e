package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	errorsmod "cosmossdk.io/errors"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"tttchannel/x/tttchannel/client/rest"
	"tttchannel/x/tttchannel/types"
)

type fakeQuerier struct {
	games map[uint64]types.Game
}

func (f fakeQuerier) Params(context.Context, *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	return &types.QueryParamsResponse{Params: types.DefaultParams()}, nil
}

func (f fakeQuerier) GamesLength(context.Context, *types.QueryGamesLengthRequest) (*types.QueryGamesLengthResponse, error) {
	return &types.QueryGamesLengthResponse{Length: uint64(len(f.games))}, nil
}

func (f fakeQuerier) Game(_ context.Context, req *types.QueryGameRequest) (*types.QueryGameResponse, error) {
	g, ok := f.games[req.GameID]
	if !ok {
		return nil, errorsmod.Wrapf(types.ErrGameNotFound, "game %d", req.GameID)
	}
	return &types.QueryGameResponse{Game: g, Status: g.Status()}, nil
}

func (f fakeQuerier) GameMoves(ctx context.Context, req *types.QueryGameMovesRequest) (*types.QueryGameMovesResponse, error) {
	res, err := f.Game(ctx, &types.QueryGameRequest{GameID: req.GameID})
	if err != nil {
		return nil, err
	}
	return &types.QueryGameMovesResponse{Moves: res.Game.Moves}, nil
}

func (f fakeQuerier) GameHash(_ context.Context, req *types.QueryGameHashRequest) (*types.QueryGameHashResponse, error) {
	h, err := types.GameStateHash(req.GameID, req.Moves, nil)
	if err != nil {
		return nil, err
	}
	return &types.QueryGameHashResponse{Hash: h}, nil
}

func (f fakeQuerier) SignerOfGameHash(context.Context, *types.QuerySignerOfGameHashRequest) (*types.QuerySignerOfGameHashResponse, error) {
	return nil, errorsmod.Wrap(types.ErrSignatureRecoveryFailed, "no oracle")
}

func (f fakeQuerier) ExpiredDisputes(context.Context, *types.QueryExpiredDisputesRequest) (*types.QueryExpiredDisputesResponse, error) {
	return &types.QueryExpiredDisputesResponse{Games: []types.Game{}}, nil
}

func (f fakeQuerier) PlayerGames(_ context.Context, req *types.QueryPlayerGamesRequest) (*types.QueryPlayerGamesResponse, error) {
	ids := []uint64{}
	for id, g := range f.games {
		if g.Challenger == req.Player || g.Challenged == req.Player {
			ids = append(ids, id)
		}
	}
	return &types.QueryPlayerGamesResponse{GameIDs: ids}, nil
}

func newRouter(ctxErr error) *mux.Router {
	q := fakeQuerier{games: map[uint64]types.Game{
		0: {ID: 0, Challenger: "alice", Challenged: "bob", Moves: []uint32{5, 1}},
	}}
	r := mux.NewRouter()
	rest.RegisterRoutes(r, q, func(req *http.Request) (context.Context, error) {
		return req.Context(), ctxErr
	})
	return r
}

func TestRoutes(t *testing.T) {
	testCases := []struct {
		name      string
		method    string
		path      string
		body      string
		expStatus int
		expBody   string
	}{
		{name: "params", method: http.MethodGet, path: "/tttchannel/params", expStatus: http.StatusOK, expBody: `"timeout_window"`},
		{name: "length", method: http.MethodGet, path: "/tttchannel/games/length", expStatus: http.StatusOK, expBody: `{"length":1}`},
		{name: "game", method: http.MethodGet, path: "/tttchannel/games/0", expStatus: http.StatusOK, expBody: `"status":"STATUS_ACTIVE"`},
		{name: "moves", method: http.MethodGet, path: "/tttchannel/games/0/moves", expStatus: http.StatusOK, expBody: `{"moves":[5,1]}`},
		{name: "missing game", method: http.MethodGet, path: "/tttchannel/games/7", expStatus: http.StatusNotFound, expBody: "game not found"},
		{name: "player games", method: http.MethodGet, path: "/tttchannel/players/bob/games", expStatus: http.StatusOK, expBody: `{"game_ids":[0]}`},
		{name: "expired", method: http.MethodGet, path: "/tttchannel/disputes/expired", expStatus: http.StatusOK, expBody: `{"games":[]}`},
		{name: "hash", method: http.MethodPost, path: "/tttchannel/game-hash", body: `{"game_id":1,"moves":[1,2]}`, expStatus: http.StatusOK, expBody: `"hash"`},
		{name: "hash bad body", method: http.MethodPost, path: "/tttchannel/game-hash", body: `{"nope":1}`, expStatus: http.StatusBadRequest, expBody: "invalid request body"},
		{name: "hash bad move", method: http.MethodPost, path: "/tttchannel/game-hash", body: `{"moves":[300]}`, expStatus: http.StatusBadRequest, expBody: "malformed game state"},
		{name: "signer", method: http.MethodPost, path: "/tttchannel/game-hash/signer", body: `{}`, expStatus: http.StatusBadRequest, expBody: "signature recovery failed"},
		{name: "wrong method", method: http.MethodPost, path: "/tttchannel/params", expStatus: http.StatusMethodNotAllowed},
	}

	r := newRouter(nil)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			require.Equal(t, tc.expStatus, rec.Code)
			require.Contains(t, rec.Body.String(), tc.expBody)
		})
	}
}

func TestRoutesContextUnavailable(t *testing.T) {
	r := newRouter(errors.New("node is syncing"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tttchannel/games/length", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "node is syncing", body["message"])
}
