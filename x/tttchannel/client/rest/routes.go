// Package rest serves the tttchannel queries as plain JSON over HTTP.
package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/grpc-ecosystem/grpc-gateway/runtime"
	"google.golang.org/grpc/codes"

	"tttchannel/x/tttchannel/types"
)

// ContextFunc builds the query context for one request, typically an
// sdk.Context at the latest committed height.
type ContextFunc func(r *http.Request) (context.Context, error)

// RegisterRoutes mounts the query endpoints under /tttchannel on r.
func RegisterRoutes(r *mux.Router, q types.QueryServer, ctxFn ContextFunc) {
	h := handlers{q: q, ctxFn: ctxFn}
	sub := r.PathPrefix("/" + types.ModuleName).Subrouter()

	sub.HandleFunc("/params", h.params).Methods(http.MethodGet)
	sub.HandleFunc("/games/length", h.gamesLength).Methods(http.MethodGet)
	sub.HandleFunc("/games/{id:[0-9]+}", h.game).Methods(http.MethodGet)
	sub.HandleFunc("/games/{id:[0-9]+}/moves", h.gameMoves).Methods(http.MethodGet)
	sub.HandleFunc("/disputes/expired", h.expiredDisputes).Methods(http.MethodGet)
	sub.HandleFunc("/players/{address}/games", h.playerGames).Methods(http.MethodGet)
	sub.HandleFunc("/game-hash", h.gameHash).Methods(http.MethodPost)
	sub.HandleFunc("/game-hash/signer", h.signerOfGameHash).Methods(http.MethodPost)
}

type handlers struct {
	q     types.QueryServer
	ctxFn ContextFunc
}

func (h handlers) params(w http.ResponseWriter, r *http.Request) {
	ctx, ok := h.context(w, r)
	if !ok {
		return
	}
	res, err := h.q.Params(ctx, &types.QueryParamsRequest{})
	writeResult(w, res, err)
}

func (h handlers) gamesLength(w http.ResponseWriter, r *http.Request) {
	ctx, ok := h.context(w, r)
	if !ok {
		return
	}
	res, err := h.q.GamesLength(ctx, &types.QueryGamesLengthRequest{})
	writeResult(w, res, err)
}

func (h handlers) game(w http.ResponseWriter, r *http.Request) {
	id, ok := gameID(w, r)
	if !ok {
		return
	}
	ctx, ok := h.context(w, r)
	if !ok {
		return
	}
	res, err := h.q.Game(ctx, &types.QueryGameRequest{GameID: id})
	writeResult(w, res, err)
}

func (h handlers) gameMoves(w http.ResponseWriter, r *http.Request) {
	id, ok := gameID(w, r)
	if !ok {
		return
	}
	ctx, ok := h.context(w, r)
	if !ok {
		return
	}
	res, err := h.q.GameMoves(ctx, &types.QueryGameMovesRequest{GameID: id})
	writeResult(w, res, err)
}

func (h handlers) expiredDisputes(w http.ResponseWriter, r *http.Request) {
	ctx, ok := h.context(w, r)
	if !ok {
		return
	}
	res, err := h.q.ExpiredDisputes(ctx, &types.QueryExpiredDisputesRequest{})
	writeResult(w, res, err)
}

func (h handlers) playerGames(w http.ResponseWriter, r *http.Request) {
	ctx, ok := h.context(w, r)
	if !ok {
		return
	}
	res, err := h.q.PlayerGames(ctx, &types.QueryPlayerGamesRequest{Player: mux.Vars(r)["address"]})
	writeResult(w, res, err)
}

func (h handlers) gameHash(w http.ResponseWriter, r *http.Request) {
	var req types.QueryGameHashRequest
	if !decodeBody(w, r, &req) {
		return
	}
	ctx, ok := h.context(w, r)
	if !ok {
		return
	}
	res, err := h.q.GameHash(ctx, &req)
	writeResult(w, res, err)
}

func (h handlers) signerOfGameHash(w http.ResponseWriter, r *http.Request) {
	var req types.QuerySignerOfGameHashRequest
	if !decodeBody(w, r, &req) {
		return
	}
	ctx, ok := h.context(w, r)
	if !ok {
		return
	}
	res, err := h.q.SignerOfGameHash(ctx, &req)
	writeResult(w, res, err)
}

func (h handlers) context(w http.ResponseWriter, r *http.Request) (context.Context, bool) {
	ctx, err := h.ctxFn(r)
	if err != nil {
		writeError(w, codes.Unavailable, err.Error())
		return nil, false
	}
	return ctx, true
}

func gameID(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, codes.InvalidArgument, "invalid game id")
		return 0, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, codes.InvalidArgument, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func writeResult(w http.ResponseWriter, res any, err error) {
	if err != nil {
		writeError(w, codeOf(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func writeError(w http.ResponseWriter, code codes.Code, msg string) {
	writeJSON(w, runtime.HTTPStatusFromCode(code), map[string]any{
		"code":    int32(code),
		"message": msg,
		"details": []any{},
	})
}

func writeJSON(w http.ResponseWriter, status int, obj any) {
	bz, err := json.Marshal(obj)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(bz)
}

// codeOf maps module errors onto gRPC codes, the same vocabulary the
// gateway routes answer with.
func codeOf(err error) codes.Code {
	switch {
	case errors.Is(err, types.ErrGameNotFound):
		return codes.NotFound
	case errors.Is(err, types.ErrInvalidIdentity),
		errors.Is(err, types.ErrIllegalMove),
		errors.Is(err, types.ErrMalformedState),
		errors.Is(err, types.ErrSignatureRecoveryFailed):
		return codes.InvalidArgument
	default:
		return codes.Internal
	}
}
