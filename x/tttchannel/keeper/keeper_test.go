package keeper_test

import (
	"bytes"
	"testing"
	"time"

	"cosmossdk.io/core/address"
	storetypes "cosmossdk.io/store/types"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/require"

	"tttchannel/x/tttchannel/ecrecover"
	"tttchannel/x/tttchannel/keeper"
	"tttchannel/x/tttchannel/types"
)

var genesisTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type player struct {
	priv *secp256k1.PrivateKey
	addr string
}

type fixture struct {
	ctx          sdk.Context
	keeper       keeper.Keeper
	addressCodec address.Codec
	msgServer    types.MsgServer
	queryServer  types.QueryServer

	alice, bob, carol player
}

func initFixture(t *testing.T) *fixture {
	t.Helper()

	addressCodec := addresscodec.NewBech32Codec("cosmos")
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	storeService := runtime.NewKVStoreService(storeKey)
	ctx := testutil.DefaultContextWithDB(t, storeKey, storetypes.NewTransientStoreKey("transient_test")).Ctx
	ctx = ctx.WithBlockTime(genesisTime)

	authority := authtypes.NewModuleAddress(types.GovModuleName)

	k := keeper.NewKeeper(
		storeService,
		addressCodec,
		authority,
		ecrecover.NewOracle(),
	)

	// Initialize params
	if err := k.Params.Set(ctx, types.DefaultParams()); err != nil {
		t.Fatalf("failed to set params: %v", err)
	}

	return &fixture{
		ctx:          ctx,
		keeper:       k,
		addressCodec: addressCodec,
		msgServer:    keeper.NewMsgServerImpl(k),
		queryServer:  keeper.NewQueryServerImpl(k),
		alice:        newPlayer(t, addressCodec, 0xa1),
		bob:          newPlayer(t, addressCodec, 0xb2),
		carol:        newPlayer(t, addressCodec, 0xc3),
	}
}

func newPlayer(t *testing.T, ac address.Codec, seed byte) player {
	t.Helper()
	priv, err := ecrecover.PrivKeyFromBytes(bytes.Repeat([]byte{seed}, 32))
	require.NoError(t, err)
	addr, err := ac.BytesToString(ecrecover.AddressOf(priv.PubKey()))
	require.NoError(t, err)
	return player{priv: priv, addr: addr}
}

// challenge opens a game with alice as challenger and bob as challenged.
func (f *fixture) challenge(t *testing.T) uint64 {
	t.Helper()
	res, err := f.msgServer.Challenge(f.ctx, &types.MsgChallenge{Creator: f.alice.addr, Challenged: f.bob.addr})
	require.NoError(t, err)
	return res.GameID
}

// sign produces the two signatures a MsgGameOver carries: the challenger's
// over the game-state hash and the challenged player's over that signature.
func (f *fixture) sign(t *testing.T, challenger, challenged player, gameID uint64, moves []uint32, winner string) ([]byte, []byte) {
	t.Helper()
	var winnerBz []byte
	if winner != "" {
		bz, err := f.addressCodec.StringToBytes(winner)
		require.NoError(t, err)
		winnerBz = bz
	}
	digest, err := types.GameStateHash(gameID, moves, winnerBz)
	require.NoError(t, err)
	challengerSig, err := ecrecover.Sign(challenger.priv, digest)
	require.NoError(t, err)
	challengedSig, err := ecrecover.Sign(challenged.priv, types.ApprovalHash(challengerSig))
	require.NoError(t, err)
	return challengerSig, challengedSig
}

func (f *fixture) gameOver(t *testing.T, gameID uint64, moves []uint32, winner string) *types.MsgGameOver {
	t.Helper()
	cs, ds := f.sign(t, f.alice, f.bob, gameID, moves, winner)
	return &types.MsgGameOver{
		Creator:       f.carol.addr,
		GameID:        gameID,
		Moves:         moves,
		Winner:        winner,
		ChallengerSig: cs,
		ChallengedSig: ds,
	}
}

func (f *fixture) game(t *testing.T, gameID uint64) types.Game {
	t.Helper()
	g, err := f.keeper.GetGame(f.ctx, gameID)
	require.NoError(t, err)
	return g
}

func hasEvent(ctx sdk.Context, eventType string) bool {
	for _, ev := range ctx.EventManager().Events() {
		if ev.Type == eventType {
			return true
		}
	}
	return false
}

func TestParams(t *testing.T) {
	f := initFixture(t)

	p, err := f.keeper.GetParams(f.ctx)
	require.NoError(t, err)
	require.Equal(t, types.DefaultParams(), p)

	require.NoError(t, f.keeper.SetParams(f.ctx, types.Params{TimeoutWindow: time.Hour}))
	p, err = f.keeper.GetParams(f.ctx)
	require.NoError(t, err)
	require.Equal(t, time.Hour, p.TimeoutWindow)

	err = f.keeper.SetParams(f.ctx, types.Params{})
	require.ErrorIs(t, err, types.ErrInvalidParams)
}

func TestGetGameNotFound(t *testing.T) {
	f := initFixture(t)
	_, err := f.keeper.GetGame(f.ctx, 42)
	require.ErrorIs(t, err, types.ErrGameNotFound)
}
