package keeper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	collcodec "cosmossdk.io/collections/codec"
	"cosmossdk.io/core/address"
	corestore "cosmossdk.io/core/store"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"tttchannel/x/tttchannel/ecrecover"
	"tttchannel/x/tttchannel/types"
)

// Keeper defines the tttchannel module keeper.
type Keeper struct {
	storeService corestore.KVStoreService
	addressCodec address.Codec
	// Address capable of executing a MsgUpdateParams message.
	// Typically, this should be the x/gov module account.
	authority []byte
	oracle    types.SignatureOracle

	Schema      collections.Schema
	Params      collections.Item[types.Params]
	GameSeq     collections.Sequence
	Games       collections.Map[uint64, types.Game]
	PlayerGames collections.KeySet[collections.Pair[string, uint64]]
}

// jsonValueCodec stores plain Go records as JSON; the module has no
// generated protobuf types.
type jsonValueCodec[T any] struct {
	name string
}

var (
	_ collcodec.ValueCodec[types.Params] = jsonValueCodec[types.Params]{}
	_ collcodec.ValueCodec[types.Game]   = jsonValueCodec[types.Game]{}
)

func (jsonValueCodec[T]) Encode(value T) ([]byte, error) { return json.Marshal(value) }
func (jsonValueCodec[T]) Decode(bz []byte) (T, error) {
	var v T
	return v, json.Unmarshal(bz, &v)
}
func (c jsonValueCodec[T]) EncodeJSON(value T) ([]byte, error) { return c.Encode(value) }
func (c jsonValueCodec[T]) DecodeJSON(bz []byte) (T, error)    { return c.Decode(bz) }
func (jsonValueCodec[T]) Stringify(value T) string             { return fmt.Sprintf("%+v", value) }
func (c jsonValueCodec[T]) ValueType() string                  { return "tttchannel/" + c.name }

// NewKeeper creates a new tttchannel Keeper. A nil oracle selects the
// secp256k1 compact-signature oracle.
func NewKeeper(
	storeService corestore.KVStoreService,
	addressCodec address.Codec,
	authority []byte,
	oracle types.SignatureOracle,
) Keeper {
	if _, err := addressCodec.BytesToString(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address %x: %s", authority, err))
	}
	if oracle == nil {
		oracle = ecrecover.NewOracle()
	}

	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		storeService: storeService,
		addressCodec: addressCodec,
		authority:    authority,
		oracle:       oracle,

		Params:  collections.NewItem(sb, types.ParamsKey, "params", jsonValueCodec[types.Params]{name: "Params"}),
		GameSeq: collections.NewSequence(sb, types.GameSeqKey, "game_seq"),
		Games:   collections.NewMap(sb, types.GamesKeyPrefix, "games", collections.Uint64Key, jsonValueCodec[types.Game]{name: "Game"}),
		PlayerGames: collections.NewKeySet(
			sb, types.PlayerGamesKeyPrefix, "player_games",
			collections.PairKeyCodec(collections.StringKey, collections.Uint64Key),
		),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() []byte {
	return k.authority
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// GetParams returns current params or default if unset.
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	p, err := k.Params.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.DefaultParams(), nil
		}
		return types.Params{}, err
	}
	return p, nil
}

// SetParams stores module params.
func (k Keeper) SetParams(ctx context.Context, p types.Params) error {
	if err := p.Validate(); err != nil {
		return errorsmod.Wrap(types.ErrInvalidParams, err.Error())
	}
	return k.Params.Set(ctx, p)
}

// GetGame returns a game record by id.
func (k Keeper) GetGame(ctx context.Context, gameID uint64) (types.Game, error) {
	g, err := k.Games.Get(ctx, gameID)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.Game{}, errorsmod.Wrapf(types.ErrGameNotFound, "game %d", gameID)
		}
		return types.Game{}, err
	}
	return g, nil
}

// SetGame stores a game record and indexes it under both players.
func (k Keeper) SetGame(ctx context.Context, g types.Game) error {
	if err := k.Games.Set(ctx, g.ID, g); err != nil {
		return err
	}
	if err := k.PlayerGames.Set(ctx, collections.Join(g.Challenger, g.ID)); err != nil {
		return err
	}
	return k.PlayerGames.Set(ctx, collections.Join(g.Challenged, g.ID))
}

// canonicalAddress decodes addr and re-encodes it, so that records only ever
// hold one spelling of an account.
func (k Keeper) canonicalAddress(addr string) (string, []byte, error) {
	bz, err := k.addressCodec.StringToBytes(addr)
	if err != nil {
		return "", nil, err
	}
	if len(bz) == 0 {
		return "", nil, errors.New("empty address")
	}
	s, err := k.addressCodec.BytesToString(bz)
	if err != nil {
		return "", nil, err
	}
	return s, bz, nil
}
