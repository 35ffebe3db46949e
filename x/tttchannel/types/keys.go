package types

import (
	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "tttchannel"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey is the message route for the module
	RouterKey = ModuleName

	// GovModuleName duplicates the gov module's name to avoid a dependency with x/gov.
	// It should be synced with the gov module's name if it is ever changed.
	GovModuleName = "gov"
)

var (
	// ParamsKey is the prefix to retrieve Params
	ParamsKey            = collections.NewPrefix("p_tttchannel")
	GameSeqKey           = collections.NewPrefix("ttt_game_seq")
	GamesKeyPrefix       = collections.NewPrefix("ttt_games")
	PlayerGamesKeyPrefix = collections.NewPrefix("ttt_player_games")
)

// GameStoreKey returns the raw store key of a game record, for clients that
// read the module store directly.
func GameStoreKey(gameID uint64) []byte {
	return append(GamesKeyPrefix.Bytes(), sdk.Uint64ToBigEndian(gameID)...)
}
