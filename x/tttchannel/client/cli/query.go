package cli

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"tttchannel/x/tttchannel/types"
)

func GetQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the tttchannel module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	cmd.AddCommand(
		getParamsCmd(),
		getGamesLengthCmd(),
		getGameCmd(),
		getGameMovesCmd(),
	)
	return cmd
}

func getParamsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Shows the parameters of the module",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, _, err := clientCtx.QueryStore(types.ParamsKey.Bytes(), types.StoreKey)
			if err != nil || len(bz) == 0 {
				// If unset or unavailable, fall back to defaults.
				out, _ := json.Marshal(types.DefaultParams())
				return clientCtx.PrintString(string(out) + "\n")
			}

			// Stored as JSON (collections codec).
			var p types.Params
			if err := json.Unmarshal(bz, &p); err != nil {
				return clientCtx.PrintString(string(bz) + "\n")
			}
			out, _ := json.Marshal(p)
			return clientCtx.PrintString(string(out) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func getGamesLengthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "games-length",
		Short: "Shows how many games have been created",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, _, err := clientCtx.QueryStore(types.GameSeqKey.Bytes(), types.StoreKey)
			if err != nil {
				return err
			}
			var n uint64
			if len(bz) == 8 {
				n = binary.BigEndian.Uint64(bz)
			}
			return clientCtx.PrintString(fmt.Sprintf("{\"length\":%d}\n", n))
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func getGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game [game-id]",
		Short: "Shows a game record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			g, err := queryGame(clientCtx, args[0])
			if err != nil {
				return err
			}
			out, err := json.Marshal(types.QueryGameResponse{Game: g, Status: g.Status()})
			if err != nil {
				return err
			}
			return clientCtx.PrintString(string(out) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func getGameMovesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game-moves [game-id]",
		Short: "Shows the recorded moves of a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			g, err := queryGame(clientCtx, args[0])
			if err != nil {
				return err
			}
			out, err := json.Marshal(types.QueryGameMovesResponse{Moves: g.Moves})
			if err != nil {
				return err
			}
			return clientCtx.PrintString(string(out) + "\n")
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func queryGame(clientCtx client.Context, arg string) (types.Game, error) {
	id, err := cast.ToUint64E(arg)
	if err != nil {
		return types.Game{}, fmt.Errorf("invalid game id %q: %w", arg, err)
	}
	bz, _, err := clientCtx.QueryStore(types.GameStoreKey(id), types.StoreKey)
	if err != nil {
		return types.Game{}, err
	}
	if len(bz) == 0 {
		return types.Game{}, fmt.Errorf("game %d: %w", id, types.ErrGameNotFound)
	}
	var g types.Game
	if err := json.Unmarshal(bz, &g); err != nil {
		return types.Game{}, err
	}
	return g, nil
}
