package cli

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"tttchannel/x/tttchannel/ecrecover"
	"tttchannel/x/tttchannel/types"
)

const (
	FlagSigningKey   = "key"
	FlagBech32Prefix = "bech32-prefix"

	// Config keys the flags are bound to.
	ConfigSigningKey   = "signing-key"
	ConfigBech32Prefix = "bech32-prefix"

	DefaultBech32Prefix = "cosmos"
)

// AddChannelFlags registers the offline channel flags on fs.
func AddChannelFlags(fs *pflag.FlagSet) {
	fs.String(FlagSigningKey, "", "Hex-encoded secp256k1 secret used to sign digests")
	fs.String(FlagBech32Prefix, DefaultBech32Prefix, "Bech32 prefix of account addresses")
}

// BindChannelFlags binds the flags added by AddChannelFlags into v.
func BindChannelFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	if err := v.BindPFlag(ConfigSigningKey, fs.Lookup(FlagSigningKey)); err != nil {
		return err
	}
	return v.BindPFlag(ConfigBech32Prefix, fs.Lookup(FlagBech32Prefix))
}

// GetChannelCmd returns the offline commands players use between themselves:
// replaying positions, computing digests, signing and checking signatures.
// Settings are read from v.
func GetChannelCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "channel",
		Short:                      "Offline state-channel helpers",
		SuggestionsMinimumDistance: 2,
		RunE:                       func(cmd *cobra.Command, _ []string) error { return cmd.Help() },
	}

	cmd.AddCommand(
		replayCmd(),
		gameHashCmd(v),
		movesHashCmd(),
		approvalHashCmd(),
		signCmd(v),
		recoverCmd(v),
		addressCmd(v),
	)
	return cmd
}

func replayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replay [moves]",
		Short: "Replays comma-separated cells (1-9) and prints the board and outcome",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			moves, err := ParseMoves(args[0])
			if err != nil {
				return err
			}
			out, board, err := types.Replay(moves)
			if err != nil {
				return err
			}
			line := fmt.Sprintf("%s %s", board, out.Status)
			if out.Status == types.Won {
				line += " " + out.Winner.String()
			} else if out.Status == types.InProgress {
				line += " next=" + types.NextMover(len(moves)).String()
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), line)
			return err
		},
	}
}

func gameHashCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "game-hash [game-id] [moves] [winner]",
		Short: "Prints the digest the challenger signs; omit winner for a draw",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			gameID, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("invalid game id %q: %w", args[0], err)
			}
			moves, err := ParseMoves(args[1])
			if err != nil {
				return err
			}
			var winner []byte
			if len(args) == 3 {
				ac := addresscodec.NewBech32Codec(prefix(v))
				if winner, err = ac.StringToBytes(args[2]); err != nil {
					return fmt.Errorf("invalid winner: %w", err)
				}
			}
			digest, err := types.GameStateHash(gameID, moves, winner)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(digest))
			return err
		},
	}
}

func movesHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "moves-hash [game-id] [moves]",
		Short: "Prints the digest of an in-progress position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			gameID, err := cast.ToUint64E(args[0])
			if err != nil {
				return fmt.Errorf("invalid game id %q: %w", args[0], err)
			}
			moves, err := ParseMoves(args[1])
			if err != nil {
				return err
			}
			digest, err := types.MovesHash(gameID, moves)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(digest))
			return err
		},
	}
}

func approvalHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "approval-hash [challenger-sig]",
		Short: "Prints the digest the challenged player signs to approve a challenger signature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sig, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("invalid signature hex: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(types.ApprovalHash(sig)))
			return err
		},
	}
}

func signCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "sign [digest]",
		Short: "Signs a hex digest with the configured signing key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			digest, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("invalid digest hex: %w", err)
			}
			priv, err := signingKey(v)
			if err != nil {
				return err
			}
			sig, err := ecrecover.Sign(priv, digest)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(sig))
			return err
		},
	}
}

func recoverCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "recover [digest] [signature]",
		Short: "Prints the account that produced a signature over a digest",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			digest, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("invalid digest hex: %w", err)
			}
			sig, err := hex.DecodeString(args[1])
			if err != nil {
				return fmt.Errorf("invalid signature hex: %w", err)
			}
			signer, err := ecrecover.NewOracle().RecoverSigner(digest, sig)
			if err != nil {
				return err
			}
			addr, err := addresscodec.NewBech32Codec(prefix(v)).BytesToString(signer)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), addr)
			return err
		},
	}
}

func addressCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "address",
		Short: "Prints the account address of the configured signing key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			priv, err := signingKey(v)
			if err != nil {
				return err
			}
			addr, err := addresscodec.NewBech32Codec(prefix(v)).BytesToString(ecrecover.AddressOf(priv.PubKey()))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), addr)
			return err
		},
	}
}

// ParseMoves parses comma-separated cell indexes. An empty string is the
// empty sequence.
func ParseMoves(s string) ([]uint32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []uint32{}, nil
	}
	parts := strings.Split(s, ",")
	moves := make([]uint32, 0, len(parts))
	for i, p := range parts {
		m, err := cast.ToUint32E(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i, err)
		}
		if err := types.CheckCell(m); err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

func signingKey(v *viper.Viper) (*secp256k1.PrivateKey, error) {
	raw := strings.TrimPrefix(v.GetString(ConfigSigningKey), "0x")
	if raw == "" {
		return nil, errors.New("no signing key: set --key or TTTCTL_SIGNING_KEY")
	}
	secret, err := hex.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid signing key hex: %w", err)
	}
	return ecrecover.PrivKeyFromBytes(secret)
}

func prefix(v *viper.Viper) string {
	if p := v.GetString(ConfigBech32Prefix); p != "" {
		return p
	}
	return DefaultBech32Prefix
}
