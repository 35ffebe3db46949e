package cmd

import (
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tttchannel/x/tttchannel/client/cli"
)

const flagHome = "home"

// NewRootCmd creates the tttctl command tree: offline channel helpers plus
// read-only queries against a node.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:          "tttctl",
		Short:        "Tic-tac-toe state channel client",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			pf := cmd.Root().PersistentFlags()
			home, err := pf.GetString(flagHome)
			if err != nil {
				return err
			}
			if err := initClientConfig(v, home); err != nil {
				return err
			}
			if err := cli.BindChannelFlags(v, pf); err != nil {
				return err
			}

			// Query commands fall back to the configured node.
			if f := cmd.Flags().Lookup(flags.FlagNode); f != nil && !f.Changed {
				if err := cmd.Flags().Set(flags.FlagNode, v.GetString(ConfigNode)); err != nil {
					return err
				}
			}

			clientCtx := client.Context{}.
				WithOutput(cmd.OutOrStdout()).
				WithHomeDir(home).
				WithViper(EnvPrefix)
			return client.SetCmdClientContextHandler(clientCtx, cmd)
		},
	}

	rootCmd.PersistentFlags().String(flagHome, DefaultHome, "Directory holding config.toml")
	cli.AddChannelFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		cli.GetChannelCmd(v),
		cli.GetQueryCmd(),
	)
	return rootCmd
}
