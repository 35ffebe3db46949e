package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	cmtcfg "github.com/cometbft/cometbft/config"
	"github.com/spf13/viper"

	"tttchannel/x/tttchannel/client/cli"
)

const (
	EnvPrefix = "TTTCTL"

	// ConfigNode is the RPC endpoint query commands talk to when --node is
	// not given.
	ConfigNode = "node"
)

// DefaultHome is where tttctl looks for config.toml.
var DefaultHome = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tttctl"
	}
	return filepath.Join(home, ".tttctl")
}()

// initClientConfig loads settings from, in increasing priority, built-in
// defaults, <home>/config.toml and TTTCTL_* environment variables. Flags
// bound later override all of them.
func initClientConfig(v *viper.Viper, home string) error {
	v.SetDefault(ConfigNode, cmtcfg.DefaultRPCConfig().ListenAddress)
	v.SetDefault(cli.ConfigBech32Prefix, cli.DefaultBech32Prefix)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(home)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}
	return nil
}
