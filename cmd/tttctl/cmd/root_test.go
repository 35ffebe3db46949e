package cmd_test

import (
	"bytes"
	"context"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"tttchannel/cmd/tttctl/cmd"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := cmd.NewRootCmd()
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(new(bytes.Buffer))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return strings.TrimSpace(out.String()), err
}

func TestReplayCommand(t *testing.T) {
	out, err := execute(t, "--home", t.TempDir(), "channel", "replay", "7,1,4,2,5,3")
	require.NoError(t, err)
	require.Equal(t, "OOO/XX./X.. won challenged", out)
}

func TestSigningKeySources(t *testing.T) {
	flagKey := hex.EncodeToString(bytes.Repeat([]byte{0x01}, 32))
	envKey := hex.EncodeToString(bytes.Repeat([]byte{0x02}, 32))
	fileKey := hex.EncodeToString(bytes.Repeat([]byte{0x03}, 32))

	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.toml"), []byte("signing-key = \""+fileKey+"\"\n"), 0o600))

	fromFile, err := execute(t, "--home", home, "channel", "address")
	require.NoError(t, err)

	t.Setenv("TTTCTL_SIGNING_KEY", envKey)
	fromEnv, err := execute(t, "--home", home, "channel", "address")
	require.NoError(t, err)
	require.NotEqual(t, fromFile, fromEnv)

	fromFlag, err := execute(t, "--home", home, "--key", flagKey, "channel", "address")
	require.NoError(t, err)
	require.NotEqual(t, fromEnv, fromFlag)
	require.NotEqual(t, fromFile, fromFlag)

	for _, addr := range []string{fromFile, fromEnv, fromFlag} {
		require.True(t, strings.HasPrefix(addr, "cosmos1"), addr)
	}
}

func TestBech32PrefixFromConfig(t *testing.T) {
	home := t.TempDir()
	key := hex.EncodeToString(bytes.Repeat([]byte{0x04}, 32))
	cfg := "bech32-prefix = \"retro\"\nsigning-key = \"" + key + "\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.toml"), []byte(cfg), 0o600))

	addr, err := execute(t, "--home", home, "channel", "address")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(addr, "retro1"), addr)
}
