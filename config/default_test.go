package config

import (
	"bytes"
	"os"
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateDefaultConfigFile(t *testing.T) {
	generatedCfg := GenerateDefaultConfigFile()
	cfg, err := ReadConfig(bytes.NewReader(generatedCfg))
	require.NoError(t, err)
	require.EqualValues(t, DefaultConfig, *cfg)
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig
	// the default has no credentials and must be edited before use
	require.Error(t, cfg.Validate())

	cfg.Node.Username = "rpcuser"
	require.NoError(t, cfg.Validate())

	bad := cfg
	bad.Node.URL = "127.0.0.1:8332 with spaces"
	require.Error(t, bad.Validate())

	bad = cfg
	bad.LogLevel = "verbose"
	require.Error(t, bad.Validate())

	bad = cfg
	bad.Node.RequestsPerSecond = -1
	require.Error(t, bad.Validate())
}

func TestReadConfig_Malformed(t *testing.T) {
	_, err := ReadConfig(strings.NewReader("log_level = [unterminated"))
	require.Error(t, err)
}

func TestInitHomeDir(t *testing.T) {
	home := path.Join(t.TempDir(), "home")
	exists, err := HomeDirExists(home)
	require.NoError(t, err)
	require.False(t, exists)
	require.Error(t, EnsureHomeDir(home))

	require.NoError(t, InitHomeDir(home))
	require.NoError(t, EnsureHomeDir(home))

	cfg, err := ReadConfigFile(home)
	require.NoError(t, err)
	require.EqualValues(t, DefaultConfig, *cfg)

	stat, err := os.Stat(ExpandConfigPath(home))
	require.NoError(t, err)
	require.EqualValues(t, 0600, stat.Mode().Perm())

	_, err = HomeDirExists(ExpandConfigPath(home))
	require.Error(t, err)
}
