package cli

import (
	"btcrpc/config"
	"btcrpc/log"
	"btcrpc/rpc"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

// LoadConfig reads the config file from the home directory when one exists
// and applies any connection flags on top of it.
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig
	homeDir := GetHomeDir(cmd)
	exists, err := config.HomeDirExists(homeDir)
	if err != nil {
		return nil, err
	}
	if exists {
		fileCfg, err := config.ReadConfigFile(homeDir)
		if err != nil {
			return nil, err
		}
		cfg = *fileCfg
	}

	flags := cmd.Flags()
	if flags.Changed(FlagURL) {
		cfg.Node.URL, _ = flags.GetString(FlagURL)
	}
	if flags.Changed(FlagUser) {
		cfg.Node.Username, _ = flags.GetString(FlagUser)
	}
	if flags.Changed(FlagPassword) {
		cfg.Node.Password, _ = flags.GetString(FlagPassword)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DialRPC builds a node client from the config file and flags. Nothing is
// sent until the first call.
func DialRPC(cmd *cobra.Command) (*rpc.Client, error) {
	cfg, err := LoadConfig(cmd)
	if err != nil {
		return nil, err
	}
	level, err := log.NewLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "error parsing log level")
	}
	log.SetLevel(level)

	var opts []rpc.Opt
	if cfg.Node.RequestsPerSecond > 0 {
		burst := cfg.Node.Burst
		if burst < 1 {
			burst = 1
		}
		opts = append(opts, rpc.WithRateLimit(rate.Limit(cfg.Node.RequestsPerSecond), burst))
	}
	if cfg.Node.MaxInFlight > 0 {
		opts = append(opts, rpc.WithMaxInFlight(int64(cfg.Node.MaxInFlight)))
	}
	return rpc.NewClient(cfg.Node.URL, cfg.Node.Username, cfg.Node.Password, opts...), nil
}
