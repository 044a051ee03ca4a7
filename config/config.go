package config

import (
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

type Config struct {
	LogLevel string     `mapstructure:"log_level" validate:"required,oneof=trace debug info warn error fatal"`
	Node     NodeConfig `mapstructure:"node"`
}

// NodeConfig locates and authenticates against the node's JSON-RPC server.
type NodeConfig struct {
	URL      string `mapstructure:"url" validate:"required,url"`
	Username string `mapstructure:"username" validate:"required"`
	Password string `mapstructure:"password"`
	// Zero disables client-side rate limiting.
	RequestsPerSecond int `mapstructure:"requests_per_second" validate:"gte=0"`
	Burst             int `mapstructure:"burst" validate:"gte=0"`
	// Zero leaves concurrent calls uncapped.
	MaxInFlight int `mapstructure:"max_in_flight" validate:"gte=0"`
}

var validate = validator.New()

func ReadConfig(r io.Reader) (*Config, error) {
	decoder := toml.NewDecoder(r)
	decoder.SetTagName("mapstructure")
	config := &Config{}
	if err := decoder.Decode(config); err != nil {
		return nil, errors.Wrap(err, "error decoding config file")
	}
	return config, nil
}

// Validate checks the config once flags have been applied on top of it.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}
