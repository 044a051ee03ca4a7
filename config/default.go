package config

import (
	"bytes"
	"io"
	"os"
	"text/template"

	"btcrpc/log"

	"github.com/pkg/errors"
)

var DefaultConfig = Config{
	LogLevel: log.LevelInfo.String(),
	Node: NodeConfig{
		URL:               "http://127.0.0.1:8332",
		Username:          "",
		Password:          "",
		RequestsPerSecond: 0,
		Burst:             1,
		MaxInFlight:       0,
	},
}

const defaultConfigTemplateText = `# btcrpc-cli Config File

# Sets the log level. Can be one of the following values:
# - error
# - warn
# - info
# - debug
# - trace
log_level = "{{.LogLevel}}"

# Configures the connection to the node's JSON-RPC server. These
# correspond to bitcoind's rpcbind/rpcport, rpcuser and rpcpassword
# settings.
[node]
  # Sets the full URL of the JSON-RPC endpoint, including scheme and port.
  url = "{{.Node.URL}}"
  # Sets the HTTP basic auth username.
  username = "{{.Node.Username}}"
  # Sets the HTTP basic auth password.
  password = "{{.Node.Password}}"
  # Caps how many requests per second are sent to the node. 0 disables
  # the limit.
  requests_per_second = {{.Node.RequestsPerSecond}}
  # Sets how many requests may be sent at once before the limit applies.
  burst = {{.Node.Burst}}
  # Caps how many requests may be outstanding at once. 0 disables the cap.
  max_in_flight = {{.Node.MaxInFlight}}
`

var defaultConfigTemplate *template.Template

func GenerateDefaultConfigFile() []byte {
	buf := new(bytes.Buffer)
	if err := defaultConfigTemplate.Execute(buf, DefaultConfig); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func ReadConfigFile(homeDir string) (*Config, error) {
	f, err := os.OpenFile(ExpandConfigPath(homeDir), os.O_RDONLY, 0600)
	if err != nil {
		return nil, errors.Wrap(err, "error opening config file for reading")
	}
	defer f.Close()
	cfg, err := ReadConfig(f)
	if err != nil {
		return nil, errors.Wrap(err, "error reading config file")
	}
	return cfg, nil
}

// WriteDefaultConfigFile writes the default config. The file holds the RPC
// password, so it is only readable by the owner.
func WriteDefaultConfigFile(homeDir string) error {
	f, err := os.OpenFile(ExpandConfigPath(homeDir), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return errors.Wrap(err, "error opening config file for writing")
	}
	defer f.Close()
	rd := bytes.NewReader(GenerateDefaultConfigFile())
	if _, err := io.Copy(f, rd); err != nil {
		return errors.Wrap(err, "error writing config file")
	}
	return nil
}

func init() {
	tmpl := template.New("defaultConfig")
	t, err := tmpl.Parse(defaultConfigTemplateText)
	if err != nil {
		panic(err)
	}
	defaultConfigTemplate = t
}
