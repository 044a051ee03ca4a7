package testflags

import (
	"os"
	"testing"
)

const (
	EnvIntegration = "BTCRPC_ENABLE_INTEGRATION_TESTS"
	EnvNodeURL     = "BTCRPC_NODE_URL"
	EnvNodeUser    = "BTCRPC_NODE_USER"
	EnvNodePass    = "BTCRPC_NODE_PASSWORD"
)

// IntegrationTest skips unless live-node tests are enabled.
func IntegrationTest(t *testing.T) {
	_, ok := os.LookupEnv(EnvIntegration)
	if !ok {
		t.SkipNow()
	}
	t.Parallel()
}

// NodeCredentials returns the live node endpoint, defaulting to a local
// mainnet bitcoind.
func NodeCredentials() (string, string, string) {
	url := os.Getenv(EnvNodeURL)
	if url == "" {
		url = "http://127.0.0.1:8332"
	}
	return url, os.Getenv(EnvNodeUser), os.Getenv(EnvNodePass)
}
