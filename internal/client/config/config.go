package config

import "time"

// Config holds runtime settings for the qtask CLI.
//
// Fields:
//   - APIEndpointAddr: base URL of the user listing endpoint.
//   - RequestTimeout: per-request timeout for listing calls.
//   - SimulatedLatency: artificial delay applied to auth service calls,
//     mimicking the original client's fake network.
//   - PageSize: directory entries per page.
//   - StorageDSN: sqlite DSN for the local key-value store.
type Config struct {
	APIEndpointAddr  string
	RequestTimeout   time.Duration
	SimulatedLatency time.Duration
	PageSize         int
	StorageDSN       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIEndpointAddr = "https://randomuser.me/api"
	c.RequestTimeout = 10 * time.Second
	c.SimulatedLatency = 300 * time.Millisecond
	c.PageSize = 10
	c.StorageDSN = "qtask.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a .env file if present), a JSON file (if
// given), and command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
