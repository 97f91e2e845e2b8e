package config

import "time"

// Config holds runtime settings for the admin client.
//
// Fields:
//   - ServerEndpointAddr: base URL of the backend REST API, including the
//     version prefix (e.g. http://localhost:8000/api/v1).
//   - OnlineCheckInterval: how often the client probes backend reachability.
//   - RequestTimeout: per-request HTTP timeout.
//   - TokenFile: where the bearer token is persisted; empty selects the
//     default under the user config dir.
type Config struct {
	ServerEndpointAddr  string
	OnlineCheckInterval time.Duration
	RequestTimeout      time.Duration
	TokenFile           string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://localhost:8000/api/v1"
	c.OnlineCheckInterval = 3 * time.Second
	c.RequestTimeout = 15 * time.Second
	c.TokenFile = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a .env file when present), a JSON config
// file (if given) and command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
