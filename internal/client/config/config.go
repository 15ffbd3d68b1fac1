package config

import "time"

// Config holds runtime settings for the Volunteam CLI.
//
// Fields:
//   - APIBaseURL: root URL of the platform API.
//   - RequestTimeout: per-attempt network timeout.
//   - RetryAttempts: total attempt budget for API calls, including the first.
//   - RetryDelay: fixed pause between attempts.
//   - CacheDBPath: path of the local sqlite session cache.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	RetryAttempts  int
	RetryDelay     time.Duration
	CacheDBPath    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3333"
	c.RequestTimeout = 10 * time.Second
	c.RetryAttempts = 3
	c.RetryDelay = 1 * time.Second
	c.CacheDBPath = "volunteam.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
