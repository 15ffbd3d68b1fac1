// Package config loads runtime configuration for the Volunteam CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the platform API
//	-t int      request timeout (seconds)
//	-r int      total retry attempts per request
//	-d int      delay between retry attempts (seconds)
//	-f string   path of the local session cache database
//
// # JSON schema
//
// The JSON loader uses timex.Duration for durations, so values can be either
// strings like "10s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:3333",
//	  "request_timeout": "10s",
//	  "retry_attempts": 3,
//	  "retry_delay": "1s",
//	  "cache_db_path": "volunteam.db"
//	}
//
// Primary API
//
//   - type Config                     — the runtime settings
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
