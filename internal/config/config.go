// Package config assembles runtime settings for the Virtual Wardrobe CLI
// from layered sources. Precedence, lowest to highest: compiled defaults,
// a .env file plus environment variables, an optional JSON file (-c/-config),
// command-line flags.
package config

import "time"

// Config holds runtime settings for the CLI.
//
// Fields:
//   - APIBaseURL: base URL of the Virtual Wardrobe REST backend.
//   - RequestTimeout: deadline applied to each outbound API call.
//   - DatabasePath: SQLite file backing the local credential store.
//   - OAuthCallbackAddr: loopback listen address for the Google sign-in redirect.
//   - ResendCooldown: minimum delay between OTP resend requests.
//   - LogLevel: debug | info | warn | error.
type Config struct {
	APIBaseURL        string
	RequestTimeout    time.Duration
	DatabasePath      string
	OAuthCallbackAddr string
	ResendCooldown    time.Duration
	LogLevel          string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000/api/v1"
	c.RequestTimeout = 30 * time.Second
	c.DatabasePath = "wardrobe.db"
	c.OAuthCallbackAddr = "localhost:53682"
	c.ResendCooldown = 20 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, JSON (if present) and command-line flags (if
// present). Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
