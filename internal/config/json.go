package config

import (
	"encoding/json"
	"os"

	"github.com/VirtualWardrobe/wardrobe-cli/internal/flagx"
	"github.com/VirtualWardrobe/wardrobe-cli/internal/timex"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. Durations
// accept either strings like "30s" or integer nanoseconds (timex.Duration).
type JSONConfig struct {
	APIBaseURL        string         `json:"api_base_url"`
	RequestTimeout    timex.Duration `json:"request_timeout"`
	DatabasePath      string         `json:"database_path"`
	OAuthCallbackAddr string         `json:"oauth_callback_addr"`
	ResendCooldown    timex.Duration `json:"otp_resend_cooldown"`
	LogLevel          string         `json:"log_level"`
}

// parseJSON overlays cfg with values from the JSON file named by -c/-config.
// When no such flag is given, nothing happens. Read or decode failures panic:
// a config file that exists but cannot be used is a startup defect.
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.OAuthCallbackAddr != "" {
		cfg.OAuthCallbackAddr = jc.OAuthCallbackAddr
	}
	if jc.ResendCooldown.Duration != 0 {
		cfg.ResendCooldown = jc.ResendCooldown.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
