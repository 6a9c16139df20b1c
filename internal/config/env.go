package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment,
// loading a .env file from the working directory first when one exists.
// Real environment variables win over .env entries (godotenv does not
// override what is already set).
//
// Recognized variables:
//
//	API_BASE_URL         backend base URL
//	REQUEST_TIMEOUT      Go duration string, e.g. "30s"
//	WARDROBE_DB          credential store path
//	OAUTH_CALLBACK_ADDR  loopback listen address
//	OTP_RESEND_COOLDOWN  Go duration string, e.g. "20s"
//	LOG_LEVEL            debug | info | warn | error
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("API_BASE_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("WARDROBE_DB"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("OAUTH_CALLBACK_ADDR"); v != "" {
		cfg.OAuthCallbackAddr = v
	}
	if v := os.Getenv("OTP_RESEND_COOLDOWN"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.ResendCooldown = d
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
