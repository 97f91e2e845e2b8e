package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from environment variables, loading
// a .env file from the working directory first when one exists.
//
// Recognized variables:
//
//	DRAGIFY_API_URL         base URL of the backend API
//	DRAGIFY_TOKEN_FILE      path of the persisted token file
//	DRAGIFY_CHECK_INTERVAL  health probe interval ("3s", "1m", ...)
//	DRAGIFY_REQUEST_TIMEOUT per-request timeout
func parseEnv(cfg *Config) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	if v := os.Getenv("DRAGIFY_API_URL"); v != "" {
		cfg.ServerEndpointAddr = v
	}
	if v := os.Getenv("DRAGIFY_TOKEN_FILE"); v != "" {
		cfg.TokenFile = v
	}
	if v := os.Getenv("DRAGIFY_CHECK_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.OnlineCheckInterval = d
		}
	}
	if v := os.Getenv("DRAGIFY_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
}
