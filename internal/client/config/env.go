package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is merged in first; godotenv never overwrites
// variables that are already set, so the real environment wins.
//
// Recognized variables:
//
//	QTASK_API_ADDR         base URL of the listing endpoint
//	QTASK_REQUEST_TIMEOUT  duration, e.g. "10s"
//	QTASK_SIM_LATENCY      duration, e.g. "300ms"
//	QTASK_PAGE_SIZE        positive integer
//	QTASK_STORAGE_DSN      sqlite DSN
//
// Malformed values are ignored and the previous value is kept.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("QTASK_API_ADDR"); v != "" {
		cfg.APIEndpointAddr = v
	}
	if v := os.Getenv("QTASK_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("QTASK_SIM_LATENCY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.SimulatedLatency = d
		}
	}
	if v := os.Getenv("QTASK_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PageSize = n
		}
	}
	if v := os.Getenv("QTASK_STORAGE_DSN"); v != "" {
		cfg.StorageDSN = v
	}
}
