// Package config loads runtime configuration for the qtask CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, with a .env file merged in via godotenv.
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override everything earlier.
//
// # JSON schema
//
// Durations use timex.Duration, so values can be either strings like
// "300ms" or integer nanoseconds:
//
//	{
//	  "api_endpoint_addr": "https://randomuser.me/api",
//	  "request_timeout": "10s",
//	  "simulated_latency": "300ms",
//	  "page_size": 10,
//	  "storage_dsn": "qtask.db"
//	}
package config
