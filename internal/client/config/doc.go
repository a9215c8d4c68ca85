// Package config loads runtime configuration for the Leo CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional .env file in the working directory (github.com/joho/godotenv);
//     it never overrides variables already in the environment.
//  3. LEO_* environment variables (github.com/caarlos0/env).
//  4. Optional JSON file selected via flags: -c or -config.
//  5. Command-line flags, which override earlier values.
//
// Environment variables
//
//	LEO_API_BASE_URL     backend base URL (default http://localhost:8000)
//	LEO_DOWNLOAD_DIR     export directory (default ".")
//	LEO_LOCALE           interface locale, en or th (default en)
//	LEO_LOG_LEVEL        debug, info, warn or error (default info)
//	LEO_LOG_FORMAT       text or json (default text)
//	LEO_REQUEST_TIMEOUT  per-request timeout such as "30s" (default 0, none)
//	LEO_HEALTH_INTERVAL  backend reachability probe interval (default 10s)
//
// Supported flags
//
//	-a string     backend base URL
//	-d string     download directory
//	-l string     locale
//	-v string     log level
//	-t duration   request timeout
//	-i duration   health check interval
//
// # JSON schema
//
// Intervals accept strings like "30s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://leo.example.com/api",
//	  "download_dir": "/home/leo/exports",
//	  "locale": "th",
//	  "log_level": "debug",
//	  "log_format": "json",
//	  "request_timeout": "10s",
//	  "health_interval": "1m"
//	}
//
// The resulting base URL must be an absolute http or https URL; a trailing
// slash is dropped.
package config
