// Package config loads runtime configuration for the storefront client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables prefixed with STOREFRONT_.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string     API base URL
//	-t duration   per-request timeout
//	-s string     path of the local SQLite storage file
//	-p duration   delay before the one-time login prompt
//	-l string     log level (debug, info, warn, error)
//
// # JSON schema
//
// Durations use timex.Duration, so they may be strings like "10s" or
// integer nanoseconds. Empty or missing fields keep the earlier value:
//
//	{
//	  "api_base_url": "https://harifurniture.example/api",
//	  "request_timeout": "15s",
//	  "storage_path": "storefront.db",
//	  "login_prompt_delay": "10s",
//	  "log_level": "info"
//	}
//
// # Environment
//
//	STOREFRONT_API_BASE_URL, STOREFRONT_REQUEST_TIMEOUT,
//	STOREFRONT_STORAGE_PATH, STOREFRONT_LOGIN_PROMPT_DELAY,
//	STOREFRONT_LOG_LEVEL
package config
