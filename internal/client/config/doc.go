// Package config loads runtime configuration for the taskdesk CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected via -c or -config; ".toml" files are
//     decoded as TOML, anything else as JSON (see parseFile).
//  3. Environment variables TASKDESK_*, optionally seeded from a dotenv file
//     given with -env (see parseEnv).
//  4. Command-line flags (see parseFlags), which override everything else.
//
// Supported flags
//
//	-s string     base URL of the REST store
//	-d string     path of the local session database
//	-t duration   per-request timeout (0 disables it)
//	-l string     log level: debug, info, warn, error
//
// # File schema
//
// Durations accept strings like "3s" or integer nanoseconds:
//
//	{
//	  "store_url": "http://localhost:3000",
//	  "session_db": "taskdesk.db",
//	  "request_timeout": "10s",
//	  "log_level": "info"
//	}
package config
