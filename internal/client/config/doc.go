// Package config loads runtime configuration for the recipe diary client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Files ending in
//     .yaml or .yml are read as YAML, everything else as JSON.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// # File schema
//
// Durations use timex.Duration, so they may be strings like "3s" or integer
// nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "user_id": "alice",
//	  "database_path": "recipes.db",
//	  "log_file": "recipediary.log",
//	  "cache_timeout": "2s",
//	  "network_timeout": "6s",
//	  "sync_concurrency": 4,
//	  "online_check_interval": "5s"
//	}
package config
