// Package config loads runtime configuration for the blog list CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// # JSON schema
//
// Durations use timex.Duration, so values can be either strings like "5s"
// or integer nanoseconds:
//
//	{
//	  "server_url": "http://127.0.0.1:3003",
//	  "data_dir": ".bloglist",
//	  "notification_duration": "5s",
//	  "request_timeout": "10s",
//	  "online_check_interval": "3s"
//	}
package config
