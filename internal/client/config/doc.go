// Package config loads runtime configuration for the edutube CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the edutube HTTP API
//	-t int      request timeout (seconds)
//	-i int      online status check interval (seconds)
//
// # JSON schema
//
//	{
//	  "server_url": "http://localhost:3001",
//	  "request_timeout": "30s",
//	  "online_check_interval": "5s"
//	}
package config
