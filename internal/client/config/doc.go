// Package config loads runtime configuration for the pencilkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: an optional .env file in the working directory, then the
//     process environment, which wins over the file (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the catalog API
//	-t int      request timeout (seconds)
//	-k string   token file path
//	-l string   log level: debug, info, warn, error
//
// # Environment
//
//	PENCILS_API_URL, PENCILS_TIMEOUT, PENCILS_TOKEN_FILE,
//	PENCILS_TOKEN_PASSPHRASE, PENCILS_LOG_LEVEL, PENCILS_LOG_FORMAT,
//	PENCILS_S3_REGION, PENCILS_S3_ACCESS_KEY, PENCILS_S3_SECRET_KEY,
//	PENCILS_S3_ENDPOINT
//
// # JSON schema
//
// Durations use timex.Duration, so values can be either strings like "30s"
// or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://example.herokuapp.com",
//	  "request_timeout": "30s",
//	  "token_file": "/home/me/.config/pencilkeeper/token.json",
//	  "log_level": "debug",
//	  "s3_region": "us-east-1"
//	}
//
// Absent JSON keys leave the value from earlier sources in place.
package config
