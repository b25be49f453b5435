package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// envFile is the dotenv file consulted before the process environment.
var envFile = ".env"

// parseEnv overlays cfg with PENCILS_* variables. Values in the process
// environment win over the same keys in the .env file; a missing .env file
// is not an error.
func parseEnv(cfg *Config) error {
	fileVars, err := godotenv.Read(envFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read %s: %w", envFile, err)
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}
	return applyEnv(cfg, lookup)
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	strs := []struct {
		key string
		dst *string
	}{
		{"PENCILS_API_URL", &cfg.APIBaseURL},
		{"PENCILS_TOKEN_FILE", &cfg.TokenFile},
		{"PENCILS_TOKEN_PASSPHRASE", &cfg.TokenPassphrase},
		{"PENCILS_LOG_LEVEL", &cfg.LogLevel},
		{"PENCILS_LOG_FORMAT", &cfg.LogFormat},
		{"PENCILS_S3_REGION", &cfg.S3Region},
		{"PENCILS_S3_ACCESS_KEY", &cfg.S3AccessKey},
		{"PENCILS_S3_SECRET_KEY", &cfg.S3SecretKey},
		{"PENCILS_S3_ENDPOINT", &cfg.S3BaseEndpoint},
	}
	for _, s := range strs {
		if v, ok := lookup(s.key); ok && v != "" {
			*s.dst = v
		}
	}

	if v, ok := lookup("PENCILS_TIMEOUT"); ok && v != "" {
		d, err := parseTimeout(v)
		if err != nil {
			return fmt.Errorf("PENCILS_TIMEOUT: %w", err)
		}
		cfg.RequestTimeout = d
	}
	return nil
}

// parseTimeout accepts a Go duration ("45s") or a bare number of seconds.
func parseTimeout(v string) (time.Duration, error) {
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return time.ParseDuration(v)
}
