package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/pencilkeeper/internal/flagx"
	"github.com/dmitrijs2005/pencilkeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell an absent key from an empty one.
type JsonConfig struct {
	APIBaseURL      *string         `json:"api_base_url"`
	RequestTimeout  *timex.Duration `json:"request_timeout"`
	TokenFile       *string         `json:"token_file"`
	TokenPassphrase *string         `json:"token_passphrase"`
	LogLevel        *string         `json:"log_level"`
	LogFormat       *string         `json:"log_format"`
	S3Region        *string         `json:"s3_region"`
	S3AccessKey     *string         `json:"s3_access_key"`
	S3SecretKey     *string         `json:"s3_secret_key"`
	S3BaseEndpoint  *string         `json:"s3_base_endpoint"`
}

// parseJson overlays cfg with the JSON file named by -c or -config. Without
// either flag it does nothing.
func parseJson(cfg *Config) error {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	jc.apply(cfg)
	return nil
}

func (jc *JsonConfig) apply(cfg *Config) {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&cfg.APIBaseURL, jc.APIBaseURL)
	set(&cfg.TokenFile, jc.TokenFile)
	set(&cfg.TokenPassphrase, jc.TokenPassphrase)
	set(&cfg.LogLevel, jc.LogLevel)
	set(&cfg.LogFormat, jc.LogFormat)
	set(&cfg.S3Region, jc.S3Region)
	set(&cfg.S3AccessKey, jc.S3AccessKey)
	set(&cfg.S3SecretKey, jc.S3SecretKey)
	set(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)

	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}
