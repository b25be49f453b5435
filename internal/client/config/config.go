package config

import (
	"os"
	"path/filepath"
	"time"
)

const DefaultAPIBaseURL = "https://mechanical-pencils-bab056ce6286.herokuapp.com"

// Config holds runtime settings for the pencilkeeper CLI.
//
// TokenPassphrase, when set, encrypts the token file. The S3 fields are only
// needed to upload proofs referenced as s3://bucket/key.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration

	TokenFile       string
	TokenPassphrase string

	LogLevel  string
	LogFormat string

	S3Region       string
	S3AccessKey    string
	S3SecretKey    string
	S3BaseEndpoint string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = DefaultAPIBaseURL
	c.RequestTimeout = 30 * time.Second
	c.TokenFile = defaultTokenFile()
	c.LogLevel = "info"
	c.LogFormat = "text"
}

func defaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "pencilkeeper", "token.json")
}

// LoadConfig applies defaults, then environment, JSON and flags. Later
// sources take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, os.Args[1:]); err != nil {
		return nil, err
	}
	return cfg, nil
}
