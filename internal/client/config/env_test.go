package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapLookup(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestApplyEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    Config
		wantErr bool
	}{
		{
			name: "all keys",
			env: map[string]string{
				"PENCILS_API_URL":          "http://localhost:3000",
				"PENCILS_TIMEOUT":          "45s",
				"PENCILS_TOKEN_FILE":       "/tmp/t.json",
				"PENCILS_TOKEN_PASSPHRASE": "secret",
				"PENCILS_LOG_LEVEL":        "debug",
				"PENCILS_LOG_FORMAT":       "json",
				"PENCILS_S3_REGION":        "us-east-1",
				"PENCILS_S3_ACCESS_KEY":    "ak",
				"PENCILS_S3_SECRET_KEY":    "sk",
				"PENCILS_S3_ENDPOINT":      "http://127.0.0.1:9000",
			},
			want: Config{
				APIBaseURL:      "http://localhost:3000",
				RequestTimeout:  45 * time.Second,
				TokenFile:       "/tmp/t.json",
				TokenPassphrase: "secret",
				LogLevel:        "debug",
				LogFormat:       "json",
				S3Region:        "us-east-1",
				S3AccessKey:     "ak",
				S3SecretKey:     "sk",
				S3BaseEndpoint:  "http://127.0.0.1:9000",
			},
		},
		{
			name: "timeout in seconds, empty values ignored",
			env:  map[string]string{"PENCILS_TIMEOUT": "12", "PENCILS_API_URL": ""},
			want: Config{APIBaseURL: "base", RequestTimeout: 12 * time.Second},
		},
		{
			name:    "bad timeout",
			env:     map[string]string{"PENCILS_TIMEOUT": "later"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{APIBaseURL: "base"}
			err := applyEnv(&cfg, mapLookup(tt.env))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.want, cfg))
		})
	}
}

func TestParseEnv_MissingFileIsFine(t *testing.T) {
	orig := envFile
	t.Cleanup(func() { envFile = orig })
	envFile = filepath.Join(t.TempDir(), "nope.env")

	cfg := Config{APIBaseURL: "keep"}
	require.NoError(t, parseEnv(&cfg))
	assert.Equal(t, "keep", cfg.APIBaseURL)
}

func TestParseEnv_ReadsDotenv(t *testing.T) {
	orig := envFile
	t.Cleanup(func() { envFile = orig })
	envFile = filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("# local\nPENCILS_TOKEN_FILE=\"/var/tok.json\"\n"), 0o600))

	var cfg Config
	require.NoError(t, parseEnv(&cfg))
	assert.Equal(t, "/var/tok.json", cfg.TokenFile)
}
