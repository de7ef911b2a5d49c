package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, map[string]any{
		"endpoint_addr":         "www.example:9000",
		"database_dsn":          "postgres://example",
		"jwt_public_key_file":   "key.pem",
		"upload_url_expiration": "5m",
		"s3_access_key":         "user",
		"s3_secret_key":         "password",
		"s3_bucket":             "bucket",
		"s3_region":             "region",
		"s3_base_endpoint":      "base_endpoint",
		"attachment_base_url":   "https://bucket.s3.amazonaws.com",
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "www.example:9000", cfg.EndpointAddr)
		assert.Equal(t, "postgres://example", cfg.DatabaseDSN)
		assert.Equal(t, "key.pem", cfg.JWTPublicKeyFile)
		assert.Equal(t, 5*time.Minute, cfg.UploadURLExpiration)
		assert.Equal(t, "user", cfg.S3AccessKey)
		assert.Equal(t, "password", cfg.S3SecretKey)
		assert.Equal(t, "bucket", cfg.S3Bucket)
		assert.Equal(t, "region", cfg.S3Region)
		assert.Equal(t, "base_endpoint", cfg.S3BaseEndpoint)
		assert.Equal(t, "https://bucket.s3.amazonaws.com", cfg.AttachmentBaseURL)
	})

	t.Run("no config flag leaves values untouched", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{EndpointAddr: "defaults:1234"}
		parseJson(cfg)

		assert.Equal(t, "defaults:1234", cfg.EndpointAddr)
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", filepath.Join(t.TempDir(), "absent.json")}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}

func TestLoadConfig_Defaults(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	assert.Equal(t, ":8080", cfg.EndpointAddr)
	assert.Equal(t, 5*time.Minute, cfg.UploadURLExpiration)
	assert.NotEmpty(t, cfg.DatabaseDSN)
	assert.NotEmpty(t, cfg.S3Bucket)
}
