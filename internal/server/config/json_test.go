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

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"endpoint_addr_http":      "www.example:9000",
		"storage_driver":          "postgres",
		"database_dsn":            "globoclima.db",
		"aws_region":              "sa-east-1",
		"aws_endpoint":            "http://localhost:8000",
		"users_table":             "UsersTest",
		"favorites_table":         "FavoritesTest",
		"secret_key":              "my_secret_key",
		"token_validity_duration": "1h",
		"openweather_api_key":     "owm-key",
		"cors_allowed_origins":    "https://app.example.com",
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "www.example:9000", cfg.EndpointAddrHTTP)
		assert.Equal(t, DriverPostgres, cfg.StorageDriver)
		assert.Equal(t, "globoclima.db", cfg.DatabaseDSN)
		assert.Equal(t, "sa-east-1", cfg.AWSRegion)
		assert.Equal(t, "http://localhost:8000", cfg.AWSEndpoint)
		assert.Equal(t, "UsersTest", cfg.UsersTable)
		assert.Equal(t, "FavoritesTest", cfg.FavoritesTable)
		assert.Equal(t, "my_secret_key", cfg.SecretKey)
		assert.Equal(t, 1*time.Hour, cfg.TokenValidityDuration)
		assert.Equal(t, "owm-key", cfg.OpenWeatherAPIKey)
		assert.Equal(t, "https://app.example.com", cfg.CORSAllowedOrigins)
	})

	t.Run("no CONFIG and no flags keeps current values", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{
			EndpointAddrHTTP:      "defaults:1234",
			StorageDriver:         DriverDynamo,
			DatabaseDSN:           "globoclima.db",
			SecretKey:             "key",
			TokenValidityDuration: 2 * time.Hour,
		}
		parseJson(cfg)

		assert.Equal(t, "defaults:1234", cfg.EndpointAddrHTTP)
		assert.Equal(t, DriverDynamo, cfg.StorageDriver)
		assert.Equal(t, "globoclima.db", cfg.DatabaseDSN)
		assert.Equal(t, "key", cfg.SecretKey)
		assert.Equal(t, 2*time.Hour, cfg.TokenValidityDuration)
	})

	t.Run("partial file keeps untouched fields", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{
			"secret_key": "overridden",
		})
		os.Args = []string{"testbin", "-config", partial}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "overridden", cfg.SecretKey)
		assert.Equal(t, ":8080", cfg.EndpointAddrHTTP)
		assert.Equal(t, 1*time.Hour, cfg.TokenValidityDuration)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}
