package config

import (
	"encoding/json"
	"os"

	"github.com/enzomv1999/GloboClima/internal/flagx"
	"github.com/enzomv1999/GloboClima/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for interval fields, which allows
// parsing both string values such as "1h" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON configuration
// files. After unmarshalling, its fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddrHTTP      string         `json:"endpoint_addr_http"`
	StorageDriver         string         `json:"storage_driver"`
	DatabaseDSN           string         `json:"database_dsn"`
	AWSRegion             string         `json:"aws_region"`
	AWSEndpoint           string         `json:"aws_endpoint"`
	AWSAccessKey          string         `json:"aws_access_key"`
	AWSSecretKey          string         `json:"aws_secret_key"`
	UsersTable            string         `json:"users_table"`
	FavoritesTable        string         `json:"favorites_table"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	OpenWeatherAPIKey     string         `json:"openweather_api_key"`
	CORSAllowedOrigins    string         `json:"cors_allowed_origins"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path is taken from the -c or -config flags; if
// neither is set, no JSON file is loaded. Fields absent from the file keep
// their current values. If the file cannot be read or contains invalid JSON,
// the function panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	setIfNotEmpty := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	setIfNotEmpty(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setIfNotEmpty(&config.StorageDriver, c.StorageDriver)
	setIfNotEmpty(&config.DatabaseDSN, c.DatabaseDSN)
	setIfNotEmpty(&config.AWSRegion, c.AWSRegion)
	setIfNotEmpty(&config.AWSEndpoint, c.AWSEndpoint)
	setIfNotEmpty(&config.AWSAccessKey, c.AWSAccessKey)
	setIfNotEmpty(&config.AWSSecretKey, c.AWSSecretKey)
	setIfNotEmpty(&config.UsersTable, c.UsersTable)
	setIfNotEmpty(&config.FavoritesTable, c.FavoritesTable)
	setIfNotEmpty(&config.SecretKey, c.SecretKey)
	setIfNotEmpty(&config.OpenWeatherAPIKey, c.OpenWeatherAPIKey)
	setIfNotEmpty(&config.CORSAllowedOrigins, c.CORSAllowedOrigins)
	if c.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
}
