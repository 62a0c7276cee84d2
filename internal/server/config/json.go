package config

import (
	"encoding/json"
	"os"

	"github.com/retail-hub/accounts/internal/flagx"
	"github.com/retail-hub/accounts/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for the token lifetime, which allows
// parsing both string values such as "24h" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON configuration
// files. After unmarshalling, its fields are copied into the runtime Config.
type JsonConfig struct {
	Env                   string         `json:"env"`
	EndpointAddrHTTP      string         `json:"endpoint_addr_http"`
	BasePath              string         `json:"base_path"`
	DatabaseClient        string         `json:"database_client"`
	DatabaseDSN           string         `json:"database_dsn"`
	SQLitePath            string         `json:"sqlite_path"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	SessionCookieEnabled  *bool          `json:"session_cookie_enabled"`
	CookieName            string         `json:"cookie_name"`
	CORSOrigin            string         `json:"cors_origin"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path is taken from the -c or -config command-line flags; if
// neither is set, no JSON file is loaded. Fields absent from the file keep
// their current values. If the file cannot be read or contains invalid JSON,
// the function panics.
func parseJson(config *Config) {

	// try flags
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

	if c.Env != "" {
		config.Env = c.Env
	}
	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.BasePath != "" {
		config.BasePath = c.BasePath
	}
	if c.DatabaseClient != "" {
		config.DatabaseClient = c.DatabaseClient
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SQLitePath != "" {
		config.SQLitePath = c.SQLitePath
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	if c.SessionCookieEnabled != nil {
		config.SessionCookieEnabled = *c.SessionCookieEnabled
	}
	if c.CookieName != "" {
		config.CookieName = c.CookieName
	}
	if c.CORSOrigin != "" {
		config.CORSOrigin = c.CORSOrigin
	}
}
