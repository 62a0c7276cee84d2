package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors Config with environment-variable tags. Absent variables
// leave the corresponding field untouched, so the struct is primed with the
// current values before parsing.
type envConfig struct {
	Env                  string `env:"ACCOUNTS_ENV"`
	EndpointAddrHTTP     string `env:"ACCOUNTS_HTTP_ADDR"`
	BasePath             string `env:"ACCOUNTS_BASE_PATH"`
	DatabaseClient       string `env:"DB_CLIENT"`
	DatabaseDSN          string `env:"DATABASE_URL"`
	SQLitePath           string `env:"DB_SQLITE_FILE"`
	SecretKey            string `env:"ACCOUNTS_JWT_SECRET"`
	TokenValiditySeconds int    `env:"ACCOUNTS_JWT_EXPIRES_IN"`
	SessionCookieEnabled bool   `env:"ACCOUNTS_SESSION_COOKIE"`
	CookieName           string `env:"ACCOUNTS_COOKIE_NAME"`
	CORSOrigin           string `env:"CORS_ORIGIN"`
}

// parseEnv overlays Config fields from environment variables. The token
// lifetime is accepted as an integer number of seconds, matching the
// ACCOUNTS_JWT_EXPIRES_IN convention of the deployment environment.
func parseEnv(config *Config) {
	e := &envConfig{
		Env:                  config.Env,
		EndpointAddrHTTP:     config.EndpointAddrHTTP,
		BasePath:             config.BasePath,
		DatabaseClient:       config.DatabaseClient,
		DatabaseDSN:          config.DatabaseDSN,
		SQLitePath:           config.SQLitePath,
		SecretKey:            config.SecretKey,
		TokenValiditySeconds: int(config.TokenValidityDuration.Seconds()),
		SessionCookieEnabled: config.SessionCookieEnabled,
		CookieName:           config.CookieName,
		CORSOrigin:           config.CORSOrigin,
	}

	if err := env.Parse(e); err != nil {
		panic(err)
	}

	config.Env = e.Env
	config.EndpointAddrHTTP = e.EndpointAddrHTTP
	config.BasePath = e.BasePath
	config.DatabaseClient = e.DatabaseClient
	config.DatabaseDSN = e.DatabaseDSN
	config.SQLitePath = e.SQLitePath
	config.SecretKey = e.SecretKey
	config.TokenValidityDuration = time.Duration(e.TokenValiditySeconds) * time.Second
	config.SessionCookieEnabled = e.SessionCookieEnabled
	config.CookieName = e.CookieName
	config.CORSOrigin = e.CORSOrigin
}
