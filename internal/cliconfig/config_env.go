package cliconfig

import (
	"os"

	"github.com/bft-labs/idn-disable/internal/app"
	"github.com/bft-labs/idn-disable/internal/auth"
)

// Environment variables that are not part of the job context.
const (
	EnvHTTPTimeout = "IDN_HTTP_TIMEOUT"
	EnvLogLevel    = "IDN_LOG_LEVEL"
	EnvLogFormat   = "IDN_LOG_FORMAT"
)

// ApplyEnvConfig applies configuration from environment variables. Auth and
// address variables use the same names as the job context.
// It respects flags that have been explicitly set (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("address", os.Getenv(app.EnvAddress), &cfg.Address)
	s.setString("log-level", os.Getenv(EnvLogLevel), &cfg.LogLevel)
	s.setString("log-format", os.Getenv(EnvLogFormat), &cfg.LogFormat)
	if err := s.setDuration("timeout", os.Getenv(EnvHTTPTimeout), &cfg.HTTPTimeout); err != nil {
		return err
	}

	s.setString("", os.Getenv(auth.SecretBearerToken), &cfg.BearerToken)
	s.setString("", os.Getenv(auth.SecretBasicUsername), &cfg.BasicUsername)
	s.setString("", os.Getenv(auth.SecretBasicPassword), &cfg.BasicPassword)
	s.setString("", os.Getenv(auth.SecretClientCredentialsSecret), &cfg.ClientSecret)
	s.setString("", os.Getenv(auth.EnvClientCredentialsClientID), &cfg.ClientID)
	s.setString("", os.Getenv(auth.EnvClientCredentialsTokenURL), &cfg.TokenURL)
	s.setString("", os.Getenv(auth.EnvClientCredentialsScope), &cfg.Scope)
	s.setString("", os.Getenv(auth.EnvClientCredentialsAudience), &cfg.Audience)
	s.setString("", os.Getenv(auth.EnvClientCredentialsAuthStyle), &cfg.AuthStyle)
	s.setString("", os.Getenv(auth.SecretAuthorizationCodeToken), &cfg.AuthorizationCodeToken)

	return nil
}
