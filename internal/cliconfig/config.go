package cliconfig

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/idn-disable/internal/app"
	"github.com/bft-labs/idn-disable/internal/auth"
	"github.com/bft-labs/idn-disable/internal/domain"
	"github.com/bft-labs/idn-disable/internal/ports"
	"github.com/bft-labs/idn-disable/pkg/log"
)

// Config holds CLI configuration for idn-disable.
type Config struct {
	// Address is the default IdentityNow API base URL (environment ADDRESS).
	Address string

	BearerToken string

	BasicUsername string
	BasicPassword string

	ClientID     string
	ClientSecret string
	TokenURL     string
	Scope        string
	Audience     string
	AuthStyle    string

	AuthorizationCodeToken string

	HTTPTimeout time.Duration
	LogLevel    string
	LogFormat   string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		HTTPTimeout: 30 * time.Second,
		LogLevel:    zerolog.InfoLevel.String(),
		LogFormat:   log.FormatConsole,
	}
}

// Validate checks the configuration for errors and normalizes the address.
func (c *Config) Validate() error {
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", domain.ErrInvalidConfig)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level: %v", domain.ErrInvalidConfig, err)
	}
	if c.LogFormat != log.FormatConsole && c.LogFormat != log.FormatJSON {
		return fmt.Errorf("%w: log format must be %q or %q", domain.ErrInvalidConfig, log.FormatConsole, log.FormatJSON)
	}

	c.Address = strings.TrimSuffix(c.Address, "/")
	return nil
}

// JobContext splits the configuration into the secrets and environment the
// job hooks expect. Empty values are left out.
func (c Config) JobContext() ports.JobContext {
	jc := ports.JobContext{
		Secrets:     map[string]string{},
		Environment: map[string]string{},
	}
	put := func(m map[string]string, k, v string) {
		if v != "" {
			m[k] = v
		}
	}

	put(jc.Environment, app.EnvAddress, c.Address)

	put(jc.Secrets, auth.SecretBearerToken, c.BearerToken)
	put(jc.Secrets, auth.SecretBasicUsername, c.BasicUsername)
	put(jc.Secrets, auth.SecretBasicPassword, c.BasicPassword)
	put(jc.Secrets, auth.SecretClientCredentialsSecret, c.ClientSecret)
	put(jc.Secrets, auth.SecretAuthorizationCodeToken, c.AuthorizationCodeToken)

	put(jc.Environment, auth.EnvClientCredentialsClientID, c.ClientID)
	put(jc.Environment, auth.EnvClientCredentialsTokenURL, c.TokenURL)
	put(jc.Environment, auth.EnvClientCredentialsScope, c.Scope)
	put(jc.Environment, auth.EnvClientCredentialsAudience, c.Audience)
	put(jc.Environment, auth.EnvClientCredentialsAuthStyle, c.AuthStyle)

	return jc
}

// Redacted returns a copy safe for logging.
func (c Config) Redacted() Config {
	mask := func(s *string) {
		if *s != "" {
			*s = "*****"
		}
	}
	mask(&c.BearerToken)
	mask(&c.BasicPassword)
	mask(&c.ClientSecret)
	mask(&c.AuthorizationCodeToken)
	return c
}

// configSetter applies values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}
