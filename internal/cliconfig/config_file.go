package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config in a TOML friendly shape.
type FileConfig struct {
	Address     string         `toml:"address"`
	HTTPTimeout string         `toml:"http_timeout"`
	LogLevel    string         `toml:"log_level"`
	LogFormat   string         `toml:"log_format"`
	Auth        AuthFileConfig `toml:"auth"`
}

// AuthFileConfig is the [auth] table of the config file.
type AuthFileConfig struct {
	BearerToken            string `toml:"bearer_token"`
	BasicUsername          string `toml:"basic_username"`
	BasicPassword          string `toml:"basic_password"`
	ClientID               string `toml:"client_id"`
	ClientSecret           string `toml:"client_secret"`
	TokenURL               string `toml:"token_url"`
	Scope                  string `toml:"scope"`
	Audience               string `toml:"audience"`
	AuthStyle              string `toml:"auth_style"`
	AuthorizationCodeToken string `toml:"authorization_code_token"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.idn-disable/config.toml, or "" when the home
// directory is unknown.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".idn-disable", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("address", fc.Address, &cfg.Address)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("log-format", fc.LogFormat, &cfg.LogFormat)
	if err := s.setDuration("timeout", fc.HTTPTimeout, &cfg.HTTPTimeout); err != nil {
		return err
	}

	s.setString("", fc.Auth.BearerToken, &cfg.BearerToken)
	s.setString("", fc.Auth.BasicUsername, &cfg.BasicUsername)
	s.setString("", fc.Auth.BasicPassword, &cfg.BasicPassword)
	s.setString("", fc.Auth.ClientID, &cfg.ClientID)
	s.setString("", fc.Auth.ClientSecret, &cfg.ClientSecret)
	s.setString("", fc.Auth.TokenURL, &cfg.TokenURL)
	s.setString("", fc.Auth.Scope, &cfg.Scope)
	s.setString("", fc.Auth.Audience, &cfg.Audience)
	s.setString("", fc.Auth.AuthStyle, &cfg.AuthStyle)
	s.setString("", fc.Auth.AuthorizationCodeToken, &cfg.AuthorizationCodeToken)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
