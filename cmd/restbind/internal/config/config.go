// Package config loads the restbind CLI configuration.
//
// Values come from, in increasing priority: built-in defaults, a YAML file
// (restbind.yaml in the working directory unless a path is given) and
// RESTBIND_* environment variables (RESTBIND_TOKEN, RESTBIND_LOG_LEVEL, ...).
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the CLI settings.
type Config struct {
	// BaseURL overrides the endpoint of a service, keyed by service name.
	BaseURL map[string]string `mapstructure:"base_url"`

	Timeout   time.Duration `mapstructure:"timeout"`
	Retries   int           `mapstructure:"retries"`
	Backoff   time.Duration `mapstructure:"backoff"`
	UserAgent string        `mapstructure:"user_agent"`
	LogLevel  string        `mapstructure:"log_level"`

	// Token is sent as an OAuth 2.0 bearer token.
	Token string `mapstructure:"token"`

	// APIKey and QuotaUser are added to every call that does not set them.
	APIKey    string `mapstructure:"api_key"`
	QuotaUser string `mapstructure:"quota_user"`
}

// Load reads the configuration. An empty path looks for restbind.yaml in the
// working directory and falls back to defaults when there is none; an explicit
// path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("RESTBIND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("restbind")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("base_url", map[string]string{})
	v.SetDefault("timeout", 30*time.Second)
	v.SetDefault("retries", 2)
	v.SetDefault("backoff", 500*time.Millisecond)
	v.SetDefault("user_agent", "restbind-cli")
	v.SetDefault("log_level", "warn")
	v.SetDefault("token", "")
	v.SetDefault("api_key", "")
	v.SetDefault("quota_user", "")
}

// Validate checks value ranges and the log level.
func (c *Config) Validate() error {
	if c.Timeout < 0 {
		return fmt.Errorf("config: timeout must not be negative, got %s", c.Timeout)
	}
	if c.Retries < 0 {
		return fmt.Errorf("config: retries must not be negative, got %d", c.Retries)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel ("debug", "info", "warn" or "error").
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: log_level: %w", err)
	}
	return level, nil
}

// BaseURLFor returns the configured endpoint for service, or def.
func (c *Config) BaseURLFor(service, def string) string {
	if u := c.BaseURL[service]; u != "" {
		if !strings.HasSuffix(u, "/") {
			u += "/"
		}
		return u
	}
	return def
}
