// Package config loads runtime settings from defaults, an optional config
// file and environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Settings holds the resolved runtime configuration.
type Settings struct {
	Output              string `mapstructure:"output"`
	Site                string `mapstructure:"site"`
	LogLevel            string `mapstructure:"log_level"`
	UserAgent           string `mapstructure:"user_agent"`
	HTTPTimeoutSeconds  int    `mapstructure:"http_timeout_seconds"`
	RequestDelaySeconds int    `mapstructure:"request_delay_seconds"`
	PublishersFile      string `mapstructure:"publishers_file"`
}

// HTTPTimeout returns the fetch timeout as a duration.
func (s Settings) HTTPTimeout() time.Duration {
	return time.Duration(s.HTTPTimeoutSeconds) * time.Second
}

// RequestDelay returns the inter-provider delay as a duration.
func (s Settings) RequestDelay() time.Duration {
	return time.Duration(s.RequestDelaySeconds) * time.Second
}

// NewViper builds a viper instance with defaults, env overrides and an
// optional config file. A missing config file is tolerated; a malformed
// one is not.
func NewViper(cfgFile string) (*viper.Viper, error) {
	v := viper.New()

	v.SetDefault("output", "african_news_links.json")
	v.SetDefault("site", "all")
	v.SetDefault("log_level", "info")
	v.SetDefault("user_agent", "")
	v.SetDefault("http_timeout_seconds", 10)
	v.SetDefault("request_delay_seconds", 1)
	v.SetDefault("publishers_file", "")

	v.SetEnvPrefix("LIENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return v, nil
}

// Load resolves Settings from the given viper instance.
func Load(v *viper.Viper) (Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if strings.TrimSpace(s.Output) == "" {
		return Settings{}, errors.New("output path is empty")
	}
	if s.HTTPTimeoutSeconds <= 0 {
		return Settings{}, fmt.Errorf("http_timeout_seconds must be positive, got %d", s.HTTPTimeoutSeconds)
	}
	if s.RequestDelaySeconds < 0 {
		return Settings{}, fmt.Errorf("request_delay_seconds must not be negative, got %d", s.RequestDelaySeconds)
	}

	return s, nil
}
