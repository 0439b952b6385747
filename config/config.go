package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Checklist specifics
	Checklist ChecklistConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// ChecklistConfig controls the timestamp inserted into descriptions.
type ChecklistConfig struct {
	Timezone        string
	TimestampLayout string
}

// RateLimitConfig throttles description-mutating routes per client.
// PerMin = 0 disables throttling.
type RateLimitConfig struct {
	PerMin int
	Burst  int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	return load(viper.New(), "./config", ".", "/etc/app/")
}

func load(v *viper.Viper, paths ...string) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Checklist
	cfg.Checklist.Timezone = v.GetString("checklist.timezone")
	cfg.Checklist.TimestampLayout = v.GetString("checklist.timestamp_layout")
	cfg.RateLimit.PerMin = v.GetInt("rate_limit.per_min")
	cfg.RateLimit.Burst = v.GetInt("rate_limit.burst")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port out of range: %d", cfg.HTTPServer.Port)
	}
	if cfg.RateLimit.PerMin < 0 {
		return fmt.Errorf("rate_limit.per_min must not be negative: %d", cfg.RateLimit.PerMin)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("checklist.timezone", "UTC")
	v.SetDefault("checklist.timestamp_layout", "2006-01-02 15:04")
	v.SetDefault("rate_limit.per_min", 120)
	v.SetDefault("rate_limit.burst", 20)
}
