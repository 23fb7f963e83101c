// Package core owns oasify's configuration: defaults, the .oasify folder and the
// viper-backed loader shared by every command.
package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/blackcoderx/oasify/pkg/converter"
	"github.com/blackcoderx/oasify/pkg/insomnia"
	"github.com/blackcoderx/oasify/pkg/openapi"
	"github.com/blackcoderx/oasify/pkg/storage"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. OASIFY_SERVER_ADDR.
const EnvPrefix = "OASIFY"

// Config is the full user configuration.
type Config struct {
	Server  ServerConfig  `json:"server" mapstructure:"server"`
	Convert ConvertConfig `json:"convert" mapstructure:"convert"`
	Log     LogConfig     `json:"log" mapstructure:"log"`
}

// ServerConfig configures the upload/download web flow.
type ServerConfig struct {
	Addr           string        `json:"addr" mapstructure:"addr"`
	MaxUploadBytes int64         `json:"max_upload_bytes" mapstructure:"max_upload_bytes"`
	RatePerSecond  float64       `json:"rate_per_second" mapstructure:"rate_per_second"`
	RateBurst      int           `json:"rate_burst" mapstructure:"rate_burst"`
	ResultTTL      time.Duration `json:"result_ttl" mapstructure:"result_ttl"`
	ShutdownGrace  time.Duration `json:"shutdown_grace" mapstructure:"shutdown_grace"`
}

// ConvertConfig tunes the converter.
type ConvertConfig struct {
	Placeholders []string `json:"placeholders" mapstructure:"placeholders"`
	DefaultTitle string   `json:"default_title" mapstructure:"default_title"`
}

// LogConfig selects the server log handler.
type LogConfig struct {
	Level  string `json:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `json:"format" mapstructure:"format"` // text or json
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:           "127.0.0.1:5000",
			MaxUploadBytes: insomnia.DefaultMaxSize,
			RatePerSecond:  2,
			RateBurst:      5,
			ResultTTL:      storage.DefaultResultTTL,
			ShutdownGrace:  10 * time.Second,
		},
		Convert: ConvertConfig{
			Placeholders: []string{converter.DefaultPlaceholder},
			DefaultTitle: openapi.DefaultTitle,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// SetDefaults registers DefaultConfig with v so missing keys fall back to it.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.max_upload_bytes", d.Server.MaxUploadBytes)
	v.SetDefault("server.rate_per_second", d.Server.RatePerSecond)
	v.SetDefault("server.rate_burst", d.Server.RateBurst)
	v.SetDefault("server.result_ttl", d.Server.ResultTTL)
	v.SetDefault("server.shutdown_grace", d.Server.ShutdownGrace)
	v.SetDefault("convert.placeholders", d.Convert.Placeholders)
	v.SetDefault("convert.default_title", d.Convert.DefaultTitle)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// BindEnv enables OASIFY_* environment overrides for every key.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load decodes the effective configuration from v and validates it.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("server.max_upload_bytes must be greater than 0")
	}
	if c.Server.RatePerSecond <= 0 {
		return fmt.Errorf("server.rate_per_second must be greater than 0")
	}
	if c.Server.RateBurst <= 0 {
		return fmt.Errorf("server.rate_burst must be greater than 0")
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}

// ConverterOptions maps the convert section to converter options.
func (c Config) ConverterOptions() []converter.Option {
	var opts []converter.Option
	if len(c.Convert.Placeholders) > 0 {
		opts = append(opts, converter.WithPlaceholders(c.Convert.Placeholders...))
	}
	if c.Convert.DefaultTitle != "" {
		opts = append(opts, converter.WithTitle(c.Convert.DefaultTitle))
	}
	return opts
}
