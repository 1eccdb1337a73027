// Package config loads application settings from defaults, an optional YAML
// file and KAYAN_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid configuration")

const (
	EnvPrefix = "KAYAN"
	fileName  = "config.yaml"
)

var defaults = map[string]any{
	"language":    "ar",
	"brand.phone": "+966 50 000 0000",

	// Keys without a default are invisible to AutomaticEnv, so optional
	// settings carry an empty one.
	"ai.provider":    "gemini",
	"ai.model":       "",
	"ai.base_url":    "",
	"ai.temperature": 0.7,
	"ai.timeout":     time.Duration(0),

	"log.level":  "info",
	"log.format": "text",
	"log.file":   "",

	"server.addr":           ":8080",
	"server.session_ttl":    2 * time.Hour,
	"server.sweep_interval": 10 * time.Minute,
}

type Config struct {
	Language string       `mapstructure:"language" validate:"required,oneof=ar en"`
	Brand    BrandConfig  `mapstructure:"brand"`
	AI       AIConfig     `mapstructure:"ai"`
	Log      LogConfig    `mapstructure:"log"`
	Server   ServerConfig `mapstructure:"server"`

	path string
}

type BrandConfig struct {
	Phone string `mapstructure:"phone" validate:"required"`
}

// AIConfig selects the consultant backend. An empty APIKey is valid and
// leaves the consultant answering with the unavailable apology.
type AIConfig struct {
	Provider    string        `mapstructure:"provider"    validate:"required,oneof=gemini openai"`
	APIKey      string        `mapstructure:"api_key"`
	Model       string        `mapstructure:"model"`
	BaseURL     string        `mapstructure:"base_url"    validate:"omitempty,url"`
	Temperature float32       `mapstructure:"temperature" validate:"min=0,max=2"`
	Timeout     time.Duration `mapstructure:"timeout"     validate:"min=0"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"  validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
	File   string `mapstructure:"file"`
}

type ServerConfig struct {
	Addr          string        `mapstructure:"addr"           validate:"required"`
	SessionTTL    time.Duration `mapstructure:"session_ttl"    validate:"gte=1m"`
	SweepInterval time.Duration `mapstructure:"sweep_interval" validate:"gte=1s"`
}

// DefaultPath returns .kayan/config.yaml under KAYAN_HOME if set, otherwise
// under the user's home directory.
func DefaultPath() (string, error) {
	var configDir string
	if home := os.Getenv("KAYAN_HOME"); home != "" {
		configDir = home
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		configDir = homeDir
	}
	return filepath.Join(configDir, ".kayan", fileName), nil
}

// Default returns the configuration made of defaults only, ignoring the
// environment.
func Default() *Config {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	cfg, err := decode(v)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads the file at path, or the default path when path is empty, and
// overlays the environment. A missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: failed to read %s: %v", ErrInvalidConfig, path, err)
		}
	}

	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}
	cfg.path = path
	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// The bare API_KEY variable is honoured for compatibility with hosted
	// deployments that only set that name.
	_ = v.BindEnv("ai.api_key", EnvPrefix+"_AI_API_KEY", EnvPrefix+"_API_KEY", "API_KEY")
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Path is the file the configuration was loaded from.
func (c *Config) Path() string { return c.path }

// HasAPIKey reports whether the consultant can reach a backend.
func (c *Config) HasAPIKey() bool { return c.AI.APIKey != "" }

// Save writes the configuration as YAML to path, creating parent
// directories. The file is readable by the owner only since it may carry an
// API key.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	data, err := c.YAML()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	c.path = path
	return nil
}

// YAML encodes the configuration in the layout Load reads.
func (c *Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c.document())
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// document mirrors the YAML layout with durations spelled as strings, so the
// file stays readable and round-trips through Load.
func (c *Config) document() map[string]any {
	ai := map[string]any{
		"provider":    c.AI.Provider,
		"temperature": c.AI.Temperature,
		"timeout":     c.AI.Timeout.String(),
	}
	for k, v := range map[string]string{"api_key": c.AI.APIKey, "model": c.AI.Model, "base_url": c.AI.BaseURL} {
		if v != "" {
			ai[k] = v
		}
	}
	log := map[string]any{"level": c.Log.Level, "format": c.Log.Format}
	if c.Log.File != "" {
		log["file"] = c.Log.File
	}
	return map[string]any{
		"language": c.Language,
		"brand":    map[string]any{"phone": c.Brand.Phone},
		"ai":       ai,
		"log":      log,
		"server": map[string]any{
			"addr":           c.Server.Addr,
			"session_ttl":    c.Server.SessionTTL.String(),
			"sweep_interval": c.Server.SweepInterval.String(),
		},
	}
}

// Redacted returns a copy that is safe to print.
func (c *Config) Redacted() Config {
	out := *c
	if out.AI.APIKey != "" {
		out.AI.APIKey = "****"
	}
	return out
}
