package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type LogConfig struct {
	Level  string `yaml:"level"`  // debug|info|warn|error|off
	Format string `yaml:"format"` // text|json
}

type StorageConfig struct {
	// Driver: memory (default), postgres o sqlite.
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

// AuthConfig habilita la verificación de Bearer tokens contra el IdP.
// Sin base_url el servicio queda en modo dev (X-Debug-User-ID).
type AuthConfig struct {
	BaseURL      string        `yaml:"base_url"`
	APIKey       string        `yaml:"api_key"`
	APIKeyHeader string        `yaml:"api_key_header"`
	Timeout      time.Duration `yaml:"timeout"`
}

type ScheduleConfig struct {
	UpcomingDays   int `yaml:"upcoming_days"`
	MaxOccurrences int `yaml:"max_occurrences"`
}

type Config struct {
	Listen   string         `yaml:"listen"`
	AppName  string         `yaml:"app_name"`
	Log      LogConfig      `yaml:"log"`
	Storage  StorageConfig  `yaml:"storage"`
	Auth     AuthConfig     `yaml:"auth"`
	Schedule ScheduleConfig `yaml:"schedule"`
}

func DefaultConfig() *Config {
	return &Config{
		Listen:  ":8080",
		AppName: "maternity-journal",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Storage: StorageConfig{
			Driver: DriverMemory,
		},
		Auth: AuthConfig{
			APIKeyHeader: "X-Api-Key",
			Timeout:      5 * time.Second,
		},
		Schedule: ScheduleConfig{
			UpcomingDays:   7,
			MaxOccurrences: 1000,
		},
	}
}

// Normalize completa valores vacíos con los defaults para que un YAML parcial
// se comporte igual que uno completo.
func (c *Config) Normalize() {
	def := DefaultConfig()

	if strings.TrimSpace(c.Listen) == "" {
		c.Listen = def.Listen
	}
	if strings.TrimSpace(c.AppName) == "" {
		c.AppName = def.AppName
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = def.Log.Format
	}
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	if c.Storage.Driver == "" {
		c.Storage.Driver = def.Storage.Driver
	}
	if c.Auth.APIKeyHeader == "" {
		c.Auth.APIKeyHeader = def.Auth.APIKeyHeader
	}
	if c.Auth.Timeout <= 0 {
		c.Auth.Timeout = def.Auth.Timeout
	}
	if c.Schedule.UpcomingDays <= 0 {
		c.Schedule.UpcomingDays = def.Schedule.UpcomingDays
	}
	if c.Schedule.MaxOccurrences <= 0 {
		c.Schedule.MaxOccurrences = def.Schedule.MaxOccurrences
	}
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverMemory:
	case DriverPostgres:
		if strings.TrimSpace(c.Storage.DSN) == "" {
			return errors.New("storage.dsn is required for postgres")
		}
	case DriverSQLite:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	return nil
}

// Load lee el YAML en path (si existe), aplica variables de entorno encima y
// normaliza. path vacío o archivo inexistente => defaults + env.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// sin archivo: defaults
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := applyEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	cfg.Normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv pisa los valores con las variables de entorno conocidas.
// Si hay DB_DSN y no se eligió driver, se asume postgres.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get("PORT"); ok {
		cfg.Listen = ":" + v
	}
	if v, ok := get("APP_NAME"); ok {
		cfg.AppName = v
	}
	if v, ok := get("LOG_LEVEL"); ok {
		cfg.Log.Level = v
	}
	if v, ok := get("LOG_FORMAT"); ok {
		cfg.Log.Format = v
	}
	if v, ok := get("DB_DSN"); ok {
		cfg.Storage.DSN = v
		if cfg.Storage.Driver == "" || cfg.Storage.Driver == DriverMemory {
			cfg.Storage.Driver = DriverPostgres
		}
	}
	if v, ok := get("STORAGE_DRIVER"); ok {
		cfg.Storage.Driver = v
	}
	if v, ok := get("AUTH_VERIFY_URL"); ok {
		cfg.Auth.BaseURL = v
	}
	if v, ok := get("AUTH_API_KEY"); ok {
		cfg.Auth.APIKey = v
	}
	if v, ok := get("UPCOMING_DAYS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("UPCOMING_DAYS: %w", err)
		}
		cfg.Schedule.UpcomingDays = n
	}
	return nil
}
