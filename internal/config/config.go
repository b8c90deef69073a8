// Package config loads explorer settings from .env, environment and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix is the environment variable prefix (BIKESHARE_SOURCE_KIND, ...).
const EnvPrefix = "BIKESHARE"

// Source kinds.
const (
	SourceCSV        = "csv"
	SourceXLSX       = "xlsx"
	SourcePostgres   = "postgres"
	SourceClickHouse = "clickhouse"
	SourceSQLite     = "sqlite"
	SourceMemory     = "memory"
)

// Config is the complete explorer configuration.
type Config struct {
	Source      SourceConfig `yaml:"source" envconfig:"SOURCE"`
	Log         LogConfig    `yaml:"log" envconfig:"LOG"`
	MetricsAddr string       `yaml:"metrics_addr" envconfig:"METRICS_ADDR"`
	RawPageSize int          `yaml:"raw_page_size" envconfig:"RAW_PAGE_SIZE" validate:"min=1,max=1000"`
}

// SourceConfig selects and locates the record source.
type SourceConfig struct {
	Kind          string `yaml:"kind" envconfig:"KIND" validate:"oneof=csv xlsx postgres clickhouse sqlite memory"`
	DataDir       string `yaml:"data_dir" envconfig:"DATA_DIR"`
	PostgresDSN   string `yaml:"postgres_dsn" envconfig:"POSTGRES_DSN" validate:"required_if=Kind postgres"`
	ClickHouseDSN string `yaml:"clickhouse_dsn" envconfig:"CLICKHOUSE_DSN" validate:"required_if=Kind clickhouse"`
	SQLitePath    string `yaml:"sqlite_path" envconfig:"SQLITE_PATH" validate:"required_if=Kind sqlite"`
}

// LogConfig controls the component loggers.
type LogConfig struct {
	Quiet bool   `yaml:"quiet" envconfig:"QUIET"`
	File  string `yaml:"file" envconfig:"FILE"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Source:      SourceConfig{Kind: SourceCSV, DataDir: "data"},
		Log:         LogConfig{Quiet: true},
		RawPageSize: 5,
	}
}

// Load reads .env (if present), then the YAML file named by
// BIKESHARE_CONFIG_FILE (if set), then the environment. Environment wins;
// defaults come from Default, not struct tags, so unset variables never
// overwrite file values.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()
	if path := os.Getenv(EnvPrefix + "_CONFIG_FILE"); path != "" {
		fileCfg, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		cfg = *fileCfg
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFile reads a YAML config file over the defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	c.Source.Kind = strings.ToLower(strings.TrimSpace(c.Source.Kind))
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
