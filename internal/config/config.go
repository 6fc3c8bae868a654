package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gyeh/carecost/internal/costtable"
)

// ErrUnreadable marks a configured input file that cannot be accessed, as
// opposed to a missing or conflicting setting.
var ErrUnreadable = errors.New("input file not accessible")

// EnvPrefix namespaces environment overrides, e.g. CARECOST_LOG_FORMAT.
const EnvPrefix = "CARECOST"

// Config holds all runtime configuration for a carecost run.
type Config struct {
	DirectoryPath string `mapstructure:"directory"`
	CostTablePath string `mapstructure:"cost-table"`
	DSN           string `mapstructure:"dsn"`
	FromDB        bool   `mapstructure:"from-db"`
	LogFormat     string `mapstructure:"log-format"` // "text" or "json"
	LogLevel      string `mapstructure:"log-level"`
	ChartPath     string `mapstructure:"chart-out"`

	// load command
	FilePath string `mapstructure:"file"`
	Activate bool   `mapstructure:"activate"`
	Force    bool   `mapstructure:"force"`
}

// Load layers configuration: changed flags, then CARECOST_* environment
// variables, then the optional YAML file, then flag defaults. The DSN also
// honours DATABASE_URL.
func Load(flags *pflag.FlagSet, file string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}
	if err := v.BindEnv("dsn", EnvPrefix+"_DSN", "DATABASE_URL"); err != nil {
		return nil, fmt.Errorf("bind dsn env: %w", err)
	}
	v.SetDefault("log-format", "text")
	v.SetDefault("log-level", "info")

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// Validate checks that exactly one hospital directory source is configured
// and that it is reachable.
func (c *Config) Validate() error {
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("--log-format must be text or json, got %q", c.LogFormat)
	}
	switch {
	case c.FromDB && c.DirectoryPath != "":
		return fmt.Errorf("--directory and --from-db are mutually exclusive")
	case c.FromDB:
		if c.DSN == "" {
			return fmt.Errorf("--from-db requires --dsn or DATABASE_URL")
		}
	case c.DirectoryPath == "":
		return fmt.Errorf("--directory is required (or --from-db)")
	default:
		if _, err := os.Stat(c.DirectoryPath); err != nil {
			return fmt.Errorf("directory file: %w: %w", ErrUnreadable, err)
		}
	}
	if c.CostTablePath != "" {
		if _, err := os.Stat(c.CostTablePath); err != nil {
			return fmt.Errorf("cost table: %w: %w", ErrUnreadable, err)
		}
	}
	return nil
}

// ValidateDSN checks that a database is configured.
func (c *Config) ValidateDSN() error {
	if c.DSN == "" {
		return fmt.Errorf("--dsn or DATABASE_URL is required")
	}
	return nil
}

// ValidateLoad checks the inputs of a directory load.
func (c *Config) ValidateLoad() error {
	if c.FilePath == "" {
		return fmt.Errorf("--file is required")
	}
	if _, err := os.Stat(c.FilePath); err != nil {
		return fmt.Errorf("file: %w: %w", ErrUnreadable, err)
	}
	return c.ValidateDSN()
}

// CostTable returns the table at CostTablePath, or the built-in table when
// no path is set.
func (c *Config) CostTable() (*costtable.Table, error) {
	if c.CostTablePath == "" {
		return costtable.Default(), nil
	}
	return costtable.LoadFile(c.CostTablePath)
}
