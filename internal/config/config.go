package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/rshade/datagrid/internal/datatable"
	"github.com/rshade/datagrid/internal/pagination"
)

// Output formats understood by the show command.
const (
	FormatTable = "table"
	FormatPlain = "plain"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// configFileName is the name of the configuration file inside the config directory.
const configFileName = "config.yaml"

// Environment variables that override the configuration file.
const (
	EnvHome     = "DATAGRID_HOME"
	EnvPageSize = "DATAGRID_PAGE_SIZE"
	EnvDataFile = "DATAGRID_DATA_FILE"
	EnvLogLevel = "DATAGRID_LOG_LEVEL"
)

// Validation errors.
var (
	ErrInvalidPageSize     = errors.New("table.page_size must be >= 1")
	ErrInvalidOutputFormat = errors.New("output.default_format must be one of table, plain, json, yaml")
	ErrInvalidColumn       = errors.New("every column needs a header and a key")
)

// Config is the datagrid configuration.
type Config struct {
	Table   TableConfig   `yaml:"table"`
	Data    DataConfig    `yaml:"data"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// TableConfig configures the mounted table.
type TableConfig struct {
	PageSize int                `yaml:"page_size"`
	Columns  []datatable.Column `yaml:"columns,omitempty"`
	Sort     string             `yaml:"sort,omitempty"`
}

// DataConfig selects the record source. An empty File means the bundled dataset.
type DataConfig struct {
	File string `yaml:"file,omitempty"`
}

// OutputConfig configures the show command.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Table: TableConfig{
			PageSize: pagination.DefaultPageSize,
		},
		Output: OutputConfig{
			DefaultFormat: FormatTable,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// New returns the defaults overlaid with the user's config file, if any, and
// with environment overrides. A broken config file is ignored.
func New() *Config {
	cfg := Default()

	if dir, err := GetConfigDir(); err == nil {
		path := filepath.Join(dir, configFileName)
		if _, statErr := os.Stat(path); statErr == nil {
			if mergeErr := MergeYAML(cfg, path); mergeErr != nil {
				Logger.Warn().
					Str("component", "config").
					Err(mergeErr).
					Str("path", path).
					Msg("ignoring unreadable config file")
				cfg = Default()
			}
		}
	}

	cfg.ApplyEnv()
	return cfg
}

// Load reads a configuration file on top of the defaults. Unlike New it
// reports every error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if err := MergeYAML(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv applies DATAGRID_* environment overrides. Unparseable values are skipped.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvPageSize); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Table.PageSize = n
		} else {
			Logger.Warn().Str("component", "config").Str(EnvPageSize, v).Msg("ignoring non-numeric page size")
		}
	}
	if v := os.Getenv(EnvDataFile); v != "" {
		c.Data.File = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks the configuration for values the table cannot use.
func (c *Config) Validate() error {
	if c.Table.PageSize < pagination.MinPageSize {
		return fmt.Errorf("%w, got %d", ErrInvalidPageSize, c.Table.PageSize)
	}
	switch c.Output.DefaultFormat {
	case FormatTable, FormatPlain, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w, got %q", ErrInvalidOutputFormat, c.Output.DefaultFormat)
	}
	for i, col := range c.Table.Columns {
		if col.Header == "" || col.Key == "" {
			return fmt.Errorf("%w: column %d", ErrInvalidColumn, i)
		}
	}
	if _, _, err := pagination.ParseSort(c.Table.Sort); err != nil {
		return fmt.Errorf("table.sort: %w", err)
	}
	return nil
}

// Save writes the configuration as YAML to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// DefaultPath returns the path of the user's config file.
func DefaultPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}
