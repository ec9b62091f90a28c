package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration. Environment
// variable names are derived from the field names under the STOCK prefix
// (STOCK_INPUT_PATH, STOCK_LOGGING_LEVEL, ...); per-field envconfig alt
// names are deliberately absent because envconfig falls back to the bare,
// unprefixed alt when the prefixed key is unset, which would let ambient
// variables like PATH bleed into the configuration.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Report  ReportConfig  `yaml:"report"`
	Logging LoggingConfig `yaml:"logging"`
}

// InputConfig describes the inventory source
type InputConfig struct {
	Path string `yaml:"path" default:"inventory.csv" validate:"required"`
	Mode string `yaml:"mode" default:"lenient" validate:"oneof=lenient strict"`
}

// ReportConfig describes the report sink
type ReportConfig struct {
	Path     string `yaml:"path" default:"stock_report.txt" validate:"required"`
	Currency string `yaml:"currency" default:"€" validate:"required"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" default:"text" validate:"oneof=text json"`
	Output   string `yaml:"output" default:"console" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" split_words:"true" default:"logs/stock-report.log"`
}

// Load loads configuration from environment variables and an optional YAML
// config file. Environment variables use the STOCK_ prefix and take
// precedence over file values; defaults apply where neither is set.
func Load(configFile string) (*Config, error) {
	var cfg Config

	// Load from environment variables first (also applies defaults)
	if err := envconfig.Process("STOCK", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	// Load from config file if it exists
	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			fileConfig, err := loadFromFile(configFile)
			if err != nil {
				return nil, fmt.Errorf("failed to load config from file: %w", err)
			}
			cfg = mergeConfigs(*fileConfig, cfg, envSetKeys())
		}
	}

	// Validate configuration
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envSetKeys reports which config fields were set explicitly in the
// environment, so file values do not clobber them.
func envSetKeys() map[string]bool {
	keys := []string{
		"STOCK_INPUT_PATH",
		"STOCK_INPUT_MODE",
		"STOCK_REPORT_PATH",
		"STOCK_REPORT_CURRENCY",
		"STOCK_LOGGING_LEVEL",
		"STOCK_LOGGING_FORMAT",
		"STOCK_LOGGING_OUTPUT",
		"STOCK_LOGGING_FILE_PATH",
	}
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		if _, ok := os.LookupEnv(k); ok {
			set[k] = true
		}
	}
	return set
}

// mergeConfigs overlays file config onto the env-loaded config. A file
// value wins only where it is non-empty and the matching environment
// variable was not set.
func mergeConfigs(fileConfig, envConfig Config, envSet map[string]bool) Config {
	overlay := func(envVar string, dst *string, fileVal string) {
		if fileVal != "" && !envSet[envVar] {
			*dst = fileVal
		}
	}

	overlay("STOCK_INPUT_PATH", &envConfig.Input.Path, fileConfig.Input.Path)
	overlay("STOCK_INPUT_MODE", &envConfig.Input.Mode, fileConfig.Input.Mode)
	overlay("STOCK_REPORT_PATH", &envConfig.Report.Path, fileConfig.Report.Path)
	overlay("STOCK_REPORT_CURRENCY", &envConfig.Report.Currency, fileConfig.Report.Currency)
	overlay("STOCK_LOGGING_LEVEL", &envConfig.Logging.Level, fileConfig.Logging.Level)
	overlay("STOCK_LOGGING_FORMAT", &envConfig.Logging.Format, fileConfig.Logging.Format)
	overlay("STOCK_LOGGING_OUTPUT", &envConfig.Logging.Output, fileConfig.Logging.Output)
	overlay("STOCK_LOGGING_FILE_PATH", &envConfig.Logging.FilePath, fileConfig.Logging.FilePath)

	return envConfig
}

// validate checks the configuration with struct tags
func (c *Config) validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return err
	}
	return nil
}
