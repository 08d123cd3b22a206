package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Pipeline PipelineConfig `yaml:"pipeline" envconfig:"PIPELINE"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/newswire.log"`
}

// PipelineConfig contains the processing pipeline settings
type PipelineConfig struct {
	Language   string   `yaml:"language" envconfig:"LANGUAGE" default:"en"`
	Timezone   string   `yaml:"timezone" envconfig:"TIMEZONE" default:"America/New_York"`
	CutoffHour int      `yaml:"cutoff_hour" envconfig:"CUTOFF_HOUR" default:"16"`
	Universe   []string `yaml:"universe" envconfig:"UNIVERSE"`
	RuleFile   string   `yaml:"rule_file" envconfig:"RULE_FILE"`
}

// Load loads configuration from environment variables and config file
func Load() (*Config, error) {
	var cfg Config

	// Load from environment variables first
	if err := envconfig.Process("NEWSWIRE", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	// Load from config file if exists
	configFile := getConfigFilePath()
	if _, err := os.Stat(configFile); err == nil {
		fileConfig, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileConfig, cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from YAML file
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

// mergeConfigs merges file config with env config. Explicitly set
// environment variables take precedence over the file; the file takes
// precedence over envconfig defaults. Logging fields carry defaults, so
// distinguishing "explicitly set" from "defaulted" needs an environment
// lookup rather than an empty-value check.
func mergeConfigs(fileConfig, envConfig Config) Config {
	if len(envConfig.Pipeline.Universe) == 0 {
		envConfig.Pipeline.Universe = fileConfig.Pipeline.Universe
	}
	if envConfig.Pipeline.RuleFile == "" {
		envConfig.Pipeline.RuleFile = fileConfig.Pipeline.RuleFile
	}
	if fileConfig.Logging.Level != "" && os.Getenv("NEWSWIRE_LOGGING_LEVEL") == "" {
		envConfig.Logging.Level = fileConfig.Logging.Level
	}
	if fileConfig.Logging.Output != "" && os.Getenv("NEWSWIRE_LOGGING_OUTPUT") == "" {
		envConfig.Logging.Output = fileConfig.Logging.Output
	}
	if fileConfig.Logging.FilePath != "" && os.Getenv("NEWSWIRE_LOGGING_FILE_PATH") == "" {
		envConfig.Logging.FilePath = fileConfig.Logging.FilePath
	}
	return envConfig
}

// getConfigFilePath returns the config file path, honoring an explicit
// override from the environment
func getConfigFilePath() string {
	if path := os.Getenv("NEWSWIRE_CONFIG"); path != "" {
		return path
	}
	return "newswire.yaml"
}

// validate checks the configuration for obvious misconfiguration
func (c *Config) validate() error {
	if c.Pipeline.CutoffHour < 0 || c.Pipeline.CutoffHour > 23 {
		return fmt.Errorf("cutoff_hour must be in [0,23], got %d", c.Pipeline.CutoffHour)
	}
	if _, err := time.LoadLocation(c.Pipeline.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Pipeline.Timezone, err)
	}
	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("logging format must be json or text, got %q", c.Logging.Format)
	}
	return nil
}

// Location resolves the configured local timezone. Callers should only
// invoke this after Load, which has already validated the zone name.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Pipeline.Timezone)
}
