package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultVariant = "hosted"
	defaultTimeout = 10 * time.Second
	defaultLevel   = "warn"
)

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	ProjectID        string
	Env              string
	APIKey           string
	Version          int
	Variant          string
	ExtractionPolicy string
	BypassCache      bool
	Fallback         map[string]any
	FallbackFile     string
	Timeout          time.Duration
	LogLevel         string
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	ProjectID        string         `yaml:"project_id"`
	Env              string         `yaml:"env"`
	APIKey           string         `yaml:"api_key"`
	Version          int            `yaml:"version"`
	Variant          string         `yaml:"variant"`
	ExtractionPolicy string         `yaml:"extraction_policy"`
	BypassCache      bool           `yaml:"bypass_cache"`
	Fallback         map[string]any `yaml:"fallback"`
	FallbackFile     string         `yaml:"fallback_file"`
	Timeout          string         `yaml:"timeout"`
	LogLevel         string         `yaml:"log_level"`
}

// CLIOverrides holds command-line flag overrides. Nil pointers mean the flag
// was not given.
type CLIOverrides struct {
	ConfigFile       string
	ProjectID        *string
	Env              *string
	APIKey           *string
	Version          *int
	Variant          *string
	ExtractionPolicy *string
	BypassCache      *bool
	FallbackFile     *string
	Timeout          *time.Duration
	LogLevel         *string
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	applyEnvConfig(&cfg)

	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		if err := applyYAMLConfig(&cfg, yamlCfg); err != nil {
			return Config{}, err
		}
	}

	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	if cfg.FallbackFile != "" {
		fallback, err := loadFallbackFile(cfg.FallbackFile)
		if err != nil {
			return Config{}, fmt.Errorf("load fallback: %w", err)
		}
		cfg.Fallback = fallback
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		Variant:  defaultVariant,
		Timeout:  defaultTimeout,
		LogLevel: defaultLevel,
	}
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) error {
	if yamlCfg.ProjectID != "" {
		cfg.ProjectID = yamlCfg.ProjectID
	}
	if yamlCfg.Env != "" {
		cfg.Env = yamlCfg.Env
	}
	if yamlCfg.APIKey != "" {
		cfg.APIKey = yamlCfg.APIKey
	}
	if yamlCfg.Version != 0 {
		cfg.Version = yamlCfg.Version
	}
	if yamlCfg.Variant != "" {
		cfg.Variant = yamlCfg.Variant
	}
	if yamlCfg.ExtractionPolicy != "" {
		cfg.ExtractionPolicy = yamlCfg.ExtractionPolicy
	}
	if yamlCfg.BypassCache {
		cfg.BypassCache = true
	}
	if len(yamlCfg.Fallback) > 0 {
		cfg.Fallback = yamlCfg.Fallback
	}
	if yamlCfg.FallbackFile != "" {
		cfg.FallbackFile = yamlCfg.FallbackFile
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}

	if yamlCfg.Timeout != "" {
		d, err := time.ParseDuration(yamlCfg.Timeout)
		if err != nil {
			return fmt.Errorf("parse timeout %q: %w", yamlCfg.Timeout, err)
		}
		cfg.Timeout = d
	}

	return nil
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("TOGGLIT_PROJECT_ID")); v != "" {
		cfg.ProjectID = v
	}

	if v := strings.TrimSpace(os.Getenv("TOGGLIT_ENV")); v != "" {
		cfg.Env = v
	}

	if v := strings.TrimSpace(os.Getenv("TOGGLIT_API_KEY")); v != "" {
		cfg.APIKey = v
	}

	if v := strings.TrimSpace(os.Getenv("TOGGLIT_VARIANT")); v != "" {
		cfg.Variant = v
	}

	if v := strings.TrimSpace(os.Getenv("TOGGLIT_VERSION")); v != "" {
		if version, err := strconv.Atoi(v); err == nil {
			cfg.Version = version
		}
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if overrides.ProjectID != nil && *overrides.ProjectID != "" {
		cfg.ProjectID = *overrides.ProjectID
	}
	if overrides.Env != nil && *overrides.Env != "" {
		cfg.Env = *overrides.Env
	}
	if overrides.APIKey != nil && *overrides.APIKey != "" {
		cfg.APIKey = *overrides.APIKey
	}
	if overrides.Version != nil {
		cfg.Version = *overrides.Version
	}
	if overrides.Variant != nil && *overrides.Variant != "" {
		cfg.Variant = *overrides.Variant
	}
	if overrides.ExtractionPolicy != nil && *overrides.ExtractionPolicy != "" {
		cfg.ExtractionPolicy = *overrides.ExtractionPolicy
	}
	if overrides.BypassCache != nil && *overrides.BypassCache {
		cfg.BypassCache = true
	}
	if overrides.FallbackFile != nil && *overrides.FallbackFile != "" {
		cfg.FallbackFile = *overrides.FallbackFile
	}
	if overrides.Timeout != nil && *overrides.Timeout > 0 {
		cfg.Timeout = *overrides.Timeout
	}
	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = *overrides.LogLevel
	}
}

// loadFallbackFile reads a JSON object used as the fallback configuration.
func loadFallbackFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var fallback map[string]any
	if err := json.Unmarshal(data, &fallback); err != nil {
		return nil, fmt.Errorf("parse JSON object: %w", err)
	}

	return fallback, nil
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if cfg.ProjectID == "" {
		return fmt.Errorf("project id is required (--project or TOGGLIT_PROJECT_ID)")
	}
	if cfg.Env == "" {
		return fmt.Errorf("env is required (--env or TOGGLIT_ENV)")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("api key is required (--api-key or TOGGLIT_API_KEY)")
	}
	if cfg.Version < 0 {
		return fmt.Errorf("version must be >= 0, got %d", cfg.Version)
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}
