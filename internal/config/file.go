package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	IgnoreCase bool   `yaml:"ignore_case"`
	LogLevel   string `yaml:"log_level"`
}

// Load resolves the configuration like Resolve and then applies the YAML file
// named by --config=<path> or MINIGREP_CONFIG, if any.
// Precedence for the log level: environment > YAML config > default.
// A YAML ignore_case can only enable case-insensitive search.
func Load(args []string, lookup LookupFunc) (Config, error) {
	if lookup == nil {
		lookup = noEnv
	}

	cfg, err := Resolve(args, lookup)
	if err != nil {
		return Config{}, err
	}

	if cfg.ConfigFile != "" {
		yamlCfg, err := loadFromFile(cfg.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load config file: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg, lookup)
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&yamlCfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig, lookup LookupFunc) {
	if yamlCfg.IgnoreCase {
		cfg.IgnoreCase = true
	}

	level := strings.TrimSpace(yamlCfg.LogLevel)
	if env, ok := lookup(EnvLogLevel); level != "" && (!ok || strings.TrimSpace(env) == "") {
		cfg.LogLevel = level
	}
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("%w %q", ErrInvalidLogLevel, cfg.LogLevel)
	}
	return nil
}
