package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-chart/internal/chart"
)

const (
	EnvPrefix     = "LEDGER_CHART_"
	ConfigFileEnv = EnvPrefix + "CONFIG"
)

type Config struct {
	CSVPath          string `koanf:"csv_path"`
	Port             string `koanf:"port"`
	LogLevel         string `koanf:"log_level"`
	DefaultTimeframe string `koanf:"default_timeframe"`
	Workers          int    `koanf:"workers"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"csv_path":          "./breakdown.csv",
		"port":              "8050",
		"log_level":         "info",
		"default_timeframe": string(chart.DefaultTimeframe),
		"workers":           1,
	}
}

// ProcessEnvironmentVariables builds the config from defaults, an optional
// YAML file named by LEDGER_CHART_CONFIG, and LEDGER_CHART_* variables, in
// that order of precedence. A .env file in the working directory is read first.
func ProcessEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: defaults: %w", err)
	}

	if path := os.Getenv(ConfigFileEnv); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
		logrus.WithField("path", path).Debug("config.ProcessEnvironmentVariables.file")
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.CSVPath) == "" {
		problems = append(problems, "csv_path cannot be empty")
	}

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port %q: must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("invalid log_level %q", c.LogLevel))
	}

	if _, err := chart.ParseTimeframe(c.DefaultTimeframe); err != nil {
		problems = append(problems, err.Error())
	}

	if c.Workers < 1 || c.Workers > 64 {
		problems = append(problems, fmt.Sprintf("invalid workers %d: must be between 1 and 64", c.Workers))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}
