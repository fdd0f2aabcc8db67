// Package config loads the application configuration from an optional YAML
// file with environment-variable overrides. The program runs with zero
// configuration: every setting has a working default.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDatabasePath = "paydesk.db"
	DefaultCurrency     = "SAR"
	defaultConfigFile   = "paydesk.yaml"
)

type Config struct {
	DatabasePath string `yaml:"databasePath"`
	Currency     string `yaml:"currency"`
	ExportDir    string `yaml:"exportDir"`
}

// Load reads the configuration file at path, or the default paydesk.yaml if
// it exists. A .env file in the working directory is applied first so the
// environment overrides below see it.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		DatabasePath: DefaultDatabasePath,
		Currency:     DefaultCurrency,
		ExportDir:    ".",
	}

	explicit := path != ""
	if path == "" {
		path = defaultConfigFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// No config file is fine; defaults apply.
	default:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.DatabasePath = getEnv("PAYDESK_DB_PATH", cfg.DatabasePath)
	cfg.Currency = getEnv("PAYDESK_CURRENCY", cfg.Currency)
	cfg.ExportDir = getEnv("PAYDESK_EXPORT_DIR", cfg.ExportDir)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabasePath) == "" {
		return fmt.Errorf("database path must not be empty")
	}
	if strings.TrimSpace(c.ExportDir) == "" {
		return fmt.Errorf("export directory must not be empty")
	}
	return nil
}
