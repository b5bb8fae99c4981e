package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Calculator holds all configuration for the build calculator.
type Calculator struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	// Game data
	DataDir     string `yaml:"data_dir"`     // directory with catalog YAML tables
	EffectsFile string `yaml:"effects_file"` // skill effect table; missing file → built-in effects

	// Evaluation cache (0 disables)
	CacheSize int `yaml:"cache_size"`

	// Spreadsheet exports
	ExportDir string `yaml:"export_dir"`

	// Saved builds
	Database DatabaseConfig `yaml:"database"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// Default returns Calculator config with sensible defaults.
func Default() Calculator {
	return Calculator{
		LogLevel:    "info",
		DataDir:     "data/catalog",
		EffectsFile: "data/catalog/effects.yaml",
		CacheSize:   256,
		ExportDir:   "export",
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "buildcalc",
			Password: "buildcalc",
			DBName:   "buildcalc",
			SSLMode:  "disable",
		},
	}
}

// Load loads config from a YAML file.
// If the file doesn't exist, returns defaults.
func Load(path string) (Calculator, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
