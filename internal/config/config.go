package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pfrederiksen/nfl-cap-tracker/internal/mirror"
	"github.com/pfrederiksen/nfl-cap-tracker/internal/scraper"
	"github.com/pfrederiksen/nfl-cap-tracker/internal/store"
	"gopkg.in/yaml.v3"
)

// Environment variable overrides. They win over file values so deployments
// can keep credentials out of the config file.
const (
	EnvDSN              = "CAP_TRACKER_DB_DSN"
	EnvSheetsCredential = "CAP_TRACKER_SHEETS_CREDENTIALS"
	EnvSpreadsheetID    = "CAP_TRACKER_SPREADSHEET_ID"
	EnvBaseURL          = "CAP_TRACKER_BASE_URL"
)

// ScrapeConfig holds scraper tunables.
type ScrapeConfig struct {
	BaseURL    string        `yaml:"base_url"`
	Season     int           `yaml:"season"`
	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries uint64        `yaml:"max_retries"`
}

// Config is the full cap-tracker configuration.
type Config struct {
	Scrape   ScrapeConfig        `yaml:"scrape"`
	Database store.Config        `yaml:"database"`
	Sheets   mirror.SheetsConfig `yaml:"sheets"`
	LogLevel string              `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Scrape: ScrapeConfig{
			BaseURL:    scraper.DefaultBaseURL,
			Season:     2023,
			Timeout:    scraper.DefaultTimeout,
			MaxRetries: 2,
		},
		Database: store.DefaultConfig(),
		Sheets: mirror.SheetsConfig{
			Worksheet: "players_cap_hits",
		},
		LogLevel: "info",
	}
}

// Load builds the configuration: defaults, then the YAML file at path (if
// path is empty no file is read), then environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnv(&cfg)

	if err := validate(cfg); err != nil {
		return cfg, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvDSN); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv(EnvSheetsCredential); v != "" {
		cfg.Sheets.CredentialsFile = v
	}
	if v := os.Getenv(EnvSpreadsheetID); v != "" {
		cfg.Sheets.SpreadsheetID = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.Scrape.BaseURL = v
	}
}

func validate(cfg Config) error {
	if cfg.Scrape.Season <= 0 {
		return fmt.Errorf("scrape season must be set")
	}
	if cfg.Sheets.Enabled && cfg.Sheets.SpreadsheetID == "" {
		return fmt.Errorf("sheets mirror enabled without a spreadsheet ID")
	}
	return nil
}
