package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the full Shopdeck configuration
type Config struct {
	Payment   PaymentConfig   `yaml:"payment"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Mail      MailConfig      `yaml:"mail"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	LogDir    string          `yaml:"logDir"`
}

// PaymentConfig contains payment provider API settings
type PaymentConfig struct {
	BaseURL  string `yaml:"baseURL"`
	ClientID string `yaml:"clientID"`
	Secret   string `yaml:"-"` // from PAYMENT_CLIENT_SECRET
}

// CatalogConfig contains document store API settings
type CatalogConfig struct {
	BaseURL string `yaml:"baseURL"`
	APIKey  string `yaml:"-"` // from CATALOG_API_KEY
}

// MailConfig contains transactional mail settings
type MailConfig struct {
	APIURL    string `yaml:"apiURL"`
	APIToken  string `yaml:"-"` // from MAIL_API_TOKEN
	From      string `yaml:"from"`
	FromName  string `yaml:"fromName"`
	Recipient string `yaml:"recipient"` // overrides the order's customer address when set
}

// TelemetryConfig contains trace export settings
type TelemetryConfig struct {
	Endpoint    string `yaml:"endpoint"`
	ServiceName string `yaml:"serviceName"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Payment: PaymentConfig{
			BaseURL: "https://api-m.sandbox.paypal.com",
		},
		Catalog: CatalogConfig{
			BaseURL: "http://localhost:8090/api",
		},
		Mail: MailConfig{
			From:     "no-reply@shopdeck.local",
			FromName: "Shopdeck",
		},
		Telemetry: TelemetryConfig{
			ServiceName: "shopdeck",
		},
		LogDir: filepath.Join(homeDir, ".shopdeck", "logs"),
	}
}

// Load reads configuration with priority:
// 1. explicit path (--config flag)
// 2. .shopdeck.yaml in the working directory
// 3. defaults
// Secrets always come from the environment, never from the file.
func Load(path string) (*Config, error) {
	if path == "" {
		path = ".shopdeck.yaml"
	}

	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err == nil {
		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		cfg = MergeWithDefaults(&fileCfg)
	}

	cfg.Payment.Secret = os.Getenv("PAYMENT_CLIENT_SECRET")
	cfg.Catalog.APIKey = os.Getenv("CATALOG_API_KEY")
	cfg.Mail.APIToken = os.Getenv("MAIL_API_TOKEN")
	if id := os.Getenv("PAYMENT_CLIENT_ID"); id != "" {
		cfg.Payment.ClientID = id
	}

	return cfg, nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	if cfg.Payment.BaseURL == "" {
		cfg.Payment.BaseURL = defaults.Payment.BaseURL
	}
	if cfg.Catalog.BaseURL == "" {
		cfg.Catalog.BaseURL = defaults.Catalog.BaseURL
	}
	if cfg.Mail.From == "" {
		cfg.Mail.From = defaults.Mail.From
	}
	if cfg.Mail.FromName == "" {
		cfg.Mail.FromName = defaults.Mail.FromName
	}
	if cfg.Telemetry.ServiceName == "" {
		cfg.Telemetry.ServiceName = defaults.Telemetry.ServiceName
	}
	if cfg.LogDir == "" {
		cfg.LogDir = defaults.LogDir
	}

	return cfg
}
