package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// DefaultBankDisplayRows matches the number of shifts per day in the catalog
const DefaultBankDisplayRows = 4

// ClosedDay marks dates on which no working hours accrue when projecting
// monthly hours, e.g. bank holidays
type ClosedDay struct {
	RRule       string `yaml:"rrule" validate:"required"`
	Description string `yaml:"description,omitempty"`
}

// Config represents the application configuration
type Config struct {
	// RosterFile is the YAML roster used when no database is configured
	RosterFile string `yaml:"rosterFile,omitempty"`

	// DatabaseURL selects the Postgres roster store when set
	DatabaseURL string `yaml:"databaseURL,omitempty" validate:"omitempty,url"`

	// BankDisplayRows caps the unfilled shifts shown per day
	BankDisplayRows int `yaml:"bankDisplayRows,omitempty" validate:"gte=0"`

	// LogDir is where log files are written
	LogDir string `yaml:"logDir,omitempty"`

	ClosedDays []ClosedDay `yaml:"closedDays,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from rota_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	return LoadWithEnv("")
}

// LoadWithEnv loads rota_config.<env>.yaml, or rota_config.yaml when env is empty
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(configFileName(env))
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, closed := range cfg.ClosedDays {
		if _, err := rrule.StrToRRule(closed.RRule); err != nil {
			return fmt.Errorf("invalid rrule in closedDays[%d]: %w", i, err)
		}
	}

	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.BankDisplayRows == 0 {
		cfg.BankDisplayRows = DefaultBankDisplayRows
	}
	if cfg.RosterFile == "" {
		cfg.RosterFile = "roster.yaml"
	}
	if cfg.LogDir == "" {
		cfg.LogDir = "logs"
	}
}

func configFileName(env string) string {
	if env == "" {
		return "rota_config.yaml"
	}
	return fmt.Sprintf("rota_config.%s.yaml", env)
}

// findConfigFile searches for the config file in current directory and home directory
func findConfigFile(configFileName string) (string, error) {
	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file %s not found in current directory or home directory", configFileName)
}
