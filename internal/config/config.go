package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"menuexport/internal/errors"
)

// Config represents the complete menuexport configuration.
// It is built once at startup and passed explicitly to the components that
// need it; there is no ambient global state.
type Config struct {
	// SheetID is the spreadsheet identifier. Required; empty is fatal.
	SheetID string `json:"sheetId" mapstructure:"sheetId"`
	// TabName is the worksheet tab holding the menu rows.
	TabName string `json:"tabName" mapstructure:"tabName"`
	// OutDir is the directory receiving latest.json and snapshots/.
	OutDir string `json:"outDir" mapstructure:"outDir"`
	// CredentialsPath points at the service-account JSON key file.
	CredentialsPath string `json:"credentialsPath" mapstructure:"credentialsPath"`

	Logging LoggingConfig `json:"logging" mapstructure:"logging"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		TabName:         "Menu",
		OutDir:          ".",
		CredentialsPath: "service_account.json",
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// Load resolves configuration from an optional menuexport config file in the
// working directory and the environment, with the environment winning.
// A .env file is read first if present so one-shot invocations can carry
// their settings alongside the checkout.
func Load() (*Config, error) {
	// Absence of .env is the normal case, not an error
	_ = godotenv.Load()

	v := viper.New()

	// Set defaults
	v.SetDefault("tabName", "Menu")
	v.SetDefault("outDir", ".")
	v.SetDefault("credentialsPath", "service_account.json")
	v.SetDefault("logging.format", "human")
	v.SetDefault("logging.level", "info")

	// Environment bindings keep the historical variable names
	_ = v.BindEnv("sheetId", "SHEET_ID")
	_ = v.BindEnv("tabName", "TAB_NAME")
	_ = v.BindEnv("outDir", "OUT_DIR")
	_ = v.BindEnv("credentialsPath", "GOOGLE_CREDS")
	_ = v.BindEnv("logging.format", "MENUEXPORT_LOG_FORMAT")
	_ = v.BindEnv("logging.level", "MENUEXPORT_LOG_LEVEL")

	// Optional config file: menuexport.{json,toml,yaml} in the working directory
	v.SetConfigName("menuexport")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.New(errors.ConfigMissing, "cannot read menuexport config file", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.New(errors.ConfigMissing, "cannot parse menuexport configuration", err)
	}

	cfg.SheetID = strings.TrimSpace(cfg.SheetID)
	return &cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if strings.TrimSpace(c.SheetID) == "" {
		return errors.New(errors.ConfigMissing,
			"missing SHEET_ID (set it as an env var, in .env, or in a menuexport config file)", nil)
	}
	return nil
}
