package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"menuexport/internal/config"
	"menuexport/internal/logging"
	"menuexport/internal/version"
)

var (
	flagSheetID     string
	flagTab         string
	flagOutDir      string
	flagCredentials string
	flagLogLevel    string
	flagLogFormat   string
)

var rootCmd = &cobra.Command{
	Use:   "menuexport",
	Short: "Export a Google Sheets menu tab to versioned JSON",
	Long: `menuexport fetches a menu tab from a Google Sheet, normalizes it into a
grouped, sorted JSON document, and writes latest.json plus a timestamped
snapshot whenever the content fingerprint changed.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("menuexport version {{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagSheetID, "sheet-id", "", "Spreadsheet ID (overrides SHEET_ID)")
	pf.StringVar(&flagTab, "tab", "", "Worksheet tab name (overrides TAB_NAME, default Menu)")
	pf.StringVar(&flagOutDir, "out", "", "Output directory (overrides OUT_DIR, default .)")
	pf.StringVar(&flagCredentials, "credentials", "", "Service-account key file (overrides GOOGLE_CREDS)")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFormat, "log-format", "", "Log format: human, json")
}

// loadConfig resolves configuration with CLI flags taking precedence over the
// environment and any menuexport config file.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if flagSheetID != "" {
		cfg.SheetID = flagSheetID
	}
	if flagTab != "" {
		cfg.TabName = flagTab
	}
	if flagOutDir != "" {
		cfg.OutDir = flagOutDir
	}
	if flagCredentials != "" {
		cfg.CredentialsPath = flagCredentials
	}
	if flagLogLevel != "" {
		cfg.Logging.Level = flagLogLevel
	}
	if flagLogFormat != "" {
		cfg.Logging.Format = flagLogFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *logging.Logger {
	return logging.NewLogger(logging.Config{
		Format: logging.Format(cfg.Logging.Format),
		Level:  logging.ParseLevel(cfg.Logging.Level),
	})
}

// fail prints a descriptive error and exits nonzero
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
