package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"menuexport/internal/export"
	"menuexport/internal/output"
	"menuexport/internal/sheet"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Fetch the menu tab and write latest.json plus a snapshot on change",
	Long: `Run the full export pipeline once.

Fetches the configured tab, normalizes and groups the rows, fingerprints the
result, and writes latest.json plus snapshots/<timestamp>.json only when the
content changed since the previous run.

Examples:
  menuexport export
  menuexport export --tab Menu --out ./site/data
  menuexport export --format json`,
	Run: runExportCmd,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "text", "Output format (text, json)")
	rootCmd.AddCommand(exportCmd)
}

func runExportCmd(cmd *cobra.Command, args []string) {
	result, err := runPipeline(false)
	if err != nil {
		fail(err)
	}

	if exportFormat == "json" {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			fail(err)
		}
		fmt.Println(string(data))
		return
	}

	if result.Changed {
		fmt.Println("Wrote latest.json and snapshot:", result.SnapshotPath)
	} else {
		fmt.Println("No change. (latest.json unchanged)")
	}
}

// runPipeline wires config, client, writer, and exporter for one run
func runPipeline(dryRun bool) (*export.Result, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger := newLogger(cfg)

	ctx := context.Background()
	client, err := sheet.NewClient(ctx, cfg.CredentialsPath, logger)
	if err != nil {
		return nil, err
	}

	writer := output.NewWriter(cfg.OutDir, logger)
	exporter := export.NewExporter(client, writer, logger)

	return exporter.Run(ctx, export.Options{
		SpreadsheetID: cfg.SheetID,
		Tab:           cfg.TabName,
		DryRun:        dryRun,
	})
}
