package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Fetch and validate the menu tab without writing outputs",
	Long: `Dry run: fetch the configured tab, check the header contract, and build
the document in memory. Nothing is written; failures exit nonzero with the
same codes as export.`,
	Run: runValidateCmd,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidateCmd(cmd *cobra.Command, args []string) {
	result, err := runPipeline(true)
	if err != nil {
		fail(err)
	}

	fingerprint := result.Fingerprint
	if len(fingerprint) > 12 {
		fingerprint = fingerprint[:12]
	}
	fmt.Printf("OK: %d categories, %d items (fingerprint %s)\n",
		result.Categories, result.Items, fingerprint)
}
