// Package extract handles the source-record inspection command
package extract

import (
	"fmt"

	"fjacquet/fattura-xml/cmd/root"
	"fjacquet/fattura-xml/internal/extractor"
	"fjacquet/fattura-xml/internal/fileutils"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Cmd represents the extract command
var Cmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract the canonical record from a legacy export",
	Long: `Parse a legacy invoice export and print the canonical source record,
including the recipient fields decomposed from the customer text, as YAML.`,
	Run: extractFunc,
}

func extractFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Extract command called")

	if root.SharedFlags.Input == "" {
		root.Log.Fatal("An input export file is required (--input)")
	}

	record, err := extractor.ParseFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Extraction failed: %v", err)
	}

	out, err := yaml.Marshal(record)
	if err != nil {
		root.Log.Fatalf("Error rendering record: %v", err)
	}

	if root.SharedFlags.Output == "" {
		fmt.Print(string(out))
	} else {
		if err := fileutils.WriteFile(root.SharedFlags.Output, out, 0644); err != nil {
			root.Log.Fatalf("Error writing output file: %v", err)
		}
		root.Log.Infof("Wrote source record to %s", root.SharedFlags.Output)
	}
}
