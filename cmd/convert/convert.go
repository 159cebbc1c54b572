// Package convert handles the legacy-export conversion command
package convert

import (
	"fmt"

	"fjacquet/fattura-xml/cmd/root"
	"fjacquet/fattura-xml/internal/config"
	"fjacquet/fattura-xml/internal/extractor"
	"fjacquet/fattura-xml/internal/fileutils"
	"fjacquet/fattura-xml/pkg/converter"

	"github.com/spf13/cobra"
)

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a legacy invoice export to FatturaPA XML",
	Long: `Convert a legacy invoice export to a FatturaPA 1.2 electronic invoice,
merging it with the invoice configuration record given via --config.`,
	Run: convertFunc,
}

func convertFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Convert command called")
	root.Log.Infof("Input export file: %s", root.SharedFlags.Input)

	if root.SharedFlags.Input == "" {
		root.Log.Fatal("An input export file is required (--input)")
	}
	if root.SharedFlags.Config == "" {
		root.Log.Fatal("An invoice configuration file is required (--config)")
	}

	if root.SharedFlags.Validate {
		valid, err := extractor.ValidateFormat(root.SharedFlags.Input)
		if err != nil {
			root.Log.Fatalf("Error validating file: %v", err)
		}
		if !valid {
			root.Log.Fatal("The file is not a legacy invoice export")
		}
		root.Log.Info("Validation successful.")
	}

	invoiceCfg, err := config.LoadInvoiceConfig(root.SharedFlags.Config)
	if err != nil {
		root.Log.Fatalf("Error loading invoice configuration: %v", err)
	}

	conv := converter.New(root.AppConfig)
	result, err := conv.ConvertFile(root.SharedFlags.Input, invoiceCfg)
	if err != nil {
		root.Log.Fatalf("Conversion failed: %v", err)
	}

	if root.SharedFlags.Output == "" {
		fmt.Print(result.Document)
	} else {
		if err := fileutils.WriteFile(root.SharedFlags.Output, []byte(result.Document), 0644); err != nil {
			root.Log.Fatalf("Error writing output file: %v", err)
		}
		root.Log.Infof("Wrote electronic invoice to %s", root.SharedFlags.Output)
	}
	root.Log.Info("Conversion completed successfully!")
}
