// Package validate handles the configuration validation command
package validate

import (
	"fjacquet/fattura-xml/cmd/root"
	"fjacquet/fattura-xml/internal/assembler"
	"fjacquet/fattura-xml/internal/config"

	"github.com/spf13/cobra"
)

// Cmd represents the validate command
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate an invoice configuration file",
	Long: `Check every enumerated code of an invoice configuration record against
the FatturaPA catalogues without converting anything.`,
	Run: validateFunc,
}

func validateFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Validate command called")

	if root.SharedFlags.Config == "" {
		root.Log.Fatal("An invoice configuration file is required (--config)")
	}

	invoiceCfg, err := config.LoadInvoiceConfig(root.SharedFlags.Config)
	if err != nil {
		root.Log.Fatalf("Error loading invoice configuration: %v", err)
	}

	if err := assembler.ValidateConfig(invoiceCfg); err != nil {
		root.Log.Fatalf("Configuration is invalid: %v", err)
	}
	root.Log.Info("Configuration is valid.")
}
