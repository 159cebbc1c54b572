// Package batch handles the directory conversion command
package batch

import (
	"fjacquet/fattura-xml/cmd/root"
	batchconv "fjacquet/fattura-xml/internal/batch"
	"fjacquet/fattura-xml/internal/config"
	"fjacquet/fattura-xml/internal/logging"
	"fjacquet/fattura-xml/pkg/converter"

	"github.com/spf13/cobra"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Convert a directory of legacy exports",
	Long: `Convert every XML export in a directory using one shared invoice
configuration, writing the documents and a summary.csv to the output
directory. Files that fail to convert are skipped and recorded.`,
	Run: batchFunc,
}

func init() {
	Cmd.Flags().StringVar(&root.InputDir, "input-dir", "", "Directory containing legacy exports")
	Cmd.Flags().StringVar(&root.OutputDir, "output-dir", "", "Directory for the converted documents")
}

func batchFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Batch command called")

	if root.InputDir == "" || root.OutputDir == "" {
		root.Log.Fatal("Both --input-dir and --output-dir are required")
	}
	if root.SharedFlags.Config == "" {
		root.Log.Fatal("An invoice configuration file is required (--config)")
	}

	invoiceCfg, err := config.LoadInvoiceConfig(root.SharedFlags.Config)
	if err != nil {
		root.Log.Fatalf("Error loading invoice configuration: %v", err)
	}

	conv := converter.New(root.AppConfig)
	logger := logging.NewLogrusAdapterFromLogger(root.Log).WithField("command", "batch")
	count, err := batchconv.Convert(conv, invoiceCfg, root.InputDir, root.OutputDir, logger)
	if err != nil {
		root.Log.Fatalf("Batch conversion failed: %v", err)
	}
	root.Log.Infof("Converted %d files", count)
}
