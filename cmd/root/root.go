// Package root contains the root command for the application
package root

import (
	"fjacquet/fattura-xml/internal/config"
	"fjacquet/fattura-xml/pkg/converter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input    string
	Output   string
	Config   string
	Validate bool
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// AppConfig is the application configuration loaded before any command runs
	AppConfig *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "fattura-xml",
		Short: "A CLI tool to convert legacy invoice exports to FatturaPA 1.2 XML.",
		Long: `fattura-xml converts flat invoice exports from the legacy management
system into electronic invoices conforming to the FatturaPA 1.2 exchange
format, validating every enumerated code against the schema catalogues.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to fattura-xml!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			var err error
			AppConfig, err = config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}

			converter.SetLogger(Log)
		},
	}

	// SharedFlags holds the common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Specific batch command flags
	InputDir  string
	OutputDir string

	// Specific irpef command flags
	Reddito string
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input legacy export file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (stdout when omitted)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Config, "config", "c", "", "Invoice configuration YAML file")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate file format before conversion")
}
