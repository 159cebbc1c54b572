package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/fattura-xml/cmd/batch"
	codescmd "fjacquet/fattura-xml/cmd/codes"
	"fjacquet/fattura-xml/cmd/convert"
	"fjacquet/fattura-xml/cmd/extract"
	"fjacquet/fattura-xml/cmd/irpef"
	"fjacquet/fattura-xml/cmd/root"
	"fjacquet/fattura-xml/cmd/validate"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Configure global log level directly - this affects ALL new loggers
	logLevel := configureLogLevelDirectly()
	logrus.SetLevel(logLevel)

	// 3. Now that logging is configured, initialize the root command
	root.Init()

	// 4. Add all subcommands
	root.Cmd.AddCommand(convert.Cmd)
	root.Cmd.AddCommand(extract.Cmd)
	root.Cmd.AddCommand(validate.Cmd)
	root.Cmd.AddCommand(codescmd.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(irpef.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}

	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly resolves the global log level from the
// environment before any logging happens.
func configureLogLevelDirectly() logrus.Level {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	return logLevel
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
