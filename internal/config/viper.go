package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the application configuration, loaded hierarchically from
// defaults, an optional config.yaml and FATTURA_-prefixed environment
// variables.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Output struct {
		// ArtifactPath is where the raw copy of the assembled document is
		// persisted after every successful conversion.
		ArtifactPath string `mapstructure:"artifact_path" yaml:"artifact_path"`
	} `mapstructure:"output" yaml:"output"`

	Assembler struct {
		// Strict rejects empty required non-enumerated fields instead of
		// serializing them as empty elements.
		Strict bool `mapstructure:"strict" yaml:"strict"`
	} `mapstructure:"assembler" yaml:"assembler"`
}

// InitializeConfig loads the application configuration.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.fattura-xml")
	v.AddConfigPath(".fattura-xml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("FATTURA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Keep going with defaults and env vars.
			Logger.Warnf("Error reading config file %s: %v", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("output.artifact_path", "data/output.xml")
	v.SetDefault("assembler.strict", false)
}

func validateConfig(config *Config) error {
	switch config.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level: %s", config.Log.Level)
	}
	switch config.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format: %s", config.Log.Format)
	}
	if config.Output.ArtifactPath == "" {
		return fmt.Errorf("output.artifact_path must not be empty")
	}
	return nil
}
