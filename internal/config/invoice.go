package config

import (
	"bytes"
	"fmt"
	"os"

	"fjacquet/fattura-xml/internal/models"

	"gopkg.in/yaml.v3"
)

// LoadInvoiceConfig reads an invoice configuration record from a YAML file.
// Unknown keys are rejected: the configuration field set is fixed and a typo'd
// key would otherwise silently drop a block.
func LoadInvoiceConfig(path string) (models.InvoiceConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.InvoiceConfig{}, fmt.Errorf("error reading invoice config: %w", err)
	}
	return ParseInvoiceConfig(data)
}

// ParseInvoiceConfig parses an invoice configuration record from YAML bytes.
func ParseInvoiceConfig(data []byte) (models.InvoiceConfig, error) {
	var cfg models.InvoiceConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return models.InvoiceConfig{}, fmt.Errorf("error parsing invoice config: %w", err)
	}
	return cfg, nil
}
