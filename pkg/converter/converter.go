// Package converter is the public entry point: it extracts a legacy invoice
// export, assembles the FatturaPA document and persists the raw artifact
// copy. A conversion always yields both the pretty-printed in-memory document
// and the durable raw copy; nothing is written when validation fails.
package converter

import (
	"fjacquet/fattura-xml/internal/assembler"
	"fjacquet/fattura-xml/internal/config"
	"fjacquet/fattura-xml/internal/extractor"
	"fjacquet/fattura-xml/internal/fileutils"
	"fjacquet/fattura-xml/internal/models"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a custom logger for this package and the internal
// packages it drives.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
		extractor.SetLogger(logger)
		assembler.SetLogger(logger)
		fileutils.SetLogger(logger)
	}
}

// Result carries everything one conversion produced.
type Result struct {
	// Document is the pretty-printed electronic invoice.
	Document string
	// Source is the canonical record extracted from the legacy export.
	Source models.SourceRecord
	// ArtifactPath is where the raw copy was written.
	ArtifactPath string
}

// Converter binds the application configuration to the conversion pipeline.
type Converter struct {
	artifactPath string
	strict       bool
}

// New creates a Converter from the application configuration.
func New(cfg *config.Config) *Converter {
	return &Converter{
		artifactPath: cfg.Output.ArtifactPath,
		strict:       cfg.Assembler.Strict,
	}
}

// ConvertFile converts a legacy export file with the given invoice
// configuration record.
func (c *Converter) ConvertFile(inputPath string, invoiceCfg models.InvoiceConfig) (Result, error) {
	src, err := extractor.ParseFile(inputPath)
	if err != nil {
		return Result{}, err
	}
	return c.assemble(src, invoiceCfg)
}

// Convert converts raw export bytes with the given invoice configuration
// record.
func (c *Converter) Convert(data []byte, invoiceCfg models.InvoiceConfig) (Result, error) {
	src, err := extractor.Parse(data)
	if err != nil {
		return Result{}, err
	}
	return c.assemble(src, invoiceCfg)
}

func (c *Converter) assemble(src models.SourceRecord, invoiceCfg models.InvoiceConfig) (Result, error) {
	doc, err := assembler.Build(src, invoiceCfg, assembler.Options{Strict: c.strict})
	if err != nil {
		return Result{}, err
	}

	pretty, err := assembler.Serialize(doc)
	if err != nil {
		return Result{}, err
	}
	raw, err := assembler.SerializeRaw(doc)
	if err != nil {
		return Result{}, err
	}

	if err := fileutils.WriteFile(c.artifactPath, raw, 0644); err != nil {
		return Result{}, err
	}
	log.WithField("artifact", c.artifactPath).Info("Persisted raw document copy")

	return Result{
		Document:     pretty,
		Source:       src,
		ArtifactPath: c.artifactPath,
	}, nil
}
