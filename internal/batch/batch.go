// Package batch converts every legacy export in a directory with one shared
// invoice configuration and writes a CSV summary of the run.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/fattura-xml/internal/fileutils"
	"fjacquet/fattura-xml/internal/logging"
	"fjacquet/fattura-xml/internal/models"
	"fjacquet/fattura-xml/pkg/converter"

	"github.com/gocarina/gocsv"
)

// SummaryRow is one line of the batch summary report.
type SummaryRow struct {
	File   string `csv:"file"`
	Status string `csv:"status"`
	Numero string `csv:"numero"`
	Error  string `csv:"error"`
}

// Convert converts all XML files in inputDir into outputDir, skipping files
// that fail and recording every outcome in outputDir/summary.csv. It returns
// the number of files converted successfully.
func Convert(conv *converter.Converter, invoiceCfg models.InvoiceConfig, inputDir, outputDir string, logger logging.Logger) (int, error) {
	logger.Info("Batch converting legacy exports",
		logging.Field{Key: "inputDir", Value: inputDir},
		logging.Field{Key: "outputDir", Value: outputDir})

	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		return 0, fmt.Errorf("error creating output directory: %w", err)
	}

	files, err := filepath.Glob(filepath.Join(inputDir, "*.xml"))
	if err != nil {
		return 0, fmt.Errorf("error reading input directory: %w", err)
	}

	var processed int
	rows := make([]SummaryRow, 0, len(files))
	for _, file := range files {
		baseName := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		outputFile := filepath.Join(outputDir, baseName+"_fatturapa.xml")

		result, err := conv.ConvertFile(file, invoiceCfg)
		if err != nil {
			logger.WithError(err).Warn("Failed to convert file, skipping",
				logging.Field{Key: "file", Value: file})
			rows = append(rows, SummaryRow{File: filepath.Base(file), Status: "failed", Error: err.Error()})
			continue
		}

		if err := fileutils.WriteFile(outputFile, []byte(result.Document), 0644); err != nil {
			logger.WithError(err).Warn("Failed to write output, skipping",
				logging.Field{Key: "file", Value: outputFile})
			rows = append(rows, SummaryRow{File: filepath.Base(file), Status: "failed", Error: err.Error()})
			continue
		}

		rows = append(rows, SummaryRow{File: filepath.Base(file), Status: "converted", Numero: result.Source.Number})
		processed++
	}

	if err := writeSummary(rows, filepath.Join(outputDir, "summary.csv"), logger); err != nil {
		return processed, err
	}

	logger.Info("Batch conversion completed",
		logging.Field{Key: "count", Value: processed})
	return processed, nil
}

func writeSummary(rows []SummaryRow, path string, logger logging.Logger) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating summary file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close summary file")
		}
	}()

	if err := gocsv.MarshalFile(&rows, f); err != nil {
		return fmt.Errorf("error writing summary file: %w", err)
	}
	return nil
}
