// Package extractor parses the legacy flat invoice export into a canonical
// SourceRecord.
package extractor

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"fjacquet/fattura-xml/internal/fatturaerror"
	"fjacquet/fattura-xml/internal/models"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/html/charset"
	"gopkg.in/xmlpath.v2"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// recordTag is the invoice container element expected inside the export.
const recordTag = "Fattura"

const (
	// taxNotesMaxLen is the schema limit carried by the downstream
	// RiferimentoNormativo element.
	taxNotesMaxLen = 100
	// dateLen keeps the YYYY-MM-DD prefix of date fields, dropping any
	// trailing time component.
	dateLen = 10
)

// legacyExport matches the export root; the root element name varies between
// exports, only the Fattura child matters.
type legacyExport struct {
	Fattura *legacyRecord `xml:"Fattura"`
}

// legacyRecord mirrors the fixed set of optional leaf fields of the export.
type legacyRecord struct {
	FatturaNum string `xml:"FatturaNum"`
	Data       string `xml:"Data"`
	Cliente    string `xml:"Cliente"`
	Note       string `xml:"Note"`
	Iva        string `xml:"Iva"`
	NoteIva    string `xml:"NoteIva"`
	ModoPag    string `xml:"ModoPag"`
	TempoPag   string `xml:"TempoPag"`
	Scad       string `xml:"Scad"`
	Sconto     string `xml:"Sconto"`
}

// ParseFile reads and parses a legacy export file into a SourceRecord.
func ParseFile(path string) (models.SourceRecord, error) {
	log.WithField("file", path).Info("Parsing legacy invoice export")

	data, err := os.ReadFile(path)
	if err != nil {
		return models.SourceRecord{}, &fatturaerror.ExtractionError{Source: path, Err: err}
	}

	record, err := Parse(data)
	if err != nil {
		if ex, ok := err.(*fatturaerror.ExtractionError); ok {
			ex.Source = path
		}
		return models.SourceRecord{}, err
	}
	return record, nil
}

// Parse parses raw export bytes into a SourceRecord. The bytes are decoded as
// UTF-8 with a Latin-1 fallback, the mis-escaped apostrophe entity is
// normalized, and every missing leaf field resolves to its documented default.
// Any hard parse failure yields an ExtractionError and no partial record.
func Parse(data []byte) (models.SourceRecord, error) {
	content, err := decode(data)
	if err != nil {
		return models.SourceRecord{}, &fatturaerror.ExtractionError{Err: err}
	}

	// The export encodes apostrophes even inside already-escaped content.
	content = strings.ReplaceAll(content, "&apos;", "'")

	var export legacyExport
	dec := xml.NewDecoder(strings.NewReader(content))
	// content is UTF-8 by now, whatever encoding the declaration claims.
	dec.CharsetReader = func(label string, input io.Reader) (io.Reader, error) {
		return input, nil
	}
	if err := dec.Decode(&export); err != nil {
		return models.SourceRecord{}, &fatturaerror.ExtractionError{Err: fmt.Errorf("malformed export XML: %w", err)}
	}
	if export.Fattura == nil {
		return models.SourceRecord{}, &fatturaerror.ExtractionError{Err: &fatturaerror.MissingRecordError{Tag: recordTag}}
	}

	rec := export.Fattura
	record := models.SourceRecord{
		Number:        strings.TrimSpace(rec.FatturaNum),
		Date:          truncate(strings.TrimSpace(rec.Data), dateLen),
		CustomerText:  strings.TrimSpace(rec.Cliente),
		Causale:       strings.TrimSpace(rec.Note),
		TaxRate:       defaultIfEmpty(strings.TrimSpace(rec.Iva), "0"),
		TaxNotes:      truncate(strings.TrimSpace(rec.NoteIva), taxNotesMaxLen),
		PaymentMethod: strings.TrimSpace(rec.ModoPag),
		PaymentTerm:   strings.TrimSpace(rec.TempoPag),
		DueDate:       truncate(strings.TrimSpace(rec.Scad), dateLen),
		Discount:      defaultIfEmpty(strings.TrimSpace(rec.Sconto), "0"),

		// Placeholder until the configuration overrides it.
		TotalAmount: "0.00",
	}
	record.Recipient = ParseCliente(record.CustomerText)

	log.WithField("numero", record.Number).Info("Successfully extracted invoice record")
	return record, nil
}

// ValidateFormat checks whether a file looks like a legacy export, without
// extracting it. Invalid XML yields false rather than an error.
func ValidateFormat(path string) (bool, error) {
	log.WithField("file", path).Debug("Validating legacy export format")

	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("error opening export file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	root, err := xmlpath.Parse(f)
	if err != nil {
		log.WithError(err).Debug("File is not valid XML")
		return false, nil
	}

	path2 := xmlpath.MustCompile("//" + recordTag)
	if !path2.Exists(root) {
		log.Debug("Missing Fattura element, not a legacy export")
		return false, nil
	}
	return true, nil
}

// decode interprets raw bytes as UTF-8, falling back to Latin-1 when the bytes
// are not valid UTF-8. Latin-1 accepts every byte value, so valid input never
// fails to decode.
func decode(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}

	r, err := charset.NewReaderLabel("latin1", bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("latin-1 fallback decoding unavailable: %w", err)
	}
	decoded, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("latin-1 fallback decoding failed: %w", err)
	}
	return string(decoded), nil
}

// truncate keeps at most n runes of s.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func defaultIfEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
