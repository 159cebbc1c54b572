// Package fatturaerror defines the error types shared by the extractor and
// the assembler.
package fatturaerror

import (
	"fmt"
	"strings"
)

// ExtractionError represents a failure to parse the legacy invoice export.
// It always wraps the underlying cause and is fatal to the conversion.
type ExtractionError struct {
	Source string
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("extraction failed for %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("extraction failed: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// MissingRecordError signals that the expected invoice container element was
// not found in the export.
type MissingRecordError struct {
	Tag string
}

func (e *MissingRecordError) Error() string {
	return fmt.Sprintf("element '%s' not found in the export file, check that the file is in the expected format", e.Tag)
}

// ValidationError represents an enumerated configuration field holding a value
// outside its closed set. The allowed values are reported so the caller can
// self-correct.
type ValidationError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: invalid value '%s'. Allowed values: %s",
		e.Field, e.Value, strings.Join(e.Allowed, ", "))
}

// MissingFieldError reports a required field that is empty in strict mode.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: required field is empty", e.Field)
}
