// Package codes exposes the closed code sets of the FatturaPA 1.2 schema that
// the assembler validates against. The catalogues carry the official
// descriptions so that a caller building a configuration record can populate
// selection lists from them.
package codes

import (
	"fjacquet/fattura-xml/internal/fatturaerror"
)

// Entry is one code of a catalogue together with its description.
type Entry struct {
	Code        string `csv:"code" yaml:"code"`
	Description string `csv:"description" yaml:"description"`
}

// Set is a closed, ordered set of codes for one enumerated field.
type Set struct {
	name    string
	entries []Entry
	index   map[string]struct{}
}

func newSet(name string, entries []Entry) Set {
	index := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		index[e.Code] = struct{}{}
	}
	return Set{name: name, entries: entries, index: index}
}

// Name returns the schema field name this set validates.
func (s Set) Name() string {
	return s.name
}

// Contains reports whether code belongs to the set.
func (s Set) Contains(code string) bool {
	_, ok := s.index[code]
	return ok
}

// Codes returns the codes in catalogue order.
func (s Set) Codes() []string {
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Code
	}
	return out
}

// Entries returns a copy of the catalogue in order.
func (s Set) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Validate returns nil when value belongs to the set, otherwise a
// *fatturaerror.ValidationError naming the field and the accepted values.
// The field name defaults to the set name when empty.
func (s Set) Validate(field, value string) error {
	if field == "" {
		field = s.name
	}
	if s.Contains(value) {
		return nil
	}
	return &fatturaerror.ValidationError{
		Field:   field,
		Value:   value,
		Allowed: s.Codes(),
	}
}

// All returns every catalogue keyed by its field name, for bulk export.
func All() map[string]Set {
	return map[string]Set{
		Countries.Name():           Countries,
		FiscalRegimes.Name():       FiscalRegimes,
		TransmissionFormats.Name(): TransmissionFormats,
		DocumentTypes.Name():       DocumentTypes,
		PaymentModes.Name():        PaymentModes,
	}
}
