// Package models provides the data structures shared by the extractor and the
// assembler.
package models

// SourceRecord is the canonical form of one invoice taken from the legacy
// export. It is created once per conversion and never mutated afterwards;
// amounts stay decimal-as-string exactly as they appear in the export.
type SourceRecord struct {
	Number        string        `yaml:"numero" json:"numero"`
	Date          string        `yaml:"data" json:"data"`
	CustomerText  string        `yaml:"cliente" json:"cliente"`
	Causale       string        `yaml:"causale" json:"causale"`
	TaxRate       string        `yaml:"iva" json:"iva"`
	TaxNotes      string        `yaml:"note_iva" json:"note_iva"`
	PaymentMethod string        `yaml:"modo_pagamento" json:"modo_pagamento"`
	PaymentTerm   string        `yaml:"tempo_pagamento" json:"tempo_pagamento"`
	DueDate       string        `yaml:"scadenza" json:"scadenza"`
	Discount      string        `yaml:"sconto" json:"sconto"`
	TotalAmount   string        `yaml:"importo_totale" json:"importo_totale"`
	Recipient     RecipientInfo `yaml:"destinatario" json:"destinatario"`
}

// RecipientInfo carries the recipient fields decomposed from the free-text
// customer field. Every field is optional; the zero value means absent.
type RecipientInfo struct {
	Denominazione string `yaml:"denominazione,omitempty" json:"denominazione,omitempty"`
	PartitaIVA    string `yaml:"partita_iva,omitempty" json:"partita_iva,omitempty"`
	CodiceFiscale string `yaml:"codice_fiscale,omitempty" json:"codice_fiscale,omitempty"`
	Indirizzo     string `yaml:"indirizzo,omitempty" json:"indirizzo,omitempty"`
	Comune        string `yaml:"comune,omitempty" json:"comune,omitempty"`
	CAP           string `yaml:"cap,omitempty" json:"cap,omitempty"`
	Provincia     string `yaml:"provincia,omitempty" json:"provincia,omitempty"`
}

// IsEmpty reports whether no field was extracted.
func (r RecipientInfo) IsEmpty() bool {
	return r == RecipientInfo{}
}
