package extractor

import (
	"strings"

	"fjacquet/fattura-xml/internal/models"
)

// The customer field is one free-text line with fields joined by a hyphen
// surrounded by whitespace:
//
//	DENOMINAZIONE - PI - <partita iva> - CF - <codice fiscale> - INDIRIZZO - COMUNE - CAP[-PROV] - PROVINCIA
//
// Grammar:
//   - the first segment is always the denomination;
//   - an interior segment containing "PI" marks the following segment as the
//     VAT number, one containing "CF" marks the following segment as the tax
//     code;
//   - when at least four segments exist, the trailing four are read
//     positionally as address, municipality, postal code (split on an embedded
//     "-" when a province fragment is attached) and province.
//
// The parser is deliberately permissive: malformed input yields a partial
// RecipientInfo, never an error. Denominazione is the only field guaranteed
// present for non-empty input.

// clienteDelimiter separates the customer-field segments. A bare "-" is not a
// delimiter: postal codes like "20100-MI" embed one.
const clienteDelimiter = " - "

// ParseCliente decomposes the free-text customer field into a RecipientInfo.
// Empty input yields the zero value.
func ParseCliente(text string) models.RecipientInfo {
	var info models.RecipientInfo
	text = strings.TrimSpace(text)
	if text == "" {
		return info
	}

	text = strings.ReplaceAll(text, "&apos;", "'")

	raw := strings.Split(text, clienteDelimiter)
	parts := make([]string, len(raw))
	for i, p := range raw {
		parts[i] = strings.TrimSpace(p)
	}

	info.Denominazione = parts[0]

	// Marker scan over the interior segments: the segment after a marker is
	// the marked value.
	for i := 1; i < len(parts)-1; i++ {
		switch {
		case strings.Contains(parts[i], "PI"):
			info.PartitaIVA = parts[i+1]
		case strings.Contains(parts[i], "CF"):
			info.CodiceFiscale = parts[i+1]
		}
	}

	// Fixed-position trailing geography, independent of the marker scan.
	if len(parts) >= 4 {
		info.Indirizzo = parts[len(parts)-4]
		info.Comune = parts[len(parts)-3]
		capProvincia := parts[len(parts)-2]
		if idx := strings.Index(capProvincia, "-"); idx >= 0 {
			info.CAP = strings.TrimSpace(capProvincia[:idx])
		} else {
			info.CAP = capProvincia
		}
		info.Provincia = parts[len(parts)-1]
	}

	return info
}
