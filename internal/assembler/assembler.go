// Package assembler builds the FatturaPA document from a SourceRecord and an
// InvoiceConfig.
package assembler

import (
	"encoding/xml"
	"fmt"

	"fjacquet/fattura-xml/internal/fatturaerror"
	"fjacquet/fattura-xml/internal/models"
	"fjacquet/fattura-xml/pkg/codes"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// riferimentoMaxLen is the schema limit of RiferimentoNormativo.
const riferimentoMaxLen = 100

// Options controls assembly behavior beyond the configuration record.
type Options struct {
	// Strict rejects empty required non-enumerated fields (legal names,
	// sender address) instead of serializing them empty.
	Strict bool
}

// Assemble validates, builds and serializes the electronic invoice. On any
// validation failure no document is produced.
func Assemble(src models.SourceRecord, cfg models.InvoiceConfig, opts Options) (string, error) {
	doc, err := Build(src, cfg, opts)
	if err != nil {
		return "", err
	}
	return Serialize(doc)
}

// Build constructs the document tree. Every enumerated field is checked
// against its closed set before any section is assembled; the first invalid
// value aborts the build.
func Build(src models.SourceRecord, cfg models.InvoiceConfig, opts Options) (*models.FatturaElettronica, error) {
	recipient := mergeRecipient(cfg.Recipient, src.Recipient)
	document := mergeDocument(cfg.Document, src)

	if err := validate(cfg, recipient, document); err != nil {
		log.WithError(err).Error("Configuration failed enumeration checks")
		return nil, err
	}
	if opts.Strict {
		if err := checkPresence(cfg, recipient); err != nil {
			log.WithError(err).Error("Configuration failed strict presence checks")
			return nil, err
		}
	}

	schemaLocation := models.SchemaLocationOnline
	if cfg.UseLocalSchema {
		schemaLocation = models.SchemaLocationLocal
	}

	lines, err := buildLines(cfg.Lines)
	if err != nil {
		return nil, err
	}
	riepilogo, err := buildRiepilogo(cfg.TaxSummary)
	if err != nil {
		return nil, err
	}

	doc := &models.FatturaElettronica{
		Versione:       cfg.Transmission.Formato,
		XmlnsP:         models.NamespaceFatturaPA,
		XmlnsDS:        models.NamespaceXMLDSig,
		XmlnsXSI:       models.NamespaceXSI,
		SchemaLocation: schemaLocation,
		Header: models.FatturaHeader{
			DatiTrasmissione: models.DatiTrasmissione{
				IdTrasmittente: models.IdFiscale{
					IdPaese:  cfg.Sender.IdPaese,
					IdCodice: cfg.Sender.IdCodice,
				},
				ProgressivoInvio:     cfg.Transmission.ProgressivoInvio,
				FormatoTrasmissione:  cfg.Transmission.Formato,
				CodiceDestinatario:   cfg.Transmission.CodiceDestinatario,
				ContattiTrasmittente: buildContatti(cfg.Transmission.Telefono, cfg.Transmission.Email),
			},
			CedentePrestatore:      buildCedente(cfg.Sender),
			CessionarioCommittente: buildCessionario(recipient),
		},
		Body: models.FatturaBody{
			DatiGenerali: models.DatiGenerali{
				DatiGeneraliDocumento: document,
			},
			DatiBeniServizi: models.DatiBeniServizi{
				DettaglioLinee: lines,
				DatiRiepilogo:  riepilogo,
			},
			DatiPagamento: buildPagamento(cfg.Payment),
		},
	}

	log.WithFields(logrus.Fields{
		"numero": document.Numero,
		"linee":  len(lines),
	}).Info("Assembled electronic invoice document")
	return doc, nil
}

// Serialize renders the document tree as the final pretty-printed UTF-8
// string: declaration line first, two-space indentation, no blank lines,
// exactly one trailing newline. Serializing the same tree twice is
// byte-identical.
func Serialize(doc *models.FatturaElettronica) (string, error) {
	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error serializing document: %w", err)
	}
	return xml.Header + string(out) + "\n", nil
}

// SerializeRaw renders the compact single-line form used for the durable
// artifact copy.
func SerializeRaw(doc *models.FatturaElettronica) ([]byte, error) {
	out, err := xml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("error serializing document: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}

// ValidateConfig runs the enumeration checks of a configuration record on its
// own, merged against an empty source record. It lets a caller check a
// configuration before any export is available.
func ValidateConfig(cfg models.InvoiceConfig) error {
	recipient := mergeRecipient(cfg.Recipient, models.RecipientInfo{})
	document := mergeDocument(cfg.Document, models.SourceRecord{})
	return validate(cfg, recipient, document)
}

// validate runs every enumeration check up front. The order fixes which error
// surfaces first when several values are invalid.
func validate(cfg models.InvoiceConfig, recipient models.RecipientConfig, document models.DatiGeneraliDocumento) error {
	if err := codes.TransmissionFormats.Validate("FormatoTrasmissione", cfg.Transmission.Formato); err != nil {
		return err
	}
	if err := codes.Countries.Validate("IdPaese", cfg.Sender.IdPaese); err != nil {
		return err
	}
	if err := codes.FiscalRegimes.Validate("RegimeFiscale", cfg.Sender.RegimeFiscale); err != nil {
		return err
	}
	if err := codes.Countries.Validate("Nazione", cfg.Sender.Sede.Nazione); err != nil {
		return err
	}
	if recipient.IdCodice != "" {
		if err := codes.Countries.Validate("IdPaeseDestinatario", recipient.IdPaese); err != nil {
			return err
		}
	}
	if err := codes.Countries.Validate("NazioneDestinatario", recipient.Sede.Nazione); err != nil {
		return err
	}
	if err := codes.DocumentTypes.Validate("TipoDocumento", document.TipoDocumento); err != nil {
		return err
	}
	if cfg.Payment.Complete() {
		if err := codes.PaymentModes.Validate("ModalitaPagamento", cfg.Payment.Modalita); err != nil {
			return err
		}
	}
	return nil
}

// checkPresence enforces the strict-mode requirements that the relaxed default
// leaves to the downstream consumer.
func checkPresence(cfg models.InvoiceConfig, recipient models.RecipientConfig) error {
	required := []struct {
		field string
		value string
	}{
		{"DenominazioneMittente", cfg.Sender.Denominazione},
		{"DenominazioneDestinatario", recipient.Denominazione},
		{"IndirizzoMittente", cfg.Sender.Sede.Indirizzo},
		{"CAPMittente", cfg.Sender.Sede.CAP},
		{"ComuneMittente", cfg.Sender.Sede.Comune},
		{"ProvinciaMittente", cfg.Sender.Sede.Provincia},
	}
	for _, r := range required {
		if r.value == "" {
			return &fatturaerror.MissingFieldError{Field: r.field}
		}
	}
	return nil
}

// mergeRecipient overlays the configuration's recipient fields on the values
// parsed out of the customer text. Nazione falls back to IT: the legacy export
// carries no recipient country.
func mergeRecipient(cfg models.RecipientConfig, parsed models.RecipientInfo) models.RecipientConfig {
	out := cfg
	if out.IdCodice == "" {
		out.IdCodice = parsed.PartitaIVA
	}
	if out.CodiceFiscale == "" {
		out.CodiceFiscale = parsed.CodiceFiscale
	}
	if out.Denominazione == "" {
		out.Denominazione = parsed.Denominazione
	}
	if out.Sede.Indirizzo == "" {
		out.Sede.Indirizzo = parsed.Indirizzo
	}
	if out.Sede.CAP == "" {
		out.Sede.CAP = parsed.CAP
	}
	if out.Sede.Comune == "" {
		out.Sede.Comune = parsed.Comune
	}
	if out.Sede.Provincia == "" {
		out.Sede.Provincia = parsed.Provincia
	}
	if out.Sede.Nazione == "" {
		out.Sede.Nazione = "IT"
	}
	if out.IdCodice != "" && out.IdPaese == "" {
		out.IdPaese = "IT"
	}
	return out
}

// mergeDocument resolves the document header, defaulting every omitted field
// to the SourceRecord.
func mergeDocument(cfg models.DocumentConfig, src models.SourceRecord) models.DatiGeneraliDocumento {
	doc := models.DatiGeneraliDocumento{
		TipoDocumento:          cfg.Tipo,
		Divisa:                 cfg.Divisa,
		Data:                   cfg.Data,
		Numero:                 cfg.Numero,
		ImportoTotaleDocumento: cfg.ImportoTotale,
		Causale:                cfg.Causale,
	}
	if doc.TipoDocumento == "" {
		doc.TipoDocumento = "TD01"
	}
	if doc.Divisa == "" {
		doc.Divisa = "EUR"
	}
	if doc.Data == "" {
		doc.Data = src.Date
	}
	if doc.Numero == "" {
		doc.Numero = src.Number
	}
	if doc.ImportoTotaleDocumento == "" {
		doc.ImportoTotaleDocumento = src.TotalAmount
	}
	if doc.Causale == "" {
		doc.Causale = src.Causale
	}
	return doc
}

func buildContatti(telefono, email string) *models.Contatti {
	if telefono == "" && email == "" {
		return nil
	}
	return &models.Contatti{Telefono: telefono, Email: email}
}

func buildCedente(sender models.SenderConfig) models.CedentePrestatore {
	cedente := models.CedentePrestatore{
		DatiAnagrafici: models.CedenteAnagrafici{
			IdFiscaleIVA: models.IdFiscale{
				IdPaese:  sender.IdPaese,
				IdCodice: sender.IdCodice,
			},
			CodiceFiscale: sender.CodiceFiscale,
			Anagrafica:    models.Anagrafica{Denominazione: sender.Denominazione},
			RegimeFiscale: sender.RegimeFiscale,
		},
		Sede: models.Sede{
			Indirizzo: sender.Sede.Indirizzo,
			CAP:       sender.Sede.CAP,
			Comune:    sender.Sede.Comune,
			Provincia: sender.Sede.Provincia,
			Nazione:   sender.Sede.Nazione,
		},
	}

	// The registry block hinges on the office code alone; the other four
	// members are emitted even when empty.
	if sender.REA != nil && sender.REA.Ufficio != "" {
		cedente.IscrizioneREA = &models.IscrizioneREA{
			Ufficio:           sender.REA.Ufficio,
			NumeroREA:         sender.REA.Numero,
			CapitaleSociale:   sender.REA.CapitaleSociale,
			SocioUnico:        sender.REA.SocioUnico,
			StatoLiquidazione: sender.REA.StatoLiquidazione,
		}
	}

	if sender.Contatti != nil && sender.Contatti.Telefono != "" {
		cedente.Contatti = &models.Contatti{
			Telefono: sender.Contatti.Telefono,
			Email:    sender.Contatti.Email,
		}
	}
	return cedente
}

func buildCessionario(recipient models.RecipientConfig) models.CessionarioCommittente {
	anagrafici := models.CessionarioAnagrafici{
		CodiceFiscale: recipient.CodiceFiscale,
		Anagrafica:    models.Anagrafica{Denominazione: recipient.Denominazione},
	}
	if recipient.IdCodice != "" {
		anagrafici.IdFiscaleIVA = &models.IdFiscale{
			IdPaese:  recipient.IdPaese,
			IdCodice: recipient.IdCodice,
		}
	}
	return models.CessionarioCommittente{
		DatiAnagrafici: anagrafici,
		Sede: models.Sede{
			Indirizzo: recipient.Sede.Indirizzo,
			CAP:       recipient.Sede.CAP,
			Comune:    recipient.Sede.Comune,
			Provincia: recipient.Sede.Provincia,
			Nazione:   recipient.Sede.Nazione,
		},
	}
}

// buildLines emits every complete line in order, numbering from 1. Incomplete
// lines are skipped, never partially emitted.
func buildLines(lines []models.LineConfig) ([]models.DettaglioLinea, error) {
	var out []models.DettaglioLinea
	for i, line := range lines {
		if !line.Complete() {
			log.WithField("slot", i+1).Debug("Skipping incomplete invoice line")
			continue
		}

		totale := line.PrezzoTotale
		if totale == "" {
			derived, err := lineTotal(line.Quantita, line.PrezzoUnitario)
			if err != nil {
				return nil, fmt.Errorf("line %d: cannot derive PrezzoTotale: %w", i+1, err)
			}
			totale = derived
		}

		aliquota := line.AliquotaIVA
		if aliquota == "" {
			aliquota = "0.00"
		}

		detail := models.DettaglioLinea{
			NumeroLinea:    len(out) + 1,
			Descrizione:    line.Descrizione,
			Quantita:       line.Quantita,
			UnitaMisura:    line.UnitaMisura,
			PrezzoUnitario: line.PrezzoUnitario,
			PrezzoTotale:   totale,
			AliquotaIVA:    aliquota,
			Natura:         line.Natura,
		}
		if line.Sconto != "" {
			detail.ScontoMaggiorazione = &models.ScontoMaggiorazione{
				Tipo:        "SC",
				Percentuale: line.Sconto,
			}
		}
		out = append(out, detail)
	}
	return out, nil
}

func buildRiepilogo(summary *models.TaxSummaryConfig) (*models.DatiRiepilogo, error) {
	if !summary.Complete() {
		return nil, nil
	}

	imposta := summary.Imposta
	if imposta == "" {
		derived, err := taxAmount(summary.Imponibile, summary.AliquotaIVA)
		if err != nil {
			return nil, fmt.Errorf("riepilogo: cannot derive Imposta: %w", err)
		}
		imposta = derived
	}

	riferimento := summary.RiferimentoNormativo
	if len([]rune(riferimento)) > riferimentoMaxLen {
		riferimento = string([]rune(riferimento)[:riferimentoMaxLen])
	}

	return &models.DatiRiepilogo{
		AliquotaIVA:          summary.AliquotaIVA,
		Natura:               summary.Natura,
		ImponibileImporto:    summary.Imponibile,
		Imposta:              imposta,
		RiferimentoNormativo: riferimento,
	}, nil
}

func buildPagamento(payment *models.PaymentConfig) *models.DatiPagamento {
	if !payment.Complete() {
		return nil
	}
	return &models.DatiPagamento{
		CondizioniPagamento: payment.Condizioni,
		DettaglioPagamento: models.DettaglioPagamento{
			ModalitaPagamento: payment.Modalita,
			ImportoPagamento:  payment.Importo,
			IBAN:              payment.IBAN,
		},
	}
}

// lineTotal computes quantity x unit price with 2-digit precision.
func lineTotal(quantita, prezzoUnitario string) (string, error) {
	qty, err := decimal.NewFromString(quantita)
	if err != nil {
		return "", fmt.Errorf("invalid Quantita '%s': %w", quantita, err)
	}
	price, err := decimal.NewFromString(prezzoUnitario)
	if err != nil {
		return "", fmt.Errorf("invalid PrezzoUnitario '%s': %w", prezzoUnitario, err)
	}
	return qty.Mul(price).StringFixed(2), nil
}

// taxAmount computes taxable x rate / 100 with 2-digit precision.
func taxAmount(imponibile, aliquota string) (string, error) {
	base, err := decimal.NewFromString(imponibile)
	if err != nil {
		return "", fmt.Errorf("invalid ImponibileImporto '%s': %w", imponibile, err)
	}
	rate, err := decimal.NewFromString(aliquota)
	if err != nil {
		return "", fmt.Errorf("invalid AliquotaIVA '%s': %w", aliquota, err)
	}
	return base.Mul(rate).Div(decimal.NewFromInt(100)).Round(2).StringFixed(2), nil
}
