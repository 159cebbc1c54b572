package assembler

import (
	"errors"
	"strings"
	"testing"

	"fjacquet/fattura-xml/internal/fatturaerror"
	"fjacquet/fattura-xml/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log = logrus.New()
	log.SetLevel(logrus.DebugLevel)
}

func sampleSource() models.SourceRecord {
	return models.SourceRecord{
		Number:      "2025/042",
		Date:        "2025-07-21",
		Causale:     "Consulenza luglio",
		TaxRate:     "22",
		TotalAmount: "0.00",
		Recipient: models.RecipientInfo{
			Denominazione: "ACME SRL",
			PartitaIVA:    "12345678901",
			Indirizzo:     "VIA ROMA 1",
			Comune:        "MILANO",
			CAP:           "20100",
			Provincia:     "MI",
		},
	}
}

func sampleConfig() models.InvoiceConfig {
	return models.InvoiceConfig{
		Transmission: models.TransmissionConfig{
			ProgressivoInvio:   "00001",
			Formato:            "FPR12",
			CodiceDestinatario: "0000000",
		},
		Sender: models.SenderConfig{
			IdPaese:       "IT",
			IdCodice:      "01234567890",
			CodiceFiscale: "01234567890",
			Denominazione: "STUDIO BIANCHI SRL",
			RegimeFiscale: "RF01",
			Sede: models.AddressConfig{
				Indirizzo: "VIA GARIBALDI 10",
				CAP:       "10121",
				Comune:    "TORINO",
				Provincia: "TO",
				Nazione:   "IT",
			},
		},
		Recipient: models.RecipientConfig{
			IdPaese: "IT",
			Sede: models.AddressConfig{
				Nazione: "IT",
			},
		},
	}
}

func TestAssembleRoundTripDefaults(t *testing.T) {
	doc, err := Build(sampleSource(), sampleConfig(), Options{})
	require.NoError(t, err)

	header := doc.Body.DatiGenerali.DatiGeneraliDocumento
	assert.Equal(t, "TD01", header.TipoDocumento)
	assert.Equal(t, "EUR", header.Divisa)
	assert.Equal(t, "2025-07-21", header.Data)
	assert.Equal(t, "2025/042", header.Numero)
	assert.Equal(t, "0.00", header.ImportoTotaleDocumento)
	assert.Equal(t, "Consulenza luglio", header.Causale)
}

func TestAssembleRecipientMerge(t *testing.T) {
	doc, err := Build(sampleSource(), sampleConfig(), Options{})
	require.NoError(t, err)

	cessionario := doc.Header.CessionarioCommittente
	require.NotNil(t, cessionario.DatiAnagrafici.IdFiscaleIVA)
	assert.Equal(t, "IT", cessionario.DatiAnagrafici.IdFiscaleIVA.IdPaese)
	assert.Equal(t, "12345678901", cessionario.DatiAnagrafici.IdFiscaleIVA.IdCodice)
	assert.Equal(t, "ACME SRL", cessionario.DatiAnagrafici.Anagrafica.Denominazione)
	assert.Equal(t, "VIA ROMA 1", cessionario.Sede.Indirizzo)
	assert.Equal(t, "MILANO", cessionario.Sede.Comune)
	assert.Equal(t, "20100", cessionario.Sede.CAP)
	assert.Equal(t, "MI", cessionario.Sede.Provincia)
	assert.Equal(t, "IT", cessionario.Sede.Nazione)
}

func TestAssembleRecipientOverride(t *testing.T) {
	cfg := sampleConfig()
	cfg.Recipient.Denominazione = "ALTRA SPA"
	cfg.Recipient.IdCodice = "99999999999"

	doc, err := Build(sampleSource(), cfg, Options{})
	require.NoError(t, err)

	cessionario := doc.Header.CessionarioCommittente
	assert.Equal(t, "ALTRA SPA", cessionario.DatiAnagrafici.Anagrafica.Denominazione)
	assert.Equal(t, "99999999999", cessionario.DatiAnagrafici.IdFiscaleIVA.IdCodice)
}

func TestAssembleRecipientWithoutVATId(t *testing.T) {
	src := sampleSource()
	src.Recipient.PartitaIVA = ""

	doc, err := Build(src, sampleConfig(), Options{})
	require.NoError(t, err)

	cessionario := doc.Header.CessionarioCommittente
	assert.Nil(t, cessionario.DatiAnagrafici.IdFiscaleIVA)
}

func TestValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.InvoiceConfig)
		field  string
	}{
		{
			name:   "transmission format",
			mutate: func(c *models.InvoiceConfig) { c.Transmission.Formato = "FPR99" },
			field:  "FormatoTrasmissione",
		},
		{
			name:   "sender country",
			mutate: func(c *models.InvoiceConfig) { c.Sender.IdPaese = "XX" },
			field:  "IdPaese",
		},
		{
			name:   "fiscal regime",
			mutate: func(c *models.InvoiceConfig) { c.Sender.RegimeFiscale = "RF99" },
			field:  "RegimeFiscale",
		},
		{
			name:   "sender nazione",
			mutate: func(c *models.InvoiceConfig) { c.Sender.Sede.Nazione = "ZZ" },
			field:  "Nazione",
		},
		{
			name:   "recipient country",
			mutate: func(c *models.InvoiceConfig) { c.Recipient.IdPaese = "XX"; c.Recipient.IdCodice = "1" },
			field:  "IdPaeseDestinatario",
		},
		{
			name:   "recipient nazione",
			mutate: func(c *models.InvoiceConfig) { c.Recipient.Sede.Nazione = "QQ" },
			field:  "NazioneDestinatario",
		},
		{
			name:   "document type",
			mutate: func(c *models.InvoiceConfig) { c.Document.Tipo = "TD99" },
			field:  "TipoDocumento",
		},
		{
			name: "payment mode",
			mutate: func(c *models.InvoiceConfig) {
				c.Payment = &models.PaymentConfig{Condizioni: "TP02", Modalita: "MP99", Importo: "100.00"}
			},
			field: "ModalitaPagamento",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := sampleConfig()
			tt.mutate(&cfg)

			_, err := Build(sampleSource(), cfg, Options{})
			require.Error(t, err)

			var validationErr *fatturaerror.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.field, validationErr.Field)
			assert.NotEmpty(t, validationErr.Allowed)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestValidationErrorListsDocumentTypes(t *testing.T) {
	cfg := sampleConfig()
	cfg.Document.Tipo = "TD99"

	_, err := Build(sampleSource(), cfg, Options{})
	require.Error(t, err)

	var validationErr *fatturaerror.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Len(t, validationErr.Allowed, 18)
	assert.Contains(t, err.Error(), "TD01")
	assert.Contains(t, err.Error(), "TD27")
}

func TestREABlockPinnedBehavior(t *testing.T) {
	cfg := sampleConfig()
	cfg.Sender.REA = &models.REAConfig{Ufficio: "TO"}

	doc, err := Build(sampleSource(), cfg, Options{})
	require.NoError(t, err)

	rea := doc.Header.CedentePrestatore.IscrizioneREA
	require.NotNil(t, rea)
	assert.Equal(t, "TO", rea.Ufficio)
	// Office present, numero absent: the block is still emitted and the
	// empty members serialize as empty elements.
	assert.Equal(t, "", rea.NumeroREA)

	out, err := Serialize(doc)
	require.NoError(t, err)
	assert.Contains(t, out, "<IscrizioneREA>")
	assert.Contains(t, out, "<NumeroREA></NumeroREA>")
}

func TestREABlockOmittedWithoutOffice(t *testing.T) {
	cfg := sampleConfig()
	cfg.Sender.REA = &models.REAConfig{Numero: "123456"}

	doc, err := Build(sampleSource(), cfg, Options{})
	require.NoError(t, err)
	assert.Nil(t, doc.Header.CedentePrestatore.IscrizioneREA)
}

func TestTransmissionContactsBlock(t *testing.T) {
	cfg := sampleConfig()
	doc, err := Build(sampleSource(), cfg, Options{})
	require.NoError(t, err)
	assert.Nil(t, doc.Header.DatiTrasmissione.ContattiTrasmittente)

	cfg.Transmission.Email = "fatture@studiobianchi.it"
	doc, err = Build(sampleSource(), cfg, Options{})
	require.NoError(t, err)
	require.NotNil(t, doc.Header.DatiTrasmissione.ContattiTrasmittente)
	assert.Equal(t, "", doc.Header.DatiTrasmissione.ContattiTrasmittente.Telefono)
	assert.Equal(t, "fatture@studiobianchi.it", doc.Header.DatiTrasmissione.ContattiTrasmittente.Email)

	out, err := Serialize(doc)
	require.NoError(t, err)
	assert.Contains(t, out, "<Email>fatture@studiobianchi.it</Email>")
	assert.NotContains(t, out, "<Telefono>")
}

func TestSenderContactsRequirePhone(t *testing.T) {
	cfg := sampleConfig()
	cfg.Sender.Contatti = &models.ContactConfig{Email: "info@studiobianchi.it"}

	doc, err := Build(sampleSource(), cfg, Options{})
	require.NoError(t, err)
	assert.Nil(t, doc.Header.CedentePrestatore.Contatti)

	cfg.Sender.Contatti.Telefono = "0111234567"
	doc, err = Build(sampleSource(), cfg, Options{})
	require.NoError(t, err)
	require.NotNil(t, doc.Header.CedentePrestatore.Contatti)
	assert.Equal(t, "0111234567", doc.Header.CedentePrestatore.Contatti.Telefono)
	assert.Equal(t, "info@studiobianchi.it", doc.Header.CedentePrestatore.Contatti.Email)
}

func TestLineItems(t *testing.T) {
	cfg := sampleConfig()
	cfg.Lines = []models.LineConfig{
		{
			Descrizione:    "Consulenza",
			Quantita:       "10.00",
			UnitaMisura:    "ORE",
			PrezzoUnitario: "50.00",
			PrezzoTotale:   "500.00",
			AliquotaIVA:    "22.00",
		},
		{
			Descrizione:    "Spese di trasferta",
			Quantita:       "1.00",
			PrezzoUnitario: "120.00",
			Sconto:         "10.00",
		},
	}
	cfg.TaxSummary = &models.TaxSummaryConfig{AliquotaIVA: "22.00"} // taxable base absent

	doc, err := Build(sampleSource(), cfg, Options{})
	require.NoError(t, err)

	lines := doc.Body.DatiBeniServizi.DettaglioLinee
	require.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].NumeroLinea)
	assert.Equal(t, 2, lines[1].NumeroLinea)
	assert.Equal(t, "ORE", lines[0].UnitaMisura)
	assert.Nil(t, lines[0].ScontoMaggiorazione)

	// Derived total and default rate on the second line.
	assert.Equal(t, "120.00", lines[1].PrezzoTotale)
	assert.Equal(t, "0.00", lines[1].AliquotaIVA)
	require.NotNil(t, lines[1].ScontoMaggiorazione)
	assert.Equal(t, "SC", lines[1].ScontoMaggiorazione.Tipo)
	assert.Equal(t, "10.00", lines[1].ScontoMaggiorazione.Percentuale)

	// Tax summary missing the taxable base is omitted entirely.
	assert.Nil(t, doc.Body.DatiBeniServizi.DatiRiepilogo)
}

func TestIncompleteLinesSkipped(t *testing.T) {
	cfg := sampleConfig()
	cfg.Lines = []models.LineConfig{
		{Descrizione: "Senza prezzo", Quantita: "1.00"},
		{Descrizione: "Completa", Quantita: "2.00", PrezzoUnitario: "30.00"},
	}

	doc, err := Build(sampleSource(), cfg, Options{})
	require.NoError(t, err)

	lines := doc.Body.DatiBeniServizi.DettaglioLinee
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].NumeroLinea)
	assert.Equal(t, "Completa", lines[0].Descrizione)
	assert.Equal(t, "60.00", lines[0].PrezzoTotale)
}

func TestLineTotalDerivationError(t *testing.T) {
	cfg := sampleConfig()
	cfg.Lines = []models.LineConfig{
		{Descrizione: "Rotta", Quantita: "tre", PrezzoUnitario: "30.00"},
	}

	_, err := Build(sampleSource(), cfg, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PrezzoTotale")
}

func TestTaxSummary(t *testing.T) {
	cfg := sampleConfig()
	cfg.TaxSummary = &models.TaxSummaryConfig{
		AliquotaIVA:          "22.00",
		Imponibile:           "500.00",
		RiferimentoNormativo: strings.Repeat("R", 150),
	}

	doc, err := Build(sampleSource(), cfg, Options{})
	require.NoError(t, err)

	riepilogo := doc.Body.DatiBeniServizi.DatiRiepilogo
	require.NotNil(t, riepilogo)
	assert.Equal(t, "110.00", riepilogo.Imposta)
	assert.Len(t, riepilogo.RiferimentoNormativo, 100)
	assert.Empty(t, riepilogo.Natura)
}

func TestPaymentBlock(t *testing.T) {
	cfg := sampleConfig()
	cfg.Payment = &models.PaymentConfig{Condizioni: "TP02", Modalita: "MP05"} // importo absent

	doc, err := Build(sampleSource(), cfg, Options{})
	require.NoError(t, err)
	assert.Nil(t, doc.Body.DatiPagamento)

	cfg.Payment.Importo = "610.00"
	cfg.Payment.IBAN = "IT60X0542811101000000123456"
	doc, err = Build(sampleSource(), cfg, Options{})
	require.NoError(t, err)
	require.NotNil(t, doc.Body.DatiPagamento)
	assert.Equal(t, "TP02", doc.Body.DatiPagamento.CondizioniPagamento)
	assert.Equal(t, "MP05", doc.Body.DatiPagamento.DettaglioPagamento.ModalitaPagamento)
	assert.Equal(t, "IT60X0542811101000000123456", doc.Body.DatiPagamento.DettaglioPagamento.IBAN)
}

func TestSerializeShape(t *testing.T) {
	doc, err := Build(sampleSource(), sampleConfig(), Options{})
	require.NoError(t, err)

	out, err := Serialize(doc)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.False(t, strings.HasSuffix(out, "\n\n"))
	assert.Contains(t, out, `<p:FatturaElettronica versione="FPR12"`)
	assert.Contains(t, out, `xmlns:p="`+models.NamespaceFatturaPA+`"`)
	assert.Contains(t, out, `xmlns:ds="http://www.w3.org/2000/09/xmldsig#"`)
	assert.Contains(t, out, models.SchemaLocationOnline)
}

func TestSerializeIdempotent(t *testing.T) {
	doc, err := Build(sampleSource(), sampleConfig(), Options{})
	require.NoError(t, err)

	first, err := Serialize(doc)
	require.NoError(t, err)
	second, err := Serialize(doc)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLocalSchemaLocation(t *testing.T) {
	cfg := sampleConfig()
	cfg.UseLocalSchema = true

	doc, err := Build(sampleSource(), cfg, Options{})
	require.NoError(t, err)

	out, err := Serialize(doc)
	require.NoError(t, err)
	assert.Contains(t, out, "Schema_VFPR12.xsd")
	assert.NotContains(t, out, "www.fatturapa.gov.it")
}

func TestStrictModePresence(t *testing.T) {
	cfg := sampleConfig()
	cfg.Sender.Denominazione = ""

	// Relaxed default serializes the empty name.
	doc, err := Build(sampleSource(), cfg, Options{})
	require.NoError(t, err)
	assert.Equal(t, "", doc.Header.CedentePrestatore.DatiAnagrafici.Anagrafica.Denominazione)

	// Strict mode rejects it.
	_, err = Build(sampleSource(), cfg, Options{Strict: true})
	require.Error(t, err)

	var missingErr *fatturaerror.MissingFieldError
	require.True(t, errors.As(err, &missingErr))
	assert.Equal(t, "DenominazioneMittente", missingErr.Field)
}

func TestValidateConfig(t *testing.T) {
	cfg := sampleConfig()
	assert.NoError(t, ValidateConfig(cfg))

	cfg.Sender.RegimeFiscale = "RF99"
	err := ValidateConfig(cfg)
	require.Error(t, err)

	var validationErr *fatturaerror.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "RegimeFiscale", validationErr.Field)
}
