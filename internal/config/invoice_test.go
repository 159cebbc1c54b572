package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInvoiceYAML = `trasmissione:
  progressivo_invio: "00001"
  formato: FPR12
  codice_destinatario: "0000000"
cedente:
  id_paese: IT
  id_codice: "01234567890"
  codice_fiscale: "01234567890"
  denominazione: STUDIO BIANCHI SRL
  regime_fiscale: RF01
  sede:
    indirizzo: VIA GARIBALDI 10
    cap: "10121"
    comune: TORINO
    provincia: TO
    nazione: IT
  rea:
    ufficio: TO
    numero: "123456"
documento:
  tipo: TD01
linee:
  - descrizione: Consulenza
    quantita: "10.00"
    prezzo_unitario: "50.00"
riepilogo:
  aliquota_iva: "22.00"
  imponibile: "500.00"
use_local_schema: true
`

func TestParseInvoiceConfig(t *testing.T) {
	cfg, err := ParseInvoiceConfig([]byte(sampleInvoiceYAML))
	require.NoError(t, err)

	assert.Equal(t, "00001", cfg.Transmission.ProgressivoInvio)
	assert.Equal(t, "FPR12", cfg.Transmission.Formato)
	assert.Equal(t, "STUDIO BIANCHI SRL", cfg.Sender.Denominazione)
	assert.Equal(t, "RF01", cfg.Sender.RegimeFiscale)
	assert.Equal(t, "TORINO", cfg.Sender.Sede.Comune)
	require.NotNil(t, cfg.Sender.REA)
	assert.Equal(t, "TO", cfg.Sender.REA.Ufficio)
	require.Len(t, cfg.Lines, 1)
	assert.Equal(t, "Consulenza", cfg.Lines[0].Descrizione)
	require.NotNil(t, cfg.TaxSummary)
	assert.Equal(t, "500.00", cfg.TaxSummary.Imponibile)
	assert.True(t, cfg.UseLocalSchema)
}

func TestParseInvoiceConfigOmittedBlocksStayNil(t *testing.T) {
	cfg, err := ParseInvoiceConfig([]byte("documento:\n  tipo: TD01\n"))
	require.NoError(t, err)

	assert.Nil(t, cfg.Sender.REA)
	assert.Nil(t, cfg.Sender.Contatti)
	assert.Nil(t, cfg.TaxSummary)
	assert.Nil(t, cfg.Payment)
	assert.Empty(t, cfg.Lines)
	assert.False(t, cfg.UseLocalSchema)
}

func TestParseInvoiceConfigRejectsUnknownKeys(t *testing.T) {
	_, err := ParseInvoiceConfig([]byte("documento:\n  tipologia: TD01\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing invoice config")
}

func TestLoadInvoiceConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "invoice.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleInvoiceYAML), 0644))

	cfg, err := LoadInvoiceConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "FPR12", cfg.Transmission.Formato)
}

func TestLoadInvoiceConfigMissingFile(t *testing.T) {
	_, err := LoadInvoiceConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading invoice config")
}
