package models

// InvoiceConfig is the configuration record merged with a SourceRecord during
// assembly. The field set is fixed and known; optional blocks are pointers so
// that "block absent" and "block present with empty fields" stay
// distinguishable.
type InvoiceConfig struct {
	Transmission TransmissionConfig `yaml:"trasmissione" mapstructure:"trasmissione"`
	Sender       SenderConfig       `yaml:"cedente" mapstructure:"cedente"`
	Recipient    RecipientConfig    `yaml:"cessionario" mapstructure:"cessionario"`
	Document     DocumentConfig     `yaml:"documento" mapstructure:"documento"`
	Lines        []LineConfig       `yaml:"linee" mapstructure:"linee"`
	TaxSummary   *TaxSummaryConfig  `yaml:"riepilogo" mapstructure:"riepilogo"`
	Payment      *PaymentConfig     `yaml:"pagamento" mapstructure:"pagamento"`

	// UseLocalSchema switches xsi:schemaLocation between the local XSD file
	// and the canonical online URL.
	UseLocalSchema bool `yaml:"use_local_schema" mapstructure:"use_local_schema"`
}

// TransmissionConfig holds the DatiTrasmissione fields.
type TransmissionConfig struct {
	ProgressivoInvio   string `yaml:"progressivo_invio" mapstructure:"progressivo_invio"`
	Formato            string `yaml:"formato" mapstructure:"formato"`
	CodiceDestinatario string `yaml:"codice_destinatario" mapstructure:"codice_destinatario"`
	Telefono           string `yaml:"telefono" mapstructure:"telefono"`
	Email              string `yaml:"email" mapstructure:"email"`
}

// SenderConfig identifies the seller (CedentePrestatore).
type SenderConfig struct {
	IdPaese       string         `yaml:"id_paese" mapstructure:"id_paese"`
	IdCodice      string         `yaml:"id_codice" mapstructure:"id_codice"`
	CodiceFiscale string         `yaml:"codice_fiscale" mapstructure:"codice_fiscale"`
	Denominazione string         `yaml:"denominazione" mapstructure:"denominazione"`
	RegimeFiscale string         `yaml:"regime_fiscale" mapstructure:"regime_fiscale"`
	Sede          AddressConfig  `yaml:"sede" mapstructure:"sede"`
	REA           *REAConfig     `yaml:"rea" mapstructure:"rea"`
	Contatti      *ContactConfig `yaml:"contatti" mapstructure:"contatti"`
}

// RecipientConfig identifies the buyer (CessionarioCommittente). Empty fields
// fall back to the SourceRecord's parsed recipient during assembly.
type RecipientConfig struct {
	IdPaese       string        `yaml:"id_paese" mapstructure:"id_paese"`
	IdCodice      string        `yaml:"id_codice" mapstructure:"id_codice"`
	CodiceFiscale string        `yaml:"codice_fiscale" mapstructure:"codice_fiscale"`
	Denominazione string        `yaml:"denominazione" mapstructure:"denominazione"`
	Sede          AddressConfig `yaml:"sede" mapstructure:"sede"`
}

// AddressConfig is a full postal address (Sede).
type AddressConfig struct {
	Indirizzo string `yaml:"indirizzo" mapstructure:"indirizzo"`
	CAP       string `yaml:"cap" mapstructure:"cap"`
	Comune    string `yaml:"comune" mapstructure:"comune"`
	Provincia string `yaml:"provincia" mapstructure:"provincia"`
	Nazione   string `yaml:"nazione" mapstructure:"nazione"`
}

// REAConfig is the company-registry block. The block is emitted when Ufficio
// is set; the remaining fields are then emitted even when empty.
type REAConfig struct {
	Ufficio           string `yaml:"ufficio" mapstructure:"ufficio"`
	Numero            string `yaml:"numero" mapstructure:"numero"`
	CapitaleSociale   string `yaml:"capitale_sociale" mapstructure:"capitale_sociale"`
	SocioUnico        string `yaml:"socio_unico" mapstructure:"socio_unico"`
	StatoLiquidazione string `yaml:"stato_liquidazione" mapstructure:"stato_liquidazione"`
}

// ContactConfig is a phone/email pair.
type ContactConfig struct {
	Telefono string `yaml:"telefono" mapstructure:"telefono"`
	Email    string `yaml:"email" mapstructure:"email"`
}

// DocumentConfig holds the DatiGeneraliDocumento overrides. Empty fields
// default to the SourceRecord during assembly.
type DocumentConfig struct {
	Tipo          string `yaml:"tipo" mapstructure:"tipo"`
	Divisa        string `yaml:"divisa" mapstructure:"divisa"`
	Data          string `yaml:"data" mapstructure:"data"`
	Numero        string `yaml:"numero" mapstructure:"numero"`
	ImportoTotale string `yaml:"importo_totale" mapstructure:"importo_totale"`
	Causale       string `yaml:"causale" mapstructure:"causale"`
}

// LineConfig is one invoice line. A line is emitted only when Descrizione,
// Quantita and PrezzoUnitario are all set; PrezzoTotale is derived from
// quantity and unit price when empty.
type LineConfig struct {
	Descrizione    string `yaml:"descrizione" mapstructure:"descrizione"`
	Quantita       string `yaml:"quantita" mapstructure:"quantita"`
	UnitaMisura    string `yaml:"unita_misura" mapstructure:"unita_misura"`
	PrezzoUnitario string `yaml:"prezzo_unitario" mapstructure:"prezzo_unitario"`
	Sconto         string `yaml:"sconto" mapstructure:"sconto"`
	PrezzoTotale   string `yaml:"prezzo_totale" mapstructure:"prezzo_totale"`
	AliquotaIVA    string `yaml:"aliquota_iva" mapstructure:"aliquota_iva"`
	Natura         string `yaml:"natura" mapstructure:"natura"`
}

// Complete reports whether the three mandatory line fields are all present.
func (l LineConfig) Complete() bool {
	return l.Descrizione != "" && l.Quantita != "" && l.PrezzoUnitario != ""
}

// TaxSummaryConfig is the DatiRiepilogo block. Emitted only when AliquotaIVA
// and Imponibile are both set; Imposta is derived when empty.
type TaxSummaryConfig struct {
	AliquotaIVA          string `yaml:"aliquota_iva" mapstructure:"aliquota_iva"`
	Natura               string `yaml:"natura" mapstructure:"natura"`
	Imponibile           string `yaml:"imponibile" mapstructure:"imponibile"`
	Imposta              string `yaml:"imposta" mapstructure:"imposta"`
	RiferimentoNormativo string `yaml:"riferimento_normativo" mapstructure:"riferimento_normativo"`
}

// Complete reports whether the summary block qualifies for emission.
func (t *TaxSummaryConfig) Complete() bool {
	return t != nil && t.AliquotaIVA != "" && t.Imponibile != ""
}

// PaymentConfig is the DatiPagamento block. Emitted only when Condizioni,
// Modalita and Importo are all set.
type PaymentConfig struct {
	Condizioni string `yaml:"condizioni" mapstructure:"condizioni"`
	Modalita   string `yaml:"modalita" mapstructure:"modalita"`
	Importo    string `yaml:"importo" mapstructure:"importo"`
	IBAN       string `yaml:"iban" mapstructure:"iban"`
}

// Complete reports whether the payment block qualifies for emission.
func (p *PaymentConfig) Complete() bool {
	return p != nil && p.Condizioni != "" && p.Modalita != "" && p.Importo != ""
}
