package models

import "encoding/xml"

// Namespace and schema-location constants of the FatturaPA 1.2 exchange format.
const (
	NamespaceFatturaPA = "http://ivaservizi.agenziaentrate.gov.it/docs/xsd/fatture/v1.2"
	NamespaceXMLDSig   = "http://www.w3.org/2000/09/xmldsig#"
	NamespaceXSI       = "http://www.w3.org/2001/XMLSchema-instance"

	SchemaLocationLocal  = NamespaceFatturaPA + " Schema_VFPR12.xsd"
	SchemaLocationOnline = NamespaceFatturaPA + " http://www.fatturapa.gov.it/export/fatturazione/sdi/fatturapa/v1.2/Schema_del_file_xml_FatturaPA_versione_1.2.xsd"
)

// FatturaElettronica is the root of the output document. Field order follows
// the XSD sequence; encoding/xml emits elements in declaration order.
type FatturaElettronica struct {
	XMLName        xml.Name      `xml:"p:FatturaElettronica"`
	Versione       string        `xml:"versione,attr"`
	XmlnsP         string        `xml:"xmlns:p,attr"`
	XmlnsDS        string        `xml:"xmlns:ds,attr"`
	XmlnsXSI       string        `xml:"xmlns:xsi,attr"`
	SchemaLocation string        `xml:"xsi:schemaLocation,attr"`
	Header         FatturaHeader `xml:"FatturaElettronicaHeader"`
	Body           FatturaBody   `xml:"FatturaElettronicaBody"`
}

// FatturaHeader is the FatturaElettronicaHeader section.
type FatturaHeader struct {
	DatiTrasmissione       DatiTrasmissione       `xml:"DatiTrasmissione"`
	CedentePrestatore      CedentePrestatore      `xml:"CedentePrestatore"`
	CessionarioCommittente CessionarioCommittente `xml:"CessionarioCommittente"`
}

// DatiTrasmissione carries the transmission metadata.
type DatiTrasmissione struct {
	IdTrasmittente       IdFiscale `xml:"IdTrasmittente"`
	ProgressivoInvio     string    `xml:"ProgressivoInvio"`
	FormatoTrasmissione  string    `xml:"FormatoTrasmissione"`
	CodiceDestinatario   string    `xml:"CodiceDestinatario"`
	ContattiTrasmittente *Contatti `xml:"ContattiTrasmittente,omitempty"`
}

// IdFiscale is a country-qualified fiscal identifier.
type IdFiscale struct {
	IdPaese  string `xml:"IdPaese"`
	IdCodice string `xml:"IdCodice"`
}

// Contatti is a phone/email pair; each leaf is independently optional.
type Contatti struct {
	Telefono string `xml:"Telefono,omitempty"`
	Email    string `xml:"Email,omitempty"`
}

// CedentePrestatore is the seller block.
type CedentePrestatore struct {
	DatiAnagrafici CedenteAnagrafici `xml:"DatiAnagrafici"`
	Sede           Sede              `xml:"Sede"`
	IscrizioneREA  *IscrizioneREA    `xml:"IscrizioneREA,omitempty"`
	Contatti       *Contatti         `xml:"Contatti,omitempty"`
}

// CedenteAnagrafici is the seller registry block. CodiceFiscale is always
// emitted, empty or not, matching the reference output.
type CedenteAnagrafici struct {
	IdFiscaleIVA  IdFiscale  `xml:"IdFiscaleIVA"`
	CodiceFiscale string     `xml:"CodiceFiscale"`
	Anagrafica    Anagrafica `xml:"Anagrafica"`
	RegimeFiscale string     `xml:"RegimeFiscale"`
}

// Anagrafica wraps the legal name.
type Anagrafica struct {
	Denominazione string `xml:"Denominazione"`
}

// Sede is a full postal address.
type Sede struct {
	Indirizzo string `xml:"Indirizzo"`
	CAP       string `xml:"CAP"`
	Comune    string `xml:"Comune"`
	Provincia string `xml:"Provincia"`
	Nazione   string `xml:"Nazione"`
}

// IscrizioneREA is the company-registry block. All five members are emitted
// whenever the block is present.
type IscrizioneREA struct {
	Ufficio           string `xml:"Ufficio"`
	NumeroREA         string `xml:"NumeroREA"`
	CapitaleSociale   string `xml:"CapitaleSociale"`
	SocioUnico        string `xml:"SocioUnico"`
	StatoLiquidazione string `xml:"StatoLiquidazione"`
}

// CessionarioCommittente is the buyer block.
type CessionarioCommittente struct {
	DatiAnagrafici CessionarioAnagrafici `xml:"DatiAnagrafici"`
	Sede           Sede                  `xml:"Sede"`
}

// CessionarioAnagrafici is the buyer registry block. The VAT identifier and
// the tax code are each emitted only when present.
type CessionarioAnagrafici struct {
	IdFiscaleIVA  *IdFiscale `xml:"IdFiscaleIVA,omitempty"`
	CodiceFiscale string     `xml:"CodiceFiscale,omitempty"`
	Anagrafica    Anagrafica `xml:"Anagrafica"`
}

// FatturaBody is the FatturaElettronicaBody section.
type FatturaBody struct {
	DatiGenerali    DatiGenerali    `xml:"DatiGenerali"`
	DatiBeniServizi DatiBeniServizi `xml:"DatiBeniServizi"`
	DatiPagamento   *DatiPagamento  `xml:"DatiPagamento,omitempty"`
}

// DatiGenerali wraps the document header.
type DatiGenerali struct {
	DatiGeneraliDocumento DatiGeneraliDocumento `xml:"DatiGeneraliDocumento"`
}

// DatiGeneraliDocumento is the document header.
type DatiGeneraliDocumento struct {
	TipoDocumento          string `xml:"TipoDocumento"`
	Divisa                 string `xml:"Divisa"`
	Data                   string `xml:"Data"`
	Numero                 string `xml:"Numero"`
	ImportoTotaleDocumento string `xml:"ImportoTotaleDocumento"`
	Causale                string `xml:"Causale"`
}

// DatiBeniServizi carries the line items and the optional tax summary.
type DatiBeniServizi struct {
	DettaglioLinee []DettaglioLinea `xml:"DettaglioLinee"`
	DatiRiepilogo  *DatiRiepilogo   `xml:"DatiRiepilogo,omitempty"`
}

// DettaglioLinea is one invoice line. NumeroLinea is 1-based and positional.
type DettaglioLinea struct {
	NumeroLinea         int                  `xml:"NumeroLinea"`
	Descrizione         string               `xml:"Descrizione"`
	Quantita            string               `xml:"Quantita"`
	UnitaMisura         string               `xml:"UnitaMisura,omitempty"`
	PrezzoUnitario      string               `xml:"PrezzoUnitario"`
	ScontoMaggiorazione *ScontoMaggiorazione `xml:"ScontoMaggiorazione,omitempty"`
	PrezzoTotale        string               `xml:"PrezzoTotale"`
	AliquotaIVA         string               `xml:"AliquotaIVA"`
	Natura              string               `xml:"Natura,omitempty"`
}

// ScontoMaggiorazione is a percentage discount (Tipo "SC") or surcharge
// (Tipo "MG") applied to a line.
type ScontoMaggiorazione struct {
	Tipo        string `xml:"Tipo"`
	Percentuale string `xml:"Percentuale"`
}

// DatiRiepilogo is the VAT summary block.
type DatiRiepilogo struct {
	AliquotaIVA          string `xml:"AliquotaIVA"`
	Natura               string `xml:"Natura,omitempty"`
	ImponibileImporto    string `xml:"ImponibileImporto"`
	Imposta              string `xml:"Imposta"`
	RiferimentoNormativo string `xml:"RiferimentoNormativo,omitempty"`
}

// DatiPagamento is the payment block.
type DatiPagamento struct {
	CondizioniPagamento string             `xml:"CondizioniPagamento"`
	DettaglioPagamento  DettaglioPagamento `xml:"DettaglioPagamento"`
}

// DettaglioPagamento is one payment detail; IBAN is independently optional.
type DettaglioPagamento struct {
	ModalitaPagamento string `xml:"ModalitaPagamento"`
	ImportoPagamento  string `xml:"ImportoPagamento"`
	IBAN              string `xml:"IBAN,omitempty"`
}
