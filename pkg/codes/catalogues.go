package codes

// Countries is the subset of NazioneType country codes accepted by the
// assembler. The schema pattern is [A-Z]{2}; this catalogue mirrors the
// upstream list and is not exhaustive.
var Countries = newSet("Nazione", []Entry{
	{"IT", "Italia"},
	{"FR", "Francia"},
	{"DE", "Germania"},
	{"ES", "Spagna"},
	{"PT", "Portogallo"},
	{"GB", "Regno Unito"},
	{"US", "Stati Uniti"},
	{"NL", "Paesi Bassi"},
	{"BE", "Belgio"},
	{"CH", "Svizzera"},
	{"AT", "Austria"},
	{"DK", "Danimarca"},
	{"FI", "Finlandia"},
	{"GR", "Grecia"},
	{"IE", "Irlanda"},
	{"LU", "Lussemburgo"},
	{"NO", "Norvegia"},
	{"SE", "Svezia"},
	{"PL", "Polonia"},
	{"RO", "Romania"},
	{"RU", "Russia"},
	{"BR", "Brasile"},
	{"CA", "Canada"},
	{"CN", "Cina"},
	{"JP", "Giappone"},
	{"IN", "India"},
	{"AU", "Australia"},
	{"NZ", "Nuova Zelanda"},
	{"MX", "Messico"},
	{"ZA", "Sudafrica"},
	{"AR", "Argentina"},
	{"IL", "Israele"},
	{"TR", "Turchia"},
})

// FiscalRegimes is the RegimeFiscaleType catalogue.
var FiscalRegimes = newSet("RegimeFiscale", []Entry{
	{"RF01", "Regime ordinario"},
	{"RF02", "Regime dei contribuenti minimi"},
	{"RF04", "Agricoltura e attività connesse e pesca"},
	{"RF05", "Vendita sali e tabacchi"},
	{"RF06", "Commercio dei fiammiferi"},
	{"RF07", "Editoria"},
	{"RF08", "Gestione di servizi di telefonia pubblica"},
	{"RF09", "Rivendita di documenti di trasporto pubblico e di sosta"},
	{"RF10", "Intrattenimenti, giochi e altre attività"},
	{"RF11", "Agenzie di viaggi e turismo"},
	{"RF12", "Agriturismo"},
	{"RF13", "Vendite a domicilio"},
	{"RF14", "Rivendita di beni usati, di oggetti d'arte"},
	{"RF15", "Agenzie di vendite all'asta di oggetti d'arte"},
	{"RF16", "IVA per cassa P.A."},
	{"RF17", "IVA per cassa"},
	{"RF18", "Altro"},
	{"RF19", "Regime forfettario"},
})

// TransmissionFormats is the FormatoTrasmissioneType catalogue.
var TransmissionFormats = newSet("FormatoTrasmissione", []Entry{
	{"FPR12", "Fattura verso privati"},
	{"FPA12", "Fattura verso Pubblica Amministrazione"},
})

// DocumentTypes is the TipoDocumentoType catalogue.
var DocumentTypes = newSet("TipoDocumento", []Entry{
	{"TD01", "Fattura"},
	{"TD02", "Acconto / anticipo su fattura"},
	{"TD03", "Acconto / anticipo su parcella"},
	{"TD04", "Nota di credito"},
	{"TD05", "Nota di debito"},
	{"TD06", "Parcella"},
	{"TD16", "Integrazione fattura reverse charge interno"},
	{"TD17", "Integrazione/autofattura per acquisto servizi dall'estero"},
	{"TD18", "Integrazione per acquisto di beni intracomunitari"},
	{"TD19", "Integrazione/autofattura per acquisto di beni ex art.17 c.2 DPR 633/72"},
	{"TD20", "Autofattura per regolarizzazione e integrazione delle fatture"},
	{"TD21", "Autofattura per splafonamento"},
	{"TD22", "Estrazione beni da Deposito IVA"},
	{"TD23", "Estrazione beni da Deposito IVA con versamento dell'IVA"},
	{"TD24", "Fattura differita di cui all'art.21, comma 4, lett. a)"},
	{"TD25", "Fattura differita di cui all'art.21, comma 4, terzo periodo lett. b)"},
	{"TD26", "Cessione di beni ammortizzabili e per passaggi interni"},
	{"TD27", "Fattura per autoconsumo o per cessioni gratuite senza rivalsa"},
})

// PaymentModes is the ModalitaPagamentoType catalogue.
var PaymentModes = newSet("ModalitaPagamento", []Entry{
	{"MP01", "Contanti"},
	{"MP02", "Assegno"},
	{"MP03", "Assegno circolare"},
	{"MP04", "Contanti presso Tesoreria"},
	{"MP05", "Bonifico"},
	{"MP06", "Vaglia cambiario"},
	{"MP07", "Bollettino bancario"},
	{"MP08", "Carta di pagamento"},
	{"MP09", "RID"},
	{"MP10", "RID utenze"},
	{"MP11", "RID veloce"},
	{"MP12", "RIBA"},
	{"MP13", "MAV"},
	{"MP14", "Quietanza erario"},
	{"MP15", "Giroconto su conti di contabilità speciale"},
	{"MP16", "Domiciliazione bancaria"},
	{"MP17", "Domiciliazione postale"},
	{"MP18", "Bollettino di c/c postale"},
	{"MP19", "SEPA Direct Debit"},
	{"MP20", "SEPA Direct Debit CORE"},
	{"MP21", "SEPA Direct Debit B2B"},
	{"MP22", "Trattenuta su somme già riscosse"},
	{"MP23", "PagoPA"},
})
