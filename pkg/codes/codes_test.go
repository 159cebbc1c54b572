package codes

import (
	"errors"
	"testing"

	"fjacquet/fattura-xml/internal/fatturaerror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogueSizes(t *testing.T) {
	assert.Len(t, Countries.Entries(), 33)
	assert.Len(t, FiscalRegimes.Entries(), 18)
	assert.Len(t, TransmissionFormats.Entries(), 2)
	assert.Len(t, DocumentTypes.Entries(), 18)
	assert.Len(t, PaymentModes.Entries(), 23)
}

func TestContains(t *testing.T) {
	assert.True(t, Countries.Contains("IT"))
	assert.True(t, Countries.Contains("CH"))
	assert.False(t, Countries.Contains("XX"))

	assert.True(t, FiscalRegimes.Contains("RF01"))
	assert.True(t, FiscalRegimes.Contains("RF19"))
	assert.False(t, FiscalRegimes.Contains("RF03"), "RF03 was repealed")

	assert.True(t, TransmissionFormats.Contains("FPR12"))
	assert.True(t, TransmissionFormats.Contains("FPA12"))
	assert.False(t, TransmissionFormats.Contains("FPR10"))

	assert.True(t, DocumentTypes.Contains("TD01"))
	assert.True(t, DocumentTypes.Contains("TD16"))
	assert.True(t, DocumentTypes.Contains("TD27"))
	assert.False(t, DocumentTypes.Contains("TD07"))

	assert.True(t, PaymentModes.Contains("MP01"))
	assert.True(t, PaymentModes.Contains("MP23"))
	assert.False(t, PaymentModes.Contains("MP24"))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, FiscalRegimes.Validate("RegimeFiscale", "RF01"))

	err := FiscalRegimes.Validate("RegimeFiscale", "RF99")
	require.Error(t, err)

	var validationErr *fatturaerror.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "RegimeFiscale", validationErr.Field)
	assert.Equal(t, "RF99", validationErr.Value)
	assert.Equal(t, FiscalRegimes.Codes(), validationErr.Allowed)
	assert.Contains(t, err.Error(), "RegimeFiscale")
	assert.Contains(t, err.Error(), "RF99")
	assert.Contains(t, err.Error(), "RF01")
}

func TestValidateDefaultsFieldToSetName(t *testing.T) {
	err := Countries.Validate("", "XX")
	require.Error(t, err)

	var validationErr *fatturaerror.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "Nazione", validationErr.Field)
}

func TestCodesOrder(t *testing.T) {
	codes := TransmissionFormats.Codes()
	assert.Equal(t, []string{"FPR12", "FPA12"}, codes)
}

func TestEntriesAreCopies(t *testing.T) {
	entries := DocumentTypes.Entries()
	entries[0].Code = "mutated"
	assert.Equal(t, "TD01", DocumentTypes.Entries()[0].Code)
}

func TestAll(t *testing.T) {
	all := All()
	require.Len(t, all, 5)
	for name, set := range all {
		assert.Equal(t, name, set.Name())
		assert.NotEmpty(t, set.Codes())
	}
	assert.Contains(t, all, "Nazione")
	assert.Contains(t, all, "TipoDocumento")
}
