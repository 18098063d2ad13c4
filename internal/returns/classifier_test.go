package returns

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"niyam/internal/domain"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestClassify_B2B(t *testing.T) {
	res, err := Classify(Input{
		Type:             domain.TransactionDomesticB2B,
		RecipientGSTIN:   "29ABCDE1234F1Z5",
		RecipientCountry: "India",
		TaxableValue:     d("50000"),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.TableB2B, res.Table)
	assert.Equal(t, domain.SectionOutwardTaxable, res.Section)
	assert.Empty(t, res.ITCSection)
}

func TestClassify_B2CLargeThreshold(t *testing.T) {
	base := Input{
		Type:             domain.TransactionDomesticB2C,
		RecipientCountry: "IN",
		Interstate:       true,
	}

	t.Run("above_threshold", func(t *testing.T) {
		in := base
		in.TaxableValue = d("300000")
		res, err := Classify(in)
		require.NoError(t, err)
		assert.Equal(t, domain.TableB2CLarge, res.Table)
	})
	t.Run("below_threshold", func(t *testing.T) {
		in := base
		in.TaxableValue = d("100000")
		res, err := Classify(in)
		require.NoError(t, err)
		assert.Equal(t, domain.TableB2CSmall, res.Table)
	})
	t.Run("exactly_threshold", func(t *testing.T) {
		in := base
		in.TaxableValue = d("250000")
		res, err := Classify(in)
		require.NoError(t, err)
		assert.Equal(t, domain.TableB2CSmall, res.Table, "threshold itself stays small")
	})
	t.Run("intrastate_never_large", func(t *testing.T) {
		in := base
		in.Interstate = false
		in.TaxableValue = d("300000")
		res, err := Classify(in)
		require.NoError(t, err)
		assert.Equal(t, domain.TableB2CSmall, res.Table)
	})
}

func TestClassify_Exports(t *testing.T) {
	t.Run("with_lut", func(t *testing.T) {
		res, err := Classify(Input{
			Type:             domain.TransactionExport,
			HasLUT:           true,
			RecipientCountry: "USA",
			TaxableValue:     d("80000"),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.TableExportsLUT, res.Table)
		assert.Equal(t, domain.SectionZeroRated, res.Section)
	})
	t.Run("with_payment", func(t *testing.T) {
		res, err := Classify(Input{
			Type:             domain.TransactionExport,
			RecipientCountry: "USA",
			TaxableValue:     d("80000"),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.TableExportsPaid, res.Table)
		assert.Equal(t, domain.SectionZeroRated, res.Section)
	})
}

func TestClassify_SelfInvoiceRCM(t *testing.T) {
	res, err := Classify(Input{
		Type:         domain.TransactionSelfInvoice,
		IsRCM:        true,
		RCMType:      domain.RCMDomesticUnregistered,
		TaxableValue: d("20000"),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.TableNotApplicable, res.Table, "self-invoices stay out of the outward return")
	assert.Equal(t, domain.SectionInwardRCM, res.Section)
	assert.Equal(t, domain.ITCSectionRCM, res.ITCSection)
}

func TestClassify_ImportOfServicesRCM(t *testing.T) {
	res, err := Classify(Input{
		Type:             domain.TransactionSelfInvoice,
		IsRCM:            true,
		RCMType:          domain.RCMImportOfServices,
		RecipientCountry: "India",
		TaxableValue:     d("20000"),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.TableNotApplicable, res.Table)
	assert.Equal(t, domain.SectionOutwardTaxable, res.Section, "import-of-services reports outward taxable")
	assert.Equal(t, domain.ITCSectionRCM, res.ITCSection)
}

func TestClassify_CountryNormalization(t *testing.T) {
	for _, spelling := range []string{"India", "INDIA", "in", "IND", "bharat", " india "} {
		res, err := Classify(Input{
			Type:             domain.TransactionDomesticB2B,
			RecipientGSTIN:   "29ABCDE1234F1Z5",
			RecipientCountry: spelling,
			TaxableValue:     d("1000"),
		})
		require.NoError(t, err, "spelling %q", spelling)
		assert.Equal(t, domain.TableB2B, res.Table, "spelling %q", spelling)
	}
}

func TestClassify_ForeignRecipientOnDomesticType(t *testing.T) {
	_, err := Classify(Input{
		Type:             domain.TransactionDomesticB2B,
		RecipientGSTIN:   "29ABCDE1234F1Z5",
		RecipientCountry: "USA",
		TaxableValue:     d("1000"),
	})
	assert.ErrorIs(t, err, domain.ErrComputation)
}

func TestClassify_UnknownType(t *testing.T) {
	_, err := Classify(Input{Type: "mystery"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestClassify_Pure(t *testing.T) {
	in := Input{
		Type:             domain.TransactionDomesticB2C,
		RecipientCountry: "India",
		Interstate:       true,
		TaxableValue:     d("300000"),
	}
	first, err := Classify(in)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Classify(in)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
