package engine

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"niyam/internal/domain"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func b2bTx() domain.Transaction {
	return domain.Transaction{
		DocumentNumber: "INV-001",
		DocumentDate:   time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Type:           domain.TransactionDomesticB2B,
		Vendor: domain.Party{
			Name:      "Acme Services",
			GSTIN:     "29ABCDE1234F1Z5",
			StateCode: "29",
		},
		Recipient: domain.Party{
			GSTIN:     "29FGHIJ5678K1Z7",
			StateCode: "29",
		},
		TaxableAmount: d("10000"),
		TaxRate:       d("18"),
		PlaceOfSupply: "29",
		InvoiceValid:  true,
		GoodsReceived: true,
	}
}

func TestAssess_IntrastateB2B(t *testing.T) {
	a, err := New().Assess(b2bTx())
	require.NoError(t, err)

	assert.Equal(t, "INV-001", a.DocumentNumber)
	assert.False(t, a.RCM.Applicable)
	assert.True(t, a.Tax.CGST.Equal(d("900")))
	assert.True(t, a.Tax.SGST.Equal(d("900")))
	assert.True(t, a.Tax.IGST.IsZero())
	assert.Equal(t, domain.TableB2B, a.Classification.Table)
	assert.Equal(t, domain.SectionOutwardTaxable, a.Classification.Section)
	assert.Nil(t, a.ITC, "no line items, no credit evaluation")
	assert.Empty(t, a.Findings)
}

func TestAssess_InterstateByPlaceOfSupply(t *testing.T) {
	tx := b2bTx()
	tx.Recipient = domain.Party{GSTIN: "07FGHIJ5678K1Z3", StateCode: "07"}
	tx.PlaceOfSupply = "07"

	a, err := New().Assess(tx)
	require.NoError(t, err)

	assert.True(t, a.Tax.IGST.Equal(d("1800")))
	assert.True(t, a.Tax.CGST.IsZero())
	assert.True(t, a.Tax.SGST.IsZero())
}

func TestAssess_StateFromGSTINWhenCodeMissing(t *testing.T) {
	tx := b2bTx()
	tx.Vendor.StateCode = ""
	tx.PlaceOfSupply = "29"

	a, err := New().Assess(tx)
	require.NoError(t, err)
	assert.True(t, a.Tax.CGST.Equal(d("900")), "GSTIN prefix stands in for the state code")
}

func TestAssess_ExportUnderLUT(t *testing.T) {
	tx := b2bTx()
	tx.Type = domain.TransactionExport
	tx.Recipient = domain.Party{Country: "USA"}
	tx.LUTNumber = "LUT-2025-001"

	a, err := New().Assess(tx)
	require.NoError(t, err)

	assert.True(t, a.Tax.TotalTax.IsZero(), "LUT exports are zero-rated")
	assert.Equal(t, domain.TableExportsLUT, a.Classification.Table)
	assert.Equal(t, domain.SectionZeroRated, a.Classification.Section)
}

func TestAssess_ExportWithPayment(t *testing.T) {
	tx := b2bTx()
	tx.Type = domain.TransactionExport
	tx.Recipient = domain.Party{Country: "USA"}

	a, err := New().Assess(tx)
	require.NoError(t, err)

	assert.True(t, a.Tax.IGST.Equal(d("1800")), "exports always levy IGST")
	assert.Equal(t, domain.TableExportsPaid, a.Classification.Table)
}

func TestAssess_SelfInvoiceNotifiedService(t *testing.T) {
	tx := b2bTx()
	tx.Type = domain.TransactionSelfInvoice
	tx.Vendor = domain.Party{Name: "Advocate Rao"}
	tx.Recipient = domain.Party{GSTIN: "29FGHIJ5678K1Z7", StateCode: "29"}
	tx.ServiceType = domain.ServiceLegal

	a, err := New().Assess(tx)
	require.NoError(t, err)

	assert.True(t, a.RCM.Applicable)
	assert.Equal(t, domain.RCMDomesticUnregistered, a.RCM.Type)
	// Full reverse charge: the vendor collects nothing.
	assert.True(t, a.Tax.PayableToVendor.Equal(d("10000")))
	assert.True(t, a.Tax.PayableToGovt.Equal(d("1800")))
	assert.Equal(t, domain.TableNotApplicable, a.Classification.Table)
	assert.Equal(t, domain.SectionInwardRCM, a.Classification.Section)
	assert.Equal(t, domain.ITCSectionRCM, a.Classification.ITCSection)
}

func TestAssess_ImportOfServicesTakesNotifiedRate(t *testing.T) {
	tx := b2bTx()
	tx.Type = domain.TransactionSelfInvoice
	tx.Vendor = domain.Party{Name: "Overseas Consulting", Country: "USA"}
	tx.Recipient = domain.Party{GSTIN: "29FGHIJ5678K1Z7", StateCode: "29"}
	tx.TaxRate = decimal.Zero

	a, err := New().Assess(tx)
	require.NoError(t, err)

	assert.Equal(t, domain.RCMImportOfServices, a.RCM.Type)
	// Rate falls back to the notified 18% and imports always levy IGST.
	assert.True(t, a.Tax.IGST.Equal(d("1800")))
	assert.True(t, a.Tax.CGST.IsZero())
	assert.Equal(t, domain.SectionOutwardTaxable, a.Classification.Section)
}

func TestAssess_LateSelfInvoiceFinding(t *testing.T) {
	tx := b2bTx()
	tx.Type = domain.TransactionSelfInvoice
	tx.Vendor = domain.Party{Name: "Advocate Rao"}
	tx.Recipient = domain.Party{GSTIN: "29FGHIJ5678K1Z7", StateCode: "29"}
	tx.ServiceType = domain.ServiceLegal
	supply := tx.DocumentDate.AddDate(0, 0, -45)
	tx.SupplyDate = &supply

	a, err := New().Assess(tx)
	require.NoError(t, err)

	require.Len(t, a.Findings, 1)
	assert.Equal(t, domain.FindingLateSelfInvoice, a.Findings[0].Code)
	assert.Equal(t, domain.FindingWarning, a.Findings[0].Severity)
}

func TestAssess_SelfInvoiceWithinDeadlineNoFinding(t *testing.T) {
	tx := b2bTx()
	tx.Type = domain.TransactionSelfInvoice
	tx.Vendor = domain.Party{Name: "Advocate Rao"}
	tx.Recipient = domain.Party{GSTIN: "29FGHIJ5678K1Z7", StateCode: "29"}
	tx.ServiceType = domain.ServiceLegal
	supply := tx.DocumentDate.AddDate(0, 0, -30)
	tx.SupplyDate = &supply

	a, err := New().Assess(tx)
	require.NoError(t, err)
	assert.Empty(t, a.Findings, "thirty days is within the window")
}

func TestAssess_LineItemsTriggerCreditEvaluation(t *testing.T) {
	tx := b2bTx()
	tx.LineItems = []domain.LineItem{
		{Category: domain.CreditInputServices, TaxableAmount: d("10000"), TaxAmount: d("1800")},
	}

	a, err := New().Assess(tx)
	require.NoError(t, err)

	require.NotNil(t, a.ITC)
	assert.True(t, a.ITC.Eligible.Equal(d("1800")))
	assert.True(t, a.ITC.Blocked.IsZero())
}

func TestAssess_ValidationFailure(t *testing.T) {
	tx := b2bTx()
	tx.DocumentNumber = ""

	_, err := New().Assess(tx)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAssessBatch(t *testing.T) {
	good := b2bTx()
	bad := b2bTx()
	bad.Vendor.GSTIN = "not-a-gstin"

	out, err := New().AssessBatch([]domain.Transaction{good, good})
	require.NoError(t, err)
	assert.Len(t, out, 2)

	_, err = New().AssessBatch([]domain.Transaction{good, bad})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "transaction 1")
}
