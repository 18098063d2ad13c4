// Package recon scores self-reported purchase records against
// counterparty-reported records and partitions batches of them.
package recon

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"niyam/internal/domain"
)

// Score deductions per mismatched field.
const (
	deductGSTIN     = 30
	deductDocNumber = 20
	deductDate      = 10
	deductTaxable   = 15
	deductCGST      = 10
	deductSGST      = 10
	deductIGST      = 5
)

// AmountTolerance is the currency tolerance under which two amounts
// compare equal.
var AmountTolerance = decimal.NewFromFloat(0.01)

// Match scores one purchase record against one counterparty record.
// A perfect match keeps the full score of 100; each mismatched field
// deducts its weight, flooring at zero.
func Match(purchase, counterparty domain.ReconRecord) domain.ReconciliationMatch {
	score := 100
	var discrepancies []domain.Discrepancy
	amountMismatch := false

	if normalize(purchase.SupplierGSTIN) != normalize(counterparty.SupplierGSTIN) {
		score -= deductGSTIN
		discrepancies = append(discrepancies, domain.Discrepancy{
			Field: "supplier_gstin", Reason: "registration id mismatch",
		})
	}
	if normalize(purchase.DocumentNumber) != normalize(counterparty.DocumentNumber) {
		score -= deductDocNumber
		discrepancies = append(discrepancies, domain.Discrepancy{
			Field: "document_number", Reason: "document number mismatch",
		})
	}
	if !sameDay(purchase.DocumentDate, counterparty.DocumentDate) {
		score -= deductDate
		discrepancies = append(discrepancies, domain.Discrepancy{
			Field: "document_date", Reason: "document date mismatch",
		})
	}

	amounts := []struct {
		field    string
		deduct   int
		purchase decimal.Decimal
		counter  decimal.Decimal
	}{
		{"taxable_amount", deductTaxable, purchase.TaxableAmount, counterparty.TaxableAmount},
		{"cgst", deductCGST, purchase.CGST, counterparty.CGST},
		{"sgst", deductSGST, purchase.SGST, counterparty.SGST},
		{"igst", deductIGST, purchase.IGST, counterparty.IGST},
	}
	for _, a := range amounts {
		if a.purchase.Sub(a.counter).Abs().GreaterThan(AmountTolerance) {
			score -= a.deduct
			amountMismatch = true
			discrepancies = append(discrepancies, domain.Discrepancy{
				Field: a.field, Reason: "amount differs beyond tolerance",
			})
		}
	}

	if score < 0 {
		score = 0
	}
	match := domain.ReconciliationMatch{
		Score:         score,
		IsMatched:     len(discrepancies) == 0,
		Discrepancies: discrepancies,
	}
	if amountMismatch {
		match.Differences = &domain.ComponentDiffs{
			TaxableAmount: purchase.TaxableAmount.Sub(counterparty.TaxableAmount),
			CGST:          purchase.CGST.Sub(counterparty.CGST),
			SGST:          purchase.SGST.Sub(counterparty.SGST),
			IGST:          purchase.IGST.Sub(counterparty.IGST),
		}
	}
	return match
}

// Key is the composite lookup key pairing a purchase record with its
// counterparty record: normalized supplier GSTIN plus document number.
func Key(r domain.ReconRecord) string {
	return normalize(r.SupplierGSTIN) + "|" + normalize(r.DocumentNumber)
}

func normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
