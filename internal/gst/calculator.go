// Package gst computes CGST/SGST/IGST/cess splits and reverse-charge
// payable splits with fixed-point arithmetic.
package gst

import (
	"fmt"

	"github.com/shopspring/decimal"

	"niyam/internal/domain"
	"niyam/internal/money"
)

var hundred = decimal.NewFromInt(100)

// Input is one tax calculation request. RCMPercent zero means 100 when
// reverse charge applies.
type Input struct {
	TaxableAmount decimal.Decimal `json:"taxable_amount"`
	Rate          decimal.Decimal `json:"rate"`
	CessRate      decimal.Decimal `json:"cess_rate,omitempty"`
	Interstate    bool            `json:"interstate"`
	RCMApplicable bool            `json:"rcm_applicable"`
	RCMPercent    decimal.Decimal `json:"rcm_percent,omitempty"`
}

// Calculate splits the tax on a taxable amount into its components and
// derives the vendor/government payable amounts.
//
// Interstate supplies levy IGST for the whole tax; intrastate supplies
// split it into equal CGST and SGST halves. When rounding the half
// leaves an odd paise, the component sum is authoritative and the
// total is re-derived from it, as on a printed invoice.
func Calculate(in Input) (domain.TaxCalculationResult, error) {
	if in.TaxableAmount.IsNegative() {
		return domain.TaxCalculationResult{}, &domain.ValidationError{Field: "taxable_amount", Message: "taxable amount cannot be negative"}
	}
	if in.Rate.IsNegative() || in.Rate.GreaterThan(hundred) {
		return domain.TaxCalculationResult{}, &domain.ComputationError{Op: "gst.calculate", Message: fmt.Sprintf("rate %s outside [0,100]", in.Rate)}
	}
	if in.CessRate.IsNegative() {
		return domain.TaxCalculationResult{}, &domain.ComputationError{Op: "gst.calculate", Message: fmt.Sprintf("cess rate %s is negative", in.CessRate)}
	}
	if in.RCMPercent.IsNegative() || in.RCMPercent.GreaterThan(hundred) {
		return domain.TaxCalculationResult{}, &domain.ComputationError{Op: "gst.calculate", Message: fmt.Sprintf("rcm percent %s outside [0,100]", in.RCMPercent)}
	}

	gstTax := money.Percent(in.TaxableAmount, in.Rate)
	cess := money.Percent(in.TaxableAmount, in.CessRate)

	res := domain.TaxCalculationResult{Cess: cess}
	if in.Interstate {
		res.IGST = gstTax
	} else {
		half := money.Half(gstTax)
		res.CGST = half
		res.SGST = half
		gstTax = half.Add(half)
	}
	res.TotalTax = gstTax.Add(cess)

	if !in.RCMApplicable {
		res.PayableToVendor = money.Round2(in.TaxableAmount).Add(res.TotalTax)
		res.PayableToGovt = decimal.Zero
		res.RCMAmount = decimal.Zero
		res.VendorGST = decimal.Zero
		return res, nil
	}

	pct := in.RCMPercent
	if pct.IsZero() {
		pct = hundred
	}
	res.RCMAmount = money.Percent(res.TotalTax, pct)
	res.VendorGST = res.TotalTax.Sub(res.RCMAmount)
	// Full reverse charge pays the vendor the bare taxable value; a
	// partial split adds the vendor's remaining tax share on top.
	res.PayableToVendor = money.Round2(in.TaxableAmount).Add(res.VendorGST)
	res.PayableToGovt = res.RCMAmount
	return res, nil
}

// IsInterstate reports whether the place of supply lies outside the
// supplier's state. Empty codes compare as intrastate.
func IsInterstate(supplierStateCode, placeOfSupply string) bool {
	return supplierStateCode != "" && placeOfSupply != "" && supplierStateCode != placeOfSupply
}
