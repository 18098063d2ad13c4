package itc

import (
	"fmt"

	"github.com/shopspring/decimal"

	"niyam/internal/domain"
)

// HeadBalances holds per-levy-head credit amounts.
type HeadBalances struct {
	IGST decimal.Decimal `json:"igst"`
	CGST decimal.Decimal `json:"cgst"`
	SGST decimal.Decimal `json:"sgst"`
	Cess decimal.Decimal `json:"cess"`
}

// Add returns the per-head sum of b and o.
func (b HeadBalances) Add(o HeadBalances) HeadBalances {
	return HeadBalances{
		IGST: b.IGST.Add(o.IGST),
		CGST: b.CGST.Add(o.CGST),
		SGST: b.SGST.Add(o.SGST),
		Cess: b.Cess.Add(o.Cess),
	}
}

// Sub returns the per-head difference b minus o.
func (b HeadBalances) Sub(o HeadBalances) HeadBalances {
	return HeadBalances{
		IGST: b.IGST.Sub(o.IGST),
		CGST: b.CGST.Sub(o.CGST),
		SGST: b.SGST.Sub(o.SGST),
		Cess: b.Cess.Sub(o.Cess),
	}
}

// Total sums the four heads.
func (b HeadBalances) Total() decimal.Decimal {
	return b.IGST.Add(b.CGST).Add(b.SGST).Add(b.Cess)
}

func (b HeadBalances) anyNegative() bool {
	return b.IGST.IsNegative() || b.CGST.IsNegative() || b.SGST.IsNegative() || b.Cess.IsNegative()
}

// PeriodCredit is one tax period's credit movement as supplied by the
// caller's records.
type PeriodCredit struct {
	Period   string       `json:"period"`
	Credited HeadBalances `json:"credited"`
	Utilized HeadBalances `json:"utilized"`
	Reversed HeadBalances `json:"reversed"`
}

// Register is the aggregated credit ledger over a run of periods.
type Register struct {
	Opening  HeadBalances `json:"opening"`
	Credited HeadBalances `json:"credited"`
	Utilized HeadBalances `json:"utilized"`
	Reversed HeadBalances `json:"reversed"`
	Closing  HeadBalances `json:"closing"`
}

// BuildRegister folds the supplied period records into a ledger:
// closing = opening + credited - utilized - reversed per head. A
// closing balance below zero means the records utilized more credit
// than was ever available and fails fast.
func BuildRegister(opening HeadBalances, periods []PeriodCredit) (Register, error) {
	if opening.anyNegative() {
		return Register{}, &domain.ValidationError{Field: "opening", Message: "opening balance cannot be negative"}
	}
	reg := Register{Opening: opening}
	for i, p := range periods {
		if p.Credited.anyNegative() || p.Utilized.anyNegative() || p.Reversed.anyNegative() {
			return Register{}, &domain.ValidationError{
				Field:   fmt.Sprintf("periods[%d]", i),
				Message: "period amounts cannot be negative",
			}
		}
		reg.Credited = reg.Credited.Add(p.Credited)
		reg.Utilized = reg.Utilized.Add(p.Utilized)
		reg.Reversed = reg.Reversed.Add(p.Reversed)
	}
	reg.Closing = opening.Add(reg.Credited).Sub(reg.Utilized).Sub(reg.Reversed)
	if reg.Closing.anyNegative() {
		return Register{}, &domain.ComputationError{
			Op:      "itc.register",
			Message: "utilization exceeds available credit in the supplied records",
		}
	}
	return reg, nil
}

// CheckClaim compares a claim against the register's closing balance
// and reports per-head overdraws as compliance findings.
func CheckClaim(reg Register, claim HeadBalances) []domain.Finding {
	var findings []domain.Finding
	for _, h := range []struct {
		name      string
		claimed   decimal.Decimal
		available decimal.Decimal
	}{
		{"IGST", claim.IGST, reg.Closing.IGST},
		{"CGST", claim.CGST, reg.Closing.CGST},
		{"SGST", claim.SGST, reg.Closing.SGST},
		{"cess", claim.Cess, reg.Closing.Cess},
	} {
		if h.claimed.GreaterThan(h.available) {
			findings = append(findings, domain.Finding{
				Code:     domain.FindingITCExceedsAvailable,
				Severity: domain.FindingWarning,
				Message:  fmt.Sprintf("%s claim %s exceeds available credit %s", h.name, h.claimed, h.available),
			})
		}
	}
	return findings
}
