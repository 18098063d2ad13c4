// Package itc evaluates input-tax-credit eligibility, maintains credit
// registers over historical records, and plans statutory set-off of
// credit against liability.
package itc

import (
	"fmt"

	"github.com/shopspring/decimal"

	"niyam/internal/domain"
	"niyam/internal/money"
)

var hundred = decimal.NewFromInt(100)

const reasonComposition = "composition dealer - no credit available"

// Input is one eligibility evaluation request.
type Input struct {
	VendorType    domain.VendorType `json:"vendor_type"`
	InvoiceValid  bool              `json:"invoice_valid"`
	GoodsReceived bool              `json:"goods_received"`
	Lines         []domain.LineItem `json:"lines"`
}

// Evaluate applies the credit rules to the given lines.
//
// Composition vendors and transactions failing the invoice/receipt
// conditions block the full tax without per-line evaluation. Otherwise
// each line contributes to eligible or blocked according to its credit
// category, with partial business use split proportionally and the
// blocked portion accumulated as reversal required.
func Evaluate(in Input) (domain.ITCEligibility, error) {
	total := decimal.Zero
	for i, line := range in.Lines {
		if line.TaxAmount.IsNegative() {
			return domain.ITCEligibility{}, &domain.ValidationError{
				Field:   fmt.Sprintf("lines[%d].tax_amount", i),
				Message: "line tax cannot be negative",
			}
		}
		total = total.Add(line.TaxAmount)
	}

	if in.VendorType == domain.VendorComposition {
		return blockedAll(total, reasonComposition), nil
	}
	if !in.InvoiceValid || !in.GoodsReceived {
		var reasons []string
		if !in.InvoiceValid {
			reasons = append(reasons, "invoice failed validation")
		}
		if !in.GoodsReceived {
			reasons = append(reasons, "goods or services not received")
		}
		return blockedAll(total, reasons...), nil
	}

	res := domain.ITCEligibility{
		Eligible:         decimal.Zero,
		Blocked:          decimal.Zero,
		ReversalRequired: decimal.Zero,
	}
	for i, line := range in.Lines {
		le := domain.LineEligibility{Index: i, Category: line.Category}
		switch line.Category {
		case domain.CreditBlocked:
			reason := string(line.BlockedReason)
			if desc, ok := domain.BlockedReasonDescriptions[line.BlockedReason]; ok {
				reason = desc
			} else if reason == "" {
				reason = "blocked credit category"
			}
			le.Blocked = line.TaxAmount
			le.Eligible = decimal.Zero
			le.Reason = reason
			res.Blocked = res.Blocked.Add(line.TaxAmount)
			res.Reasons = append(res.Reasons, reason)
		case domain.CreditCapitalGoods, domain.CreditInputs, domain.CreditInputServices:
			pct := hundred
			if line.BusinessUsePercent != nil {
				pct = *line.BusinessUsePercent
				if pct.IsNegative() || pct.GreaterThan(hundred) {
					return domain.ITCEligibility{}, &domain.ComputationError{
						Op:      "itc.evaluate",
						Message: fmt.Sprintf("lines[%d] business use percent %s outside [0,100]", i, pct),
					}
				}
			}
			if pct.LessThan(hundred) {
				eligible := money.Percent(line.TaxAmount, pct)
				blocked := line.TaxAmount.Sub(eligible)
				le.Eligible = eligible
				le.Blocked = blocked
				le.Reason = fmt.Sprintf("%s%% business use", pct)
				res.Eligible = res.Eligible.Add(eligible)
				res.Blocked = res.Blocked.Add(blocked)
				res.ReversalRequired = res.ReversalRequired.Add(blocked)
			} else {
				le.Eligible = line.TaxAmount
				le.Blocked = decimal.Zero
				res.Eligible = res.Eligible.Add(line.TaxAmount)
			}
		default:
			return domain.ITCEligibility{}, &domain.ValidationError{
				Field:   fmt.Sprintf("lines[%d].category", i),
				Message: fmt.Sprintf("unknown credit category %q", line.Category),
			}
		}
		res.Lines = append(res.Lines, le)
	}

	res.EligibilityPercent = eligibilityPercent(res.Eligible, res.Blocked)
	return res, nil
}

func blockedAll(total decimal.Decimal, reasons ...string) domain.ITCEligibility {
	return domain.ITCEligibility{
		Eligible:           decimal.Zero,
		Blocked:            total,
		ReversalRequired:   decimal.Zero,
		EligibilityPercent: decimal.Zero,
		Reasons:            reasons,
	}
}

// eligibilityPercent is eligible/(eligible+blocked)*100 rounded to two
// decimals, zero when the denominator is zero.
func eligibilityPercent(eligible, blocked decimal.Decimal) decimal.Decimal {
	denom := eligible.Add(blocked)
	if denom.IsZero() {
		return decimal.Zero
	}
	return money.Round2(eligible.Mul(hundred).Div(denom))
}
