package validate

import (
	"fmt"

	"github.com/shopspring/decimal"

	"niyam/internal/domain"
)

var (
	hundred = decimal.NewFromInt(100)

	// Statutory GST rate slabs.
	slabRates = []decimal.Decimal{
		decimal.Zero,
		decimal.NewFromFloat(0.25),
		decimal.NewFromInt(3),
		decimal.NewFromInt(5),
		decimal.NewFromInt(12),
		decimal.NewFromInt(18),
		decimal.NewFromInt(28),
	}
)

// LogicalRules checks logical constraints on transaction data:
// non-negative amounts, rate bounds, and date ordering.
func LogicalRules() []Rule {
	return []Rule{
		&rule{
			key: "logic.taxable.non_negative", name: "Logical: Non-Negative Taxable Amount", sev: SeverityError,
			fn: func(tx *domain.Transaction) []Result {
				return []Result{nonNegative("taxable_amount", "Logical: Non-Negative Taxable Amount", tx.TaxableAmount)}
			},
		},
		&rule{
			key: "logic.line_items.non_negative", name: "Logical: Non-Negative Line Amounts", sev: SeverityError,
			fn: func(tx *domain.Transaction) []Result {
				var results []Result
				for i := range tx.LineItems {
					item := &tx.LineItems[i]
					results = append(results,
						nonNegative(fmt.Sprintf("line_items[%d].taxable_amount", i), "Logical: Non-Negative Line Amounts", item.TaxableAmount),
						nonNegative(fmt.Sprintf("line_items[%d].tax_amount", i), "Logical: Non-Negative Line Amounts", item.TaxAmount),
					)
				}
				return results
			},
		},
		&rule{
			key: "logic.rate.bounds", name: "Logical: Tax Rate Bounds", sev: SeverityError,
			fn: func(tx *domain.Transaction) []Result {
				passed := !tx.TaxRate.IsNegative() && !tx.TaxRate.GreaterThan(hundred)
				msg := "Logical: Tax Rate Bounds: tax_rate is within [0,100]"
				if !passed {
					msg = fmt.Sprintf("Logical: Tax Rate Bounds: tax_rate %s is outside [0,100]", tx.TaxRate)
				}
				return []Result{{
					Passed: passed, FieldPath: "tax_rate",
					Expected: "0-100", Actual: tx.TaxRate.String(), Message: msg,
				}}
			},
		},
		&rule{
			key: "logic.rate.slab", name: "Logical: Tax Rate Slab", sev: SeverityWarning,
			fn: func(tx *domain.Transaction) []Result {
				passed := false
				for _, slab := range slabRates {
					if tx.TaxRate.Equal(slab) {
						passed = true
						break
					}
				}
				msg := "Logical: Tax Rate Slab: tax_rate is a standard GST slab"
				if !passed {
					msg = fmt.Sprintf("Logical: Tax Rate Slab: tax_rate %s is not a standard GST slab", tx.TaxRate)
				}
				return []Result{{
					Passed: passed, FieldPath: "tax_rate",
					Expected: "0|0.25|3|5|12|18|28", Actual: tx.TaxRate.String(), Message: msg,
				}}
			},
		},
		&rule{
			key: "logic.line_items.business_use", name: "Logical: Business Use Percent Bounds", sev: SeverityError,
			fn: func(tx *domain.Transaction) []Result {
				var results []Result
				for i := range tx.LineItems {
					pct := tx.LineItems[i].BusinessUsePercent
					fp := fmt.Sprintf("line_items[%d].business_use_percent", i)
					if pct == nil {
						results = append(results, Result{
							Passed: true, FieldPath: fp,
							Message: "Logical: Business Use Percent Bounds: field is empty, skipping",
						})
						continue
					}
					passed := !pct.IsNegative() && !pct.GreaterThan(hundred)
					msg := "Logical: Business Use Percent Bounds: percent is within [0,100]"
					if !passed {
						msg = fmt.Sprintf("Logical: Business Use Percent Bounds: percent %s is outside [0,100]", pct)
					}
					results = append(results, Result{
						Passed: passed, FieldPath: fp,
						Expected: "0-100", Actual: pct.String(), Message: msg,
					})
				}
				return results
			},
		},
		&rule{
			key: "logic.dates.supply_order", name: "Logical: Supply Date Ordering", sev: SeverityWarning,
			fn: func(tx *domain.Transaction) []Result {
				if tx.SupplyDate == nil || tx.DocumentDate.IsZero() {
					return []Result{{
						Passed: true, FieldPath: "supply_date",
						Message: "Logical: Supply Date Ordering: supply date missing, skipping",
					}}
				}
				passed := !tx.DocumentDate.Before(*tx.SupplyDate)
				msg := "Logical: Supply Date Ordering: document date is on or after the supply date"
				if !passed {
					msg = "Logical: Supply Date Ordering: document date precedes the supply date"
				}
				return []Result{{
					Passed: passed, FieldPath: "supply_date",
					Expected: "document_date >= supply_date", Message: msg,
				}}
			},
		},
	}
}

func nonNegative(fieldPath, ruleName string, v decimal.Decimal) Result {
	passed := !v.IsNegative()
	msg := fmt.Sprintf("%s: %s is non-negative", ruleName, fieldPath)
	if !passed {
		msg = fmt.Sprintf("%s: %s is negative (%s)", ruleName, fieldPath, v)
	}
	return Result{
		Passed: passed, FieldPath: fieldPath,
		Expected: ">= 0", Actual: v.String(), Message: msg,
	}
}
