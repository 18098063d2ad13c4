package validate

import (
	"fmt"

	"github.com/shopspring/decimal"

	"niyam/internal/domain"
	"niyam/internal/money"
)

// mathTolerance absorbs the rounding drift a parsed document may carry
// across its line items.
var mathTolerance = decimal.NewFromInt(1)

// MathRules checks arithmetic relationships between fields.
func MathRules() []Rule {
	return []Rule{
		&rule{
			key: "math.line_items.taxable_sum", name: "Math: Line Taxable Sum", sev: SeverityError,
			fn: func(tx *domain.Transaction) []Result {
				if len(tx.LineItems) == 0 {
					return []Result{{
						Passed: true, FieldPath: "taxable_amount",
						Message: "Math: Line Taxable Sum: no line items, skipping",
					}}
				}
				sum := decimal.Zero
				for i := range tx.LineItems {
					sum = sum.Add(tx.LineItems[i].TaxableAmount)
				}
				passed := money.WithinTolerance(sum, tx.TaxableAmount, mathTolerance)
				return []Result{mathResult(passed, "taxable_amount", "Math: Line Taxable Sum", tx.TaxableAmount, sum)}
			},
		},
		&rule{
			key: "math.line_items.tax_amount", name: "Math: Line Tax Amount", sev: SeverityWarning,
			fn: func(tx *domain.Transaction) []Result {
				results := make([]Result, 0, len(tx.LineItems))
				for i := range tx.LineItems {
					item := &tx.LineItems[i]
					fp := fmt.Sprintf("line_items[%d].tax_amount", i)
					expected := money.Percent(item.TaxableAmount, tx.TaxRate)
					passed := money.WithinTolerance(item.TaxAmount, expected, mathTolerance)
					results = append(results, mathResult(passed, fp, "Math: Line Tax Amount", expected, item.TaxAmount))
				}
				return results
			},
		},
	}
}

func mathResult(passed bool, fieldPath, ruleName string, expected, actual decimal.Decimal) Result {
	msg := fmt.Sprintf("%s: %s calculation matches", ruleName, fieldPath)
	if !passed {
		msg = fmt.Sprintf("%s: %s calculation mismatch (expected %s, got %s)", ruleName, fieldPath, expected, actual)
	}
	return Result{
		Passed: passed, FieldPath: fieldPath,
		Expected: expected.String(), Actual: actual.String(), Message: msg,
	}
}
