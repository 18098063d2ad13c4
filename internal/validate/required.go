package validate

import (
	"fmt"

	"niyam/internal/domain"
)

// RequiredRules checks the presence of mandatory fields.
func RequiredRules() []Rule {
	return []Rule{
		&rule{
			key: "req.document.number", name: "Required: Document Number", sev: SeverityError,
			fn: func(tx *domain.Transaction) []Result {
				return []Result{presence("document_number", "Required: Document Number", tx.DocumentNumber)}
			},
		},
		&rule{
			key: "req.document.date", name: "Required: Document Date", sev: SeverityError,
			fn: func(tx *domain.Transaction) []Result {
				passed := !tx.DocumentDate.IsZero()
				msg := "Required: Document Date: document_date is present"
				if !passed {
					msg = "Required: Document Date: document_date is missing"
				}
				return []Result{{
					Passed: passed, FieldPath: "document_date",
					Expected: "non-zero date", Message: msg,
				}}
			},
		},
		&rule{
			key: "req.transaction.type", name: "Required: Transaction Type", sev: SeverityError,
			fn: func(tx *domain.Transaction) []Result {
				passed := tx.Type.Valid()
				msg := "Required: Transaction Type: type is a known value"
				if !passed {
					msg = fmt.Sprintf("Required: Transaction Type: type %q is not a known value", tx.Type)
				}
				return []Result{{
					Passed: passed, FieldPath: "type",
					Expected: "export|domestic_b2b|domestic_b2c|self_invoice",
					Actual:   string(tx.Type), Message: msg,
				}}
			},
		},
		&rule{
			key: "req.vendor.name", name: "Required: Vendor Name", sev: SeverityWarning,
			fn: func(tx *domain.Transaction) []Result {
				return []Result{presence("vendor.name", "Required: Vendor Name", tx.Vendor.Name)}
			},
		},
	}
}

func presence(fieldPath, ruleName, value string) Result {
	passed := value != ""
	msg := fmt.Sprintf("%s: %s is present", ruleName, fieldPath)
	if !passed {
		msg = fmt.Sprintf("%s: %s is missing or empty", ruleName, fieldPath)
	}
	return Result{
		Passed: passed, FieldPath: fieldPath,
		Expected: "non-empty value", Actual: value, Message: msg,
	}
}
