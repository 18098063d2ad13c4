package validate

import (
	"fmt"

	"niyam/internal/domain"
	"niyam/internal/taxid"
)

// Known ISO 4217 currency codes (common subset).
var knownCurrencies = map[string]bool{
	"INR": true, "USD": true, "EUR": true, "GBP": true, "JPY": true,
	"AUD": true, "CAD": true, "CHF": true, "CNY": true, "SGD": true,
	"AED": true, "SAR": true, "HKD": true, "MYR": true, "THB": true,
}

// FormatRules checks identifier formats. Empty optional identifiers
// pass; present ones must match their statutory pattern.
func FormatRules() []Rule {
	return []Rule{
		&rule{
			key: "fmt.vendor.gstin", name: "Format: Vendor GSTIN", sev: SeverityError,
			fn: func(tx *domain.Transaction) []Result {
				return []Result{gstinCheck("vendor.gstin", "Format: Vendor GSTIN", tx.Vendor.GSTIN)}
			},
		},
		&rule{
			key: "fmt.recipient.gstin", name: "Format: Recipient GSTIN", sev: SeverityError,
			fn: func(tx *domain.Transaction) []Result {
				return []Result{gstinCheck("recipient.gstin", "Format: Recipient GSTIN", tx.Recipient.GSTIN)}
			},
		},
		&rule{
			key: "fmt.vendor.pan", name: "Format: Vendor PAN", sev: SeverityError,
			fn: func(tx *domain.Transaction) []Result {
				if tx.Vendor.PAN == "" {
					return []Result{skipped("vendor.pan", "Format: Vendor PAN")}
				}
				err := taxid.ValidatePAN(tx.Vendor.PAN)
				return []Result{formatResult("vendor.pan", "Format: Vendor PAN", "10-character PAN", tx.Vendor.PAN, err)}
			},
		},
		&rule{
			key: "fmt.vendor.state_code", name: "Format: Vendor State Code", sev: SeverityError,
			fn: func(tx *domain.Transaction) []Result {
				return []Result{stateCodeResult("vendor.state_code", "Format: Vendor State Code", tx.Vendor.StateCode)}
			},
		},
		&rule{
			key: "fmt.recipient.state_code", name: "Format: Recipient State Code", sev: SeverityError,
			fn: func(tx *domain.Transaction) []Result {
				return []Result{stateCodeResult("recipient.state_code", "Format: Recipient State Code", tx.Recipient.StateCode)}
			},
		},
		&rule{
			key: "fmt.place_of_supply", name: "Format: Place of Supply", sev: SeverityError,
			fn: func(tx *domain.Transaction) []Result {
				return []Result{stateCodeResult("place_of_supply", "Format: Place of Supply", tx.PlaceOfSupply)}
			},
		},
		&rule{
			key: "fmt.line_items.hsn", name: "Format: Line HSN/SAC Code", sev: SeverityWarning,
			fn: func(tx *domain.Transaction) []Result {
				results := make([]Result, 0, len(tx.LineItems))
				for i := range tx.LineItems {
					fp := fmt.Sprintf("line_items[%d].hsn_sac_code", i)
					code := tx.LineItems[i].HSNSACCode
					if code == "" {
						results = append(results, skipped(fp, "Format: Line HSN/SAC Code"))
						continue
					}
					err := taxid.ValidateHSN(code)
					results = append(results, formatResult(fp, "Format: Line HSN/SAC Code", "4-8 digit code", code, err))
				}
				return results
			},
		},
		&rule{
			key: "fmt.currency", name: "Format: Currency Code", sev: SeverityWarning,
			fn: func(tx *domain.Transaction) []Result {
				if tx.Currency == "" {
					return []Result{skipped("currency", "Format: Currency Code")}
				}
				passed := knownCurrencies[tx.Currency]
				msg := "Format: Currency Code: currency is a known ISO code"
				if !passed {
					msg = fmt.Sprintf("Format: Currency Code: currency %q is not a known ISO code", tx.Currency)
				}
				return []Result{{
					Passed: passed, FieldPath: "currency",
					Expected: "ISO 4217 code", Actual: tx.Currency, Message: msg,
				}}
			},
		},
	}
}

func gstinCheck(fieldPath, ruleName, gstin string) Result {
	if gstin == "" {
		return skipped(fieldPath, ruleName)
	}
	err := taxid.ValidateGSTIN(gstin)
	return formatResult(fieldPath, ruleName, "15-character GSTIN", gstin, err)
}

func stateCodeResult(fieldPath, ruleName, code string) Result {
	if code == "" {
		return skipped(fieldPath, ruleName)
	}
	err := taxid.ValidateStateCode(code)
	return formatResult(fieldPath, ruleName, "2-digit state code (01-38)", code, err)
}

func formatResult(fieldPath, ruleName, expected, actual string, err error) Result {
	passed := err == nil
	msg := fmt.Sprintf("%s: %s matches expected format", ruleName, fieldPath)
	if !passed {
		msg = fmt.Sprintf("%s: %s does not match expected format", ruleName, fieldPath)
	}
	return Result{
		Passed: passed, FieldPath: fieldPath,
		Expected: expected, Actual: actual, Message: msg,
	}
}

func skipped(fieldPath, ruleName string) Result {
	return Result{
		Passed: true, FieldPath: fieldPath,
		Message: fmt.Sprintf("%s: field is empty, skipping format check", ruleName),
	}
}
