package validate

import (
	"fmt"

	"niyam/internal/domain"
	"niyam/internal/taxid"
)

// CrossFieldRules checks relationships between different fields.
func CrossFieldRules() []Rule {
	return []Rule{
		&rule{
			key: "xf.vendor.gstin_state", name: "Cross-field: Vendor GSTIN-State Match", sev: SeverityError,
			fn: func(tx *domain.Transaction) []Result {
				return gstinStateCheck("vendor", tx.Vendor.GSTIN, tx.Vendor.StateCode)
			},
		},
		&rule{
			key: "xf.recipient.gstin_state", name: "Cross-field: Recipient GSTIN-State Match", sev: SeverityError,
			fn: func(tx *domain.Transaction) []Result {
				return gstinStateCheck("recipient", tx.Recipient.GSTIN, tx.Recipient.StateCode)
			},
		},
		&rule{
			key: "xf.vendor.gstin_pan", name: "Cross-field: Vendor GSTIN-PAN Match", sev: SeverityError,
			fn: func(tx *domain.Transaction) []Result {
				return gstinPANCheck("vendor", tx.Vendor.GSTIN, tx.Vendor.PAN)
			},
		},
		&rule{
			key: "xf.type.export_country", name: "Cross-field: Export Recipient Country", sev: SeverityError,
			fn: func(tx *domain.Transaction) []Result {
				if tx.Type != domain.TransactionExport {
					return []Result{{
						Passed: true, FieldPath: "recipient.country",
						Message: "Cross-field: Export Recipient Country: not an export, skipping",
					}}
				}
				passed := !taxid.IsDomestic(tx.Recipient.Country)
				msg := "Cross-field: Export Recipient Country: recipient country is foreign"
				if !passed {
					msg = "Cross-field: Export Recipient Country: export transaction has a domestic recipient country"
				}
				return []Result{{
					Passed: passed, FieldPath: "recipient.country",
					Expected: "foreign country", Actual: tx.Recipient.Country, Message: msg,
				}}
			},
		},
		&rule{
			key: "xf.type.b2b_gstin", name: "Cross-field: B2B Recipient Registration", sev: SeverityError,
			fn: func(tx *domain.Transaction) []Result {
				if tx.Type != domain.TransactionDomesticB2B {
					return []Result{{
						Passed: true, FieldPath: "recipient.gstin",
						Message: "Cross-field: B2B Recipient Registration: not domestic B2B, skipping",
					}}
				}
				passed := tx.Recipient.GSTIN != ""
				msg := "Cross-field: B2B Recipient Registration: recipient GSTIN is present"
				if !passed {
					msg = "Cross-field: B2B Recipient Registration: domestic B2B transaction lacks a recipient GSTIN"
				}
				return []Result{{
					Passed: passed, FieldPath: "recipient.gstin",
					Expected: "15-character GSTIN", Actual: tx.Recipient.GSTIN, Message: msg,
				}}
			},
		},
		&rule{
			key: "xf.type.self_invoice_vendor", name: "Cross-field: Self-Invoice Vendor", sev: SeverityWarning,
			fn: func(tx *domain.Transaction) []Result {
				if tx.Type != domain.TransactionSelfInvoice {
					return []Result{{
						Passed: true, FieldPath: "vendor.gstin",
						Message: "Cross-field: Self-Invoice Vendor: not a self-invoice, skipping",
					}}
				}
				passed := tx.Vendor.GSTIN == "" || !taxid.IsDomestic(tx.Vendor.Country)
				msg := "Cross-field: Self-Invoice Vendor: vendor is unregistered or foreign"
				if !passed {
					msg = "Cross-field: Self-Invoice Vendor: self-invoice names a registered domestic vendor"
				}
				return []Result{{
					Passed: passed, FieldPath: "vendor.gstin",
					Expected: "no GSTIN or foreign vendor", Actual: tx.Vendor.GSTIN, Message: msg,
				}}
			},
		},
	}
}

func gstinStateCheck(party, gstin, stateCode string) []Result {
	fp := party + ".state_code"
	name := "Cross-field: " + party + " GSTIN-State Match"
	if gstin == "" || stateCode == "" {
		return []Result{{
			Passed: true, FieldPath: fp,
			Message: fmt.Sprintf("%s: GSTIN or state code missing, skipping", name),
		}}
	}
	prefix := taxid.StateCodeOf(gstin)
	passed := prefix == stateCode
	msg := fmt.Sprintf("%s: GSTIN state prefix matches state code", name)
	if !passed {
		msg = fmt.Sprintf("%s: GSTIN state prefix %s does not match state code %s", name, prefix, stateCode)
	}
	return []Result{{
		Passed: passed, FieldPath: fp,
		Expected: prefix, Actual: stateCode, Message: msg,
	}}
}

func gstinPANCheck(party, gstin, pan string) []Result {
	fp := party + ".pan"
	name := "Cross-field: " + party + " GSTIN-PAN Match"
	if gstin == "" || pan == "" {
		return []Result{{
			Passed: true, FieldPath: fp,
			Message: fmt.Sprintf("%s: GSTIN or PAN missing, skipping", name),
		}}
	}
	embedded := taxid.PANOf(gstin)
	passed := embedded == pan
	msg := fmt.Sprintf("%s: PAN matches the one embedded in the GSTIN", name)
	if !passed {
		msg = fmt.Sprintf("%s: PAN %s does not match GSTIN-embedded PAN %s", name, pan, embedded)
	}
	return []Result{{
		Passed: passed, FieldPath: fp,
		Expected: embedded, Actual: pan, Message: msg,
	}}
}
