// Package engine runs the per-transaction pipeline: validation,
// reverse-charge detection, tax calculation, credit evaluation, and
// return classification, with compliance findings collected along the
// way.
package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"niyam/internal/domain"
	"niyam/internal/gst"
	"niyam/internal/itc"
	"niyam/internal/rcm"
	"niyam/internal/returns"
	"niyam/internal/taxid"
	"niyam/internal/validate"
)

// selfInvoiceDeadlineDays is the statutory window for raising a
// self-invoice after the date of supply.
const selfInvoiceDeadlineDays = 30

// Engine ties the computation components together. It holds only
// immutable lookup tables and is safe for concurrent use.
type Engine struct {
	detector *rcm.Detector
}

// New builds an engine over the statutory reverse-charge tables.
func New() *Engine {
	return &Engine{detector: rcm.NewDetector()}
}

// NewWithDetector builds an engine over an explicit detector.
func NewWithDetector(d *rcm.Detector) *Engine {
	return &Engine{detector: d}
}

// Assess runs the full pipeline over one transaction: validate, detect
// reverse charge, calculate the tax split, evaluate credit when line
// items are supplied, and classify the return placement.
func (e *Engine) Assess(tx domain.Transaction) (domain.Assessment, error) {
	report := validate.Run(&tx)
	if err := report.Err(); err != nil {
		return domain.Assessment{}, err
	}

	decision := e.detector.Detect(rcm.Input{
		VendorGSTIN:    tx.Vendor.GSTIN,
		VendorName:     tx.Vendor.Name,
		VendorCountry:  tx.Vendor.Country,
		VendorType:     tx.VendorType,
		RecipientGSTIN: tx.Recipient.GSTIN,
		ServiceType:    tx.ServiceType,
		TaxableAmount:  tx.TaxableAmount,
	})

	rate := effectiveRate(tx, decision)
	interstate := isInterstate(tx, decision)

	calc, err := gst.Calculate(gst.Input{
		TaxableAmount: tx.TaxableAmount,
		Rate:          rate,
		CessRate:      tx.CessRate,
		Interstate:    interstate,
		RCMApplicable: decision.Applicable,
	})
	if err != nil {
		return domain.Assessment{}, fmt.Errorf("calculate tax for %s: %w", tx.DocumentNumber, err)
	}

	assessment := domain.Assessment{
		DocumentNumber: tx.DocumentNumber,
		RCM:            decision,
		Tax:            calc,
	}

	if len(tx.LineItems) > 0 {
		eligibility, err := itc.Evaluate(itc.Input{
			VendorType:    tx.VendorType,
			InvoiceValid:  tx.InvoiceValid,
			GoodsReceived: tx.GoodsReceived,
			Lines:         tx.LineItems,
		})
		if err != nil {
			return domain.Assessment{}, fmt.Errorf("evaluate credit for %s: %w", tx.DocumentNumber, err)
		}
		assessment.ITC = &eligibility
	}

	classification, err := returns.Classify(returns.Input{
		Type:             tx.Type,
		IsRCM:            decision.Applicable,
		RCMType:          decision.Type,
		HasLUT:           tx.LUTNumber != "",
		RecipientGSTIN:   tx.Recipient.GSTIN,
		RecipientCountry: tx.Recipient.Country,
		Interstate:       interstate,
		TaxableValue:     tx.TaxableAmount,
		Tax:              calc,
	})
	if err != nil {
		return domain.Assessment{}, fmt.Errorf("classify %s: %w", tx.DocumentNumber, err)
	}
	assessment.Classification = classification

	assessment.Findings = findings(tx)
	return assessment, nil
}

// AssessBatch runs the pipeline over every transaction, stopping at
// the first failure.
func (e *Engine) AssessBatch(txs []domain.Transaction) ([]domain.Assessment, error) {
	out := make([]domain.Assessment, 0, len(txs))
	for i, tx := range txs {
		a, err := e.Assess(tx)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
		out = append(out, a)
	}
	return out, nil
}

// effectiveRate picks the rate the calculation runs at. Exports under
// LUT are zero-rated without payment; reverse-charge entries with no
// stated rate take the notified rate from the detector.
func effectiveRate(tx domain.Transaction, decision domain.RCMDecision) decimal.Decimal {
	if tx.Type == domain.TransactionExport && tx.LUTNumber != "" {
		return decimal.Zero
	}
	if decision.Applicable && tx.TaxRate.IsZero() {
		return decision.Rate
	}
	return tx.TaxRate
}

// isInterstate derives the interstate flag. Exports and imported
// services always levy IGST; domestic supplies compare the supplier's
// state against the place of supply.
func isInterstate(tx domain.Transaction, decision domain.RCMDecision) bool {
	if tx.Type == domain.TransactionExport {
		return true
	}
	if decision.Type == domain.RCMImportOfServices {
		return true
	}
	supplier := tx.Vendor.StateCode
	if supplier == "" {
		supplier = taxid.StateCodeOf(tx.Vendor.GSTIN)
	}
	pos := tx.PlaceOfSupply
	if pos == "" {
		pos = tx.Recipient.StateCode
	}
	return gst.IsInterstate(supplier, pos)
}

// findings collects compliance findings for a transaction that passed
// validation.
func findings(tx domain.Transaction) []domain.Finding {
	var out []domain.Finding
	if tx.Type == domain.TransactionSelfInvoice && tx.SupplyDate != nil && !tx.DocumentDate.IsZero() {
		days := int(tx.DocumentDate.Sub(*tx.SupplyDate).Hours() / 24)
		if days > selfInvoiceDeadlineDays {
			out = append(out, domain.Finding{
				Code:     domain.FindingLateSelfInvoice,
				Severity: domain.FindingWarning,
				Message:  fmt.Sprintf("self-invoice %s issued %d days after the date of supply", tx.DocumentNumber, days),
			})
		}
	}
	return out
}
