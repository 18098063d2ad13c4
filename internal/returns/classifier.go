// Package returns maps transactions to their statutory return
// placement and assembles GSTR-1/GSTR-3B shaped return objects.
package returns

import (
	"fmt"

	"github.com/shopspring/decimal"

	"niyam/internal/domain"
	"niyam/internal/taxid"
)

// B2CLargeThreshold is the statutory value above which an interstate
// unregistered-recipient supply reports invoice-wise (B2C large).
var B2CLargeThreshold = decimal.NewFromInt(250000)

// Input is the attribute tuple the classifier decides on.
type Input struct {
	Type             domain.TransactionType      `json:"type"`
	IsRCM            bool                        `json:"is_rcm"`
	RCMType          domain.RCMType              `json:"rcm_type,omitempty"`
	HasLUT           bool                        `json:"has_lut"`
	RecipientGSTIN   string                      `json:"recipient_gstin,omitempty"`
	RecipientCountry string                      `json:"recipient_country,omitempty"`
	Interstate       bool                        `json:"interstate"`
	TaxableValue     decimal.Decimal             `json:"taxable_value"`
	Tax              domain.TaxCalculationResult `json:"tax"`
}

// Classify maps the input tuple to its GSTR-1 table and GSTR-3B
// section. It is a pure function of its input.
func Classify(in Input) (domain.ReturnClassification, error) {
	if !in.Type.Valid() {
		return domain.ReturnClassification{}, &domain.ValidationError{
			Field:   "type",
			Message: fmt.Sprintf("unknown transaction type %q", in.Type),
		}
	}

	table, err := outwardTable(in)
	if err != nil {
		return domain.ReturnClassification{}, err
	}

	res := domain.ReturnClassification{
		Table:        table,
		Section:      summarySection(in),
		TaxableValue: in.TaxableValue,
		CGST:         in.Tax.CGST,
		SGST:         in.Tax.SGST,
		IGST:         in.Tax.IGST,
		Cess:         in.Tax.Cess,
	}
	if in.IsRCM {
		res.ITCSection = domain.ITCSectionRCM
	}
	return res, nil
}

func outwardTable(in Input) (domain.GSTR1Table, error) {
	switch {
	case in.Type == domain.TransactionSelfInvoice:
		// Self-invoices raised under reverse charge stay out of the
		// outward return.
		return domain.TableNotApplicable, nil
	case in.Type == domain.TransactionExport:
		if in.HasLUT {
			return domain.TableExportsLUT, nil
		}
		return domain.TableExportsPaid, nil
	case !taxid.IsDomestic(in.RecipientCountry):
		return "", &domain.ComputationError{
			Op:      "returns.classify",
			Message: fmt.Sprintf("foreign recipient country %q on a %s transaction", in.RecipientCountry, in.Type),
		}
	case in.RecipientGSTIN != "":
		return domain.TableB2B, nil
	case in.Interstate && in.TaxableValue.GreaterThan(B2CLargeThreshold):
		return domain.TableB2CLarge, nil
	default:
		return domain.TableB2CSmall, nil
	}
}

func summarySection(in Input) domain.GSTR3BSection {
	switch {
	case in.Type == domain.TransactionExport:
		return domain.SectionZeroRated
	case in.IsRCM && in.RCMType == domain.RCMDomesticUnregistered:
		return domain.SectionInwardRCM
	default:
		// Ordinary domestic supplies and import-of-services entries
		// both report their tax in the outward-taxable section.
		return domain.SectionOutwardTaxable
	}
}
