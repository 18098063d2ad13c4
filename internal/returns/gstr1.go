package returns

import (
	"sort"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"niyam/internal/domain"
	"niyam/internal/money"
)

// gstnDateLayout is the dd-mm-yyyy date form used in return filings.
const gstnDateLayout = "02-01-2006"

// Entry pairs one transaction with its computed classification and,
// where evaluated, its credit outcome.
type Entry struct {
	Transaction    domain.Transaction          `json:"transaction"`
	Classification domain.ReturnClassification `json:"classification"`
	ITC            *domain.ITCEligibility      `json:"itc,omitempty"`
}

// GSTR1Invoice is one invoice-wise row of the outward return.
type GSTR1Invoice struct {
	Number        string          `json:"inum"`
	Date          string          `json:"idt"`
	Value         decimal.Decimal `json:"val"`
	PlaceOfSupply string          `json:"pos,omitempty"`
	ReverseCharge string          `json:"rchrg"`
	TaxableValue  decimal.Decimal `json:"txval"`
	IGST          decimal.Decimal `json:"iamt"`
	CGST          decimal.Decimal `json:"camt"`
	SGST          decimal.Decimal `json:"samt"`
	Cess          decimal.Decimal `json:"csamt"`
}

// GSTR1B2BGroup groups B2B invoices under one recipient GSTIN.
type GSTR1B2BGroup struct {
	RecipientGSTIN string         `json:"ctin"`
	Invoices       []GSTR1Invoice `json:"inv"`
}

// GSTR1RateSummary is one rate-wise consolidated row of the small-B2C
// table.
type GSTR1RateSummary struct {
	PlaceOfSupply string          `json:"pos,omitempty"`
	Rate          decimal.Decimal `json:"rt"`
	TaxableValue  decimal.Decimal `json:"txval"`
	IGST          decimal.Decimal `json:"iamt"`
	CGST          decimal.Decimal `json:"camt"`
	SGST          decimal.Decimal `json:"samt"`
	Cess          decimal.Decimal `json:"csamt"`
}

// GSTR1ExportGroup groups export invoices by payment type: WOPAY for
// exports under LUT, WPAY for exports with tax payment.
type GSTR1ExportGroup struct {
	ExportType string         `json:"exp_typ"`
	Invoices   []GSTR1Invoice `json:"inv"`
}

// GSTR1Return is the outward-supply detail return for one period,
// shaped so an exporter can serialize it to the filing format
// directly.
type GSTR1Return struct {
	Period   string             `json:"fp"`
	B2B      []GSTR1B2BGroup    `json:"b2b,omitempty"`
	B2CLarge []GSTR1Invoice     `json:"b2cl,omitempty"`
	B2CSmall []GSTR1RateSummary `json:"b2cs,omitempty"`
	Exports  []GSTR1ExportGroup `json:"exp,omitempty"`
}

// BuildGSTR1 assembles the outward return for one period from
// classified transactions. Entries classified NOT_APPLICABLE are
// skipped. Period uses the filing form MMYYYY.
func BuildGSTR1(period string, entries []Entry) GSTR1Return {
	ret := GSTR1Return{Period: period}

	byTable := lo.GroupBy(entries, func(e Entry) domain.GSTR1Table {
		return e.Classification.Table
	})

	ret.B2B = buildB2BGroups(byTable[domain.TableB2B])

	for _, e := range byTable[domain.TableB2CLarge] {
		ret.B2CLarge = append(ret.B2CLarge, invoiceRow(e))
	}

	ret.B2CSmall = buildRateSummaries(byTable[domain.TableB2CSmall])

	if inv := byTable[domain.TableExportsLUT]; len(inv) > 0 {
		ret.Exports = append(ret.Exports, GSTR1ExportGroup{
			ExportType: "WOPAY",
			Invoices:   lo.Map(inv, func(e Entry, _ int) GSTR1Invoice { return invoiceRow(e) }),
		})
	}
	if inv := byTable[domain.TableExportsPaid]; len(inv) > 0 {
		ret.Exports = append(ret.Exports, GSTR1ExportGroup{
			ExportType: "WPAY",
			Invoices:   lo.Map(inv, func(e Entry, _ int) GSTR1Invoice { return invoiceRow(e) }),
		})
	}

	return ret
}

func invoiceRow(e Entry) GSTR1Invoice {
	c := e.Classification
	rchrg := "N"
	if c.ITCSection != "" {
		rchrg = "Y"
	}
	return GSTR1Invoice{
		Number:        e.Transaction.DocumentNumber,
		Date:          e.Transaction.DocumentDate.Format(gstnDateLayout),
		Value:         c.TaxableValue.Add(c.CGST).Add(c.SGST).Add(c.IGST).Add(c.Cess),
		PlaceOfSupply: e.Transaction.PlaceOfSupply,
		ReverseCharge: rchrg,
		TaxableValue:  c.TaxableValue,
		IGST:          c.IGST,
		CGST:          c.CGST,
		SGST:          c.SGST,
		Cess:          c.Cess,
	}
}

func buildB2BGroups(entries []Entry) []GSTR1B2BGroup {
	byRecipient := lo.GroupBy(entries, func(e Entry) string {
		return e.Transaction.Recipient.GSTIN
	})
	ctins := lo.Keys(byRecipient)
	sort.Strings(ctins)

	groups := make([]GSTR1B2BGroup, 0, len(ctins))
	for _, ctin := range ctins {
		groups = append(groups, GSTR1B2BGroup{
			RecipientGSTIN: ctin,
			Invoices:       lo.Map(byRecipient[ctin], func(e Entry, _ int) GSTR1Invoice { return invoiceRow(e) }),
		})
	}
	return groups
}

type rateKey struct {
	pos  string
	rate string
}

func buildRateSummaries(entries []Entry) []GSTR1RateSummary {
	byRate := make(map[rateKey]*GSTR1RateSummary)
	for _, e := range entries {
		rate := money.Round2(e.Transaction.TaxRate)
		key := rateKey{pos: e.Transaction.PlaceOfSupply, rate: rate.String()}
		row, ok := byRate[key]
		if !ok {
			row = &GSTR1RateSummary{PlaceOfSupply: key.pos, Rate: rate}
			byRate[key] = row
		}
		c := e.Classification
		row.TaxableValue = row.TaxableValue.Add(c.TaxableValue)
		row.IGST = row.IGST.Add(c.IGST)
		row.CGST = row.CGST.Add(c.CGST)
		row.SGST = row.SGST.Add(c.SGST)
		row.Cess = row.Cess.Add(c.Cess)
	}

	keys := lo.Keys(byRate)
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].pos != keys[j].pos {
			return keys[i].pos < keys[j].pos
		}
		return keys[i].rate < keys[j].rate
	})
	rows := make([]GSTR1RateSummary, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, *byRate[k])
	}
	return rows
}
