package returns

import (
	"sort"

	"github.com/shopspring/decimal"

	"niyam/internal/domain"
	"niyam/internal/money"
)

// GSTR3BRow is one section 3.1 row of the summary return.
type GSTR3BRow struct {
	TaxableValue decimal.Decimal `json:"txval"`
	IGST         decimal.Decimal `json:"iamt"`
	CGST         decimal.Decimal `json:"camt"`
	SGST         decimal.Decimal `json:"samt"`
	Cess         decimal.Decimal `json:"csamt"`
}

// GSTR3BITCEntry is one credit-category row of the section 4 block.
type GSTR3BITCEntry struct {
	Category domain.CreditCategory `json:"ty"`
	IGST     decimal.Decimal       `json:"iamt"`
	CGST     decimal.Decimal       `json:"camt"`
	SGST     decimal.Decimal       `json:"samt"`
	Cess     decimal.Decimal       `json:"csamt"`
}

// GSTR3BITC is the section 4 eligible-ITC block: credit availed per
// category, reversal, and the net of the two.
type GSTR3BITC struct {
	Availed  []GSTR3BITCEntry `json:"itc_avl"`
	Reversed GSTR3BRow        `json:"itc_rev"`
	Net      GSTR3BRow        `json:"itc_net"`
}

// GSTR3BReturn is the summary return for one period.
type GSTR3BReturn struct {
	Period         string     `json:"ret_period"`
	OutwardTaxable GSTR3BRow  `json:"osup_det"`
	ZeroRated      GSTR3BRow  `json:"osup_zero"`
	InwardRCM      GSTR3BRow  `json:"isup_rev"`
	ITC            *GSTR3BITC `json:"itc_elg,omitempty"`
}

// BuildGSTR3B aggregates classified transactions into the summary
// return. Credit availed is distributed over levy heads in proportion
// to the entry's tax components and indexed by credit category.
func BuildGSTR3B(period string, entries []Entry) GSTR3BReturn {
	ret := GSTR3BReturn{Period: period}

	availed := make(map[domain.CreditCategory]*GSTR3BITCEntry)
	var reversed, net GSTR3BRow
	hasITC := false

	for _, e := range entries {
		c := e.Classification
		row := &ret.OutwardTaxable
		switch c.Section {
		case domain.SectionZeroRated:
			row = &ret.ZeroRated
		case domain.SectionInwardRCM:
			row = &ret.InwardRCM
		}
		row.TaxableValue = row.TaxableValue.Add(c.TaxableValue)
		row.IGST = row.IGST.Add(c.IGST)
		row.CGST = row.CGST.Add(c.CGST)
		row.SGST = row.SGST.Add(c.SGST)
		row.Cess = row.Cess.Add(c.Cess)

		if e.ITC == nil {
			continue
		}
		hasITC = true
		total := c.CGST.Add(c.SGST).Add(c.IGST).Add(c.Cess)
		for _, le := range e.ITC.Lines {
			if le.Eligible.IsZero() && le.Blocked.IsZero() {
				continue
			}
			entry, ok := availed[le.Category]
			if !ok {
				entry = &GSTR3BITCEntry{Category: le.Category}
				availed[le.Category] = entry
			}
			addHeadShares(entry, c, total, le.Eligible)
		}
		addRowShares(&reversed, c, total, e.ITC.ReversalRequired)
	}

	if !hasITC {
		return ret
	}

	cats := make([]domain.CreditCategory, 0, len(availed))
	for cat := range availed {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })

	itc := &GSTR3BITC{Reversed: reversed}
	for _, cat := range cats {
		entry := *availed[cat]
		itc.Availed = append(itc.Availed, entry)
		net.IGST = net.IGST.Add(entry.IGST)
		net.CGST = net.CGST.Add(entry.CGST)
		net.SGST = net.SGST.Add(entry.SGST)
		net.Cess = net.Cess.Add(entry.Cess)
	}
	net.IGST = net.IGST.Sub(reversed.IGST)
	net.CGST = net.CGST.Sub(reversed.CGST)
	net.SGST = net.SGST.Sub(reversed.SGST)
	net.Cess = net.Cess.Sub(reversed.Cess)
	itc.Net = net
	ret.ITC = itc
	return ret
}

// addHeadShares distributes amount over the entry's heads in
// proportion to the classification's tax components.
func addHeadShares(entry *GSTR3BITCEntry, c domain.ReturnClassification, total, amount decimal.Decimal) {
	if total.IsZero() || amount.IsZero() {
		return
	}
	entry.IGST = entry.IGST.Add(share(amount, c.IGST, total))
	entry.CGST = entry.CGST.Add(share(amount, c.CGST, total))
	entry.SGST = entry.SGST.Add(share(amount, c.SGST, total))
	entry.Cess = entry.Cess.Add(share(amount, c.Cess, total))
}

func addRowShares(row *GSTR3BRow, c domain.ReturnClassification, total, amount decimal.Decimal) {
	if total.IsZero() || amount.IsZero() {
		return
	}
	row.IGST = row.IGST.Add(share(amount, c.IGST, total))
	row.CGST = row.CGST.Add(share(amount, c.CGST, total))
	row.SGST = row.SGST.Add(share(amount, c.SGST, total))
	row.Cess = row.Cess.Add(share(amount, c.Cess, total))
}

func share(amount, component, total decimal.Decimal) decimal.Decimal {
	if component.IsZero() {
		return decimal.Zero
	}
	return money.Round2(amount.Mul(component).Div(total))
}
