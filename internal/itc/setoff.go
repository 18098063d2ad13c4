package itc

import (
	"github.com/shopspring/decimal"

	"niyam/internal/domain"
)

// Head names one levy head in a set-off step.
type Head string

const (
	HeadIGST Head = "IGST"
	HeadCGST Head = "CGST"
	HeadSGST Head = "SGST"
	HeadCess Head = "CESS"
)

// SetOffStep records utilizing Amount of CreditHead credit against
// LiabilityHead liability.
type SetOffStep struct {
	CreditHead    Head            `json:"credit_head"`
	LiabilityHead Head            `json:"liability_head"`
	Amount        decimal.Decimal `json:"amount"`
}

// SetOffPlan is the utilization outcome: the ordered steps taken, the
// credit spent and left per head, and the liability remaining to be
// paid in cash.
type SetOffPlan struct {
	Steps           []SetOffStep `json:"steps"`
	CreditUsed      HeadBalances `json:"credit_used"`
	CreditRemaining HeadBalances `json:"credit_remaining"`
	CashPayable     HeadBalances `json:"cash_payable"`
}

// ApplySetOff utilizes available credit against liability in the
// statutory order: IGST credit first against IGST, then CGST, then
// SGST liability; CGST credit against CGST then IGST; SGST credit
// against SGST then IGST; CGST and SGST credit never cross into each
// other; cess credit only against cess liability. Whatever liability
// remains is payable in cash.
func ApplySetOff(liability, available HeadBalances) (SetOffPlan, error) {
	if liability.anyNegative() {
		return SetOffPlan{}, &domain.ValidationError{Field: "liability", Message: "liability cannot be negative"}
	}
	if available.anyNegative() {
		return SetOffPlan{}, &domain.ValidationError{Field: "available", Message: "available credit cannot be negative"}
	}

	plan := SetOffPlan{}
	use := func(credit *decimal.Decimal, liab *decimal.Decimal, from, to Head, used *decimal.Decimal) {
		amount := decimal.Min(*credit, *liab)
		if !amount.IsPositive() {
			return
		}
		*credit = credit.Sub(amount)
		*liab = liab.Sub(amount)
		*used = used.Add(amount)
		plan.Steps = append(plan.Steps, SetOffStep{CreditHead: from, LiabilityHead: to, Amount: amount})
	}

	cr := available
	li := liability
	use(&cr.IGST, &li.IGST, HeadIGST, HeadIGST, &plan.CreditUsed.IGST)
	use(&cr.IGST, &li.CGST, HeadIGST, HeadCGST, &plan.CreditUsed.IGST)
	use(&cr.IGST, &li.SGST, HeadIGST, HeadSGST, &plan.CreditUsed.IGST)
	use(&cr.CGST, &li.CGST, HeadCGST, HeadCGST, &plan.CreditUsed.CGST)
	use(&cr.CGST, &li.IGST, HeadCGST, HeadIGST, &plan.CreditUsed.CGST)
	use(&cr.SGST, &li.SGST, HeadSGST, HeadSGST, &plan.CreditUsed.SGST)
	use(&cr.SGST, &li.IGST, HeadSGST, HeadIGST, &plan.CreditUsed.SGST)
	use(&cr.Cess, &li.Cess, HeadCess, HeadCess, &plan.CreditUsed.Cess)

	plan.CreditRemaining = cr
	plan.CashPayable = li
	return plan, nil
}
