package tds

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"niyam/internal/domain"
	"niyam/internal/money"
	"niyam/internal/taxid"
)

// Aggregator turns deduction records into certificates and quarterly
// statements for one deductor. It is immutable after construction.
type Aggregator struct {
	tan        string
	annualRate decimal.Decimal
	perDiem    decimal.Decimal
}

// NewAggregator builds an aggregator for the deduction account with
// the statutory late-deposit charge defaults.
func NewAggregator(tan string) (*Aggregator, error) {
	return NewAggregatorWithCharges(tan, DefaultAnnualInterestRate, DefaultPerDiemPenalty)
}

// NewAggregatorWithCharges builds an aggregator with explicit interest
// and penalty parameters.
func NewAggregatorWithCharges(tan string, annualRatePercent, perDiemPenalty decimal.Decimal) (*Aggregator, error) {
	if err := taxid.ValidateTAN(tan); err != nil {
		return nil, err
	}
	if annualRatePercent.IsNegative() || perDiemPenalty.IsNegative() {
		return nil, &domain.ValidationError{Field: "charges", Message: "interest rate and penalty cannot be negative"}
	}
	return &Aggregator{tan: tan, annualRate: annualRatePercent, perDiem: perDiemPenalty}, nil
}

// TAN returns the deduction account the aggregator issues under.
func (a *Aggregator) TAN() string { return a.tan }

// filterQuarter validates the period and returns the deductions whose
// payment date falls inside it, recomputed through Compute.
func (a *Aggregator) filterQuarter(financialYear string, quarter int, deductions []domain.TDSDeduction) ([]domain.TDSDeduction, error) {
	startYear, err := ParseFinancialYear(financialYear)
	if err != nil {
		return nil, err
	}
	start, end, err := QuarterWindow(startYear, quarter)
	if err != nil {
		return nil, err
	}

	var inWindow []domain.TDSDeduction
	for _, d := range deductions {
		computed, err := Compute(d)
		if err != nil {
			return nil, err
		}
		if computed.PaymentDate.Before(start) || !computed.PaymentDate.Before(end) {
			continue
		}
		inWindow = append(inWindow, computed)
	}
	return inWindow, nil
}

// Certificates issues one Form 16A-shaped certificate per vendor for
// the quarter. Certificate numbers are deterministic:
// {TAN}/{financialYear}/Q{quarter}/{sequence}, sequence assigned in
// vendor PAN order and zero-padded to three digits.
func (a *Aggregator) Certificates(financialYear string, quarter int, deductions []domain.TDSDeduction) ([]domain.TDSCertificate, error) {
	inWindow, err := a.filterQuarter(financialYear, quarter, deductions)
	if err != nil {
		return nil, err
	}

	byVendor := lo.GroupBy(inWindow, func(d domain.TDSDeduction) string { return d.VendorPAN })
	pans := lo.Keys(byVendor)
	sort.Strings(pans)

	certs := make([]domain.TDSCertificate, 0, len(pans))
	for i, pan := range pans {
		group := byVendor[pan]
		cert := domain.TDSCertificate{
			CertificateNumber: fmt.Sprintf("%s/%s/Q%d/%03d", a.tan, financialYear, quarter, i+1),
			TAN:               a.tan,
			FinancialYear:     financialYear,
			Quarter:           quarter,
			VendorPAN:         pan,
			VendorName:        group[0].VendorName,
			TotalPayment:      decimal.Zero,
			TotalTDS:          decimal.Zero,
			Deductions:        group,
		}
		for _, d := range group {
			cert.TotalPayment = cert.TotalPayment.Add(d.PaymentAmount)
			cert.TotalTDS = cert.TotalTDS.Add(d.TDSAmount)
		}
		cert.TotalPayment = money.Round2(cert.TotalPayment)
		cert.TotalTDS = money.Round2(cert.TotalTDS)
		certs = append(certs, cert)
	}
	return certs, nil
}

// QuarterlyReturn aggregates the quarter's deductions into the
// statement filed by the deductor: totals, a per-section breakdown,
// and late-deposit charges surfaced as findings.
func (a *Aggregator) QuarterlyReturn(financialYear string, quarter int, deductions []domain.TDSDeduction) (domain.TDSReturn, error) {
	inWindow, err := a.filterQuarter(financialYear, quarter, deductions)
	if err != nil {
		return domain.TDSReturn{}, err
	}

	ret := domain.TDSReturn{
		TAN:            a.tan,
		FinancialYear:  financialYear,
		Quarter:        quarter,
		DeductionCount: len(inWindow),
		TotalPayment:   decimal.Zero,
		TotalTDS:       decimal.Zero,
		TotalInterest:  decimal.Zero,
		TotalPenalty:   decimal.Zero,
	}

	bySection := lo.GroupBy(inWindow, func(d domain.TDSDeduction) domain.TDSSection { return d.Section })
	sections := lo.Keys(bySection)
	sort.Slice(sections, func(i, j int) bool { return sections[i] < sections[j] })

	for _, s := range sections {
		sum := domain.TDSSectionSummary{Section: s, Count: len(bySection[s])}
		for _, d := range bySection[s] {
			sum.TotalPayment = sum.TotalPayment.Add(d.PaymentAmount)
			sum.TotalTDS = sum.TotalTDS.Add(d.TDSAmount)
		}
		sum.TotalPayment = money.Round2(sum.TotalPayment)
		sum.TotalTDS = money.Round2(sum.TotalTDS)
		ret.Sections = append(ret.Sections, sum)
		ret.TotalPayment = ret.TotalPayment.Add(sum.TotalPayment)
		ret.TotalTDS = ret.TotalTDS.Add(sum.TotalTDS)
	}

	for _, d := range inWindow {
		if d.DepositDate == nil {
			continue
		}
		due := DepositDueDate(d.PaymentDate)
		charge := LateCharge(d.TDSAmount, due, *d.DepositDate, a.annualRate, a.perDiem)
		if charge.DaysLate == 0 {
			continue
		}
		ret.TotalInterest = ret.TotalInterest.Add(charge.Interest)
		ret.TotalPenalty = ret.TotalPenalty.Add(charge.Penalty)
		ret.Findings = append(ret.Findings, domain.Finding{
			Code:     domain.FindingLateTDSDeposit,
			Severity: domain.FindingWarning,
			Message: fmt.Sprintf("deduction %s/%s deposited %d days late: interest %s, penalty %s",
				d.VendorPAN, d.Section, charge.DaysLate, charge.Interest, charge.Penalty),
		})
	}
	return ret, nil
}
