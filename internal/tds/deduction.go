package tds

import (
	"fmt"
	"sort"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"niyam/internal/domain"
	"niyam/internal/money"
	"niyam/internal/taxid"
)

var hundred = decimal.NewFromInt(100)

// Statutory late-deposit charge defaults: interest per annum on the
// deducted amount and a flat per-day penalty.
var (
	DefaultAnnualInterestRate = decimal.NewFromInt(18)
	DefaultPerDiemPenalty     = decimal.NewFromInt(200)
)

// SectionThresholds holds the annual payment threshold per section
// above which deduction becomes mandatory for a vendor.
var SectionThresholds = map[domain.TDSSection]decimal.Decimal{
	domain.Section194A: decimal.NewFromInt(5000),
	domain.Section194C: decimal.NewFromInt(100000),
	domain.Section194H: decimal.NewFromInt(15000),
	domain.Section194I: decimal.NewFromInt(240000),
	domain.Section194J: decimal.NewFromInt(30000),
}

// Compute validates one deduction and fills its TDS amount:
// round2(payment x rate / 100).
func Compute(d domain.TDSDeduction) (domain.TDSDeduction, error) {
	if err := taxid.ValidatePAN(d.VendorPAN); err != nil {
		return domain.TDSDeduction{}, err
	}
	if !d.Section.Valid() {
		return domain.TDSDeduction{}, &domain.ValidationError{
			Field:   "section",
			Message: fmt.Sprintf("unknown TDS section %q", d.Section),
		}
	}
	if d.PaymentAmount.IsNegative() {
		return domain.TDSDeduction{}, &domain.ValidationError{Field: "payment_amount", Message: "payment amount cannot be negative"}
	}
	if d.Rate.IsNegative() || d.Rate.GreaterThan(hundred) {
		return domain.TDSDeduction{}, &domain.ComputationError{
			Op:      "tds.compute",
			Message: fmt.Sprintf("rate %s outside [0,100]", d.Rate),
		}
	}
	if d.PaymentDate.IsZero() {
		return domain.TDSDeduction{}, &domain.ValidationError{Field: "payment_date", Message: "payment date is required"}
	}
	if d.DepositDate != nil && d.DepositDate.Before(d.PaymentDate) {
		return domain.TDSDeduction{}, &domain.ValidationError{Field: "deposit_date", Message: "deposit date precedes payment date"}
	}
	d.TDSAmount = money.Percent(d.PaymentAmount, d.Rate)
	return d, nil
}

type thresholdKey struct {
	pan     string
	section domain.TDSSection
	fy      string
}

// ThresholdStatuses aggregates cumulative payments per vendor, section
// and financial year over the supplied history and flags thresholds
// crossed. Results are ordered by vendor, section, year.
func ThresholdStatuses(history []domain.TDSDeduction) ([]domain.ThresholdStatus, error) {
	for i, d := range history {
		if d.PaymentAmount.IsNegative() {
			return nil, &domain.ValidationError{
				Field:   fmt.Sprintf("deductions[%d].payment_amount", i),
				Message: "payment amount cannot be negative",
			}
		}
		if d.PaymentDate.IsZero() {
			return nil, &domain.ValidationError{
				Field:   fmt.Sprintf("deductions[%d].payment_date", i),
				Message: "payment date is required",
			}
		}
	}

	grouped := lo.GroupBy(history, func(d domain.TDSDeduction) thresholdKey {
		return thresholdKey{pan: d.VendorPAN, section: d.Section, fy: FinancialYear(d.PaymentDate)}
	})
	keys := lo.Keys(grouped)
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].pan != keys[j].pan {
			return keys[i].pan < keys[j].pan
		}
		if keys[i].section != keys[j].section {
			return keys[i].section < keys[j].section
		}
		return keys[i].fy < keys[j].fy
	})

	statuses := make([]domain.ThresholdStatus, 0, len(keys))
	for _, k := range keys {
		total := decimal.Zero
		for _, d := range grouped[k] {
			total = total.Add(d.PaymentAmount)
		}
		threshold := SectionThresholds[k.section]
		statuses = append(statuses, domain.ThresholdStatus{
			VendorPAN:      k.pan,
			Section:        k.section,
			FinancialYear:  k.fy,
			CumulativePaid: money.Round2(total),
			Threshold:      threshold,
			Exceeded:       !threshold.IsZero() && total.GreaterThan(threshold),
		})
	}
	return statuses, nil
}

// LateCharge computes the late-deposit interest and penalty for a
// deposit made on depositDate against a due date. Annual rate and per
// diem penalty fall back to the statutory defaults when zero.
func LateCharge(totalTDS decimal.Decimal, dueDate, depositDate time.Time, annualRatePercent, perDiemPenalty decimal.Decimal) domain.LateDepositCharge {
	if annualRatePercent.IsZero() {
		annualRatePercent = DefaultAnnualInterestRate
	}
	if perDiemPenalty.IsZero() {
		perDiemPenalty = DefaultPerDiemPenalty
	}
	daysLate := daysBetween(dueDate, depositDate)
	if daysLate < 0 {
		daysLate = 0
	}
	charge := domain.LateDepositCharge{
		DueDate:  dueDate,
		DaysLate: daysLate,
		Interest: decimal.Zero,
		Penalty:  decimal.Zero,
	}
	if daysLate == 0 {
		return charge
	}
	days := decimal.NewFromInt(int64(daysLate))
	charge.Interest = money.Round2(totalTDS.Mul(annualRatePercent).Div(hundred).Mul(days).Div(decimal.NewFromInt(365)))
	charge.Penalty = money.Round2(perDiemPenalty.Mul(days))
	return charge
}
