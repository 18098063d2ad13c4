package tds

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"niyam/internal/domain"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func deduction(pan string, section domain.TDSSection, payment, rate string, paymentDate time.Time) domain.TDSDeduction {
	return domain.TDSDeduction{
		VendorPAN:     pan,
		Section:       section,
		PaymentDate:   paymentDate,
		PaymentAmount: d(payment),
		Rate:          d(rate),
	}
}

func TestFinancialYear(t *testing.T) {
	assert.Equal(t, "2025-26", FinancialYear(date(2025, time.June, 15)))
	assert.Equal(t, "2024-25", FinancialYear(date(2025, time.March, 31)))
	assert.Equal(t, "2025-26", FinancialYear(date(2025, time.April, 1)))
	assert.Equal(t, "1999-00", FinancialYear(date(1999, time.May, 1)))
}

func TestQuarter(t *testing.T) {
	assert.Equal(t, 1, Quarter(date(2025, time.April, 1)))
	assert.Equal(t, 1, Quarter(date(2025, time.June, 30)))
	assert.Equal(t, 2, Quarter(date(2025, time.July, 1)))
	assert.Equal(t, 3, Quarter(date(2025, time.October, 15)))
	assert.Equal(t, 4, Quarter(date(2026, time.January, 1)))
	assert.Equal(t, 4, Quarter(date(2026, time.March, 31)))
}

func TestParseFinancialYear(t *testing.T) {
	start, err := ParseFinancialYear("2025-26")
	require.NoError(t, err)
	assert.Equal(t, 2025, start)

	_, err = ParseFinancialYear("2025")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = ParseFinancialYear("2025-27")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestQuarterWindow(t *testing.T) {
	start, end, err := QuarterWindow(2025, 4)
	require.NoError(t, err)
	assert.Equal(t, date(2026, time.January, 1), start)
	assert.Equal(t, date(2026, time.April, 1), end)

	_, _, err = QuarterWindow(2025, 5)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDepositDueDate(t *testing.T) {
	assert.Equal(t, date(2025, time.July, 7), DepositDueDate(date(2025, time.June, 15)))
	// March deductions get the April 30 extension.
	assert.Equal(t, date(2025, time.April, 30), DepositDueDate(date(2025, time.March, 10)))
	assert.Equal(t, date(2026, time.January, 7), DepositDueDate(date(2025, time.December, 31)))
}

func TestCompute(t *testing.T) {
	out, err := Compute(deduction("ABCDE1234F", domain.Section194J, "100000", "10", date(2025, time.June, 15)))
	require.NoError(t, err)
	assert.True(t, out.TDSAmount.Equal(d("10000")))
}

func TestCompute_Errors(t *testing.T) {
	base := deduction("ABCDE1234F", domain.Section194J, "100000", "10", date(2025, time.June, 15))

	t.Run("bad_pan", func(t *testing.T) {
		in := base
		in.VendorPAN = "NOTAPAN"
		_, err := Compute(in)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
	t.Run("unknown_section", func(t *testing.T) {
		in := base
		in.Section = "999Z"
		_, err := Compute(in)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
	t.Run("negative_payment", func(t *testing.T) {
		in := base
		in.PaymentAmount = d("-1")
		_, err := Compute(in)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
	t.Run("rate_out_of_range", func(t *testing.T) {
		in := base
		in.Rate = d("120")
		_, err := Compute(in)
		assert.ErrorIs(t, err, domain.ErrComputation)
	})
	t.Run("deposit_before_payment", func(t *testing.T) {
		in := base
		dep := date(2025, time.June, 1)
		in.DepositDate = &dep
		_, err := Compute(in)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestThresholdStatuses(t *testing.T) {
	history := []domain.TDSDeduction{
		deduction("ABCDE1234F", domain.Section194J, "20000", "10", date(2025, time.May, 1)),
		deduction("ABCDE1234F", domain.Section194J, "15000", "10", date(2025, time.June, 1)),
		deduction("ABCDE1234F", domain.Section194J, "10000", "10", date(2024, time.June, 1)),
		deduction("FGHIJ5678K", domain.Section194C, "50000", "1", date(2025, time.May, 1)),
	}

	statuses, err := ThresholdStatuses(history)
	require.NoError(t, err)
	require.Len(t, statuses, 3)

	// Ordered by PAN, section, year.
	s := statuses[1]
	assert.Equal(t, "ABCDE1234F", s.VendorPAN)
	assert.Equal(t, "2025-26", s.FinancialYear)
	assert.True(t, s.CumulativePaid.Equal(d("35000")))
	assert.True(t, s.Exceeded, "35000 crosses the 30000 194J threshold")

	assert.False(t, statuses[0].Exceeded, "prior year stays under threshold")
	assert.False(t, statuses[2].Exceeded, "50000 under the 100000 194C threshold")
}

func TestLateCharge(t *testing.T) {
	due := date(2025, time.July, 7)

	t.Run("on_time", func(t *testing.T) {
		charge := LateCharge(d("18000"), due, date(2025, time.July, 7), decimal.Zero, decimal.Zero)
		assert.Equal(t, 0, charge.DaysLate)
		assert.True(t, charge.Interest.IsZero())
		assert.True(t, charge.Penalty.IsZero())
	})

	t.Run("thirteen_days_late", func(t *testing.T) {
		charge := LateCharge(d("18000"), due, date(2025, time.July, 20), decimal.Zero, decimal.Zero)
		assert.Equal(t, 13, charge.DaysLate)
		// 18000 x 18% x 13/365 = 115.397... -> 115.40
		assert.True(t, charge.Interest.Equal(d("115.40")), "interest = %s", charge.Interest)
		assert.True(t, charge.Penalty.Equal(d("2600")), "penalty = %s", charge.Penalty)
	})

	t.Run("early_deposit_never_negative", func(t *testing.T) {
		charge := LateCharge(d("18000"), due, date(2025, time.July, 1), decimal.Zero, decimal.Zero)
		assert.Equal(t, 0, charge.DaysLate)
	})
}

func TestAggregator_Certificates(t *testing.T) {
	agg, err := NewAggregator("BLRN12345A")
	require.NoError(t, err)

	deductions := []domain.TDSDeduction{
		deduction("ABCDE1234F", domain.Section194J, "100000", "10", date(2025, time.May, 10)),
		deduction("ABCDE1234F", domain.Section194J, "50000", "10", date(2025, time.June, 10)),
		deduction("FGHIJ5678K", domain.Section194C, "80000", "2", date(2025, time.April, 20)),
		// Outside Q1, excluded.
		deduction("ABCDE1234F", domain.Section194J, "999999", "10", date(2025, time.August, 1)),
	}

	certs, err := agg.Certificates("2025-26", 1, deductions)
	require.NoError(t, err)
	require.Len(t, certs, 2)

	// Sequence assigned in vendor PAN order.
	assert.Equal(t, "BLRN12345A/2025-26/Q1/001", certs[0].CertificateNumber)
	assert.Equal(t, "ABCDE1234F", certs[0].VendorPAN)
	assert.True(t, certs[0].TotalPayment.Equal(d("150000")))
	assert.True(t, certs[0].TotalTDS.Equal(d("15000")))
	assert.Len(t, certs[0].Deductions, 2)

	assert.Equal(t, "BLRN12345A/2025-26/Q1/002", certs[1].CertificateNumber)
	assert.Equal(t, "FGHIJ5678K", certs[1].VendorPAN)
	assert.True(t, certs[1].TotalTDS.Equal(d("1600")))
}

func TestAggregator_QuarterlyReturn(t *testing.T) {
	agg, err := NewAggregator("BLRN12345A")
	require.NoError(t, err)

	late := date(2025, time.July, 20) // due July 7 for June payments
	onTime := date(2025, time.June, 5)

	d1 := deduction("ABCDE1234F", domain.Section194J, "100000", "10", date(2025, time.June, 15))
	d1.DepositDate = &late
	d2 := deduction("FGHIJ5678K", domain.Section194C, "80000", "2", date(2025, time.May, 20))
	d2.DepositDate = &onTime

	ret, err := agg.QuarterlyReturn("2025-26", 1, []domain.TDSDeduction{d1, d2})
	require.NoError(t, err)

	assert.Equal(t, "BLRN12345A", ret.TAN)
	assert.Equal(t, 2, ret.DeductionCount)
	assert.True(t, ret.TotalPayment.Equal(d("180000")))
	assert.True(t, ret.TotalTDS.Equal(d("11600")))

	require.Len(t, ret.Sections, 2)
	assert.Equal(t, domain.Section194C, ret.Sections[0].Section)
	assert.Equal(t, 1, ret.Sections[0].Count)
	assert.True(t, ret.Sections[0].TotalTDS.Equal(d("1600")))
	assert.Equal(t, domain.Section194J, ret.Sections[1].Section)

	// 13 days late: interest 10000 x 18% x 13/365 = 64.11, penalty 2600.
	assert.True(t, ret.TotalInterest.Equal(d("64.11")), "interest = %s", ret.TotalInterest)
	assert.True(t, ret.TotalPenalty.Equal(d("2600")))
	require.Len(t, ret.Findings, 1)
	assert.Equal(t, domain.FindingLateTDSDeposit, ret.Findings[0].Code)
}

func TestAggregator_InvalidTAN(t *testing.T) {
	_, err := NewAggregator("INVALID")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAggregator_InvalidPeriod(t *testing.T) {
	agg, err := NewAggregator("BLRN12345A")
	require.NoError(t, err)

	_, err = agg.QuarterlyReturn("garbage", 1, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = agg.Certificates("2025-26", 9, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
