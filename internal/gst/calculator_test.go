package gst

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"niyam/internal/domain"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculate_Intrastate(t *testing.T) {
	res, err := Calculate(Input{
		TaxableAmount: d("100000"),
		Rate:          d("18"),
		Interstate:    false,
	})
	require.NoError(t, err)

	assert.True(t, res.CGST.Equal(d("9000")), "CGST = %s", res.CGST)
	assert.True(t, res.SGST.Equal(d("9000")), "SGST = %s", res.SGST)
	assert.True(t, res.IGST.IsZero())
	assert.True(t, res.TotalTax.Equal(d("18000")))
	assert.True(t, res.PayableToVendor.Equal(d("118000")))
	assert.True(t, res.PayableToGovt.IsZero())
}

func TestCalculate_Interstate(t *testing.T) {
	res, err := Calculate(Input{
		TaxableAmount: d("100000"),
		Rate:          d("18"),
		Interstate:    true,
	})
	require.NoError(t, err)

	assert.True(t, res.IGST.Equal(d("18000")))
	assert.True(t, res.CGST.IsZero())
	assert.True(t, res.SGST.IsZero())
	assert.True(t, res.TotalTax.Equal(d("18000")))
}

func TestCalculate_CGSTAlwaysEqualsSGST(t *testing.T) {
	cases := []struct{ taxable, rate string }{
		{"100000", "18"},
		{"99999.99", "18"},
		{"33333.33", "5"},
		{"0.01", "28"},
		{"12345.67", "0.25"},
	}
	for _, tc := range cases {
		res, err := Calculate(Input{TaxableAmount: d(tc.taxable), Rate: d(tc.rate)})
		require.NoError(t, err)
		assert.True(t, res.CGST.Equal(res.SGST), "taxable %s rate %s: CGST %s != SGST %s", tc.taxable, tc.rate, res.CGST, res.SGST)
		sum := res.CGST.Add(res.SGST).Add(res.IGST).Add(res.Cess)
		assert.True(t, sum.Equal(res.TotalTax), "taxable %s rate %s: components %s != total %s", tc.taxable, tc.rate, sum, res.TotalTax)
	}
}

func TestCalculate_OddPaiseRederivesTotal(t *testing.T) {
	// 18% of 100.03 is 18.0054 -> 18.01 after rounding; halving gives
	// 9.00 + 9.00, so the published total drops to 18.00.
	res, err := Calculate(Input{TaxableAmount: d("100.03"), Rate: d("18")})
	require.NoError(t, err)

	assert.True(t, res.CGST.Equal(res.SGST))
	assert.True(t, res.TotalTax.Equal(res.CGST.Add(res.SGST)))
}

func TestCalculate_Cess(t *testing.T) {
	res, err := Calculate(Input{
		TaxableAmount: d("10000"),
		Rate:          d("28"),
		CessRate:      d("12"),
		Interstate:    true,
	})
	require.NoError(t, err)

	assert.True(t, res.IGST.Equal(d("2800")))
	assert.True(t, res.Cess.Equal(d("1200")))
	assert.True(t, res.TotalTax.Equal(d("4000")))
	assert.True(t, res.PayableToVendor.Equal(d("14000")))
}

func TestCalculate_FullReverseCharge(t *testing.T) {
	res, err := Calculate(Input{
		TaxableAmount: d("100000"),
		Rate:          d("18"),
		Interstate:    true,
		RCMApplicable: true,
	})
	require.NoError(t, err)

	assert.True(t, res.TotalTax.Equal(d("18000")))
	assert.True(t, res.RCMAmount.Equal(d("18000")))
	assert.True(t, res.VendorGST.IsZero())
	assert.True(t, res.PayableToVendor.Equal(d("100000")))
	assert.True(t, res.PayableToGovt.Equal(d("18000")))
}

func TestCalculate_PartialReverseCharge(t *testing.T) {
	res, err := Calculate(Input{
		TaxableAmount: d("100000"),
		Rate:          d("18"),
		Interstate:    true,
		RCMApplicable: true,
		RCMPercent:    d("75"),
	})
	require.NoError(t, err)

	assert.True(t, res.RCMAmount.Equal(d("13500")))
	assert.True(t, res.VendorGST.Equal(d("4500")))
	assert.True(t, res.PayableToVendor.Equal(d("104500")))
	assert.True(t, res.PayableToGovt.Equal(d("13500")))
}

func TestCalculate_ZeroValues(t *testing.T) {
	t.Run("zero_taxable", func(t *testing.T) {
		res, err := Calculate(Input{TaxableAmount: decimal.Zero, Rate: d("18")})
		require.NoError(t, err)
		assert.True(t, res.TotalTax.IsZero())
		assert.True(t, res.PayableToVendor.IsZero())
	})
	t.Run("zero_rate", func(t *testing.T) {
		res, err := Calculate(Input{TaxableAmount: d("5000"), Rate: decimal.Zero})
		require.NoError(t, err)
		assert.True(t, res.TotalTax.IsZero())
		assert.True(t, res.PayableToVendor.Equal(d("5000")))
	})
}

func TestCalculate_InvalidInput(t *testing.T) {
	t.Run("negative_taxable", func(t *testing.T) {
		_, err := Calculate(Input{TaxableAmount: d("-1"), Rate: d("18")})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
	t.Run("rate_above_100", func(t *testing.T) {
		_, err := Calculate(Input{TaxableAmount: d("100"), Rate: d("101")})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrComputation)
	})
	t.Run("negative_rate", func(t *testing.T) {
		_, err := Calculate(Input{TaxableAmount: d("100"), Rate: d("-5")})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrComputation)
	})
	t.Run("rcm_percent_above_100", func(t *testing.T) {
		_, err := Calculate(Input{TaxableAmount: d("100"), Rate: d("18"), RCMApplicable: true, RCMPercent: d("120")})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrComputation)
	})
}

func TestIsInterstate(t *testing.T) {
	assert.True(t, IsInterstate("29", "07"))
	assert.False(t, IsInterstate("29", "29"))
	assert.False(t, IsInterstate("", "07"))
	assert.False(t, IsInterstate("29", ""))
}
