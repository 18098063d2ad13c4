package itc

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

func validInput(lines ...domain.LineItem) Input {
	return Input{
		VendorType:    domain.VendorRegular,
		InvoiceValid:  true,
		GoodsReceived: true,
		Lines:         lines,
	}
}

func TestEvaluate_FullyEligible(t *testing.T) {
	res, err := Evaluate(validInput(
		domain.LineItem{Category: domain.CreditInputs, TaxAmount: d("1800")},
		domain.LineItem{Category: domain.CreditInputServices, TaxAmount: d("900")},
		domain.LineItem{Category: domain.CreditCapitalGoods, TaxAmount: d("5000")},
	))
	require.NoError(t, err)

	assert.True(t, res.Eligible.Equal(d("7700")))
	assert.True(t, res.Blocked.IsZero())
	assert.True(t, res.ReversalRequired.IsZero())
	assert.True(t, res.EligibilityPercent.Equal(d("100")))
	assert.Len(t, res.Lines, 3)
}

func TestEvaluate_BlockedCategory(t *testing.T) {
	res, err := Evaluate(validInput(
		domain.LineItem{Category: domain.CreditInputs, TaxAmount: d("1000")},
		domain.LineItem{Category: domain.CreditBlocked, BlockedReason: domain.BlockedFoodAndBeverages, TaxAmount: d("500")},
	))
	require.NoError(t, err)

	assert.True(t, res.Eligible.Equal(d("1000")))
	assert.True(t, res.Blocked.Equal(d("500")))
	assert.True(t, res.EligibilityPercent.Equal(d("66.67")))
	require.Len(t, res.Reasons, 1)
	assert.Contains(t, res.Reasons[0], "section 17(5)(b)")
}

func TestEvaluate_PartialBusinessUse(t *testing.T) {
	pct := d("60")
	res, err := Evaluate(validInput(
		domain.LineItem{Category: domain.CreditInputs, BusinessUsePercent: &pct, TaxAmount: d("1000")},
	))
	require.NoError(t, err)

	assert.True(t, res.Eligible.Equal(d("600")))
	assert.True(t, res.Blocked.Equal(d("400")))
	assert.True(t, res.ReversalRequired.Equal(d("400")), "blocked share is reversal required")
	assert.True(t, res.EligibilityPercent.Equal(d("60")))
}

func TestEvaluate_CompositionVendorBlocksAll(t *testing.T) {
	in := validInput(
		domain.LineItem{Category: domain.CreditInputs, TaxAmount: d("1800")},
	)
	in.VendorType = domain.VendorComposition

	res, err := Evaluate(in)
	require.NoError(t, err)

	assert.True(t, res.Eligible.IsZero())
	assert.True(t, res.Blocked.Equal(d("1800")))
	assert.True(t, res.EligibilityPercent.IsZero())
	require.Len(t, res.Reasons, 1)
	assert.Equal(t, "composition dealer - no credit available", res.Reasons[0])
	assert.Empty(t, res.Lines, "no per-line evaluation for composition vendors")
}

func TestEvaluate_InvalidInvoiceOrGoodsNotReceived(t *testing.T) {
	t.Run("invalid_invoice", func(t *testing.T) {
		in := validInput(domain.LineItem{Category: domain.CreditInputs, TaxAmount: d("900")})
		in.InvoiceValid = false
		res, err := Evaluate(in)
		require.NoError(t, err)
		assert.True(t, res.Blocked.Equal(d("900")))
		assert.Equal(t, []string{"invoice failed validation"}, res.Reasons)
	})
	t.Run("goods_not_received", func(t *testing.T) {
		in := validInput(domain.LineItem{Category: domain.CreditInputs, TaxAmount: d("900")})
		in.GoodsReceived = false
		res, err := Evaluate(in)
		require.NoError(t, err)
		assert.True(t, res.Blocked.Equal(d("900")))
		assert.Equal(t, []string{"goods or services not received"}, res.Reasons)
	})
	t.Run("both_reasons_recorded", func(t *testing.T) {
		in := validInput(domain.LineItem{Category: domain.CreditInputs, TaxAmount: d("900")})
		in.InvoiceValid = false
		in.GoodsReceived = false
		res, err := Evaluate(in)
		require.NoError(t, err)
		assert.Len(t, res.Reasons, 2)
	})
}

func TestEvaluate_EligiblePlusBlockedEqualsTotal(t *testing.T) {
	pct := d("33.33")
	in := validInput(
		domain.LineItem{Category: domain.CreditInputs, TaxAmount: d("1234.56")},
		domain.LineItem{Category: domain.CreditBlocked, TaxAmount: d("789.01")},
		domain.LineItem{Category: domain.CreditInputServices, BusinessUsePercent: &pct, TaxAmount: d("456.78")},
	)
	res, err := Evaluate(in)
	require.NoError(t, err)

	total := d("1234.56").Add(d("789.01")).Add(d("456.78"))
	assert.True(t, res.Eligible.Add(res.Blocked).Equal(total),
		"eligible %s + blocked %s != total %s", res.Eligible, res.Blocked, total)
}

func TestEvaluate_EmptyLines(t *testing.T) {
	res, err := Evaluate(validInput())
	require.NoError(t, err)

	assert.True(t, res.Eligible.IsZero())
	assert.True(t, res.Blocked.IsZero())
	assert.True(t, res.EligibilityPercent.IsZero(), "zero denominator yields zero percent")
}

func TestEvaluate_Errors(t *testing.T) {
	t.Run("negative_line_tax", func(t *testing.T) {
		_, err := Evaluate(validInput(domain.LineItem{Category: domain.CreditInputs, TaxAmount: d("-1")}))
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
	t.Run("unknown_category", func(t *testing.T) {
		_, err := Evaluate(validInput(domain.LineItem{Category: "FANCY", TaxAmount: d("10")}))
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
	t.Run("business_use_out_of_range", func(t *testing.T) {
		pct := d("150")
		_, err := Evaluate(validInput(domain.LineItem{Category: domain.CreditInputs, BusinessUsePercent: &pct, TaxAmount: d("10")}))
		assert.ErrorIs(t, err, domain.ErrComputation)
	})
}
