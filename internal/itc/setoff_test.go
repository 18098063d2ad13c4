package itc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"niyam/internal/domain"
)

func TestApplySetOff_IGSTCreditOrder(t *testing.T) {
	plan, err := ApplySetOff(
		HeadBalances{IGST: d("1000"), CGST: d("500"), SGST: d("500")},
		HeadBalances{IGST: d("1800")},
	)
	require.NoError(t, err)

	// IGST credit clears IGST first, then CGST, then SGST.
	assert.True(t, plan.CreditUsed.IGST.Equal(d("1800")))
	assert.True(t, plan.CashPayable.IGST.IsZero())
	assert.True(t, plan.CashPayable.CGST.IsZero())
	assert.True(t, plan.CashPayable.SGST.Equal(d("200")))
	require.Len(t, plan.Steps, 3)
	assert.Equal(t, HeadIGST, plan.Steps[0].LiabilityHead)
	assert.Equal(t, HeadCGST, plan.Steps[1].LiabilityHead)
	assert.Equal(t, HeadSGST, plan.Steps[2].LiabilityHead)
}

func TestApplySetOff_CGSTAndSGSTNeverCross(t *testing.T) {
	plan, err := ApplySetOff(
		HeadBalances{CGST: d("1000"), SGST: d("1000")},
		HeadBalances{CGST: d("1500"), SGST: d("200")},
	)
	require.NoError(t, err)

	// CGST credit may not serve SGST liability: 500 CGST credit is
	// left idle while 800 SGST stays payable in cash.
	assert.True(t, plan.CashPayable.CGST.IsZero())
	assert.True(t, plan.CashPayable.SGST.Equal(d("800")))
	assert.True(t, plan.CreditRemaining.CGST.Equal(d("500")))
	for _, step := range plan.Steps {
		if step.CreditHead == HeadCGST {
			assert.NotEqual(t, HeadSGST, step.LiabilityHead)
		}
		if step.CreditHead == HeadSGST {
			assert.NotEqual(t, HeadCGST, step.LiabilityHead)
		}
	}
}

func TestApplySetOff_CGSTSpilloverToIGST(t *testing.T) {
	plan, err := ApplySetOff(
		HeadBalances{IGST: d("300"), CGST: d("100")},
		HeadBalances{CGST: d("500")},
	)
	require.NoError(t, err)

	assert.True(t, plan.CashPayable.IGST.IsZero())
	assert.True(t, plan.CashPayable.CGST.IsZero())
	assert.True(t, plan.CreditRemaining.CGST.Equal(d("100")))
}

func TestApplySetOff_CessOnlyAgainstCess(t *testing.T) {
	plan, err := ApplySetOff(
		HeadBalances{IGST: d("1000"), Cess: d("100")},
		HeadBalances{Cess: d("500")},
	)
	require.NoError(t, err)

	assert.True(t, plan.CashPayable.IGST.Equal(d("1000")), "cess credit never serves IGST")
	assert.True(t, plan.CashPayable.Cess.IsZero())
	assert.True(t, plan.CreditRemaining.Cess.Equal(d("400")))
}

func TestApplySetOff_NegativeInput(t *testing.T) {
	_, err := ApplySetOff(HeadBalances{IGST: d("-1")}, HeadBalances{})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = ApplySetOff(HeadBalances{}, HeadBalances{CGST: d("-1")})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBuildRegister(t *testing.T) {
	reg, err := BuildRegister(
		HeadBalances{IGST: d("1000")},
		[]PeriodCredit{
			{Period: "042025", Credited: HeadBalances{IGST: d("500"), CGST: d("200")}, Utilized: HeadBalances{IGST: d("300")}},
			{Period: "052025", Credited: HeadBalances{CGST: d("100")}, Reversed: HeadBalances{CGST: d("50")}},
		},
	)
	require.NoError(t, err)

	assert.True(t, reg.Closing.IGST.Equal(d("1200")))
	assert.True(t, reg.Closing.CGST.Equal(d("250")))
	assert.True(t, reg.Credited.Total().Equal(d("800")))
}

func TestBuildRegister_OverUtilizationFails(t *testing.T) {
	_, err := BuildRegister(HeadBalances{}, []PeriodCredit{
		{Period: "042025", Credited: HeadBalances{IGST: d("100")}, Utilized: HeadBalances{IGST: d("200")}},
	})
	assert.ErrorIs(t, err, domain.ErrComputation)
}

func TestBuildRegister_NegativeInputFails(t *testing.T) {
	_, err := BuildRegister(HeadBalances{IGST: d("-1")}, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = BuildRegister(HeadBalances{}, []PeriodCredit{
		{Credited: HeadBalances{SGST: d("-5")}},
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCheckClaim(t *testing.T) {
	reg := Register{Closing: HeadBalances{IGST: d("1000"), CGST: d("500")}}

	t.Run("within_balance", func(t *testing.T) {
		findings := CheckClaim(reg, HeadBalances{IGST: d("1000"), CGST: d("500")})
		assert.Empty(t, findings)
	})
	t.Run("over_claim_is_finding_not_error", func(t *testing.T) {
		findings := CheckClaim(reg, HeadBalances{IGST: d("1200"), SGST: d("10")})
		require.Len(t, findings, 2)
		for _, f := range findings {
			assert.Equal(t, domain.FindingITCExceedsAvailable, f.Code)
			assert.Equal(t, domain.FindingWarning, f.Severity)
		}
	})
}
