package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propstead/financing-service/internal/domain/model"
)

func newMatcher() *FinancingOptionMatcher {
	return NewFinancingOptionMatcher(NewAmortizationEngine(), NewCreditRiskScorer())
}

func standardRequest() MatchRequest {
	return MatchRequest{
		LoanAmount:    decimal.NewFromInt(300_000),
		DownPayment:   decimal.NewFromInt(60_000), // 20%
		PropertyValue: decimal.NewFromInt(400_000), // 75% LTV
		CreditScore:   750,
	}
}

func lender(id string, minScore int, maxLTV, rating float64, processing string, products ...model.LoanProduct) model.LenderProfile {
	return model.LenderProfile{
		ID:             id,
		Name:           id,
		MinLoanAmount:  decimal.NewFromInt(50_000),
		MaxLoanAmount:  decimal.NewFromInt(1_000_000),
		MinCreditScore: minScore,
		MaxLTVPct:      maxLTV,
		Rating:         rating,
		ProcessingTime: processing,
		Products:       products,
	}
}

func thirtyYearFixed(id string) model.LoanProduct {
	return model.LoanProduct{
		ID:                id,
		RateType:          model.RateTypeFixed,
		MinTermYears:      30,
		MaxTermYears:      30,
		MinDownPaymentPct: 5,
		MaxDownPaymentPct: 50,
	}
}

func TestRankOptions_EligibilityFilters(t *testing.T) {
	matcher := newMatcher()
	req := standardRequest()

	t.Run("credit score below lender minimum", func(t *testing.T) {
		catalog := model.LenderCatalog{Lenders: []model.LenderProfile{
			lender("strict", 760, 95, 4.8, "20 days", thirtyYearFixed("p1")),
		}}
		options, err := matcher.RankOptions(context.Background(), req, catalog)
		require.NoError(t, err)
		assert.Empty(t, options, "ineligible catalog should yield an empty list, not an error")
	})

	t.Run("ltv above lender maximum", func(t *testing.T) {
		catalog := model.LenderCatalog{Lenders: []model.LenderProfile{
			lender("low-ltv", 700, 70, 4.8, "20 days", thirtyYearFixed("p1")),
		}}
		options, err := matcher.RankOptions(context.Background(), req, catalog)
		require.NoError(t, err)
		assert.Empty(t, options)
	})

	t.Run("down payment outside product band", func(t *testing.T) {
		tight := thirtyYearFixed("p1")
		tight.MinDownPaymentPct = 25 // request is at 20%
		catalog := model.LenderCatalog{Lenders: []model.LenderProfile{
			lender("tight", 700, 95, 4.8, "20 days", tight),
		}}
		options, err := matcher.RankOptions(context.Background(), req, catalog)
		require.NoError(t, err)
		assert.Empty(t, options)
	})

	t.Run("empty catalog", func(t *testing.T) {
		options, err := matcher.RankOptions(context.Background(), req, model.LenderCatalog{})
		require.NoError(t, err)
		assert.Empty(t, options)
	})
}

func TestRankOptions_PricingAndScore(t *testing.T) {
	matcher := newMatcher()
	req := standardRequest()

	catalog := model.LenderCatalog{Lenders: []model.LenderProfile{
		lender("ideal", 700, 95, 4.8, "20 days", thirtyYearFixed("p1")),
	}}

	options, err := matcher.RankOptions(context.Background(), req, catalog)
	require.NoError(t, err)
	require.Len(t, options, 1)

	opt := options[0]

	// Baseline profile: no rate adjustments fire.
	assert.Equal(t, 4.5, opt.RatePct)

	// Perfect lender: no deductions.
	assert.Equal(t, 100.0, opt.ComparisonScore)
	assert.True(t, opt.IsRecommended)

	// Flat 2% closing-cost model.
	assert.True(t, opt.ClosingCosts.Equal(decimal.NewFromInt(6_000)))

	// totalCost = payment * months + down payment.
	expectedTotal := opt.MonthlyPayment.Mul(decimal.NewFromInt(360)).Add(req.DownPayment).Round(2)
	assert.True(t, opt.TotalCost.Equal(expectedTotal))
}

func TestRankOptions_ScoreDeductions(t *testing.T) {
	matcher := newMatcher()
	req := standardRequest()
	req.CreditScore = 670 // +0.5 rate premium -> 10 point deduction

	catalog := model.LenderCatalog{Lenders: []model.LenderProfile{
		lender("slow-and-average", 600, 95, 4.0, "30-45 days", thirtyYearFixed("p1")),
	}}

	options, err := matcher.RankOptions(context.Background(), req, catalog)
	require.NoError(t, err)
	require.Len(t, options, 1)

	// 100 - 20*(5.0-4.5) - 10*(4.5-4.0) - 5 = 80
	assert.InDelta(t, 80.0, options[0].ComparisonScore, 1e-9)
	assert.False(t, options[0].IsRecommended, "score must exceed 80 to be recommended")
}

func TestRankOptions_SortedAndStable(t *testing.T) {
	matcher := newMatcher()
	req := standardRequest()

	// twin-a and twin-b produce identical scores; worse is strictly lower.
	catalog := model.LenderCatalog{Lenders: []model.LenderProfile{
		lender("worse", 600, 95, 3.5, "30-45 days", thirtyYearFixed("w1")),
		lender("twin-a", 600, 95, 4.8, "20 days", thirtyYearFixed("a1")),
		lender("twin-b", 600, 95, 4.8, "15 days", thirtyYearFixed("b1")),
	}}

	options, err := matcher.RankOptions(context.Background(), req, catalog)
	require.NoError(t, err)
	require.Len(t, options, 3)

	// Non-increasing by score.
	for i := 1; i < len(options); i++ {
		assert.GreaterOrEqual(t, options[i-1].ComparisonScore, options[i].ComparisonScore)
	}

	// Equal scores preserve catalog order: twin-a before twin-b.
	assert.Equal(t, "twin-a", options[0].LenderID)
	assert.Equal(t, "twin-b", options[1].LenderID)
	assert.Equal(t, "worse", options[2].LenderID)
}

func TestRankOptions_MultipleProductsPerLender(t *testing.T) {
	matcher := newMatcher()
	req := standardRequest()

	fifteen := model.LoanProduct{
		ID:                "p15",
		RateType:          model.RateTypeFixed,
		MinTermYears:      15,
		MaxTermYears:      15,
		MinDownPaymentPct: 10,
		MaxDownPaymentPct: 50,
	}

	catalog := model.LenderCatalog{Lenders: []model.LenderProfile{
		lender("multi", 700, 95, 4.8, "20 days", thirtyYearFixed("p30"), fifteen),
	}}

	options, err := matcher.RankOptions(context.Background(), req, catalog)
	require.NoError(t, err)
	require.Len(t, options, 2)

	// Both price below the baseline so neither is deducted; equal scores keep
	// catalog order, and the 15-year fixed carries its rate discount.
	assert.Equal(t, "p30", options[0].ProductID)
	assert.Equal(t, 4.5, options[0].RatePct)
	assert.Equal(t, "p15", options[1].ProductID)
	assert.Equal(t, 4.0, options[1].RatePct)
	assert.Equal(t, 15, options[1].TermYears)
}

func TestRankOptions_InvalidInput(t *testing.T) {
	matcher := newMatcher()

	req := standardRequest()
	req.LoanAmount = decimal.Zero
	_, err := matcher.RankOptions(context.Background(), req, model.LenderCatalog{})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}
