package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/propstead/financing-service/internal/domain/model"
)

func TestAdjustedRate(t *testing.T) {
	scorer := NewCreditRiskScorer()

	cases := []struct {
		name     string
		in       RateAdjustmentInput
		expected float64
	}{
		{
			name: "no adjustments at baseline profile",
			in: RateAdjustmentInput{
				CreditScore: 750, LoanToValuePct: 75,
				RateType: model.RateTypeFixed, TermYears: 30,
			},
			expected: 4.5,
		},
		{
			name: "score under 680 adds half a point",
			in: RateAdjustmentInput{
				CreditScore: 670, LoanToValuePct: 75,
				RateType: model.RateTypeFixed, TermYears: 30,
			},
			expected: 5.0,
		},
		{
			name: "score under 640 stacks both credit premiums",
			in: RateAdjustmentInput{
				CreditScore: 600, LoanToValuePct: 75,
				RateType: model.RateTypeFixed, TermYears: 30,
			},
			expected: 5.5,
		},
		{
			name: "high ltv adds a quarter point",
			in: RateAdjustmentInput{
				CreditScore: 750, LoanToValuePct: 85,
				RateType: model.RateTypeFixed, TermYears: 30,
			},
			expected: 4.75,
		},
		{
			name: "fixed 15-year earns the discount",
			in: RateAdjustmentInput{
				CreditScore: 750, LoanToValuePct: 75,
				RateType: model.RateTypeFixed, TermYears: 15,
			},
			expected: 4.0,
		},
		{
			name: "hybrid 15-year earns no discount",
			in: RateAdjustmentInput{
				CreditScore: 750, LoanToValuePct: 75,
				RateType: model.RateTypeHybrid, TermYears: 15,
			},
			expected: 4.5,
		},
		{
			name: "everything stacks",
			in: RateAdjustmentInput{
				CreditScore: 600, LoanToValuePct: 90,
				RateType: model.RateTypeFixed, TermYears: 15,
			},
			expected: 4.5 + 0.5 + 0.5 + 0.25 - 0.5,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, scorer.AdjustedRate(tc.in), 1e-9)
		})
	}
}

func TestRuleTable_OrderAndVersion(t *testing.T) {
	scorer := NewCreditRiskScorer()
	rules := scorer.Rules()

	// Rule order is part of the contract; renames or reorders are breaking
	// changes that require a version bump.
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.Name
	}
	assert.Equal(t, []string{
		"credit_score_below_680",
		"credit_score_below_640",
		"ltv_above_80",
		"fixed_15_year_discount",
	}, names)
	assert.Equal(t, 1, RateRuleTableVersion)
}

func TestTier(t *testing.T) {
	scorer := NewCreditRiskScorer()

	cases := []struct {
		score        int
		expectedTier model.RiskTier
		expectedRate float64
	}{
		{780, model.RiskTierLow, 4.0},
		{740, model.RiskTierLow, 4.0},
		{739, model.RiskTierMedium, 4.5},
		{680, model.RiskTierMedium, 4.5},
		{679, model.RiskTierHigh, 5.0},
		{620, model.RiskTierHigh, 5.0},
		{619, model.RiskTierHigh, 5.5},
		{300, model.RiskTierHigh, 5.5},
	}

	for _, tc := range cases {
		tier, rate := scorer.Tier(tc.score)
		assert.Equal(t, tc.expectedTier, tier, "score %d", tc.score)
		assert.Equal(t, tc.expectedRate, rate, "score %d", tc.score)
	}
}
