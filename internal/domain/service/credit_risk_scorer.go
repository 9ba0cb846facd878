package service

import (
	"github.com/propstead/financing-service/internal/domain/model"
)

// BaseRatePct is the market baseline all rate adjustments start from.
const BaseRatePct = 4.5

// RateRuleTableVersion identifies the active adjustment rule set. Bump it
// whenever thresholds or premiums change so decisions stay auditable.
const RateRuleTableVersion = 1

// RateAdjustmentInput carries everything the adjustment rules may inspect.
type RateAdjustmentInput struct {
	CreditScore    int
	LoanToValuePct float64
	RateType       model.RateType
	TermYears      int
}

// RateRule is one entry in the ordered adjustment table. Premiums are in
// percentage points; a negative premium is a discount. Rules are cumulative,
// not mutually exclusive.
type RateRule struct {
	Name       string
	PremiumPct float64
	Applies    func(in RateAdjustmentInput) bool
}

// rateRules is evaluated top to bottom. Order is part of the contract: the
// two credit-score rules stack, so a score under 640 accumulates both
// premiums.
var rateRules = []RateRule{
	{
		Name:       "credit_score_below_680",
		PremiumPct: 0.5,
		Applies:    func(in RateAdjustmentInput) bool { return in.CreditScore < 680 },
	},
	{
		Name:       "credit_score_below_640",
		PremiumPct: 0.5,
		Applies:    func(in RateAdjustmentInput) bool { return in.CreditScore < 640 },
	},
	{
		Name:       "ltv_above_80",
		PremiumPct: 0.25,
		Applies:    func(in RateAdjustmentInput) bool { return in.LoanToValuePct > 80 },
	},
	{
		Name:       "fixed_15_year_discount",
		PremiumPct: -0.5,
		Applies: func(in RateAdjustmentInput) bool {
			return in.RateType == model.RateTypeFixed && in.TermYears == 15
		},
	},
}

// CreditRiskScorer maps a borrower's credit standing to rate premiums and a
// qualitative risk tier. Decisions are deterministic functions of the input;
// the scorer holds no state.
type CreditRiskScorer struct {
	rules []RateRule
}

// NewCreditRiskScorer returns a scorer backed by the active rule table.
func NewCreditRiskScorer() *CreditRiskScorer {
	return &CreditRiskScorer{rules: rateRules}
}

// Rules exposes the ordered rule table for auditing and tests.
func (s *CreditRiskScorer) Rules() []RateRule {
	return s.rules
}

// AdjustedRate applies every matching rule on top of the base rate and
// returns the resulting annual percentage rate.
func (s *CreditRiskScorer) AdjustedRate(in RateAdjustmentInput) float64 {
	rate := BaseRatePct
	for _, rule := range s.rules {
		if rule.Applies(in) {
			rate += rule.PremiumPct
		}
	}
	return rate
}

// Tier buckets a credit score into the qualitative risk tier used by
// pre-qualification, with its fixed estimated rate. This mapping is
// independent of the cumulative adjustment table.
func (s *CreditRiskScorer) Tier(creditScore int) (model.RiskTier, float64) {
	switch {
	case creditScore >= 740:
		return model.RiskTierLow, 4.0
	case creditScore >= 680:
		return model.RiskTierMedium, 4.5
	case creditScore >= 620:
		return model.RiskTierHigh, 5.0
	default:
		return model.RiskTierHigh, 5.5
	}
}
