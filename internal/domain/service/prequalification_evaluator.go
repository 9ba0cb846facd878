package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/propstead/financing-service/internal/domain/model"
)

// Fixed pre-qualification policy constants.
const (
	prequalMaxDTIPct   = 28.0
	prequalBaseRatePct = 4.5
	prequalTermYears   = 30
	prequalMinScore    = 620
	prequalCondScore   = 680
	prequalMaxLTVPct   = 95.0
)

// Condition messages attached to conditional decisions, in rule order.
const (
	conditionDTI  = "Debt-to-income ratio exceeds 28%"
	conditionFICO = "Credit score below 680"
	conditionLTV  = "Loan-to-value ratio exceeds 95%"
)

// PreQualificationEvaluator produces qualification decisions and credit
// assessments from a borrower profile. All decisions are deterministic and
// computed fresh per call.
type PreQualificationEvaluator struct {
	engine *AmortizationEngine
	scorer *CreditRiskScorer
	now    func() time.Time
}

// NewPreQualificationEvaluator wires the evaluator's collaborators.
func NewPreQualificationEvaluator(engine *AmortizationEngine, scorer *CreditRiskScorer) *PreQualificationEvaluator {
	return &PreQualificationEvaluator{
		engine: engine,
		scorer: scorer,
		now:    time.Now,
	}
}

// Evaluate runs the pre-qualification ladder for a borrower. Rules fire in a
// fixed order; later rules add conditions or downgrade Qualified to
// Conditional, and only the minimum-credit rule forces NotQualified.
func (e *PreQualificationEvaluator) Evaluate(borrower model.BorrowerProfile) (model.PreQualificationResult, error) {
	if err := borrower.Validate(); err != nil {
		return model.PreQualificationResult{}, err
	}

	dti, err := e.engine.DebtToIncome(borrower.MonthlyDebt, borrower.MonthlyGrossIncome)
	if err != nil {
		return model.PreQualificationResult{}, err
	}

	maxLoan, err := e.engine.MaxLoanAmount(
		borrower.MonthlyGrossIncome, prequalMaxDTIPct, borrower.MonthlyDebt,
		prequalBaseRatePct, prequalTermYears,
		decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero,
	)
	if err != nil {
		return model.PreQualificationResult{}, err
	}

	_, estimatedRate := e.scorer.Tier(borrower.CreditScore)

	payment := decimal.Zero
	if maxLoan.GreaterThan(decimal.Zero) {
		payment, err = e.engine.MonthlyPayment(maxLoan, estimatedRate, prequalTermYears)
		if err != nil {
			return model.PreQualificationResult{}, err
		}
	}

	// LTV assumes the borrower buys at max loan plus their down payment.
	ltv := 0.0
	denominator := maxLoan.Add(borrower.DownPayment)
	if denominator.GreaterThan(decimal.Zero) {
		ltv = maxLoan.InexactFloat64() / denominator.InexactFloat64() * 100
	}

	status := model.StatusQualified
	var conditions []string

	if dti > prequalMaxDTIPct {
		status = model.StatusConditional
		conditions = append(conditions, conditionDTI)
	}

	if borrower.CreditScore < prequalMinScore {
		// Overrides any prior Conditional state.
		status = model.StatusNotQualified
	} else if borrower.CreditScore < prequalCondScore {
		status = model.StatusConditional
		conditions = append(conditions, conditionFICO)
	}

	if ltv > prequalMaxLTVPct {
		if status == model.StatusQualified {
			status = model.StatusConditional
		}
		conditions = append(conditions, conditionLTV)
	}

	issuedAt := e.now().UTC()
	return model.PreQualificationResult{
		ID:                      uuid.NewString(),
		BorrowerID:              borrower.BorrowerID,
		Status:                  status,
		EstimatedMaxLoanAmount:  maxLoan,
		EstimatedRatePct:        estimatedRate,
		EstimatedMonthlyPayment: payment,
		DebtToIncomePct:         dti,
		LoanToValuePct:          ltv,
		Conditions:              conditions,
		IssuedAt:                issuedAt,
		ValidUntil:              issuedAt.Add(model.PreQualificationValidity),
	}, nil
}

// CreditAssessment breaks a borrower's credit standing into the fixed-weight
// factor model (weights sum to 100) and attaches the tier-based rate
// estimate.
func (e *PreQualificationEvaluator) CreditAssessment(borrower model.BorrowerProfile) (model.CreditAssessment, error) {
	if err := borrower.Validate(); err != nil {
		return model.CreditAssessment{}, err
	}

	tier, estimatedRate := e.scorer.Tier(borrower.CreditScore)
	score := borrower.CreditScore

	factors := []model.CreditFactor{
		{Name: "payment_history", Weight: 35, Direction: factorDirection(score, 700, 640)},
		{Name: "credit_utilization", Weight: 30, Direction: factorDirection(score, 720, 660)},
		{Name: "history_length", Weight: 15, Direction: factorDirection(score, 740, 680)},
		{Name: "credit_mix", Weight: 10, Direction: factorDirection(score, 700, 620)},
		{Name: "new_credit", Weight: 10, Direction: factorDirection(score, 680, 600)},
	}

	return model.CreditAssessment{
		BorrowerID:       borrower.BorrowerID,
		CreditScore:      score,
		Tier:             tier,
		EstimatedRatePct: estimatedRate,
		Factors:          factors,
		AssessedAt:       e.now().UTC(),
	}, nil
}

// factorDirection grades a factor from the overall score against
// factor-specific thresholds.
func factorDirection(score, positiveAt, neutralAt int) model.FactorDirection {
	switch {
	case score >= positiveAt:
		return model.FactorPositive
	case score >= neutralAt:
		return model.FactorNeutral
	default:
		return model.FactorNegative
	}
}
