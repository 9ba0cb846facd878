package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PreQualificationStatus is the outcome of a pre-qualification evaluation.
type PreQualificationStatus string

const (
	StatusQualified    PreQualificationStatus = "QUALIFIED"
	StatusConditional  PreQualificationStatus = "CONDITIONAL"
	StatusNotQualified PreQualificationStatus = "NOT_QUALIFIED"
)

// PreQualificationValidity is the fixed window during which an issued
// pre-qualification remains usable.
const PreQualificationValidity = 90 * 24 * time.Hour

// PreQualificationResult is the decision issued for a borrower. Conditions
// are ordered as the rules fired; an empty list means an unconditional
// decision.
type PreQualificationResult struct {
	ID                      string
	BorrowerID              string
	Status                  PreQualificationStatus
	EstimatedMaxLoanAmount  decimal.Decimal
	EstimatedRatePct        float64
	EstimatedMonthlyPayment decimal.Decimal
	DebtToIncomePct         float64
	LoanToValuePct          float64
	Conditions              []string
	IssuedAt                time.Time
	ValidUntil              time.Time
}

// RiskTier is the qualitative credit tier used for rate estimation.
type RiskTier string

const (
	RiskTierLow    RiskTier = "LOW"
	RiskTierMedium RiskTier = "MEDIUM"
	RiskTierHigh   RiskTier = "HIGH"
)

// FactorDirection labels how a credit factor influences the assessment.
type FactorDirection string

const (
	FactorPositive FactorDirection = "POSITIVE"
	FactorNeutral  FactorDirection = "NEUTRAL"
	FactorNegative FactorDirection = "NEGATIVE"
)

// CreditFactor is one weighted component of a credit assessment. Weights
// across the full breakdown sum to 100.
type CreditFactor struct {
	Name      string
	Weight    int
	Direction FactorDirection
}

// CreditAssessment is the qualitative credit breakdown for a borrower,
// pairing the fixed-weight factor model with the risk tier and its estimated
// rate.
type CreditAssessment struct {
	BorrowerID       string
	CreditScore      int
	Tier             RiskTier
	EstimatedRatePct float64
	Factors          []CreditFactor
	AssessedAt       time.Time
}
