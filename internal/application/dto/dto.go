// Package dto defines the request/response value objects exchanged between
// the presentation layer and the application use cases. Everything here is
// serializable; display formatting is the consumer's concern.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/propstead/financing-service/internal/domain/model"
)

// RefinancingInput requests a refinancing comparison alongside an
// amortization computation.
type RefinancingInput struct {
	NewRatePct      float64         `json:"new_rate_pct"`
	NewTermYears    int             `json:"new_term_years"`
	RefinancingCost decimal.Decimal `json:"refinancing_cost"`
}

// ARMInput requests an adjustable-rate analysis alongside an amortization
// computation.
type ARMInput struct {
	InitialTermYears int     `json:"initial_term_years"`
	PeriodicCapPct   float64 `json:"periodic_cap_pct"`
	LifetimeCapPct   float64 `json:"lifetime_cap_pct"`
	IndexRatePct     float64 `json:"index_rate_pct"`
	MarginPct        float64 `json:"margin_pct"`
}

// ComputeAmortizationRequest asks for a complete mortgage computation with
// optional companion analyses. Escrow figures are annual.
type ComputeAmortizationRequest struct {
	LoanAmount      decimal.Decimal   `json:"loan_amount"`
	AnnualRatePct   float64           `json:"annual_rate_pct"`
	TermYears       int               `json:"term_years"`
	StartDate       time.Time         `json:"start_date"`
	AnnualTax       decimal.Decimal   `json:"annual_tax"`
	AnnualInsurance decimal.Decimal   `json:"annual_insurance"`
	AnnualPMI       decimal.Decimal   `json:"annual_pmi"`
	AnnualHOA       decimal.Decimal   `json:"annual_hoa"`
	IncludeBiWeekly bool              `json:"include_bi_weekly"`
	Refinancing     *RefinancingInput `json:"refinancing,omitempty"`
	ARM             *ARMInput         `json:"arm,omitempty"`
}

// AmortizationResponse bundles the mortgage breakdown with whichever
// companion analyses were requested.
type AmortizationResponse struct {
	LoanPayment   decimal.Decimal            `json:"loan_payment"`
	TotalMonthly  decimal.Decimal            `json:"total_monthly"`
	TotalInterest decimal.Decimal            `json:"total_interest"`
	Schedule      []model.AmortizationEntry  `json:"schedule"`
	BiWeekly      *model.BiWeeklyAnalysis    `json:"bi_weekly,omitempty"`
	Refinancing   *model.RefinancingAnalysis `json:"refinancing,omitempty"`
	ARM           *model.ARMAnalysis         `json:"arm,omitempty"`
}

// RankOptionsRequest asks for a ranked list of financing options.
type RankOptionsRequest struct {
	LoanAmount    decimal.Decimal `json:"loan_amount"`
	DownPayment   decimal.Decimal `json:"down_payment"`
	PropertyValue decimal.Decimal `json:"property_value"`
	CreditScore   int             `json:"credit_score"`
}

// RankOptionsResponse carries the ranked options. An empty list is a valid
// outcome.
type RankOptionsResponse struct {
	Options []model.FinancingOption `json:"options"`
}

// PreQualificationRequest asks for a qualification decision for a known
// borrower.
type PreQualificationRequest struct {
	BorrowerID string `json:"borrower_id"`
}

// PreQualificationResponse wraps the decision plus the affordability detail
// dashboards render next to it.
type PreQualificationResponse struct {
	Result        model.PreQualificationResult `json:"result"`
	Affordability model.AffordabilityResult    `json:"affordability"`
}

// CreditRiskRequest asks for a credit assessment for a known borrower.
type CreditRiskRequest struct {
	BorrowerID string `json:"borrower_id"`
}

// CreditRiskResponse wraps the assessment and whether it was served from
// cache.
type CreditRiskResponse struct {
	Assessment model.CreditAssessment `json:"assessment"`
	FromCache  bool                   `json:"from_cache"`
}
