package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Credit score bounds per the standard FICO range.
const (
	MinCreditScore = 300
	MaxCreditScore = 850
)

// BorrowerProfile is an immutable snapshot of a borrower's financial position
// at evaluation time. It is supplied per call and never mutated by the engine.
type BorrowerProfile struct {
	BorrowerID         string
	MonthlyGrossIncome decimal.Decimal
	MonthlyDebt        decimal.Decimal
	DownPayment        decimal.Decimal
	CreditScore        int
}

// Validate checks that the profile figures are usable for an evaluation.
func (p BorrowerProfile) Validate() error {
	if p.MonthlyGrossIncome.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: monthly gross income must be positive", ErrInvalidInput)
	}
	if p.MonthlyDebt.LessThan(decimal.Zero) {
		return fmt.Errorf("%w: monthly debt payments cannot be negative", ErrInvalidInput)
	}
	if p.DownPayment.LessThan(decimal.Zero) {
		return fmt.Errorf("%w: down payment cannot be negative", ErrInvalidInput)
	}
	if p.CreditScore < MinCreditScore || p.CreditScore > MaxCreditScore {
		return fmt.Errorf("%w: credit score %d outside %d-%d", ErrInvalidInput, p.CreditScore, MinCreditScore, MaxCreditScore)
	}
	return nil
}

// LoanRequest describes a single loan to be analyzed. AnnualRatePct is zero
// when the engine is expected to derive the rate itself.
type LoanRequest struct {
	LoanAmount    decimal.Decimal
	PropertyValue decimal.Decimal
	TermYears     int
	AnnualRatePct float64
}
