package model

import "github.com/shopspring/decimal"

// FinancingOption is one ranked lender/product pairing for a borrower
// request. Options with a comparison score above the recommendation threshold
// are flagged as recommended.
type FinancingOption struct {
	LenderID        string
	LenderName      string
	ProductID       string
	TermYears       int
	RatePct         float64
	MonthlyPayment  decimal.Decimal
	TotalCost       decimal.Decimal
	ClosingCosts    decimal.Decimal
	ComparisonScore float64
	IsRecommended   bool
}
