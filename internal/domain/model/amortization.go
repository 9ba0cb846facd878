package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AmortizationEntry is one period of a repayment schedule. Entries form an
// ordered sequence in which RemainingBalance is non-increasing and reaches
// zero at or before the final entry.
type AmortizationEntry struct {
	PaymentDate         time.Time
	Principal           decimal.Decimal
	Interest            decimal.Decimal
	Total               decimal.Decimal
	RemainingBalance    decimal.Decimal
	CumulativeInterest  decimal.Decimal
	CumulativePrincipal decimal.Decimal
	PaymentNumber       int
}

// MortgageBreakdown bundles the base loan payment with monthly escrow items
// into the borrower's total monthly obligation.
type MortgageBreakdown struct {
	LoanPayment      decimal.Decimal
	MonthlyTax       decimal.Decimal
	MonthlyInsurance decimal.Decimal
	MonthlyPMI       decimal.Decimal
	MonthlyHOA       decimal.Decimal
	TotalMonthly     decimal.Decimal
	TotalInterest    decimal.Decimal
	Schedule         []AmortizationEntry
}

// AffordabilityResult is the output of inverting the annuity formula against
// a borrower's income. Recommended figures apply a conservative multiplier to
// the theoretical maximum.
type AffordabilityResult struct {
	MaxLoanAmount            decimal.Decimal
	MaxPropertyValue         decimal.Decimal
	MaxMonthlyPayment        decimal.Decimal
	RecommendedLoanAmount    decimal.Decimal
	RecommendedPropertyValue decimal.Decimal
}

// RefinancingAnalysis compares an existing loan with a refinanced
// alternative. BreakEvenMonths is a finite sentinel (zero) when the
// refinancing never pays for itself.
type RefinancingAnalysis struct {
	CurrentPayment  decimal.Decimal
	NewPayment      decimal.Decimal
	MonthlySavings  decimal.Decimal
	TotalSavings    decimal.Decimal
	BreakEvenMonths float64
	IsBeneficial    bool
}

// BiWeeklyAnalysis is the outcome of simulating repayment at half the monthly
// payment every two weeks.
type BiWeeklyAnalysis struct {
	BiWeeklyPayment    decimal.Decimal
	TotalInterestSaved decimal.Decimal
	TimeSavedMonths    int
}

// ARMAnalysis describes the two phases of an adjustable-rate mortgage: the
// initial fixed period and the rate-adjusted remainder.
type ARMAnalysis struct {
	InitialPayment  decimal.Decimal
	InitialRatePct  float64
	BalanceAtReset  decimal.Decimal
	AdjustedPayment decimal.Decimal
	AdjustedRatePct float64
	RemainingMonths int
	TotalSavings    decimal.Decimal
}
