package service

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/propstead/financing-service/internal/domain/model"
)

const (
	monthsPerYear = 12
	// Bi-weekly repayment uses 26 half-payments per year.
	biWeeklyPeriodsPerYear = 26
	// Extra head-room on top of the scheduled bi-weekly periods before the
	// simulation is declared divergent.
	biWeeklySlackPeriods = 52

	// Fraction of the theoretical affordability maximum recommended to
	// borrowers.
	conservativeAffordabilityFactor = 0.8
)

// AmortizationEngine is the pure numeric core of the financing service:
// payment formulas, repayment schedules, affordability inversion and the
// refinancing, bi-weekly and ARM analyses. It holds no state and is safe for
// concurrent use.
type AmortizationEngine struct{}

// NewAmortizationEngine returns a new engine instance.
func NewAmortizationEngine() *AmortizationEngine {
	return &AmortizationEngine{}
}

// MonthlyPayment computes the fixed monthly annuity payment
//
//	P * r * (1+r)^n / ((1+r)^n - 1)
//
// where r is the monthly rate and n the number of monthly periods. A zero
// rate degenerates to an even split of the principal.
func (e *AmortizationEngine) MonthlyPayment(loanAmount decimal.Decimal, annualRatePct float64, termYears int) (decimal.Decimal, error) {
	if err := validateLoan(loanAmount, annualRatePct, termYears); err != nil {
		return decimal.Zero, err
	}

	n := termYears * monthsPerYear
	if annualRatePct == 0 {
		return loanAmount.Div(decimal.NewFromInt(int64(n))).Round(2), nil
	}

	monthlyRate := annualRatePct / 100 / monthsPerYear
	factor := math.Pow(1+monthlyRate, float64(n))
	payment := loanAmount.InexactFloat64() * monthlyRate * factor / (factor - 1)
	return decimal.NewFromFloat(payment).Round(2), nil
}

// TotalInterest is the interest paid over the full term at the given monthly
// payment: payment * term * 12 - principal.
func (e *AmortizationEngine) TotalInterest(loanAmount, monthlyPayment decimal.Decimal, termYears int) decimal.Decimal {
	months := decimal.NewFromInt(int64(termYears * monthsPerYear))
	return monthlyPayment.Mul(months).Sub(loanAmount).Round(2)
}

// Schedule produces the full amortization schedule. Each period accrues
// interest on the remaining balance; the principal portion is capped so the
// balance never goes negative, and the loop ends early once the balance is
// exhausted.
func (e *AmortizationEngine) Schedule(loanAmount decimal.Decimal, annualRatePct float64, termYears int, startDate time.Time) ([]model.AmortizationEntry, error) {
	payment, err := e.MonthlyPayment(loanAmount, annualRatePct, termYears)
	if err != nil {
		return nil, err
	}

	n := termYears * monthsPerYear
	monthlyRate := decimal.NewFromFloat(annualRatePct / 100 / monthsPerYear)

	schedule := make([]model.AmortizationEntry, 0, n)
	remaining := loanAmount
	cumInterest := decimal.Zero
	cumPrincipal := decimal.Zero

	for period := 1; period <= n; period++ {
		interest := remaining.Mul(monthlyRate).Round(2)
		principal := payment.Sub(interest)

		// Final-period adjustment: never pay down more than is owed.
		if principal.GreaterThan(remaining) || period == n {
			principal = remaining
		}

		remaining = remaining.Sub(principal)
		cumInterest = cumInterest.Add(interest)
		cumPrincipal = cumPrincipal.Add(principal)

		schedule = append(schedule, model.AmortizationEntry{
			PaymentNumber:       period,
			PaymentDate:         startDate.AddDate(0, period, 0),
			Principal:           principal,
			Interest:            interest,
			Total:               principal.Add(interest),
			RemainingBalance:    remaining,
			CumulativeInterest:  cumInterest,
			CumulativePrincipal: cumPrincipal,
		})

		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
	}

	return schedule, nil
}

// CompleteMortgage bundles the loan payment with escrow items into the total
// monthly obligation. Tax, insurance, PMI and HOA figures are annual and are
// converted to monthly amounts.
func (e *AmortizationEngine) CompleteMortgage(
	loanAmount decimal.Decimal,
	annualRatePct float64,
	termYears int,
	annualTax, annualInsurance, annualPMI, annualHOA decimal.Decimal,
	startDate time.Time,
) (model.MortgageBreakdown, error) {
	payment, err := e.MonthlyPayment(loanAmount, annualRatePct, termYears)
	if err != nil {
		return model.MortgageBreakdown{}, err
	}
	schedule, err := e.Schedule(loanAmount, annualRatePct, termYears, startDate)
	if err != nil {
		return model.MortgageBreakdown{}, err
	}

	twelve := decimal.NewFromInt(monthsPerYear)
	tax := annualTax.Div(twelve).Round(2)
	insurance := annualInsurance.Div(twelve).Round(2)
	pmi := annualPMI.Div(twelve).Round(2)
	hoa := annualHOA.Div(twelve).Round(2)

	return model.MortgageBreakdown{
		LoanPayment:      payment,
		MonthlyTax:       tax,
		MonthlyInsurance: insurance,
		MonthlyPMI:       pmi,
		MonthlyHOA:       hoa,
		TotalMonthly:     payment.Add(tax).Add(insurance).Add(pmi).Add(hoa),
		TotalInterest:    e.TotalInterest(loanAmount, payment, termYears),
		Schedule:         schedule,
	}, nil
}

// LoanToValue returns loanAmount / propertyValue as a percentage.
func (e *AmortizationEngine) LoanToValue(loanAmount, propertyValue decimal.Decimal) (float64, error) {
	if propertyValue.LessThanOrEqual(decimal.Zero) {
		return 0, fmt.Errorf("%w: property value must be positive", model.ErrInvalidInput)
	}
	if loanAmount.LessThan(decimal.Zero) {
		return 0, fmt.Errorf("%w: loan amount cannot be negative", model.ErrInvalidInput)
	}
	return loanAmount.InexactFloat64() / propertyValue.InexactFloat64() * 100, nil
}

// DebtToIncome returns monthly debt payments over monthly gross income as a
// percentage.
func (e *AmortizationEngine) DebtToIncome(monthlyDebt, monthlyIncome decimal.Decimal) (float64, error) {
	if monthlyIncome.LessThanOrEqual(decimal.Zero) {
		return 0, fmt.Errorf("%w: monthly income must be positive", model.ErrInvalidInput)
	}
	if monthlyDebt.LessThan(decimal.Zero) {
		return 0, fmt.Errorf("%w: monthly debt cannot be negative", model.ErrInvalidInput)
	}
	return monthlyDebt.InexactFloat64() / monthlyIncome.InexactFloat64() * 100, nil
}

// MaxLoanAmount inverts the annuity formula: given the largest mortgage
// payment the borrower can afford (maxDTI * income - existing debt - escrow),
// it solves for the principal. Returns zero when the budget is not positive;
// an exhausted budget is a valid outcome, not an error.
func (e *AmortizationEngine) MaxLoanAmount(
	monthlyIncome decimal.Decimal,
	maxDTIPct float64,
	monthlyDebt decimal.Decimal,
	annualRatePct float64,
	termYears int,
	monthlyEscrow ...decimal.Decimal,
) (decimal.Decimal, error) {
	if monthlyIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: monthly income must be positive", model.ErrInvalidInput)
	}
	if maxDTIPct <= 0 || maxDTIPct > 100 {
		return decimal.Zero, fmt.Errorf("%w: max DTI %.2f%% outside (0, 100]", model.ErrInvalidInput, maxDTIPct)
	}
	if termYears <= 0 {
		return decimal.Zero, fmt.Errorf("%w: term must be positive", model.ErrInvalidInput)
	}

	budget := monthlyIncome.Mul(decimal.NewFromFloat(maxDTIPct / 100)).Sub(monthlyDebt)
	for _, item := range monthlyEscrow {
		budget = budget.Sub(item)
	}
	if budget.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, nil
	}

	n := termYears * monthsPerYear
	if annualRatePct == 0 {
		return budget.Mul(decimal.NewFromInt(int64(n))).Round(2), nil
	}

	monthlyRate := annualRatePct / 100 / monthsPerYear
	factor := math.Pow(1+monthlyRate, float64(n))
	principal := budget.InexactFloat64() * (factor - 1) / (monthlyRate * factor)
	return decimal.NewFromFloat(principal).Round(2), nil
}

// Affordability runs the affordability inversion and derives conservative
// recommendations at a fixed fraction of the theoretical maximum. The maximum
// property value assumes the down payment is added on top of the loan.
func (e *AmortizationEngine) Affordability(
	monthlyIncome decimal.Decimal,
	maxDTIPct float64,
	monthlyDebt decimal.Decimal,
	downPayment decimal.Decimal,
	annualRatePct float64,
	termYears int,
	monthlyEscrow ...decimal.Decimal,
) (model.AffordabilityResult, error) {
	maxLoan, err := e.MaxLoanAmount(monthlyIncome, maxDTIPct, monthlyDebt, annualRatePct, termYears, monthlyEscrow...)
	if err != nil {
		return model.AffordabilityResult{}, err
	}

	budget := monthlyIncome.Mul(decimal.NewFromFloat(maxDTIPct / 100)).Sub(monthlyDebt)
	for _, item := range monthlyEscrow {
		budget = budget.Sub(item)
	}
	if budget.LessThan(decimal.Zero) {
		budget = decimal.Zero
	}

	conservative := decimal.NewFromFloat(conservativeAffordabilityFactor)
	recommendedLoan := maxLoan.Mul(conservative).Round(2)

	return model.AffordabilityResult{
		MaxLoanAmount:            maxLoan,
		MaxPropertyValue:         maxLoan.Add(downPayment),
		MaxMonthlyPayment:        budget.Round(2),
		RecommendedLoanAmount:    recommendedLoan,
		RecommendedPropertyValue: recommendedLoan.Add(downPayment),
	}, nil
}

// RefinancingSavings compares the current loan payment with a refinanced one.
// When the new terms do not reduce the payment, the analysis reports
// not-beneficial with a zero break-even sentinel instead of dividing by a
// non-positive number.
func (e *AmortizationEngine) RefinancingSavings(
	currentLoan decimal.Decimal,
	currentRatePct float64,
	currentTermYears int,
	newRatePct float64,
	newTermYears int,
	refinancingCost decimal.Decimal,
) (model.RefinancingAnalysis, error) {
	currentPayment, err := e.MonthlyPayment(currentLoan, currentRatePct, currentTermYears)
	if err != nil {
		return model.RefinancingAnalysis{}, err
	}
	newPayment, err := e.MonthlyPayment(currentLoan, newRatePct, newTermYears)
	if err != nil {
		return model.RefinancingAnalysis{}, err
	}
	if refinancingCost.LessThan(decimal.Zero) {
		return model.RefinancingAnalysis{}, fmt.Errorf("%w: refinancing cost cannot be negative", model.ErrInvalidInput)
	}

	monthlySavings := currentPayment.Sub(newPayment)
	newMonths := decimal.NewFromInt(int64(newTermYears * monthsPerYear))
	totalSavings := monthlySavings.Mul(newMonths).Sub(refinancingCost).Round(2)

	analysis := model.RefinancingAnalysis{
		CurrentPayment: currentPayment,
		NewPayment:     newPayment,
		MonthlySavings: monthlySavings,
		TotalSavings:   totalSavings,
	}

	if monthlySavings.LessThanOrEqual(decimal.Zero) {
		// Break-even is undefined; report a finite sentinel.
		analysis.BreakEvenMonths = 0
		analysis.IsBeneficial = false
		return analysis, nil
	}

	analysis.BreakEvenMonths = refinancingCost.InexactFloat64() / monthlySavings.InexactFloat64()
	analysis.IsBeneficial = totalSavings.GreaterThan(decimal.Zero)
	return analysis, nil
}

// BiWeeklySavings simulates paying half the monthly payment every two weeks.
// The simulation is bounded at termYears*26 + 52 periods; exceeding the bound
// means the payment cannot retire the balance and the operation fails rather
// than looping indefinitely.
func (e *AmortizationEngine) BiWeeklySavings(loanAmount decimal.Decimal, annualRatePct float64, termYears int) (model.BiWeeklyAnalysis, error) {
	monthlyPayment, err := e.MonthlyPayment(loanAmount, annualRatePct, termYears)
	if err != nil {
		return model.BiWeeklyAnalysis{}, err
	}

	biWeeklyPayment := monthlyPayment.Div(decimal.NewFromInt(2)).Round(2)
	biWeeklyRate := decimal.NewFromFloat(annualRatePct / 100 / biWeeklyPeriodsPerYear)
	maxPeriods := termYears*biWeeklyPeriodsPerYear + biWeeklySlackPeriods

	remaining := loanAmount
	totalInterest := decimal.Zero
	periods := 0

	for remaining.GreaterThan(decimal.Zero) {
		if periods >= maxPeriods {
			return model.BiWeeklyAnalysis{}, fmt.Errorf(
				"%w: bi-weekly simulation did not converge within %d periods", model.ErrArithmeticOverflow, maxPeriods)
		}

		interest := remaining.Mul(biWeeklyRate).Round(2)
		principal := biWeeklyPayment.Sub(interest)
		if principal.GreaterThan(remaining) {
			principal = remaining
		}

		remaining = remaining.Sub(principal)
		totalInterest = totalInterest.Add(interest)
		periods++
	}

	monthlyInterest := e.TotalInterest(loanAmount, monthlyPayment, termYears)
	monthsElapsed := int(math.Round(float64(periods) * monthsPerYear / biWeeklyPeriodsPerYear))
	timeSaved := termYears*monthsPerYear - monthsElapsed
	if timeSaved < 0 {
		timeSaved = 0
	}

	return model.BiWeeklyAnalysis{
		BiWeeklyPayment:    biWeeklyPayment,
		TotalInterestSaved: monthlyInterest.Sub(totalInterest).Round(2),
		TimeSavedMonths:    timeSaved,
	}, nil
}

// ARMPayments computes both phases of an adjustable-rate mortgage: the fixed
// payment over the full term at the initial rate, the balance remaining when
// the initial period ends, and the adjusted payment over the remaining term
// at the capped index rate.
//
// The adjusted rate is clamp(indexRate+margin, initialRate-periodicCap,
// initialRate+lifetimeCap). The lower bound intentionally uses the periodic
// cap and the upper bound the lifetime cap; changing that nesting changes
// behavior for extreme index movements and needs a product decision first.
func (e *AmortizationEngine) ARMPayments(
	loanAmount decimal.Decimal,
	initialRatePct float64,
	initialTermYears int,
	periodicCapPct, lifetimeCapPct float64,
	indexRatePct, marginPct float64,
	totalTermYears int,
) (model.ARMAnalysis, error) {
	if initialTermYears <= 0 || initialTermYears >= totalTermYears {
		return model.ARMAnalysis{}, fmt.Errorf(
			"%w: initial term %dy must fall inside total term %dy", model.ErrInvalidInput, initialTermYears, totalTermYears)
	}

	initialPayment, err := e.MonthlyPayment(loanAmount, initialRatePct, totalTermYears)
	if err != nil {
		return model.ARMAnalysis{}, err
	}

	// Simulate the initial fixed period month by month to find the balance at
	// the first reset.
	monthlyRate := decimal.NewFromFloat(initialRatePct / 100 / monthsPerYear)
	remaining := loanAmount
	for period := 0; period < initialTermYears*monthsPerYear; period++ {
		interest := remaining.Mul(monthlyRate).Round(2)
		principal := initialPayment.Sub(interest)
		if principal.GreaterThan(remaining) {
			principal = remaining
		}
		remaining = remaining.Sub(principal)
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
	}

	adjustedRate := clamp(indexRatePct+marginPct, initialRatePct-periodicCapPct, initialRatePct+lifetimeCapPct)
	remainingMonths := (totalTermYears - initialTermYears) * monthsPerYear
	remainingYears := totalTermYears - initialTermYears

	var adjustedPayment decimal.Decimal
	if remaining.GreaterThan(decimal.Zero) {
		adjustedPayment, err = e.MonthlyPayment(remaining, adjustedRate, remainingYears)
		if err != nil {
			return model.ARMAnalysis{}, err
		}
	}

	totalSavings := initialPayment.Sub(adjustedPayment).
		Mul(decimal.NewFromInt(int64(remainingMonths))).Round(2)

	return model.ARMAnalysis{
		InitialPayment:  initialPayment,
		InitialRatePct:  initialRatePct,
		BalanceAtReset:  remaining,
		AdjustedPayment: adjustedPayment,
		AdjustedRatePct: adjustedRate,
		RemainingMonths: remainingMonths,
		TotalSavings:    totalSavings,
	}, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func validateLoan(loanAmount decimal.Decimal, annualRatePct float64, termYears int) error {
	if loanAmount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: loan amount must be positive", model.ErrInvalidInput)
	}
	if annualRatePct < 0 {
		return fmt.Errorf("%w: rate cannot be negative", model.ErrInvalidInput)
	}
	if termYears <= 0 {
		return fmt.Errorf("%w: term must be positive", model.ErrInvalidInput)
	}
	return nil
}
