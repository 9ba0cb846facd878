package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/propstead/financing-service/internal/application/dto"
	"github.com/propstead/financing-service/internal/domain/service"
)

// ComputeAmortizationUseCase runs the mortgage computation and any requested
// companion analyses.
type ComputeAmortizationUseCase struct {
	engine *service.AmortizationEngine
}

// NewComputeAmortizationUseCase wires dependencies.
func NewComputeAmortizationUseCase(engine *service.AmortizationEngine) *ComputeAmortizationUseCase {
	return &ComputeAmortizationUseCase{engine: engine}
}

// Execute validates the request, computes the complete mortgage breakdown and
// attaches optional bi-weekly, refinancing and ARM analyses. A failed
// companion analysis fails the whole request; no partial results are
// returned.
func (uc *ComputeAmortizationUseCase) Execute(_ context.Context, req dto.ComputeAmortizationRequest) (dto.AmortizationResponse, error) {
	startDate := req.StartDate
	if startDate.IsZero() {
		startDate = time.Now().UTC()
	}

	breakdown, err := uc.engine.CompleteMortgage(
		req.LoanAmount, req.AnnualRatePct, req.TermYears,
		req.AnnualTax, req.AnnualInsurance, req.AnnualPMI, req.AnnualHOA,
		startDate,
	)
	if err != nil {
		return dto.AmortizationResponse{}, fmt.Errorf("compute mortgage: %w", err)
	}

	resp := dto.AmortizationResponse{
		LoanPayment:   breakdown.LoanPayment,
		TotalMonthly:  breakdown.TotalMonthly,
		TotalInterest: breakdown.TotalInterest,
		Schedule:      breakdown.Schedule,
	}

	if req.IncludeBiWeekly {
		biWeekly, err := uc.engine.BiWeeklySavings(req.LoanAmount, req.AnnualRatePct, req.TermYears)
		if err != nil {
			return dto.AmortizationResponse{}, fmt.Errorf("bi-weekly analysis: %w", err)
		}
		resp.BiWeekly = &biWeekly
	}

	if req.Refinancing != nil {
		refi, err := uc.engine.RefinancingSavings(
			req.LoanAmount, req.AnnualRatePct, req.TermYears,
			req.Refinancing.NewRatePct, req.Refinancing.NewTermYears,
			req.Refinancing.RefinancingCost,
		)
		if err != nil {
			return dto.AmortizationResponse{}, fmt.Errorf("refinancing analysis: %w", err)
		}
		resp.Refinancing = &refi
	}

	if req.ARM != nil {
		arm, err := uc.engine.ARMPayments(
			req.LoanAmount, req.AnnualRatePct, req.ARM.InitialTermYears,
			req.ARM.PeriodicCapPct, req.ARM.LifetimeCapPct,
			req.ARM.IndexRatePct, req.ARM.MarginPct,
			req.TermYears,
		)
		if err != nil {
			return dto.AmortizationResponse{}, fmt.Errorf("arm analysis: %w", err)
		}
		resp.ARM = &arm
	}

	return resp, nil
}
