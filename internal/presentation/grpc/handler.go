package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/propstead/financing-service/internal/application/dto"
	"github.com/propstead/financing-service/internal/application/usecase"
	"github.com/propstead/financing-service/internal/domain/model"
)

// FinancingHandler exposes the financing operations over gRPC.
type FinancingHandler struct {
	UnimplementedFinancingServiceServer

	computeAmortization *usecase.ComputeAmortizationUseCase
	rankOptions         *usecase.RankFinancingOptionsUseCase
	evaluatePrequal     *usecase.EvaluatePreQualificationUseCase
	evaluateCreditRisk  *usecase.EvaluateCreditRiskUseCase
}

// NewFinancingHandler creates a handler with all use-case dependencies.
func NewFinancingHandler(
	computeAmortization *usecase.ComputeAmortizationUseCase,
	rankOptions *usecase.RankFinancingOptionsUseCase,
	evaluatePrequal *usecase.EvaluatePreQualificationUseCase,
	evaluateCreditRisk *usecase.EvaluateCreditRiskUseCase,
) *FinancingHandler {
	return &FinancingHandler{
		computeAmortization: computeAmortization,
		rankOptions:         rankOptions,
		evaluatePrequal:     evaluatePrequal,
		evaluateCreditRisk:  evaluateCreditRisk,
	}
}

// ComputeAmortization handles a mortgage computation request.
func (h *FinancingHandler) ComputeAmortization(ctx context.Context, req *ComputeAmortizationRequest) (*ComputeAmortizationResponse, error) {
	loanAmount, err := parseAmount("loan_amount", req.LoanAmount)
	if err != nil {
		return nil, err
	}
	tax, err := parseOptionalAmount("annual_tax", req.AnnualTax)
	if err != nil {
		return nil, err
	}
	insurance, err := parseOptionalAmount("annual_insurance", req.AnnualInsurance)
	if err != nil {
		return nil, err
	}
	pmi, err := parseOptionalAmount("annual_pmi", req.AnnualPMI)
	if err != nil {
		return nil, err
	}
	hoa, err := parseOptionalAmount("annual_hoa", req.AnnualHOA)
	if err != nil {
		return nil, err
	}

	ucReq := dto.ComputeAmortizationRequest{
		LoanAmount:      loanAmount,
		AnnualRatePct:   req.AnnualRatePct,
		TermYears:       req.TermYears,
		AnnualTax:       tax,
		AnnualInsurance: insurance,
		AnnualPMI:       pmi,
		AnnualHOA:       hoa,
		IncludeBiWeekly: req.IncludeBiWeekly,
	}

	if req.StartDate != "" {
		startDate, err := time.Parse(time.RFC3339, req.StartDate)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid start_date: %v", err)
		}
		ucReq.StartDate = startDate
	}

	if req.Refinancing != nil {
		cost, err := parseOptionalAmount("refinancing_cost", req.Refinancing.RefinancingCost)
		if err != nil {
			return nil, err
		}
		ucReq.Refinancing = &dto.RefinancingInput{
			NewRatePct:      req.Refinancing.NewRatePct,
			NewTermYears:    req.Refinancing.NewTermYears,
			RefinancingCost: cost,
		}
	}

	if req.ARM != nil {
		ucReq.ARM = &dto.ARMInput{
			InitialTermYears: req.ARM.InitialTermYears,
			PeriodicCapPct:   req.ARM.PeriodicCapPct,
			LifetimeCapPct:   req.ARM.LifetimeCapPct,
			IndexRatePct:     req.ARM.IndexRatePct,
			MarginPct:        req.ARM.MarginPct,
		}
	}

	resp, err := h.computeAmortization.Execute(ctx, ucReq)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &ComputeAmortizationResponse{Result: resp}, nil
}

// RankFinancingOptions handles an option ranking request.
func (h *FinancingHandler) RankFinancingOptions(ctx context.Context, req *RankFinancingOptionsRequest) (*RankFinancingOptionsResponse, error) {
	loanAmount, err := parseAmount("loan_amount", req.LoanAmount)
	if err != nil {
		return nil, err
	}
	downPayment, err := parseOptionalAmount("down_payment", req.DownPayment)
	if err != nil {
		return nil, err
	}
	propertyValue, err := parseAmount("property_value", req.PropertyValue)
	if err != nil {
		return nil, err
	}

	resp, err := h.rankOptions.Execute(ctx, dto.RankOptionsRequest{
		LoanAmount:    loanAmount,
		DownPayment:   downPayment,
		PropertyValue: propertyValue,
		CreditScore:   req.CreditScore,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &RankFinancingOptionsResponse{Options: resp.Options}, nil
}

// EvaluatePreQualification handles a pre-qualification request.
func (h *FinancingHandler) EvaluatePreQualification(ctx context.Context, req *EvaluatePreQualificationRequest) (*EvaluatePreQualificationResponse, error) {
	if req.BorrowerID == "" {
		return nil, status.Error(codes.InvalidArgument, "borrower_id is required")
	}

	resp, err := h.evaluatePrequal.Execute(ctx, dto.PreQualificationRequest{BorrowerID: req.BorrowerID})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &EvaluatePreQualificationResponse{Result: resp}, nil
}

// EvaluateCreditRisk handles a credit assessment request.
func (h *FinancingHandler) EvaluateCreditRisk(ctx context.Context, req *EvaluateCreditRiskRequest) (*EvaluateCreditRiskResponse, error) {
	if req.BorrowerID == "" {
		return nil, status.Error(codes.InvalidArgument, "borrower_id is required")
	}

	resp, err := h.evaluateCreditRisk.Execute(ctx, dto.CreditRiskRequest{BorrowerID: req.BorrowerID})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &EvaluateCreditRiskResponse{Result: resp}, nil
}

func parseAmount(field, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, status.Errorf(codes.InvalidArgument, "invalid %s: %v", field, err)
	}
	return d, nil
}

// parseOptionalAmount treats an empty string as zero.
func parseOptionalAmount(field, raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	return parseAmount(field, raw)
}

// toStatusError maps domain errors onto gRPC status codes.
func toStatusError(err error) error {
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, model.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, model.ErrArithmeticOverflow):
		return status.Error(codes.OutOfRange, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
