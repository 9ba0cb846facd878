package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/propstead/financing-service/internal/application/dto"
	"github.com/propstead/financing-service/internal/domain/event"
	"github.com/propstead/financing-service/internal/domain/port"
	"github.com/propstead/financing-service/internal/domain/service"
)

// Pre-qualification affordability detail uses the same fixed policy as the
// decision itself.
const (
	affordabilityMaxDTIPct = 28.0
	affordabilityRatePct   = 4.5
	affordabilityTermYears = 30
)

// EvaluatePreQualificationUseCase produces a qualification decision for a
// borrower and publishes it.
type EvaluatePreQualificationUseCase struct {
	profiles  port.BorrowerProfileSource
	engine    *service.AmortizationEngine
	evaluator *service.PreQualificationEvaluator
	publisher port.EventPublisher
	logger    *slog.Logger
}

// NewEvaluatePreQualificationUseCase wires dependencies.
func NewEvaluatePreQualificationUseCase(
	profiles port.BorrowerProfileSource,
	engine *service.AmortizationEngine,
	evaluator *service.PreQualificationEvaluator,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *EvaluatePreQualificationUseCase {
	return &EvaluatePreQualificationUseCase{
		profiles:  profiles,
		engine:    engine,
		evaluator: evaluator,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute fetches the borrower profile, evaluates pre-qualification and
// attaches the affordability detail consumers render alongside the decision.
func (uc *EvaluatePreQualificationUseCase) Execute(ctx context.Context, req dto.PreQualificationRequest) (dto.PreQualificationResponse, error) {
	borrower, err := uc.profiles.ProfileByID(ctx, req.BorrowerID)
	if err != nil {
		return dto.PreQualificationResponse{}, fmt.Errorf("fetch borrower profile: %w", err)
	}

	result, err := uc.evaluator.Evaluate(borrower)
	if err != nil {
		return dto.PreQualificationResponse{}, fmt.Errorf("evaluate pre-qualification: %w", err)
	}

	affordability, err := uc.engine.Affordability(
		borrower.MonthlyGrossIncome, affordabilityMaxDTIPct, borrower.MonthlyDebt,
		borrower.DownPayment, affordabilityRatePct, affordabilityTermYears,
		decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero,
	)
	if err != nil {
		return dto.PreQualificationResponse{}, fmt.Errorf("affordability: %w", err)
	}

	if err := uc.publisher.Publish(ctx, event.NewPreQualificationIssued(result)); err != nil {
		uc.logger.Warn("publish pre-qualification event failed", "error", err, "borrower_id", req.BorrowerID)
	}

	return dto.PreQualificationResponse{
		Result:        result,
		Affordability: affordability,
	}, nil
}
