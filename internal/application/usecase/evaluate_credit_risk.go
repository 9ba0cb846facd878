package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/propstead/financing-service/internal/application/dto"
	"github.com/propstead/financing-service/internal/domain/model"
	"github.com/propstead/financing-service/internal/domain/port"
	"github.com/propstead/financing-service/internal/domain/service"
)

// EvaluateCreditRiskUseCase produces a credit assessment for a borrower,
// serving repeated requests from the cache.
type EvaluateCreditRiskUseCase struct {
	profiles  port.BorrowerProfileSource
	evaluator *service.PreQualificationEvaluator
	cache     port.AssessmentCache
	cacheTTL  time.Duration
	logger    *slog.Logger
}

// NewEvaluateCreditRiskUseCase wires dependencies.
func NewEvaluateCreditRiskUseCase(
	profiles port.BorrowerProfileSource,
	evaluator *service.PreQualificationEvaluator,
	cache port.AssessmentCache,
	cacheTTL time.Duration,
	logger *slog.Logger,
) *EvaluateCreditRiskUseCase {
	return &EvaluateCreditRiskUseCase{
		profiles:  profiles,
		evaluator: evaluator,
		cache:     cache,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// Execute returns the cached assessment when present, otherwise evaluates and
// fills the cache. Cache failures degrade to a fresh evaluation.
func (uc *EvaluateCreditRiskUseCase) Execute(ctx context.Context, req dto.CreditRiskRequest) (dto.CreditRiskResponse, error) {
	key := cacheKey(req.BorrowerID)

	if raw, ok := uc.cache.Get(ctx, key); ok {
		var cached model.CreditAssessment
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return dto.CreditRiskResponse{Assessment: cached, FromCache: true}, nil
		}
		uc.logger.Warn("discarding undecodable cached assessment", "borrower_id", req.BorrowerID)
	}

	borrower, err := uc.profiles.ProfileByID(ctx, req.BorrowerID)
	if err != nil {
		return dto.CreditRiskResponse{}, fmt.Errorf("fetch borrower profile: %w", err)
	}

	assessment, err := uc.evaluator.CreditAssessment(borrower)
	if err != nil {
		return dto.CreditRiskResponse{}, fmt.Errorf("credit assessment: %w", err)
	}

	if raw, err := json.Marshal(assessment); err == nil {
		if err := uc.cache.Set(ctx, key, string(raw), uc.cacheTTL); err != nil {
			uc.logger.Warn("cache assessment failed", "error", err, "borrower_id", req.BorrowerID)
		}
	}

	return dto.CreditRiskResponse{Assessment: assessment}, nil
}

func cacheKey(borrowerID string) string {
	return "credit-assessment:" + borrowerID
}
