package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/propstead/financing-service/internal/application/dto"
	"github.com/propstead/financing-service/internal/domain/event"
	"github.com/propstead/financing-service/internal/domain/port"
	"github.com/propstead/financing-service/internal/domain/service"
)

// RankFinancingOptionsUseCase fetches the current lender catalog snapshot,
// ranks it against the borrower request and publishes the outcome.
type RankFinancingOptionsUseCase struct {
	catalog   port.LenderCatalogProvider
	matcher   *service.FinancingOptionMatcher
	publisher port.EventPublisher
	logger    *slog.Logger
}

// NewRankFinancingOptionsUseCase wires dependencies.
func NewRankFinancingOptionsUseCase(
	catalog port.LenderCatalogProvider,
	matcher *service.FinancingOptionMatcher,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *RankFinancingOptionsUseCase {
	return &RankFinancingOptionsUseCase{
		catalog:   catalog,
		matcher:   matcher,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute ranks financing options for the request. An empty result list is a
// valid, publishable outcome.
func (uc *RankFinancingOptionsUseCase) Execute(ctx context.Context, req dto.RankOptionsRequest) (dto.RankOptionsResponse, error) {
	catalog, err := uc.catalog.Snapshot(ctx)
	if err != nil {
		return dto.RankOptionsResponse{}, fmt.Errorf("fetch lender catalog: %w", err)
	}

	options, err := uc.matcher.RankOptions(ctx, service.MatchRequest{
		LoanAmount:    req.LoanAmount,
		DownPayment:   req.DownPayment,
		PropertyValue: req.PropertyValue,
		CreditScore:   req.CreditScore,
	}, catalog)
	if err != nil {
		return dto.RankOptionsResponse{}, fmt.Errorf("rank options: %w", err)
	}

	evt := event.NewFinancingOptionsRanked(req.LoanAmount, options)
	if err := uc.publisher.Publish(ctx, evt); err != nil {
		// Ranking already succeeded; a publish failure must not discard it.
		uc.logger.Warn("publish ranking event failed", "error", err, "option_count", len(options))
	}

	return dto.RankOptionsResponse{Options: options}, nil
}
