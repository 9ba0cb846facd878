package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propstead/financing-service/internal/application/dto"
	"github.com/propstead/financing-service/internal/domain/event"
	"github.com/propstead/financing-service/internal/domain/model"
	"github.com/propstead/financing-service/internal/domain/service"
)

func testCatalog() model.LenderCatalog {
	return model.LenderCatalog{Lenders: []model.LenderProfile{
		{
			ID:             "lender-1",
			Name:           "Lender One",
			MinLoanAmount:  decimal.NewFromInt(50_000),
			MaxLoanAmount:  decimal.NewFromInt(1_000_000),
			MinCreditScore: 640,
			MaxLTVPct:      95,
			Rating:         4.8,
			ProcessingTime: "20 days",
			Products: []model.LoanProduct{{
				ID:                "p30",
				RateType:          model.RateTypeFixed,
				MinTermYears:      30,
				MaxTermYears:      30,
				MinDownPaymentPct: 5,
				MaxDownPaymentPct: 50,
			}},
		},
	}}
}

func newRankUseCase(catalog *mockCatalogProvider, publisher *mockEventPublisher) *RankFinancingOptionsUseCase {
	matcher := service.NewFinancingOptionMatcher(service.NewAmortizationEngine(), service.NewCreditRiskScorer())
	return NewRankFinancingOptionsUseCase(catalog, matcher, publisher, testLogger())
}

func rankRequest() dto.RankOptionsRequest {
	return dto.RankOptionsRequest{
		LoanAmount:    decimal.NewFromInt(300_000),
		DownPayment:   decimal.NewFromInt(60_000),
		PropertyValue: decimal.NewFromInt(400_000),
		CreditScore:   750,
	}
}

func TestRankFinancingOptions_Execute(t *testing.T) {
	catalog := &mockCatalogProvider{
		snapshotFn: func(context.Context) (model.LenderCatalog, error) { return testCatalog(), nil },
	}
	publisher := &mockEventPublisher{}
	uc := newRankUseCase(catalog, publisher)

	resp, err := uc.Execute(context.Background(), rankRequest())
	require.NoError(t, err)
	require.Len(t, resp.Options, 1)
	assert.Equal(t, "lender-1", resp.Options[0].LenderID)

	require.Len(t, publisher.published, 1)
	evt, ok := publisher.published[0].(event.FinancingOptionsRanked)
	require.True(t, ok)
	assert.Equal(t, "financing.options.ranked", evt.EventType())
	assert.Equal(t, 1, evt.OptionCount)
	assert.Equal(t, "lender-1", evt.TopLenderID)
}

func TestRankFinancingOptions_CatalogError(t *testing.T) {
	catalogErr := errors.New("catalog unavailable")
	catalog := &mockCatalogProvider{
		snapshotFn: func(context.Context) (model.LenderCatalog, error) { return model.LenderCatalog{}, catalogErr },
	}
	publisher := &mockEventPublisher{}
	uc := newRankUseCase(catalog, publisher)

	_, err := uc.Execute(context.Background(), rankRequest())
	assert.ErrorIs(t, err, catalogErr)
	assert.Empty(t, publisher.published)
}

func TestRankFinancingOptions_PublishFailureKeepsResult(t *testing.T) {
	catalog := &mockCatalogProvider{
		snapshotFn: func(context.Context) (model.LenderCatalog, error) { return testCatalog(), nil },
	}
	publisher := &mockEventPublisher{
		publishFn: func(context.Context, ...event.DomainEvent) error { return errors.New("broker down") },
	}
	uc := newRankUseCase(catalog, publisher)

	resp, err := uc.Execute(context.Background(), rankRequest())
	require.NoError(t, err)
	assert.Len(t, resp.Options, 1)
}

func TestRankFinancingOptions_InvalidRequest(t *testing.T) {
	catalog := &mockCatalogProvider{
		snapshotFn: func(context.Context) (model.LenderCatalog, error) { return testCatalog(), nil },
	}
	uc := newRankUseCase(catalog, &mockEventPublisher{})

	req := rankRequest()
	req.LoanAmount = decimal.Zero
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestRankFinancingOptions_EmptyRankingIsPublished(t *testing.T) {
	catalog := &mockCatalogProvider{
		snapshotFn: func(context.Context) (model.LenderCatalog, error) { return model.LenderCatalog{}, nil },
	}
	publisher := &mockEventPublisher{}
	uc := newRankUseCase(catalog, publisher)

	resp, err := uc.Execute(context.Background(), rankRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.Options)

	require.Len(t, publisher.published, 1)
	evt := publisher.published[0].(event.FinancingOptionsRanked)
	assert.Equal(t, 0, evt.OptionCount)
	assert.False(t, evt.HasRecommended)
}
