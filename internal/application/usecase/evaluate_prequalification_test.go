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

func qualifiedBorrower() model.BorrowerProfile {
	return model.BorrowerProfile{
		BorrowerID:         "borrower-001",
		MonthlyGrossIncome: decimal.NewFromInt(8_000),
		MonthlyDebt:        decimal.NewFromInt(500),
		DownPayment:        decimal.NewFromInt(60_000),
		CreditScore:        745,
	}
}

func newPrequalUseCase(profiles *mockProfileSource, publisher *mockEventPublisher) *EvaluatePreQualificationUseCase {
	engine := service.NewAmortizationEngine()
	evaluator := service.NewPreQualificationEvaluator(engine, service.NewCreditRiskScorer())
	return NewEvaluatePreQualificationUseCase(profiles, engine, evaluator, publisher, testLogger())
}

func TestEvaluatePreQualification_Execute(t *testing.T) {
	profiles := &mockProfileSource{
		profileByIDFn: func(_ context.Context, id string) (model.BorrowerProfile, error) {
			assert.Equal(t, "borrower-001", id)
			return qualifiedBorrower(), nil
		},
	}
	publisher := &mockEventPublisher{}
	uc := newPrequalUseCase(profiles, publisher)

	resp, err := uc.Execute(context.Background(), dto.PreQualificationRequest{BorrowerID: "borrower-001"})
	require.NoError(t, err)

	assert.Equal(t, model.StatusQualified, resp.Result.Status)
	assert.True(t, resp.Affordability.MaxLoanAmount.GreaterThan(decimal.Zero))
	assert.True(t, resp.Affordability.RecommendedLoanAmount.LessThan(resp.Affordability.MaxLoanAmount))

	require.Len(t, publisher.published, 1)
	evt, ok := publisher.published[0].(event.PreQualificationIssued)
	require.True(t, ok)
	assert.Equal(t, "financing.prequalification.issued", evt.EventType())
	assert.Equal(t, "borrower-001", evt.BorrowerID)
	assert.Equal(t, model.StatusQualified, evt.Status)
}

func TestEvaluatePreQualification_UnknownBorrower(t *testing.T) {
	profiles := &mockProfileSource{
		profileByIDFn: func(context.Context, string) (model.BorrowerProfile, error) {
			return model.BorrowerProfile{}, model.ErrNotFound
		},
	}
	publisher := &mockEventPublisher{}
	uc := newPrequalUseCase(profiles, publisher)

	_, err := uc.Execute(context.Background(), dto.PreQualificationRequest{BorrowerID: "missing"})
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.Empty(t, publisher.published)
}

func TestEvaluatePreQualification_PublishFailureKeepsDecision(t *testing.T) {
	profiles := &mockProfileSource{
		profileByIDFn: func(context.Context, string) (model.BorrowerProfile, error) {
			return qualifiedBorrower(), nil
		},
	}
	publisher := &mockEventPublisher{
		publishFn: func(context.Context, ...event.DomainEvent) error { return errors.New("broker down") },
	}
	uc := newPrequalUseCase(profiles, publisher)

	resp, err := uc.Execute(context.Background(), dto.PreQualificationRequest{BorrowerID: "borrower-001"})
	require.NoError(t, err)
	assert.Equal(t, model.StatusQualified, resp.Result.Status)
}
