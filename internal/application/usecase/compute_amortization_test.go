package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propstead/financing-service/internal/application/dto"
	"github.com/propstead/financing-service/internal/domain/model"
	"github.com/propstead/financing-service/internal/domain/service"
)

func newComputeUseCase() *ComputeAmortizationUseCase {
	return NewComputeAmortizationUseCase(service.NewAmortizationEngine())
}

func baseAmortizationRequest() dto.ComputeAmortizationRequest {
	return dto.ComputeAmortizationRequest{
		LoanAmount:    decimal.NewFromInt(300_000),
		AnnualRatePct: 6.0,
		TermYears:     30,
		StartDate:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestComputeAmortization_Execute(t *testing.T) {
	uc := newComputeUseCase()

	resp, err := uc.Execute(context.Background(), baseAmortizationRequest())
	require.NoError(t, err)

	assert.True(t, resp.LoanPayment.Equal(decimal.RequireFromString("1798.65")))
	assert.True(t, resp.TotalMonthly.Equal(resp.LoanPayment), "no escrow means total equals loan payment")
	require.Len(t, resp.Schedule, 360)

	assert.Nil(t, resp.BiWeekly)
	assert.Nil(t, resp.Refinancing)
	assert.Nil(t, resp.ARM)
}

func TestComputeAmortization_WithEscrow(t *testing.T) {
	uc := newComputeUseCase()

	// 4800/yr tax and 1200/yr insurance add 500 to the monthly obligation.
	req := baseAmortizationRequest()
	req.AnnualTax = decimal.NewFromInt(4_800)
	req.AnnualInsurance = decimal.NewFromInt(1_200)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	expected := resp.LoanPayment.Add(decimal.NewFromInt(500))
	assert.True(t, resp.TotalMonthly.Equal(expected))
}

func TestComputeAmortization_CompanionAnalyses(t *testing.T) {
	uc := newComputeUseCase()

	req := baseAmortizationRequest()
	req.IncludeBiWeekly = true
	req.Refinancing = &dto.RefinancingInput{
		NewRatePct:      4.5,
		NewTermYears:    30,
		RefinancingCost: decimal.NewFromInt(5_000),
	}
	req.ARM = &dto.ARMInput{
		InitialTermYears: 5,
		PeriodicCapPct:   2.0,
		LifetimeCapPct:   5.0,
		IndexRatePct:     3.0,
		MarginPct:        2.5,
	}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, resp.BiWeekly)
	assert.True(t, resp.BiWeekly.BiWeeklyPayment.GreaterThan(decimal.Zero))

	require.NotNil(t, resp.Refinancing)
	assert.True(t, resp.Refinancing.IsBeneficial)

	require.NotNil(t, resp.ARM)
	assert.Equal(t, 6.0, resp.ARM.InitialRatePct)
	assert.Equal(t, 300, resp.ARM.RemainingMonths)
}

func TestComputeAmortization_DefaultsStartDate(t *testing.T) {
	uc := newComputeUseCase()

	req := baseAmortizationRequest()
	req.StartDate = time.Time{}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, resp.Schedule)
	assert.False(t, resp.Schedule[0].PaymentDate.IsZero())
}

func TestComputeAmortization_InvalidInput(t *testing.T) {
	uc := newComputeUseCase()

	req := baseAmortizationRequest()
	req.LoanAmount = decimal.Zero

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestComputeAmortization_InvalidCompanionFailsWhole(t *testing.T) {
	uc := newComputeUseCase()

	req := baseAmortizationRequest()
	req.ARM = &dto.ARMInput{InitialTermYears: 40, PeriodicCapPct: 2, LifetimeCapPct: 5}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}
