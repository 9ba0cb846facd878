// Package memory provides an in-memory borrower profile source for
// development and tests.
package memory

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/propstead/financing-service/internal/domain/model"
)

// ProfileSource implements port.BorrowerProfileSource over a fixed map.
type ProfileSource struct {
	profiles map[string]model.BorrowerProfile
}

// NewProfileSource copies the given profiles into the source.
func NewProfileSource(profiles []model.BorrowerProfile) *ProfileSource {
	m := make(map[string]model.BorrowerProfile, len(profiles))
	for _, p := range profiles {
		m[p.BorrowerID] = p
	}
	return &ProfileSource{profiles: m}
}

// ProfileByID returns the borrower profile or ErrNotFound.
func (s *ProfileSource) ProfileByID(_ context.Context, borrowerID string) (model.BorrowerProfile, error) {
	p, ok := s.profiles[borrowerID]
	if !ok {
		return model.BorrowerProfile{}, fmt.Errorf("%w: borrower %s", model.ErrNotFound, borrowerID)
	}
	return p, nil
}

// SeedProfiles returns sample borrowers for local development.
func SeedProfiles() []model.BorrowerProfile {
	return []model.BorrowerProfile{
		{
			BorrowerID:         "borrower-001",
			MonthlyGrossIncome: decimal.NewFromInt(8_000),
			MonthlyDebt:        decimal.NewFromInt(500),
			DownPayment:        decimal.NewFromInt(60_000),
			CreditScore:        745,
		},
		{
			BorrowerID:         "borrower-002",
			MonthlyGrossIncome: decimal.NewFromInt(5_200),
			MonthlyDebt:        decimal.NewFromInt(900),
			DownPayment:        decimal.NewFromInt(20_000),
			CreditScore:        655,
		},
		{
			BorrowerID:         "borrower-003",
			MonthlyGrossIncome: decimal.NewFromInt(4_100),
			MonthlyDebt:        decimal.NewFromInt(1_400),
			DownPayment:        decimal.NewFromInt(8_000),
			CreditScore:        598,
		},
	}
}
