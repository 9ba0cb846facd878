// Package memory provides an in-memory lender catalog for development and
// tests. The catalog is fixed at construction; Snapshot hands out deep copies
// so callers can never mutate the backing data.
package memory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/propstead/financing-service/internal/domain/model"
)

// CatalogProvider implements port.LenderCatalogProvider over a fixed catalog.
type CatalogProvider struct {
	catalog model.LenderCatalog
}

// NewCatalogProvider wraps the given catalog.
func NewCatalogProvider(catalog model.LenderCatalog) *CatalogProvider {
	return &CatalogProvider{catalog: catalog.Clone()}
}

// Snapshot returns a deep copy of the catalog.
func (p *CatalogProvider) Snapshot(_ context.Context) (model.LenderCatalog, error) {
	return p.catalog.Clone(), nil
}

// SeedCatalog returns a representative lender catalog for local development.
func SeedCatalog() model.LenderCatalog {
	return model.LenderCatalog{
		Lenders: []model.LenderProfile{
			{
				ID:             "lender-premier",
				Name:           "Premier Home Lending",
				MinLoanAmount:  decimal.NewFromInt(50_000),
				MaxLoanAmount:  decimal.NewFromInt(1_500_000),
				MinCreditScore: 660,
				MaxLTVPct:      95,
				Rating:         4.8,
				ProcessingTime: "21-25 days",
				FeeSchedule: []model.Fee{
					{Name: "origination", Amount: decimal.NewFromInt(1_200)},
					{Name: "appraisal", Amount: decimal.NewFromInt(550)},
				},
				Products: []model.LoanProduct{
					{
						ID:                "premier-30-fixed",
						RateType:          model.RateTypeFixed,
						MinTermYears:      30,
						MaxTermYears:      30,
						MinDownPaymentPct: 5,
						MaxDownPaymentPct: 50,
						EligibilityNotes:  "standard conforming",
					},
					{
						ID:                "premier-15-fixed",
						RateType:          model.RateTypeFixed,
						MinTermYears:      15,
						MaxTermYears:      15,
						MinDownPaymentPct: 10,
						MaxDownPaymentPct: 50,
						EligibilityNotes:  "accelerated payoff",
					},
				},
			},
			{
				ID:             "lender-harbor",
				Name:           "Harbor Mutual",
				MinLoanAmount:  decimal.NewFromInt(75_000),
				MaxLoanAmount:  decimal.NewFromInt(900_000),
				MinCreditScore: 620,
				MaxLTVPct:      90,
				Rating:         4.2,
				ProcessingTime: "30-45 days",
				FeeSchedule: []model.Fee{
					{Name: "origination", Amount: decimal.NewFromInt(995)},
					{Name: "underwriting", Amount: decimal.NewFromInt(450)},
				},
				Products: []model.LoanProduct{
					{
						ID:                "harbor-30-fixed",
						RateType:          model.RateTypeFixed,
						MinTermYears:      20,
						MaxTermYears:      30,
						MinDownPaymentPct: 3,
						MaxDownPaymentPct: 40,
						EligibilityNotes:  "first-time buyer friendly",
					},
					{
						ID:                "harbor-7-1-hybrid",
						RateType:          model.RateTypeHybrid,
						MinTermYears:      30,
						MaxTermYears:      30,
						MinDownPaymentPct: 10,
						MaxDownPaymentPct: 40,
						EligibilityNotes:  "7/1 ARM, caps apply",
					},
				},
			},
			{
				ID:             "lender-summit",
				Name:           "Summit Credit Union",
				MinLoanAmount:  decimal.NewFromInt(40_000),
				MaxLoanAmount:  decimal.NewFromInt(650_000),
				MinCreditScore: 640,
				MaxLTVPct:      97,
				Rating:         4.6,
				ProcessingTime: "25-30 days",
				FeeSchedule: []model.Fee{
					{Name: "origination", Amount: decimal.NewFromInt(750)},
				},
				Products: []model.LoanProduct{
					{
						ID:                "summit-30-fixed",
						RateType:          model.RateTypeFixed,
						MinTermYears:      10,
						MaxTermYears:      30,
						MinDownPaymentPct: 5,
						MaxDownPaymentPct: 60,
						EligibilityNotes:  "member pricing",
					},
				},
			},
		},
	}
}
