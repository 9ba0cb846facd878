// Package postgres reads the lender catalog from PostgreSQL. The catalog is
// collaborator-owned reference data; this adapter only ever selects.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/propstead/financing-service/internal/domain/model"
)

// CatalogRepo implements port.LenderCatalogProvider over a pgx pool.
type CatalogRepo struct {
	pool *pgxpool.Pool
}

// NewCatalogRepo creates a catalog reader backed by PostgreSQL.
func NewCatalogRepo(pool *pgxpool.Pool) *CatalogRepo {
	return &CatalogRepo{pool: pool}
}

// Snapshot assembles the full catalog: lenders in catalog order, each with
// its ordered fee schedule and products. Catalog order is significant — it is
// the ranking tie-break — so every query orders explicitly.
func (r *CatalogRepo) Snapshot(ctx context.Context) (model.LenderCatalog, error) {
	lenders, err := r.loadLenders(ctx)
	if err != nil {
		return model.LenderCatalog{}, err
	}

	for i := range lenders {
		fees, err := r.loadFees(ctx, lenders[i].ID)
		if err != nil {
			return model.LenderCatalog{}, err
		}
		products, err := r.loadProducts(ctx, lenders[i].ID)
		if err != nil {
			return model.LenderCatalog{}, err
		}
		lenders[i].FeeSchedule = fees
		lenders[i].Products = products
	}

	return model.LenderCatalog{Lenders: lenders}, nil
}

func (r *CatalogRepo) loadLenders(ctx context.Context) ([]model.LenderProfile, error) {
	query := `
		SELECT id, name, min_loan_amount, max_loan_amount,
		       min_credit_score, max_ltv_pct, rating, processing_time
		FROM lenders
		ORDER BY catalog_position, id
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query lenders: %w", err)
	}
	defer rows.Close()

	var lenders []model.LenderProfile
	for rows.Next() {
		var l model.LenderProfile
		var minAmount, maxAmount decimal.Decimal
		if err := rows.Scan(
			&l.ID, &l.Name, &minAmount, &maxAmount,
			&l.MinCreditScore, &l.MaxLTVPct, &l.Rating, &l.ProcessingTime,
		); err != nil {
			return nil, fmt.Errorf("scan lender: %w", err)
		}
		l.MinLoanAmount = minAmount
		l.MaxLoanAmount = maxAmount
		lenders = append(lenders, l)
	}
	return lenders, rows.Err()
}

func (r *CatalogRepo) loadFees(ctx context.Context, lenderID string) ([]model.Fee, error) {
	query := `
		SELECT name, amount
		FROM lender_fees
		WHERE lender_id = $1
		ORDER BY schedule_position
	`
	rows, err := r.pool.Query(ctx, query, lenderID)
	if err != nil {
		return nil, fmt.Errorf("query fees for %s: %w", lenderID, err)
	}
	defer rows.Close()

	var fees []model.Fee
	for rows.Next() {
		var f model.Fee
		if err := rows.Scan(&f.Name, &f.Amount); err != nil {
			return nil, fmt.Errorf("scan fee: %w", err)
		}
		fees = append(fees, f)
	}
	return fees, rows.Err()
}

func (r *CatalogRepo) loadProducts(ctx context.Context, lenderID string) ([]model.LoanProduct, error) {
	query := `
		SELECT id, rate_type, min_term_years, max_term_years,
		       min_down_payment_pct, max_down_payment_pct, eligibility_notes
		FROM loan_products
		WHERE lender_id = $1
		ORDER BY catalog_position, id
	`
	rows, err := r.pool.Query(ctx, query, lenderID)
	if err != nil {
		return nil, fmt.Errorf("query products for %s: %w", lenderID, err)
	}
	defer rows.Close()

	var products []model.LoanProduct
	for rows.Next() {
		var p model.LoanProduct
		var rateType string
		if err := rows.Scan(
			&p.ID, &rateType, &p.MinTermYears, &p.MaxTermYears,
			&p.MinDownPaymentPct, &p.MaxDownPaymentPct, &p.EligibilityNotes,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.RateType = model.RateType(rateType)
		products = append(products, p)
	}
	return products, rows.Err()
}
