// Package postgres reads borrower profiles from PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/propstead/financing-service/internal/domain/model"
)

// ProfileRepo implements port.BorrowerProfileSource over a pgx pool.
type ProfileRepo struct {
	pool *pgxpool.Pool
}

// NewProfileRepo creates a profile reader backed by PostgreSQL.
func NewProfileRepo(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

// ProfileByID retrieves a single borrower profile.
func (r *ProfileRepo) ProfileByID(ctx context.Context, borrowerID string) (model.BorrowerProfile, error) {
	query := `
		SELECT borrower_id, monthly_gross_income, monthly_debt_payments,
		       down_payment, credit_score
		FROM borrower_profiles
		WHERE borrower_id = $1
	`
	var p model.BorrowerProfile
	err := r.pool.QueryRow(ctx, query, borrowerID).Scan(
		&p.BorrowerID, &p.MonthlyGrossIncome, &p.MonthlyDebt,
		&p.DownPayment, &p.CreditScore,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.BorrowerProfile{}, fmt.Errorf("%w: borrower %s", model.ErrNotFound, borrowerID)
	}
	if err != nil {
		return model.BorrowerProfile{}, fmt.Errorf("query borrower profile: %w", err)
	}
	return p, nil
}
