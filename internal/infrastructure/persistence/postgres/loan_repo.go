package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/model"
)

// LoanRepo implements port.LoanRepository.
type LoanRepo struct {
	pool *pgxpool.Pool
}

// NewLoanRepo creates a new PostgreSQL-backed loan repository.
func NewLoanRepo(pool *pgxpool.Pool) *LoanRepo {
	return &LoanRepo{pool: pool}
}

// Save upserts a loan snapshot.
func (r *LoanRepo) Save(ctx context.Context, loan model.Loan) error {
	query := `
		INSERT INTO loans (
			id, tenant_id, product_id,
			principal, annual_rate_percent, tenure_months,
			emi_amount, disbursed_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (id) DO UPDATE SET
			emi_amount = EXCLUDED.emi_amount
	`
	_, err := r.pool.Exec(ctx, query,
		loan.ID, loan.TenantID, loan.ProductID,
		loan.Terms.Principal, loan.Terms.AnnualRatePercent, loan.Terms.TenureMonths,
		loan.EMIAmount, loan.DisbursedAt,
	)
	if err != nil {
		return fmt.Errorf("save loan: %w", err)
	}
	return nil
}

// FindByID retrieves one loan snapshot.
func (r *LoanRepo) FindByID(ctx context.Context, tenantID, id string) (model.Loan, error) {
	query := `
		SELECT id, product_id,
		       principal, annual_rate_percent, tenure_months,
		       emi_amount, disbursed_at
		FROM loans
		WHERE tenant_id = $1 AND id = $2
	`
	var loan model.Loan
	err := r.pool.QueryRow(ctx, query, tenantID, id).Scan(
		&loan.ID, &loan.ProductID,
		&loan.Terms.Principal, &loan.Terms.AnnualRatePercent, &loan.Terms.TenureMonths,
		&loan.EMIAmount, &loan.DisbursedAt,
	)
	if err != nil {
		return model.Loan{}, fmt.Errorf("scan loan: %w", err)
	}
	return loan, nil
}
