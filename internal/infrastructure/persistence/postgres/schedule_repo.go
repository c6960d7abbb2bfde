package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/model"
	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/valueobject"
)

// ScheduleRepo implements port.ScheduleRepository.
type ScheduleRepo struct {
	pool *pgxpool.Pool
}

// NewScheduleRepo creates a new PostgreSQL-backed schedule repository.
func NewScheduleRepo(pool *pgxpool.Pool) *ScheduleRepo {
	return &ScheduleRepo{pool: pool}
}

// SaveSchedule upserts the full schedule for a loan in one transaction.
func (r *ScheduleRepo) SaveSchedule(ctx context.Context, tenantID, loanID string, entries []model.EMIScheduleEntry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO emi_schedule_entries (
			loan_id, tenant_id, emi_number, due_date,
			amount, principal_amount, interest_amount, outstanding_principal,
			status, paid_date, paid_amount, late_fee
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		ON CONFLICT (loan_id, emi_number) DO UPDATE SET
			status      = EXCLUDED.status,
			paid_date   = EXCLUDED.paid_date,
			paid_amount = EXCLUDED.paid_amount,
			late_fee    = EXCLUDED.late_fee
	`
	for _, e := range entries {
		_, err := tx.Exec(ctx, query,
			loanID, tenantID, e.EMINumber, e.DueDate,
			e.Amount, e.PrincipalAmount, e.InterestAmount, e.OutstandingPrincipal,
			e.Status.String(), e.PaidDate, e.PaidAmount, e.LateFee,
		)
		if err != nil {
			return fmt.Errorf("save schedule entry %d: %w", e.EMINumber, err)
		}
	}

	return tx.Commit(ctx)
}

// FindByLoanID retrieves a loan's schedule ordered by EMI number.
func (r *ScheduleRepo) FindByLoanID(ctx context.Context, tenantID, loanID string) ([]model.EMIScheduleEntry, error) {
	query := `
		SELECT emi_number, due_date,
		       amount, principal_amount, interest_amount, outstanding_principal,
		       status, paid_date, paid_amount, late_fee
		FROM emi_schedule_entries
		WHERE tenant_id = $1 AND loan_id = $2
		ORDER BY emi_number
	`
	rows, err := r.pool.Query(ctx, query, tenantID, loanID)
	if err != nil {
		return nil, fmt.Errorf("query schedule: %w", err)
	}
	defer rows.Close()

	var entries []model.EMIScheduleEntry
	for rows.Next() {
		var (
			e         model.EMIScheduleEntry
			statusStr string
		)
		err := rows.Scan(
			&e.EMINumber, &e.DueDate,
			&e.Amount, &e.PrincipalAmount, &e.InterestAmount, &e.OutstandingPrincipal,
			&statusStr, &e.PaidDate, &e.PaidAmount, &e.LateFee,
		)
		if err != nil {
			return nil, fmt.Errorf("scan schedule entry: %w", err)
		}

		status, err := valueobject.NewEMIStatus(statusStr)
		if err != nil {
			return nil, fmt.Errorf("parse emi status: %w", err)
		}
		e.Status = status
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
