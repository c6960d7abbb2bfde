package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/port"
	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/valueobject"
)

// DecisionRepo implements port.DecisionRepository. Decisions are immutable
// audit rows; saving never updates an existing evaluation.
type DecisionRepo struct {
	pool *pgxpool.Pool
}

// NewDecisionRepo creates a new PostgreSQL-backed decision repository.
func NewDecisionRepo(pool *pgxpool.Pool) *DecisionRepo {
	return &DecisionRepo{pool: pool}
}

// Save inserts one decision snapshot.
func (r *DecisionRepo) Save(ctx context.Context, d port.DecisionRecord) error {
	query := `
		INSERT INTO eligibility_decisions (
			id, tenant_id, application_id, product_id,
			decision, score, reasons, conditions, evaluated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`
	_, err := r.pool.Exec(ctx, query,
		d.ID, d.TenantID, d.ApplicationID, d.ProductID,
		d.Decision.String(), d.Score, d.Reasons, d.Conditions, d.EvaluatedAt,
	)
	if err != nil {
		return fmt.Errorf("save decision: %w", err)
	}
	return nil
}

// FindByApplicationID retrieves the most recent decision for an application.
func (r *DecisionRepo) FindByApplicationID(ctx context.Context, tenantID, applicationID string) (port.DecisionRecord, error) {
	query := `
		SELECT id, tenant_id, application_id, product_id,
		       decision, score, reasons, conditions, evaluated_at
		FROM eligibility_decisions
		WHERE tenant_id = $1 AND application_id = $2
		ORDER BY evaluated_at DESC
		LIMIT 1
	`
	var (
		d           port.DecisionRecord
		decisionStr string
	)
	err := r.pool.QueryRow(ctx, query, tenantID, applicationID).Scan(
		&d.ID, &d.TenantID, &d.ApplicationID, &d.ProductID,
		&decisionStr, &d.Score, &d.Reasons, &d.Conditions, &d.EvaluatedAt,
	)
	if err != nil {
		return port.DecisionRecord{}, fmt.Errorf("scan decision: %w", err)
	}

	decision, err := valueobject.NewDecision(decisionStr)
	if err != nil {
		return port.DecisionRecord{}, fmt.Errorf("parse decision: %w", err)
	}
	d.Decision = decision
	return d, nil
}
