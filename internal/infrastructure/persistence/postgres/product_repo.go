package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/model"
)

// ProductRepo implements port.ProductRepository.
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepo creates a new PostgreSQL-backed product repository.
func NewProductRepo(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

const productColumns = `
	id, name, category, active,
	min_amount, max_amount, min_tenure, max_tenure,
	base_interest_rate, min_interest_rate, max_interest_rate,
	processing_fee_percent,
	min_credit_score, min_monthly_income, employment_types, max_dti_ratio,
	required_documents,
	prepayment_charge_rate, allow_partial_prepayment, min_partial_prepayment`

// Save upserts a product definition.
func (r *ProductRepo) Save(ctx context.Context, p model.Product) error {
	query := `
		INSERT INTO products (
			id, name, category, active,
			min_amount, max_amount, min_tenure, max_tenure,
			base_interest_rate, min_interest_rate, max_interest_rate,
			processing_fee_percent,
			min_credit_score, min_monthly_income, employment_types, max_dti_ratio,
			required_documents,
			prepayment_charge_rate, allow_partial_prepayment, min_partial_prepayment,
			updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21)
		ON CONFLICT (id) DO UPDATE SET
			name                     = EXCLUDED.name,
			category                 = EXCLUDED.category,
			active                   = EXCLUDED.active,
			min_amount               = EXCLUDED.min_amount,
			max_amount               = EXCLUDED.max_amount,
			min_tenure               = EXCLUDED.min_tenure,
			max_tenure               = EXCLUDED.max_tenure,
			base_interest_rate       = EXCLUDED.base_interest_rate,
			min_interest_rate        = EXCLUDED.min_interest_rate,
			max_interest_rate        = EXCLUDED.max_interest_rate,
			processing_fee_percent   = EXCLUDED.processing_fee_percent,
			min_credit_score         = EXCLUDED.min_credit_score,
			min_monthly_income       = EXCLUDED.min_monthly_income,
			employment_types         = EXCLUDED.employment_types,
			max_dti_ratio            = EXCLUDED.max_dti_ratio,
			required_documents       = EXCLUDED.required_documents,
			prepayment_charge_rate   = EXCLUDED.prepayment_charge_rate,
			allow_partial_prepayment = EXCLUDED.allow_partial_prepayment,
			min_partial_prepayment   = EXCLUDED.min_partial_prepayment,
			updated_at               = EXCLUDED.updated_at
	`
	_, err := r.pool.Exec(ctx, query,
		p.ID, p.Name, p.Category, p.Active,
		p.MinAmount, p.MaxAmount, p.MinTenure, p.MaxTenure,
		p.BaseInterestRate, p.MinInterestRate, p.MaxInterestRate,
		p.ProcessingFeePercent,
		p.Criteria.MinCreditScore, p.Criteria.MinMonthlyIncome, p.Criteria.EmploymentTypes, p.Criteria.MaxDTIRatio,
		p.RequiredDocuments,
		p.PrepaymentChargeRate, p.AllowPartialPrepayment, p.MinPartialPrepayment,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save product: %w", err)
	}
	return nil
}

// FindByID retrieves one product.
func (r *ProductRepo) FindByID(ctx context.Context, _, id string) (model.Product, error) {
	query := `SELECT` + productColumns + `
		FROM products
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)
	return scanProduct(row)
}

// FindActive retrieves the products currently open for new applications.
func (r *ProductRepo) FindActive(ctx context.Context, _ string) ([]model.Product, error) {
	query := `SELECT` + productColumns + `
		FROM products
		WHERE active
		ORDER BY name
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func scanProduct(s scannable) (model.Product, error) {
	var (
		p               model.Product
		minIncome       decimal.Decimal
		maxDTI          decimal.Decimal
		employmentTypes []string
		requiredDocs    []string
	)

	err := s.Scan(
		&p.ID, &p.Name, &p.Category, &p.Active,
		&p.MinAmount, &p.MaxAmount, &p.MinTenure, &p.MaxTenure,
		&p.BaseInterestRate, &p.MinInterestRate, &p.MaxInterestRate,
		&p.ProcessingFeePercent,
		&p.Criteria.MinCreditScore, &minIncome, &employmentTypes, &maxDTI,
		&requiredDocs,
		&p.PrepaymentChargeRate, &p.AllowPartialPrepayment, &p.MinPartialPrepayment,
	)
	if err != nil {
		return model.Product{}, fmt.Errorf("scan product: %w", err)
	}

	p.Criteria.MinMonthlyIncome = minIncome
	p.Criteria.MaxDTIRatio = maxDTI
	p.Criteria.EmploymentTypes = employmentTypes
	p.RequiredDocuments = requiredDocs
	return p, nil
}
