package model

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// LoanTerms are the three numbers every amortization computation starts
// from. Immutable once computed against.
type LoanTerms struct {
	Principal         decimal.Decimal
	AnnualRatePercent decimal.Decimal
	TenureMonths      int
}

// Validate checks the documented invariants on loan terms.
func (t LoanTerms) Validate() error {
	if t.Principal.LessThanOrEqual(decimal.Zero) {
		return errors.New("principal must be positive")
	}
	if t.TenureMonths < 1 {
		return errors.New("tenure months must be at least 1")
	}
	if t.AnnualRatePercent.LessThan(decimal.Zero) {
		return errors.New("annual rate must not be negative")
	}
	return nil
}

// MonthlyRate returns the reducing-balance monthly rate as a fraction
// (annual percent / 100 / 12).
func (t LoanTerms) MonthlyRate() decimal.Decimal {
	return t.AnnualRatePercent.Div(decimal.NewFromInt(1200))
}

// Loan is a disbursed loan snapshot as the persistence collaborator supplies
// it: the contracted terms plus the fixed EMI billed each month.
type Loan struct {
	ID          string
	TenantID    string
	ProductID   string
	Terms       LoanTerms
	EMIAmount   decimal.Decimal
	DisbursedAt time.Time
}
