package model

import (
	"github.com/shopspring/decimal"
)

// EligibilityCriteria holds the product-level admission thresholds.
// Zero values fall back to the engine's policy defaults (minimum credit
// score 650, DTI ceiling 60%).
type EligibilityCriteria struct {
	MinCreditScore   int
	MinMonthlyIncome decimal.Decimal
	EmploymentTypes  []string
	MaxDTIRatio      decimal.Decimal // percent, e.g. 60 means 60%
}

// AcceptsEmployment reports whether the employment type is in the accepted
// set. An empty set accepts every type.
func (c EligibilityCriteria) AcceptsEmployment(employmentType string) bool {
	if len(c.EmploymentTypes) == 0 {
		return true
	}
	for _, t := range c.EmploymentTypes {
		if t == employmentType {
			return true
		}
	}
	return false
}

// Product describes a loan product's terms and lending policy.
// It is a plain value record; zero-valued rate bounds and charge rates fall
// back to policy defaults during computation.
type Product struct {
	ID                   string
	Name                 string
	Category             string
	Active               bool
	MinAmount            decimal.Decimal
	MaxAmount            decimal.Decimal
	MinTenure            int
	MaxTenure            int
	BaseInterestRate     decimal.Decimal // annual percent
	MinInterestRate      decimal.Decimal // annual percent; 0 = policy default
	MaxInterestRate      decimal.Decimal // annual percent; 0 = policy default
	ProcessingFeePercent decimal.Decimal
	Criteria             EligibilityCriteria
	RequiredDocuments    []string

	// Prepayment policy.
	PrepaymentChargeRate   decimal.Decimal // percent of prepaid amount; 0 = policy default
	AllowPartialPrepayment bool
	MinPartialPrepayment   decimal.Decimal
}

// AmountInRange reports whether the requested amount is within product bounds.
func (p Product) AmountInRange(amount decimal.Decimal) bool {
	if !p.MinAmount.IsZero() && amount.LessThan(p.MinAmount) {
		return false
	}
	if !p.MaxAmount.IsZero() && amount.GreaterThan(p.MaxAmount) {
		return false
	}
	return true
}

// TenureInRange reports whether the requested tenure is within product bounds.
func (p Product) TenureInRange(tenureMonths int) bool {
	if p.MinTenure > 0 && tenureMonths < p.MinTenure {
		return false
	}
	if p.MaxTenure > 0 && tenureMonths > p.MaxTenure {
		return false
	}
	return true
}
