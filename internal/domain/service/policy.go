package service

import "github.com/shopspring/decimal"

// Policy gathers the tunable decision constants of the engine in one place.
// The algorithms never hard-code these numbers; tuning a threshold must not
// require touching any computation.
type Policy struct {
	// Eligibility decision thresholds (score out of 100).
	ApproveScore int
	ReviewScore  int

	// Basic eligibility band.
	MinAge int
	MaxAge int

	// Fallbacks applied when a product leaves a criterion unset.
	DefaultMinCreditScore int
	DefaultMaxDTIPercent  decimal.Decimal

	// Income must cover at least this percentage of the requested amount
	// per month (0.2 means 0.2%).
	IncomeCoveragePercent decimal.Decimal

	// Affordability back-solve: disposable EMI budget ratio, assumed tenure
	// and the granularity the eligible amount is floored to.
	AffordabilityRatio        decimal.Decimal
	AffordabilityTenureMonths int
	AffordabilityRoundTo      decimal.Decimal

	// Employment experience bonus kicks in at this many years.
	ExperienceBonusYears int

	// Fraud score tiers.
	FraudLowRiskThreshold decimal.Decimal
	FraudReviewThreshold  decimal.Decimal

	// Dynamic pricing bounds used when the product leaves them unset.
	DefaultMinInterestRate decimal.Decimal
	DefaultMaxInterestRate decimal.Decimal

	// Relationship discount for existing customers (percentage points).
	RelationshipDiscount decimal.Decimal

	// Fee schedule.
	ProcessingFeePercent    decimal.Decimal
	GSTRatePercent          decimal.Decimal
	InsurancePremiumPercent decimal.Decimal
	DocumentationCharges    decimal.Decimal

	// Prepayment charge applied when the product leaves it unset.
	DefaultPrepaymentChargeRate decimal.Decimal
}

// DefaultPolicy returns the production policy constants.
func DefaultPolicy() Policy {
	return Policy{
		ApproveScore: 70,
		ReviewScore:  50,

		MinAge: 21,
		MaxAge: 65,

		DefaultMinCreditScore: 650,
		DefaultMaxDTIPercent:  decimal.NewFromInt(60),

		IncomeCoveragePercent: decimal.NewFromFloat(0.2),

		AffordabilityRatio:        decimal.NewFromFloat(0.6),
		AffordabilityTenureMonths: 60,
		AffordabilityRoundTo:      decimal.NewFromInt(10_000),

		ExperienceBonusYears: 2,

		FraudLowRiskThreshold: decimal.NewFromFloat(0.3),
		FraudReviewThreshold:  decimal.NewFromFloat(0.5),

		DefaultMinInterestRate: decimal.NewFromInt(8),
		DefaultMaxInterestRate: decimal.NewFromInt(24),

		RelationshipDiscount: decimal.NewFromFloat(0.5),

		ProcessingFeePercent:    decimal.NewFromInt(2),
		GSTRatePercent:          decimal.NewFromInt(18),
		InsurancePremiumPercent: decimal.NewFromFloat(0.5),
		DocumentationCharges:    decimal.NewFromInt(1500),

		DefaultPrepaymentChargeRate: decimal.NewFromInt(2),
	}
}

// maxDTI returns the product's DTI ceiling or the policy default.
func (p Policy) maxDTI(productMax decimal.Decimal) decimal.Decimal {
	if productMax.IsZero() {
		return p.DefaultMaxDTIPercent
	}
	return productMax
}

// minCreditScore returns the product's minimum score or the policy default.
func (p Policy) minCreditScore(productMin int) int {
	if productMin == 0 {
		return p.DefaultMinCreditScore
	}
	return productMin
}

// prepaymentChargeRate returns the product's charge rate or the policy default.
func (p Policy) prepaymentChargeRate(productRate decimal.Decimal) decimal.Decimal {
	if productRate.IsZero() {
		return p.DefaultPrepaymentChargeRate
	}
	return productRate
}
