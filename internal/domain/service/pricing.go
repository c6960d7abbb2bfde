package service

import (
	"github.com/shopspring/decimal"

	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/model"
	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Dynamic pricing – interest rate adjustment and fee breakdown
// ---------------------------------------------------------------------------

// PricingResult carries the fully priced cost of a loan offer.
type PricingResult struct {
	InterestRate         decimal.Decimal // annual percent after adjustments
	ProcessingFee        decimal.Decimal
	GSTOnFees            decimal.Decimal
	InsurancePremium     decimal.Decimal
	DocumentationCharges decimal.Decimal
	EMIAmount            decimal.Decimal
	TotalPayment         decimal.Decimal
	TotalInterest        decimal.Decimal
	TotalFees            decimal.Decimal
	APR                  decimal.Decimal
	Notes                []string // data-gap substitutions, never errors
}

// PricingEngine adjusts a product's base rate for credit quality, risk,
// market conditions and customer relationship, then prices the full offer.
// Stateless; safe for concurrent use.
type PricingEngine struct {
	policy Policy
}

// NewPricingEngine returns a pricing engine bound to the given policy.
func NewPricingEngine(policy Policy) *PricingEngine {
	return &PricingEngine{policy: policy}
}

// CalculateRate derives the offered annual rate from the product base rate.
//
// Adjustments (percentage points):
//
//	credit >= 750        -1.50
//	credit >= 700        -0.75
//	credit <  650        +2.00
//	risk                 +riskScore * 2        (riskScore in [0,1])
//	market               +(inflation - 5) * 0.2 when supplied
//	existing customer    -0.50
//
// The result is clamped to the product's [min, max] band; policy defaults
// apply when the product leaves the band open. A credit score of 0 means
// "unknown" and contributes no adjustment; the caller records the gap.
func (e *PricingEngine) CalculateRate(
	product model.Product,
	creditScore int,
	riskScore decimal.Decimal,
	market valueobject.MarketConditions,
	existingCustomer bool,
) decimal.Decimal {
	rate := product.BaseInterestRate

	switch {
	case creditScore >= 750:
		rate = rate.Sub(decimal.NewFromFloat(1.5))
	case creditScore >= 700:
		rate = rate.Sub(decimal.NewFromFloat(0.75))
	case creditScore == 0:
		// unknown score: no credit adjustment
	case creditScore < 650:
		rate = rate.Add(decimal.NewFromInt(2))
	}

	rate = rate.Add(riskScore.Mul(decimal.NewFromInt(2)))

	if !market.IsZero() {
		delta := market.InflationRate().Sub(decimal.NewFromInt(5)).Mul(decimal.NewFromFloat(0.2))
		rate = rate.Add(delta)
	}

	if existingCustomer {
		rate = rate.Sub(e.policy.RelationshipDiscount)
	}

	minRate := product.MinInterestRate
	if minRate.IsZero() {
		minRate = e.policy.DefaultMinInterestRate
	}
	maxRate := product.MaxInterestRate
	if maxRate.IsZero() {
		maxRate = e.policy.DefaultMaxInterestRate
	}

	if rate.LessThan(minRate) {
		return minRate
	}
	if rate.GreaterThan(maxRate) {
		return maxRate
	}
	return rate
}

// FeeBreakdown itemises the one-time charges on a disbursement.
type FeeBreakdown struct {
	ProcessingFee        decimal.Decimal
	GST                  decimal.Decimal
	InsurancePremium     decimal.Decimal
	DocumentationCharges decimal.Decimal
}

// Total sums the fee components.
func (f FeeBreakdown) Total() decimal.Decimal {
	return f.ProcessingFee.Add(f.GST).Add(f.InsurancePremium).Add(f.DocumentationCharges)
}

// CalculateFees itemises fees for the given disbursement amount: processing
// fee, GST on the processing fee, insurance premium and a fixed
// documentation charge, all rounded to the currency unit.
func (e *PricingEngine) CalculateFees(amount decimal.Decimal) FeeBreakdown {
	hundred := decimal.NewFromInt(100)

	processing := amount.Mul(e.policy.ProcessingFeePercent).Div(hundred).Round(0)
	gst := processing.Mul(e.policy.GSTRatePercent).Div(hundred).Round(0)
	insurance := amount.Mul(e.policy.InsurancePremiumPercent).Div(hundred).Round(0)

	return FeeBreakdown{
		ProcessingFee:        processing,
		GST:                  gst,
		InsurancePremium:     insurance,
		DocumentationCharges: e.policy.DocumentationCharges,
	}
}

// Quote prices a full loan offer: adjusted rate, fees, EMI, totals and APR.
//
//	APR = ((totalInterest + totalFees) / amount / tenureMonths) * 12 * 100
func (e *PricingEngine) Quote(
	product model.Product,
	creditScore int,
	riskScore decimal.Decimal,
	market valueobject.MarketConditions,
	existingCustomer bool,
	amount decimal.Decimal,
	tenureMonths int,
) (PricingResult, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return PricingResult{}, validationErr("amount", "must be positive")
	}
	if tenureMonths < 1 {
		return PricingResult{}, validationErr("tenure", "must be at least 1 month")
	}

	var notes []string
	if creditScore == 0 {
		notes = append(notes, "credit score unavailable: rate priced without credit adjustment")
	}
	if market.IsZero() {
		notes = append(notes, "market conditions unavailable: market adjustment skipped")
	}

	rate := e.CalculateRate(product, creditScore, riskScore, market, existingCustomer)
	fees := e.CalculateFees(amount)

	amort, err := ComputeAmortization(model.LoanTerms{
		Principal:         amount,
		AnnualRatePercent: rate,
		TenureMonths:      tenureMonths,
	})
	if err != nil {
		return PricingResult{}, err
	}

	totalFees := fees.Total()
	months := decimal.NewFromInt(int64(tenureMonths))
	apr := amort.TotalInterest.Add(totalFees).
		Div(amount).
		Div(months).
		Mul(decimal.NewFromInt(1200)).
		Round(2)

	return PricingResult{
		InterestRate:         rate,
		ProcessingFee:        fees.ProcessingFee,
		GSTOnFees:            fees.GST,
		InsurancePremium:     fees.InsurancePremium,
		DocumentationCharges: fees.DocumentationCharges,
		EMIAmount:            amort.EMIAmount,
		TotalPayment:         amort.TotalPayment,
		TotalInterest:        amort.TotalInterest,
		TotalFees:            totalFees,
		APR:                  apr,
		Notes:                notes,
	}, nil
}
