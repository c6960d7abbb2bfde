package service

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Amortization calculator – pure EMI arithmetic for fixed-rate
// reducing-balance loans. Everything else in the engine builds on this.
// ---------------------------------------------------------------------------

// AmortizationResult summarises a loan's repayment cost.
type AmortizationResult struct {
	EMIAmount     decimal.Decimal
	TotalPayment  decimal.Decimal
	TotalInterest decimal.Decimal
}

// ComputeEMI computes the equated monthly installment for the given terms,
// rounded to the nearest currency unit:
//
//	r   = annualRatePercent / 100 / 12
//	EMI = P * r * (1+r)^n / ((1+r)^n - 1)
//
// A zero rate degenerates to an even split of the principal. The power term
// is computed in float64, monetary arithmetic stays in decimal, matching the
// rest of the engine.
func ComputeEMI(principal decimal.Decimal, tenureMonths int, annualRatePercent decimal.Decimal) (decimal.Decimal, error) {
	terms := model.LoanTerms{
		Principal:         principal,
		AnnualRatePercent: annualRatePercent,
		TenureMonths:      tenureMonths,
	}
	if err := terms.Validate(); err != nil {
		return decimal.Zero, &ValidationError{Field: "loan terms", Reason: err.Error()}
	}

	monthlyRate := annualRatePercent.InexactFloat64() / 100 / 12
	if monthlyRate == 0 {
		// Exact even split; no rounding so EMI * n repays the principal
		// to the unit.
		return principal.Div(decimal.NewFromInt(int64(tenureMonths))), nil
	}

	n := float64(tenureMonths)
	factor := math.Pow(1+monthlyRate, n)
	emi := principal.InexactFloat64() * monthlyRate * factor / (factor - 1)

	return decimal.NewFromFloat(emi).Round(0), nil
}

// ComputeAmortization returns the EMI plus total payment and interest for
// the given terms.
func ComputeAmortization(terms model.LoanTerms) (AmortizationResult, error) {
	emi, err := ComputeEMI(terms.Principal, terms.TenureMonths, terms.AnnualRatePercent)
	if err != nil {
		return AmortizationResult{}, err
	}

	totalPayment := emi.Mul(decimal.NewFromInt(int64(terms.TenureMonths)))
	return AmortizationResult{
		EMIAmount:     emi,
		TotalPayment:  totalPayment,
		TotalInterest: totalPayment.Sub(terms.Principal),
	}, nil
}

// ComputeNewTenure back-solves the number of months needed to repay the
// principal at the given fixed EMI and monthly rate, inverting the annuity
// formula:
//
//	n = -ln(1 - P*r/EMI) / ln(1+r)
//
// The EMI must exceed the first month's interest (P*r), otherwise the
// balance never reduces and no tenure exists. The result is fractional;
// callers round up, since a partial month is still a billed month. Used for
// the tenure-reduction prepayment mode.
func ComputeNewTenure(principal, emi, monthlyRate decimal.Decimal) (decimal.Decimal, error) {
	if principal.LessThan(decimal.Zero) {
		return decimal.Zero, validationErr("principal", "must not be negative")
	}
	if emi.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, validationErr("emi", "must be positive")
	}
	if monthlyRate.LessThan(decimal.Zero) {
		return decimal.Zero, validationErr("monthly rate", "must not be negative")
	}

	if monthlyRate.IsZero() {
		return principal.Div(emi), nil
	}

	if emi.LessThanOrEqual(principal.Mul(monthlyRate)) {
		return decimal.Zero, validationErr("emi", "must exceed the monthly interest on the principal")
	}

	r := monthlyRate.InexactFloat64()
	ratio := principal.InexactFloat64() * r / emi.InexactFloat64()
	n := -math.Log(1-ratio) / math.Log(1+r)

	return decimal.NewFromFloat(n), nil
}

// ComputeNewEMI is the EMI formula with the monthly rate already known,
// used for the EMI-reduction prepayment mode. The result is unrounded;
// callers round to the currency unit.
func ComputeNewEMI(principal decimal.Decimal, tenureMonths int, monthlyRate decimal.Decimal) (decimal.Decimal, error) {
	if principal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, validationErr("principal", "must be positive")
	}
	if tenureMonths < 1 {
		return decimal.Zero, validationErr("tenure", "must be at least 1 month")
	}
	if monthlyRate.LessThan(decimal.Zero) {
		return decimal.Zero, validationErr("monthly rate", "must not be negative")
	}

	if monthlyRate.IsZero() {
		return principal.Div(decimal.NewFromInt(int64(tenureMonths))), nil
	}

	r := monthlyRate.InexactFloat64()
	n := float64(tenureMonths)
	factor := math.Pow(1+r, n)
	emi := principal.InexactFloat64() * r * factor / (factor - 1)

	return decimal.NewFromFloat(emi), nil
}
