package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/model"
	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Prepayment / foreclosure calculator
// ---------------------------------------------------------------------------

// Recommendation labels for the break-even verdict.
const (
	PrepaymentRecommended    = "RECOMMENDED"
	PrepaymentNotRecommended = "NOT_RECOMMENDED"
)

// PrepaymentInput selects what to simulate. Amount is required for PARTIAL;
// TenureReduction selects between shortening the tenure (default) and
// lowering the EMI.
type PrepaymentInput struct {
	Type            valueobject.PrepaymentType
	Date            time.Time
	Amount          decimal.Decimal
	TenureReduction bool
}

// FullPrepayment is the input for a complete foreclosure on the given date.
func FullPrepayment(date time.Time) PrepaymentInput {
	return PrepaymentInput{Type: valueobject.PrepaymentTypeFull, Date: date}
}

// PartialPrepayment is the input for a partial prepayment on the given date.
func PartialPrepayment(date time.Time, amount decimal.Decimal, tenureReduction bool) PrepaymentInput {
	return PrepaymentInput{
		Type:            valueobject.PrepaymentTypePartial,
		Date:            date,
		Amount:          amount,
		TenureReduction: tenureReduction,
	}
}

// PrepaymentDetails echoes the amounts the quote was computed from.
type PrepaymentDetails struct {
	Type                 valueobject.PrepaymentType
	Date                 time.Time
	Amount               decimal.Decimal // gross prepayment
	Charges              decimal.Decimal
	NetAmount            decimal.Decimal // amount minus charges
	OutstandingPrincipal decimal.Decimal
}

// CurrentScenario describes the loan's remaining cost if nothing changes.
type CurrentScenario struct {
	EMIAmount            decimal.Decimal
	PendingEMIs          int
	OutstandingPrincipal decimal.Decimal
	TotalPayable         decimal.Decimal
	TotalInterest        decimal.Decimal
}

// PrepaymentSavings quantifies the benefit of prepaying.
type PrepaymentSavings struct {
	InterestSavings   decimal.Decimal
	TotalSavings      decimal.Decimal // interest savings minus charges
	PercentageSavings decimal.Decimal
}

// RevisedSchedule describes the loan after a partial prepayment. Exactly one
// of RevisedSchedule / LoanClosure is populated on a result.
type RevisedSchedule struct {
	TenureReduction bool
	NewOutstanding  decimal.Decimal
	NewTenureMonths int
	NewEMIAmount    decimal.Decimal
	MonthsReduced   int
	EMIReduced      decimal.Decimal
}

// LoanClosure describes a full foreclosure.
type LoanClosure struct {
	TotalPayableAmount decimal.Decimal
	ClosureDate        time.Time
}

// BreakEven is the months-to-recover-charges verdict.
type BreakEven struct {
	Months         int
	Recommendation string
	Reasoning      string
}

// PrepaymentResult is the complete quote for one prepayment simulation.
type PrepaymentResult struct {
	Details         PrepaymentDetails
	Current         CurrentScenario
	Savings         PrepaymentSavings
	RevisedSchedule *RevisedSchedule
	LoanClosure     *LoanClosure
	BreakEven       BreakEven
}

// PrepaymentCalculator simulates full and partial prepayments against a
// loan's remaining schedule. Stateless; safe for concurrent use.
type PrepaymentCalculator struct {
	policy Policy
}

// NewPrepaymentCalculator returns a calculator bound to the given policy.
func NewPrepaymentCalculator(policy Policy) *PrepaymentCalculator {
	return &PrepaymentCalculator{policy: policy}
}

// Calculate quotes the prepayment described by input against the loan's
// schedule. The schedule is read, never mutated; identical inputs always
// yield an identical quote.
func (c *PrepaymentCalculator) Calculate(
	loan model.Loan,
	product model.Product,
	entries []model.EMIScheduleEntry,
	input PrepaymentInput,
) (PrepaymentResult, error) {
	if input.Type.IsZero() {
		return PrepaymentResult{}, validationErr("prepayment type", "is required")
	}

	paid, pending := partitionByStatus(entries)

	outstanding := loan.Terms.Principal
	for _, e := range paid {
		outstanding = outstanding.Sub(e.PrincipalAmount)
	}

	actual := outstanding
	if input.Type.Equal(valueobject.PrepaymentTypePartial) {
		if err := c.validatePartial(product, input.Amount, outstanding); err != nil {
			return PrepaymentResult{}, err
		}
		actual = input.Amount
	}

	chargeRate := c.policy.prepaymentChargeRate(product.PrepaymentChargeRate)
	charges := actual.Mul(chargeRate).Div(decimal.NewFromInt(100)).Round(0)
	net := actual.Sub(charges)

	pendingCount := len(pending)
	pendingInterest := decimal.Zero
	for _, e := range pending {
		pendingInterest = pendingInterest.Add(e.InterestAmount)
	}

	months := decimal.NewFromInt(int64(pendingCount))
	current := CurrentScenario{
		EMIAmount:            loan.EMIAmount,
		PendingEMIs:          pendingCount,
		OutstandingPrincipal: outstanding,
		TotalPayable:         loan.EMIAmount.Mul(months),
		TotalInterest:        loan.EMIAmount.Mul(months).Sub(outstanding),
	}

	result := PrepaymentResult{
		Details: PrepaymentDetails{
			Type:                 input.Type,
			Date:                 input.Date,
			Amount:               actual,
			Charges:              charges,
			NetAmount:            net,
			OutstandingPrincipal: outstanding,
		},
		Current: current,
	}

	var interestSavings decimal.Decimal
	switch {
	case input.Type.Equal(valueobject.PrepaymentTypeFull):
		interestSavings = pendingInterest
		result.LoanClosure = &LoanClosure{
			TotalPayableAmount: outstanding.Add(charges),
			ClosureDate:        input.Date,
		}

	case input.TenureReduction:
		revised, savings, err := c.tenureReductionScenario(loan, outstanding, net, current)
		if err != nil {
			return PrepaymentResult{}, err
		}
		interestSavings = savings
		result.RevisedSchedule = revised

	default:
		revised, savings, err := c.emiReductionScenario(loan, outstanding, net, pendingCount)
		if err != nil {
			return PrepaymentResult{}, err
		}
		interestSavings = savings
		result.RevisedSchedule = revised
	}

	totalSavings := interestSavings.Sub(charges)
	pct := decimal.Zero
	if interestSavings.GreaterThan(decimal.Zero) {
		pct = totalSavings.Div(interestSavings).Mul(decimal.NewFromInt(100)).Round(0)
	}
	result.Savings = PrepaymentSavings{
		InterestSavings:   interestSavings,
		TotalSavings:      totalSavings,
		PercentageSavings: pct,
	}

	result.BreakEven = c.breakEven(charges, interestSavings, totalSavings, pendingCount)
	return result, nil
}

func (c *PrepaymentCalculator) validatePartial(product model.Product, amount, outstanding decimal.Decimal) error {
	if !product.AllowPartialPrepayment {
		return validationErr("prepayment", "product does not allow partial prepayment")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return validationErr("prepayment amount", "is required for partial prepayment")
	}
	if !product.MinPartialPrepayment.IsZero() && amount.LessThan(product.MinPartialPrepayment) {
		return validationErr("prepayment amount",
			"%s is below the product minimum of %s", amount, product.MinPartialPrepayment)
	}
	if amount.GreaterThanOrEqual(outstanding) {
		return validationErr("prepayment amount",
			"%s covers the outstanding principal; use a full foreclosure instead", amount)
	}
	return nil
}

// tenureReductionScenario keeps the EMI and shortens the tenure: the new
// tenure is back-solved from the reduced balance and rounded up, since a
// partial month is still a billed month.
func (c *PrepaymentCalculator) tenureReductionScenario(
	loan model.Loan,
	outstanding, net decimal.Decimal,
	current CurrentScenario,
) (*RevisedSchedule, decimal.Decimal, error) {
	newOutstanding := outstanding.Sub(net)

	rawTenure, err := ComputeNewTenure(newOutstanding, loan.EMIAmount, loan.Terms.MonthlyRate())
	if err != nil {
		return nil, decimal.Zero, err
	}
	newTenure := int(rawTenure.Ceil().IntPart())

	newTotalInterest := loan.EMIAmount.Mul(decimal.NewFromInt(int64(newTenure))).Sub(newOutstanding)
	savings := current.TotalInterest.Sub(newTotalInterest)

	return &RevisedSchedule{
		TenureReduction: true,
		NewOutstanding:  newOutstanding,
		NewTenureMonths: newTenure,
		NewEMIAmount:    loan.EMIAmount,
		MonthsReduced:   current.PendingEMIs - newTenure,
		EMIReduced:      decimal.Zero,
	}, savings, nil
}

// emiReductionScenario keeps the remaining tenure and recomputes a lower EMI
// on the reduced balance.
func (c *PrepaymentCalculator) emiReductionScenario(
	loan model.Loan,
	outstanding, net decimal.Decimal,
	pendingCount int,
) (*RevisedSchedule, decimal.Decimal, error) {
	newOutstanding := outstanding.Sub(net)

	rawEMI, err := ComputeNewEMI(newOutstanding, pendingCount, loan.Terms.MonthlyRate())
	if err != nil {
		return nil, decimal.Zero, err
	}
	newEMI := rawEMI.Round(0)

	emiDrop := loan.EMIAmount.Sub(newEMI)
	savings := emiDrop.Mul(decimal.NewFromInt(int64(pendingCount)))

	return &RevisedSchedule{
		TenureReduction: false,
		NewOutstanding:  newOutstanding,
		NewTenureMonths: pendingCount,
		NewEMIAmount:    newEMI,
		MonthsReduced:   0,
		EMIReduced:      emiDrop,
	}, savings, nil
}

// breakEven works out how many months of interest savings recover the
// charges and labels the verdict in three tiers.
func (c *PrepaymentCalculator) breakEven(charges, interestSavings, totalSavings decimal.Decimal, pendingCount int) BreakEven {
	months := 0
	if charges.GreaterThan(decimal.Zero) && interestSavings.GreaterThan(decimal.Zero) && pendingCount > 0 {
		perMonth := interestSavings.Div(decimal.NewFromInt(int64(pendingCount)))
		months = int(charges.Div(perMonth).Ceil().IntPart())
	}

	be := BreakEven{Months: months}
	twiceCharges := charges.Mul(decimal.NewFromInt(2))
	switch {
	case totalSavings.LessThanOrEqual(decimal.Zero):
		be.Recommendation = PrepaymentNotRecommended
		be.Reasoning = "prepayment charges exceed the interest saved"
	case totalSavings.LessThanOrEqual(twiceCharges):
		be.Recommendation = PrepaymentRecommended
		be.Reasoning = "moderate savings after charges; worthwhile if liquidity permits"
	default:
		be.Recommendation = PrepaymentRecommended
		be.Reasoning = "interest savings comfortably outweigh the charges; highly recommended"
	}
	return be
}

// partitionByStatus splits a schedule into settled and unsettled entries.
// OVERDUE entries are unsettled and count toward the pending scenario.
func partitionByStatus(entries []model.EMIScheduleEntry) (paid, pending []model.EMIScheduleEntry) {
	for _, e := range entries {
		if e.Status.Equal(valueobject.EMIStatusPaid) {
			paid = append(paid, e)
		} else {
			pending = append(pending, e)
		}
	}
	return paid, pending
}
