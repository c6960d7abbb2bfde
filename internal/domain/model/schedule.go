package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/valueobject"
)

// EMIScheduleEntry is one period of a loan's repayment schedule. Entries are
// created in bulk at disbursement (one per tenure month) and transition
// PENDING -> PAID on payment or PENDING -> OVERDUE when the due date passes
// unpaid. Transitions return a new copy.
type EMIScheduleEntry struct {
	EMINumber            int // 1-based, unique per loan, ascending
	DueDate              time.Time
	Amount               decimal.Decimal
	PrincipalAmount      decimal.Decimal
	InterestAmount       decimal.Decimal
	OutstandingPrincipal decimal.Decimal // balance after this EMI
	Status               valueobject.EMIStatus
	PaidDate             *time.Time
	PaidAmount           decimal.Decimal
	LateFee              decimal.Decimal
}

// MarkPaid records a payment against the entry. A payment on an OVERDUE
// entry moves it to PAID with the late fee attached as metadata.
func (e EMIScheduleEntry) MarkPaid(paidDate time.Time, amount, lateFee decimal.Decimal) (EMIScheduleEntry, error) {
	if e.Status.Equal(valueobject.EMIStatusPaid) {
		return e, valueobject.ErrInvalidStatusTransition
	}
	next := e
	next.Status = valueobject.EMIStatusPaid
	pd := paidDate
	next.PaidDate = &pd
	next.PaidAmount = amount
	next.LateFee = lateFee
	return next, nil
}

// MarkOverdue transitions PENDING -> OVERDUE once the due date has passed.
func (e EMIScheduleEntry) MarkOverdue(asOf time.Time) (EMIScheduleEntry, error) {
	if !e.Status.Equal(valueobject.EMIStatusPending) {
		return e, valueobject.ErrInvalidStatusTransition
	}
	if !e.DueDate.Before(asOf) {
		return e, valueobject.ErrInvalidStatusTransition
	}
	next := e
	next.Status = valueobject.EMIStatusOverdue
	return next, nil
}

// PaidOnTime reports whether the entry was settled on or before its due date.
func (e EMIScheduleEntry) PaidOnTime() bool {
	if e.PaidDate == nil {
		return false
	}
	return !e.PaidDate.After(e.DueDate)
}

// DelayDays returns the number of whole days the payment landed after the
// due date, never negative.
func (e EMIScheduleEntry) DelayDays() int {
	if e.PaidDate == nil {
		return 0
	}
	d := int(e.PaidDate.Sub(e.DueDate).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}

// GenerateEMISchedule builds the full repayment schedule for a loan at
// disbursement: one PENDING entry per tenure month with the per-period
// principal/interest split of a fixed-payment reducing-balance loan.
//
// The EMI is supplied by the caller (the amortization calculator); this
// function performs only the period-by-period split:
//
//	interest  = remaining * monthlyRate   (rounded to the currency unit)
//	principal = emi - interest
//
// The last period absorbs rounding drift so the balance lands on zero.
func GenerateEMISchedule(terms LoanTerms, emi decimal.Decimal, startDate time.Time) []EMIScheduleEntry {
	if terms.Validate() != nil || emi.LessThanOrEqual(decimal.Zero) {
		return nil
	}

	monthlyRate := terms.MonthlyRate()
	remaining := terms.Principal
	schedule := make([]EMIScheduleEntry, 0, terms.TenureMonths)

	for period := 1; period <= terms.TenureMonths; period++ {
		dueDate := startDate.AddDate(0, period, 0)

		interest := remaining.Mul(monthlyRate).Round(0)
		principalPart := emi.Sub(interest)
		total := emi

		if period == terms.TenureMonths {
			principalPart = remaining
			total = principalPart.Add(interest)
		}

		remaining = remaining.Sub(principalPart)
		if remaining.LessThan(decimal.Zero) {
			remaining = decimal.Zero
		}

		schedule = append(schedule, EMIScheduleEntry{
			EMINumber:            period,
			DueDate:              dueDate,
			Amount:               total,
			PrincipalAmount:      principalPart,
			InterestAmount:       interest,
			OutstandingPrincipal: remaining,
			Status:               valueobject.EMIStatusPending,
			PaidAmount:           decimal.Zero,
			LateFee:              decimal.Zero,
		})
	}

	return schedule
}
