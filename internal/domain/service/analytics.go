package service

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/model"
	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Schedule analytics – summary, reliability scoring and projections
// ---------------------------------------------------------------------------

// Reliability tiers for projected-entry risk labels (reliability score, 0-100).
const (
	reliabilityLowRisk    = 90
	reliabilityMediumRisk = 70
)

// projectionHorizon caps how many upcoming entries a projection reports.
const projectionHorizon = 6

// ScheduleSummary aggregates a schedule as of a caller-supplied date.
// OVERDUE is a classification of PENDING entries whose due date has passed,
// so PaidCount + PendingCount always equals TotalEntries.
type ScheduleSummary struct {
	TotalEntries      int
	PaidCount         int
	PendingCount      int // includes overdue
	OverdueCount      int // subset of pending
	CompletionPercent int
	TotalPaid         decimal.Decimal
	TotalPending      decimal.Decimal
	TotalOverdue      decimal.Decimal
	NextDue           *model.EMIScheduleEntry
	LastPaid          *model.EMIScheduleEntry
}

// PaymentReliability scores observed repayment behaviour.
type PaymentReliability struct {
	OnTimePercent    int
	AverageDelayDays int
	ReliabilityScore int
}

// ProjectedEntry is one forward-looking schedule entry.
type ProjectedEntry struct {
	EMINumber            int
	DueDate              time.Time
	ProjectedPaymentDate time.Time
	Amount               decimal.Decimal
	Risk                 valueobject.RiskLevel
}

// ScheduleProjection extrapolates the remaining schedule from observed
// payment behaviour.
type ScheduleProjection struct {
	Entries             []ProjectedEntry
	ScheduledCompletion time.Time
	ProjectedCompletion time.Time
	CompletionDelayDays int
}

// ScheduleAnalytics derives read-only views over EMI schedules. All methods
// are pure and total over well-formed, possibly empty, inputs.
type ScheduleAnalytics struct{}

// NewScheduleAnalytics returns a new analytics engine.
func NewScheduleAnalytics() *ScheduleAnalytics {
	return &ScheduleAnalytics{}
}

// Summarize classifies and aggregates the schedule as of the given date.
// The input is never mutated; a pending entry whose due date precedes asOf
// is counted as overdue.
func (a *ScheduleAnalytics) Summarize(entries []model.EMIScheduleEntry, asOf time.Time) ScheduleSummary {
	summary := ScheduleSummary{
		TotalEntries: len(entries),
		TotalPaid:    decimal.Zero,
		TotalPending: decimal.Zero,
		TotalOverdue: decimal.Zero,
	}
	if len(entries) == 0 {
		return summary
	}

	for i := range entries {
		e := entries[i]
		if e.Status.Equal(valueobject.EMIStatusPaid) {
			summary.PaidCount++
			summary.TotalPaid = summary.TotalPaid.Add(e.Amount)
			if summary.LastPaid == nil || laterPayment(e, *summary.LastPaid) {
				paid := e
				summary.LastPaid = &paid
			}
			continue
		}

		summary.PendingCount++
		summary.TotalPending = summary.TotalPending.Add(e.Amount)

		if e.Status.Equal(valueobject.EMIStatusOverdue) || e.DueDate.Before(asOf) {
			summary.OverdueCount++
			summary.TotalOverdue = summary.TotalOverdue.Add(e.Amount)
		}

		if summary.NextDue == nil || e.DueDate.Before(summary.NextDue.DueDate) {
			next := e
			summary.NextDue = &next
		}
	}

	summary.CompletionPercent = int(decimal.NewFromInt(int64(summary.PaidCount)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(summary.TotalEntries))).
		Round(0).IntPart())

	return summary
}

// ScoreReliability scores observed payment behaviour from settled and
// overdue entries. With no paid entries the on-time rate defaults to 100;
// each overdue entry costs ten points, capped at fifty.
func (a *ScheduleAnalytics) ScoreReliability(paid, overdue []model.EMIScheduleEntry) PaymentReliability {
	onTimePercent := 100
	if len(paid) > 0 {
		onTime := 0
		for _, e := range paid {
			if e.PaidOnTime() {
				onTime++
			}
		}
		onTimePercent = int(decimal.NewFromInt(int64(onTime)).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(int64(len(paid)))).
			Round(0).IntPart())
	}

	avgDelay := 0
	lateCount := 0
	delaySum := 0
	for _, e := range paid {
		if d := e.DelayDays(); d > 0 {
			delaySum += d
			lateCount++
		}
	}
	if lateCount > 0 {
		avgDelay = int(decimal.NewFromInt(int64(delaySum)).
			Div(decimal.NewFromInt(int64(lateCount))).
			Round(0).IntPart())
	}

	penalty := len(overdue) * 10
	if penalty > 50 {
		penalty = 50
	}
	reliability := onTimePercent - penalty
	if reliability < 0 {
		reliability = 0
	}

	return PaymentReliability{
		OnTimePercent:    onTimePercent,
		AverageDelayDays: avgDelay,
		ReliabilityScore: reliability,
	}
}

// Project extrapolates payment dates for the remaining schedule: each
// pending entry is expected averageDelayDays after its due date, labelled
// with a risk tier from the reliability score. At most the next six entries
// are returned, plus the projected completion slip for the whole schedule.
func (a *ScheduleAnalytics) Project(pending []model.EMIScheduleEntry, reliability PaymentReliability) ScheduleProjection {
	if len(pending) == 0 {
		return ScheduleProjection{}
	}

	ordered := make([]model.EMIScheduleEntry, len(pending))
	copy(ordered, pending)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].EMINumber < ordered[j].EMINumber })

	risk := riskTier(reliability.ReliabilityScore)
	delay := reliability.AverageDelayDays

	horizon := len(ordered)
	if horizon > projectionHorizon {
		horizon = projectionHorizon
	}

	entries := make([]ProjectedEntry, 0, horizon)
	for _, e := range ordered[:horizon] {
		entries = append(entries, ProjectedEntry{
			EMINumber:            e.EMINumber,
			DueDate:              e.DueDate,
			ProjectedPaymentDate: e.DueDate.AddDate(0, 0, delay),
			Amount:               e.Amount,
			Risk:                 risk,
		})
	}

	scheduled := ordered[len(ordered)-1].DueDate
	return ScheduleProjection{
		Entries:             entries,
		ScheduledCompletion: scheduled,
		ProjectedCompletion: scheduled.AddDate(0, 0, delay),
		CompletionDelayDays: delay,
	}
}

func riskTier(reliabilityScore int) valueobject.RiskLevel {
	switch {
	case reliabilityScore >= reliabilityLowRisk:
		return valueobject.RiskLevelLow
	case reliabilityScore >= reliabilityMediumRisk:
		return valueobject.RiskLevelMedium
	default:
		return valueobject.RiskLevelHigh
	}
}

// laterPayment orders paid entries by paid date, falling back to EMI number.
func laterPayment(a, b model.EMIScheduleEntry) bool {
	if a.PaidDate != nil && b.PaidDate != nil && !a.PaidDate.Equal(*b.PaidDate) {
		return a.PaidDate.After(*b.PaidDate)
	}
	return a.EMINumber > b.EMINumber
}
