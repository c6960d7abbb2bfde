package service_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/model"
	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/service"
	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/valueobject"
)

// observedSchedule builds a 24-month schedule with six on-time payments, one
// late payment and one entry past due as of the returned date.
func observedSchedule(t *testing.T) ([]model.EMIScheduleEntry, time.Time) {
	t.Helper()

	terms := model.LoanTerms{
		Principal:         decimal.NewFromInt(300_000),
		AnnualRatePercent: decimal.NewFromInt(12),
		TenureMonths:      24,
	}
	emi, err := service.ComputeEMI(terms.Principal, terms.TenureMonths, terms.AnnualRatePercent)
	require.NoError(t, err)

	start := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	entries := model.GenerateEMISchedule(terms, emi, start)
	require.Len(t, entries, 24)

	for i := 0; i < 6; i++ {
		paid, err := entries[i].MarkPaid(entries[i].DueDate, entries[i].Amount, decimal.Zero)
		require.NoError(t, err)
		entries[i] = paid
	}

	// The seventh EMI lands four days late with a late fee.
	late, err := entries[6].MarkPaid(
		entries[6].DueDate.AddDate(0, 0, 4), entries[6].Amount, decimal.NewFromInt(500))
	require.NoError(t, err)
	entries[6] = late

	asOf := entries[7].DueDate.AddDate(0, 0, 10)
	return entries, asOf
}

func TestScheduleAnalytics_Summarize(t *testing.T) {
	analytics := service.NewScheduleAnalytics()
	entries, asOf := observedSchedule(t)

	summary := analytics.Summarize(entries, asOf)

	assert.Equal(t, 24, summary.TotalEntries)
	assert.Equal(t, 7, summary.PaidCount)
	assert.Equal(t, 17, summary.PendingCount)
	assert.Equal(t, 1, summary.OverdueCount, "only the eighth EMI is past due")
	assert.Equal(t, 29, summary.CompletionPercent)

	require.NotNil(t, summary.NextDue)
	assert.Equal(t, 8, summary.NextDue.EMINumber)
	require.NotNil(t, summary.LastPaid)
	assert.Equal(t, 7, summary.LastPaid.EMINumber)

	assert.True(t, summary.TotalPaid.GreaterThan(decimal.Zero))
	assert.True(t, summary.TotalOverdue.Equal(entries[7].Amount))
}

func TestScheduleAnalytics_SummarizeEmpty(t *testing.T) {
	analytics := service.NewScheduleAnalytics()

	summary := analytics.Summarize(nil, time.Now())

	assert.Equal(t, 0, summary.TotalEntries)
	assert.Equal(t, 0, summary.CompletionPercent)
	assert.Nil(t, summary.NextDue)
	assert.Nil(t, summary.LastPaid)
}

func TestScheduleAnalytics_ScoreReliability(t *testing.T) {
	analytics := service.NewScheduleAnalytics()
	entries, asOf := observedSchedule(t)

	var paid, overdue []model.EMIScheduleEntry
	for _, e := range entries {
		switch {
		case e.Status.Equal(valueobject.EMIStatusPaid):
			paid = append(paid, e)
		case e.DueDate.Before(asOf):
			overdue = append(overdue, e)
		}
	}

	reliability := analytics.ScoreReliability(paid, overdue)

	// 6 of 7 on time is 86%; one overdue entry costs ten points.
	assert.Equal(t, 86, reliability.OnTimePercent)
	assert.Equal(t, 4, reliability.AverageDelayDays)
	assert.Equal(t, 76, reliability.ReliabilityScore)
}

func TestScheduleAnalytics_ScoreReliabilityNoHistory(t *testing.T) {
	analytics := service.NewScheduleAnalytics()

	reliability := analytics.ScoreReliability(nil, nil)

	assert.Equal(t, 100, reliability.OnTimePercent, "no history defaults to a clean slate")
	assert.Equal(t, 0, reliability.AverageDelayDays)
	assert.Equal(t, 100, reliability.ReliabilityScore)
}

func TestScheduleAnalytics_ScoreReliabilityPenaltyCapped(t *testing.T) {
	analytics := service.NewScheduleAnalytics()

	overdue := make([]model.EMIScheduleEntry, 8)
	reliability := analytics.ScoreReliability(nil, overdue)

	assert.Equal(t, 50, reliability.ReliabilityScore, "the overdue penalty caps at fifty points")
}

func TestScheduleAnalytics_Project(t *testing.T) {
	analytics := service.NewScheduleAnalytics()
	entries, _ := observedSchedule(t)

	var pending []model.EMIScheduleEntry
	for _, e := range entries {
		if !e.Status.Equal(valueobject.EMIStatusPaid) {
			pending = append(pending, e)
		}
	}

	reliability := service.PaymentReliability{
		OnTimePercent:    86,
		AverageDelayDays: 4,
		ReliabilityScore: 76,
	}
	projection := analytics.Project(pending, reliability)

	require.Len(t, projection.Entries, 6, "projections cap at the next six entries")
	for _, p := range projection.Entries {
		assert.True(t, p.Risk.Equal(valueobject.RiskLevelMedium),
			"a 76 reliability score is MEDIUM risk")
		assert.Equal(t, p.DueDate.AddDate(0, 0, 4), p.ProjectedPaymentDate)
	}
	assert.Equal(t, 8, projection.Entries[0].EMINumber)

	assert.Equal(t, entries[23].DueDate, projection.ScheduledCompletion)
	assert.Equal(t, entries[23].DueDate.AddDate(0, 0, 4), projection.ProjectedCompletion)
	assert.Equal(t, 4, projection.CompletionDelayDays)
}

func TestScheduleAnalytics_ProjectEmpty(t *testing.T) {
	analytics := service.NewScheduleAnalytics()

	projection := analytics.Project(nil, service.PaymentReliability{ReliabilityScore: 100})

	assert.Empty(t, projection.Entries)
	assert.True(t, projection.ScheduledCompletion.IsZero())
}

func TestScheduleAnalytics_RiskTiers(t *testing.T) {
	analytics := service.NewScheduleAnalytics()
	pending := []model.EMIScheduleEntry{{
		EMINumber: 1,
		DueDate:   time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		Amount:    decimal.NewFromInt(10_000),
	}}

	tiers := []struct {
		score int
		want  valueobject.RiskLevel
	}{
		{95, valueobject.RiskLevelLow},
		{90, valueobject.RiskLevelLow},
		{75, valueobject.RiskLevelMedium},
		{70, valueobject.RiskLevelMedium},
		{40, valueobject.RiskLevelHigh},
	}
	for _, tier := range tiers {
		projection := analytics.Project(pending, service.PaymentReliability{ReliabilityScore: tier.score})
		require.Len(t, projection.Entries, 1)
		assert.True(t, projection.Entries[0].Risk.Equal(tier.want),
			"score %d should map to %s", tier.score, tier.want)
	}
}
