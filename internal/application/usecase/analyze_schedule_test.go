package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aknathpanchal/laxmi-sub000/internal/application/dto"
	"github.com/Aknathpanchal/laxmi-sub000/internal/application/usecase"
	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/model"
	"github.com/Aknathpanchal/laxmi-sub000/internal/domain/service"
)

func newAnalyzeUseCase(scheduleRepo *mockScheduleRepository, publisher *mockEventPublisher) *usecase.AnalyzeScheduleUseCase {
	return usecase.NewAnalyzeScheduleUseCase(scheduleRepo, publisher, service.NewScheduleAnalytics())
}

func TestAnalyzeSchedule_Execute(t *testing.T) {
	terms := model.LoanTerms{
		Principal:         decimal.NewFromInt(300_000),
		AnnualRatePercent: decimal.NewFromInt(12),
		TenureMonths:      24,
	}
	emi, err := service.ComputeEMI(terms.Principal, terms.TenureMonths, terms.AnnualRatePercent)
	require.NoError(t, err)

	start := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	base := model.GenerateEMISchedule(terms, emi, start)

	// First 6 paid on time, 7th paid 4 days late, 8th left unpaid past due.
	entries := make([]model.EMIScheduleEntry, len(base))
	copy(entries, base)
	for i := 0; i < 6; i++ {
		paid, err := entries[i].MarkPaid(entries[i].DueDate, entries[i].Amount, decimal.Zero)
		require.NoError(t, err)
		entries[i] = paid
	}
	late, err := entries[6].MarkPaid(entries[6].DueDate.AddDate(0, 0, 4), entries[6].Amount, decimal.NewFromInt(500))
	require.NoError(t, err)
	entries[6] = late

	asOf := entries[7].DueDate.AddDate(0, 0, 10)

	scheduleRepo := func() *mockScheduleRepository {
		return &mockScheduleRepository{
			findByLoanIDFunc: func(_ context.Context, _, _ string) ([]model.EMIScheduleEntry, error) {
				return entries, nil
			},
		}
	}

	t.Run("produces summary, reliability and projection", func(t *testing.T) {
		publisher := &mockEventPublisher{}
		uc := newAnalyzeUseCase(scheduleRepo(), publisher)

		resp, err := uc.Execute(context.Background(), dto.AnalyzeScheduleRequest{
			TenantID: "tenant-001",
			LoanID:   "loan-001",
			AsOfDate: asOf,
		})

		require.NoError(t, err)
		assert.Equal(t, 24, resp.Summary.TotalEntries)
		assert.Equal(t, 7, resp.Summary.PaidCount)
		assert.Equal(t, 17, resp.Summary.PendingCount)
		assert.Equal(t, 1, resp.Summary.OverdueCount)
		assert.Equal(t, 29, resp.Summary.CompletionPercent)
		require.NotNil(t, resp.Summary.NextDue)
		assert.Equal(t, 8, resp.Summary.NextDue.EMINumber)

		// 6 of 7 paid on time, minus one overdue penalty of ten.
		assert.Equal(t, 86, resp.Reliability.OnTimePercent)
		assert.Equal(t, 4, resp.Reliability.AverageDelayDays)
		assert.Equal(t, 76, resp.Reliability.ReliabilityScore)

		require.NotEmpty(t, resp.Projection.Entries)
		assert.Len(t, resp.Projection.Entries, 6)
		assert.Equal(t, "MEDIUM", resp.Projection.Entries[0].Risk)
		assert.Equal(t, 4, resp.Projection.CompletionDelayDays)

		require.Len(t, publisher.publishedEvents, 1)
		assert.Equal(t, "finance.schedule.analyzed", publisher.publishedEvents[0].EventType())
	})

	t.Run("handles an empty schedule", func(t *testing.T) {
		empty := &mockScheduleRepository{
			findByLoanIDFunc: func(_ context.Context, _, _ string) ([]model.EMIScheduleEntry, error) {
				return nil, nil
			},
		}
		uc := newAnalyzeUseCase(empty, &mockEventPublisher{})

		resp, err := uc.Execute(context.Background(), dto.AnalyzeScheduleRequest{
			TenantID: "tenant-001",
			LoanID:   "loan-empty",
			AsOfDate: asOf,
		})

		require.NoError(t, err)
		assert.Equal(t, 0, resp.Summary.TotalEntries)
		assert.Empty(t, resp.Projection.Entries)
		assert.Equal(t, 100, resp.Reliability.ReliabilityScore)
	})

	t.Run("fails when the schedule cannot be loaded", func(t *testing.T) {
		uc := newAnalyzeUseCase(&mockScheduleRepository{}, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), dto.AnalyzeScheduleRequest{
			TenantID: "tenant-001",
			LoanID:   "loan-001",
			AsOfDate: asOf,
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "find schedule")
	})
}
