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
)

func TestComputeAmortization_Execute(t *testing.T) {
	uc := usecase.NewComputeAmortizationUseCase()

	t.Run("computes EMI and totals", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), dto.ComputeAmortizationRequest{
			Principal:         decimal.NewFromInt(500_000),
			AnnualRatePercent: decimal.NewFromFloat(12.5),
			TenureMonths:      36,
		})

		require.NoError(t, err)
		assert.InDelta(t, 16_727, resp.EMIAmount.InexactFloat64(), 5)
		assert.True(t, resp.TotalPayment.Equal(resp.EMIAmount.Mul(decimal.NewFromInt(36))))
		assert.True(t, resp.TotalInterest.Equal(resp.TotalPayment.Sub(decimal.NewFromInt(500_000))))
		assert.Empty(t, resp.Schedule)
	})

	t.Run("attaches a schedule when requested", func(t *testing.T) {
		start := time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)
		resp, err := uc.Execute(context.Background(), dto.ComputeAmortizationRequest{
			Principal:         decimal.NewFromInt(120_000),
			AnnualRatePercent: decimal.NewFromInt(10),
			TenureMonths:      12,
			StartDate:         start,
			IncludeSchedule:   true,
		})

		require.NoError(t, err)
		require.Len(t, resp.Schedule, 12)
		assert.Equal(t, start.AddDate(0, 1, 0), resp.Schedule[0].DueDate)
		assert.True(t, resp.Schedule[11].OutstandingPrincipal.IsZero())
	})

	t.Run("requires a start date for a schedule", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), dto.ComputeAmortizationRequest{
			Principal:         decimal.NewFromInt(120_000),
			AnnualRatePercent: decimal.NewFromInt(10),
			TenureMonths:      12,
			IncludeSchedule:   true,
		})

		require.Error(t, err)
	})

	t.Run("rejects invalid terms", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), dto.ComputeAmortizationRequest{
			Principal:         decimal.NewFromInt(-1),
			AnnualRatePercent: decimal.NewFromInt(10),
			TenureMonths:      12,
		})

		require.Error(t, err)
	})
}
